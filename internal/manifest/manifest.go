// Package manifest reads the optional per-toolkit plugin manifest.
// A toolkit may carry a .claude-plugin/plugin.json describing itself;
// its absence is not an error.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the manifest filename inside the marker directory.
const FileName = "plugin.json"

// markerDir is the directory holding toolkit metadata.
const markerDir = ".claude-plugin"

// Manifest represents a toolkit's .claude-plugin/plugin.json file.
type Manifest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version"`
	Author      struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"author"`
}

// Path returns the manifest path for a toolkit directory.
func Path(toolkitDir string) string {
	return filepath.Join(toolkitDir, markerDir, FileName)
}

// Load reads the manifest for a toolkit directory. It returns (nil, nil)
// when the toolkit has no manifest, and an error only when a manifest
// exists but cannot be read or parsed.
func Load(toolkitDir string) (*Manifest, error) {
	manifestPath := Path(toolkitDir)

	// #nosec G304 - path is constructed from the scanned registry root
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read manifest %q: %w", manifestPath, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %q: %w", manifestPath, err)
	}

	return &m, nil
}
