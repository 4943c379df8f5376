// Package util provides filesystem path helpers shared across plugindex.
package util

import (
	"os"
	"path/filepath"
	"strings"
)

// HomeDir returns the user's home directory.
func HomeDir() string {
	home, _ := os.UserHomeDir()
	return home
}

// ConfigDir returns the plugindex configuration directory (~/.plugindex).
func ConfigDir() string {
	return filepath.Join(HomeDir(), ".plugindex")
}

// DefaultPluginsRoot returns the default registry root: a plugins/
// directory under the current working directory.
func DefaultPluginsRoot() string {
	return "plugins"
}

// ExpandHome expands a leading ~ or ~/ in a path to the home directory.
func ExpandHome(path string) string {
	if path == "~" {
		return HomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(HomeDir(), path[2:])
	}
	return path
}

// IsMarkdown returns true for files with a .md extension.
func IsMarkdown(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".md")
}
