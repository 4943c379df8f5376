// Package export renders a built registry index to machine-readable
// formats for downstream tooling.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/klauern/plugindex/internal/logging"
	"github.com/klauern/plugindex/internal/model"
	"github.com/klauern/plugindex/internal/registry"
)

// Format represents the output format for an exported index.
type Format string

const (
	// FormatJSON exports the index as JSON.
	FormatJSON Format = "json"
	// FormatYAML exports the index as YAML.
	FormatYAML Format = "yaml"
	// FormatTOML exports the index as TOML.
	FormatTOML Format = "toml"
)

// IsValid returns true if the format is recognized.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTOML:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// AllFormats returns all supported export formats.
func AllFormats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatTOML}
}

// ParseFormat parses a string into a Format.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(s)))
	if !format.IsValid() {
		return "", fmt.Errorf("unsupported format %q (valid: json, yaml, toml)", s)
	}
	return format, nil
}

// Options configures export behavior.
type Options struct {
	// Format specifies the output format.
	Format Format
	// Pretty enables indentation for JSON output.
	Pretty bool
	// IncludeErrors includes the build error list in the export.
	IncludeErrors bool
}

// DefaultOptions returns the default export options.
func DefaultOptions() Options {
	return Options{
		Format:        FormatJSON,
		Pretty:        true,
		IncludeErrors: true,
	}
}

// Doc is the exported shape of one document.
type Doc struct {
	Name         string   `json:"name" yaml:"name" toml:"name"`
	Description  string   `json:"description" yaml:"description" toml:"description"`
	Path         string   `json:"path" yaml:"path" toml:"path"`
	Tools        []string `json:"tools,omitempty" yaml:"tools,omitempty" toml:"tools,omitempty"`
	ArgumentHint string   `json:"argument_hint,omitempty" yaml:"argument_hint,omitempty" toml:"argument_hint,omitempty"`
}

// Toolkit is the exported shape of one toolkit.
type Toolkit struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
	Agents      []Doc  `json:"agents" yaml:"agents" toml:"agents"`
	Skills      []Doc  `json:"skills" yaml:"skills" toml:"skills"`
	Commands    []Doc  `json:"commands" yaml:"commands" toml:"commands"`
}

// Index is the exported shape of the whole registry.
type Index struct {
	Root     string    `json:"root" yaml:"root" toml:"root"`
	Toolkits []Toolkit `json:"toolkits" yaml:"toolkits" toml:"toolkits"`
	Errors   []string  `json:"errors,omitempty" yaml:"errors,omitempty" toml:"errors,omitempty"`
}

// Exporter renders registries in a configured format.
type Exporter struct {
	opts Options
}

// New creates a new Exporter with the given options.
func New(opts Options) *Exporter {
	return &Exporter{opts: opts}
}

// Export writes the registry index to w in the configured format.
func (e *Exporter) Export(reg *registry.Registry, w io.Writer) error {
	defer logging.Timer("export")()

	logging.Debug("starting export",
		slog.String("format", string(e.opts.Format)),
		logging.Count(reg.Len()),
	)

	index := e.snapshot(reg)

	switch e.opts.Format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		if e.opts.Pretty {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(index)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer func() { _ = enc.Close() }()
		return enc.Encode(index)
	case FormatTOML:
		return toml.NewEncoder(w).Encode(index)
	default:
		return fmt.Errorf("unsupported format %q", e.opts.Format)
	}
}

// snapshot flattens a registry into encodable export types.
func (e *Exporter) snapshot(reg *registry.Registry) Index {
	index := Index{Root: reg.Root()}

	for name := range reg.Toolkits() {
		tk, _ := reg.Toolkit(name)

		exported := Toolkit{
			Name:     name,
			Agents:   exportDocs(tk.Documents(model.RoleAgent)),
			Skills:   exportDocs(tk.Documents(model.RoleSkill)),
			Commands: exportDocs(tk.Documents(model.RoleCommand)),
		}
		if tk.Manifest != nil {
			exported.Description = tk.Manifest.Description
			exported.Version = tk.Manifest.Version
		}

		index.Toolkits = append(index.Toolkits, exported)
	}

	if e.opts.IncludeErrors {
		for _, be := range reg.Errors() {
			index.Errors = append(index.Errors, be.Error())
		}
	}

	return index
}

func exportDocs(docs []*model.Document) []Doc {
	exported := make([]Doc, 0, len(docs))
	for _, d := range docs {
		exported = append(exported, Doc{
			Name:         d.Name,
			Description:  d.Description,
			Path:         d.RelPath,
			Tools:        d.Tools,
			ArgumentHint: d.ArgumentHint(),
		})
	}
	return exported
}
