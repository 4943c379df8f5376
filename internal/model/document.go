package model

import "time"

// Document is a single Markdown file discovered under a toolkit tree.
// Documents are immutable after a registry build.
type Document struct {
	// Name identifies the document within its toolkit and role. Agents and
	// skills declare it in front matter; commands derive it from the
	// filename stem.
	Name string `json:"name"`

	// Description is the declared description, empty for supplementary files.
	Description string `json:"description"`

	Toolkit string `json:"toolkit"`
	Role    Role   `json:"role"`

	// Path is the absolute path on disk; RelPath is relative to the
	// scanned registry root.
	Path    string `json:"path"`
	RelPath string `json:"rel_path"`

	// Tools lists the declared tools (or allowed-tools) when present.
	Tools []string `json:"tools,omitempty"`

	// FrontMatter is the full parsed header, including unrecognized keys.
	// Nil for supplementary documents without a header.
	FrontMatter *FrontMatter `json:"-"`

	// Body is the document text after the front-matter block.
	Body string `json:"-"`

	ModifiedAt time.Time `json:"modified_at"`
}

// ArgumentHint returns the declared argument-hint, empty when absent.
// Hints are informational only and participate in no uniqueness constraint.
func (d *Document) ArgumentHint() string {
	return d.FrontMatter.GetString(KeyArgumentHint)
}

// Model returns the declared model override, empty when absent.
func (d *Document) Model() string {
	return d.FrontMatter.GetString(KeyModel)
}
