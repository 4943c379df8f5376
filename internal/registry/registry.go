// Package registry builds and queries the toolkit document index. A
// registry is built once from a plugins directory tree and is read-only
// afterwards; it is a plain value, not a process-wide singleton, so
// multiple roots can be loaded independently.
package registry

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauern/plugindex/internal/classify"
	"github.com/klauern/plugindex/internal/frontmatter"
	"github.com/klauern/plugindex/internal/logging"
	"github.com/klauern/plugindex/internal/manifest"
	"github.com/klauern/plugindex/internal/model"
)

// Options configures a registry build.
type Options struct {
	// Ignore lists glob patterns, matched against slash-separated paths
	// relative to the root, for files skipped during the scan.
	Ignore []string
}

// DefaultOptions returns the default build options.
func DefaultOptions() Options {
	return Options{}
}

// Toolkit groups the documents of one top-level directory under the
// scanned root.
type Toolkit struct {
	// Name is the directory name under the registry root.
	Name string
	// Manifest is the optional .claude-plugin/plugin.json, nil when absent.
	Manifest *manifest.Manifest

	docs          map[model.Role][]*model.Document
	byName        map[model.Role]map[string]*model.Document
	supplementary []*model.Document
}

func newToolkit(name string) *Toolkit {
	return &Toolkit{
		Name:   name,
		docs:   make(map[model.Role][]*model.Document),
		byName: make(map[model.Role]map[string]*model.Document),
	}
}

// Documents returns the toolkit's documents of one primary role in
// discovery order.
func (t *Toolkit) Documents(role model.Role) []*model.Document {
	return t.docs[role]
}

// Supplementary returns files excluded from primary lookup, in discovery
// order.
func (t *Toolkit) Supplementary() []*model.Document {
	return t.supplementary
}

// Lookup returns the document with the given role and name, or false when
// no such document exists.
func (t *Toolkit) Lookup(role model.Role, name string) (*model.Document, bool) {
	doc, ok := t.byName[role][name]
	return doc, ok
}

// Count returns the number of documents of one role.
func (t *Toolkit) Count(role model.Role) int {
	if role == model.RoleSupplementary {
		return len(t.supplementary)
	}
	return len(t.docs[role])
}

// insert adds a document under the duplicate policy: within one toolkit
// and role the last-seen document wins and the replacement is recorded as
// a warning by the caller.
func (t *Toolkit) insert(doc *model.Document) (replaced *model.Document) {
	names := t.byName[doc.Role]
	if names == nil {
		names = make(map[string]*model.Document)
		t.byName[doc.Role] = names
	}

	if prev, ok := names[doc.Name]; ok {
		names[doc.Name] = doc
		for i, d := range t.docs[doc.Role] {
			if d == prev {
				t.docs[doc.Role][i] = doc
				break
			}
		}
		return prev
	}

	names[doc.Name] = doc
	t.docs[doc.Role] = append(t.docs[doc.Role], doc)
	return nil
}

// Registry is the in-memory index of a scanned plugins tree.
type Registry struct {
	root     string
	order    []string
	toolkits map[string]*Toolkit
	errors   []BuildError
	warnings []Warning
}

// Build scans root and indexes every markdown file found. Per-file
// failures are collected into the registry's error list; the only
// top-level failure is the root itself being unreadable.
func Build(root string) (*Registry, error) {
	return BuildWithOptions(root, DefaultOptions())
}

// BuildWithOptions is Build with explicit options.
func BuildWithOptions(root string, opts Options) (*Registry, error) {
	defer logging.Timer("registry build")()

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("registry root %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("registry root %q is not a directory", root)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("registry root %q: %w", root, err)
	}

	r := &Registry{
		root:     absRoot,
		toolkits: make(map[string]*Toolkit),
	}

	for path := range Files(absRoot) {
		r.addFile(path, opts)
	}

	logging.Debug("registry built",
		logging.Path(absRoot),
		logging.Count(r.Len()),
	)

	return r, nil
}

// addFile parses and classifies one discovered file, recording a
// BuildError instead of failing the scan when the file is unusable.
func (r *Registry) addFile(path string, opts Options) {
	rel, err := filepath.Rel(r.root, path)
	if err != nil {
		return
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range opts.Ignore {
		if ok, _ := filepath.Match(pattern, rel); ok {
			logging.Debug("ignoring file", logging.Path(rel))
			return
		}
	}

	// The first path segment names the toolkit; files directly under the
	// root belong to none and are skipped.
	toolkitName, tkRel, ok := strings.Cut(rel, "/")
	if !ok {
		logging.Debug("skipping file outside any toolkit", logging.Path(rel))
		return
	}

	tk := r.toolkit(toolkitName)
	role := classify.RoleForPath(tkRel)

	// #nosec G304 - path comes from walking the scanned root
	content, err := os.ReadFile(path)
	if err != nil {
		r.errors = append(r.errors, BuildError{Path: rel, Err: err})
		return
	}

	doc := &model.Document{
		Toolkit: toolkitName,
		Role:    role,
		Path:    path,
		RelPath: rel,
	}
	if info, err := os.Stat(path); err == nil {
		doc.ModifiedAt = info.ModTime()
	}

	if role == model.RoleSupplementary {
		// Supplementary files are reachable only as free text; a missing
		// or broken header is tolerated and the whole file becomes body.
		if res, err := frontmatter.Parse(content); err == nil {
			doc.FrontMatter = res.FrontMatter
			doc.Body = res.Body
			doc.Name = res.FrontMatter.GetString(model.KeyName)
		} else {
			doc.Body = string(content)
		}
		if doc.Name == "" {
			doc.Name = strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
		}
		tk.supplementary = append(tk.supplementary, doc)
		return
	}

	res, err := frontmatter.Parse(content)
	if err != nil {
		r.errors = append(r.errors, BuildError{Path: rel, Err: err})
		return
	}

	if err := classify.Validate(role, res.FrontMatter, rel); err != nil {
		r.errors = append(r.errors, BuildError{Path: rel, Err: err})
		return
	}

	doc.FrontMatter = res.FrontMatter
	doc.Body = res.Body
	doc.Name = classify.DocumentName(role, tkRel, res.FrontMatter)
	doc.Description = res.FrontMatter.GetString(model.KeyDescription)
	doc.Tools = res.FrontMatter.GetList(model.KeyTools)
	if doc.Tools == nil {
		doc.Tools = res.FrontMatter.GetList(model.KeyAllowedTools)
	}

	if replaced := tk.insert(doc); replaced != nil {
		r.warnings = append(r.warnings, Warning{
			Path: rel,
			Message: fmt.Sprintf("duplicate %s name %q also declared by %s; keeping last-seen",
				role, doc.Name, replaced.RelPath),
		})
		logging.Warn("duplicate document name",
			logging.Toolkit(toolkitName),
			logging.Role(string(role)),
			logging.Doc(doc.Name),
		)
	}
}

// toolkit returns the entry for name, creating it and loading its
// manifest on first use.
func (r *Registry) toolkit(name string) *Toolkit {
	if tk, ok := r.toolkits[name]; ok {
		return tk
	}

	tk := newToolkit(name)
	m, err := manifest.Load(filepath.Join(r.root, name))
	if err != nil {
		r.errors = append(r.errors, BuildError{
			Path: filepath.ToSlash(filepath.Join(name, ".claude-plugin", manifest.FileName)),
			Err:  err,
		})
	} else {
		tk.Manifest = m
	}

	r.toolkits[name] = tk
	r.order = append(r.order, name)
	return tk
}

// Root returns the absolute path the registry was built from.
func (r *Registry) Root() string {
	return r.root
}

// Toolkits returns a lazy sequence of toolkit names in discovery order.
// The sequence is finite and restartable; re-running it re-enumerates the
// same in-memory data with no side effects.
func (r *Registry) Toolkits() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range r.order {
			if !yield(name) {
				return
			}
		}
	}
}

// Toolkit returns the entry for a toolkit name.
func (r *Registry) Toolkit(name string) (*Toolkit, bool) {
	tk, ok := r.toolkits[name]
	return tk, ok
}

// Lookup returns the document matching toolkit, role, and name. A miss is
// a typed *NotFoundError, never a silent nil, so callers can distinguish
// an unknown toolkit from an unknown document.
func (r *Registry) Lookup(toolkit string, role model.Role, name string) (*model.Document, error) {
	tk, ok := r.toolkits[toolkit]
	if !ok {
		return nil, &NotFoundError{Toolkit: toolkit, Role: role, Name: name, UnknownToolkit: true}
	}

	doc, ok := tk.Lookup(role, name)
	if !ok {
		return nil, &NotFoundError{Toolkit: toolkit, Role: role, Name: name}
	}
	return doc, nil
}

// Documents returns one toolkit's documents of a role in discovery order.
func (r *Registry) Documents(toolkit string, role model.Role) ([]*model.Document, error) {
	tk, ok := r.toolkits[toolkit]
	if !ok {
		return nil, &NotFoundError{Toolkit: toolkit, Role: role, UnknownToolkit: true}
	}
	if role == model.RoleSupplementary {
		return tk.Supplementary(), nil
	}
	return tk.Documents(role), nil
}

// All returns every primary document across all toolkits in discovery
// order.
func (r *Registry) All() []*model.Document {
	var docs []*model.Document
	for _, name := range r.order {
		tk := r.toolkits[name]
		for _, role := range model.PrimaryRoles() {
			docs = append(docs, tk.Documents(role)...)
		}
	}
	return docs
}

// Len returns the total number of primary documents.
func (r *Registry) Len() int {
	n := 0
	for _, tk := range r.toolkits {
		for _, role := range model.PrimaryRoles() {
			n += tk.Count(role)
		}
	}
	return n
}

// Errors returns the per-file failures collected during the build.
func (r *Registry) Errors() []BuildError {
	return r.errors
}

// Warnings returns the non-fatal conditions observed during the build.
func (r *Registry) Warnings() []Warning {
	return r.warnings
}
