// Package scaffold generates starter plugin documents from built-in
// templates so new agents, skills, and commands begin with the front
// matter their role requires.
package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/klauern/plugindex/internal/model"
)

// Data holds the values passed to document templates.
type Data struct {
	Name        string
	Description string
	Toolkit     string
	Tools       []string
}

// Generator renders starter documents for each primary role.
type Generator struct {
	templates map[model.Role]*template.Template
}

// New creates a generator with the built-in templates loaded.
func New() (*Generator, error) {
	g := &Generator{templates: make(map[model.Role]*template.Template)}

	builtin := map[model.Role]string{
		model.RoleAgent:   agentTemplate,
		model.RoleSkill:   skillTemplate,
		model.RoleCommand: commandTemplate,
	}

	for role, content := range builtin {
		tmpl, err := template.New(string(role)).Parse(content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", role, err)
		}
		g.templates[role] = tmpl
	}

	return g, nil
}

// Render produces the document text for a role.
func (g *Generator) Render(role model.Role, data Data) ([]byte, error) {
	tmpl, ok := g.templates[role]
	if !ok {
		return nil, fmt.Errorf("no template for role %q", role)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render %s template: %w", role, err)
	}
	return buf.Bytes(), nil
}

// TargetPath returns where a new document of a role belongs inside a
// toolkit, following the directory layout contract.
func TargetPath(root, toolkit string, role model.Role, name string) (string, error) {
	switch role {
	case model.RoleAgent:
		return filepath.Join(root, toolkit, "agents", name+".md"), nil
	case model.RoleSkill:
		return filepath.Join(root, toolkit, "skills", name, "SKILL.md"), nil
	case model.RoleCommand:
		return filepath.Join(root, toolkit, "commands", name+".md"), nil
	default:
		return "", fmt.Errorf("cannot scaffold role %q", role)
	}
}

// Write renders a document and writes it to its target path. It refuses
// to overwrite an existing file.
func (g *Generator) Write(root, toolkit string, role model.Role, data Data) (string, error) {
	target, err := TargetPath(root, toolkit, role, data.Name)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(target); err == nil {
		return "", fmt.Errorf("document already exists: %s", target)
	}

	content, err := g.Render(role, data)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return "", fmt.Errorf("failed to create document directory: %w", err)
	}

	// #nosec G306 - plugin documents are world-readable markdown
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write document: %w", err)
	}

	return target, nil
}
