package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauern/plugindex/internal/classify"
	"github.com/klauern/plugindex/internal/frontmatter"
	"github.com/klauern/plugindex/internal/model"
)

func TestRenderProducesValidDocuments(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	data := Data{
		Name:        "code-reviewer",
		Description: "Reviews changes before merge",
		Toolkit:     "go-toolkit",
		Tools:       []string{"Read", "Grep"},
	}

	for _, role := range model.PrimaryRoles() {
		t.Run(string(role), func(t *testing.T) {
			content, err := g.Render(role, data)
			if err != nil {
				t.Fatalf("Render(%s) error: %v", role, err)
			}

			result, err := frontmatter.Parse(content)
			if err != nil {
				t.Fatalf("rendered %s document does not parse: %v", role, err)
			}

			relPath, err := filepath.Rel("plugins",
				mustTarget(t, "plugins", data.Toolkit, role, data.Name))
			if err != nil {
				t.Fatal(err)
			}
			relPath = filepath.ToSlash(relPath)

			if got := classify.RoleForPath(relPath); got != role {
				t.Fatalf("target path %q classifies as %s, want %s", relPath, got, role)
			}
			if err := classify.Validate(role, result.FrontMatter, relPath); err != nil {
				t.Errorf("rendered %s document fails validation: %v", role, err)
			}
		})
	}
}

func mustTarget(t *testing.T, root, toolkit string, role model.Role, name string) string {
	t.Helper()
	target, err := TargetPath(root, toolkit, role, name)
	if err != nil {
		t.Fatalf("TargetPath(%s) error: %v", role, err)
	}
	return target
}

func TestTargetPath(t *testing.T) {
	tests := map[string]struct {
		role    model.Role
		want    string
		wantErr bool
	}{
		"agent":         {role: model.RoleAgent, want: "plugins/tk/agents/helper.md"},
		"skill":         {role: model.RoleSkill, want: "plugins/tk/skills/helper/SKILL.md"},
		"command":       {role: model.RoleCommand, want: "plugins/tk/commands/helper.md"},
		"supplementary": {role: model.RoleSupplementary, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := TargetPath("plugins", "tk", tt.role, "helper")
			if (err != nil) != tt.wantErr {
				t.Fatalf("TargetPath() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != filepath.FromSlash(tt.want) {
				t.Errorf("TargetPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteCreatesDocument(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatal(err)
	}

	root := t.TempDir()
	data := Data{Name: "smart-commit", Description: "Commit staged work", Toolkit: "git-toolkit"}

	target, err := g.Write(root, "git-toolkit", model.RoleCommand, data)
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	content, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("reading written document: %v", err)
	}
	if !strings.Contains(string(content), "Commit staged work") {
		t.Errorf("written document missing description:\n%s", content)
	}
}

func TestWriteRefusesOverwrite(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatal(err)
	}

	root := t.TempDir()
	data := Data{Name: "helper", Description: "First version", Toolkit: "tk"}

	if _, err := g.Write(root, "tk", model.RoleAgent, data); err != nil {
		t.Fatalf("first Write() error: %v", err)
	}
	if _, err := g.Write(root, "tk", model.RoleAgent, data); err == nil {
		t.Fatal("second Write() succeeded, want overwrite refusal")
	}
}
