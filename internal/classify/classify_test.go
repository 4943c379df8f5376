package classify

import (
	"errors"
	"testing"

	"github.com/klauern/plugindex/internal/model"
)

func TestRoleForPath(t *testing.T) {
	tests := map[string]struct {
		relPath string
		want    model.Role
	}{
		"agent file": {
			relPath: "agents/playbook-architect.md",
			want:    model.RoleAgent,
		},
		"nested agent file": {
			relPath: "agents/infra/deploy-strategist.md",
			want:    model.RoleAgent,
		},
		"skill document": {
			relPath: "skills/goroutine-patterns/SKILL.md",
			want:    model.RoleSkill,
		},
		"reference under skill": {
			relPath: "skills/goroutine-patterns/reference/channels.md",
			want:    model.RoleSupplementary,
		},
		"sibling markdown in skill dir": {
			relPath: "skills/goroutine-patterns/notes.md",
			want:    model.RoleSupplementary,
		},
		"command file": {
			relPath: "commands/smart-commit.md",
			want:    model.RoleCommand,
		},
		"reference under agents": {
			relPath: "agents/reference/background.md",
			want:    model.RoleSupplementary,
		},
		"unknown top directory": {
			relPath: "docs/overview.md",
			want:    model.RoleSupplementary,
		},
		"file at toolkit root": {
			relPath: "README.md",
			want:    model.RoleSupplementary,
		},
		"skill named file outside skills": {
			relPath: "docs/SKILL.md",
			want:    model.RoleSupplementary,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := RoleForPath(tt.relPath); got != tt.want {
				t.Errorf("RoleForPath(%q) = %v, want %v", tt.relPath, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	withKeys := func(pairs ...string) *model.FrontMatter {
		fm := model.NewFrontMatter()
		for i := 0; i+1 < len(pairs); i += 2 {
			fm.Set(pairs[i], model.StringValue(pairs[i+1]))
		}
		return fm
	}

	tests := map[string]struct {
		role         model.Role
		fm           *model.FrontMatter
		wantErrField string
	}{
		"agent complete": {
			role: model.RoleAgent,
			fm:   withKeys("name", "architect", "description", "designs things"),
		},
		"agent missing name": {
			role:         model.RoleAgent,
			fm:           withKeys("description", "designs things"),
			wantErrField: model.KeyName,
		},
		"agent missing description": {
			role:         model.RoleAgent,
			fm:           withKeys("name", "architect"),
			wantErrField: model.KeyDescription,
		},
		"skill missing name": {
			role:         model.RoleSkill,
			fm:           withKeys("description", "how to"),
			wantErrField: model.KeyName,
		},
		"command needs only description": {
			role: model.RoleCommand,
			fm:   withKeys("description", "commits things"),
		},
		"command missing description": {
			role:         model.RoleCommand,
			fm:           withKeys("argument-hint", "[msg]"),
			wantErrField: model.KeyDescription,
		},
		"whitespace only value counts as missing": {
			role:         model.RoleSkill,
			fm:           withKeys("name", "   ", "description", "x"),
			wantErrField: model.KeyName,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := Validate(tt.role, tt.fm, "some/path.md")

			if tt.wantErrField == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}

			var missing *MissingFieldError
			if !errors.As(err, &missing) {
				t.Fatalf("Validate() error = %v, want *MissingFieldError", err)
			}
			if missing.Field != tt.wantErrField {
				t.Errorf("missing field = %q, want %q", missing.Field, tt.wantErrField)
			}
			if missing.Role != tt.role {
				t.Errorf("error role = %v, want %v", missing.Role, tt.role)
			}
		})
	}
}

func TestDocumentName(t *testing.T) {
	fm := model.NewFrontMatter()
	fm.Set(model.KeyName, model.StringValue("declared-name"))

	if got := DocumentName(model.RoleAgent, "agents/file.md", fm); got != "declared-name" {
		t.Errorf("agent name = %q, want declared-name", got)
	}
	if got := DocumentName(model.RoleSkill, "skills/x/SKILL.md", fm); got != "declared-name" {
		t.Errorf("skill name = %q, want declared-name", got)
	}
	// Commands use the filename stem even when a name field is present.
	if got := DocumentName(model.RoleCommand, "commands/smart-commit.md", fm); got != "smart-commit" {
		t.Errorf("command name = %q, want smart-commit", got)
	}
}
