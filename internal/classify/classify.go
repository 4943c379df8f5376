// Package classify assigns registry roles to toolkit documents and
// validates role-specific front-matter requirements. Role assignment is
// purely path-based; front matter never changes a document's role.
package classify

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/klauern/plugindex/internal/model"
)

// skillFileName is the only filename that counts as a skill document.
// Sibling markdown inside a skill directory is supplementary.
const skillFileName = "SKILL.md"

// MissingFieldError reports a required front-matter field absent for a role.
type MissingFieldError struct {
	Role  model.Role
	Field string
	Path  string
}

// Error returns a formatted validation error message.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s document %q missing required field %q", e.Role, e.Path, e.Field)
}

// RoleForPath determines a document's role from its path relative to the
// toolkit root. Files under a reference/ directory are supplementary
// regardless of what segment they sit beneath.
func RoleForPath(relPath string) model.Role {
	clean := path.Clean(filepath.ToSlash(relPath))
	segments := strings.Split(clean, "/")
	if len(segments) < 2 {
		// A file directly under the toolkit root belongs to no role.
		return model.RoleSupplementary
	}

	dirs := segments[:len(segments)-1]
	base := segments[len(segments)-1]

	for _, dir := range dirs {
		if dir == "reference" {
			return model.RoleSupplementary
		}
	}

	switch dirs[0] {
	case "agents":
		return model.RoleAgent
	case "commands":
		return model.RoleCommand
	case "skills":
		if base == skillFileName {
			return model.RoleSkill
		}
		return model.RoleSupplementary
	default:
		return model.RoleSupplementary
	}
}

// requiredFields maps each primary role to the front-matter keys it must
// declare. Commands are identified by filename, so name is not expected.
var requiredFields = map[model.Role][]string{
	model.RoleAgent:   {model.KeyName, model.KeyDescription},
	model.RoleSkill:   {model.KeyName, model.KeyDescription},
	model.RoleCommand: {model.KeyDescription},
}

// Validate checks that fm declares every field the role requires. The
// first missing field is reported; path is carried for error context.
func Validate(role model.Role, fm *model.FrontMatter, relPath string) error {
	for _, field := range requiredFields[role] {
		if strings.TrimSpace(fm.GetString(field)) == "" {
			return &MissingFieldError{Role: role, Field: field, Path: relPath}
		}
	}
	return nil
}

// DocumentName derives the registry name for a classified document.
// Commands use the filename stem; agents and skills use the declared name.
func DocumentName(role model.Role, relPath string, fm *model.FrontMatter) string {
	if role == model.RoleCommand {
		base := path.Base(filepath.ToSlash(relPath))
		return strings.TrimSuffix(base, path.Ext(base))
	}
	return fm.GetString(model.KeyName)
}
