package model

import (
	"fmt"
	"strings"
)

// Role identifies what kind of plugin document a file is.
// The role is derived from the file's location inside a toolkit tree,
// never from its front matter.
type Role string

const (
	// RoleAgent is a persona document stored under agents/.
	RoleAgent Role = "agent"

	// RoleSkill is an instructional document stored as skills/<name>/SKILL.md.
	RoleSkill Role = "skill"

	// RoleCommand is a slash-command template stored under commands/,
	// identified by its filename stem rather than a name field.
	RoleCommand Role = "command"

	// RoleSupplementary marks files that ride along with a toolkit
	// (reference material under reference/, stray markdown) and are
	// excluded from the primary lookup.
	RoleSupplementary Role = "supplementary"
)

// IsValid returns true if the role is recognized.
func (r Role) IsValid() bool {
	switch r {
	case RoleAgent, RoleSkill, RoleCommand, RoleSupplementary:
		return true
	default:
		return false
	}
}

// IsPrimary returns true for roles that participate in registry lookup.
func (r Role) IsPrimary() bool {
	switch r {
	case RoleAgent, RoleSkill, RoleCommand:
		return true
	default:
		return false
	}
}

// PrimaryRoles returns the roles that participate in registry lookup.
func PrimaryRoles() []Role {
	return []Role{RoleAgent, RoleSkill, RoleCommand}
}

// AllRoles returns all supported roles.
func AllRoles() []Role {
	return []Role{RoleAgent, RoleSkill, RoleCommand, RoleSupplementary}
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// Description returns a human-readable description of the role.
func (r Role) Description() string {
	switch r {
	case RoleAgent:
		return "Persona document describing a strategic decision-making role"
	case RoleSkill:
		return "Instructional document describing a tactical how-to procedure"
	case RoleCommand:
		return "Template document describing a single invocable action"
	case RoleSupplementary:
		return "Reference material excluded from primary lookup"
	default:
		return "Unknown role"
	}
}

// ParseRole converts a string to a Role.
// Returns an error if the role is not recognized.
func ParseRole(s string) (Role, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))

	// Try exact match first
	r := Role(normalized)
	if r.IsValid() {
		return r, nil
	}

	// Try common aliases, including the directory names themselves
	switch normalized {
	case "agents":
		return RoleAgent, nil
	case "skills":
		return RoleSkill, nil
	case "commands", "cmd", "slash-command":
		return RoleCommand, nil
	case "reference", "supplemental":
		return RoleSupplementary, nil
	default:
		return "", fmt.Errorf("unknown role %q (valid: agent, skill, command)", s)
	}
}
