package scaffold

// agentTemplate is the built-in starter for agent persona documents.
const agentTemplate = `---
name: {{.Name}}
description: {{.Description}}
{{- if .Tools}}
tools: {{range $i, $t := .Tools}}{{if $i}}, {{end}}{{$t}}{{end}}
{{- end}}
---

# {{.Name}}

You are a senior practitioner responsible for {{.Description}}.

## Responsibilities

- Assess the current state before recommending changes
- Explain tradeoffs, not just conclusions
- Prefer small reviewable steps over sweeping rewrites

## Working style

Start by reading the relevant files. Summarize what you found, then
propose a plan before making changes.
`

// skillTemplate is the built-in starter for SKILL.md documents.
const skillTemplate = `---
name: {{.Name}}
description: {{.Description}}
{{- if .Tools}}
tools: {{range $i, $t := .Tools}}{{if $i}}, {{end}}{{$t}}{{end}}
{{- end}}
---

# {{.Name}}

{{.Description}}

## When to use this skill

Use this skill when the task calls for it. Replace this section with the
concrete triggers that should activate the skill.

## Steps

1. Gather the inputs the procedure needs
2. Apply the procedure
3. Verify the result

## Advanced

Link deeper material from a reference/ directory next to this file.
`

// commandTemplate is the built-in starter for slash-command documents.
const commandTemplate = `---
description: {{.Description}}
argument-hint: [arguments]
---

# {{.Name}}

{{.Description}}

## Instructions

1. Parse the arguments: $ARGUMENTS
2. Perform the action
3. Report what was done
`
