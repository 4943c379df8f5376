// Package frontmatter extracts and parses the delimited metadata block at
// the top of a plugin document. The block must open with a line that is
// exactly "---" at offset 0 and close with the next such line. Inside the
// block every non-blank line must be of the form "key: value".
package frontmatter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/klauern/plugindex/internal/model"
)

const delimiter = "---"

// ParseError reports a malformed front-matter block.
type ParseError struct {
	// Reason describes what was malformed.
	Reason string
	// Line is the 1-based line number of the offending line within the
	// document, or 0 for delimiter-level failures.
	Line int
}

// Error returns a formatted parse error message.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed front matter at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("malformed front matter: %s", e.Reason)
}

// Result contains the parsed front matter and the remaining body.
type Result struct {
	FrontMatter *model.FrontMatter
	Body        string
}

// Parse extracts and parses the front-matter block from raw document text.
// It is a pure transformation: parsing the same input twice yields
// identical results. On failure it returns a *ParseError and no partial
// mapping.
func Parse(content []byte) (*Result, error) {
	block, body, err := split(content)
	if err != nil {
		return nil, err
	}

	fm, err := parseBlock(block)
	if err != nil {
		return nil, err
	}

	return &Result{FrontMatter: fm, Body: body}, nil
}

// split separates the delimited block from the body. Both \n and \r\n
// line endings are tolerated; the returned block uses \n only.
func split(content []byte) (block []string, body string, err error) {
	if !bytes.HasPrefix(content, []byte(delimiter+"\n")) &&
		!bytes.HasPrefix(content, []byte(delimiter+"\r\n")) {
		return nil, "", &ParseError{Reason: "missing opening delimiter"}
	}

	normalized := strings.ReplaceAll(string(content), "\r\n", "\n")
	lines := strings.Split(normalized, "\n")

	closing := -1
	for i := 1; i < len(lines); i++ {
		if lines[i] == delimiter {
			closing = i
			break
		}
	}
	if closing == -1 {
		return nil, "", &ParseError{Reason: "closing delimiter never found"}
	}

	body = strings.Join(lines[closing+1:], "\n")
	// Drop the single newline that followed the closing delimiter.
	body = strings.TrimPrefix(body, "\n")

	return lines[1:closing], body, nil
}

// parseBlock populates a mapping from "key: value" lines. Blank lines are
// skipped. Values under recognized list keys are split on commas with each
// element trimmed; all other values stay scalar.
func parseBlock(lines []string) (*model.FrontMatter, error) {
	fm := model.NewFrontMatter()

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		key, raw, ok := splitLine(line)
		if !ok {
			// Line numbers count from the opening delimiter at line 1.
			return nil, &ParseError{
				Reason: fmt.Sprintf("line %q is not of the form key: value", line),
				Line:   i + 2,
			}
		}

		fm.Set(key, parseValue(key, raw))
	}

	return fm, nil
}

// splitLine breaks a "key: value" line into its parts. The key must be
// non-empty and contain no whitespace; the value may be empty.
func splitLine(line string) (key, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", "", false
	}

	key = line[:idx]
	if strings.TrimSpace(key) != key || strings.ContainsAny(key, " \t") {
		return "", "", false
	}

	return key, strings.TrimSpace(line[idx+1:]), true
}

// parseValue builds the tagged value for a key. Comma-separated values
// under list keys become ordered lists; everything else passes through as
// an opaque scalar.
func parseValue(key, raw string) model.Value {
	if !model.IsListKey(key) {
		return model.StringValue(raw)
	}

	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return model.ListValue(items...)
}

// Serialize renders a mapping back to a delimited block of "key: value"
// lines in insertion order. Re-parsing the output yields an equal mapping.
func Serialize(fm *model.FrontMatter) []byte {
	var b bytes.Buffer
	b.WriteString(delimiter + "\n")
	for _, key := range fm.Keys() {
		v, _ := fm.Get(key)
		b.WriteString(key + ": " + v.String() + "\n")
	}
	b.WriteString(delimiter + "\n")
	return b.Bytes()
}
