package ui

import (
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/klauern/plugindex/internal/model"
)

// fallbackWidth is used when the terminal size cannot be determined.
const fallbackWidth = 80

var titleCaser = cases.Title(language.English)

// TermWidth returns the current terminal width for table layout, falling
// back to 80 columns when stdout is not a terminal.
func TermWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}

// Truncate shortens s to at most width display cells, appending an
// ellipsis when content was cut. Width is measured in terminal cells, so
// wide runes count double.
func Truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width < 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

// Pad right-pads s with spaces to exactly width display cells.
func Pad(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}

// RoleTitle returns the role name in title case for display ("Agent",
// "Skill", "Command").
func RoleTitle(r model.Role) string {
	return titleCaser.String(string(r))
}
