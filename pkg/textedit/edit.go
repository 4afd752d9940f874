// Package textedit provides text edit values and ordered edit sets that can be
// applied atomically to a document.
package textedit

import (
	"fmt"
	"strings"
)

// TextEdit represents a single text replacement in a document.
// Offsets and lengths are measured in bytes.
type TextEdit struct {
	// Start is the byte index where the edit begins (inclusive).
	Start int

	// Length is the number of bytes replaced, starting at Start.
	Length int

	// Replacement is the text inserted in place of the removed span.
	Replacement string
}

// NewEdit creates an edit replacing length bytes at start with replacement.
func NewEdit(start, length int, replacement string) TextEdit {
	return TextEdit{
		Start:       start,
		Length:      length,
		Replacement: replacement,
	}
}

// Replace creates an edit that replaces bytes [start, end) with text.
func Replace(start, end int, text string) TextEdit {
	return NewEdit(start, end-start, text)
}

// Insert creates an edit that inserts text at the given offset.
func Insert(offset int, text string) TextEdit {
	return NewEdit(offset, 0, text)
}

// Delete creates an edit that removes length bytes starting at start.
func Delete(start, length int) TextEdit {
	return NewEdit(start, length, "")
}

// End returns the byte index where the edit ends (exclusive).
func (e TextEdit) End() int {
	return e.Start + e.Length
}

// IsInsertion reports whether the edit removes nothing.
func (e TextEdit) IsInsertion() bool {
	return e.Length == 0
}

// String renders the edit as `start end "replacement"` with newlines escaped.
func (e TextEdit) String() string {
	return fmt.Sprintf(`%d %d "%s"`, e.Start, e.End(), escapeNewlines(e.Replacement))
}

func escapeNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", `\n`)
}
