package textedit

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrOverlap indicates two edits in a set overlap or are out of order.
	ErrOverlap = errors.New("overlapping text edit")

	// ErrOutOfRange indicates an edit lies outside the text it is applied to.
	ErrOutOfRange = errors.New("text edit out of range")
)

// RangeReason identifies which bound a RangeError violated.
type RangeReason int

const (
	// ReasonNegativeStart means the edit starts before offset 0.
	ReasonNegativeStart RangeReason = iota

	// ReasonNegativeLength means the edit has a negative length.
	ReasonNegativeLength

	// ReasonEndExceedsText means the edit ends past the end of the text.
	ReasonEndExceedsText
)

// String returns a short description of the reason.
func (r RangeReason) String() string {
	switch r {
	case ReasonNegativeStart:
		return "start cannot be < 0"
	case ReasonNegativeLength:
		return "length cannot be < 0"
	case ReasonEndExceedsText:
		return "end exceeds length of text"
	default:
		return fmt.Sprintf("RangeReason(%d)", int(r))
	}
}

// OverlapError describes an edit that overlaps the edit following it.
type OverlapError struct {
	// Index is the position of the failing edit within Edits.
	Index int

	// Edit is the edit that failed.
	Edit TextEdit

	// Edits is every edit of the set, in sorted order.
	Edits []TextEdit
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("overlapping text edit:\n%s", DebugDump(e.Edits, e.Index))
}

// Unwrap returns ErrOverlap.
func (e *OverlapError) Unwrap() error {
	return ErrOverlap
}

// RangeError describes an edit with a negative start or length, or one that
// extends past the end of the text.
type RangeError struct {
	// Reason is the bound that was violated.
	Reason RangeReason

	// Index is the position of the failing edit within Edits.
	Index int

	// Edit is the edit that failed.
	Edit TextEdit

	// Edits is every edit of the set, in sorted order.
	Edits []TextEdit

	// TextLen is the byte length of the text the edit was checked against.
	TextLen int
}

func (e *RangeError) Error() string {
	if e.Reason == ReasonEndExceedsText {
		return fmt.Sprintf("text edit end (%d) exceeds length of text (%d):\n%s",
			e.Edit.End(), e.TextLen, DebugDump(e.Edits, e.Index))
	}
	return fmt.Sprintf("%s:\n%s", e.Reason, DebugDump(e.Edits, e.Index))
}

// Unwrap returns ErrOutOfRange.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// DebugDump renders edits one per line, marking the edit at index failing
// with "> ". Each line reads `start end "replacement"` with newlines escaped.
func DebugDump(edits []TextEdit, failing int) string {
	lines := make([]string, 0, len(edits))
	for i, edit := range edits {
		marker := "  "
		if i == failing {
			marker = "> "
		}
		lines = append(lines, marker+edit.String())
	}
	return strings.Join(lines, "\n")
}

// FailingEdit extracts the full edit list and the index of the failing edit
// from an error returned by Apply. It reports false for any other error.
func FailingEdit(err error) ([]TextEdit, int, bool) {
	var overlapErr *OverlapError
	if errors.As(err, &overlapErr) {
		return overlapErr.Edits, overlapErr.Index, true
	}
	var rangeErr *RangeError
	if errors.As(err, &rangeErr) {
		return rangeErr.Edits, rangeErr.Index, true
	}
	return nil, -1, false
}
