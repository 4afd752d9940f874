package textedit

import (
	"bytes"
	"math"
	"slices"
	"strings"
)

// Apply applies every edit in the set to text and returns the result.
//
// Edits are checked from the last to the first. An edit fails when the edit
// checked before it (which lies after it in the text) starts before this
// edit's start or end, when its start or length is negative, or when it ends
// past the end of the text. Any failure aborts the whole call; no partially
// edited text is returned. An empty set returns text unchanged.
func (s EditSet) Apply(text string) (string, error) {
	if len(s.edits) == 0 {
		return text, nil
	}

	delta, err := s.validate(len(text))
	if err != nil {
		return "", err
	}

	var out strings.Builder
	out.Grow(len(text) + delta)

	cursor := 0
	for _, e := range s.edits {
		// Copy text before this edit.
		out.WriteString(text[cursor:e.Start])
		out.WriteString(e.Replacement)
		cursor = e.End()
	}
	out.WriteString(text[cursor:])

	return out.String(), nil
}

// ApplyBytes is Apply for byte content. The input slice is not modified.
func (s EditSet) ApplyBytes(content []byte) ([]byte, error) {
	if len(s.edits) == 0 {
		return content, nil
	}

	delta, err := s.validate(len(content))
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	out.Grow(len(content) + delta)

	cursor := 0
	for _, e := range s.edits {
		out.Write(content[cursor:e.Start])
		out.WriteString(e.Replacement)
		cursor = e.End()
	}
	out.Write(content[cursor:])

	return out.Bytes(), nil
}

// validate walks the edits in reverse, tracking the length the text would
// have after each replacement, and returns the total change in length.
//
// Once validated, consecutive edits satisfy edits[i].End() <= edits[i+1].Start,
// so splicing them front to back over the original text gives the same result
// as replacing them back to front one at a time.
func (s EditSet) validate(textLen int) (int, error) {
	prevStart := math.MaxInt
	curLen := textLen

	for i := len(s.edits) - 1; i >= 0; i-- {
		edit := s.edits[i]

		// The later edit's start is compared against both ends of this edit.
		if prevStart < edit.Start || prevStart < edit.End() {
			return 0, &OverlapError{Index: i, Edit: edit, Edits: slices.Clone(s.edits)}
		}
		if edit.Start < 0 {
			return 0, s.rangeError(ReasonNegativeStart, i, curLen)
		}
		if edit.Length < 0 {
			return 0, s.rangeError(ReasonNegativeLength, i, curLen)
		}
		// Written as a difference so huge offsets cannot overflow.
		if edit.Length > curLen-edit.Start {
			return 0, s.rangeError(ReasonEndExceedsText, i, curLen)
		}

		prevStart = edit.Start
		curLen += len(edit.Replacement) - edit.Length
	}

	return curLen - textLen, nil
}

func (s EditSet) rangeError(reason RangeReason, index, textLen int) *RangeError {
	return &RangeError{
		Reason:  reason,
		Index:   index,
		Edit:    s.edits[index],
		Edits:   slices.Clone(s.edits),
		TextLen: textLen,
	}
}
