// Package lineutil locates the line of text surrounding an offset.
package lineutil

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// ErrOffsetOutOfRange indicates an offset outside [0, len(text)].
var ErrOffsetOutOfRange = errors.New("offset out of range")

// Unit is the unit an offset is measured in.
type Unit string

const (
	// UnitRune counts Unicode code points.
	UnitRune Unit = "rune"

	// UnitByte counts UTF-8 bytes.
	UnitByte Unit = "byte"

	// UnitGrapheme counts user-perceived characters (grapheme clusters), so
	// "e" followed by a combining accent is one position.
	UnitGrapheme Unit = "grapheme"
)

// IsValid returns true if the unit is known.
func (u Unit) IsValid() bool {
	switch u {
	case UnitRune, UnitByte, UnitGrapheme:
		return true
	default:
		return false
	}
}

// OffsetError describes an offset that does not fall within the text.
type OffsetError struct {
	Offset int
	Length int
	Unit   Unit
}

func (e *OffsetError) Error() string {
	return fmt.Sprintf("offset %d is out of range for text of %d %ss", e.Offset, e.Length, e.Unit)
}

// Unwrap returns ErrOffsetOutOfRange.
func (e *OffsetError) Unwrap() error {
	return ErrOffsetOutOfRange
}

// LineAtOffset returns the line containing offset, without its terminator.
//
// The offset counts characters (runes), so multi-byte text is never split.
// Offsets from 0 to the number of runes in text are accepted; the last one
// denotes the end of the text. An offset sitting on a newline resolves to the
// line that newline ends.
func LineAtOffset(text string, offset int) (string, error) {
	byteOffset, ok := ByteOffset(text, offset)
	if !ok {
		return "", &OffsetError{Offset: offset, Length: utf8.RuneCountInString(text), Unit: UnitRune}
	}
	return lineAt(text, byteOffset), nil
}

// LineAtByteOffset is LineAtOffset for a byte offset.
//
// A byte offset inside a multi-byte character still yields that character's
// whole line, since '\n' never occurs inside a UTF-8 sequence.
func LineAtByteOffset(text string, offset int) (string, error) {
	if offset < 0 || offset > len(text) {
		return "", &OffsetError{Offset: offset, Length: len(text), Unit: UnitByte}
	}
	return lineAt(text, offset), nil
}

// LineAtGraphemeOffset is LineAtOffset for an offset counted in grapheme
// clusters. A "\r\n" pair is a single cluster.
func LineAtGraphemeOffset(text string, offset int) (string, error) {
	byteOffset, ok := GraphemeByteOffset(text, offset)
	if !ok {
		return "", &OffsetError{Offset: offset, Length: uniseg.GraphemeClusterCount(text), Unit: UnitGrapheme}
	}
	return lineAt(text, byteOffset), nil
}

// LineAt dispatches on unit. An empty unit means UnitRune.
func LineAt(text string, offset int, unit Unit) (string, error) {
	switch unit {
	case UnitByte:
		return LineAtByteOffset(text, offset)
	case UnitGrapheme:
		return LineAtGraphemeOffset(text, offset)
	case UnitRune, "":
		return LineAtOffset(text, offset)
	default:
		return "", fmt.Errorf("unknown offset unit %q", unit)
	}
}

func lineAt(text string, offset int) string {
	start := strings.LastIndexByte(text[:offset], '\n') + 1

	end := len(text)
	if idx := strings.IndexByte(text[offset:], '\n'); idx >= 0 {
		end = offset + idx
	}

	line := text[start:end]
	// CRLF line endings.
	return strings.TrimSuffix(line, "\r")
}

// ByteOffset converts a rune offset into a byte offset.
// It reports false if the offset is negative or past the end of text.
func ByteOffset(text string, runeOffset int) (int, bool) {
	if runeOffset < 0 {
		return 0, false
	}
	count := 0
	for idx := range text {
		if count == runeOffset {
			return idx, true
		}
		count++
	}
	if count == runeOffset {
		return len(text), true
	}
	return 0, false
}

// GraphemeByteOffset converts an offset in grapheme clusters into a byte
// offset. It reports false if the offset is negative or past the end of text.
func GraphemeByteOffset(text string, graphemeOffset int) (int, bool) {
	if graphemeOffset < 0 {
		return 0, false
	}
	count := 0
	graphemes := uniseg.NewGraphemes(text)
	for graphemes.Next() {
		if count == graphemeOffset {
			start, _ := graphemes.Positions()
			return start, true
		}
		count++
	}
	if count == graphemeOffset {
		return len(text), true
	}
	return 0, false
}

// RuneOffset converts a byte offset into a rune offset. A byte offset inside
// a multi-byte character maps to the rune that contains it.
// It reports false if the offset is negative or past the end of text.
func RuneOffset(text string, byteOffset int) (int, bool) {
	if byteOffset < 0 || byteOffset > len(text) {
		return 0, false
	}
	prefix := text[:byteOffset]
	// Back up to the start of a character split by the offset.
	for len(prefix) > 0 && len(prefix) < len(text) && !utf8.RuneStart(text[len(prefix)]) {
		prefix = prefix[:len(prefix)-1]
	}
	return utf8.RuneCountInString(prefix), true
}
