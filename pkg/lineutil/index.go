package lineutil

import "sort"

// Position is a 1-based line and column. Columns count runes.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if both fields are positive.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// lineSpan locates one line of an indexed text.
type lineSpan struct {
	// start is the byte offset of the first byte of the line.
	start int

	// contentEnd is where the terminator ("\n" or "\r\n") begins.
	contentEnd int

	// end is the byte offset just past the terminator.
	end int
}

// Index is a line table for repeated lookups in the same text.
// The zero value is not usable; call NewIndex.
type Index struct {
	text  string
	lines []lineSpan
}

// NewIndex scans text once and records where every line starts and ends.
// A text ending in a newline has an empty last line.
func NewIndex(text string) *Index {
	idx := &Index{text: text}

	lineStart := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' {
			continue
		}
		contentEnd := i
		if i > lineStart && text[i-1] == '\r' {
			contentEnd = i - 1
		}
		idx.lines = append(idx.lines, lineSpan{start: lineStart, contentEnd: contentEnd, end: i + 1})
		lineStart = i + 1
	}
	idx.lines = append(idx.lines, lineSpan{start: lineStart, contentEnd: len(text), end: len(text)})

	return idx
}

// LineCount returns the number of lines.
func (x *Index) LineCount() int {
	return len(x.lines)
}

// Position converts a byte offset into a line and column. Offsets inside a
// multi-byte character resolve to that character. An offset on a line
// terminator belongs to the line it ends. It reports false for offsets
// outside [0, len(text)].
func (x *Index) Position(byteOffset int) (Position, bool) {
	if byteOffset < 0 || byteOffset > len(x.text) {
		return Position{}, false
	}

	lineIdx := sort.Search(len(x.lines), func(i int) bool {
		return x.lines[i].end > byteOffset
	})
	if lineIdx == len(x.lines) {
		lineIdx = len(x.lines) - 1
	}

	span := x.lines[lineIdx]
	col, _ := RuneOffset(x.text[span.start:], byteOffset-span.start)
	return Position{Line: lineIdx + 1, Column: col + 1}, true
}

// Offset converts a position back into a byte offset. The column may point
// one past the last character of the line.
func (x *Index) Offset(pos Position) (int, bool) {
	if pos.Line < 1 || pos.Line > len(x.lines) || pos.Column < 1 {
		return 0, false
	}

	span := x.lines[pos.Line-1]
	offset, ok := ByteOffset(x.text[span.start:span.contentEnd], pos.Column-1)
	if !ok {
		return 0, false
	}
	return span.start + offset, true
}

// Line returns the 1-based line n without its terminator.
func (x *Index) Line(n int) (string, bool) {
	if n < 1 || n > len(x.lines) {
		return "", false
	}
	span := x.lines[n-1]
	return x.text[span.start:span.contentEnd], true
}
