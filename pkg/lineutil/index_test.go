package lineutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textedits/pkg/lineutil"
)

func TestNewIndex_Lines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		lines []string
	}{
		{name: "empty", text: "", lines: []string{""}},
		{name: "single line", text: "abc", lines: []string{"abc"}},
		{name: "trailing newline", text: "abc\n", lines: []string{"abc", ""}},
		{name: "crlf", text: "one\r\ntwo\r\n", lines: []string{"one", "two", ""}},
		{name: "mixed", text: "a\nb\r\nc", lines: []string{"a", "b", "c"}},
		{name: "blank lines", text: "\n\n", lines: []string{"", "", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			idx := lineutil.NewIndex(tt.text)
			require.Equal(t, len(tt.lines), idx.LineCount())
			for i, want := range tt.lines {
				got, ok := idx.Line(i + 1)
				require.True(t, ok)
				assert.Equal(t, want, got, "line %d", i+1)
			}

			_, ok := idx.Line(0)
			assert.False(t, ok)
			_, ok = idx.Line(len(tt.lines) + 1)
			assert.False(t, ok)
		})
	}
}

func TestIndex_Position(t *testing.T) {
	t.Parallel()

	text := "a转b\r\nsecond\nx"
	idx := lineutil.NewIndex(text)

	tests := []struct {
		offset int
		want   lineutil.Position
	}{
		{offset: 0, want: lineutil.Position{Line: 1, Column: 1}},
		{offset: 1, want: lineutil.Position{Line: 1, Column: 2}},
		{offset: 2, want: lineutil.Position{Line: 1, Column: 2}}, // inside 转
		{offset: 4, want: lineutil.Position{Line: 1, Column: 3}},
		{offset: 5, want: lineutil.Position{Line: 1, Column: 4}}, // '\r'
		{offset: 6, want: lineutil.Position{Line: 1, Column: 5}}, // '\n'
		{offset: 7, want: lineutil.Position{Line: 2, Column: 1}},
		{offset: 13, want: lineutil.Position{Line: 2, Column: 7}},
		{offset: 14, want: lineutil.Position{Line: 3, Column: 1}},
		{offset: 15, want: lineutil.Position{Line: 3, Column: 2}}, // end of text
	}

	for _, tt := range tests {
		got, ok := idx.Position(tt.offset)
		require.True(t, ok, "offset %d", tt.offset)
		assert.Equal(t, tt.want, got, "offset %d", tt.offset)
	}

	_, ok := idx.Position(-1)
	assert.False(t, ok)
	_, ok = idx.Position(len(text) + 1)
	assert.False(t, ok)
}

func TestIndex_PositionMatchesLineAt(t *testing.T) {
	t.Parallel()

	text := "first\nsecond line\r\n\nlast"
	idx := lineutil.NewIndex(text)

	for offset := 0; offset <= len(text); offset++ {
		pos, ok := idx.Position(offset)
		require.True(t, ok)

		fromIndex, ok := idx.Line(pos.Line)
		require.True(t, ok)

		direct, err := lineutil.LineAtByteOffset(text, offset)
		require.NoError(t, err)
		assert.Equal(t, direct, fromIndex, "offset %d", offset)
	}
}

func TestIndex_Offset(t *testing.T) {
	t.Parallel()

	text := "a转b\nsecond"
	idx := lineutil.NewIndex(text)

	tests := []struct {
		pos  lineutil.Position
		want int
		ok   bool
	}{
		{pos: lineutil.Position{Line: 1, Column: 1}, want: 0, ok: true},
		{pos: lineutil.Position{Line: 1, Column: 3}, want: 4, ok: true},
		{pos: lineutil.Position{Line: 1, Column: 4}, want: 5, ok: true},
		{pos: lineutil.Position{Line: 2, Column: 7}, want: 12, ok: true},
		{pos: lineutil.Position{Line: 1, Column: 5}, ok: false},
		{pos: lineutil.Position{Line: 3, Column: 1}, ok: false},
		{pos: lineutil.Position{Line: 0, Column: 1}, ok: false},
		{pos: lineutil.Position{Line: 1, Column: 0}, ok: false},
	}

	for _, tt := range tests {
		got, ok := idx.Offset(tt.pos)
		assert.Equal(t, tt.ok, ok, "%+v", tt.pos)
		if tt.ok {
			assert.Equal(t, tt.want, got, "%+v", tt.pos)
		}
	}
}

func TestIndex_RoundTrip(t *testing.T) {
	t.Parallel()

	text := "héllo\nwörld\r\n!"
	idx := lineutil.NewIndex(text)

	for offset := range text {
		pos, ok := idx.Position(offset)
		require.True(t, ok)
		if text[offset] == '\r' || text[offset] == '\n' {
			continue
		}
		back, ok := idx.Offset(pos)
		require.True(t, ok, "offset %d", offset)
		assert.Equal(t, offset, back)
	}
}

func TestPosition_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, lineutil.Position{Line: 1, Column: 1}.IsValid())
	assert.False(t, lineutil.Position{}.IsValid())
	assert.False(t, lineutil.Position{Line: 1}.IsValid())
}
