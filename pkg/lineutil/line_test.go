package lineutil_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textedits/pkg/lineutil"
)

// extractOffset removes the "<>" marker from source and returns the text and
// the rune offset of the character just before the marker.
func extractOffset(t *testing.T, source string) (string, int) {
	t.Helper()

	idx := strings.Index(source, "<>")
	require.GreaterOrEqual(t, idx, 0, "source has no <> marker")

	text := source[:idx] + source[idx+2:]
	return text, utf8.RuneCountInString(source[:idx]) - 1
}

func TestLineAtOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "inside word",
			source: "hello thi<>s is",
			want:   "hello this is",
		},
		{
			name:   "first char",
			source: "h<>ello this is",
			want:   "hello this is",
		},
		{
			name:   "last char",
			source: "hello this is<>",
			want:   "hello this is",
		},
		{
			name:   "offset is newline",
			source: "hello this is\n<>",
			want:   "hello this is",
		},
		{
			name:   "line in the middle",
			source: "<?php\n\nHello\nThi<>s is my line\n\nThanks",
			want:   "This is my line",
		},
		{
			name:   "multibyte inside line",
			source: "<?php\n\n转注字 / 轉注字\n转<>注字 / 轉注字\n\nThanks",
			want:   "转注字 / 轉注字",
		},
		{
			name:   "multibyte at end of line",
			source: "<?php\n\n转注字 / 轉注字\n转注字 / 轉注字<>\n\nThanks",
			want:   "转注字 / 轉注字",
		},
		{
			name:   "empty line",
			source: "a\n\n<>b",
			want:   "",
		},
		{
			name:   "crlf line ending",
			source: "one\r<>\ntwo",
			want:   "one",
		},
		{
			name:   "crlf second line",
			source: "one\r\ntw<>o\r\n",
			want:   "two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			text, offset := extractOffset(t, tt.source)

			got, err := lineutil.LineAtOffset(text, offset)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLineAtOffset_EndOfText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "single line", text: "a", want: "a"},
		{name: "empty text", text: "", want: ""},
		{name: "trailing newline", text: "abc\n", want: ""},
		{name: "multibyte", text: "x\n转注", want: "转注"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := lineutil.LineAtOffset(tt.text, utf8.RuneCountInString(tt.text))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLineAtOffset_OutOfRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		offset int
	}{
		{name: "past end", text: "a", offset: 2},
		{name: "negative", text: "a", offset: -1},
		{name: "past end of empty text", text: "", offset: 1},
		// Four runes but twelve bytes.
		{name: "byte length is not rune length", text: "转注字\n", offset: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := lineutil.LineAtOffset(tt.text, tt.offset)
			require.ErrorIs(t, err, lineutil.ErrOffsetOutOfRange)
			assert.Empty(t, got)

			var offsetErr *lineutil.OffsetError
			require.ErrorAs(t, err, &offsetErr)
			assert.Equal(t, tt.offset, offsetErr.Offset)
			assert.Equal(t, lineutil.UnitRune, offsetErr.Unit)
		})
	}
}

func TestLineAtByteOffset(t *testing.T) {
	t.Parallel()

	text := "转注字\nabc\n"

	tests := []struct {
		name   string
		offset int
		want   string
	}{
		{name: "start of text", offset: 0, want: "转注字"},
		{name: "inside multibyte character", offset: 1, want: "转注字"},
		{name: "on newline", offset: 9, want: "转注字"},
		{name: "second line", offset: 11, want: "abc"},
		{name: "end of text", offset: len(text), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := lineutil.LineAtByteOffset(text, tt.offset)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := lineutil.LineAtByteOffset(text, len(text)+1)
	require.ErrorIs(t, err, lineutil.ErrOffsetOutOfRange)
	assert.Contains(t, err.Error(), "bytes")
}

func TestLineAt(t *testing.T) {
	t.Parallel()

	text := "é\nnext"

	got, err := lineutil.LineAt(text, 2, lineutil.UnitRune)
	require.NoError(t, err)
	assert.Equal(t, "next", got)

	got, err = lineutil.LineAt(text, 2, lineutil.UnitByte)
	require.NoError(t, err)
	assert.Equal(t, "é", got)

	got, err = lineutil.LineAt(text, 0, "")
	require.NoError(t, err)
	assert.Equal(t, "é", got)

	_, err = lineutil.LineAt(text, 0, lineutil.Unit("word"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, lineutil.ErrOffsetOutOfRange)
}

func TestByteOffset(t *testing.T) {
	t.Parallel()

	text := "a转b"

	tests := []struct {
		runeOffset int
		want       int
		ok         bool
	}{
		{runeOffset: 0, want: 0, ok: true},
		{runeOffset: 1, want: 1, ok: true},
		{runeOffset: 2, want: 4, ok: true},
		{runeOffset: 3, want: 5, ok: true},
		{runeOffset: 4, want: 0, ok: false},
		{runeOffset: -1, want: 0, ok: false},
	}

	for _, tt := range tests {
		got, ok := lineutil.ByteOffset(text, tt.runeOffset)
		assert.Equal(t, tt.ok, ok, "rune offset %d", tt.runeOffset)
		assert.Equal(t, tt.want, got, "rune offset %d", tt.runeOffset)
	}
}

func TestRuneOffset(t *testing.T) {
	t.Parallel()

	text := "a转b"

	tests := []struct {
		byteOffset int
		want       int
		ok         bool
	}{
		{byteOffset: 0, want: 0, ok: true},
		{byteOffset: 1, want: 1, ok: true},
		{byteOffset: 2, want: 1, ok: true},
		{byteOffset: 3, want: 1, ok: true},
		{byteOffset: 4, want: 2, ok: true},
		{byteOffset: 5, want: 3, ok: true},
		{byteOffset: 6, want: 0, ok: false},
		{byteOffset: -1, want: 0, ok: false},
	}

	for _, tt := range tests {
		got, ok := lineutil.RuneOffset(text, tt.byteOffset)
		assert.Equal(t, tt.ok, ok, "byte offset %d", tt.byteOffset)
		assert.Equal(t, tt.want, got, "byte offset %d", tt.byteOffset)
	}
}

func TestUnit_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, lineutil.UnitRune.IsValid())
	assert.True(t, lineutil.UnitByte.IsValid())
	assert.False(t, lineutil.Unit("").IsValid())
	assert.True(t, lineutil.UnitGrapheme.IsValid())
	assert.False(t, lineutil.Unit("").IsValid())
	assert.False(t, lineutil.Unit("word").IsValid())
}

func TestLineAtGraphemeOffset(t *testing.T) {
	t.Parallel()

	// "e" + combining acute accent is one grapheme but two runes.
	text := "e\u0301x\nnext"

	got, err := lineutil.LineAtGraphemeOffset(text, 2)
	require.NoError(t, err)
	assert.Equal(t, "e\u0301x", got, "offset on the newline")

	got, err = lineutil.LineAtGraphemeOffset(text, 3)
	require.NoError(t, err)
	assert.Equal(t, "next", got)

	got, err = lineutil.LineAt(text, 3, lineutil.UnitRune)
	require.NoError(t, err)
	assert.Equal(t, "e\u0301x", got, "the same offset in runes is still on the newline")

	got, err = lineutil.LineAtGraphemeOffset(text, 7)
	require.NoError(t, err)
	assert.Equal(t, "next", got, "end of text")

	_, err = lineutil.LineAtGraphemeOffset(text, 8)
	var offsetErr *lineutil.OffsetError
	require.ErrorAs(t, err, &offsetErr)
	assert.Equal(t, 7, offsetErr.Length)
	assert.Equal(t, lineutil.UnitGrapheme, offsetErr.Unit)
}

func TestLineAtGraphemeOffset_CRLF(t *testing.T) {
	t.Parallel()

	text := "ab\r\ncd"

	got, err := lineutil.LineAt(text, 2, lineutil.UnitGrapheme)
	require.NoError(t, err)
	assert.Equal(t, "ab", got)

	got, err = lineutil.LineAt(text, 3, lineutil.UnitGrapheme)
	require.NoError(t, err)
	assert.Equal(t, "cd", got)
}

func TestGraphemeByteOffset(t *testing.T) {
	t.Parallel()

	text := "a👍🏽b"

	tests := []struct {
		offset int
		want   int
		ok     bool
	}{
		{offset: 0, want: 0, ok: true},
		{offset: 1, want: 1, ok: true},
		{offset: 2, want: 9, ok: true},
		{offset: 3, want: 10, ok: true},
		{offset: 4, want: 0, ok: false},
		{offset: -1, want: 0, ok: false},
	}

	for _, tt := range tests {
		got, ok := lineutil.GraphemeByteOffset(text, tt.offset)
		assert.Equal(t, tt.ok, ok, "offset %d", tt.offset)
		assert.Equal(t, tt.want, got, "offset %d", tt.offset)
	}
}
