package pretty

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/textedits/pkg/textedit"
)

const (
	failingMarker = "> "
	plainMarker   = "  "
	ellipsis      = "..."
)

// FormatEdit renders one edit as `start end "replacement"`, shortening the
// replacement so the whole line fits in width terminal columns.
func (s *Styles) FormatEdit(edit textedit.TextEdit, failing bool, width int) string {
	marker := s.Dim.Render(plainMarker)
	if failing {
		marker = s.Marker.Render(failingMarker)
	}

	span := fmt.Sprintf("%d %d", edit.Start, edit.End())
	replacement := strings.ReplaceAll(edit.Replacement, "\n", `\n`)

	// marker + span + space + two quotes
	room := width - len(plainMarker) - len(span) - 3
	replacement = truncate(replacement, room)

	quoted := `"` + replacement + `"`
	if failing {
		return marker + s.Failing.Render(span+" "+quoted)
	}
	return marker + s.Span.Render(span) + " " + s.Replacement.Render(quoted)
}

// FormatEditList renders every edit on its own line, marking the edit at
// index failing. Pass -1 to mark nothing.
func (s *Styles) FormatEditList(edits []textedit.TextEdit, failing, width int) string {
	var builder strings.Builder
	for i, edit := range edits {
		builder.WriteString(s.FormatEdit(edit, i == failing, width))
		builder.WriteString("\n")
	}
	return builder.String()
}

// FormatEditError renders an error from applying an edit set. Overlap and
// range errors get a headline followed by the marked edit list; any other
// error is rendered as a single line.
func (s *Styles) FormatEditError(err error, width int) string {
	if err == nil {
		return ""
	}

	edits, index, ok := textedit.FailingEdit(err)
	if !ok {
		return s.Error.Render("error:") + " " + err.Error() + "\n"
	}

	return s.Error.Render("error:") + " " + editErrorHeadline(err) + "\n" +
		s.FormatEditList(edits, index, width)
}

func editErrorHeadline(err error) string {
	var rangeErr *textedit.RangeError
	if errors.As(err, &rangeErr) {
		if rangeErr.Reason == textedit.ReasonEndExceedsText {
			return fmt.Sprintf("text edit end (%d) exceeds length of text (%d)",
				rangeErr.Edit.End(), rangeErr.TextLen)
		}
		return rangeErr.Reason.String()
	}
	return textedit.ErrOverlap.Error()
}

// truncate shortens str to at most width terminal columns, ending in "..."
// when cut. Wide characters count as two columns.
func truncate(str string, width int) string {
	if runewidth.StringWidth(str) <= width {
		return str
	}
	if width <= len(ellipsis) {
		return ellipsis
	}
	return runewidth.Truncate(str, width, ellipsis)
}
