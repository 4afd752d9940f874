package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/textedits/pkg/lineutil"
)

// ApplySummary describes the outcome of applying an edit document to a file.
type ApplySummary struct {
	Path        string
	Edits       int
	BytesBefore int
	BytesAfter  int
	Changed     bool
	Written     bool
	DryRun      bool
	Backup      string
}

// FormatApplySummary formats an apply outcome as a single line.
// Example: "notes.txt: 3 edits applied, 120 → 131 bytes (+11), written".
func (s *Styles) FormatApplySummary(sum ApplySummary) string {
	editWord := "edits"
	if sum.Edits == 1 {
		editWord = "edit"
	}

	var builder strings.Builder
	builder.WriteString(s.FilePath.Render(sum.Path))
	builder.WriteString(": ")

	if !sum.Changed {
		builder.WriteString(s.Success.Render("no changes"))
		builder.WriteString(s.Dim.Render(fmt.Sprintf(" (%d %s)", sum.Edits, editWord)))
		return builder.String() + "\n"
	}

	builder.WriteString(s.Success.Render(fmt.Sprintf("%d %s applied", sum.Edits, editWord)))
	builder.WriteString(s.Dim.Render(fmt.Sprintf(", %d → %d bytes (%+d)",
		sum.BytesBefore, sum.BytesAfter, sum.BytesAfter-sum.BytesBefore)))

	switch {
	case sum.DryRun:
		builder.WriteString(", " + s.Warning.Render("dry run"))
	case sum.Written:
		builder.WriteString(", written")
	}
	if sum.Backup != "" {
		builder.WriteString(s.Dim.Render(", backup " + sum.Backup))
	}

	return builder.String() + "\n"
}

// FormatLine renders the result of a line lookup as "path:line:col  text".
func (s *Styles) FormatLine(path string, pos lineutil.Position, line string) string {
	return s.FormatLocation(path, pos) + "  " + s.LineText.Render(line) + "\n"
}

// FormatLocation renders "path:line:col".
func (s *Styles) FormatLocation(path string, pos lineutil.Position) string {
	return s.FilePath.Render(path) + s.Dim.Render(fmt.Sprintf(":%d:%d", pos.Line, pos.Column))
}
