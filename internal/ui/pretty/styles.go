// Package pretty provides Lipgloss-based styled output for the textedits CLI.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/yaklabco/textedits/pkg/config"
)

// defaultTermWidth is used when the writer is not a terminal.
const defaultTermWidth = 100

// Styles contains all styled renderers for CLI output.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style

	// Edit listings
	FilePath    lipgloss.Style
	Marker      lipgloss.Style
	Failing     lipgloss.Style
	Span        lipgloss.Style
	Replacement lipgloss.Style

	// Line lookups
	LineText lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			Error:       plain,
			Warning:     plain,
			Success:     plain,
			FilePath:    plain,
			Marker:      plain,
			Failing:     plain,
			Span:        plain,
			Replacement: plain,
			LineText:    plain,
			Dim:         plain,
			Bold:        plain,
		}
	}

	return &Styles{
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		FilePath:    lipgloss.NewStyle().Bold(true),
		Marker:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Failing:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Span:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Replacement: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		LineText:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:        lipgloss.NewStyle().Bold(true),
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode config.ColorMode, writer io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// TerminalWidth returns the width of the terminal behind writer, or
// defaultTermWidth when it cannot be determined.
func TerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
