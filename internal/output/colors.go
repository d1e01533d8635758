package output

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

type styles struct {
	errorStyle lipgloss.Style
	debugStyle lipgloss.Style
}

// newStyles binds styles to w. Colour is only used when w is a terminal.
func newStyles(w io.Writer) *styles {
	renderer := lipgloss.NewRenderer(w)
	if !IsTerminal(w) {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return &styles{
		errorStyle: renderer.NewStyle().Foreground(lipgloss.Color("1")),
		debugStyle: renderer.NewStyle().Faint(true),
	}
}

func (s *styles) render(level slog.Level, text string) string {
	switch {
	case level >= slog.LevelError:
		return s.errorStyle.Render(text)
	case level <= slog.LevelDebug:
		return s.debugStyle.Render(text)
	default:
		return text
	}
}

// IsTerminal reports whether w is a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
