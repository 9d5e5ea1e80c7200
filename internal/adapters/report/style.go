package report

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// palette groups the styles of the human renderer. A disabled palette
// renders everything unstyled, which also keeps golden tests byte-stable.
type palette struct {
	header  lipgloss.Style
	name    lipgloss.Style
	old     lipgloss.Style
	latest  lipgloss.Style
	warning lipgloss.Style
	muted   lipgloss.Style
}

func newPalette(color bool) palette {
	if !color {
		plain := lipgloss.NewStyle()
		return palette{header: plain, name: plain, old: plain, latest: plain, warning: plain, muted: plain}
	}
	return palette{
		header:  lipgloss.NewStyle().Bold(true),
		name:    lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6")),
		old:     lipgloss.NewStyle().Foreground(lipgloss.Color("#667085")),
		latest:  lipgloss.NewStyle().Foreground(lipgloss.Color("#22A06B")),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		muted:   lipgloss.NewStyle().Faint(true),
	}
}

// ColorEnabled reports whether styled output should be produced, honoring
// NO_COLOR, redirected output and the terminal's capabilities.
func ColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}
