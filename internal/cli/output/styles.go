package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used in text mode.
type Styles struct {
	Header1  lipgloss.Style
	Header2  lipgloss.Style
	TypeName lipgloss.Style
	FilePath lipgloss.Style
	Added    lipgloss.Style
	Removed  lipgloss.Style
	Hunk     lipgloss.Style
	Muted    lipgloss.Style
}

// DefaultStyles returns the default style set. Styling is disabled when
// the environment requests no color (NO_COLOR et al).
func DefaultStyles() Styles {
	if termenv.EnvNoColor() {
		plain := lipgloss.NewStyle()
		return Styles{
			Header1: plain, Header2: plain, TypeName: plain,
			FilePath: plain, Added: plain, Removed: plain,
			Hunk: plain, Muted: plain,
		}
	}
	return Styles{
		Header1:  lipgloss.NewStyle().Bold(true).Underline(true),
		Header2:  lipgloss.NewStyle().Bold(true),
		TypeName: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		FilePath: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Added:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Removed:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Hunk:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		Muted:    lipgloss.NewStyle().Faint(true),
	}
}
