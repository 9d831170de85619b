package tui

import "github.com/charmbracelet/lipgloss"

const (
	liveCell = "██"
	deadCell = "░░"
)

// Styles holds the lipgloss styles used by the terminal frontend.
type Styles struct {
	Header  lipgloss.Style
	Running lipgloss.Style
	Paused  lipgloss.Style
	Live    lipgloss.Style
	Dead    lipgloss.Style
	Help    lipgloss.Style
	Warning lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")),
		Running: lipgloss.NewStyle().
			Foreground(lipgloss.Color("71")),
		Paused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("67")),
		Live: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")),
		Dead: lipgloss.NewStyle().
			Foreground(lipgloss.Color("236")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")),
	}
}
