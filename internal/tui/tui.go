// Package tui is the terminal frontend: the same board, pen and controls as
// the desktop window, drawn with Bubble Tea.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"gol/internal/core"
)

// Run starts the terminal UI and blocks until the user quits.
func Run(ctrl *core.Controller) error {
	p := tea.NewProgram(
		NewModel(ctrl),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "terminal ui")
	}
	return nil
}
