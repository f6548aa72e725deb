package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running planner: %w", err)
	}
	return nil
}
