package cli

import (
	"github.com/alexanderramin/quota/internal/money"
	"github.com/alexanderramin/quota/internal/service"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int
}

func (s *SharedState) Planner() service.PlanningService { return s.App.Planner }
func (s *SharedState) Money() *money.Formatter { return s.App.Money }

// ContentHeight is the number of lines left for a view's scrolling body
// after the header, the view's own title and footer, and the status bar.
func (s *SharedState) ContentHeight() int {
	const chrome = 12
	return max(s.Height-chrome, 3)
}
