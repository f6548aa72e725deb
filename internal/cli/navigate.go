package cli

import (
	"github.com/alexanderramin/quota/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack.
type popViewMsg struct{}

// refreshViewMsg tells every view on the stack that planner state changed.
type refreshViewMsg struct{}

// cmdOutputMsg carries a one-line result shown under the active view until
// the next key press.
type cmdOutputMsg struct {
	output string
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel pops the wizard view, then runs nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func showOutput(s string) tea.Cmd {
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

func showError(err error) tea.Cmd {
	return showOutput(shellError(err))
}

func shellError(err error) string {
	return formatter.StyleRed.Render("Error: " + err.Error())
}

func wizardCompleteOutput(s string) tea.Msg {
	return wizardCompleteMsg{nextCmd: showOutput(s)}
}
