package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/quota/internal/cli/formatter"
	"github.com/alexanderramin/quota/internal/domain"
	"github.com/alexanderramin/quota/internal/money"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// quotaHuhTheme returns a huh theme matching the formatter palette.
func quotaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func singleInputForm(input *huh.Input) *huh.Form {
	return huh.NewForm(huh.NewGroup(input)).WithTheme(quotaHuhTheme()).WithShowHelp(false)
}

// validateDigits accepts any text holding at least one digit; everything
// else in it is ignored when applied.
func validateDigits(s string) error {
	if _, ok := money.ParseDigits(s); !ok {
		return fmt.Errorf("enter an amount in crores")
	}
	return nil
}

func validatePercent(s string) error {
	if _, err := parsePercent(s); err != nil {
		return err
	}
	return nil
}

func parsePercent(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
	if err != nil || math.IsNaN(v) || v < 0 || v > 100 {
		return 0, fmt.Errorf("enter a percentage between 0 and 100")
	}
	return v, nil
}

func validateCrores(s string) error {
	if _, err := decimal.NewFromString(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("enter a number of crores, e.g. 27.50")
	}
	return nil
}

// newAmountFormView edits a manager's target in whole crores.
func newAmountFormView(state *SharedState, n *domain.Node) View {
	raw := strconv.FormatInt(n.TargetAmount/domain.Crore, 10)
	form := singleInputForm(huh.NewInput().
		Title("Target for " + n.Name + " (crores)").
		Description("Currently " + state.Money().Amount(n.TargetAmount)).
		Value(&raw).
		Validate(validateDigits))

	return newWizardView(state, "Edit amount", form, func() tea.Cmd {
		return func() tea.Msg { return applyAmountEdit(state, n.ID, raw) }
	})
}

func applyAmountEdit(state *SharedState, id, raw string) tea.Msg {
	applied, err := state.Planner().UpdateManagerTarget(context.Background(), id, raw)
	if err != nil {
		return cmdOutputMsg{output: shellError(err)}
	}
	if !applied {
		return cmdOutputMsg{output: formatter.Dim("No digits entered; target unchanged.")}
	}
	n, err := state.Planner().Node(id)
	if err != nil {
		return cmdOutputMsg{output: shellError(err)}
	}
	return cmdOutputMsg{output: fmt.Sprintf("%s %s now %s (%s)",
		formatter.StyleGreen.Render("✔"), formatter.Bold(n.Name),
		state.Money().Amount(n.TargetAmount), money.Percent(n.Percentage))}
}

// newPercentFormView sets a manager's share of the company total.
func newPercentFormView(state *SharedState, n *domain.Node) View {
	raw := strconv.FormatFloat(n.Percentage, 'f', -1, 64)
	form := singleInputForm(huh.NewInput().
		Title("Share for " + n.Name + " (%)").
		Description("Applied to the company total " + state.Money().Amount(state.Planner().TotalTarget())).
		Value(&raw).
		Validate(validatePercent))

	return newWizardView(state, "Edit percentage", form, func() tea.Cmd {
		return func() tea.Msg { return applyPercentEdit(state, n.ID, raw) }
	})
}

func applyPercentEdit(state *SharedState, id, raw string) tea.Msg {
	pct, err := parsePercent(raw)
	if err != nil {
		return cmdOutputMsg{output: shellError(err)}
	}
	if err := state.Planner().ApplyPercentage(context.Background(), id, pct); err != nil {
		return cmdOutputMsg{output: shellError(err)}
	}
	n, err := state.Planner().Node(id)
	if err != nil {
		return cmdOutputMsg{output: shellError(err)}
	}
	return cmdOutputMsg{output: fmt.Sprintf("%s %s now %s (%s of level)",
		formatter.StyleGreen.Render("✔"), formatter.Bold(n.Name),
		state.Money().Amount(n.TargetAmount), money.Percent(n.Percentage))}
}

// newMonthFormView overwrites one month of the open panel.
func newMonthFormView(state *SharedState, nodeID string, month int, current domain.MonthlyTarget) View {
	raw := current.Target.StringFixed(2)
	form := singleInputForm(huh.NewInput().
		Title(current.Month + " target (crores)").
		Description(fmt.Sprintf("Last year %d L", current.LastYearReference)).
		Value(&raw).
		Validate(validateCrores))

	return newWizardView(state, "Edit "+current.Month, form, func() tea.Cmd {
		return func() tea.Msg { return applyMonthEdit(state, nodeID, month, raw) }
	})
}

func applyMonthEdit(state *SharedState, nodeID string, month int, raw string) tea.Msg {
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return cmdOutputMsg{output: shellError(fmt.Errorf("parsing %q: %w", raw, err))}
	}
	if err := state.Planner().UpdateMonthlyTarget(context.Background(), nodeID, month, v); err != nil {
		return cmdOutputMsg{output: shellError(err)}
	}
	return cmdOutputMsg{output: fmt.Sprintf("%s %s set to %s Cr",
		formatter.StyleGreen.Render("✔"), domain.MonthNames[month], v.StringFixed(2))}
}
