package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/quota/internal/cli/formatter"
	"github.com/alexanderramin/quota/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type monthlyKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Auto     key.Binding
	LastYear key.Binding
	Reset    key.Binding
	Edit     key.Binding
	Save     key.Binding
	Close    key.Binding
}

func newMonthlyKeyMap() monthlyKeyMap {
	return monthlyKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		Auto:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "auto")),
		LastYear: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "last year")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Edit:     key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit month")),
		Save:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// monthlyView edits the monthly panel the planner has open.
type monthlyView struct {
	state  *SharedState
	keys   monthlyKeyMap
	nodeID string
	cursor int
}

func newMonthlyView(state *SharedState, nodeID string) *monthlyView {
	return &monthlyView{state: state, keys: newMonthlyKeyMap(), nodeID: nodeID}
}

func (v *monthlyView) ID() ViewID { return ViewMonthly }

func (v *monthlyView) Title() string {
	if panel, ok := v.state.Planner().MonthlyPanel(); ok {
		return "Monthly · " + panel.Name()
	}
	return "Monthly"
}

func (v *monthlyView) ShortHelp() []key.Binding {
	return []key.Binding{v.keys.Auto, v.keys.LastYear, v.keys.Reset, v.keys.Edit, v.keys.Save, v.keys.Close}
}

func (v *monthlyView) Init() tea.Cmd { return nil }

func (v *monthlyView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	ctx := context.Background()
	p := v.state.Planner()

	var err error
	switch {
	case key.Matches(keyMsg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(keyMsg, v.keys.Down):
		if v.cursor < domain.MonthsPerYear-1 {
			v.cursor++
		}
	case key.Matches(keyMsg, v.keys.Auto):
		err = p.AutoSplitMonthly(ctx, v.nodeID)
	case key.Matches(keyMsg, v.keys.LastYear):
		err = p.MatchWithLastYear(ctx, v.nodeID)
	case key.Matches(keyMsg, v.keys.Reset):
		err = p.ResetMonthlyTargets(ctx, v.nodeID)
	case key.Matches(keyMsg, v.keys.Edit):
		if panel, ok := p.MonthlyPanel(); ok {
			return v, pushView(newMonthFormView(v.state, v.nodeID, v.cursor, panel.Months()[v.cursor]))
		}
	case key.Matches(keyMsg, v.keys.Save):
		panel, _ := p.MonthlyPanel()
		if err := p.SaveMonthly(ctx); err != nil {
			return v, showError(err)
		}
		return v, tea.Batch(popView(), showOutput(fmt.Sprintf("%s Saved monthly plan for %s",
			formatter.StyleGreen.Render("✔"), formatter.Bold(panel.Name()))))
	case key.Matches(keyMsg, v.keys.Close):
		note := "Closed monthly plan."
		if panel, ok := p.MonthlyPanel(); ok && panel.Dirty() {
			note = "Discarded unsaved monthly changes."
		}
		p.CloseMonthly(ctx)
		return v, tea.Batch(popView(), showOutput(formatter.Dim(note)))
	}
	if err != nil {
		return v, showError(err)
	}
	return v, nil
}

func (v *monthlyView) View() string {
	panel, ok := v.state.Planner().MonthlyPanel()
	if !ok {
		return "\n  " + formatter.Dim("No monthly plan open.")
	}
	f := v.state.Money()

	var b strings.Builder
	b.WriteString("\n" + formatter.Header("Monthly plan · "+panel.Name()) + "\n")
	b.WriteString(fmt.Sprintf("%s %s  annual target %s\n\n",
		formatter.RoleBadge(panel.Role()), formatter.Dim(panel.Role().Title()), formatter.Bold(f.Amount(panel.TargetAmount()))))
	b.WriteString(formatter.MonthlyTable(panel.Months(), v.cursor))
	b.WriteString("\n" + formatter.MonthlyFooter(f, panel.TargetAmount(), panel.Allocation()) + "\n")
	return b.String()
}
