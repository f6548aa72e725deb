package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/quota/internal/cli/formatter"
	"github.com/alexanderramin/quota/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type levelKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Drill       key.Binding
	Back        key.Binding
	Jump        key.Binding
	AutoSplit   key.Binding
	EditAmount  key.Binding
	EditPercent key.Binding
	Lock        key.Binding
	Monthly     key.Binding
}

func newLevelKeyMap() levelKeyMap {
	return levelKeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k")),
		Down:        key.NewBinding(key.WithKeys("down", "j")),
		Drill:       key.NewBinding(key.WithKeys("enter", "right"), key.WithHelp("enter", "drill")),
		Back:        key.NewBinding(key.WithKeys("esc", "backspace", "left"), key.WithHelp("esc", "up")),
		Jump:        key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5"), key.WithHelp("0-5", "jump")),
		AutoSplit:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "auto-split")),
		EditAmount:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "amount")),
		EditPercent: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "percent")),
		Lock:        key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "lock")),
		Monthly:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "monthly")),
	}
}

// levelView lists the sibling set the planner is positioned on.
type levelView struct {
	state  *SharedState
	keys   levelKeyMap
	cursor int
	vp     viewport.Model
}

func newLevelView(state *SharedState) *levelView {
	return &levelView{
		state: state,
		keys:  newLevelKeyMap(),
		vp:    viewport.New(0, 0),
	}
}

func (v *levelView) ID() ViewID { return ViewLevel }
func (v *levelView) Title() string { return "" }

func (v *levelView) ShortHelp() []key.Binding {
	return []key.Binding{
		v.keys.Drill, v.keys.Back, v.keys.Jump, v.keys.AutoSplit,
		v.keys.EditAmount, v.keys.EditPercent, v.keys.Lock, v.keys.Monthly,
	}
}

func (v *levelView) Init() tea.Cmd { return nil }

// selected returns the node under the cursor, or nil for an empty level.
func (v *levelView) selected() *domain.Node {
	nodes := v.state.Planner().Current()
	if v.cursor < 0 || v.cursor >= len(nodes) {
		return nil
	}
	return nodes[v.cursor]
}

func (v *levelView) clampCursor() {
	n := len(v.state.Planner().Current())
	v.cursor = max(min(v.cursor, n-1), 0)
}

func (v *levelView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil
	case refreshViewMsg:
		v.clampCursor()
		return v, nil
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *levelView) handleKey(msg tea.KeyMsg) tea.Cmd {
	ctx := context.Background()
	p := v.state.Planner()

	switch {
	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(p.Current())-1 {
			v.cursor++
		}

	case key.Matches(msg, v.keys.Drill):
		n := v.selected()
		if n == nil {
			return nil
		}
		moved, err := p.DrillDown(ctx, n.ID)
		if err != nil {
			return showError(err)
		}
		if !moved {
			return showOutput(formatter.Dim(n.Name + " has no reports."))
		}
		v.cursor = 0

	case key.Matches(msg, v.keys.Back):
		parent := ""
		if path := p.SelectedPath(); len(path) > 0 {
			parent = path[len(path)-1].ID
		}
		if p.NavigateUp(ctx) {
			v.cursor = max(domain.IndexOf(p.Current(), parent), 0)
		}

	case key.Matches(msg, v.keys.Jump):
		idx := int(msg.Runes[0] - '0')
		if err := p.NavigateToBreadcrumb(ctx, idx); err != nil {
			return showError(err)
		}
		v.cursor = 0

	case key.Matches(msg, v.keys.AutoSplit):
		budget := p.Summary().Budget
		if err := p.AutoSplitCurrent(ctx); err != nil {
			return showError(err)
		}
		return showOutput(fmt.Sprintf("%s Split %s across %d managers",
			formatter.StyleGreen.Render("✔"), v.state.Money().Amount(budget), len(p.Current())))

	case key.Matches(msg, v.keys.EditAmount):
		if n := v.selected(); n != nil {
			return pushView(newAmountFormView(v.state, n))
		}

	case key.Matches(msg, v.keys.EditPercent):
		if n := v.selected(); n != nil {
			return pushView(newPercentFormView(v.state, n))
		}

	case key.Matches(msg, v.keys.Lock):
		n := v.selected()
		if n == nil {
			return nil
		}
		locked, err := p.ToggleLock(ctx, n.ID)
		if err != nil {
			return showError(err)
		}
		state := "Unlocked"
		if locked {
			state = "Locked"
		}
		return showOutput(formatter.Dim(state + " " + n.Name))

	case key.Matches(msg, v.keys.Monthly):
		n := v.selected()
		if n == nil {
			return nil
		}
		if _, err := p.OpenMonthly(ctx, n.ID); err != nil {
			return showError(err)
		}
		return pushView(newMonthlyView(v.state, n.ID))
	}
	return nil
}

// syncViewport loads the table into the viewport and scrolls the cursor
// row into sight.
func (v *levelView) syncViewport(table string) {
	v.vp.SetContent(table)
	line := v.cursor + 2 // header and separator
	switch {
	case line < v.vp.YOffset:
		v.vp.SetYOffset(line)
	case line >= v.vp.YOffset+v.vp.Height:
		v.vp.SetYOffset(line - v.vp.Height + 1)
	}
}

func (v *levelView) View() string {
	p := v.state.Planner()
	nodes := p.Current()
	f := v.state.Money()

	var b strings.Builder
	b.WriteString("\n" + formatter.Header(formatter.LevelTitle(nodes)) + "\n")

	table := formatter.LevelTable(f, nodes, v.cursor)
	if v.vp.Height > 0 {
		v.syncViewport(strings.TrimRight(table, "\n"))
		b.WriteString(v.vp.View() + "\n")
	} else {
		b.WriteString(table)
	}

	b.WriteString("\n" + formatter.LevelFooter(f, p.Summary()) + "\n")
	return b.String()
}
