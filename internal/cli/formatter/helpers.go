package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/quota/internal/money"
	"github.com/alexanderramin/quota/internal/navigation"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Breadcrumbs renders the trail with each crumb's index, which is the key
// that jumps back to it. The last crumb is highlighted.
func Breadcrumbs(crumbs []navigation.Crumb) string {
	parts := make([]string, len(crumbs))
	for i, c := range crumbs {
		label := c.Label
		if c.NodeID != "" {
			label = fmt.Sprintf("%s (%s)", c.Label, c.Role)
		}
		idx := Dim(fmt.Sprintf("%d:", i))
		if i == len(crumbs)-1 {
			parts[i] = idx + StyleSelected.Render(label)
		} else {
			parts[i] = idx + StyleFg.Render(label)
		}
	}
	return strings.Join(parts, Dim(" › "))
}

// SignedAmount renders an amount, in red when negative.
func SignedAmount(f *money.Formatter, amount int64) string {
	s := f.Amount(amount)
	if amount < 0 {
		return StyleRed.Render(s)
	}
	return s
}

// VsLastYear renders a signed growth percentage, green when positive.
func VsLastYear(p float64) string {
	switch {
	case p > 0:
		return StyleGreen.Render("+" + money.Percent(p))
	case p < 0:
		return StyleRed.Render(money.Percent(p))
	default:
		return Dim(money.Percent(p))
	}
}
