package formatter

import (
	"strings"

	"github.com/alexanderramin/quota/internal/domain"
	"github.com/alexanderramin/quota/internal/money"
	"github.com/charmbracelet/lipgloss"
)

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

// RenderTree renders the subtrees under roots with box-drawing connectors
// and right-aligned amount badges.
func RenderTree(f *money.Formatter, roots []*domain.Node) string {
	type line struct {
		content string
		badge   string
	}
	var lines []line
	maxWidth := 0

	var visit func(n *domain.Node, prefix string, isLast bool, top bool)
	visit = func(n *domain.Node, prefix string, isLast bool, top bool) {
		connector, childPrefix := "", ""
		if !top {
			connector = treeBranch
			childPrefix = prefix + treePipe
			if isLast {
				connector = treeCorner
				childPrefix = prefix + treeBlank
			}
		}
		content := Dim(prefix+connector) + RoleBadge(n.Role) + " " + n.Name
		if n.Locked {
			content += " " + LockIcon(true)
		}
		badge := StyleBlue.Render("[ "+f.Amount(n.TargetAmount)+" ]") + " " + Dim(money.Percent(n.Percentage))
		lines = append(lines, line{content: content, badge: badge})
		maxWidth = max(maxWidth, lipgloss.Width(content))

		for i, c := range n.Children {
			visit(c, childPrefix, i == len(n.Children)-1, false)
		}
	}
	for _, r := range roots {
		visit(r, "", true, true)
	}

	var b strings.Builder
	for _, l := range lines {
		pad := maxWidth - lipgloss.Width(l.content)
		b.WriteString(l.content + strings.Repeat(" ", pad) + "  " + l.badge + "\n")
	}
	return b.String()
}
