package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/quota/internal/domain"
	"github.com/alexanderramin/quota/internal/money"
	"github.com/alexanderramin/quota/internal/navigation"
	"github.com/alexanderramin/quota/internal/service"
)

var levelAligns = []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight, AlignLeft, AlignLeft}

// LevelTitle names the sibling set on screen after the role it lists.
func LevelTitle(nodes []*domain.Node) string {
	if len(nodes) == 0 {
		return "No managers"
	}
	return nodes[0].Role.Title() + "s"
}

var coverageSingular = map[domain.CoverageKind]string{
	domain.CoverageZones:       "zone",
	domain.CoverageRegions:     "region",
	domain.CoverageAreas:       "area",
	domain.CoverageTerritories: "territory",
}

// CoverageLabel renders a node's span such as "2 zones", or "-" for sales
// officers.
func CoverageLabel(n *domain.Node) string {
	c, ok := n.Coverage()
	if !ok {
		return "-"
	}
	if c.Count == 1 {
		return "1 " + coverageSingular[c.Kind]
	}
	return fmt.Sprintf("%d %s", c.Count, c.Kind)
}

// LevelTable renders one row per node. The row at cursor is marked; pass -1
// for no cursor.
func LevelTable(f *money.Formatter, nodes []*domain.Node, cursor int) string {
	headers := []string{" ", "Role", "Manager", "Location", "Target", "Share", "vs LY", "Covers", "Lock"}
	rows := make([][]string, 0, len(nodes))
	for i, n := range nodes {
		marker := " "
		name := n.Name
		if i == cursor {
			marker = StyleSelected.Render("›")
			name = StyleSelected.Render(name)
		}
		rows = append(rows, []string{
			marker,
			RoleBadge(n.Role),
			name,
			n.Location,
			f.Amount(n.TargetAmount),
			money.Percent(n.Percentage),
			VsLastYear(n.VsLastYearPercent),
			CoverageLabel(n),
			LockIcon(n.Locked),
		})
	}
	return RenderTableAligned(headers, rows, levelAligns)
}

// LevelFooter renders the totals of the sibling set on screen.
func LevelFooter(f *money.Formatter, s service.LevelSummary) string {
	share := ShareStyle(s.PercentTotal).Render(money.Percent(s.PercentTotal))
	line := fmt.Sprintf("Allocated %s of %s  ·  Share %s  ·  Unallocated %s",
		Bold(f.Amount(s.Allocated)), f.Amount(s.Budget), share, SignedAmount(f, s.Unallocated()))
	if s.Locked > 0 {
		line += Dim(fmt.Sprintf("  ·  %d locked", s.Locked))
	}
	return line + "\n" + RenderCoverage(s.Allocated, s.Budget, 30)
}

// FormatLevel renders a complete level: trail, table and footer.
func FormatLevel(f *money.Formatter, crumbs []navigation.Crumb, nodes []*domain.Node, s service.LevelSummary) string {
	var b strings.Builder
	b.WriteString(Breadcrumbs(crumbs) + "\n\n")
	b.WriteString(Header(LevelTitle(nodes)) + "\n")
	b.WriteString(LevelTable(f, nodes, -1))
	b.WriteString("\n" + LevelFooter(f, s) + "\n")
	return b.String()
}
