package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/quota/internal/domain"
	"github.com/alexanderramin/quota/internal/monthly"
	"github.com/alexanderramin/quota/internal/money"
)

// MonthlyTable renders the twelve months with targets in crores and last
// year's figures in lakhs. The row at cursor is marked; pass -1 for none.
func MonthlyTable(months []domain.MonthlyTarget, cursor int) string {
	headers := []string{" ", "Month", "Target (Cr)", "Last year (L)"}
	rows := make([][]string, 0, len(months))
	for i, m := range months {
		marker, name := " ", m.Month
		if i == cursor {
			marker = StyleSelected.Render("›")
			name = StyleSelected.Render(name)
		}
		rows = append(rows, []string{
			marker,
			name,
			m.Target.StringFixed(2),
			strconv.FormatInt(m.LastYearReference, 10),
		})
	}
	return RenderTableAligned(headers, rows, []Align{AlignLeft, AlignLeft, AlignRight, AlignRight})
}

// MonthlyFooter renders how much of the annual target the months cover.
func MonthlyFooter(f *money.Formatter, target int64, a monthly.Allocation) string {
	return fmt.Sprintf("Allocated %s  ·  Remaining %s\n%s",
		Bold(f.Amount(a.Allocated)), SignedAmount(f, a.Remaining), RenderCoverage(a.Allocated, target, 30))
}

// FormatMonthly renders a node's monthly plan.
func FormatMonthly(f *money.Formatter, name string, role domain.Role, target int64, months []domain.MonthlyTarget, a monthly.Allocation) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Monthly plan · %s", name)) + "\n")
	b.WriteString(fmt.Sprintf("%s %s  annual target %s\n\n", RoleBadge(role), Dim(role.Title()), Bold(f.Amount(target))))
	b.WriteString(MonthlyTable(months, -1))
	b.WriteString("\n" + MonthlyFooter(f, target, a) + "\n")
	return b.String()
}
