// Package export writes the allocation tree to an xlsx workbook.
package export

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/quota/internal/domain"
	"github.com/alexanderramin/quota/internal/monthly"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	HierarchySheet = "Hierarchy"
	MonthlySheet   = "Monthly"
)

var hierarchyHeaders = []string{
	"Role", "ID", "Manager", "Location", "Target (Cr)", "Target (₹)", "Share %", "vs LY %", "Locked",
}

var crore = decimal.NewFromInt(domain.Crore)

// Exporter builds allocation workbooks.
type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

// Export lays out every node depth-first on the hierarchy sheet, indenting
// names by depth, and every node with a monthly plan on the monthly sheet.
func (e *Exporter) Export(roots []*domain.Node, totalTarget int64) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", HierarchySheet); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}
	if _, err := f.NewSheet(MonthlySheet); err != nil {
		return nil, fmt.Errorf("adding monthly sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	if err := writeHeader(f, HierarchySheet, hierarchyHeaders, headerStyle); err != nil {
		return nil, err
	}
	monthlyHeaders := append([]string{"ID", "Manager"}, domain.MonthNames[:]...)
	monthlyHeaders = append(monthlyHeaders, "Allocated (Cr)", "Remaining (Cr)")
	if err := writeHeader(f, MonthlySheet, monthlyHeaders, headerStyle); err != nil {
		return nil, err
	}

	treeRow, monthRow := 2, 2
	var werr error
	for _, root := range roots {
		root.Walk(func(n *domain.Node, depth int) bool {
			if werr != nil {
				return false
			}
			if werr = writeNode(f, treeRow, n, depth); werr != nil {
				return false
			}
			treeRow++
			if len(n.MonthlyTargets) == domain.MonthsPerYear {
				if werr = writeMonths(f, monthRow, n); werr != nil {
					return false
				}
				monthRow++
			}
			return true
		})
		if werr != nil {
			return nil, werr
		}
	}

	totalRow := []any{"Company", "", "Total", "", crores(totalTarget), totalTarget}
	if err := f.SetSheetRow(HierarchySheet, fmt.Sprintf("A%d", treeRow+1), &totalRow); err != nil {
		return nil, fmt.Errorf("writing total row: %w", err)
	}

	_ = f.SetColWidth(HierarchySheet, "A", "B", 12)
	_ = f.SetColWidth(HierarchySheet, "C", "D", 28)
	_ = f.SetColWidth(HierarchySheet, "E", "I", 15)
	_ = f.SetColWidth(MonthlySheet, "B", "B", 28)
	return f, nil
}

// WriteFile exports to path.
func (e *Exporter) WriteFile(path string, roots []*domain.Node, totalTarget int64) error {
	f, err := e.Export(roots, totalTarget)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell %d: %w", i, err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("writing %s header: %w", sheet, err)
		}
	}
	return f.SetRowStyle(sheet, 1, 1, style)
}

func writeNode(f *excelize.File, row int, n *domain.Node, depth int) error {
	locked := ""
	if n.Locked {
		locked = "yes"
	}
	values := []any{
		string(n.Role),
		n.ID,
		strings.Repeat("  ", depth) + n.Name,
		n.Location,
		crores(n.TargetAmount),
		n.TargetAmount,
		n.Percentage,
		n.VsLastYearPercent,
		locked,
	}
	if err := f.SetSheetRow(HierarchySheet, fmt.Sprintf("A%d", row), &values); err != nil {
		return fmt.Errorf("writing node %s: %w", n.ID, err)
	}
	return nil
}

func writeMonths(f *excelize.File, row int, n *domain.Node) error {
	values := make([]any, 0, domain.MonthsPerYear+4)
	values = append(values, n.ID, n.Name)
	for _, m := range n.MonthlyTargets {
		values = append(values, m.Target.InexactFloat64())
	}
	alloc := monthly.CalculateAllocations(n)
	values = append(values, crores(alloc.Allocated), crores(alloc.Remaining))
	if err := f.SetSheetRow(MonthlySheet, fmt.Sprintf("A%d", row), &values); err != nil {
		return fmt.Errorf("writing months of %s: %w", n.ID, err)
	}
	return nil
}

func crores(amount int64) float64 {
	return decimal.NewFromInt(amount).Div(crore).Round(2).InexactFloat64()
}
