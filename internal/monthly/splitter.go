// Package monthly decomposes a node's annual target into twelve calendar
// buckets expressed in crores.
package monthly

import (
	"fmt"

	"github.com/alexanderramin/quota/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	crore  = decimal.NewFromInt(domain.Crore)
	lakh   = decimal.NewFromInt(domain.Lakh)
	months = decimal.NewFromInt(domain.MonthsPerYear)
)

// Allocation summarises how much of a node's annual target the monthly
// buckets cover. Remaining is negative when the months are over-allocated.
type Allocation struct {
	Allocated int64
	Remaining int64
}

// EnsureMonths populates the twelve buckets the first time a node is opened.
// Last year's figures are the node's annual target in lakhs spread in
// proportion to the multipliers; targets start at zero. Nodes that already
// carry months are left as they are.
func EnsureMonths(node *domain.Node, multipliers [domain.MonthsPerYear]float64) {
	if len(node.MonthlyTargets) == domain.MonthsPerYear {
		return
	}
	var weight decimal.Decimal
	for _, m := range multipliers {
		weight = weight.Add(decimal.NewFromFloat(m))
	}
	annualLakhs := decimal.NewFromInt(node.TargetAmount).Div(lakh)

	node.MonthlyTargets = make([]domain.MonthlyTarget, domain.MonthsPerYear)
	for i, name := range domain.MonthNames {
		ref := decimal.Zero
		if !weight.IsZero() {
			ref = annualLakhs.Mul(decimal.NewFromFloat(multipliers[i])).Div(weight).Round(0)
		}
		node.MonthlyTargets[i] = domain.MonthlyTarget{
			Month:             name,
			Target:            decimal.Zero,
			LastYearReference: ref.IntPart(),
		}
	}
}

// AutoSplit spreads the annual target evenly, rounded to two decimals.
func AutoSplit(node *domain.Node) error {
	if err := checkLoaded(node); err != nil {
		return err
	}
	each := decimal.NewFromInt(node.TargetAmount).Div(months).Div(crore).Round(2)
	for i := range node.MonthlyTargets {
		node.MonthlyTargets[i].Target = each
	}
	return nil
}

// MatchLastYear copies last year's figure for every month, converting lakhs
// to crores.
func MatchLastYear(node *domain.Node) error {
	if err := checkLoaded(node); err != nil {
		return err
	}
	for i := range node.MonthlyTargets {
		m := &node.MonthlyTargets[i]
		m.Target = decimal.NewFromInt(m.LastYearReference).Div(decimal.NewFromInt(100))
	}
	return nil
}

// Reset zeroes every month.
func Reset(node *domain.Node) error {
	if err := checkLoaded(node); err != nil {
		return err
	}
	for i := range node.MonthlyTargets {
		node.MonthlyTargets[i].Target = decimal.Zero
	}
	return nil
}

// Update overwrites one month's target in crores. The value is not bounded.
func Update(node *domain.Node, monthIndex int, value decimal.Decimal) error {
	if err := checkLoaded(node); err != nil {
		return err
	}
	if monthIndex < 0 || monthIndex >= domain.MonthsPerYear {
		return fmt.Errorf("updating month %d: %w", monthIndex, domain.ErrMonthOutOfRange)
	}
	node.MonthlyTargets[monthIndex].Target = value
	return nil
}

// CalculateAllocations sums the monthly targets back into base units.
func CalculateAllocations(node *domain.Node) Allocation {
	sum := decimal.Zero
	for _, m := range node.MonthlyTargets {
		sum = sum.Add(m.Target.Mul(crore))
	}
	allocated := sum.Round(0).IntPart()
	return Allocation{
		Allocated: allocated,
		Remaining: node.TargetAmount - allocated,
	}
}

func checkLoaded(node *domain.Node) error {
	if len(node.MonthlyTargets) != domain.MonthsPerYear {
		return fmt.Errorf("node %s: %w", node.ID, domain.ErrMonthsNotLoaded)
	}
	return nil
}
