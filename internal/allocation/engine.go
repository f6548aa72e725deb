// Package allocation redistributes sales targets across a set of sibling
// nodes. All operations mutate the nodes in place.
package allocation

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/alexanderramin/quota/internal/domain"
	"github.com/alexanderramin/quota/internal/money"
)

// Bounds for the randomized auto-split. Every node but the last lands in
// [MinSplitPct, MaxSplitPct]; the last takes whatever is left of 100.
const (
	MinSplitPct = 15
	MaxSplitPct = 40
	SplitJitter = 5
)

// Engine holds the random source used by AutoSplit. It is not safe for
// concurrent use.
type Engine struct {
	rng *rand.Rand
}

// NewEngine returns an Engine drawing jitter from rng. A nil rng falls back
// to a time-seeded source.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Engine{rng: rng}
}

// AutoSplit assigns each node a randomized share of totalAmount. The shares
// always sum to 100%. Sets of eight or more nodes cannot fit within the
// per-node minimum, so they are rejected with ErrSplitInfeasible and left
// unchanged.
func (e *Engine) AutoSplit(nodes []*domain.Node, totalAmount int64) error {
	n := len(nodes)
	if n == 0 {
		return nil
	}

	base := 100 / n
	pcts := make([]int, n)
	sum := 0
	for i := 0; i < n-1; i++ {
		jitter := e.rng.Intn(2*SplitJitter+1) - SplitJitter
		pcts[i] = clamp(base+jitter, MinSplitPct, MaxSplitPct)
		sum += pcts[i]
	}

	last := 100 - sum
	// Large sets can overshoot 100; give the excess back from the later
	// siblings without leaving the bounds.
	for i := n - 2; i >= 0 && last < 0; i-- {
		cut := min(pcts[i]-MinSplitPct, -last)
		pcts[i] -= cut
		last += cut
	}
	if last < 0 {
		return fmt.Errorf("splitting %d nodes: %w", n, domain.ErrSplitInfeasible)
	}
	pcts[n-1] = last

	for i, node := range nodes {
		node.Percentage = float64(pcts[i])
		node.TargetAmount = share(totalAmount, float64(pcts[i]))
	}
	return nil
}

// RecalculatePercentages rebases every node's percentage on the current sum
// of sibling amounts. A zero sum yields 0% for everyone.
func RecalculatePercentages(nodes []*domain.Node) {
	total := Sum(nodes)
	for _, node := range nodes {
		if total == 0 {
			node.Percentage = 0
			continue
		}
		node.Percentage = math.Round(float64(node.TargetAmount) / float64(total) * 100)
	}
}

// UpdateTarget parses raw as an amount in crores, stores it on node and
// rebases the sibling percentages. Input without digits, or too large to
// represent, leaves everything untouched and reports false.
func UpdateTarget(nodes []*domain.Node, node *domain.Node, raw string) bool {
	crores, ok := money.ParseDigits(raw)
	if !ok || crores > math.MaxInt64/domain.Crore {
		return false
	}
	node.TargetAmount = crores * domain.Crore
	RecalculatePercentages(nodes)
	return true
}

// ApplyPercentage sets a node's share of the top-level total and then
// rebases the whole sibling set, which rounds the edited node's percentage
// against the sibling sum.
func ApplyPercentage(nodes []*domain.Node, id string, pct float64, totalSalesTarget int64) error {
	i := domain.IndexOf(nodes, id)
	if i < 0 {
		return fmt.Errorf("applying percentage to %s: %w", id, domain.ErrNodeNotFound)
	}
	node := nodes[i]
	node.Percentage = pct
	node.TargetAmount = share(totalSalesTarget, pct)
	RecalculatePercentages(nodes)
	return nil
}

// Sum returns the total target amount of the sibling set.
func Sum(nodes []*domain.Node) int64 {
	var total int64
	for _, n := range nodes {
		total += n.TargetAmount
	}
	return total
}

// PercentTotal returns the sum of the sibling percentages.
func PercentTotal(nodes []*domain.Node) float64 {
	var total float64
	for _, n := range nodes {
		total += n.Percentage
	}
	return total
}

func share(total int64, pct float64) int64 {
	return int64(math.Round(float64(total) * pct / 100))
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
