package allocation

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAutoSplit_Invariants property-tests the split: shares always sum to
// 100, non-last shares stay inside the bounds and amounts track the total.
func TestAutoSplit_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	e := NewEngine(rng)

	for trial := 0; trial < 300; trial++ {
		n := rng.Intn(7) + 1 // 1–7 siblings
		total := rng.Int63n(100_000_000_000)
		nodes := newNodes(make([]int64, n)...)

		require.NoError(t, e.AutoSplit(nodes, total), "trial %d", trial)

		assert.Equal(t, 100.0, percentSum(nodes), "trial %d: percentages must sum to 100", trial)
		for i, node := range nodes[:n-1] {
			assert.GreaterOrEqual(t, node.Percentage, float64(MinSplitPct), "trial %d node %d", trial, i)
			assert.LessOrEqual(t, node.Percentage, float64(MaxSplitPct), "trial %d node %d", trial, i)
		}
		diff := math.Abs(float64(Sum(nodes) - total))
		assert.LessOrEqual(t, diff, float64(n), "trial %d: amount drift", trial)
	}
}

// TestRecalculatePercentages_Invariant checks every node against the
// sibling-sum formula for random amounts, zero sums included.
func TestRecalculatePercentages_Invariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(6) + 1
		amounts := make([]int64, n)
		if trial%10 != 0 {
			for i := range amounts {
				amounts[i] = rng.Int63n(5_000_000_000)
			}
		}
		nodes := newNodes(amounts...)

		RecalculatePercentages(nodes)

		total := Sum(nodes)
		for i, node := range nodes {
			want := 0.0
			if total != 0 {
				want = math.Round(float64(node.TargetAmount) / float64(total) * 100)
			}
			assert.Equal(t, want, node.Percentage, "trial %d node %d", trial, i)
		}
	}
}
