package service

import (
	"github.com/alexanderramin/quota/internal/allocation"
	"github.com/alexanderramin/quota/internal/domain"
)

// LevelSummary is the footer of the level on screen.
type LevelSummary struct {
	Level        domain.Level
	Count        int
	Allocated    int64
	PercentTotal float64
	// Budget is the amount the level is split from: the parent's target, or
	// the company total at the top.
	Budget int64
	Locked int
}

// Unallocated is the part of the budget the level does not cover. It is
// negative when the level is over-allocated.
func (s LevelSummary) Unallocated() int64 {
	return s.Budget - s.Allocated
}

func summarize(level domain.Level, nodes []*domain.Node, budget int64) LevelSummary {
	sum := LevelSummary{
		Level:        level,
		Count:        len(nodes),
		Allocated:    allocation.Sum(nodes),
		PercentTotal: allocation.PercentTotal(nodes),
		Budget:       budget,
	}
	for _, n := range nodes {
		if n.Locked {
			sum.Locked++
		}
	}
	return sum
}
