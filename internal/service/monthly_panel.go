package service

import (
	"github.com/alexanderramin/quota/internal/domain"
	"github.com/alexanderramin/quota/internal/monthly"
)

// MonthlyPanel is the editing state for one node's monthly plan. Edits go to
// a working copy that only reaches the node on save.
type MonthlyPanel struct {
	node *domain.Node
	work *domain.Node
}

func newMonthlyPanel(node *domain.Node) *MonthlyPanel {
	work := &domain.Node{
		ID:           node.ID,
		Name:         node.Name,
		Role:         node.Role,
		TargetAmount: node.TargetAmount,
	}
	work.MonthlyTargets = make([]domain.MonthlyTarget, len(node.MonthlyTargets))
	copy(work.MonthlyTargets, node.MonthlyTargets)
	return &MonthlyPanel{node: node, work: work}
}

// NodeID returns the ID of the node being edited.
func (p *MonthlyPanel) NodeID() string { return p.node.ID }

// Name returns the manager name shown in the panel title.
func (p *MonthlyPanel) Name() string { return p.node.Name }

// Role returns the role of the node being edited.
func (p *MonthlyPanel) Role() domain.Role { return p.node.Role }

// TargetAmount is the annual target the months are measured against. It
// follows the node, so target edits made while the panel is open count.
func (p *MonthlyPanel) TargetAmount() int64 { return p.node.TargetAmount }

// Months returns a copy of the working months.
func (p *MonthlyPanel) Months() []domain.MonthlyTarget {
	out := make([]domain.MonthlyTarget, len(p.work.MonthlyTargets))
	copy(out, p.work.MonthlyTargets)
	return out
}

// Allocation reports how much of the annual target the working months cover.
func (p *MonthlyPanel) Allocation() monthly.Allocation {
	return monthly.CalculateAllocations(p.working())
}

// working returns the working copy with the node's current annual target.
func (p *MonthlyPanel) working() *domain.Node {
	p.work.TargetAmount = p.node.TargetAmount
	return p.work
}

// Dirty reports whether the working copy differs from the node.
func (p *MonthlyPanel) Dirty() bool {
	if len(p.work.MonthlyTargets) != len(p.node.MonthlyTargets) {
		return true
	}
	for i, m := range p.work.MonthlyTargets {
		if !m.Target.Equal(p.node.MonthlyTargets[i].Target) {
			return true
		}
	}
	return false
}

func (p *MonthlyPanel) commit() {
	copy(p.node.MonthlyTargets, p.work.MonthlyTargets)
}
