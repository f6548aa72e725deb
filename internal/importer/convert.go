package importer

import (
	"github.com/alexanderramin/quota/internal/domain"
	"github.com/google/uuid"
)

// Hierarchy is a converted seed: the top-level target, the last-year
// multipliers used when a node's months are first opened, and the NSM roots.
type Hierarchy struct {
	TotalTarget         int64
	LastYearMultipliers [domain.MonthsPerYear]float64
	Roots               []*domain.Node
}

// Convert transforms a validated HierarchySchema into domain nodes.
// Call ValidateHierarchySchema first; Convert assumes the schema is valid.
func Convert(schema *HierarchySchema) *Hierarchy {
	h := &Hierarchy{TotalTarget: schema.TotalTarget}
	copy(h.LastYearMultipliers[:], schema.LastYearMultipliers)

	h.Roots = make([]*domain.Node, 0, len(schema.Managers))
	for _, m := range schema.Managers {
		h.Roots = append(h.Roots, convertManager(m))
	}
	return h
}

func convertManager(m ManagerImport) *domain.Node {
	id := m.ID
	if id == "" {
		id = uuid.New().String()
	}
	n := &domain.Node{
		ID:                id,
		Name:              m.Name,
		Role:              domain.Role(m.Role),
		Location:          m.Location,
		TargetAmount:      m.TargetAmount,
		Percentage:        m.Percentage,
		VsLastYearPercent: m.VsLastYearPercent,
		Locked:            m.Locked,
	}
	if len(m.Children) > 0 {
		n.Children = make([]*domain.Node, 0, len(m.Children))
		for _, c := range m.Children {
			n.Children = append(n.Children, convertManager(c))
		}
	}
	return n
}
