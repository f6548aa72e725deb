package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/alexanderramin/quota/internal/domain"
	"github.com/alexanderramin/quota/internal/importer"
	"github.com/alexanderramin/quota/internal/seed"
	"github.com/stretchr/testify/require"
)

var testNodeCounter atomic.Int64

// Node options
type NodeOption func(*domain.Node)

func WithID(id string) NodeOption {
	return func(n *domain.Node) {
		n.ID = id
	}
}

func WithTarget(amount int64) NodeOption {
	return func(n *domain.Node) {
		n.TargetAmount = amount
	}
}

// WithCrores sets the target in crores.
func WithCrores(crores int64) NodeOption {
	return WithTarget(crores * domain.Crore)
}

func WithPercentage(pct float64) NodeOption {
	return func(n *domain.Node) {
		n.Percentage = pct
	}
}

func WithLocation(loc string) NodeOption {
	return func(n *domain.Node) {
		n.Location = loc
	}
}

func WithLocked() NodeOption {
	return func(n *domain.Node) {
		n.Locked = true
	}
}

func WithChildren(children ...*domain.Node) NodeOption {
	return func(n *domain.Node) {
		n.Children = append(n.Children, children...)
	}
}

func defaultNodeID(role domain.Role) string {
	return fmt.Sprintf("%s-t%d", strings.ToLower(string(role)), testNodeCounter.Add(1))
}

func NewTestNode(name string, role domain.Role, opts ...NodeOption) *domain.Node {
	n := &domain.Node{
		ID:   defaultNodeID(role),
		Name: name,
		Role: role,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NewSiblings builds one node per amount (in crores) with percentages
// matching their share of the sum.
func NewSiblings(role domain.Role, crores ...int64) []*domain.Node {
	var total int64
	for _, c := range crores {
		total += c
	}
	nodes := make([]*domain.Node, len(crores))
	for i, c := range crores {
		pct := 0.0
		if total > 0 {
			pct = float64(c) / float64(total) * 100
		}
		nodes[i] = NewTestNode(fmt.Sprintf("%s Manager %d", role, i+1), role, WithCrores(c), WithPercentage(pct))
	}
	return nodes
}

// NewTestHierarchy wraps roots in a hierarchy with flat multipliers.
func NewTestHierarchy(total int64, roots ...*domain.Node) *importer.Hierarchy {
	h := &importer.Hierarchy{TotalTarget: total, Roots: roots}
	for i := range h.LastYearMultipliers {
		h.LastYearMultipliers[i] = 1
	}
	return h
}

// DefaultHierarchy returns a fresh copy of the built-in seed.
func DefaultHierarchy(t testing.TB) *importer.Hierarchy {
	t.Helper()
	h, err := seed.Default()
	require.NoError(t, err)
	return h
}
