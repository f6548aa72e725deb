package domain

import "github.com/shopspring/decimal"

// Crore and Lakh are the Indian numbering units used by the planner, in base
// currency units.
const (
	Crore int64 = 10_000_000
	Lakh  int64 = 100_000
)

// MonthsPerYear is the fixed number of monthly buckets per node.
const MonthsPerYear = 12

// MonthNames lists the monthly buckets in calendar order starting January.
var MonthNames = [MonthsPerYear]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthlyTarget is one calendar bucket of a node's annual target.
type MonthlyTarget struct {
	Month string
	// Target is expressed in Crores with two decimal places.
	Target decimal.Decimal
	// LastYearReference is last year's figure for the month in Lakhs.
	LastYearReference int64
}

// Node is one manager in the sales hierarchy. A node owns its children.
type Node struct {
	ID                string
	Name              string
	Role              Role
	Location          string
	TargetAmount      int64
	Percentage        float64
	VsLastYearPercent float64
	Children          []*Node
	MonthlyTargets    []MonthlyTarget // nil until opened in the monthly panel
	Locked            bool
}

// IsLeaf reports whether the node has no children to drill into.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// ToggleLock flips the advisory lock. The allocation engine never reads it.
func (n *Node) ToggleLock() bool {
	n.Locked = !n.Locked
	return n.Locked
}

// Find returns the node with the given ID from n's subtree, n included.
func (n *Node) Find(id string) *Node {
	if n.ID == id {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits n and its descendants depth-first, parents before children.
// Returning false from fn stops descent into that node's children.
func (n *Node) Walk(fn func(n *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(n *Node, depth int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Clone returns a deep copy of the subtree rooted at n.
func (n *Node) Clone() *Node {
	cp := *n
	if n.MonthlyTargets != nil {
		cp.MonthlyTargets = make([]MonthlyTarget, len(n.MonthlyTargets))
		copy(cp.MonthlyTargets, n.MonthlyTargets)
	}
	if n.Children != nil {
		cp.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			cp.Children[i] = c.Clone()
		}
	}
	return &cp
}

// FindIn searches a forest of root nodes.
func FindIn(roots []*Node, id string) *Node {
	for _, r := range roots {
		if found := r.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// IndexOf returns the position of the node with the given ID in nodes, or -1.
func IndexOf(nodes []*Node, id string) int {
	for i, n := range nodes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
