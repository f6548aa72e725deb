// Package navigation tracks which sibling set of the hierarchy is on screen
// and the breadcrumb trail that led there.
package navigation

import (
	"fmt"

	"github.com/alexanderramin/quota/internal/domain"
)

// Crumb is one entry of the breadcrumb trail. The first crumb is always the
// synthetic company entry with an empty NodeID.
type Crumb struct {
	Label  string
	Role   domain.Role
	NodeID string
}

// CompanyCrumb is the root of every trail.
var CompanyCrumb = Crumb{Label: "Company", Role: domain.RoleCompany}

// Controller is the drill-down state machine. It never mutates nodes.
//
// Invariant: len(Breadcrumbs()) == len(SelectedPath())+1.
type Controller struct {
	roots       []*domain.Node
	breadcrumbs []Crumb
	path        []*domain.Node
	current     []*domain.Node
}

// New returns a controller positioned at the company level.
func New(roots []*domain.Node) *Controller {
	c := &Controller{roots: roots}
	c.reset()
	return c
}

func (c *Controller) reset() {
	c.breadcrumbs = []Crumb{CompanyCrumb}
	c.path = nil
	c.current = c.roots
}

// Roots returns the top-level sibling set.
func (c *Controller) Roots() []*domain.Node { return c.roots }

// Current returns the sibling set on screen.
func (c *Controller) Current() []*domain.Node { return c.current }

// Breadcrumbs returns a copy of the trail.
func (c *Controller) Breadcrumbs() []Crumb {
	out := make([]Crumb, len(c.breadcrumbs))
	copy(out, c.breadcrumbs)
	return out
}

// SelectedPath returns a copy of the nodes drilled through, top first.
func (c *Controller) SelectedPath() []*domain.Node {
	out := make([]*domain.Node, len(c.path))
	copy(out, c.path)
	return out
}

// Parent returns the node whose children are on screen, or nil at the
// company level.
func (c *Controller) Parent() *domain.Node {
	if len(c.path) == 0 {
		return nil
	}
	return c.path[len(c.path)-1]
}

// Level derives the active level from the last breadcrumb's role.
func (c *Controller) Level() domain.Level {
	return domain.LevelFor(c.breadcrumbs[len(c.breadcrumbs)-1].Role)
}

// DrillDown opens node's children. Leaves are ignored and report false.
func (c *Controller) DrillDown(node *domain.Node) bool {
	if node == nil || node.IsLeaf() {
		return false
	}
	c.path = append(c.path, node)
	c.breadcrumbs = append(c.breadcrumbs, Crumb{Label: node.Name, Role: node.Role, NodeID: node.ID})
	c.current = node.Children
	return true
}

// NavigateTo jumps back to the breadcrumb at index. Index 0 is the company
// level. An index past the end of the trail is rejected and the state is
// left unchanged.
func (c *Controller) NavigateTo(index int) error {
	if index < 0 || index >= len(c.breadcrumbs) {
		return fmt.Errorf("navigating to breadcrumb %d of %d: %w", index, len(c.breadcrumbs), domain.ErrBreadcrumbOutOfRange)
	}
	c.truncate(index)
	return nil
}

// Up moves one level towards the company. It reports false at the top.
func (c *Controller) Up() bool {
	if len(c.breadcrumbs) <= 1 {
		return false
	}
	c.truncate(len(c.breadcrumbs) - 2)
	return true
}

// truncate keeps the trail up to and including the crumb at index, which
// must be in range.
func (c *Controller) truncate(index int) {
	if index == 0 {
		c.reset()
		return
	}
	c.breadcrumbs = c.breadcrumbs[:index+1]
	c.path = c.path[:index]
	c.current = c.path[index-1].Children
}
