package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/quota/internal/allocation"
	"github.com/alexanderramin/quota/internal/domain"
	"github.com/alexanderramin/quota/internal/importer"
	"github.com/alexanderramin/quota/internal/monthly"
	"github.com/alexanderramin/quota/internal/navigation"
	"github.com/shopspring/decimal"
)

type planningService struct {
	total       int64
	multipliers [domain.MonthsPerYear]float64
	engine      *allocation.Engine
	nav         *navigation.Controller
	panel       *MonthlyPanel
	observer    UseCaseObserver
}

// NewPlanningService starts a session over the given hierarchy. The session
// mutates the hierarchy's nodes in place.
func NewPlanningService(
	h *importer.Hierarchy,
	engine *allocation.Engine,
	observers ...UseCaseObserver,
) PlanningService {
	if engine == nil {
		engine = allocation.NewEngine(nil)
	}
	return &planningService{
		total:       h.TotalTarget,
		multipliers: h.LastYearMultipliers,
		engine:      engine,
		nav:         navigation.New(h.Roots),
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *planningService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err *error) {
	var e error
	if err != nil {
		e = *err
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   e == nil,
		Err:       e,
		Fields:    fields,
	})
}

func (s *planningService) Current() []*domain.Node { return s.nav.Current() }
func (s *planningService) Breadcrumbs() []navigation.Crumb { return s.nav.Breadcrumbs() }
func (s *planningService) SelectedPath() []*domain.Node { return s.nav.SelectedPath() }
func (s *planningService) Level() domain.Level { return s.nav.Level() }
func (s *planningService) Roots() []*domain.Node { return s.nav.Roots() }
func (s *planningService) TotalTarget() int64 { return s.total }
func (s *planningService) Multipliers() [domain.MonthsPerYear]float64 { return s.multipliers }

func (s *planningService) Node(id string) (*domain.Node, error) {
	n := domain.FindIn(s.nav.Roots(), id)
	if n == nil {
		return nil, fmt.Errorf("looking up node %s: %w", id, domain.ErrNodeNotFound)
	}
	return n, nil
}

func (s *planningService) Summary() LevelSummary {
	return summarize(s.nav.Level(), s.nav.Current(), s.budget())
}

// budget is the amount the current level is split from.
func (s *planningService) budget() int64 {
	if p := s.nav.Parent(); p != nil {
		return p.TargetAmount
	}
	return s.total
}

func (s *planningService) MonthlyPanel() (*MonthlyPanel, bool) {
	return s.panel, s.panel != nil
}

func (s *planningService) Allocations() (monthly.Allocation, error) {
	if s.panel == nil {
		return monthly.Allocation{}, fmt.Errorf("reading allocations: %w", domain.ErrPanelClosed)
	}
	return s.panel.Allocation(), nil
}

// inView returns the node with id from the sibling set on screen.
func (s *planningService) inView(id string) (*domain.Node, error) {
	current := s.nav.Current()
	if i := domain.IndexOf(current, id); i >= 0 {
		return current[i], nil
	}
	if domain.FindIn(s.nav.Roots(), id) == nil {
		return nil, fmt.Errorf("node %s: %w", id, domain.ErrNodeNotFound)
	}
	return nil, fmt.Errorf("node %s: %w", id, domain.ErrNodeNotInView)
}

func (s *planningService) AutoSplitTarget(ctx context.Context, total int64) (err error) {
	defer s.observe(ctx, "auto-split", time.Now(), map[string]any{
		"level": string(s.nav.Level()),
		"total": total,
		"nodes": len(s.nav.Current()),
	}, &err)

	if total < 0 {
		return fmt.Errorf("auto-splitting %d: total must not be negative", total)
	}
	if err = s.engine.AutoSplit(s.nav.Current(), total); err != nil {
		return fmt.Errorf("auto-splitting %s level: %w", s.nav.Level(), err)
	}
	if s.nav.Parent() == nil {
		s.total = total
	}
	return nil
}

func (s *planningService) AutoSplitCurrent(ctx context.Context) error {
	return s.AutoSplitTarget(ctx, s.budget())
}

func (s *planningService) UpdateManagerTarget(ctx context.Context, id, raw string) (applied bool, err error) {
	fields := map[string]any{"node": id}
	defer s.observe(ctx, "update-target", time.Now(), fields, &err)

	var node *domain.Node
	node, err = s.inView(id)
	if err != nil {
		return false, fmt.Errorf("updating target: %w", err)
	}
	applied = allocation.UpdateTarget(s.nav.Current(), node, raw)
	fields["applied"] = applied
	fields["amount"] = node.TargetAmount
	return applied, nil
}

func (s *planningService) ApplyPercentage(ctx context.Context, id string, pct float64) (err error) {
	fields := map[string]any{"node": id, "percentage": pct}
	defer s.observe(ctx, "apply-percentage", time.Now(), fields, &err)

	if math.IsNaN(pct) || pct < 0 || pct > 100 {
		return fmt.Errorf("applying percentage %.2f: must be within 0..100", pct)
	}
	if _, err = s.inView(id); err != nil {
		return fmt.Errorf("applying percentage: %w", err)
	}
	// The amount is taken from the company total at every level.
	return allocation.ApplyPercentage(s.nav.Current(), id, pct, s.total)
}

func (s *planningService) DrillDown(ctx context.Context, id string) (moved bool, err error) {
	fields := map[string]any{"node": id}
	defer s.observe(ctx, "drill-down", time.Now(), fields, &err)

	var node *domain.Node
	node, err = s.inView(id)
	if err != nil {
		return false, fmt.Errorf("drilling down: %w", err)
	}
	moved = s.nav.DrillDown(node)
	fields["moved"] = moved
	fields["level"] = string(s.nav.Level())
	return moved, nil
}

func (s *planningService) NavigateToBreadcrumb(ctx context.Context, index int) (err error) {
	defer s.observe(ctx, "navigate", time.Now(), map[string]any{"index": index}, &err)
	return s.nav.NavigateTo(index)
}

func (s *planningService) NavigateUp(ctx context.Context) bool {
	var err error
	defer s.observe(ctx, "navigate-up", time.Now(), nil, &err)
	return s.nav.Up()
}

func (s *planningService) ToggleLock(ctx context.Context, id string) (locked bool, err error) {
	fields := map[string]any{"node": id}
	defer s.observe(ctx, "toggle-lock", time.Now(), fields, &err)

	var node *domain.Node
	if node, err = s.Node(id); err != nil {
		return false, err
	}
	locked = node.ToggleLock()
	fields["locked"] = locked
	return locked, nil
}

// OpenMonthly opens the panel for id, replacing any panel already open.
// Unsaved edits in the replaced panel are discarded.
func (s *planningService) OpenMonthly(ctx context.Context, id string) (panel *MonthlyPanel, err error) {
	defer s.observe(ctx, "open-monthly", time.Now(), map[string]any{"node": id}, &err)

	var node *domain.Node
	if node, err = s.Node(id); err != nil {
		return nil, fmt.Errorf("opening monthly panel: %w", err)
	}
	monthly.EnsureMonths(node, s.multipliers)
	s.panel = newMonthlyPanel(node)
	return s.panel, nil
}

// openPanel returns the panel if it is open on id.
func (s *planningService) openPanel(id string) (*MonthlyPanel, error) {
	if s.panel == nil || s.panel.NodeID() != id {
		return nil, fmt.Errorf("monthly panel for %s: %w", id, domain.ErrPanelClosed)
	}
	return s.panel, nil
}

func (s *planningService) panelOp(ctx context.Context, name, id string, op func(*domain.Node) error) (err error) {
	defer s.observe(ctx, name, time.Now(), map[string]any{"node": id}, &err)

	var p *MonthlyPanel
	if p, err = s.openPanel(id); err != nil {
		return err
	}
	return op(p.working())
}

func (s *planningService) AutoSplitMonthly(ctx context.Context, id string) error {
	return s.panelOp(ctx, "monthly-auto-split", id, monthly.AutoSplit)
}

func (s *planningService) MatchWithLastYear(ctx context.Context, id string) error {
	return s.panelOp(ctx, "monthly-match-last-year", id, monthly.MatchLastYear)
}

func (s *planningService) ResetMonthlyTargets(ctx context.Context, id string) error {
	return s.panelOp(ctx, "monthly-reset", id, monthly.Reset)
}

func (s *planningService) UpdateMonthlyTarget(ctx context.Context, id string, month int, value decimal.Decimal) error {
	return s.panelOp(ctx, "monthly-update", id, func(n *domain.Node) error {
		return monthly.Update(n, month, value)
	})
}

func (s *planningService) SaveMonthly(ctx context.Context) (err error) {
	fields := map[string]any{}
	defer s.observe(ctx, "monthly-save", time.Now(), fields, &err)

	if s.panel == nil {
		return fmt.Errorf("saving monthly targets: %w", domain.ErrPanelClosed)
	}
	alloc := s.panel.Allocation()
	fields["node"] = s.panel.NodeID()
	fields["allocated"] = alloc.Allocated
	fields["remaining"] = alloc.Remaining
	s.panel.commit()
	s.panel = nil
	return nil
}

func (s *planningService) CloseMonthly(ctx context.Context) {
	var err error
	fields := map[string]any{}
	defer s.observe(ctx, "monthly-close", time.Now(), fields, &err)

	if s.panel != nil {
		fields["node"] = s.panel.NodeID()
		fields["discarded"] = s.panel.Dirty()
	}
	s.panel = nil
}
