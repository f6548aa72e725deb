package service

import (
	"bytes"
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/alexanderramin/quota/internal/allocation"
	"github.com/alexanderramin/quota/internal/domain"
	"github.com/alexanderramin/quota/internal/navigation"
	"github.com/alexanderramin/quota/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func (r *recordingObserver) last() UseCaseEvent {
	return r.events[len(r.events)-1]
}

func newTestService(t *testing.T, observers ...UseCaseObserver) PlanningService {
	t.Helper()
	h := testutil.DefaultHierarchy(t)
	return NewPlanningService(h, allocation.NewEngine(rand.New(rand.NewSource(42))), observers...)
}

func ids(nodes []*domain.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}

func TestPlanningService_StartsAtCompany(t *testing.T) {
	svc := newTestService(t)

	assert.Equal(t, []string{"nsm-1", "nsm-2", "nsm-3", "nsm-4"}, ids(svc.Current()))
	assert.Equal(t, []navigation.Crumb{navigation.CompanyCrumb}, svc.Breadcrumbs())
	assert.Empty(t, svc.SelectedPath())
	assert.Equal(t, domain.LevelCompany, svc.Level())

	sum := svc.Summary()
	assert.Equal(t, 4, sum.Count)
	assert.Equal(t, int64(10_000_000_000), sum.Allocated)
	assert.Equal(t, int64(10_000_000_000), sum.Budget)
	assert.Zero(t, sum.Unallocated())
	assert.InDelta(t, 100, sum.PercentTotal, 0.001)
}

func TestPlanningService_DrillAndNavigateBack(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	moved, err := svc.DrillDown(ctx, "nsm-1")
	require.NoError(t, err)
	require.True(t, moved)
	moved, err = svc.DrillDown(ctx, "zsm-1")
	require.NoError(t, err)
	require.True(t, moved)

	crumbs := svc.Breadcrumbs()
	require.Len(t, crumbs, 3)
	assert.Equal(t, "Mahesh Babu", crumbs[1].Label)
	assert.Equal(t, domain.RoleZSM, crumbs[2].Role)
	assert.Len(t, svc.SelectedPath(), 2)

	require.NoError(t, svc.NavigateToBreadcrumb(ctx, 1))
	assert.Len(t, svc.Breadcrumbs(), 2)
	assert.Equal(t, []string{"zsm-1", "zsm-2"}, ids(svc.Current()))

	assert.True(t, svc.NavigateUp(ctx))
	assert.Equal(t, domain.LevelCompany, svc.Level())
	assert.False(t, svc.NavigateUp(ctx))
}

func TestPlanningService_DrillDownErrors(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.DrillDown(ctx, "zsm-1")
	assert.ErrorIs(t, err, domain.ErrNodeNotInView)

	_, err = svc.DrillDown(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNodeNotFound)

	moved, err := svc.DrillDown(ctx, "nsm-4")
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Len(t, svc.Breadcrumbs(), 1)
}

func TestPlanningService_NavigateOutOfRange(t *testing.T) {
	svc := newTestService(t)
	err := svc.NavigateToBreadcrumb(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrBreadcrumbOutOfRange)
	assert.Len(t, svc.Breadcrumbs(), 1)
}

func TestPlanningService_AutoSplitTarget(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	const total = int64(12_000_000_000)
	require.NoError(t, svc.AutoSplitTarget(ctx, total))

	nodes := svc.Current()
	assert.InDelta(t, 100, allocation.PercentTotal(nodes), 0.001)
	for _, n := range nodes[:len(nodes)-1] {
		assert.GreaterOrEqual(t, n.Percentage, float64(allocation.MinSplitPct))
		assert.LessOrEqual(t, n.Percentage, float64(allocation.MaxSplitPct))
	}
	assert.InDelta(t, total, allocation.Sum(nodes), float64(len(nodes)))
	assert.Equal(t, total, svc.TotalTarget())
}

func TestPlanningService_AutoSplitCurrentUsesParentBudget(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.DrillDown(ctx, "nsm-1")
	require.NoError(t, err)
	require.NoError(t, svc.AutoSplitCurrent(ctx))

	assert.InDelta(t, 3_300_000_000, allocation.Sum(svc.Current()), 2)
	assert.Equal(t, int64(3_300_000_000), svc.Summary().Budget)
	assert.Equal(t, int64(10_000_000_000), svc.TotalTarget(), "company total only changes at the top level")
}

func TestPlanningService_AutoSplitTargetRejectsNegative(t *testing.T) {
	svc := newTestService(t)
	before := svc.Current()[0].TargetAmount

	assert.Error(t, svc.AutoSplitTarget(context.Background(), -1))
	assert.Equal(t, before, svc.Current()[0].TargetAmount)
}

func TestPlanningService_UpdateManagerTarget(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	applied, err := svc.UpdateManagerTarget(ctx, "nsm-1", "50")
	require.NoError(t, err)
	require.True(t, applied)

	nodes := svc.Current()
	assert.Equal(t, int64(500_000_000), nodes[0].TargetAmount)
	sum := allocation.Sum(nodes)
	for _, n := range nodes {
		assert.Equal(t, math.Round(float64(n.TargetAmount)/float64(sum)*100), n.Percentage, n.ID)
	}
	assert.Equal(t, 7.0, nodes[0].Percentage)
}

func TestPlanningService_UpdateManagerTargetIgnoresNonNumeric(t *testing.T) {
	svc := newTestService(t)
	before := *svc.Current()[0]

	applied, err := svc.UpdateManagerTarget(context.Background(), "nsm-1", "abc")
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, before.TargetAmount, svc.Current()[0].TargetAmount)
	assert.Equal(t, before.Percentage, svc.Current()[0].Percentage)
}

func TestPlanningService_UpdateManagerTargetOutsideView(t *testing.T) {
	_, err := newTestService(t).UpdateManagerTarget(context.Background(), "so-1", "5")
	assert.ErrorIs(t, err, domain.ErrNodeNotInView)
}

func TestPlanningService_ApplyPercentage(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.ApplyPercentage(ctx, "nsm-1", 40))
	n, err := svc.Node("nsm-1")
	require.NoError(t, err)
	assert.Equal(t, int64(4_000_000_000), n.TargetAmount)
	// 400 of 1070 crores after the sibling rebase.
	assert.Equal(t, 37.0, n.Percentage)
}

func TestPlanningService_ApplyPercentageUsesCompanyTotalBelowTop(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	_, err := svc.DrillDown(ctx, "nsm-1")
	require.NoError(t, err)

	require.NoError(t, svc.ApplyPercentage(ctx, "zsm-1", 10))

	n, err := svc.Node("zsm-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000_000), n.TargetAmount)
	assert.Equal(t, 40.0, n.Percentage)
}

func TestPlanningService_ApplyPercentageRejects(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	assert.Error(t, svc.ApplyPercentage(ctx, "nsm-1", 120))
	assert.Error(t, svc.ApplyPercentage(ctx, "nsm-1", -1))
	assert.Error(t, svc.ApplyPercentage(ctx, "nsm-1", math.NaN()))

	node, err := svc.Node("nsm-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3_300_000_000), node.TargetAmount)
	assert.Equal(t, float64(33), node.Percentage)
	assert.ErrorIs(t, svc.ApplyPercentage(ctx, "missing", 10), domain.ErrNodeNotFound)
	assert.ErrorIs(t, svc.ApplyPercentage(ctx, "zsm-1", 10), domain.ErrNodeNotInView)
}

func TestPlanningService_ToggleLock(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	locked, err := svc.ToggleLock(ctx, "nsm-2")
	require.NoError(t, err)
	assert.True(t, locked)
	assert.Equal(t, 1, svc.Summary().Locked)

	locked, err = svc.ToggleLock(ctx, "so-1")
	require.NoError(t, err)
	assert.True(t, locked)

	locked, err = svc.ToggleLock(ctx, "nsm-2")
	require.NoError(t, err)
	assert.False(t, locked)

	_, err = svc.ToggleLock(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNodeNotFound)
}

func TestPlanningService_LockDoesNotGateAllocation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	_, err := svc.ToggleLock(ctx, "nsm-1")
	require.NoError(t, err)

	applied, err := svc.UpdateManagerTarget(ctx, "nsm-1", "10")
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, int64(100_000_000), svc.Current()[0].TargetAmount)
}

func TestPlanningService_MonthlyAutoSplitAndSave(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	panel, err := svc.OpenMonthly(ctx, "nsm-1")
	require.NoError(t, err)
	require.Len(t, panel.Months(), domain.MonthsPerYear)

	require.NoError(t, svc.AutoSplitMonthly(ctx, "nsm-1"))
	for _, m := range panel.Months() {
		assert.True(t, decimal.RequireFromString("27.5").Equal(m.Target), m.Month)
	}
	assert.True(t, panel.Dirty())

	alloc, err := svc.Allocations()
	require.NoError(t, err)
	assert.Equal(t, int64(3_300_000_000), alloc.Allocated)
	assert.Zero(t, alloc.Remaining)

	node, err := svc.Node("nsm-1")
	require.NoError(t, err)
	assert.True(t, node.MonthlyTargets[0].Target.IsZero(), "edits stay in the panel until saved")

	require.NoError(t, svc.SaveMonthly(ctx))
	assert.True(t, decimal.RequireFromString("27.5").Equal(node.MonthlyTargets[0].Target))
	_, open := svc.MonthlyPanel()
	assert.False(t, open)
}

func TestPlanningService_MonthlyFollowsTargetEdits(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	panel, err := svc.OpenMonthly(ctx, "nsm-1")
	require.NoError(t, err)
	require.NoError(t, svc.AutoSplitMonthly(ctx, "nsm-1"))

	applied, err := svc.UpdateManagerTarget(ctx, "nsm-1", "50")
	require.NoError(t, err)
	require.True(t, applied)
	assert.Equal(t, int64(500_000_000), panel.TargetAmount())

	alloc, err := svc.Allocations()
	require.NoError(t, err)
	assert.Equal(t, int64(3_300_000_000), alloc.Allocated)
	assert.Equal(t, int64(-2_800_000_000), alloc.Remaining)

	require.NoError(t, svc.AutoSplitMonthly(ctx, "nsm-1"))
	for _, m := range panel.Months() {
		assert.Equal(t, "4.17", m.Target.StringFixed(2), m.Month)
	}
	alloc, err = svc.Allocations()
	require.NoError(t, err)
	assert.Equal(t, int64(500_400_000), alloc.Allocated)
	assert.Equal(t, int64(-400_000), alloc.Remaining)
}

func TestPlanningService_MonthlyCloseDiscards(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.OpenMonthly(ctx, "zsm-3")
	require.NoError(t, err)
	require.NoError(t, svc.AutoSplitMonthly(ctx, "zsm-3"))
	svc.CloseMonthly(ctx)

	node, err := svc.Node("zsm-3")
	require.NoError(t, err)
	for _, m := range node.MonthlyTargets {
		assert.True(t, m.Target.IsZero())
	}
	_, err = svc.Allocations()
	assert.ErrorIs(t, err, domain.ErrPanelClosed)
}

func TestPlanningService_MonthlyMatchLastYearAndReset(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	panel, err := svc.OpenMonthly(ctx, "nsm-1")
	require.NoError(t, err)
	require.NoError(t, svc.MatchWithLastYear(ctx, "nsm-1"))
	for _, m := range panel.Months() {
		want := decimal.NewFromInt(m.LastYearReference).Div(decimal.NewFromInt(100))
		assert.True(t, want.Equal(m.Target), m.Month)
	}
	// 330 crores are 33000 lakhs; January carries 2.4 of 31.3 weight.
	assert.Equal(t, int64(2530), panel.Months()[0].LastYearReference)

	require.NoError(t, svc.ResetMonthlyTargets(ctx, "nsm-1"))
	alloc := panel.Allocation()
	assert.Zero(t, alloc.Allocated)
	assert.Equal(t, panel.TargetAmount(), alloc.Remaining)
}

func TestPlanningService_UpdateMonthlyTarget(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	panel, err := svc.OpenMonthly(ctx, "nsm-1")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateMonthlyTarget(ctx, "nsm-1", 0, decimal.NewFromInt(100)))
	alloc := panel.Allocation()
	assert.Equal(t, int64(1_000_000_000), alloc.Allocated)
	assert.Equal(t, int64(2_300_000_000), alloc.Remaining)

	require.NoError(t, svc.UpdateMonthlyTarget(ctx, "nsm-1", 1, decimal.NewFromInt(500)))
	assert.Negative(t, panel.Allocation().Remaining)

	err = svc.UpdateMonthlyTarget(ctx, "nsm-1", 12, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrMonthOutOfRange)
}

func TestPlanningService_MonthlyRequiresOpenPanel(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	assert.ErrorIs(t, svc.AutoSplitMonthly(ctx, "nsm-1"), domain.ErrPanelClosed)
	assert.ErrorIs(t, svc.SaveMonthly(ctx), domain.ErrPanelClosed)

	_, err := svc.OpenMonthly(ctx, "nsm-1")
	require.NoError(t, err)
	assert.ErrorIs(t, svc.ResetMonthlyTargets(ctx, "nsm-2"), domain.ErrPanelClosed)

	_, err = svc.OpenMonthly(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNodeNotFound)
}

func TestPlanningService_ObservesUseCases(t *testing.T) {
	ctx := context.Background()
	obs := &recordingObserver{}
	svc := newTestService(t, obs)

	_, err := svc.DrillDown(ctx, "nsm-1")
	require.NoError(t, err)
	ev := obs.last()
	assert.Equal(t, "drill-down", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, "nsm", ev.Fields["level"])

	_, err = svc.DrillDown(ctx, "missing")
	require.Error(t, err)
	ev = obs.last()
	assert.False(t, ev.Success)
	assert.ErrorIs(t, ev.Err, domain.ErrNodeNotFound)
}

func TestLogUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	svc := newTestService(t, NewLogUseCaseObserver(logger))

	_, err := svc.ToggleLock(context.Background(), "nsm-3")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"use_case":"toggle-lock"`)
	assert.Contains(t, out, `"node":"nsm-3"`)
	assert.Contains(t, out, `"locked":true`)
}
