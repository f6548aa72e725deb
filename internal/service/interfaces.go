package service

import (
	"context"

	"github.com/alexanderramin/quota/internal/domain"
	"github.com/alexanderramin/quota/internal/monthly"
	"github.com/alexanderramin/quota/internal/navigation"
	"github.com/shopspring/decimal"
)

// PlanningService is the command surface the UI drives. Implementations are
// not safe for concurrent use.
type PlanningService interface {
	Current() []*domain.Node
	Breadcrumbs() []navigation.Crumb
	SelectedPath() []*domain.Node
	Level() domain.Level
	Node(id string) (*domain.Node, error)
	Roots() []*domain.Node
	TotalTarget() int64
	Multipliers() [domain.MonthsPerYear]float64
	Summary() LevelSummary
	MonthlyPanel() (*MonthlyPanel, bool)
	Allocations() (monthly.Allocation, error)

	AutoSplitTarget(ctx context.Context, total int64) error
	AutoSplitCurrent(ctx context.Context) error
	UpdateManagerTarget(ctx context.Context, id, raw string) (bool, error)
	ApplyPercentage(ctx context.Context, id string, pct float64) error
	DrillDown(ctx context.Context, id string) (bool, error)
	NavigateToBreadcrumb(ctx context.Context, index int) error
	NavigateUp(ctx context.Context) bool
	ToggleLock(ctx context.Context, id string) (bool, error)

	OpenMonthly(ctx context.Context, id string) (*MonthlyPanel, error)
	AutoSplitMonthly(ctx context.Context, id string) error
	MatchWithLastYear(ctx context.Context, id string) error
	ResetMonthlyTargets(ctx context.Context, id string) error
	UpdateMonthlyTarget(ctx context.Context, id string, month int, value decimal.Decimal) error
	SaveMonthly(ctx context.Context) error
	CloseMonthly(ctx context.Context)
}
