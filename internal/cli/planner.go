package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/alexanderramin/quota/internal/allocation"
	"github.com/alexanderramin/quota/internal/config"
	"github.com/alexanderramin/quota/internal/export"
	"github.com/alexanderramin/quota/internal/money"
	"github.com/alexanderramin/quota/internal/seed"
	"github.com/alexanderramin/quota/internal/service"
)

// open builds whatever the App is missing from its config.
func (a *App) open() error {
	if a.Config == nil {
		a.Config = &config.Config{Locale: "en-IN", CurrencySymbol: "₹"}
	}
	if a.Money == nil {
		loc, err := money.ParseLocale(a.Config.Locale, a.Config.CurrencySymbol)
		if err != nil {
			return fmt.Errorf("parsing locale %q: %w", a.Config.Locale, err)
		}
		a.Money = money.NewFormatter(loc)
	}
	if a.Exporter == nil {
		a.Exporter = export.NewExporter()
	}
	if a.Planner != nil {
		return nil
	}

	planner, err := newPlanner(a)
	if err != nil {
		return err
	}
	a.Planner = planner
	return nil
}

func newPlanner(a *App) (service.PlanningService, error) {
	h, err := seed.Load(a.Config.SeedFile)
	if err != nil {
		return nil, err
	}
	if a.Config.TotalTarget > 0 {
		h.TotalTarget = a.Config.TotalTarget
	}

	randSeed := a.Config.RandSeed
	if randSeed == 0 {
		randSeed = time.Now().UnixNano()
	}
	engine := allocation.NewEngine(rand.New(rand.NewSource(randSeed)))

	a.Logger.Debug().
		Str("seed_file", a.Config.SeedFile).
		Int64("total", h.TotalTarget).
		Int64("rand_seed", randSeed).
		Int("roots", len(h.Roots)).
		Msg("planning session started")

	return service.NewPlanningService(h, engine, service.NewLogUseCaseObserver(a.Logger)), nil
}
