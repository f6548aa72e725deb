package cli

import (
	"fmt"

	"github.com/alexanderramin/quota/internal/config"
	"github.com/alexanderramin/quota/internal/domain"
	"github.com/alexanderramin/quota/internal/export"
	"github.com/alexanderramin/quota/internal/money"
	"github.com/alexanderramin/quota/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// App holds the configuration and collaborators used by CLI commands. The
// planner is built on first use so persistent flags can adjust the config.
type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Planner  service.PlanningService
	Money    *money.Formatter
	Exporter *export.Exporter

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "quota" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var (
		seedFile    string
		randSeed    int64
		totalCrores int64
	)

	root := &cobra.Command{
		Use:           "quota",
		Short:         "Hierarchical sales target planner",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if flags.Changed("seed-file") {
				app.Config.SeedFile = seedFile
			}
			if flags.Changed("seed") {
				app.Config.RandSeed = randSeed
			}
			if flags.Changed("total") {
				if totalCrores <= 0 {
					return fmt.Errorf("--total must be a positive number of crores")
				}
				app.Config.TotalTarget = totalCrores * domain.Crore
			}
			return app.open()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&seedFile, "seed-file", "", "hierarchy JSON to start from (default: built-in)")
	pf.Int64Var(&randSeed, "seed", 0, "random seed for auto-split (0: time-based)")
	pf.Int64Var(&totalCrores, "total", 0, "company-wide annual target in crores (default: from seed)")

	root.AddCommand(
		newTUICmd(app),
		newLevelsCmd(app),
		newSplitCmd(app),
		newMonthlyCmd(app),
		newExportCmd(app),
	)

	return root
}

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive planner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}
}
