package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/quota/internal/cli/formatter"
	"github.com/alexanderramin/quota/internal/domain"
	"github.com/alexanderramin/quota/internal/service"
	"github.com/spf13/cobra"
)

// drillPath opens each node in turn, starting from the company level.
func drillPath(ctx context.Context, p service.PlanningService, path []string) error {
	for _, id := range path {
		moved, err := p.DrillDown(ctx, id)
		if err != nil {
			return err
		}
		if !moved {
			return fmt.Errorf("%s has no reports to drill into", id)
		}
	}
	return nil
}

func renderLevel(app *App) string {
	p := app.Planner
	return formatter.FormatLevel(app.Money, p.Breadcrumbs(), p.Current(), p.Summary())
}

func newLevelsCmd(app *App) *cobra.Command {
	var (
		path []string
		tree bool
	)
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "Print a level of the hierarchy",
		Long:  "Print the managers at the company level, or below the node reached by --path.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := drillPath(cmd.Context(), app.Planner, path); err != nil {
				return err
			}
			if tree {
				fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTree(app.Money, app.Planner.Current()))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), renderLevel(app))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&path, "path", nil, "node IDs to drill through, top first")
	cmd.Flags().BoolVar(&tree, "tree", false, "print every level below as a tree")
	return cmd
}

func newSplitCmd(app *App) *cobra.Command {
	var (
		path   []string
		amount int64
	)
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Auto-split a level's target and print it",
		Long: "Distribute a target across the managers of a level. Without --amount the\n" +
			"level's own budget is split: the parent's target, or the company total.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := drillPath(ctx, app.Planner, path); err != nil {
				return err
			}
			var err error
			if amount > 0 {
				err = app.Planner.AutoSplitTarget(ctx, amount*domain.Crore)
			} else {
				err = app.Planner.AutoSplitCurrent(ctx)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderLevel(app))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&path, "path", nil, "node IDs to drill through, top first")
	cmd.Flags().Int64Var(&amount, "amount", 0, "amount to split in crores (default: the level's budget)")
	return cmd
}
