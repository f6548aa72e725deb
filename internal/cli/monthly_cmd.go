package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/quota/internal/cli/formatter"
	"github.com/alexanderramin/quota/internal/service"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// applyMonthlyMode fills the open panel's months according to mode.
func applyMonthlyMode(ctx context.Context, p service.PlanningService, id string, mode monthlyMode) error {
	switch mode {
	case modeAuto:
		return p.AutoSplitMonthly(ctx, id)
	case modeLastYear:
		return p.MatchWithLastYear(ctx, id)
	case modeReset:
		return p.ResetMonthlyTargets(ctx, id)
	default:
		return nil
	}
}

func newMonthlyCmd(app *App) *cobra.Command {
	var (
		mode  = modeAuto
		month monthFlag
		value string
	)
	cmd := &cobra.Command{
		Use:   "monthly <node-id>",
		Short: "Print a manager's monthly plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]
			p := app.Planner

			if value != "" && !month.set {
				return fmt.Errorf("--value needs --month")
			}
			panel, err := p.OpenMonthly(ctx, id)
			if err != nil {
				return err
			}
			if err := applyMonthlyMode(ctx, p, id, mode); err != nil {
				return err
			}
			if month.set {
				v, err := decimal.NewFromString(value)
				if err != nil {
					return fmt.Errorf("parsing --value %q: %w", value, err)
				}
				if err := p.UpdateMonthlyTarget(ctx, id, month.index, v); err != nil {
					return err
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMonthly(app.Money,
				panel.Name(), panel.Role(), panel.TargetAmount(), panel.Months(), panel.Allocation()))
			return p.SaveMonthly(ctx)
		},
	}
	cmd.Flags().Var(&mode, "mode", "fill months with none, auto, last-year or reset")
	cmd.Flags().Var(&month, "month", "month to overwrite (1-12 or name)")
	cmd.Flags().StringVar(&value, "value", "", "target for --month in crores")
	return cmd
}
