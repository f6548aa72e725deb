package cli

import (
	"fmt"

	"github.com/alexanderramin/quota/internal/cli/formatter"
	"github.com/alexanderramin/quota/internal/domain"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		out  string
		mode = modeNone
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the allocation tree to an xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := app.Planner

			var ids []string
			for _, r := range p.Roots() {
				r.Walk(func(n *domain.Node, _ int) bool {
					ids = append(ids, n.ID)
					return true
				})
			}
			if mode != modeNone {
				for _, id := range ids {
					if _, err := p.OpenMonthly(ctx, id); err != nil {
						return err
					}
					if err := applyMonthlyMode(ctx, p, id, mode); err != nil {
						return err
					}
					if err := p.SaveMonthly(ctx); err != nil {
						return err
					}
				}
			}

			if err := app.Exporter.WriteFile(out, p.Roots(), p.TotalTarget()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %d managers to %s\n",
				formatter.StyleGreen.Render("✔"), len(ids), formatter.Bold(out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "quota-plan.xlsx", "workbook path")
	cmd.Flags().Var(&mode, "monthly", "fill every manager's months first: none, auto, last-year or reset")
	return cmd
}
