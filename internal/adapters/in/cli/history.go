package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dbs3/internal/domain"
)

func newHistoryCmd(flags *globalFlags, load ServicesLoader) *cobra.Command {
	var (
		limit  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent backup and restore runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("%w: --limit must not be negative", domain.ErrInvalidConfig)
			}
			if err := checkFormat(format); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return withServices(cmd.Context(), flags, load, cmd.InOrStdin(), out, func(ctx context.Context, svc *Services) error {
				runs, err := svc.History.Recent(ctx, limit)
				if err != nil {
					return err
				}
				return renderRuns(out, format, runs)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Number of runs to show (0 for all)")
	cmd.Flags().StringVarP(&format, "output", "o", formatTable, "Output format: table, json or yaml")

	return cmd
}

func newDoctorCmd(flags *globalFlags, load ServicesLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration, storage, database tooling and history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return withServices(cmd.Context(), flags, load, cmd.InOrStdin(), out, func(ctx context.Context, svc *Services) error {
				checks := svc.Health.CheckAll(ctx)
				renderHealth(out, checks)

				failed := 0
				for _, check := range checks {
					if !check.OK {
						failed++
					}
				}
				if failed > 0 {
					return fmt.Errorf("%d of %d checks failed", failed, len(checks))
				}
				return nil
			})
		},
	}
}
