package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func newScheduleCmd(flags *globalFlags, load ServicesLoader) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run scheduled backups until interrupted",
		Long: `Register one backup job per database in schedule.databases and run them on the
configured preset (hourly, daily, weekly, monthly). With --listen (or
schedule.listen) a status API is served alongside; POST /v1/schedules/<id>/run
triggers a job immediately.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), flags, load, cmd.InOrStdin(), cmd.OutOrStdout(), func(ctx context.Context, svc *Services) error {
				addr := listen
				if !cmd.Flags().Changed("listen") {
					addr = svc.ScheduleListen
				}
				printInfo(cmd.OutOrStdout(), "Scheduler running, press Ctrl+C to stop")
				return svc.Schedule(ctx, addr)
			})
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Serve the status API on this address (overrides schedule.listen)")

	return cmd
}
