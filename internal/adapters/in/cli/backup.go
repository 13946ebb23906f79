package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dbs3/internal/domain"
	"github.com/bnema/dbs3/pkg/bytesize"
)

func newBackupCmd(flags *globalFlags, load ServicesLoader) *cobra.Command {
	var opts domain.BackupOptions

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Dump the database, upload it and prune old backups",
		Long: `Dump the configured database, upload the dump under a date-stamped key and
delete backups older than the retention window.

Examples:
  dbs3 backup
  dbs3 backup --name shop
  dbs3 backup --daily-rotation`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return withServices(cmd.Context(), flags, load, cmd.InOrStdin(), out, func(ctx context.Context, svc *Services) error {
				var result *domain.BackupResult
				err := withProgress(out, "Backing up database...", func() error {
					var runErr error
					result, runErr = svc.Backup.RunBackup(ctx, opts)
					return runErr
				})
				if err != nil {
					return err
				}

				printSuccess(out, fmt.Sprintf("Uploaded %s (%s)", result.Key, bytesize.Format(result.Run.SizeBytes)))
				if result.Pruned != nil {
					renderPruneReport(out, result.Pruned)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&opts.DatabaseName, "name", "n", "", "Database name (defaults to database.name)")
	cmd.Flags().BoolVar(&opts.DailyRotation, "daily-rotation", false, "Write the weekday rotation key instead of a dated key")

	return cmd
}

func newPruneCmd(flags *globalFlags, load ServicesLoader) *cobra.Command {
	var opts domain.PruneOptions

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete backups older than the retention window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return withServices(cmd.Context(), flags, load, cmd.InOrStdin(), out, func(ctx context.Context, svc *Services) error {
				report, err := svc.Backup.Prune(ctx, opts)
				if err != nil {
					return err
				}
				renderPruneReport(out, report)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&opts.DatabaseName, "name", "n", "", "Database name (defaults to database.name)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Only report what would be deleted")

	return cmd
}

func newListCmd(flags *globalFlags, load ServicesLoader) *cobra.Command {
	var (
		name   string
		format string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored backups, most recent first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return withServices(cmd.Context(), flags, load, cmd.InOrStdin(), out, func(ctx context.Context, svc *Services) error {
				rows, err := svc.Backup.ListBackups(ctx, name)
				if err != nil {
					return err
				}
				return renderBackups(out, format, rows)
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Database name (defaults to database.name)")
	cmd.Flags().StringVarP(&format, "output", "o", formatTable, "Output format: table, json or yaml")

	return cmd
}
