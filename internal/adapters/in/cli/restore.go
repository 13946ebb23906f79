package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dbs3/internal/domain"
)

func newRestoreCmd(flags *globalFlags, load ServicesLoader) *cobra.Command {
	var (
		opts     domain.RestoreOptions
		noDelete bool
	)

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore a backup into the configured database",
		Long: `Download the most recent backup (or one picked with --choose) and load it
into the configured database. Restores outside the development environment
require --force, and every restore asks for confirmation unless --yes is given.

Examples:
  dbs3 restore
  dbs3 restore --choose
  dbs3 restore --name shop --local-db-name shop_copy
  dbs3 restore --force --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.KeepLocal = noDelete
			out := cmd.OutOrStdout()
			return withServices(cmd.Context(), flags, load, cmd.InOrStdin(), out, func(ctx context.Context, svc *Services) error {
				result, err := svc.Restore.Restore(ctx, opts)
				if err != nil {
					return err
				}

				printSuccess(out, fmt.Sprintf("Restored %s into %s", result.Key, result.Target.Name))
				if result.LocalPath != "" {
					printMuted(out, "Kept dump at "+result.LocalPath)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&opts.DatabaseName, "name", "n", "", "Database whose backups to restore (defaults to database.name)")
	cmd.Flags().StringVar(&opts.LocalDatabaseName, "local-db-name", "", "Restore into this database instead")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Allow restoring outside the development environment")
	cmd.Flags().BoolVarP(&opts.AutoConfirm, "yes", "y", false, "Skip confirmation prompts")
	cmd.Flags().BoolVar(&opts.Choose, "choose", false, "Pick the backup from a list")
	cmd.Flags().BoolVar(&noDelete, "no-delete", false, "Keep the downloaded dump after restoring")

	return cmd
}
