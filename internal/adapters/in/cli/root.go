// Package cli implements the CLI adapter for dbs3.
// This package provides Cobra commands that delegate to the use cases.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/dbs3/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/dbs3/internal/domain"
	"github.com/bnema/dbs3/pkg/version"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
}

// NewRootCmd creates the root command. load builds the services for a run.
func NewRootCmd(load ServicesLoader) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "dbs3",
		Short:   "dbs3 - database backups to S3 and safe restores",
		Version: version.Version(),
		Long: `dbs3 dumps a MySQL or PostgreSQL database, uploads the dump to an
S3-compatible bucket under a date-stamped key and prunes backups older than the
retention window. It restores the most recent (or a chosen) backup into a
development database after an explicit confirmation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !isTerminal(cmd.OutOrStdout()) {
				styles.DisableColor()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newBackupCmd(flags, load))
	rootCmd.AddCommand(newPruneCmd(flags, load))
	rootCmd.AddCommand(newListCmd(flags, load))
	rootCmd.AddCommand(newRestoreCmd(flags, load))
	rootCmd.AddCommand(newScheduleCmd(flags, load))
	rootCmd.AddCommand(newHistoryCmd(flags, load))
	rootCmd.AddCommand(newDoctorCmd(flags, load))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dbs3 %s\n", version.Version())
			fmt.Fprintf(out, "Commit: %s\n", version.Commit())
			fmt.Fprintf(out, "Build Date: %s\n", version.BuildDate())
		},
	}
}

// Execute runs the CLI and exits the process with the mapped exit code.
func Execute(v, commit, date string) {
	version.Set(v, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Run(ctx, NewRootCmd(DefaultServicesLoader), os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// Run executes root with args and reports the error, if any, on stderr.
// User aborts exit 0 with "Aborted."; every other failure exits 1.
func Run(ctx context.Context, root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return reportError(stderr, err)
}

func reportError(w io.Writer, err error) int {
	switch {
	case err == nil:
		return 0
	case domain.IsAbort(err):
		fmt.Fprintln(w, styles.Theme.Warning.Render("Aborted."))
		return 0
	default:
		fmt.Fprintln(w, styles.Theme.Error.Render(styles.IconError+" "+err.Error()))
		return 1
	}
}
