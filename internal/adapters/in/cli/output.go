package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/bnema/dbs3/internal/adapters/in/cli/ui/components"
	"github.com/bnema/dbs3/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/dbs3/internal/domain"
	"github.com/bnema/dbs3/pkg/bytesize"
)

// Output formats for list-style commands.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// withProgress runs work behind a spinner on interactive terminals.
func withProgress(out io.Writer, message string, work func() error) error {
	if !isTerminal(out) {
		return work()
	}
	return components.RunWithSpinner(out, message, work)
}

func printSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, styles.Theme.Success.Render(styles.IconSuccess+" "+msg))
}

func printInfo(w io.Writer, msg string) {
	fmt.Fprintln(w, styles.Theme.Info.Render(styles.IconInfo+" "+msg))
}

func printMuted(w io.Writer, msg string) {
	fmt.Fprintln(w, styles.Theme.Muted.Render(msg))
}

func checkFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("%w: unknown output format %q (table, json, yaml)", domain.ErrInvalidConfig, format)
	}
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func renderBackups(w io.Writer, format string, rows []domain.BackupRow) error {
	if format != formatTable {
		if rows == nil {
			rows = []domain.BackupRow{}
		}
		return writeStructured(w, format, rows)
	}
	if len(rows) == 0 {
		printMuted(w, "No backups found")
		return nil
	}

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{row.Key, row.HumanAge, row.HumanSize, formatTime(row.LastModified)})
	}
	_, err := fmt.Fprintln(w, components.SimpleTable([]string{"KEY", "AGE", "SIZE", "LAST MODIFIED"}, cells))
	return err
}

func renderRuns(w io.Writer, format string, runs []domain.BackupRun) error {
	if format != formatTable {
		if runs == nil {
			runs = []domain.BackupRun{}
		}
		return writeStructured(w, format, runs)
	}
	if len(runs) == 0 {
		printMuted(w, "No runs recorded")
		return nil
	}

	cells := make([][]string, 0, len(runs))
	for _, run := range runs {
		size := ""
		if run.SizeBytes > 0 {
			size = bytesize.Format(run.SizeBytes)
		}
		cells = append(cells, []string{
			formatTime(run.StartedAt),
			string(run.Kind),
			run.Database,
			styles.RenderBadge(string(run.Status)),
			formatDuration(run.Duration()),
			size,
			run.Key,
			run.Error,
		})
	}
	_, err := fmt.Fprintln(w, components.NewTable(
		components.WithColumns([]components.TableColumn{
			{Title: "STARTED"},
			{Title: "KIND"},
			{Title: "DATABASE"},
			{Title: "STATUS"},
			{Title: "DURATION"},
			{Title: "SIZE"},
			{Title: "KEY"},
			{Title: "ERROR", Width: 40},
		}),
		components.WithRows(cells),
	).Render())
	return err
}

func renderHealth(w io.Writer, checks []domain.HealthCheck) {
	for _, check := range checks {
		icon, style := styles.IconSuccess, styles.Theme.Success
		if !check.OK {
			icon, style = styles.IconError, styles.Theme.Error
		}
		line := style.Render(icon + " " + check.Name)
		if check.Detail != "" {
			line += " " + styles.Theme.Muted.Render(check.Detail)
		}
		fmt.Fprintln(w, line)
	}
}

func renderPruneReport(w io.Writer, report *domain.PruneReport) {
	verb := "Deleted"
	if report.DryRun {
		verb = "Would delete"
	}
	for _, key := range report.Deleted {
		fmt.Fprintln(w, styles.Theme.Warning.Render(styles.IconDelete+" "+verb+" "+key))
	}
	for _, key := range report.Malformed {
		fmt.Fprintln(w, styles.Theme.Muted.Render(styles.IconWarning+" Skipped malformed key "+key))
	}
	printInfo(w, fmt.Sprintf("%s %d, kept %d, skipped %d", verb, len(report.Deleted), len(report.Kept), len(report.Malformed)))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	if d < time.Second {
		return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
	}
	return d.Round(time.Second).String()
}
