package cli

import (
	"context"
	"io"

	"github.com/bnema/zerowrap"

	"github.com/bnema/dbs3/internal/app"
	"github.com/bnema/dbs3/internal/boundaries/in"
)

// Services are the use cases a command can drive.
type Services struct {
	Backup  in.BackupService
	Restore in.RestoreService
	History in.HistoryService
	Health  in.HealthService

	// Schedule blocks running scheduled backups until ctx is done.
	Schedule func(ctx context.Context, listen string) error
	// ScheduleListen is the configured status API address.
	ScheduleListen string

	Log   zerowrap.Logger
	Close func() error
}

// LoadOptions carry the global flags and terminal streams into a loader.
type LoadOptions struct {
	ConfigPath string
	LogLevel   string
	In         io.Reader
	Out        io.Writer
}

// ServicesLoader builds the services for one command run.
type ServicesLoader func(ctx context.Context, opts LoadOptions) (*Services, error)

// DefaultServicesLoader wires the real application with terminal interaction.
func DefaultServicesLoader(ctx context.Context, opts LoadOptions) (*Services, error) {
	a, err := app.New(ctx, app.Options{
		ConfigPath: opts.ConfigPath,
		LogLevel:   opts.LogLevel,
		Chooser:    NewTeaChooser(opts.In, opts.Out),
		Confirmer:  NewSurveyConfirmer(opts.In, opts.Out),
	})
	if err != nil {
		return nil, err
	}
	return &Services{
		Backup:         a.Backup,
		Restore:        a.Restore,
		History:        a.History,
		Health:         a.Health,
		Schedule:       a.RunSchedule,
		ScheduleListen: a.Config.Schedule.Listen,
		Log:            a.Log,
		Close:          a.Close,
	}, nil
}

// withServices loads the services, runs fn with a logger-carrying context
// and always closes them.
func withServices(ctx context.Context, flags *globalFlags, load ServicesLoader, in io.Reader, out io.Writer, fn func(context.Context, *Services) error) error {
	svc, err := load(ctx, LoadOptions{
		ConfigPath: flags.configPath,
		LogLevel:   flags.logLevel,
		In:         in,
		Out:        out,
	})
	if err != nil {
		return err
	}
	if svc.Close != nil {
		defer func() { _ = svc.Close() }()
	}
	return fn(zerowrap.WithCtx(ctx, svc.Log), svc)
}
