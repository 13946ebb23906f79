package app

import (
	"context"

	"github.com/bnema/dbs3/internal/adapters/in/http/status"
	"github.com/bnema/dbs3/internal/usecase/cron"
)

// RunSchedule registers one backup job per configured database and blocks
// until ctx is cancelled. A non-empty listen address also serves the status API.
func (a *App) RunSchedule(ctx context.Context, listen string) error {
	ctx = a.Context(ctx)
	log := a.Log

	scheduler := cron.NewScheduler(log, cron.WithMaxJobs(a.Config.Schedule.MaxConcurrent))
	if err := cron.RegisterBackups(scheduler, a.Backup, a.Config.Preset(), a.Config.Schedule.Databases, a.Config.Backup.DailyRotation); err != nil {
		return log.WrapErr(err, "failed to register scheduled backups")
	}
	for _, entry := range scheduler.List() {
		log.Info().Str("job", entry.ID).Time("next_run", entry.NextRun).Msg("backup scheduled")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	serveErr := make(chan error, 1)
	if listen != "" {
		handler := status.NewHandler(scheduler, a.Backup, a.History, a.Health, log)
		e := status.NewEcho(handler, log)
		go func() {
			err := status.Serve(ctx, listen, e, log)
			if err != nil {
				cancel()
			}
			serveErr <- err
		}()
	} else {
		serveErr <- nil
	}

	scheduler.Run(ctx)
	scheduler.Stop()
	cancel()

	if err := <-serveErr; err != nil {
		return log.WrapErr(err, "status API failed")
	}
	log.Info().Msg("scheduler stopped")
	return nil
}
