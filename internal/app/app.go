package app

import (
	"context"
	"errors"

	"github.com/bnema/zerowrap"

	"github.com/bnema/dbs3/internal/adapters/out/dumptool"
	"github.com/bnema/dbs3/internal/adapters/out/filesystem"
	"github.com/bnema/dbs3/internal/adapters/out/s3"
	"github.com/bnema/dbs3/internal/adapters/out/sqlite"
	"github.com/bnema/dbs3/internal/boundaries/out"
	"github.com/bnema/dbs3/internal/usecase/backup"
	"github.com/bnema/dbs3/internal/usecase/health"
	"github.com/bnema/dbs3/internal/usecase/history"
)

// Options are the per-process inputs that do not come from the config file.
type Options struct {
	ConfigPath string
	LogLevel   string
	Chooser    out.Chooser
	Confirmer  out.Confirmer
}

// App holds the wired services for one process.
type App struct {
	Config  *Config
	Log     zerowrap.Logger
	Backup  *backup.Service
	Restore *backup.RestoreService
	History *history.Service
	Health  *health.Service

	closers []func() error
}

// New loads the configuration and wires every adapter and use case.
func New(ctx context.Context, opts Options) (*App, error) {
	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	log, cleanup, err := initLogger(cfg, opts.LogLevel)
	if err != nil {
		return nil, err
	}
	a := &App{Config: cfg, Log: log}
	if cleanup != nil {
		a.closers = append(a.closers, func() error { cleanup(); return nil })
	}
	ctx = zerowrap.WithCtx(ctx, log)

	store, err := createObjectStore(ctx, cfg, log)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	historyStore, err := createHistoryStore(ctx, cfg, log)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	if historyStore != nil {
		a.closers = append(a.closers, historyStore.Close)
	}

	tool := dumptool.NewTool(dumptool.DefaultRunnerFactory())
	backupCfg := cfg.BackupConfig()

	a.Backup = backup.NewService(store, tool, historyStore, backupCfg, log)
	a.Restore = backup.NewRestoreService(store, tool, opts.Chooser, opts.Confirmer, historyStore, backupCfg, log)
	a.History = history.NewService(historyStore, log)
	a.Health = health.NewService(store, tool, historyStore, backupCfg, log)

	log.Debug().
		Str("backend", cfg.Storage.Backend).
		Str("bucket", cfg.Storage.Bucket).
		Str("engine", cfg.Database.Engine).
		Str("runner", cfg.Database.Runner).
		Bool("history", historyStore != nil).
		Msg("application wired")
	return a, nil
}

// Context returns ctx carrying the application logger.
func (a *App) Context(ctx context.Context) context.Context {
	return zerowrap.WithCtx(ctx, a.Log)
}

// Close releases the history database and the log file, in reverse order.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func createObjectStore(ctx context.Context, cfg *Config, log zerowrap.Logger) (out.ObjectStore, error) {
	switch cfg.Storage.Backend {
	case StorageFilesystem:
		store, err := filesystem.NewObjectStore(cfg.Storage.Root, log)
		if err != nil {
			return nil, log.WrapErr(err, "failed to create filesystem object store")
		}
		return store, nil
	default:
		store, err := s3.NewStore(ctx, cfg.S3Config(), log)
		if err != nil {
			return nil, log.WrapErr(err, "failed to create S3 object store")
		}
		return store, nil
	}
}

// createHistoryStore returns nil when history is disabled. The return type
// is the interface so a disabled store stays a nil interface.
func createHistoryStore(ctx context.Context, cfg *Config, log zerowrap.Logger) (out.HistoryStore, error) {
	if !cfg.History.Enabled {
		return nil, nil
	}
	store, err := sqlite.OpenPath(ctx, cfg.History.Path, log)
	if err != nil {
		return nil, log.WrapErr(err, "failed to open run history")
	}
	return store, nil
}
