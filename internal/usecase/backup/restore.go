package backup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/google/uuid"

	"github.com/bnema/dbs3/internal/boundaries/out"
	"github.com/bnema/dbs3/internal/domain"
)

// RestoreService downloads a backup and loads it into a database.
type RestoreService struct {
	store     out.ObjectStore
	dumper    out.DumpTool
	chooser   out.Chooser
	confirmer out.Confirmer
	history   out.HistoryStore
	config    domain.BackupConfig
	log       zerowrap.Logger
	nowFn     func() time.Time
}

// NewRestoreService creates a restore service. history may be nil.
func NewRestoreService(
	store out.ObjectStore,
	dumper out.DumpTool,
	chooser out.Chooser,
	confirmer out.Confirmer,
	history out.HistoryStore,
	config domain.BackupConfig,
	log zerowrap.Logger,
) *RestoreService {
	return &RestoreService{
		store:     store,
		dumper:    dumper,
		chooser:   chooser,
		confirmer: confirmer,
		history:   history,
		config:    config,
		log:       log,
		nowFn:     time.Now,
	}
}

// restoreRun carries the state of one Restore invocation.
type restoreRun struct {
	result *domain.RestoreResult
	log    zerowrap.Logger
}

func (r *restoreRun) enter(state domain.RestoreState) {
	r.result.State = state
	r.log.Debug().Str("state", string(state)).Msg("restore state")
}

// abort ends the run without touching the database.
func (r *restoreRun) abort(err error) (*domain.RestoreResult, error) {
	r.enter(domain.RestoreAborted)
	return r.result, err
}

func (r *restoreRun) fail(err error, msg string) (*domain.RestoreResult, error) {
	r.enter(domain.RestoreFailed)
	return r.result, r.log.WrapErr(err, msg)
}

// Restore walks the restore pipeline: safety check, selection,
// confirmation, download, import and cleanup. The safety gate runs before
// anything else and any collaborator failure ends the run in RestoreFailed.
func (s *RestoreService) Restore(ctx context.Context, opts domain.RestoreOptions) (*domain.RestoreResult, error) {
	dbName := resolveDatabaseName(opts.DatabaseName, s.config)
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "Restore",
		"database":            dbName,
	})

	started := s.nowFn().UTC()
	run := &restoreRun{
		result: &domain.RestoreResult{
			Run: domain.BackupRun{
				ID:        uuid.NewString(),
				Kind:      domain.RunKindRestore,
				Database:  dbName,
				Status:    domain.RunStatusRunning,
				StartedAt: started,
			},
		},
		log: zerowrap.FromCtx(ctx),
	}
	run.enter(domain.RestoreStart)

	result, err := s.restore(ctx, run, dbName, opts)
	s.finish(ctx, result, err)
	return result, err
}

func (s *RestoreService) restore(ctx context.Context, run *restoreRun, dbName string, opts domain.RestoreOptions) (*domain.RestoreResult, error) {
	result := run.result

	run.enter(domain.RestoreSafetyCheck)
	decision := Evaluate(s.config.Development, opts.Force)
	if !decision.Allowed {
		return run.abort(domain.ErrNotDevelopmentEnvironment)
	}
	run.log.Debug().Str("reason", string(decision.Reason)).Msg("restore allowed")

	if dbName == "" {
		return run.abort(fmt.Errorf("%w: no database name configured", domain.ErrInvalidConfig))
	}

	run.enter(domain.RestoreSelecting)
	prefix := BuildPrefix(s.config.Directory, dbName)
	listed, err := s.store.List(ctx, s.config.Bucket, prefix)
	if err != nil {
		return run.fail(err, "failed to list backups")
	}
	objects, skipped := FilterDated(listed, prefix)
	if len(skipped) > 0 {
		run.log.Warn().Strs("keys", skipped).Msg("ignoring keys without a date after the prefix")
	}
	if len(objects) == 0 {
		return run.abort(fmt.Errorf("%w for database %s in bucket %s", domain.ErrNoBackupsFound, dbName, s.config.Bucket))
	}

	key, err := s.selectKey(ctx, objects, opts.Choose)
	if err != nil {
		if errors.Is(err, domain.ErrNoBackupSelected) {
			return run.abort(err)
		}
		return run.fail(err, "failed to select backup")
	}
	result.Key = key
	result.Run.Key = key

	meta, err := s.store.HeadMetadata(ctx, s.config.Bucket, key)
	if err != nil {
		return run.fail(err, "failed to read backup metadata")
	}
	result.Run.SizeBytes = meta.SizeBytes

	target := s.config.Database.WithName(dbName)
	if opts.LocalDatabaseName != "" {
		target = target.WithName(opts.LocalDatabaseName)
	}
	result.Target = target

	run.enter(domain.RestoreConfirming)
	if RequiresConfirmation(opts.AutoConfirm) {
		ok, err := s.confirmer.Ask(ctx, restorePrompt(key, meta, target, s.nowFn().UTC()))
		if err != nil {
			return run.fail(err, "failed to read confirmation")
		}
		if !ok {
			return run.abort(domain.ErrUserDeclined)
		}
	}

	run.enter(domain.RestoreDownloading)
	localPath, cleanup, err := s.localPath(target, opts.KeepLocal)
	if err != nil {
		return run.fail(err, "failed to prepare local file")
	}
	defer cleanup(ctx)
	result.LocalPath = localPath

	download := true
	if opts.KeepLocal && fileExists(localPath) && RequiresConfirmation(opts.AutoConfirm) {
		download, err = s.confirmer.Ask(ctx, fmt.Sprintf("File %s already exists. Download new?", localPath))
		if err != nil {
			return run.fail(err, "failed to read confirmation")
		}
	}
	if download {
		if err := s.store.Download(ctx, s.config.Bucket, key, localPath); err != nil {
			return run.fail(err, "failed to download backup")
		}
		result.Downloaded = true
	} else {
		run.log.Info().Str("path", localPath).Msg("reusing existing local file")
	}

	run.enter(domain.RestoreImporting)
	if err := s.dumper.Load(ctx, target, localPath); err != nil {
		return run.fail(err, "failed to load backup")
	}

	run.enter(domain.RestoreCleanup)
	if !opts.KeepLocal {
		result.LocalPath = ""
	}

	run.enter(domain.RestoreDone)
	run.log.Info().Str("key", key).Str("target", target.Name).Msg("restore completed")
	return result, nil
}

func (s *RestoreService) selectKey(ctx context.Context, objects []domain.BackupObject, choose bool) (string, error) {
	if !choose {
		latest, err := MostRecent(objects)
		if err != nil {
			return "", err
		}
		return latest.Key, nil
	}

	rows := slices.Collect(DescribeForChoice(objects, s.nowFn().UTC()))
	key, ok, err := s.chooser.PresentList(ctx, rows)
	if err != nil {
		return "", err
	}
	if !ok || key == "" {
		return "", domain.ErrNoBackupSelected
	}
	return key, nil
}

// localPath returns where the backup is downloaded and a cleanup function.
// Kept files live at the configured keep path and survive the run.
func (s *RestoreService) localPath(target domain.DatabaseConnection, keep bool) (string, func(context.Context), error) {
	if keep {
		if s.config.KeepFile == "" {
			return "", nil, fmt.Errorf("%w: no keep file configured", domain.ErrInvalidConfig)
		}
		if err := os.MkdirAll(filepath.Dir(s.config.KeepFile), 0o700); err != nil {
			return "", nil, fmt.Errorf("create keep directory: %w", err)
		}
		return s.config.KeepFile, func(context.Context) {}, nil
	}

	dir, err := newWorkDir(s.config.WorkDir)
	if err != nil {
		return "", nil, err
	}
	path := filepath.Join(dir, domain.SanitizeFileComponent(target.Name)+".sql")
	return path, func(ctx context.Context) {
		if err := os.RemoveAll(dir); err != nil {
			log := zerowrap.FromCtx(ctx)
			log.Warn().Err(err).Str("path", dir).Msg("failed to remove work directory")
		}
	}, nil
}

func (s *RestoreService) finish(ctx context.Context, result *domain.RestoreResult, err error) {
	result.Run.CompletedAt = s.nowFn().UTC()
	if !result.State.Terminal() {
		result.State = domain.RestoreFailed
	}
	switch result.State {
	case domain.RestoreDone:
		result.Run.Status = domain.RunStatusCompleted
	case domain.RestoreAborted:
		result.Run.Status = domain.RunStatusAborted
	case domain.RestoreFailed:
		result.Run.Status = domain.RunStatusFailed
	}
	if err != nil {
		result.Run.Error = err.Error()
	}
	recordRun(ctx, s.history, result.Run)
}

func restorePrompt(key string, meta domain.ObjectMetadata, target domain.DatabaseConnection, now time.Time) string {
	return fmt.Sprintf("Restore %s (%s, %s) into database %q on %s? This replaces its current contents.",
		key, HumanAge(meta.LastModified, now), HumanSize(meta.SizeBytes), target.Name, target.Host)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
