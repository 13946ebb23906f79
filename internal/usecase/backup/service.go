// Package backup implements the backup naming, retention, selection and
// safety rules, and the orchestrators built on them.
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

// Service orchestrates backup and retention runs.
type Service struct {
	store   out.ObjectStore
	dumper  out.DumpTool
	history out.HistoryStore
	config  domain.BackupConfig
	log     zerowrap.Logger
	nowFn   func() time.Time
}

// NewService creates a backup service. history may be nil.
func NewService(
	store out.ObjectStore,
	dumper out.DumpTool,
	history out.HistoryStore,
	config domain.BackupConfig,
	log zerowrap.Logger,
) *Service {
	return &Service{
		store:   store,
		dumper:  dumper,
		history: history,
		config:  config,
		log:     log,
		nowFn:   time.Now,
	}
}

// RunBackup dumps the database, uploads it and, for dated keys, prunes
// expired backups of the same database.
func (s *Service) RunBackup(ctx context.Context, opts domain.BackupOptions) (*domain.BackupResult, error) {
	dbName := resolveDatabaseName(opts.DatabaseName, s.config)
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "RunBackup",
		"database":            dbName,
	})
	log := zerowrap.FromCtx(ctx)

	if dbName == "" {
		return nil, fmt.Errorf("%w: no database name configured", domain.ErrInvalidConfig)
	}

	started := s.nowFn().UTC()
	rotation := opts.DailyRotation || s.config.DailyRotation
	key := BuildKey(BuildPrefix(s.config.Directory, dbName), started)
	if rotation {
		key = RotationKey(s.config.Bucket, started.Weekday())
	}

	run := domain.BackupRun{
		ID:        uuid.NewString(),
		Kind:      domain.RunKindBackup,
		Database:  dbName,
		Key:       key,
		Status:    domain.RunStatusRunning,
		StartedAt: started,
	}
	log.Info().Str("key", key).Str("bucket", s.config.Bucket).Msg("starting backup")

	size, err := s.dumpAndUpload(ctx, s.config.Database.WithName(dbName), key)
	run.SizeBytes = size
	run.CompletedAt = s.nowFn().UTC()
	if err != nil {
		run.Status = domain.RunStatusFailed
		run.Error = err.Error()
		s.record(ctx, run)
		return &domain.BackupResult{Run: run, Key: key}, log.WrapErr(err, "backup failed")
	}

	run.Status = domain.RunStatusCompleted
	s.record(ctx, run)
	log.Info().Str("key", key).Int64("size_bytes", size).Dur("duration", run.Duration()).Msg("backup uploaded")

	result := &domain.BackupResult{Run: run, Key: key}
	if rotation {
		return result, nil
	}

	report, err := s.Prune(ctx, domain.PruneOptions{DatabaseName: dbName})
	result.Pruned = report
	if err != nil {
		return result, err
	}
	return result, nil
}

func (s *Service) dumpAndUpload(ctx context.Context, conn domain.DatabaseConnection, key string) (int64, error) {
	workDir, err := newWorkDir(s.config.WorkDir)
	if err != nil {
		return 0, err
	}
	defer s.removeWorkDir(ctx, workDir)

	dumpPath := filepath.Join(workDir, domain.SanitizeFileComponent(conn.Name)+".sql")
	if err := s.dumper.Dump(ctx, conn, dumpPath); err != nil {
		return 0, fmt.Errorf("dump %s: %w", conn.Name, err)
	}

	info, err := os.Stat(dumpPath)
	if err != nil {
		return 0, fmt.Errorf("stat dump file: %w", err)
	}

	if err := s.store.Upload(ctx, dumpPath, s.config.Bucket, key); err != nil {
		return info.Size(), fmt.Errorf("upload %s: %w", key, err)
	}
	return info.Size(), nil
}

// Prune deletes the backups of a database whose key date is older than the
// retention window. Keys that cannot be dated are logged and kept. The first
// failed deletion stops the pass.
func (s *Service) Prune(ctx context.Context, opts domain.PruneOptions) (*domain.PruneReport, error) {
	dbName := resolveDatabaseName(opts.DatabaseName, s.config)
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "Prune",
		"database":            dbName,
		"dry_run":             opts.DryRun,
	})
	log := zerowrap.FromCtx(ctx)

	if dbName == "" {
		return nil, fmt.Errorf("%w: no database name configured", domain.ErrInvalidConfig)
	}

	prefix := BuildPrefix(s.config.Directory, dbName)
	objects, err := s.store.List(ctx, s.config.Bucket, prefix)
	if err != nil {
		return nil, log.WrapErr(err, "failed to list backups")
	}

	policy := RetentionPolicy{Prefix: prefix, Window: s.retention()}
	expired, malformedErr := policy.SelectForDeletion(objects, s.nowFn().UTC())
	if malformedErr != nil {
		log.Warn().Err(malformedErr).Msg("skipping backups with unparsable keys")
	}

	report := classify(objects, expired, prefix)
	report.DryRun = opts.DryRun

	for _, obj := range expired {
		if opts.DryRun {
			log.Info().Str("key", obj.Key).Msg("would remove old backup")
			report.Deleted = append(report.Deleted, obj.Key)
			continue
		}
		if err := s.store.Delete(ctx, s.config.Bucket, obj.Key); err != nil {
			return report, log.WrapErr(err, "failed to remove old backup")
		}
		log.Info().Str("key", obj.Key).Msg("removed old backup")
		report.Deleted = append(report.Deleted, obj.Key)
	}

	return report, nil
}

// ListBackups returns display rows for a database, newest first.
func (s *Service) ListBackups(ctx context.Context, databaseName string) ([]domain.BackupRow, error) {
	dbName := resolveDatabaseName(databaseName, s.config)
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "ListBackups",
		"database":            dbName,
	})
	log := zerowrap.FromCtx(ctx)

	prefix := BuildPrefix(s.config.Directory, dbName)
	listed, err := s.store.List(ctx, s.config.Bucket, prefix)
	if err != nil {
		return nil, log.WrapErr(err, "failed to list backups")
	}
	objects, skipped := FilterDated(listed, prefix)
	if len(skipped) > 0 {
		log.Debug().Strs("keys", skipped).Msg("ignoring keys without a date after the prefix")
	}

	rows := slices.Collect(DescribeForChoice(objects, s.nowFn().UTC()))
	log.Debug().Int(zerowrap.FieldCount, len(rows)).Msg("listed backups")
	return rows, nil
}

func (s *Service) retention() time.Duration {
	if s.config.Retention <= 0 {
		return DefaultRetention
	}
	return s.config.Retention
}

func (s *Service) record(ctx context.Context, run domain.BackupRun) {
	recordRun(ctx, s.history, run)
}

func (s *Service) removeWorkDir(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		log := zerowrap.FromCtx(ctx)
		log.Warn().Err(err).Str("path", dir).Msg("failed to remove work directory")
	}
}

// classify splits the objects that were not selected for deletion into
// kept and malformed keys.
func classify(objects, expired []domain.BackupObject, prefix string) *domain.PruneReport {
	selected := make(map[string]struct{}, len(expired))
	for _, obj := range expired {
		selected[obj.Key] = struct{}{}
	}

	report := &domain.PruneReport{}
	for _, obj := range objects {
		if _, ok := selected[obj.Key]; ok {
			continue
		}
		if _, err := ParseDate(obj.Key, prefix); err != nil {
			report.Malformed = append(report.Malformed, obj.Key)
			continue
		}
		report.Kept = append(report.Kept, obj.Key)
	}
	return report
}

func resolveDatabaseName(override string, config domain.BackupConfig) string {
	if override != "" {
		return override
	}
	return config.Database.Name
}

// newWorkDir creates a directory owned by a single invocation.
func newWorkDir(base string) (string, error) {
	if base == "" {
		base = os.TempDir()
	}
	if err := os.MkdirAll(base, 0o700); err != nil {
		return "", fmt.Errorf("create work directory: %w", err)
	}
	dir := filepath.Join(base, "dbs3-"+uuid.NewString())
	if err := os.Mkdir(dir, 0o700); err != nil {
		return "", fmt.Errorf("create work directory: %w", err)
	}
	return dir, nil
}

func recordRun(ctx context.Context, history out.HistoryStore, run domain.BackupRun) {
	if history == nil {
		return
	}
	if err := history.Record(ctx, run); err != nil && !errors.Is(err, context.Canceled) {
		log := zerowrap.FromCtx(ctx)
		log.Warn().Err(err).Str("run_id", run.ID).Msg("failed to record run history")
	}
}
