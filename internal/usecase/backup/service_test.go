package backup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	outmocks "github.com/bnema/dbs3/internal/boundaries/out/mocks"
	"github.com/bnema/dbs3/internal/domain"
)

var fixedNow = time.Date(2024, 1, 21, 10, 30, 0, 0, time.UTC) // a Sunday

func testBackupConfig(t *testing.T) domain.BackupConfig {
	t.Helper()
	return domain.BackupConfig{
		Bucket:    "mybucket",
		Directory: "nightly",
		Database: domain.DatabaseConnection{
			Engine: domain.DBEngineMySQL,
			Host:   "db.internal",
			User:   "backup",
			Name:   "app",
		},
		Retention: 7 * 24 * time.Hour,
		WorkDir:   t.TempDir(),
	}
}

func newTestService(t *testing.T, config domain.BackupConfig) (*Service, *outmocks.MockObjectStore, *outmocks.MockDumpTool, *outmocks.MockHistoryStore) {
	t.Helper()
	store := outmocks.NewMockObjectStore(t)
	dumper := outmocks.NewMockDumpTool(t)
	history := outmocks.NewMockHistoryStore(t)

	svc := NewService(store, dumper, history, config, zerowrap.Default())
	svc.nowFn = func() time.Time { return fixedNow }
	return svc, store, dumper, history
}

func writeDump(content string) func(context.Context, domain.DatabaseConnection, string) error {
	return func(_ context.Context, _ domain.DatabaseConnection, path string) error {
		return os.WriteFile(path, []byte(content), 0o600)
	}
}

func assertWorkDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "per-invocation work directories must be removed")
}

func TestService_RunBackup_DatedKeyAndPrune(t *testing.T) {
	config := testBackupConfig(t)
	svc, store, dumper, history := newTestService(t, config)

	var dumpedTo string
	dumper.EXPECT().Dump(mock.Anything, mock.MatchedBy(func(conn domain.DatabaseConnection) bool {
		return conn.Name == "app" && conn.Host == "db.internal"
	}), mock.Anything).RunAndReturn(func(ctx context.Context, conn domain.DatabaseConnection, path string) error {
		dumpedTo = path
		return writeDump("-- dump")(ctx, conn, path)
	})

	store.EXPECT().Upload(mock.Anything, mock.MatchedBy(func(path string) bool {
		data, err := os.ReadFile(path)
		return err == nil && string(data) == "-- dump"
	}), "mybucket", "nightly/db-backup-app.2024-01-21.sql").Return(nil)

	store.EXPECT().List(mock.Anything, "mybucket", "nightly/db-backup-app.").Return([]domain.BackupObject{
		{Key: "nightly/db-backup-app.2024-01-01.sql"},
		{Key: "nightly/db-backup-app.2024-01-20.sql"},
		{Key: "nightly/db-backup-app.2024-01-21.sql"},
		{Key: "nightly/db-backup-app.manual.sql"},
	}, nil)
	store.EXPECT().Delete(mock.Anything, "mybucket", "nightly/db-backup-app.2024-01-01.sql").Return(nil)

	history.EXPECT().Record(mock.Anything, mock.MatchedBy(func(run domain.BackupRun) bool {
		return run.Kind == domain.RunKindBackup &&
			run.Status == domain.RunStatusCompleted &&
			run.Key == "nightly/db-backup-app.2024-01-21.sql" &&
			run.SizeBytes == int64(len("-- dump"))
	})).Return(nil)

	result, err := svc.RunBackup(context.Background(), domain.BackupOptions{})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "nightly/db-backup-app.2024-01-21.sql", result.Key)
	assert.Equal(t, domain.RunStatusCompleted, result.Run.Status)
	require.NotNil(t, result.Pruned)
	assert.Equal(t, []string{"nightly/db-backup-app.2024-01-01.sql"}, result.Pruned.Deleted)
	assert.Equal(t, []string{"nightly/db-backup-app.manual.sql"}, result.Pruned.Malformed)
	assert.ElementsMatch(t, []string{"nightly/db-backup-app.2024-01-20.sql", "nightly/db-backup-app.2024-01-21.sql"}, result.Pruned.Kept)

	assert.Equal(t, "app.sql", filepath.Base(dumpedTo))
	assert.NoFileExists(t, dumpedTo)
	assertWorkDirEmpty(t, config.WorkDir)
}

func TestService_RunBackup_DailyRotationSkipsPrune(t *testing.T) {
	config := testBackupConfig(t)
	svc, store, dumper, history := newTestService(t, config)

	dumper.EXPECT().Dump(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(writeDump("x"))
	store.EXPECT().Upload(mock.Anything, mock.Anything, "mybucket", "mybucket.sunday.sql").Return(nil)
	history.EXPECT().Record(mock.Anything, mock.Anything).Return(nil)

	result, err := svc.RunBackup(context.Background(), domain.BackupOptions{DailyRotation: true})
	require.NoError(t, err)
	assert.Equal(t, "mybucket.sunday.sql", result.Key)
	assert.Nil(t, result.Pruned)
}

func TestService_RunBackup_NameOverride(t *testing.T) {
	config := testBackupConfig(t)
	config.Directory = ""
	svc, store, dumper, history := newTestService(t, config)

	dumper.EXPECT().Dump(mock.Anything, mock.MatchedBy(func(conn domain.DatabaseConnection) bool {
		return conn.Name == "billing"
	}), mock.Anything).RunAndReturn(writeDump("x"))
	store.EXPECT().Upload(mock.Anything, mock.Anything, "mybucket", "db-backup-billing.2024-01-21.sql").Return(nil)
	store.EXPECT().List(mock.Anything, "mybucket", "db-backup-billing.").Return(nil, nil)
	history.EXPECT().Record(mock.Anything, mock.Anything).Return(nil)

	result, err := svc.RunBackup(context.Background(), domain.BackupOptions{DatabaseName: "billing"})
	require.NoError(t, err)
	assert.Equal(t, "billing", result.Run.Database)
}

func TestService_RunBackup_DumpFailureIsFatal(t *testing.T) {
	config := testBackupConfig(t)
	svc, _, dumper, history := newTestService(t, config)

	dumper.EXPECT().Dump(mock.Anything, mock.Anything, mock.Anything).Return(&domain.ProcessError{
		Tool:     "mysqldump",
		ExitCode: 2,
		Stderr:   "Access denied",
	})
	history.EXPECT().Record(mock.Anything, mock.MatchedBy(func(run domain.BackupRun) bool {
		return run.Status == domain.RunStatusFailed && run.Error != ""
	})).Return(nil)

	result, err := svc.RunBackup(context.Background(), domain.BackupOptions{})
	require.Error(t, err)

	var procErr *domain.ProcessError
	require.True(t, errors.As(err, &procErr))
	assert.Equal(t, 2, procErr.ExitCode)
	assert.Equal(t, domain.RunStatusFailed, result.Run.Status)
	assertWorkDirEmpty(t, config.WorkDir)
}

func TestService_RunBackup_UploadFailureIsFatal(t *testing.T) {
	config := testBackupConfig(t)
	svc, store, dumper, history := newTestService(t, config)

	dumper.EXPECT().Dump(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(writeDump("x"))
	store.EXPECT().Upload(mock.Anything, mock.Anything, "mybucket", mock.Anything).Return(&domain.TransferError{
		Op:     "upload",
		Bucket: "mybucket",
		Key:    "nightly/db-backup-app.2024-01-21.sql",
		Err:    errors.New("connection reset"),
	})
	history.EXPECT().Record(mock.Anything, mock.Anything).Return(nil)

	_, err := svc.RunBackup(context.Background(), domain.BackupOptions{})
	require.Error(t, err)

	var transferErr *domain.TransferError
	require.True(t, errors.As(err, &transferErr))
	assert.Equal(t, "upload", transferErr.Op)
	assertWorkDirEmpty(t, config.WorkDir)
}

func TestService_RunBackup_HistoryFailureIsNotFatal(t *testing.T) {
	config := testBackupConfig(t)
	svc, store, dumper, history := newTestService(t, config)

	dumper.EXPECT().Dump(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(writeDump("x"))
	store.EXPECT().Upload(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	store.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	history.EXPECT().Record(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := svc.RunBackup(context.Background(), domain.BackupOptions{})
	require.NoError(t, err)
}

func TestService_RunBackup_RequiresDatabaseName(t *testing.T) {
	config := testBackupConfig(t)
	config.Database.Name = ""
	svc, _, _, _ := newTestService(t, config)

	_, err := svc.RunBackup(context.Background(), domain.BackupOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestService_Prune_DryRunDeletesNothing(t *testing.T) {
	svc, store, _, _ := newTestService(t, testBackupConfig(t))

	store.EXPECT().List(mock.Anything, "mybucket", "nightly/db-backup-app.").Return([]domain.BackupObject{
		{Key: "nightly/db-backup-app.2023-12-01.sql"},
		{Key: "nightly/db-backup-app.2024-01-02.sql"},
		{Key: "nightly/db-backup-app.2024-01-19.sql"},
	}, nil)

	report, err := svc.Prune(context.Background(), domain.PruneOptions{DryRun: true})
	require.NoError(t, err)
	assert.True(t, report.DryRun)
	assert.ElementsMatch(t, []string{"nightly/db-backup-app.2023-12-01.sql", "nightly/db-backup-app.2024-01-02.sql"}, report.Deleted)
	assert.Equal(t, []string{"nightly/db-backup-app.2024-01-19.sql"}, report.Kept)
}

func TestService_Prune_DeleteFailureStops(t *testing.T) {
	svc, store, _, _ := newTestService(t, testBackupConfig(t))

	store.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).Return([]domain.BackupObject{
		{Key: "nightly/db-backup-app.2023-12-01.sql"},
		{Key: "nightly/db-backup-app.2023-12-02.sql"},
	}, nil)
	store.EXPECT().Delete(mock.Anything, "mybucket", mock.Anything).Return(errors.New("access denied")).Once()

	report, err := svc.Prune(context.Background(), domain.PruneOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
	assert.Empty(t, report.Deleted)
}

func TestService_Prune_ListFailure(t *testing.T) {
	svc, store, _, _ := newTestService(t, testBackupConfig(t))
	store.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("no such bucket"))

	_, err := svc.Prune(context.Background(), domain.PruneOptions{})
	require.Error(t, err)
}

func TestService_Prune_DefaultsRetentionWhenUnset(t *testing.T) {
	config := testBackupConfig(t)
	config.Retention = 0
	svc, store, _, _ := newTestService(t, config)

	store.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).Return([]domain.BackupObject{
		{Key: "nightly/db-backup-app.2024-01-13.sql"},
		{Key: "nightly/db-backup-app.2024-01-15.sql"},
	}, nil)
	store.EXPECT().Delete(mock.Anything, "mybucket", "nightly/db-backup-app.2024-01-13.sql").Return(nil)

	report, err := svc.Prune(context.Background(), domain.PruneOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"nightly/db-backup-app.2024-01-13.sql"}, report.Deleted)
}

func TestService_ListBackups(t *testing.T) {
	svc, store, _, _ := newTestService(t, testBackupConfig(t))

	store.EXPECT().List(mock.Anything, "mybucket", "nightly/db-backup-app.").Return([]domain.BackupObject{
		{Key: "nightly/db-backup-app.2024-01-19.sql", LastModified: fixedNow.Add(-50 * time.Hour), SizeBytes: 2048},
		{Key: "nightly/db-backup-app.2024-01-21.sql", LastModified: fixedNow.Add(-30 * time.Minute), SizeBytes: 512},
	}, nil)

	rows, err := svc.ListBackups(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "nightly/db-backup-app.2024-01-21.sql", rows[0].Key)
	assert.Equal(t, "30m old", rows[0].HumanAge)
	assert.Equal(t, "512.0B", rows[0].HumanSize)
	assert.Equal(t, "2d old", rows[1].HumanAge)
	assert.Equal(t, "2.0KB", rows[1].HumanSize)
}

// Two backups, a 7-day window: the old one is pruned, the new one is latest.
func TestBackupLifecycle_PruneAndSelectLatest(t *testing.T) {
	now := time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC)
	objects := []domain.BackupObject{
		{Key: "db-backup-app.2024-01-01.sql", LastModified: now.Add(-10 * 24 * time.Hour)},
		{Key: "db-backup-app.2024-01-20.sql", LastModified: now.Add(-24 * time.Hour)},
	}

	policy := RetentionPolicy{Prefix: BuildPrefix("", "app"), Window: 7 * 24 * time.Hour}
	expired, err := policy.SelectForDeletion(objects, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"db-backup-app.2024-01-01.sql"}, keysOf(expired))

	latest, err := MostRecent(objects)
	require.NoError(t, err)
	assert.Equal(t, "db-backup-app.2024-01-20.sql", latest.Key)
}

func TestService_ListBackups_SkipsOtherDatabases(t *testing.T) {
	svc, store, _, _ := newTestService(t, testBackupConfig(t))

	store.EXPECT().List(mock.Anything, "mybucket", "nightly/db-backup-app.").Return([]domain.BackupObject{
		{Key: "nightly/db-backup-app.2024-01-21.sql", LastModified: fixedNow.Add(-30 * time.Minute)},
		{Key: "nightly/db-backup-app.staging.2024-01-21.sql", LastModified: fixedNow.Add(-10 * time.Minute)},
	}, nil)

	rows, err := svc.ListBackups(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "nightly/db-backup-app.2024-01-21.sql", rows[0].Key)
}
