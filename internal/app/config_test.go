package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dbs3/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dbs3.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	dataDir := t.TempDir()
	path := writeConfig(t, `
data_dir: `+dataDir+`
storage:
  bucket: mybucket
database:
  name: app
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, StorageS3, cfg.Storage.Backend)
	assert.Equal(t, "us-east-1", cfg.Storage.Region)
	assert.Equal(t, int64(16<<20), cfg.S3Config().PartSize)
	assert.Equal(t, 1, cfg.S3Config().MaxAttempts)
	assert.Equal(t, 1, cfg.Schedule.MaxConcurrent)
	assert.Equal(t, 7*24*time.Hour, cfg.Retention())
	assert.Equal(t, domain.ScheduleDaily, cfg.Preset())
	assert.Equal(t, []string{"app"}, cfg.Schedule.Databases)
	assert.Equal(t, filepath.Join(dataDir, "db.sql"), cfg.Backup.KeepFile)
	assert.Equal(t, filepath.Join(dataDir, "history.db"), cfg.History.Path)
	assert.Equal(t, filepath.Join(dataDir, "objects"), cfg.Storage.Root)
	assert.True(t, cfg.History.Enabled)
	assert.False(t, cfg.IsDevelopment())

	conn := cfg.DatabaseConnection()
	assert.Equal(t, domain.DBEngineMySQL, conn.Engine)
	assert.Equal(t, "localhost", conn.Host)
	assert.Equal(t, domain.DBRunnerLocal, conn.Runner)
}

func TestLoadConfigFullFile(t *testing.T) {
	path := writeConfig(t, `
environment: Development
storage:
  backend: filesystem
  bucket: backups
  directory: /nightly/
  part_size: 8MB
database:
  engine: postgres
  host: pg.internal
  port: 5433
  user: postgres
  name: shop
  runner: docker
  container: pg
backup:
  retention: 2w
  daily_rotation: true
schedule:
  preset: weekly
  databases: [shop, analytics]
  max_concurrent: 2
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	bc := cfg.BackupConfig()
	assert.Equal(t, "backups", bc.Bucket)
	assert.Equal(t, "nightly", bc.Directory)
	assert.Equal(t, 14*24*time.Hour, bc.Retention)
	assert.True(t, bc.Development)
	assert.True(t, bc.DailyRotation)
	assert.Equal(t, domain.DBEnginePostgres, bc.Database.Engine)
	assert.Equal(t, 5433, bc.Database.Port)
	assert.Equal(t, "pg", bc.Database.Container)
	assert.Equal(t, domain.ScheduleWeekly, cfg.Preset())
	assert.Equal(t, []string{"shop", "analytics"}, cfg.Schedule.Databases)
	assert.Equal(t, 2, cfg.Schedule.MaxConcurrent)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
storage:
  bucket: from-file
database:
  name: app
`)
	t.Setenv("DBS3_STORAGE_BUCKET", "from-env")
	t.Setenv("DBS3_DATABASE_PASSWORD", "s3cret")
	t.Setenv("DBS3_ENVIRONMENT", "development")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Storage.Bucket)
	assert.Equal(t, "s3cret", cfg.DatabaseConnection().Password)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing bucket", "database: {name: app}", "storage.bucket"},
		{"missing database", "storage: {bucket: b}", "database.name"},
		{"bad backend", "storage: {bucket: b, backend: gcs}\ndatabase: {name: app}", "storage.backend"},
		{"bad engine", "storage: {bucket: b}\ndatabase: {name: app, engine: oracle}", "database.engine"},
		{"docker without container", "storage: {bucket: b}\ndatabase: {name: app, runner: docker}", "database.container"},
		{"bad runner", "storage: {bucket: b}\ndatabase: {name: app, runner: ssh}", "database.runner"},
		{"bad retention", "storage: {bucket: b}\ndatabase: {name: app}\nbackup: {retention: forever}", "backup.retention"},
		{"bad part size", "storage: {bucket: b, part_size: huge}\ndatabase: {name: app}", "storage.part_size"},
		{"zero max attempts", "storage: {bucket: b, max_attempts: 0}\ndatabase: {name: app}", "storage.max_attempts"},
		{"zero max concurrent", "storage: {bucket: b}\ndatabase: {name: app}\nschedule: {max_concurrent: 0}", "schedule.max_concurrent"},
		{"bad preset", "storage: {bucket: b}\ndatabase: {name: app}\nschedule: {preset: fortnightly}", "schedule.preset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLoadConfigZeroRetentionFallsBackToDefault(t *testing.T) {
	path := writeConfig(t, "storage: {bucket: b}\ndatabase: {name: app}\nbackup: {retention: \"0\"}")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, cfg.Retention())
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestResolveLogFilePath(t *testing.T) {
	cfg := &Config{DataDir: "/data"}
	assert.Equal(t, "/data/logs/dbs3.log", resolveLogFilePath(cfg))

	cfg.Logging.File.Path = "/var/log/dbs3.log"
	assert.Equal(t, "/var/log/dbs3.log", resolveLogFilePath(cfg))
}
