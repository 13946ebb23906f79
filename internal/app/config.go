package app

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/bnema/dbs3/internal/adapters/out/filesystem"
	"github.com/bnema/dbs3/internal/adapters/out/s3"
	"github.com/bnema/dbs3/internal/adapters/out/sqlite"
	"github.com/bnema/dbs3/internal/domain"
	"github.com/bnema/dbs3/internal/usecase/backup"
	"github.com/bnema/dbs3/internal/usecase/cron"
	"github.com/bnema/dbs3/pkg/bytesize"
	"github.com/bnema/dbs3/pkg/duration"
)

// Storage backends.
const (
	StorageS3         = "s3"
	StorageFilesystem = "filesystem"
)

// EnvDevelopment is the environment value that unlocks restores.
const EnvDevelopment = "development"

// Config holds the application configuration.
type Config struct {
	DataDir     string `mapstructure:"data_dir"`
	Environment string `mapstructure:"environment"`

	Storage struct {
		Backend         string `mapstructure:"backend"`
		Bucket          string `mapstructure:"bucket"`
		Directory       string `mapstructure:"directory"`
		Region          string `mapstructure:"region"`
		Endpoint        string `mapstructure:"endpoint"`
		AccessKeyID     string `mapstructure:"access_key_id"`
		SecretAccessKey string `mapstructure:"secret_access_key"`
		ForcePathStyle  bool   `mapstructure:"force_path_style"`
		PartSize        string `mapstructure:"part_size"`
		MaxAttempts     int    `mapstructure:"max_attempts"`
		Root            string `mapstructure:"root"`
	} `mapstructure:"storage"`

	Database struct {
		Engine    string `mapstructure:"engine"`
		Host      string `mapstructure:"host"`
		Port      int    `mapstructure:"port"`
		User      string `mapstructure:"user"`
		Password  string `mapstructure:"password"`
		Name      string `mapstructure:"name"`
		Runner    string `mapstructure:"runner"`
		Container string `mapstructure:"container"`
	} `mapstructure:"database"`

	Backup struct {
		Retention     string `mapstructure:"retention"`
		WorkDir       string `mapstructure:"work_dir"`
		KeepFile      string `mapstructure:"keep_file"`
		DailyRotation bool   `mapstructure:"daily_rotation"`
	} `mapstructure:"backup"`

	Schedule struct {
		Preset        string   `mapstructure:"preset"`
		Databases     []string `mapstructure:"databases"`
		Listen        string   `mapstructure:"listen"`
		MaxConcurrent int      `mapstructure:"max_concurrent"`
	} `mapstructure:"schedule"`

	History struct {
		Enabled bool   `mapstructure:"enabled"`
		Path    string `mapstructure:"path"`
	} `mapstructure:"history"`

	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		File   struct {
			Enabled    bool   `mapstructure:"enabled"`
			Path       string `mapstructure:"path"`
			MaxSize    int    `mapstructure:"max_size"`
			MaxBackups int    `mapstructure:"max_backups"`
			MaxAge     int    `mapstructure:"max_age"`
		} `mapstructure:"file"`
	} `mapstructure:"logging"`

	retention time.Duration
	partSize  int64
	preset    domain.BackupSchedule
}

// LoadConfig reads .env, the config file and DBS3_* variables, then validates.
func LoadConfig(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	if err := loadConfig(v, configPath); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadConfig(v *viper.Viper, configPath string) error {
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("environment", "production")
	v.SetDefault("storage.backend", StorageS3)
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.directory", "")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.access_key_id", "")
	v.SetDefault("storage.secret_access_key", "")
	v.SetDefault("storage.force_path_style", false)
	v.SetDefault("storage.part_size", "16MB")
	v.SetDefault("storage.max_attempts", 1) // one SDK attempt: a failed transfer is terminal
	v.SetDefault("storage.root", "") // defaults to {data_dir}/objects when empty
	v.SetDefault("database.engine", string(domain.DBEngineMySQL))
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 0)
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "")
	v.SetDefault("database.runner", string(domain.DBRunnerLocal))
	v.SetDefault("database.container", "")
	v.SetDefault("backup.retention", "7d")
	v.SetDefault("backup.work_dir", "")
	v.SetDefault("backup.keep_file", "") // defaults to {data_dir}/db.sql when empty
	v.SetDefault("backup.daily_rotation", false)
	v.SetDefault("schedule.preset", string(domain.ScheduleDaily))
	v.SetDefault("schedule.databases", []string{})
	v.SetDefault("schedule.listen", "")
	v.SetDefault("schedule.max_concurrent", 1)
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", "") // defaults to {data_dir}/history.db when empty
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.path", "")
	v.SetDefault("logging.file.max_size", 100)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", 28)

	ConfigureViper(v, configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("DBS3")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return nil
}

// normalize fills derived defaults and validates every field once.
func (c *Config) normalize() error {
	c.DataDir = filesystem.ExpandTilde(c.DataDir)
	if c.Storage.Root == "" {
		c.Storage.Root = filepath.Join(c.DataDir, "objects")
	}
	if c.Backup.KeepFile == "" {
		c.Backup.KeepFile = filepath.Join(c.DataDir, "db.sql")
	}
	if c.History.Path == "" {
		c.History.Path = filepath.Join(c.DataDir, sqlite.DBFilename)
	}
	c.Storage.Root = filesystem.ExpandTilde(c.Storage.Root)
	c.Backup.KeepFile = filesystem.ExpandTilde(c.Backup.KeepFile)
	c.Backup.WorkDir = filesystem.ExpandTilde(c.Backup.WorkDir)
	c.History.Path = filesystem.ExpandTilde(c.History.Path)
	c.Storage.Directory = strings.Trim(c.Storage.Directory, "/")

	if len(c.Schedule.Databases) == 0 && c.Database.Name != "" {
		c.Schedule.Databases = []string{c.Database.Name}
	}

	if c.Storage.Bucket == "" {
		return invalid("storage.bucket is required")
	}
	if !slices.Contains([]string{StorageS3, StorageFilesystem}, c.Storage.Backend) {
		return invalid("storage.backend must be %q or %q, got %q", StorageS3, StorageFilesystem, c.Storage.Backend)
	}
	if c.Database.Name == "" {
		return invalid("database.name is required")
	}
	switch domain.DBEngine(c.Database.Engine) {
	case domain.DBEngineMySQL, domain.DBEnginePostgres:
	default:
		return invalid("database.engine must be %q or %q, got %q", domain.DBEngineMySQL, domain.DBEnginePostgres, c.Database.Engine)
	}
	switch domain.DBRunner(c.Database.Runner) {
	case domain.DBRunnerLocal:
	case domain.DBRunnerDocker:
		if c.Database.Container == "" {
			return invalid("database.container is required with the docker runner")
		}
	default:
		return invalid("database.runner must be %q or %q, got %q", domain.DBRunnerLocal, domain.DBRunnerDocker, c.Database.Runner)
	}
	if c.Database.Port < 0 || c.Database.Port > 65535 {
		return invalid("database.port out of range: %d", c.Database.Port)
	}

	retention, err := duration.Parse(c.Backup.Retention)
	if err != nil {
		return invalid("backup.retention: %v", err)
	}
	if retention <= 0 {
		retention = backup.DefaultRetention
	}
	c.retention = retention

	partSize, err := bytesize.Parse(c.Storage.PartSize)
	if err != nil {
		return invalid("storage.part_size: %v", err)
	}
	c.partSize = partSize

	if c.Storage.MaxAttempts < 1 {
		return invalid("storage.max_attempts must be at least 1, got %d", c.Storage.MaxAttempts)
	}
	if c.Schedule.MaxConcurrent < 1 {
		return invalid("schedule.max_concurrent must be at least 1, got %d", c.Schedule.MaxConcurrent)
	}

	preset, err := cron.ParsePreset(c.Schedule.Preset)
	if err != nil {
		return invalid("schedule.preset: %v", err)
	}
	c.preset = preset

	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// IsDevelopment reports whether restores are allowed without --force.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(strings.TrimSpace(c.Environment), EnvDevelopment)
}

// Retention is the parsed backup.retention window.
func (c *Config) Retention() time.Duration { return c.retention }

// Preset is the parsed schedule.preset.
func (c *Config) Preset() domain.BackupSchedule { return c.preset }

// DatabaseConnection returns the configured connection.
func (c *Config) DatabaseConnection() domain.DatabaseConnection {
	return domain.DatabaseConnection{
		Engine:    domain.DBEngine(c.Database.Engine),
		Host:      c.Database.Host,
		Port:      c.Database.Port,
		User:      c.Database.User,
		Password:  c.Database.Password,
		Name:      c.Database.Name,
		Runner:    domain.DBRunner(c.Database.Runner),
		Container: c.Database.Container,
	}
}

// BackupConfig returns the settings the backup and restore services need.
func (c *Config) BackupConfig() domain.BackupConfig {
	return domain.BackupConfig{
		Bucket:        c.Storage.Bucket,
		Directory:     c.Storage.Directory,
		Database:      c.DatabaseConnection(),
		Retention:     c.retention,
		Development:   c.IsDevelopment(),
		WorkDir:       c.Backup.WorkDir,
		KeepFile:      c.Backup.KeepFile,
		DailyRotation: c.Backup.DailyRotation,
	}
}

// S3Config returns the S3 client settings.
func (c *Config) S3Config() s3.Config {
	return s3.Config{
		Region:          c.Storage.Region,
		Endpoint:        c.Storage.Endpoint,
		AccessKeyID:     c.Storage.AccessKeyID,
		SecretAccessKey: c.Storage.SecretAccessKey,
		ForcePathStyle:  c.Storage.ForcePathStyle,
		PartSize:        c.partSize,
		MaxAttempts:     c.Storage.MaxAttempts,
	}
}
