package domain

import "time"

// DBEngine identifies the database engine behind a connection.
type DBEngine string

const (
	DBEngineMySQL    DBEngine = "mysql"
	DBEnginePostgres DBEngine = "postgres"
)

// DBRunner selects where the dump and load binaries execute.
type DBRunner string

const (
	DBRunnerLocal  DBRunner = "local"
	DBRunnerDocker DBRunner = "docker"
)

// DatabaseConnection holds the parameters handed to the dump tool.
type DatabaseConnection struct {
	Engine    DBEngine `json:"engine"`
	Host      string   `json:"host"`
	Port      int      `json:"port,omitempty"`
	User      string   `json:"user"`
	Password  string   `json:"-"`
	Name      string   `json:"name"`
	Runner    DBRunner `json:"runner"`
	Container string   `json:"container,omitempty"`
}

// WithName returns a copy of the connection targeting another database.
func (c DatabaseConnection) WithName(name string) DatabaseConnection {
	c.Name = name
	return c
}

// BackupObject is one stored backup artifact.
type BackupObject struct {
	Key          string    `json:"key"`
	LastModified time.Time `json:"last_modified"`
	SizeBytes    int64     `json:"size_bytes"`
}

// ObjectMetadata is what the store reports for a single key.
type ObjectMetadata struct {
	LastModified time.Time
	SizeBytes    int64
}

// BackupRow is a display-ready description of a backup object.
type BackupRow struct {
	Key          string    `json:"key" yaml:"key"`
	HumanAge     string    `json:"age" yaml:"age"`
	HumanSize    string    `json:"size" yaml:"size"`
	LastModified time.Time `json:"last_modified" yaml:"last_modified"`
}

// SafetyReason explains a SafetyDecision.
type SafetyReason string

const (
	SafetyReasonDevelopment       SafetyReason = "development_environment"
	SafetyReasonForced            SafetyReason = "forced"
	SafetyReasonNotDevelopmentEnv SafetyReason = "not_development_environment"
)

// SafetyDecision is the outcome of the pre-flight check run before a restore.
type SafetyDecision struct {
	Allowed bool
	Reason  SafetyReason
}

// RestoreState tracks the restore pipeline.
type RestoreState string

const (
	RestoreStart       RestoreState = "start"
	RestoreSafetyCheck RestoreState = "safety_check"
	RestoreSelecting   RestoreState = "selecting"
	RestoreConfirming  RestoreState = "confirming"
	RestoreDownloading RestoreState = "downloading"
	RestoreImporting   RestoreState = "importing"
	RestoreCleanup     RestoreState = "cleanup"
	RestoreDone        RestoreState = "done"
	RestoreAborted     RestoreState = "aborted"
	RestoreFailed      RestoreState = "failed"
)

// Terminal reports whether no further transition can happen.
func (s RestoreState) Terminal() bool {
	return s == RestoreDone || s == RestoreAborted || s == RestoreFailed
}

// BackupConfig is everything the orchestrators need, resolved once at startup.
type BackupConfig struct {
	Bucket        string
	Directory     string
	Database      DatabaseConnection
	Retention     time.Duration
	Development   bool
	WorkDir       string
	KeepFile      string
	DailyRotation bool
}

// BackupOptions are the per-invocation knobs of a backup run.
type BackupOptions struct {
	DatabaseName  string
	DailyRotation bool
}

// BackupResult is returned after a backup run completes.
type BackupResult struct {
	Run    BackupRun
	Key    string
	Pruned *PruneReport
}

// PruneOptions are the per-invocation knobs of a retention pass.
type PruneOptions struct {
	DatabaseName string
	DryRun       bool
}

// PruneReport summarises a retention pass.
type PruneReport struct {
	Deleted   []string `json:"deleted" yaml:"deleted"`
	Kept      []string `json:"kept" yaml:"kept"`
	Malformed []string `json:"malformed" yaml:"malformed"`
	DryRun    bool     `json:"dry_run" yaml:"dry_run"`
}

// RestoreOptions are the per-invocation knobs of a restore.
type RestoreOptions struct {
	DatabaseName      string
	LocalDatabaseName string
	Force             bool
	AutoConfirm       bool
	Choose            bool
	KeepLocal         bool
}

// RestoreResult describes how a restore ended.
type RestoreResult struct {
	Run        BackupRun
	Key        string
	Target     DatabaseConnection
	State      RestoreState
	Downloaded bool
	LocalPath  string
}
