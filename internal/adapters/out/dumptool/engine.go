// Package dumptool runs database dump and load binaries, either on the host
// or inside a database container.
package dumptool

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/Masterminds/semver/v3"

	"github.com/bnema/dbs3/internal/domain"
)

// Command is one process invocation. Env holds extra KEY=VALUE pairs.
type Command struct {
	Name string
	Args []string
	Env  []string
}

// DefaultPort returns the standard port of engine.
func DefaultPort(engine domain.DBEngine) int {
	switch engine {
	case domain.DBEnginePostgres:
		return 5432
	default:
		return 3306
	}
}

// DumpCommand builds the command that writes a plain SQL dump to stdout.
func DumpCommand(conn domain.DatabaseConnection) (Command, error) {
	switch conn.Engine {
	case domain.DBEngineMySQL:
		return Command{
			Name: "mysqldump",
			Args: append(mysqlConnArgs(conn),
				"--single-transaction",
				"--quick",
				"--complete-insert",
				"--lock-tables=false",
				conn.Name,
			),
			Env: mysqlEnv(conn),
		}, nil
	case domain.DBEnginePostgres:
		return Command{
			Name: "pg_dump",
			Args: append(postgresConnArgs(conn),
				"--clean",
				"--if-exists",
				"--no-owner",
				"--dbname="+conn.Name,
			),
			Env: postgresEnv(conn),
		}, nil
	default:
		return Command{}, unsupported(conn.Engine)
	}
}

// LoadCommand builds the command that replays a SQL dump read from stdin.
func LoadCommand(conn domain.DatabaseConnection) (Command, error) {
	switch conn.Engine {
	case domain.DBEngineMySQL:
		return Command{
			Name: "mysql",
			Args: append(mysqlConnArgs(conn), "--database="+conn.Name),
			Env:  mysqlEnv(conn),
		}, nil
	case domain.DBEnginePostgres:
		return Command{
			Name: "psql",
			Args: append(postgresConnArgs(conn),
				"--quiet",
				"-v", "ON_ERROR_STOP=1",
				"--dbname="+conn.Name,
			),
			Env: postgresEnv(conn),
		}, nil
	default:
		return Command{}, unsupported(conn.Engine)
	}
}

// VersionCommand asks the dump binary for its version.
func VersionCommand(engine domain.DBEngine) (Command, error) {
	switch engine {
	case domain.DBEngineMySQL:
		return Command{Name: "mysqldump", Args: []string{"--version"}}, nil
	case domain.DBEnginePostgres:
		return Command{Name: "pg_dump", Args: []string{"--version"}}, nil
	default:
		return Command{}, unsupported(engine)
	}
}

// MySQL prints "Ver 8.0.36" or, for MariaDB builds, "Distrib 10.11.6-MariaDB";
// the distribution version wins when present.
var (
	distribPattern = regexp.MustCompile(`Distrib (\d+\.\d+(?:\.\d+)?)`)
	versionPattern = regexp.MustCompile(`(\d+\.\d+(?:\.\d+)?)`)
)

// ParseVersion extracts a semantic version from --version output.
func ParseVersion(output string) (*semver.Version, error) {
	match := distribPattern.FindStringSubmatch(output)
	if match == nil {
		match = versionPattern.FindStringSubmatch(output)
	}
	if match == nil {
		return nil, fmt.Errorf("no version found in %q", output)
	}
	return semver.NewVersion(match[1])
}

func mysqlConnArgs(conn domain.DatabaseConnection) []string {
	args := []string{"--host=" + conn.Host, "--port=" + strconv.Itoa(port(conn))}
	if conn.User != "" {
		args = append(args, "--user="+conn.User)
	}
	return args
}

func postgresConnArgs(conn domain.DatabaseConnection) []string {
	args := []string{"--host=" + conn.Host, "--port=" + strconv.Itoa(port(conn))}
	if conn.User != "" {
		args = append(args, "--username="+conn.User)
	}
	return append(args, "--no-password")
}

// Passwords go through the environment so they never show up in ps output.
func mysqlEnv(conn domain.DatabaseConnection) []string {
	if conn.Password == "" {
		return nil
	}
	return []string{"MYSQL_PWD=" + conn.Password}
}

func postgresEnv(conn domain.DatabaseConnection) []string {
	if conn.Password == "" {
		return nil
	}
	return []string{"PGPASSWORD=" + conn.Password}
}

func port(conn domain.DatabaseConnection) int {
	if conn.Port > 0 {
		return conn.Port
	}
	return DefaultPort(conn.Engine)
}

func unsupported(engine domain.DBEngine) error {
	return fmt.Errorf("%w: unsupported database engine %q", domain.ErrInvalidConfig, engine)
}
