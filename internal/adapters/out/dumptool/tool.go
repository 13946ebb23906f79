package dumptool

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/bnema/zerowrap"

	"github.com/bnema/dbs3/internal/domain"
)

// RunnerFactory returns the runner for a connection.
type RunnerFactory func(conn domain.DatabaseConnection) (Runner, error)

// Tool implements out.DumpTool and out.ToolInspector on top of a Runner.
type Tool struct {
	runnerFor RunnerFactory
}

// NewTool creates a tool picking the runner per connection.
func NewTool(factory RunnerFactory) *Tool {
	return &Tool{runnerFor: factory}
}

// DefaultRunnerFactory runs locally unless the connection targets a container.
// Docker runners are cached per container name.
func DefaultRunnerFactory() RunnerFactory {
	local := NewLocalRunner()
	var (
		mu     sync.Mutex
		docker = make(map[string]*DockerRunner)
	)
	return func(conn domain.DatabaseConnection) (Runner, error) {
		if conn.Runner != domain.DBRunnerDocker {
			return local, nil
		}
		if conn.Container == "" {
			return nil, fmt.Errorf("%w: docker runner needs a container name", domain.ErrInvalidConfig)
		}
		mu.Lock()
		defer mu.Unlock()
		if r, ok := docker[conn.Container]; ok {
			return r, nil
		}
		r, err := NewDockerRunner(conn.Container)
		if err != nil {
			return nil, err
		}
		docker[conn.Container] = r
		return r, nil
	}
}

// Dump writes a SQL dump of conn.Name to outputPath.
func (t *Tool) Dump(ctx context.Context, conn domain.DatabaseConnection, outputPath string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "dumptool",
		zerowrap.FieldAction:  "Dump",
		"database":            conn.Name,
	})
	log := zerowrap.FromCtx(ctx)

	cmd, err := DumpCommand(conn)
	if err != nil {
		return err
	}
	runner, err := t.runnerFor(conn)
	if err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return log.WrapErr(err, "failed to create dump file")
	}
	if err := runner.Run(ctx, cmd, nil, out); err != nil {
		_ = out.Close()
		_ = os.Remove(outputPath)
		return err
	}
	if err := out.Close(); err != nil {
		return log.WrapErr(err, "failed to close dump file")
	}
	log.Debug().Str("path", outputPath).Msg("dump written")
	return nil
}

// Load replays inputPath into conn.Name.
func (t *Tool) Load(ctx context.Context, conn domain.DatabaseConnection, inputPath string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "dumptool",
		zerowrap.FieldAction:  "Load",
		"database":            conn.Name,
	})
	log := zerowrap.FromCtx(ctx)

	cmd, err := LoadCommand(conn)
	if err != nil {
		return err
	}
	runner, err := t.runnerFor(conn)
	if err != nil {
		return err
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return log.WrapErr(err, "failed to open dump file")
	}
	defer in.Close()

	return runner.Run(ctx, cmd, in, io.Discard)
}

// Version reports the dump binary version. For container runners whose
// binary cannot be queried, the version is read from the image tag.
func (t *Tool) Version(ctx context.Context, conn domain.DatabaseConnection) (*semver.Version, error) {
	cmd, err := VersionCommand(conn.Engine)
	if err != nil {
		return nil, err
	}
	runner, err := t.runnerFor(conn)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	runErr := runner.Run(ctx, cmd, nil, &out)
	if runErr == nil {
		return ParseVersion(out.String())
	}

	if dr, ok := runner.(*DockerRunner); ok {
		image, err := dr.Image(ctx)
		if err == nil {
			if v := VersionFromImage(image); v != "" {
				return semver.NewVersion(v)
			}
		}
	}
	return nil, runErr
}

// ContainerEngine implements out.ToolInspector by matching the target
// container's image against known engine images.
func (t *Tool) ContainerEngine(ctx context.Context, conn domain.DatabaseConnection) (domain.DBEngine, bool, error) {
	if conn.Runner != domain.DBRunnerDocker {
		return "", false, nil
	}
	runner, err := t.runnerFor(conn)
	if err != nil {
		return "", false, err
	}
	dr, ok := runner.(*DockerRunner)
	if !ok {
		return "", false, nil
	}

	image, err := dr.Image(ctx)
	if err != nil {
		return "", false, err
	}
	engine, ok := DetectEngine(image)
	return engine, ok, nil
}
