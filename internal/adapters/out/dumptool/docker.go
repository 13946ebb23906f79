package dumptool

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/zerowrap"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"

	"github.com/bnema/dbs3/internal/domain"
)

// ExecClient is the subset of the Docker API the runner needs.
type ExecClient interface {
	ContainerExecCreate(ctx context.Context, container string, options container.ExecOptions) (container.ExecCreateResponse, error)
	ContainerExecAttach(ctx context.Context, execID string, config container.ExecAttachOptions) (types.HijackedResponse, error)
	ContainerExecInspect(ctx context.Context, execID string) (container.ExecInspect, error)
	ContainerInspect(ctx context.Context, containerID string) (container.InspectResponse, error)
}

// DockerRunner runs binaries inside a running database container.
type DockerRunner struct {
	client    ExecClient
	container string
}

// NewDockerRunner connects to the Docker daemon from the environment.
func NewDockerRunner(containerName string) (*DockerRunner, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}
	return NewDockerRunnerWithClient(cli, containerName), nil
}

// NewDockerRunnerWithClient creates a runner with a custom client (for testing).
func NewDockerRunnerWithClient(cli ExecClient, containerName string) *DockerRunner {
	return &DockerRunner{client: cli, container: containerName}
}

// Run implements Runner. Attaching starts the exec; stdin is streamed
// through the hijacked connection and half-closed when exhausted.
func (r *DockerRunner) Run(ctx context.Context, cmd Command, stdin io.Reader, stdout io.Writer) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "dumptool",
		zerowrap.FieldAction:  "DockerRun",
		"tool":                cmd.Name,
		"container":           r.container,
	})
	log := zerowrap.FromCtx(ctx)

	created, err := r.client.ContainerExecCreate(ctx, r.container, container.ExecOptions{
		Cmd:          append([]string{cmd.Name}, cmd.Args...),
		Env:          cmd.Env,
		AttachStdin:  stdin != nil,
		AttachStdout: true,
		AttachStderr: true,
	})
	if err != nil {
		return &domain.ProcessError{Tool: cmd.Name, ExitCode: -1, Err: log.WrapErr(err, "failed to create exec")}
	}

	attached, err := r.client.ContainerExecAttach(ctx, created.ID, container.ExecAttachOptions{})
	if err != nil {
		return &domain.ProcessError{Tool: cmd.Name, ExitCode: -1, Err: log.WrapErr(err, "failed to attach exec")}
	}
	defer attached.Close()

	stdinErr := make(chan error, 1)
	if stdin != nil {
		go func() {
			_, err := io.Copy(attached.Conn, stdin)
			if cerr := attached.CloseWrite(); err == nil {
				err = cerr
			}
			stdinErr <- err
		}()
	} else {
		stdinErr <- nil
	}

	stderr := newTailBuffer(stderrTailSize)
	if stdout == nil {
		stdout = io.Discard
	}
	if _, err := stdcopy.StdCopy(stdout, stderr, attached.Reader); err != nil {
		return &domain.ProcessError{Tool: cmd.Name, ExitCode: -1, Stderr: stderr.String(), Err: log.WrapErr(err, "failed to read exec output")}
	}
	copyErr := <-stdinErr

	// A tool that exits early on a SQL error breaks the stdin pipe; its exit
	// code is the failure worth reporting, so it is checked first.
	inspect, err := r.client.ContainerExecInspect(ctx, created.ID)
	if err != nil {
		if copyErr != nil {
			return &domain.ProcessError{Tool: cmd.Name, ExitCode: -1, Stderr: stderr.String(), Err: log.WrapErr(copyErr, "failed to stream exec input")}
		}
		return &domain.ProcessError{Tool: cmd.Name, ExitCode: -1, Stderr: stderr.String(), Err: log.WrapErr(err, "failed to inspect exec")}
	}
	if inspect.ExitCode != 0 {
		return &domain.ProcessError{
			Tool:     cmd.Name,
			ExitCode: inspect.ExitCode,
			Stderr:   stderr.String(),
			Err:      errors.New("non-zero exit"),
		}
	}
	if copyErr != nil {
		return &domain.ProcessError{Tool: cmd.Name, ExitCode: -1, Stderr: stderr.String(), Err: log.WrapErr(copyErr, "failed to stream exec input")}
	}
	log.Debug().Int("exit_code", inspect.ExitCode).Msg("exec complete")
	return nil
}

// Image returns the image reference of the target container.
func (r *DockerRunner) Image(ctx context.Context) (string, error) {
	resp, err := r.client.ContainerInspect(ctx, r.container)
	if err != nil {
		return "", fmt.Errorf("failed to inspect container %s: %w", r.container, err)
	}
	if resp.Config == nil {
		return "", nil
	}
	return resp.Config.Image, nil
}
