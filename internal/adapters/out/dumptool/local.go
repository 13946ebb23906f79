package dumptool

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/bnema/zerowrap"

	"github.com/bnema/dbs3/internal/domain"
)

// LocalRunner runs binaries installed on the host.
type LocalRunner struct {
	lookPath func(string) (string, error)
}

// NewLocalRunner creates a runner that resolves binaries from PATH.
func NewLocalRunner() *LocalRunner {
	return &LocalRunner{lookPath: exec.LookPath}
}

// Run implements Runner.
func (r *LocalRunner) Run(ctx context.Context, cmd Command, stdin io.Reader, stdout io.Writer) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "dumptool",
		zerowrap.FieldAction:  "LocalRun",
		"tool":                cmd.Name,
	})
	log := zerowrap.FromCtx(ctx)

	path, err := r.lookPath(cmd.Name)
	if err != nil {
		return &domain.ProcessError{Tool: cmd.Name, ExitCode: -1, Err: err}
	}

	stderr := newTailBuffer(stderrTailSize)
	proc := exec.CommandContext(ctx, path, cmd.Args...)
	proc.Env = append(os.Environ(), cmd.Env...)
	proc.Stdin = stdin
	proc.Stdout = stdout
	proc.Stderr = stderr

	log.Debug().Strs("args", cmd.Args).Msg("starting process")
	if err := proc.Run(); err != nil {
		code := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		return &domain.ProcessError{Tool: cmd.Name, ExitCode: code, Stderr: stderr.String(), Err: err}
	}
	return nil
}
