package dumptool

import (
	"context"
	"io"
	"strings"
	"sync"
)

// Runner executes a Command wiring stdin and stdout to the given streams.
// A non-zero exit is returned as *domain.ProcessError carrying the stderr tail.
type Runner interface {
	Run(ctx context.Context, cmd Command, stdin io.Reader, stdout io.Writer) error
}

const stderrTailSize = 4 << 10

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	mu    sync.Mutex
	limit int
	buf   []byte
}

func newTailBuffer(limit int) *tailBuffer {
	return &tailBuffer{limit: limit}
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.limit; over > 0 {
		t.buf = append(t.buf[:0], t.buf[over:]...)
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.TrimSpace(string(t.buf))
}
