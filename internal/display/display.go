package display

import (
	"errors"
	"io"
	"strings"
	"sync"
)

// ErrDestroyed is returned by Replace once the surface has been torn down.
var ErrDestroyed = errors.New("display surface destroyed")

// Surface is the minimal contract the poll loop needs from a display
// target: replace everything, check liveness, tear down.
type Surface interface {
	Replace(lines []string) error
	Alive() bool
	Destroy()
}

// Terminal is a Surface that repaints a terminal in place: clear, home,
// write all lines. It owns no global state; create one per run and destroy
// it when done.
type Terminal struct {
	mu    sync.Mutex
	w     io.Writer
	alive bool
}

// NewTerminal creates a live terminal surface writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w, alive: true}
}

const clearAndHome = "\x1b[2J\x1b[H"

func (t *Terminal) Replace(lines []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.alive {
		return ErrDestroyed
	}

	var sb strings.Builder
	sb.WriteString(clearAndHome)
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(t.w, sb.String()); err != nil {
		return err
	}
	return nil
}

func (t *Terminal) Alive() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.alive
}

// Destroy marks the surface dead. Safe to call any number of times.
func (t *Terminal) Destroy() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.alive = false
}
