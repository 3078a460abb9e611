package poller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mschuldt/bart-mode/internal/board"
	"github.com/mschuldt/bart-mode/internal/display"
	"github.com/mschuldt/bart-mode/internal/render"
)

// State is the poll loop's lifecycle state.
type State int

const (
	StateIdle State = iota
	StatePolling
	StateActive
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePolling:
		return "polling"
	case StateActive:
		return "active"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Fetcher fetches a station's departure board. *bart.Client satisfies it.
type Fetcher interface {
	EstimatedDepartures(ctx context.Context, orig string) (*board.Board, error)
}

// Options configures a Poller.
type Options struct {
	Station    string
	Interval   time.Duration
	Abbreviate bool

	// Render overrides the board renderer; defaults to render.Lines.
	Render func(*board.Board, bool) []string

	// OnBoard, when set, observes every successfully fetched board.
	OnBoard func(*board.Board)
}

// Poller owns the repeat timer and the display surface for one station
// board. It fires an immediate poll on Start, repolls on a fixed interval
// and on manual refresh, and absorbs every per-tick error so a bad poll
// never stops the cycle.
type Poller struct {
	fetcher  Fetcher
	surface  display.Surface
	logger   *logrus.Logger
	interval time.Duration
	render   func(*board.Board, bool) []string
	onBoard  func(*board.Board)

	mu         sync.Mutex
	state      State
	station    string
	abbreviate bool
	gen        uint64
	last       *board.Board

	refreshCh chan struct{}
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// New creates an idle poller. Start begins polling; Stop tears it down.
func New(fetcher Fetcher, surface display.Surface, logger *logrus.Logger, opts Options) *Poller {
	if opts.Interval <= 0 {
		opts.Interval = time.Minute
	}
	if opts.Render == nil {
		opts.Render = render.Lines
	}
	return &Poller{
		fetcher:    fetcher,
		surface:    surface,
		logger:     logger,
		interval:   opts.Interval,
		render:     opts.Render,
		onBoard:    opts.OnBoard,
		station:    opts.Station,
		abbreviate: opts.Abbreviate,
		refreshCh:  make(chan struct{}, 1),
		stopCh:     make(chan struct{}),
	}
}

// Start fires the initial poll and arms the repeat timer. It may be called
// once per Poller.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.state != StateIdle {
		p.mu.Unlock()
		return fmt.Errorf("poller already started (state %s)", p.state)
	}
	p.state = StatePolling
	p.mu.Unlock()

	p.wg.Add(1)
	go p.run(ctx)
	return nil
}

// Stop cancels the timer, waits for the loop to exit and destroys the
// surface. Safe to call any number of times, from any goroutine.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopCh)
		p.mu.Lock()
		p.state = StateStopped
		p.mu.Unlock()
		p.wg.Wait()
		p.surface.Destroy()
		p.logger.Info("poller stopped")
	})
}

// Refresh requests an off-schedule poll. Never blocks; a refresh request
// while one is already pending is a no-op.
func (p *Poller) Refresh() {
	select {
	case p.refreshCh <- struct{}{}:
	default:
	}
}

// SetStation switches the polled station and triggers an immediate poll.
// Any response still in flight for the previous station is discarded.
func (p *Poller) SetStation(code string) {
	p.mu.Lock()
	if code == p.station {
		p.mu.Unlock()
		return
	}
	p.station = code
	p.gen++
	p.mu.Unlock()

	p.logger.WithField("station", code).Info("station changed")
	p.Refresh()
}

// ToggleAbbreviate flips the destination-label mode and repaints the last
// board without refetching. Returns the new flag value.
func (p *Poller) ToggleAbbreviate() bool {
	p.mu.Lock()
	p.abbreviate = !p.abbreviate
	abbreviate := p.abbreviate
	last := p.last
	p.mu.Unlock()

	if last != nil {
		p.replace(p.render(last, abbreviate))
	}
	return abbreviate
}

// Station returns the currently polled station code.
func (p *Poller) Station() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.station
}

// State returns the current lifecycle state.
func (p *Poller) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Poller) run(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			go p.Stop()
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
		case <-p.refreshCh:
		}

		if !p.surface.Alive() {
			p.logger.Info("display surface closed, stopping")
			go p.Stop()
			return
		}

		p.poll(ctx)
	}
}

// poll runs one request-parse-render cycle. Errors are logged and absorbed:
// the previous board stays on screen and the timer keeps running.
func (p *Poller) poll(ctx context.Context) {
	p.mu.Lock()
	if p.state == StateStopped {
		p.mu.Unlock()
		return
	}
	p.state = StatePolling
	station := p.station
	gen := p.gen
	p.mu.Unlock()

	b, err := p.fetcher.EstimatedDepartures(ctx, station)

	p.mu.Lock()
	if p.state == StateStopped {
		p.mu.Unlock()
		return
	}
	p.state = StateActive
	if gen != p.gen {
		p.mu.Unlock()
		p.logger.WithField("station", station).Debug("dropping stale response for superseded station")
		return
	}
	if err != nil {
		first := p.last == nil
		p.mu.Unlock()
		p.logger.WithFields(logrus.Fields{
			"station": station,
			"error":   err,
		}).Warn("poll failed, will retry on next tick")
		if first {
			p.replace(render.Unavailable())
		}
		return
	}
	p.last = b
	abbreviate := p.abbreviate
	p.mu.Unlock()

	p.replace(p.render(b, abbreviate))
	if p.onBoard != nil {
		p.onBoard(b)
	}
}

func (p *Poller) replace(lines []string) {
	if err := p.surface.Replace(lines); err != nil {
		p.logger.WithField("error", err).Debug("surface rejected repaint")
	}
}
