// Package runner drives a snake game: one loop consumes the merged queue of
// key and tick events, applies them to the game and hands a snapshot to the
// presenter after every iteration.
package runner

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-snake/internal/core"
	"github.com/vovakirdan/pocket-snake/internal/games/snake"
)

// Presenter displays snapshots. It is called from the loop goroutine.
type Presenter interface {
	Present(s snake.Snapshot)
}

// ResultSink stores finished games.
type ResultSink interface {
	RecordResult(res snake.Result) error
}

// Config holds loop tuning.
type Config struct {
	QueueDepth int
	IdleRedraw time.Duration // upper bound on the wait between redraws
	Speeds     snake.Speeds
}

// DefaultConfig returns the handheld's timings.
func DefaultConfig() Config {
	return Config{
		QueueDepth: MinQueueDepth,
		IdleRedraw: 100 * time.Millisecond,
		Speeds:     snake.DefaultSpeeds(),
	}
}

// Runner owns the game for the lifetime of Run.
type Runner struct {
	mu      sync.Mutex
	game    *snake.Game
	ctrl    *snake.Controller
	queue   *Queue
	ticks   *Ticker
	idle    time.Duration
	notify  snake.Notifier
	present Presenter
	results ResultSink
	logger  *log.Logger
	wasOver bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithNotifier sets where backlight requests go.
func WithNotifier(n snake.Notifier) Option {
	return func(r *Runner) { r.notify = n }
}

// WithPresenter sets the snapshot consumer.
func WithPresenter(p Presenter) Option {
	return func(r *Runner) { r.present = p }
}

// WithResults sets where finished games are recorded.
func WithResults(s ResultSink) Option {
	return func(r *Runner) { r.results = s }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// New creates a runner for g. g must already hold a record.
func New(g *snake.Game, cfg Config, opts ...Option) *Runner {
	if cfg.IdleRedraw <= 0 {
		cfg.IdleRedraw = DefaultConfig().IdleRedraw
	}
	q := NewQueue(cfg.QueueDepth)
	ticks := NewTicker(q)
	r := &Runner{
		game:   g,
		ctrl:   snake.NewController(g, ticks, cfg.Speeds),
		queue:  q,
		ticks:  ticks,
		idle:   cfg.IdleRedraw,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Send queues a key event for the loop. It blocks while the queue is full.
func (r *Runner) Send(ctx context.Context, ev core.KeyEvent) error {
	return r.queue.PutKey(ctx, ev)
}

// Snapshot returns the current state of the game.
func (r *Runner) Snapshot() snake.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.game.Snapshot()
}

// Run processes events until the player exits or ctx is cancelled. The record
// is saved on the way out in both cases.
func (r *Runner) Run(ctx context.Context) error {
	if r.notify != nil {
		r.notify.ForceBacklightOn()
		defer r.notify.BacklightAuto()
	}
	defer r.ticks.Stop()

	r.mu.Lock()
	r.ctrl.Arm()
	r.wasOver = r.game.State() == snake.StateGameOver
	snap := r.game.Snapshot()
	r.mu.Unlock()
	r.show(snap)

	r.logger.Info("loop started", "queue", r.queue.Cap(), "state", snap.Record.State)

	for {
		if ctx.Err() != nil {
			r.mu.Lock()
			r.game.Save()
			r.mu.Unlock()
			r.logger.Info("loop cancelled, game saved")
			return nil
		}

		ev, ok := r.queue.Get(ctx, r.idle)
		exit, snap, finished := r.apply(ev, ok)
		if finished != nil {
			r.record(*finished)
		}
		r.show(snap)

		if exit {
			r.logger.Info("player exit", "state", snap.Record.State)
			return nil
		}
	}
}

// apply handles one event under the lock and reports a result when the game
// has just ended.
func (r *Runner) apply(ev Event, ok bool) (exit bool, snap snake.Snapshot, finished *snake.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ok {
		switch ev.Kind {
		case EventTick:
			r.game.Step()
		case EventKey:
			r.logger.Debug("key", "event", ev.Key)
			exit = r.ctrl.Handle(ev.Key)
		}
	}

	rec := r.game.Record()
	over := rec.State == snake.StateGameOver
	if over && !r.wasOver {
		res := rec.Result()
		finished = &res
	}
	r.wasOver = over
	return exit, r.game.Snapshot(), finished
}

func (r *Runner) record(res snake.Result) {
	if r.results == nil {
		return
	}
	if err := r.results.RecordResult(res); err != nil {
		r.logger.Warn("result not recorded", "error", err)
	}
}

func (r *Runner) show(s snake.Snapshot) {
	if r.present != nil {
		r.present.Present(s)
	}
}
