// Package snake implements the rules of the handheld snake game: movement,
// growth, collisions, the LastChance grace tick, Endless mode, pause with
// elapsed-time tracking, and the record that survives restarts.
//
// The package is pure game logic. Notifications, persistence and the wall
// clock are injected so the platform layer decides how they are realised.
package snake

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Notifier plays the cues of the notification subsystem. Calls are made
// synchronously at transition points; completion is not awaited.
type Notifier interface {
	PlayFailure()
	PlayEatCue()
	PlayFlourish()
	ForceBacklightOn()
	BacklightAuto()
}

// Store persists a record. Save is best effort.
type Store interface {
	Save(rec Record) error
}

// Game owns the live record and applies the simulation rules to it.
// It is not safe for concurrent use; the runner serializes access.
type Game struct {
	rec    Record
	notify Notifier
	store  Store
	clock  func() time.Time
	rng    *rand.Rand
	logger *log.Logger
	steps  uint64
}

// Option configures a Game.
type Option func(*Game)

// WithNotifier sets the cue player.
func WithNotifier(n Notifier) Option {
	return func(g *Game) { g.notify = n }
}

// WithStore sets where records are persisted.
func WithStore(s Store) Option {
	return func(g *Game) { g.store = s }
}

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.clock = now }
}

// WithSeed makes fruit placement deterministic.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger sets the logger used for swallowed persistence errors.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// New creates a game with no record loaded. Call NewGame or Restore before
// stepping it.
func New(opts ...Option) *Game {
	g := &Game{
		notify: nopNotifier{},
		clock:  time.Now,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// now returns the wall clock as 32-bit Unix seconds.
func (g *Game) now() uint32 {
	return uint32(g.clock().Unix())
}

// NewGame replaces the record with a fresh 7-cell snake heading right and
// persists it.
func (g *Game) NewGame() {
	endless := g.rec.Endless
	g.rec = Record{}
	for i := 0; i < StartLen; i++ {
		g.rec.Body.Cells[i] = Cell{X: uint8(8 - i), Y: 6}
	}
	g.rec.Body.Len = StartLen
	g.rec.Current = DirRight
	g.rec.Next = DirRight
	g.rec.Fruit = Cell{X: 18, Y: 6}
	// Endless is a setting, not game state.
	g.rec.Endless = endless
	g.rec.TimerStopped = 0
	g.rec.TimerStart = g.now()
	g.rec.State = StateLife
	g.steps = 0

	g.logger.Info("new game", "endless", g.rec.Endless)
	g.Save()
}

// Restore adopts a loaded record. Games that were running resume in Life with
// the clock re-based on the stored elapsed time; paused and finished games
// keep their state and frozen clock.
func (g *Game) Restore(rec Record) {
	g.rec = rec
	g.steps = 0
	switch rec.State {
	case StatePause, StateGameOver:
	default:
		g.rec.TimerStart = g.now() - g.rec.TimerStopped
		g.rec.State = StateLife
	}
	g.logger.Info("restored game", "state", g.rec.State, "score", g.rec.Score())
}

// Save persists the current record. Failures are logged and swallowed.
func (g *Game) Save() {
	if g.store == nil {
		return
	}
	if err := g.store.Save(g.rec); err != nil {
		g.logger.Warn("save skipped", "error", err)
	}
}

// Record returns a copy of the current record.
func (g *Game) Record() Record {
	return g.rec
}

// State returns the current lifecycle state.
func (g *Game) State() Lifecycle {
	return g.rec.State
}

// freezeTimer captures the elapsed time so far.
func (g *Game) freezeTimer() {
	g.rec.TimerStopped = g.now() - g.rec.TimerStart
}

// Elapsed returns elapsed play time in seconds: live while running, frozen
// while paused or over.
func (g *Game) Elapsed() uint32 {
	switch g.rec.State {
	case StatePause, StateGameOver:
		return g.rec.TimerStopped
	default:
		return g.now() - g.rec.TimerStart
	}
}

// turn resolves the requested direction against the current one.
func (g *Game) turn() Direction {
	if IsOrthogonal(g.rec.Current, g.rec.Next) {
		return g.rec.Next
	}
	return g.rec.Current
}

// Step advances the simulation by exactly one tick.
func (g *Game) Step() {
	// A tick queued just before a pause must not move a frozen game.
	if g.rec.State == StateGameOver || g.rec.State == StatePause {
		return
	}
	g.steps++

	g.rec.Current = g.turn()
	next := g.rec.Current.Step(g.rec.Body.Head())

	if CollidesWithFrame(next) {
		switch g.rec.State {
		case StateLife:
			g.rec.State = StateLastChance
			return
		case StateLastChance:
			// Endless mode never ends the game on the frame.
			if !g.rec.Endless {
				g.gameOver()
			}
			g.notify.PlayFailure()
			return
		}
	} else if g.rec.State == StateLastChance {
		g.rec.State = StateLife
	}

	// The tail still counts: it has not moved out of the way yet.
	if g.rec.Body.Contains(next) {
		if g.rec.Endless {
			g.rec.State = StateLastChance
		} else {
			g.gameOver()
		}
		g.notify.PlayFailure()
		return
	}

	ate := next == g.rec.Fruit
	if ate {
		g.rec.Body.Len++
		if g.rec.Body.Len >= WinLen {
			// The winning move is not materialized; the banner reads the length.
			g.gameOver()
			g.notify.PlayFailure()
			return
		}
	}

	g.rec.Body.Advance(next)

	if ate {
		g.rec.Fruit = g.newFruit()
		g.notify.PlayEatCue()
		g.notify.PlayFlourish()
	}
}

// gameOver freezes the clock and ends the game.
func (g *Game) gameOver() {
	g.freezeTimer()
	g.rec.State = StateGameOver
	g.logger.Info("game over",
		"score", g.rec.Score(),
		"elapsed", g.rec.TimerStopped,
		"won", g.rec.Won(),
	)
}

// newFruit picks a uniformly random cell not covered by the snake.
func (g *Game) newFruit() Cell {
	var taken [MaxLen]bool
	for _, p := range g.rec.Body.Live() {
		taken[p.index()] = true
	}

	empty := make([]int, 0, MaxLen-int(g.rec.Body.Len))
	for i, used := range taken {
		if !used {
			empty = append(empty, i)
		}
	}
	if len(empty) == 0 {
		panic("snake: no empty cell for fruit")
	}
	return cellAt(empty[g.rng.Intn(len(empty))])
}

// SetNext records the requested direction for the next tick.
func (g *Game) SetNext(d Direction) {
	g.rec.Next = d
}

// Current returns the direction of the last step.
func (g *Game) Current() Direction {
	return g.rec.Current
}

// ToggleEndless flips Endless mode.
func (g *Game) ToggleEndless() {
	g.rec.Endless = !g.rec.Endless
}

// Pause freezes the clock and the simulation. Only a running game pauses.
func (g *Game) Pause() bool {
	if g.rec.State != StateLife {
		return false
	}
	g.freezeTimer()
	g.rec.State = StatePause
	return true
}

// Resume re-bases the clock on the frozen elapsed time and continues play.
func (g *Game) Resume() bool {
	if g.rec.State != StatePause {
		return false
	}
	g.rec.TimerStart = g.now() - g.rec.TimerStopped
	g.rec.State = StateLife
	return true
}

// Forfeit ends a running game immediately without a collision.
func (g *Game) Forfeit() {
	if g.rec.State == StateGameOver || g.rec.State == StatePause {
		return
	}
	g.gameOver()
}

type nopNotifier struct{}

func (nopNotifier) PlayFailure()      {}
func (nopNotifier) PlayEatCue()       {}
func (nopNotifier) PlayFlourish()     {}
func (nopNotifier) ForceBacklightOn() {}
func (nopNotifier) BacklightAuto()    {}
