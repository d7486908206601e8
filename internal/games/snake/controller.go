package snake

import (
	"time"

	"github.com/vovakirdan/pocket-snake/internal/core"
)

// TickSource is the periodic timer that drives Step.
// Start re-arms the timer with a new period; Stop is idempotent.
type TickSource interface {
	Start(period time.Duration)
	Stop()
}

// Speeds are the tick periods used for normal play, holding the current
// direction (accelerate) and holding the opposite one (brake).
type Speeds struct {
	Normal time.Duration
	Fast   time.Duration
	Slow   time.Duration
}

// DefaultSpeeds returns four ticks per second with 2× speed-up and slow-down.
func DefaultSpeeds() Speeds {
	return Speeds{
		Normal: 250 * time.Millisecond,
		Fast:   125 * time.Millisecond,
		Slow:   500 * time.Millisecond,
	}
}

// Controller translates key events into game intents and tick-rate changes.
// It only ever writes the requested direction, the Endless flag and
// lifecycle transitions requested by the player.
type Controller struct {
	game   *Game
	ticks  TickSource
	speeds Speeds
}

// NewController creates a controller for g driving ticks.
func NewController(g *Game, ticks TickSource, speeds Speeds) *Controller {
	return &Controller{game: g, ticks: ticks, speeds: speeds}
}

// Arm starts the tick source unless the game is paused.
func (c *Controller) Arm() {
	if c.game.State() == StatePause {
		c.ticks.Stop()
		return
	}
	c.ticks.Start(c.speeds.Normal)
}

// Handle applies one key event. It returns true when the player asked to
// leave the app; the record has been saved by then.
func (c *Controller) Handle(ev core.KeyEvent) (exit bool) {
	switch ev.Type {
	case core.InputPress:
		c.press(ev.Key)
	case core.InputLongPress:
		return c.longPress(ev.Key)
	case core.InputRelease:
		// Releasing after a pause must not restart the timer.
		if ev.Key.IsDirectional() && c.game.State() != StatePause {
			c.ticks.Start(c.speeds.Normal)
		}
	}
	return false
}

func (c *Controller) press(k core.Key) {
	state := c.game.State()
	switch k {
	case core.KeyUp, core.KeyDown:
		if state != StatePause {
			c.game.SetNext(keyDirection(k))
		}
	case core.KeyLeft, core.KeyRight:
		if state == StatePause || state == StateGameOver {
			c.game.ToggleEndless()
		} else {
			c.game.SetNext(keyDirection(k))
		}
	case core.KeyOk:
		switch state {
		case StateGameOver:
			c.game.NewGame()
			c.ticks.Start(c.speeds.Normal)
		case StatePause:
			c.game.Resume()
			c.ticks.Start(c.speeds.Normal)
		}
	case core.KeyBack:
		if state == StateLife {
			c.ticks.Stop()
			c.game.Pause()
		}
	}
}

func (c *Controller) longPress(k core.Key) bool {
	state := c.game.State()
	if k == core.KeyBack {
		if state == StatePause || state == StateGameOver {
			c.game.Save()
			return true
		}
		c.game.Forfeit()
		return false
	}
	if !k.IsDirectional() || state == StatePause {
		return false
	}

	d := keyDirection(k)
	c.game.SetNext(d)
	switch c.game.Current() {
	case d:
		c.ticks.Start(c.speeds.Fast)
	case d.Opposite():
		c.ticks.Start(c.speeds.Slow)
	}
	return false
}

// keyDirection maps an arrow key to its direction.
func keyDirection(k core.Key) Direction {
	switch k {
	case core.KeyUp:
		return DirUp
	case core.KeyDown:
		return DirDown
	case core.KeyLeft:
		return DirLeft
	default:
		return DirRight
	}
}
