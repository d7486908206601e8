package snake

import (
	"testing"
	"time"

	"github.com/vovakirdan/pocket-snake/internal/core"
)

func newControlled() (fixture, *Controller, *fakeTicks) {
	f := newFixture()
	ticks := &fakeTicks{}
	c := NewController(f.game, ticks, DefaultSpeeds())
	c.Arm()
	return f, c, ticks
}

func TestControllerArm(t *testing.T) {
	_, _, ticks := newControlled()
	if !ticks.running || ticks.period != 250*time.Millisecond {
		t.Errorf("ticks = running %v period %v, expected running at 250ms", ticks.running, ticks.period)
	}

	f := newFixture()
	f.game.Pause()
	paused := &fakeTicks{}
	NewController(f.game, paused, DefaultSpeeds()).Arm()
	if paused.running {
		t.Error("Arm() started ticks for a paused game")
	}
}

func TestControllerDirectionPress(t *testing.T) {
	tests := []struct {
		key  core.Key
		want Direction
	}{
		{core.KeyUp, DirUp},
		{core.KeyDown, DirDown},
		{core.KeyLeft, DirLeft},
		{core.KeyRight, DirRight},
	}

	for _, tc := range tests {
		f, c, _ := newControlled()
		c.Handle(core.Press(tc.key))
		if got := f.game.Record().Next; got != tc.want {
			t.Errorf("Press(%v): Next = %v, expected %v", tc.key, got, tc.want)
		}
	}
}

func TestControllerBackPauses(t *testing.T) {
	f, c, ticks := newControlled()

	if exit := c.Handle(core.Press(core.KeyBack)); exit {
		t.Error("Press(Back) asked to exit")
	}
	if f.game.State() != StatePause {
		t.Fatalf("State = %v, expected pause", f.game.State())
	}
	if ticks.running {
		t.Error("ticks still running while paused")
	}

	// Arrows do not steer while paused.
	c.Handle(core.Press(core.KeyUp))
	if f.game.Record().Next != DirRight {
		t.Errorf("Next = %v, expected right", f.game.Record().Next)
	}

	c.Handle(core.Press(core.KeyOk))
	if f.game.State() != StateLife {
		t.Errorf("State = %v, expected life", f.game.State())
	}
	if !ticks.running || ticks.period != 250*time.Millisecond {
		t.Errorf("ticks = running %v period %v, expected running at 250ms", ticks.running, ticks.period)
	}
}

func TestControllerBackIgnoredOutsideLife(t *testing.T) {
	f, c, _ := newControlled()
	f.game.Forfeit()

	c.Handle(core.Press(core.KeyBack))
	if f.game.State() != StateGameOver {
		t.Errorf("State = %v, expected game_over", f.game.State())
	}
}

func TestControllerEndlessToggle(t *testing.T) {
	for _, state := range []Lifecycle{StatePause, StateGameOver} {
		f, c, _ := newControlled()
		if state == StatePause {
			f.game.Pause()
		} else {
			f.game.Forfeit()
		}

		c.Handle(core.Press(core.KeyLeft))
		if !f.game.Record().Endless {
			t.Errorf("%v: Endless = false after Left, expected true", state)
		}
		c.Handle(core.Press(core.KeyRight))
		if f.game.Record().Endless {
			t.Errorf("%v: Endless = true after Right, expected false", state)
		}
	}
}

func TestControllerOkRestarts(t *testing.T) {
	f, c, ticks := newControlled()
	f.game.Forfeit()
	ticks.Stop()

	c.Handle(core.Press(core.KeyOk))
	rec := f.game.Record()
	if rec.State != StateLife || rec.Body.Len != StartLen {
		t.Errorf("after Ok: State = %v Len = %d, expected life/%d", rec.State, rec.Body.Len, StartLen)
	}
	if !ticks.running {
		t.Error("ticks not re-armed after restart")
	}
}

func TestControllerLongPressSpeed(t *testing.T) {
	tests := []struct {
		name string
		key  core.Key
		want time.Duration
	}{
		{"same direction accelerates", core.KeyRight, 125 * time.Millisecond},
		{"opposite direction brakes", core.KeyLeft, 500 * time.Millisecond},
		{"orthogonal keeps rate", core.KeyUp, 250 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, c, ticks := newControlled()
			c.Handle(core.Press(tc.key))
			c.Handle(core.Long(tc.key))
			if ticks.period != tc.want {
				t.Errorf("period = %v, expected %v", ticks.period, tc.want)
			}

			c.Handle(core.Release(tc.key))
			if ticks.period != 250*time.Millisecond {
				t.Errorf("period after release = %v, expected 250ms", ticks.period)
			}
		})
	}
}

func TestControllerPausedIgnoresHold(t *testing.T) {
	f, c, ticks := newControlled()
	c.Handle(core.Press(core.KeyBack))
	starts := ticks.starts

	c.Handle(core.Long(core.KeyRight))
	c.Handle(core.Release(core.KeyRight))
	if ticks.starts != starts || ticks.running {
		t.Error("hold while paused touched the ticks")
	}
	if f.game.Record().Next != DirRight {
		t.Errorf("Next = %v, expected right", f.game.Record().Next)
	}
}

func TestControllerLongBack(t *testing.T) {
	t.Run("forfeits a running game", func(t *testing.T) {
		f, c, _ := newControlled()
		if exit := c.Handle(core.Long(core.KeyBack)); exit {
			t.Error("Long(Back) asked to exit from life")
		}
		if f.game.State() != StateGameOver {
			t.Errorf("State = %v, expected game_over", f.game.State())
		}
	})

	t.Run("exits from pause", func(t *testing.T) {
		f, c, _ := newControlled()
		c.Handle(core.Press(core.KeyBack))
		saves := f.store.saves
		if exit := c.Handle(core.Long(core.KeyBack)); !exit {
			t.Error("Long(Back) did not exit from pause")
		}
		if f.store.saves != saves+1 {
			t.Errorf("saves = %d, expected %d", f.store.saves, saves+1)
		}
		if f.store.last.State != StatePause {
			t.Errorf("saved State = %v, expected pause", f.store.last.State)
		}
	})

	t.Run("exits from game over", func(t *testing.T) {
		f, c, _ := newControlled()
		f.game.Forfeit()
		if exit := c.Handle(core.Long(core.KeyBack)); !exit {
			t.Error("Long(Back) did not exit from game_over")
		}
		if f.store.last.State != StateGameOver {
			t.Errorf("saved State = %v, expected game_over", f.store.last.State)
		}
	})
}
