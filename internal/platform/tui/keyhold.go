package tui

import (
	"time"

	"github.com/vovakirdan/pocket-snake/internal/core"
)

// HoldTimings configure key-hold synthesis.
type HoldTimings struct {
	RepeatDelay time.Duration // how long to wait for the first auto-repeat
	RepeatGap   time.Duration // max gap between auto-repeats
	LongPress   time.Duration // hold time before LongPress fires
}

// Holder turns the press-only key stream of a terminal into Press,
// LongPress and Release events. Terminals auto-repeat only the last key, so
// one key is tracked at a time; pressing another releases the previous one.
type Holder struct {
	t         HoldTimings
	active    bool
	key       core.Key
	pressedAt time.Time
	lastSeen  time.Time
	repeating bool
	longSent  bool
}

// NewHolder creates a holder with the given timings.
func NewHolder(t HoldTimings) *Holder {
	return &Holder{t: t}
}

// Observe handles one key message from the terminal.
func (h *Holder) Observe(k core.Key, now time.Time) []core.KeyEvent {
	if h.active && h.key == k {
		h.repeating = true
		h.lastSeen = now
		return h.checkLong(now)
	}

	var out []core.KeyEvent
	if h.active {
		out = append(out, core.Release(h.key))
	}
	h.active = true
	h.key = k
	h.pressedAt = now
	h.lastSeen = now
	h.repeating = false
	h.longSent = false
	return append(out, core.Press(k))
}

// Poll releases the held key once its auto-repeat has stopped.
func (h *Holder) Poll(now time.Time) []core.KeyEvent {
	if !h.active {
		return nil
	}
	limit := h.t.RepeatDelay
	if h.repeating {
		limit = h.t.RepeatGap
	}
	if now.Sub(h.lastSeen) > limit {
		h.active = false
		return []core.KeyEvent{core.Release(h.key)}
	}
	return h.checkLong(now)
}

func (h *Holder) checkLong(now time.Time) []core.KeyEvent {
	if h.longSent || !h.repeating || now.Sub(h.pressedAt) < h.t.LongPress {
		return nil
	}
	h.longSent = true
	return []core.KeyEvent{core.Long(h.key)}
}
