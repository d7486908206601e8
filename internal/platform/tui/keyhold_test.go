package tui

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/pocket-snake/internal/core"
)

var testTimings = HoldTimings{
	RepeatDelay: 500 * time.Millisecond,
	RepeatGap:   100 * time.Millisecond,
	LongPress:   400 * time.Millisecond,
}

func TestHolderTap(t *testing.T) {
	h := NewHolder(testTimings)
	t0 := time.Unix(0, 0)

	got := h.Observe(core.KeyUp, t0)
	if want := []core.KeyEvent{core.Press(core.KeyUp)}; !reflect.DeepEqual(got, want) {
		t.Errorf("Observe() = %v, expected %v", got, want)
	}
	if got := h.Poll(t0.Add(400 * time.Millisecond)); got != nil {
		t.Errorf("Poll() before repeat delay = %v, expected nothing", got)
	}
	got = h.Poll(t0.Add(600 * time.Millisecond))
	if want := []core.KeyEvent{core.Release(core.KeyUp)}; !reflect.DeepEqual(got, want) {
		t.Errorf("Poll() after repeat delay = %v, expected %v", got, want)
	}
	if got := h.Poll(t0.Add(time.Second)); got != nil {
		t.Errorf("Poll() after release = %v, expected nothing", got)
	}
}

func TestHolderLongPress(t *testing.T) {
	h := NewHolder(testTimings)
	t0 := time.Unix(0, 0)
	h.Observe(core.KeyRight, t0)

	var events []core.KeyEvent
	// Auto-repeat every 50ms starting after 300ms.
	for at := 300 * time.Millisecond; at <= 700*time.Millisecond; at += 50 * time.Millisecond {
		events = append(events, h.Observe(core.KeyRight, t0.Add(at))...)
		events = append(events, h.Poll(t0.Add(at+10*time.Millisecond))...)
	}
	if want := []core.KeyEvent{core.Long(core.KeyRight)}; !reflect.DeepEqual(events, want) {
		t.Errorf("events while held = %v, expected %v", events, want)
	}

	got := h.Poll(t0.Add(900 * time.Millisecond))
	if want := []core.KeyEvent{core.Release(core.KeyRight)}; !reflect.DeepEqual(got, want) {
		t.Errorf("Poll() after repeats stop = %v, expected %v", got, want)
	}
}

func TestHolderKeySwitchReleases(t *testing.T) {
	h := NewHolder(testTimings)
	t0 := time.Unix(0, 0)
	h.Observe(core.KeyUp, t0)

	got := h.Observe(core.KeyLeft, t0.Add(50*time.Millisecond))
	want := []core.KeyEvent{core.Release(core.KeyUp), core.Press(core.KeyLeft)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Observe() = %v, expected %v", got, want)
	}
	got = h.Poll(t0.Add(650 * time.Millisecond))
	want = []core.KeyEvent{core.Release(core.KeyLeft)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Poll() = %v, expected %v", got, want)
	}
}

func TestHolderNoLongWithoutRepeat(t *testing.T) {
	h := NewHolder(testTimings)
	t0 := time.Unix(0, 0)
	h.Observe(core.KeyBack, t0)

	if got := h.Poll(t0.Add(450 * time.Millisecond)); got != nil {
		t.Errorf("Poll() = %v, expected no LongPress without auto-repeat", got)
	}
}
