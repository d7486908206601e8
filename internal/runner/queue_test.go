package runner

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/pocket-snake/internal/core"
)

func TestNewQueueMinimumDepth(t *testing.T) {
	tests := []struct {
		depth    int
		expected int
	}{
		{0, MinQueueDepth},
		{3, MinQueueDepth},
		{8, 8},
		{32, 32},
	}
	for _, tc := range tests {
		if got := NewQueue(tc.depth).Cap(); got != tc.expected {
			t.Errorf("NewQueue(%d).Cap() = %d, expected %d", tc.depth, got, tc.expected)
		}
	}
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue(8)
	ctx := context.Background()

	q.PutKey(ctx, core.Press(core.KeyUp)) //nolint:errcheck
	q.PutTick()
	q.PutKey(ctx, core.Release(core.KeyUp)) //nolint:errcheck

	want := []Event{
		{Kind: EventKey, Key: core.Press(core.KeyUp)},
		{Kind: EventTick},
		{Kind: EventKey, Key: core.Release(core.KeyUp)},
	}
	for i, w := range want {
		ev, ok := q.Get(ctx, time.Second)
		if !ok {
			t.Fatalf("Get() #%d timed out", i)
		}
		if ev != w {
			t.Errorf("Get() #%d = %+v, expected %+v", i, ev, w)
		}
	}
}

func TestQueueDropsTicksWhenFull(t *testing.T) {
	q := NewQueue(8)
	for i := 0; i < 8; i++ {
		if !q.PutTick() {
			t.Fatalf("PutTick() #%d = false, expected true", i)
		}
	}
	if q.PutTick() {
		t.Error("PutTick() on a full queue = true, expected false")
	}
	if q.Len() != 8 {
		t.Errorf("Len() = %d, expected 8", q.Len())
	}
}

func TestQueuePutKeyBlocksUntilCancel(t *testing.T) {
	q := NewQueue(8)
	for i := 0; i < 8; i++ {
		q.PutTick()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := q.PutKey(ctx, core.Press(core.KeyOk)); err == nil {
		t.Error("PutKey() on a full queue = nil, expected context error")
	}
}

func TestQueueGetTimeout(t *testing.T) {
	q := NewQueue(8)
	start := time.Now()
	if _, ok := q.Get(context.Background(), 10*time.Millisecond); ok {
		t.Error("Get() on an empty queue returned an event")
	}
	if time.Since(start) < 10*time.Millisecond {
		t.Error("Get() returned before the timeout")
	}
}

func TestTickerStartStop(t *testing.T) {
	q := NewQueue(8)
	tk := NewTicker(q)

	tk.Start(time.Millisecond)
	if tk.Period() != time.Millisecond {
		t.Errorf("Period() = %v, expected 1ms", tk.Period())
	}
	ev, ok := q.Get(context.Background(), time.Second)
	if !ok || ev.Kind != EventTick {
		t.Fatalf("Get() = %+v/%v, expected a tick", ev, ok)
	}

	tk.Stop()
	tk.Stop()
	if tk.Period() != 0 {
		t.Errorf("Period() after Stop() = %v, expected 0", tk.Period())
	}

	// Drain, then make sure nothing new arrives.
	for q.Len() > 0 {
		q.Get(context.Background(), time.Millisecond)
	}
	if _, ok := q.Get(context.Background(), 20*time.Millisecond); ok {
		t.Error("tick posted after Stop()")
	}
}

func TestTickerRestartChangesPeriod(t *testing.T) {
	tk := NewTicker(NewQueue(8))
	defer tk.Stop()

	tk.Start(time.Hour)
	tk.Start(2 * time.Hour)
	if tk.Period() != 2*time.Hour {
		t.Errorf("Period() = %v, expected 2h", tk.Period())
	}
}
