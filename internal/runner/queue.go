package runner

import (
	"context"
	"time"

	"github.com/vovakirdan/pocket-snake/internal/core"
)

// MinQueueDepth is the smallest queue the loop accepts.
const MinQueueDepth = 8

// EventKind tells a queued event apart.
type EventKind uint8

const (
	EventTick EventKind = iota
	EventKey
)

// Event is one item of the merged input/timer queue. It is passed by value
// and never mutated after being queued.
type Event struct {
	Kind EventKind
	Key  core.KeyEvent // set for EventKey
}

// Queue is the bounded FIFO shared by the producers and the loop.
type Queue struct {
	ch chan Event
}

// NewQueue creates a queue holding depth events, at least MinQueueDepth.
func NewQueue(depth int) *Queue {
	if depth < MinQueueDepth {
		depth = MinQueueDepth
	}
	return &Queue{ch: make(chan Event, depth)}
}

// Cap returns the queue capacity.
func (q *Queue) Cap() int {
	return cap(q.ch)
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return len(q.ch)
}

// PutKey enqueues a key event, waiting for room until ctx is done.
// Key events are never dropped.
func (q *Queue) PutKey(ctx context.Context, ev core.KeyEvent) error {
	select {
	case q.ch <- Event{Kind: EventKey, Key: ev}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// PutTick enqueues a tick without blocking. A full queue drops the tick and
// reports false; the next period catches up.
func (q *Queue) PutTick() bool {
	select {
	case q.ch <- Event{Kind: EventTick}:
		return true
	default:
		return false
	}
}

// Get waits up to timeout for the next event. ok is false on timeout or when
// ctx is done.
func (q *Queue) Get(ctx context.Context, timeout time.Duration) (ev Event, ok bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev = <-q.ch:
		return ev, true
	case <-timer.C:
		return Event{}, false
	case <-ctx.Done():
		return Event{}, false
	}
}
