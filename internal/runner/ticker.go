package runner

import (
	"sync"
	"time"
)

// Ticker posts tick events into a queue at an adjustable period.
// It implements snake.TickSource.
type Ticker struct {
	mu     sync.Mutex
	q      *Queue
	period time.Duration
	stop   chan struct{}
	done   chan struct{}
}

// NewTicker creates a stopped ticker feeding q.
func NewTicker(q *Queue) *Ticker {
	return &Ticker{q: q}
}

// Start (re)arms the ticker with period. Restarting resets the phase.
func (t *Ticker) Start(period time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.period = period
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	go t.loop(period, t.stop, t.done)
}

// Stop halts the ticker. No tick is posted after Stop returns.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// Period returns the active period, or 0 when stopped.
func (t *Ticker) Period() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop == nil {
		return 0
	}
	return t.period
}

func (t *Ticker) stopLocked() {
	if t.stop == nil {
		return
	}
	close(t.stop)
	<-t.done
	t.stop, t.done = nil, nil
}

func (t *Ticker) loop(period time.Duration, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	tk := time.NewTicker(period)
	defer tk.Stop()

	for {
		select {
		case <-stop:
			return
		case <-tk.C:
			t.q.PutTick()
		}
	}
}
