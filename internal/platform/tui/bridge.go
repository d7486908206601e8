package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocket-snake/internal/games/snake"
)

// FrameMsg carries the latest game snapshot into the Bubble Tea loop.
type FrameMsg struct {
	Snapshot snake.Snapshot
	Flash    bool // a flourish was played since the previous frame
}

// Bridge hands snapshots from the game loop to the UI without ever blocking
// the game loop. Only the latest snapshot is kept. It implements
// runner.Presenter and the flourish part of snake.Notifier.
type Bridge struct {
	mu    sync.Mutex
	snap  snake.Snapshot
	has   bool
	flash bool
	ready chan struct{}
	done  chan struct{}
	once  sync.Once
}

// NewBridge creates an empty bridge.
func NewBridge() *Bridge {
	return &Bridge{
		ready: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

// Present stores s as the latest frame.
func (b *Bridge) Present(s snake.Snapshot) {
	b.mu.Lock()
	b.snap = s
	b.has = true
	b.mu.Unlock()

	select {
	case b.ready <- struct{}{}:
	default:
	}
}

// Close wakes up a pending waitForFrame for good.
func (b *Bridge) Close() {
	b.once.Do(func() { close(b.done) })
}

func (b *Bridge) PlayFlourish() {
	b.mu.Lock()
	b.flash = true
	b.mu.Unlock()
}

func (b *Bridge) PlayFailure()      {}
func (b *Bridge) PlayEatCue()       {}
func (b *Bridge) ForceBacklightOn() {}
func (b *Bridge) BacklightAuto()    {}

// take returns the latest frame and clears the flash flag.
func (b *Bridge) take() (FrameMsg, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	msg := FrameMsg{Snapshot: b.snap, Flash: b.flash}
	b.flash = false
	return msg, b.has
}

// waitForFrame returns a command that waits for the next frame.
func (b *Bridge) waitForFrame() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-b.ready:
		case <-b.done:
			return nil
		}
		msg, ok := b.take()
		if !ok {
			return nil
		}
		return msg
	}
}
