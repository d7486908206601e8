// Package notify implements the game's cue player for a terminal: an audible
// bell, a log trail, and a fan-out that combines them.
package notify

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-snake/internal/games/snake"
)

const bel = "\a"

// Bell rings the terminal bell for the failure and eat cues.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell creates a bell writing to w, usually the controlling terminal.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

func (b *Bell) ring() {
	b.mu.Lock()
	defer b.mu.Unlock()
	//nolint:errcheck // Best-effort cue, the game continues regardless
	io.WriteString(b.w, bel)
}

func (b *Bell) PlayFailure()      { b.ring() }
func (b *Bell) PlayEatCue()       { b.ring() }
func (b *Bell) PlayFlourish()     {}
func (b *Bell) ForceBacklightOn() {}
func (b *Bell) BacklightAuto()    {}

// Log records every cue at debug level and backlight changes at info level.
type Log struct {
	logger *log.Logger
}

// NewLog creates a logging notifier.
func NewLog(l *log.Logger) *Log {
	return &Log{logger: l}
}

func (n *Log) PlayFailure()      { n.logger.Debug("cue", "name", "failure") }
func (n *Log) PlayEatCue()       { n.logger.Debug("cue", "name", "eat") }
func (n *Log) PlayFlourish()     { n.logger.Debug("cue", "name", "flourish") }
func (n *Log) ForceBacklightOn() { n.logger.Info("backlight", "mode", "on") }
func (n *Log) BacklightAuto()    { n.logger.Info("backlight", "mode", "auto") }

// Multi forwards every cue to each notifier in order.
type Multi []snake.Notifier

// Join builds a Multi, skipping nil entries.
func Join(ns ...snake.Notifier) Multi {
	m := make(Multi, 0, len(ns))
	for _, n := range ns {
		if n != nil {
			m = append(m, n)
		}
	}
	return m
}

func (m Multi) PlayFailure() {
	for _, n := range m {
		n.PlayFailure()
	}
}

func (m Multi) PlayEatCue() {
	for _, n := range m {
		n.PlayEatCue()
	}
}

func (m Multi) PlayFlourish() {
	for _, n := range m {
		n.PlayFlourish()
	}
}

func (m Multi) ForceBacklightOn() {
	for _, n := range m {
		n.ForceBacklightOn()
	}
}

func (m Multi) BacklightAuto() {
	for _, n := range m {
		n.BacklightAuto()
	}
}

var (
	_ snake.Notifier = (*Bell)(nil)
	_ snake.Notifier = (*Log)(nil)
	_ snake.Notifier = Multi(nil)
)
