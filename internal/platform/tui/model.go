package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocket-snake/internal/core"
	"github.com/vovakirdan/pocket-snake/internal/games/snake"
	"github.com/vovakirdan/pocket-snake/internal/runner"
)

// Sender queues key events for the game loop.
type Sender interface {
	Send(ctx context.Context, ev core.KeyEvent) error
}

// LoopDoneMsg reports that the game loop has returned.
type LoopDoneMsg struct {
	Err error
}

// Options configure the game screen.
type Options struct {
	Hold      HoldTimings
	BestScore int           // best recorded score, shown in the status line
	FlashFor  time.Duration // how long the frame stays red after eating
}

// Model is the Bubble Tea model for the game screen. It owns no game state:
// keys go to the loop through the Sender and frames come back via the Bridge.
type Model struct {
	ctx        context.Context
	cancel     context.CancelFunc
	sender     Sender
	bridge     *Bridge
	keys       GameKeyMap
	help       help.Model
	holder     *Holder
	screen     *core.Screen
	frame      snake.Snapshot
	hasFrame   bool
	flashFor   time.Duration
	flashUntil time.Time
	now        func() time.Time
	best       int
	width      int
	height     int
	stopping   bool
	quitting   bool
	err        error
}

// NewModel creates the game screen. cancel stops the game loop.
func NewModel(ctx context.Context, cancel context.CancelFunc, sender Sender, bridge *Bridge, opts Options) Model {
	if opts.FlashFor <= 0 {
		opts.FlashFor = 100 * time.Millisecond
	}
	return Model{
		ctx:      ctx,
		cancel:   cancel,
		sender:   sender,
		bridge:   bridge,
		keys:     DefaultGameKeyMap(),
		help:     help.New(),
		holder:   NewHolder(opts.Hold),
		screen:   core.NewScreen(snake.ScreenW, snake.ScreenH),
		flashFor: opts.FlashFor,
		now:      time.Now,
		best:     opts.BestScore,
	}
}

// Init starts listening for frames and polling held keys.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.bridge.waitForFrame(), pollCmd(pollInterval))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case PollMsg:
		m.send(m.holder.Poll(time.Time(msg)))
		return m, pollCmd(pollInterval)

	case FrameMsg:
		m.frame = msg.Snapshot
		m.hasFrame = true
		if msg.Flash {
			m.flashUntil = m.now().Add(m.flashFor)
		}
		if rec := m.frame.Record; rec.State == snake.StateGameOver && rec.Score() > m.best {
			m.best = rec.Score()
		}
		return m, m.bridge.waitForFrame()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case LoopDoneMsg:
		m.quitting = true
		m.err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		// The loop saves on cancellation and then reports LoopDoneMsg.
		if !m.stopping {
			m.stopping = true
			m.cancel()
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if k, ok := m.keys.Button(msg); ok && !m.stopping {
		m.send(m.holder.Observe(k, m.now()))
	}
	return m, nil
}

func (m Model) send(events []core.KeyEvent) {
	for _, ev := range events {
		if err := m.sender.Send(m.ctx, ev); err != nil {
			return
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	needW, needH := snake.ScreenW, snake.ScreenH+2
	if m.width > 0 && (m.width < needW || m.height < needH) {
		return warnStyle.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d", needW, needH, m.width, m.height))
	}
	if !m.hasFrame {
		return statusStyle.Render("Loading...")
	}

	m.screen.Clear()
	snake.Render(m.screen, m.frame, snake.RenderOptions{Flash: m.now().Before(m.flashUntil)})

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) status() string {
	rec := m.frame.Record
	mode := "classic"
	if rec.Endless {
		mode = "endless"
	}
	e := m.frame.Elapsed
	return fmt.Sprintf(" Score %d  Best %d  %02d:%02d:%02d  %s",
		rec.Score(), max(m.best, rec.Score()), e/3600, e/60%60, e%60, mode)
}

// Err returns the loop error seen before quitting.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program and the game loop and returns once both
// have finished. The record is saved by the loop before it returns.
func Run(ctx context.Context, r *runner.Runner, bridge *Bridge, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewModel(ctx, cancel, r, bridge, opts)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	done := make(chan error, 1)
	go func() {
		err := r.Run(ctx)
		done <- err
		bridge.Close()
		p.Send(LoopDoneMsg{Err: err})
	}()

	_, err := p.Run()
	// A program killed by a signal still has to stop and save the loop.
	cancel()
	loopErr := <-done

	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return loopErr
}
