package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pocket-snake/internal/config"
	"github.com/vovakirdan/pocket-snake/internal/core"
	"github.com/vovakirdan/pocket-snake/internal/games/snake"
	"github.com/vovakirdan/pocket-snake/internal/notify"
	"github.com/vovakirdan/pocket-snake/internal/platform/tui"
	"github.com/vovakirdan/pocket-snake/internal/runner"
	"github.com/vovakirdan/pocket-snake/internal/savefile"
	"github.com/vovakirdan/pocket-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start playing. A saved game is resumed; paused and finished games are
shown as they were left.

Controls:
  Arrows/WASD  - Steer (hold to speed up, hold the opposite way to slow down)
  Left/Right   - Toggle Endless mode while paused or after game over
  Enter/Space  - Resume, or start a new game after game over
  Esc/⌫        - Pause; hold to give up, hold again to save and exit
  ?            - Help
  Ctrl+C       - Save and quit

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, source := mustLoadConfig()

	logger, closer, err := newLogger(cfg, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}
	defer closer.Close()
	logger.Info("starting", "config", source, "seed", cfg.Seed)

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: snake needs an interactive terminal")
		closer.Close()
		os.Exit(exitResource)
	}

	rt := core.DefaultConfig()
	rt.Seed = cfg.Seed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	if rt.ScreenW < snake.ScreenW || rt.ScreenH < snake.ScreenH+2 {
		logger.Warn("terminal smaller than the board", "width", rt.ScreenW, "height", rt.ScreenH)
	}

	if code := play(cfg, rt, logger); code != exitOK {
		closer.Close()
		os.Exit(code)
	}
}

// play wires the game together and runs it. It returns the process exit code.
func play(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) int {
	save, err := savefile.New(cfg.Paths.Save)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}

	// History is optional: the game still works without it.
	store, err := storage.Open(cfg.Paths.DB)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	bridge := tui.NewBridge()
	cues := []snake.Notifier{notify.NewLog(logger), bridge}
	if cfg.Notify.Bell {
		cues = append(cues, notify.NewBell(os.Stderr))
	}
	notifier := notify.Join(cues...)

	gameOpts := []snake.Option{
		snake.WithNotifier(notifier),
		snake.WithStore(save),
		snake.WithLogger(logger),
	}
	if rt.Seed != 0 {
		gameOpts = append(gameOpts, snake.WithSeed(rt.Seed))
	}
	game := snake.New(gameOpts...)
	restore(game, save, logger)

	runOpts := []runner.Option{
		runner.WithNotifier(notifier),
		runner.WithPresenter(bridge),
		runner.WithLogger(logger),
	}
	best := 0
	if store != nil {
		runOpts = append(runOpts, runner.WithResults(store))
		if b, err := store.BestScore(storage.AllModes); err == nil {
			best = b
		}
	}
	r := runner.New(game, runner.Config{
		QueueDepth: cfg.Loop.QueueDepth,
		IdleRedraw: cfg.Loop.IdleRedraw,
		Speeds: snake.Speeds{
			Normal: cfg.Tick.Normal,
			Fast:   cfg.Tick.Fast,
			Slow:   cfg.Tick.Slow,
		},
	}, runOpts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = tui.Run(ctx, r, bridge, tui.Options{
		Hold: tui.HoldTimings{
			RepeatDelay: cfg.Input.RepeatDelay,
			RepeatGap:   cfg.Input.RepeatGap,
			LongPress:   cfg.Input.LongPress,
		},
		BestScore: best,
	})
	if err != nil {
		logger.Error("game loop failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		return exitResource
	}

	final := game.Record()
	logger.Info("exit", "state", final.State, "score", final.Score())
	return exitOK
}

// restore loads the saved game or starts a new one.
func restore(game *snake.Game, save *savefile.File, logger *log.Logger) {
	rec, err := save.Load()
	switch {
	case err == nil:
		game.Restore(rec)
	case errors.Is(err, savefile.ErrNoSave):
		logger.Info("no save, starting a new game", "path", save.Path())
		game.NewGame()
	default:
		logger.Warn("save unreadable, starting a new game", "path", save.Path(), "error", err)
		game.NewGame()
	}
}
