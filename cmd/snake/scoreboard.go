package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pocket-snake/internal/platform/tui"
	"github.com/vovakirdan/pocket-snake/internal/storage"
)

var scoreboardCmd = &cobra.Command{
	Use:   "scoreboard",
	Short: "Browse the game history",
	Long: `Open an interactive table of finished games.
Tab switches between all, classic and endless games.`,
	Args: cobra.NoArgs,
	Run:  runScoreboard,
}

func runScoreboard(cmd *cobra.Command, args []string) {
	cfg, _ := mustLoadConfig()

	store, err := storage.Open(cfg.Paths.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(exitResource)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.RunScoreboard(store, width, height)
	store.Close()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", runErr)
		os.Exit(exitResource)
	}
}
