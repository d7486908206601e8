package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-snake/internal/savefile"
	"github.com/vovakirdan/pocket-snake/internal/storage"
)

var flagHistory bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved game",
	Long: `Delete the saved game so the next start is a fresh game.
With --history the finished-games history is cleared as well.`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagHistory, "history", false, "Also clear the game history")
}

func runReset(cmd *cobra.Command, args []string) {
	cfg, _ := mustLoadConfig()

	save, err := savefile.New(cfg.Paths.Save)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}
	if err := save.Remove(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitResource)
	}
	fmt.Printf("Removed %s\n", save.Path())

	if !flagHistory {
		return
	}
	store, err := storage.Open(cfg.Paths.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(exitResource)
	}
	defer store.Close()
	if err := store.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Println("History cleared")
}
