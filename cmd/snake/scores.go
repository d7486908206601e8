package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-snake/internal/storage"
)

var (
	flagLimit  int
	flagMode   string
	flagRecent bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best finished games",
	Long: `Display the best finished games, highest score first.
Ties go to the faster game.

Examples:
  snake scores
  snake scores --limit 20
  snake scores --mode endless
  snake scores --recent`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().StringVar(&flagMode, "mode", "all", "Mode filter: all, classic, endless")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest games instead of the best")
}

// parseMode maps the --mode flag to a history filter.
func parseMode(mode string) (storage.Filter, error) {
	switch mode {
	case "", "all":
		return storage.AllModes, nil
	case "classic":
		return storage.ClassicOnly, nil
	case "endless":
		return storage.EndlessOnly, nil
	default:
		return storage.AllModes, fmt.Errorf("unknown mode %q (want all, classic or endless)", mode)
	}
}

func runScores(cmd *cobra.Command, args []string) {
	filter, err := parseMode(flagMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}

	cfg, _ := mustLoadConfig()

	// Open history storage
	store, err := storage.Open(cfg.Paths.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(exitResource)
	}

	var entries []storage.Entry
	title := "High Scores"
	if flagRecent {
		title = "Recent Games"
		entries, err = store.Recent(filter, flagLimit)
	} else {
		entries, err = store.TopResults(filter, flagLimit)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(exitResource)
	}
	defer store.Close()

	fmt.Printf("%s - Snake (%s)\n", title, flagMode)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake' and finish a game to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-5s  %-8s  %-7s  %-6s  %s\n", "Rank", "Score", "Time", "Mode", "Result", "Date")
	fmt.Printf("  %-4s  %-5s  %-8s  %-7s  %-6s  %s\n", "----", "-----", "----", "----", "------", "----")

	for i, e := range entries {
		mode := "classic"
		if e.Endless {
			mode = "endless"
		}
		result := "lost"
		if e.Won {
			result = "WON"
		}
		fmt.Printf("  %-4d  %-5d  %02d:%02d:%02d  %-7s  %-6s  %s\n",
			i+1, e.Score, e.ElapsedSecs/3600, e.ElapsedSecs/60%60, e.ElapsedSecs%60,
			mode, result, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(filter); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Wins: %d\n", stats.BestScore, stats.GamesCount, stats.Wins)
	}
}
