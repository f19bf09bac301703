package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/highscore"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	flagStats bool
	flagTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high-score table",
	Long: `Display the top 10 high scores.

With --stats the game history kept by the SQLite store is summarized as
well. YAML stores keep no history.

Examples:
  asteroids scores
  asteroids scores --stats
  asteroids scores --db ./scores.yaml
  asteroids scores --tui`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Also show game history statistics")
	scoresCmd.Flags().BoolVar(&flagTUI, "tui", false, "Open the interactive scoreboard")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening score store: %w", err)
	}
	defer closeStore(store)

	if flagTUI {
		rt := runtimeConfig()
		return tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
	}

	entries, err := store.Load()
	if err != nil {
		return fmt.Errorf("reading high scores: %w", err)
	}
	printScores(os.Stdout, highscore.Normalize(entries))

	if !flagStats {
		return nil
	}

	fmt.Println()
	stats, err := store.Stats()
	switch {
	case errors.Is(err, storage.ErrNoHistory):
		fmt.Println("This store keeps no game history; use a SQLite --db for statistics.")
		return nil
	case err != nil:
		return fmt.Errorf("reading statistics: %w", err)
	case stats.GamesCount == 0:
		fmt.Println("No games played yet.")
		return nil
	}
	fmt.Println(tui.FormatStats(stats))
	return nil
}

// printScores writes the table as aligned text.
func printScores(w io.Writer, entries []highscore.Entry) {
	fmt.Fprintln(w, "High Scores - Asteroids")
	fmt.Fprintln(w)

	if highscore.Best(entries) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'asteroids play' to set the first high score!")
		return
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %s\n", "Rank", "Initials", "Score")
	fmt.Fprintf(w, "  %-4s  %-8s  %s\n", "----", "--------", "-----")
	for i, e := range entries {
		initials := e.Initials
		if initials == "" {
			initials = "--"
		}
		fmt.Fprintf(w, "  %-4d  %-8s  %d\n", i+1, initials, e.Score)
	}
}
