package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagInteractive bool
	flagRecent      bool
	flagLimit       int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history and the high score",
	Long: `Display the best runs recorded in the history database, the
aggregate stats and the saved high score.

Examples:
  flappy scores
  flappy scores --recent --limit 5
  flappy scores -i
  flappy scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a table")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest runs instead of the best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history (the high score is kept)")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(flappy.ID); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, flappy.ID, "Flappy Bird", width, height); err != nil {
			return fmt.Errorf("running scoreboard: %w", err)
		}
		return nil
	}

	var runs []storage.Run
	if flagRecent {
		runs, err = store.RecentRuns(flappy.ID, flagLimit)
	} else {
		runs, err = store.TopRuns(flappy.ID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	heading := "Best runs"
	if flagRecent {
		heading = "Recent runs"
	}
	fmt.Printf("%s - Flappy Bird\n", heading)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' to set the first high score!")
	} else {
		fmt.Printf("  %-4s  %-6s  %-12s  %-6s  %-8s  %s\n", "Rank", "Score", "Player", "Ticks", "Cause", "Date")
		fmt.Printf("  %-4s  %-6s  %-12s  %-6s  %-8s  %s\n", "----", "-----", "------", "-----", "-----", "----")
		for i, r := range runs {
			fmt.Printf("  %-4d  %-6d  %-12s  %-6d  %-8s  %s\n",
				i+1, r.Score, r.Player, r.Ticks, r.Cause, r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	fmt.Println()
	if stats, err := store.Stats(flappy.ID); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Games: %d  Average: %.1f  Players: %d\n", stats.GamesCount, stats.AvgScore, stats.Players)
	}

	// The file high score is what local play reads; the database one is
	// what serve reads. Show both when they are known.
	file, err := highScoreStore(flagHighScore, false, logging.Discard())
	if err == nil {
		fmt.Printf("Best (local): %d\n", file.Load())
	}
	if best, err := store.HighScore(flappy.ID); err == nil && best > 0 {
		fmt.Printf("Best (server): %d\n", best)
	}
	if best, err := store.BestRun(flappy.ID); err == nil && best > 0 {
		fmt.Printf("Best (history): %d\n", best)
	}
	return nil
}
