package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ballsort/internal/games/ballsort"
	"github.com/vovakirdan/ballsort/internal/platform/tui"
	"github.com/vovakirdan/ballsort/internal/registry"
	"github.com/vovakirdan/ballsort/internal/storage"
)

var (
	flagRecent bool
	flagClear  bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show best results",
	Long: `Display the best results for a puzzle variant: fewest moves first,
ties broken by the faster solve.

Examples:
  ballsort scores
  ballsort scores ballsort_classic
  ballsort scores --recent
  ballsort scores ballsort --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent solves across all variants")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all results of the variant")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := ballsort.IDStandard
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'ballsort list' to see available variants", gameID)
	}

	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearResults(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared results for %s.\n", gameID)
		return nil
	case flagRecent:
		return printRecent(store)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	results, err := store.BestResults(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best Results - %s\n", game.Title())
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No puzzles solved yet.")
		fmt.Println()
		fmt.Printf("Play 'ballsort play %s' to record the first result!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-5s  %-6s  %-12s  %s\n", "Rank", "Moves", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-5s  %-6s  %-12s  %s\n", "----", "-----", "----", "------", "----")
	for i, r := range results {
		fmt.Printf("  %-4d  %-5d  %-6s  %-12s  %s\n",
			i+1, r.Moves, tui.FormatElapsed(r.Duration), r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.Wins > 0 {
		fmt.Println()
		fmt.Printf("Solved %d times, %.1f moves on average, fastest %s\n",
			stats.Wins, stats.AvgMoves, tui.FormatElapsed(stats.Fastest))
	}
	return nil
}

func printRecent(store *storage.Store) error {
	results, err := store.RecentResults(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Recent Solves")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No puzzles solved yet.")
		return nil
	}

	fmt.Printf("  %-18s  %-5s  %-6s  %-12s  %s\n", "Variant", "Moves", "Time", "Player", "Date")
	fmt.Printf("  %-18s  %-5s  %-6s  %-12s  %s\n", "-------", "-----", "----", "------", "----")
	for _, r := range results {
		fmt.Printf("  %-18s  %-5d  %-6s  %-12s  %s\n",
			r.GameID, r.Moves, tui.FormatElapsed(r.Duration), r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
