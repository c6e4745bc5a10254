package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ballsort/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start at the home menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a puzzle.
After a puzzle is solved, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start puzzle
  Tab          - Best results
  Q            - Quit

Examples:
  ballsort menu
  ballsort menu --db ./results.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with results (default $USER)")
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(tui.SessionOptions{
		Store:  store,
		Config: runtimeConfig(),
		Player: playerName(),
	})
}
