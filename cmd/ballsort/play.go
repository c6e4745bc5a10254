package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ballsort/internal/games/ballsort"
	"github.com/vovakirdan/ballsort/internal/platform/tui"
	"github.com/vovakirdan/ballsort/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a puzzle",
	Long: `Start a puzzle directly. Solving it returns to the home menu.

Controls:
  1-6          - Tap a tube (pick up its top run, or drop the held run)
  Left/Right   - Move the tube cursor
  Space/Enter  - Tap the tube under the cursor
  Mouse click  - Tap a tube
  R            - Reshuffle
  Esc/B        - Home menu
  Q/Ctrl+C     - Quit

Variants:
  ballsort          - A run moves only as far as the destination has room
                      (rules.run_policy in the config selects the rule)
  ballsort_classic  - The whole run always moves, even past four balls

Examples:
  ballsort play
  ballsort play ballsort_classic
  ballsort play --seed 42 --player alice`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with results (default $USER)")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := ballsort.IDStandard
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'ballsort list' to see available variants", gameID)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(tui.SessionOptions{
		Store:     store,
		Config:    runtimeConfig(),
		Player:    playerName(),
		StartGame: gameID,
	})
}
