// ballsort is a terminal ball sort puzzle: sort the colored balls so that
// every tube holds a single color.
//
// Usage:
//
//	ballsort list              - List available puzzle variants
//	ballsort play [variant]    - Play a puzzle (default: ballsort)
//	ballsort menu              - Start at the home menu
//	ballsort serve             - Start SSH server for remote play
//	ballsort scores [variant]  - Show best results
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default from config: 30)
//	--seed <value>   - Set RNG seed for a reproducible shuffle
//	--db <path>      - Set database path (default: ~/.ballsort/results.db)
//	--config <path>  - Use a specific config file
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ballsort/internal/config"
	"github.com/vovakirdan/ballsort/internal/core"
	"github.com/vovakirdan/ballsort/internal/games/ballsort"
	"github.com/vovakirdan/ballsort/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagPlayer string

	// appConfig is loaded before every command runs.
	appConfig = config.DefaultBallSortConfig()

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "ballsort"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ballsort",
	Short: "Ball Sort - sort colored balls into tubes in your terminal",
	Long: `Ball Sort is a terminal puzzle. Four tubes start with shuffled balls
of four colors and two tubes start empty. Move balls between tubes until
every color sits in a tube of its own.

Available commands:
  list     - Show puzzle variants
  play     - Play a puzzle directly
  menu     - Start at the home menu
  serve    - Start SSH server for remote play
  scores   - View best results

Examples:
  ballsort play
  ballsort play ballsort_classic --seed 42
  ballsort menu
  ballsort serve --ssh :2222
  ballsort scores`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ballsort/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (or $"+config.EnvConfigPath+")")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig resolves configuration with precedence flag > env > file > default
// and applies the rules to newly created games.
func loadConfig(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		logger.Warn("could not load .env", "error", err)
	}

	cfg, err := config.LoadBallSort(config.ConfigPathFromEnv(flagConfig))
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("fps") {
		cfg.Display.TickRate = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	policy, err := ballsort.ParseRunPolicy(cfg.Rules.RunPolicy)
	if err != nil {
		return err
	}
	ballsort.SetDefaultPolicy(policy)

	appConfig = cfg
	return nil
}

// runtimeConfig builds the runtime config for a local terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = appConfig.Display.TickRate
	cfg.Seed = flagSeed
	cfg.NoticeDuration = appConfig.NoticeDuration()
	return cfg
}

// openStore opens the results database. Play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open results database, results will not be saved", "error", err)
		return nil
	}
	return store
}

// playerName returns the name recorded with local results.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	return os.Getenv("USER")
}
