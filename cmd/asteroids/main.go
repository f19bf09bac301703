// asteroids is a terminal Asteroids game with a persistent high-score table.
//
// Usage:
//
//	asteroids play          - Play a game
//	asteroids menu          - Start menu with play and high scores
//	asteroids scores        - Print the high-score table
//	asteroids serve         - Start SSH server for remote play
//	asteroids config        - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set score store path (default: ~/.asteroids/asteroids.db)
//	--log-level <level>   - Set log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagLogLevel  string
	flagHoldTicks int

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids in your terminal",
	Long: `Fly a ship through drifting asteroids and a roaming saucer, right in
your terminal. Scores are kept in a top-10 table.

Available commands:
  play     - Play a game
  menu     - Menu with play and high scores
  scores   - Print the high-score table
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  asteroids play
  asteroids play --difficulty hard
  asteroids menu
  asteroids serve --ssh :2222
  asteroids scores --stats`,
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Level:           level,
			ReportTimestamp: true,
			Prefix:          "asteroids",
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Score store path (.yaml for a plain file, anything else is SQLite)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().IntVar(&flagHoldTicks, "hold", core.DefaultConfig().HoldTicks, "Ticks a key counts as held after its last press")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig builds the runtime config from the global flags and the
// size of the local terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.HoldTicks = flagHoldTicks
	return cfg
}

// loadGameConfig loads the game configuration and applies a difficulty
// preset. Only an explicit path that cannot be read is an error.
func loadGameConfig(path, difficulty string) (config.AsteroidsConfig, error) {
	cfg, err := config.LoadAsteroids(path)
	if err != nil {
		return cfg, err
	}

	if difficulty != "" {
		preset := config.ParsePreset(difficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
		}
		config.ApplyAsteroidsPreset(&cfg, preset)
	}
	return cfg, nil
}

// openStore opens the score store. Games still run without one, so a
// failure is only logged.
func openStore() storage.Backend {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open score store, scores will not be saved", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// closeStore closes a store opened by openStore.
func closeStore(store storage.Backend) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("cannot close score store", "err", err)
	}
}
