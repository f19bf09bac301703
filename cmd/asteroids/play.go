package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game right away.

Controls:
  W / Up        - Thrust
  A D / Left Right - Rotate
  Space         - Fire
  S / Down      - Teleport
  P             - Pause
  Ctrl+S        - Save a text screenshot
  Esc / Q       - Quit (Ctrl+C while typing initials)

Difficulty options:
  easy   - Five ships, gentle progression
  normal - Starts at 30% difficulty, progresses to max
  hard   - Three ships, starts at 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  asteroids play
  asteroids play --difficulty hard
  asteroids play --config ./my-asteroids.yaml
  asteroids play --seed 42 --db ./scores.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameCfg, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	game := asteroids.New(gameCfg,
		asteroids.WithLogger(logger),
		asteroids.WithStore(store),
	)

	if err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
