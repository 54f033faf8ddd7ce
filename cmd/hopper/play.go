package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-hopper/internal/config"
	"github.com/vovakirdan/lane-hopper/internal/games/hopper"
	"github.com/vovakirdan/lane-hopper/internal/platform/tui"
	"github.com/vovakirdan/lane-hopper/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (hopper when omitted).

Controls:
  Up/W          - Hop forward
  Down/S        - Hop back
  Left/A        - Hop left
  Right/D       - Hop right
  P/Esc         - Pause
  R             - Restart (after a splat)
  B             - Back to menu (paused or after a splat)
  ?             - Full help
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Default curve: starts slow, speeds up with your score
  normal - Same as easy
  hard   - Starts at full base speed
  fixed  - No progression, stays at the starting speed

Examples:
  hopper play
  hopper play hopper --difficulty hard
  hopper play --seed 42 --fps 30
  hopper play --config ./my-hopper.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags validates --config and --difficulty up front so a broken
// file is reported instead of silently replaced by defaults.
func applyGameFlags(gameID string) error {
	if gameID != hopper.ID {
		return nil
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if _, err := config.LoadHopper(flagConfig); err != nil {
		return err
	}
	hopper.SetConfigPath(flagConfig)
	hopper.SetDifficultyPreset(flagDifficulty)
	return nil
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := hopper.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'hopper list' to see available games)", gameID)
	}
	if err := applyGameFlags(gameID); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger, closeLog, err := fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	if _, err := tui.Run(game, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
