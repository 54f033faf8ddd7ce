package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-hopper/internal/platform/tui"
	"github.com/vovakirdan/lane-hopper/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Press B after a splat to return to the menu; best scores of the
session are shown next to each game.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Q            - Quit

Examples:
  hopper menu
  hopper menu --fps 30
  hopper menu --difficulty hard`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := runtimeConfig()
	best := make(map[string]int)

	for {
		menuResult, err := tui.RunMenu(cfg, best)
		if err != nil {
			return err
		}
		cfg = menuResult.Config
		if menuResult.Quit {
			return nil
		}

		gameID := menuResult.GameID
		if err := applyGameFlags(gameID); err != nil {
			return err
		}
		game, err := registry.Create(gameID)
		if err != nil {
			logger.Error("cannot create game", "game", gameID, "error", err)
			continue
		}

		// Each pick starts a fresh seed unless one was pinned.
		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		res, err := tui.Run(game, runCfg, logger)
		if err != nil {
			return err
		}
		best[gameID] = max(best[gameID], res.Best)
		if res.Quit {
			return nil
		}
	}
}
