// hopper is a terminal lane-crossing arcade game: hop a chicken across
// procedurally generated roads, rivers and railways while the screen
// scrolls on.
//
// Usage:
//
//	hopper list              - List available games
//	hopper play [game]       - Play a game (default: hopper)
//	hopper menu              - Start menu to pick games interactively
//	hopper serve             - Start SSH server for remote play
//	hopper preview           - Print the generated lanes for a seed
//	hopper config schema     - Print the JSON Schema of the config file
//	hopper config dump       - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-file <path>     - Write logs to a file (interactive commands)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/lane-hopper/internal/games/hopper"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hopper",
	Short: "Lane Hopper - cross the road in your terminal",
	Long: `Lane Hopper is an endless lane-crossing arcade game for the terminal.

Hop forward across grass, roads, rivers and railways. The screen keeps
scrolling, cars and trains get faster and logs drift away the further
you go.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  preview  - Print the lanes a seed generates
  config   - Inspect the configuration

Examples:
  hopper play
  hopper play --difficulty hard --seed 42
  hopper menu
  hopper serve --ssh :2222
  hopper preview --seed 7 --rows 30`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(configCmd)
}
