package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-hopper/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the game configuration",
	Long: `Inspect the configuration used by hopper.

The config file is looked up in this order:
  1. --config <path>
  2. ~/.hopper/configs/hopper.yaml
  3. ./configs/hopper.yaml
  4. built-in defaults

Any key left out of a file keeps its default value.`,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of hopper.yaml",
	Long: `Print a JSON Schema describing hopper.yaml, usable by editors
for completion and validation.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := config.SchemaJSON()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		cfg, err := config.LoadHopper(flagConfig)
		if err != nil {
			return err
		}
		config.ApplyHopperPreset(&cfg, preset)

		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	configDumpCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configDumpCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configDumpCmd)
}
