package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the user and local config dirs.
const ConfigFile = "hopper.yaml"

// LoadHopper loads the Lane Hopper configuration.
// Search order: customPath -> ~/.hopper/configs/hopper.yaml -> ./configs/hopper.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides
// the keys it names. Only a broken customPath is reported as an error.
func LoadHopper(customPath string) (HopperConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HopperConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return HopperConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultHopperYAML)
	if err != nil {
		return DefaultHopperConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
func Parse(data []byte) (HopperConfig, error) {
	cfg := DefaultHopperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HopperConfig{}, fmt.Errorf("config: failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return HopperConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the configuration back to YAML.
func Marshal(cfg HopperConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode yaml: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hopper", "configs", filename)
}

// ApplyHopperPreset modifies the config based on a difficulty preset.
func ApplyHopperPreset(cfg *HopperConfig, preset DifficultyPreset) {
	cfg.Difficulty = cfg.Difficulty.WithPreset(preset)
}

// Validate reports the first impossible setting.
func (c HopperConfig) Validate() error {
	g := c.Grid
	if g.Tile <= 0 {
		return fmt.Errorf("config: grid.tile must be positive, got %v", g.Tile)
	}
	// Ground lanes keep at least three open columns.
	if g.Columns < 3 {
		return fmt.Errorf("config: grid.columns must be at least 3, got %d", g.Columns)
	}
	if g.VisibleRows < 2 {
		return fmt.Errorf("config: grid.visible_rows must be at least 2, got %d", g.VisibleRows)
	}

	w := c.World
	if w.SafeRows < 1 || w.Lookahead < 1 {
		return fmt.Errorf("config: world.safe_rows and world.lookahead must be at least 1")
	}
	if w.UpdateBehind < 0 || w.PruneBehind <= w.UpdateBehind {
		return fmt.Errorf("config: world.prune_behind (%d) must exceed world.update_behind (%d)", w.PruneBehind, w.UpdateBehind)
	}
	if c.Player.StartRow < 0 || c.Player.StartRow >= w.SafeRows {
		return fmt.Errorf("config: player.start_row must lie inside the safe zone [0, %d)", w.SafeRows)
	}
	if c.Player.DipSeconds < 0 {
		return fmt.Errorf("config: player.dip_seconds must not be negative")
	}
	if c.Scroll.BaseTilesPerSec < 0 {
		return fmt.Errorf("config: scroll.base_tiles_per_sec must not be negative")
	}

	if err := c.Cars.validate("cars"); err != nil {
		return err
	}
	if err := c.Logs.validate("logs"); err != nil {
		return err
	}

	t := c.Trains
	if t.Speed <= 0 || t.LengthTiles <= 0 {
		return fmt.Errorf("config: trains.speed and trains.length_tiles must be positive")
	}
	if t.IntervalMin <= 0 || t.IntervalMax < t.IntervalMin {
		return fmt.Errorf("config: trains interval range [%v, %v] is invalid", t.IntervalMin, t.IntervalMax)
	}
	if t.Warning < 0 || t.FlipChance < 0 || t.FlipChance > 1 {
		return fmt.Errorf("config: trains.warning must be >= 0 and trains.flip_chance within [0, 1]")
	}

	s := c.Spacing
	if s.MinGapTiles < 0 || s.SpawnJitterTiles < 0 || s.CullMarginTiles < 0 {
		return fmt.Errorf("config: spacing values must not be negative")
	}

	return c.Difficulty.Validate()
}

func (t TrafficConfig) validate(name string) error {
	if t.SpeedMin <= 0 || t.SpeedMax < t.SpeedMin {
		return fmt.Errorf("config: %s speed range [%v, %v] is invalid", name, t.SpeedMin, t.SpeedMax)
	}
	if t.SpawnMin <= 0 || t.SpawnMax < t.SpawnMin {
		return fmt.Errorf("config: %s spawn range [%v, %v] is invalid", name, t.SpawnMin, t.SpawnMax)
	}
	if len(t.Widths) == 0 || len(t.SeedCounts) == 0 {
		return fmt.Errorf("config: %s.widths and %s.seed_counts must not be empty", name, name)
	}
	for _, w := range t.Widths {
		if w <= 0 {
			return fmt.Errorf("config: %s.widths must be positive, got %d", name, w)
		}
	}
	for _, n := range t.SeedCounts {
		if n < 0 {
			return fmt.Errorf("config: %s.seed_counts must not be negative, got %d", name, n)
		}
	}
	return nil
}
