// Package config provides YAML-based game configuration loading and
// the difficulty curve for the arcade platform.
package config

import "fmt"

// HopperConfig contains all tunables for Lane Hopper.
// Distances are world units (one tile = Grid.Tile units), speeds are world
// units per second and intervals are seconds.
type HopperConfig struct {
	Grid       GridConfig      `yaml:"grid" json:"grid"`
	World      WorldConfig     `yaml:"world" json:"world"`
	Scroll     ScrollConfig    `yaml:"scroll" json:"scroll"`
	Cars       TrafficConfig   `yaml:"cars" json:"cars"`
	Logs       TrafficConfig   `yaml:"logs" json:"logs"`
	Trains     TrainConfig     `yaml:"trains" json:"trains"`
	Spacing    SpacingConfig   `yaml:"spacing" json:"spacing"`
	Player     PlayerConfig    `yaml:"player" json:"player"`
	Difficulty DifficultyCurve `yaml:"difficulty" json:"difficulty"`
}

// GridConfig defines the playfield geometry.
type GridConfig struct {
	Tile        float64 `yaml:"tile" json:"tile" jsonschema:"exclusiveMinimum=0"`
	Columns     int     `yaml:"columns" json:"columns" jsonschema:"minimum=3"`
	VisibleRows int     `yaml:"visible_rows" json:"visible_rows" jsonschema:"minimum=2"`
}

// WorldConfig defines how far ahead lanes are generated and how long
// they are kept behind the camera.
type WorldConfig struct {
	SafeRows     int `yaml:"safe_rows" json:"safe_rows" jsonschema:"minimum=1"`
	Lookahead    int `yaml:"lookahead" json:"lookahead" jsonschema:"minimum=1"`
	UpdateBehind int `yaml:"update_behind" json:"update_behind" jsonschema:"minimum=0"`
	PruneBehind  int `yaml:"prune_behind" json:"prune_behind" jsonschema:"minimum=1"`
}

// ScrollConfig defines the auto-scrolling camera.
type ScrollConfig struct {
	BaseTilesPerSec float64 `yaml:"base_tiles_per_sec" json:"base_tiles_per_sec" jsonschema:"minimum=0"`
}

// TrafficConfig describes one kind of moving obstacle lane (cars or logs).
type TrafficConfig struct {
	SpeedMin   float64 `yaml:"speed_min" json:"speed_min"`
	SpeedMax   float64 `yaml:"speed_max" json:"speed_max"`
	SpawnMin   float64 `yaml:"spawn_min" json:"spawn_min"`
	SpawnMax   float64 `yaml:"spawn_max" json:"spawn_max"`
	Widths     []int   `yaml:"widths" json:"widths" jsonschema:"minItems=1"`          // tiles, picked uniformly; repeat entries to weight
	SeedCounts []int   `yaml:"seed_counts" json:"seed_counts" jsonschema:"minItems=1"` // obstacles attempted at lane creation
}

// TrainConfig describes railway lanes.
type TrainConfig struct {
	Speed            float64 `yaml:"speed" json:"speed"`
	IntervalMin      float64 `yaml:"interval_min" json:"interval_min"`
	IntervalMax      float64 `yaml:"interval_max" json:"interval_max"`
	Warning          float64 `yaml:"warning" json:"warning"`
	LengthTiles      float64 `yaml:"length_tiles" json:"length_tiles"`
	SpawnOffsetTiles float64 `yaml:"spawn_offset_tiles" json:"spawn_offset_tiles"`
	ClearMarginTiles float64 `yaml:"clear_margin_tiles" json:"clear_margin_tiles"`
	FlipChance       float64 `yaml:"flip_chance" json:"flip_chance" jsonschema:"minimum=0,maximum=1"`
}

// SpacingConfig keeps obstacles apart and bounds their lifetime.
type SpacingConfig struct {
	MinGapTiles      float64 `yaml:"min_gap_tiles" json:"min_gap_tiles"`
	SpawnJitterTiles float64 `yaml:"spawn_jitter_tiles" json:"spawn_jitter_tiles"`
	CullMarginTiles  float64 `yaml:"cull_margin_tiles" json:"cull_margin_tiles"`
}

// PlayerConfig defines the player's spawn and cosmetic timers.
type PlayerConfig struct {
	StartRow   int     `yaml:"start_row" json:"start_row"`
	DipSeconds float64 `yaml:"dip_seconds" json:"dip_seconds"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI flag value into a preset.
// An empty string yields an empty preset, meaning "use the config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty preset %q (want easy, normal, hard or fixed)", s)
	}
}
