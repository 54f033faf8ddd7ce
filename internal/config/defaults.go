package config

import (
	_ "embed"
)

//go:embed defaults/hopper.yaml
var defaultHopperYAML []byte

// DefaultHopperConfig returns the built-in configuration. It mirrors the
// embedded defaults/hopper.yaml and is the fallback if that fails to parse.
func DefaultHopperConfig() HopperConfig {
	return HopperConfig{
		Grid: GridConfig{
			Tile:        48,
			Columns:     11,
			VisibleRows: 14,
		},
		World: WorldConfig{
			SafeRows:     6,
			Lookahead:    55,
			UpdateBehind: 10,
			PruneBehind:  30,
		},
		Scroll: ScrollConfig{
			BaseTilesPerSec: 0.70,
		},
		Cars: TrafficConfig{
			SpeedMin:   120,
			SpeedMax:   170,
			SpawnMin:   1.00,
			SpawnMax:   1.60,
			Widths:     []int{1},
			SeedCounts: []int{1, 1, 2},
		},
		Logs: TrafficConfig{
			SpeedMin:   90,
			SpeedMax:   130,
			SpawnMin:   1.10,
			SpawnMax:   1.70,
			Widths:     []int{2, 2, 3},
			SeedCounts: []int{1, 2},
		},
		Trains: TrainConfig{
			Speed:            600,
			IntervalMin:      6.0,
			IntervalMax:      10.0,
			Warning:          1.1,
			LengthTiles:      16,
			SpawnOffsetTiles: 12,
			ClearMarginTiles: 8,
			FlipChance:       0.5,
		},
		Spacing: SpacingConfig{
			MinGapTiles:      0.75,
			SpawnJitterTiles: 2,
			CullMarginTiles:  5,
		},
		Player: PlayerConfig{
			StartRow:   1,
			DipSeconds: 0.18,
		},
		Difficulty: DefaultCurve(),
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultHopperYAML
}
