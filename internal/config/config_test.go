package config

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const eps = 1e-9

func TestDefaultCurveKnots(t *testing.T) {
	c := DefaultCurve()

	tests := []struct {
		score    int
		expected float64
	}{
		{-5, 0.60},
		{0, 0.60},
		{10, 0.80},
		{20, 1.00},
		{50, 1.225},
		{80, 1.45},
		{500, 1.45},
	}

	for _, tc := range tests {
		if got := c.At(tc.score); math.Abs(got-tc.expected) > eps {
			t.Errorf("At(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDefaultCurveMonotonic(t *testing.T) {
	c := DefaultCurve()
	prev := c.At(0)
	for s := 1; s <= 100; s++ {
		cur := c.At(s)
		if cur < prev {
			t.Fatalf("curve decreased at score %d: %v < %v", s, cur, prev)
		}
		// Steps stay small: no jumps at the knots
		if cur-prev > 0.03 {
			t.Fatalf("curve jumped at score %d: %v -> %v", s, prev, cur)
		}
		prev = cur
	}
}

func TestCurvePresets(t *testing.T) {
	base := DefaultCurve()

	hard := base.WithPreset(DifficultyHard)
	if hard.At(0) != 1.00 {
		t.Errorf("hard preset should start at 1.00, got %v", hard.At(0))
	}

	fixed := base.WithPreset(DifficultyFixed)
	for _, s := range []int{0, 20, 50, 200} {
		if fixed.At(s) != 0.60 {
			t.Errorf("fixed preset At(%d) = %v, expected 0.60", s, fixed.At(s))
		}
	}

	if base.WithPreset(DifficultyNormal) != base {
		t.Error("normal preset should not change the curve")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	def := DefaultHopperConfig()
	if cfg.Grid != def.Grid || cfg.World != def.World || cfg.Trains != def.Trains {
		t.Errorf("embedded yaml diverges from DefaultHopperConfig:\n%+v\n%+v", cfg, def)
	}
	if cfg.Difficulty != def.Difficulty {
		t.Errorf("difficulty mismatch: %+v vs %+v", cfg.Difficulty, def.Difficulty)
	}
	if len(cfg.Logs.Widths) != 3 || cfg.Logs.Widths[2] != 3 {
		t.Errorf("log widths = %v, expected [2 2 3]", cfg.Logs.Widths)
	}
}

func TestLoadHopperCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "grid:\n  columns: 9\ntrains:\n  speed: 300\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadHopper(path)
	if err != nil {
		t.Fatalf("LoadHopper() failed: %v", err)
	}

	if cfg.Grid.Columns != 9 {
		t.Errorf("Columns = %d, expected 9", cfg.Grid.Columns)
	}
	if cfg.Trains.Speed != 300 {
		t.Errorf("Trains.Speed = %v, expected 300", cfg.Trains.Speed)
	}
	// Untouched keys keep their defaults
	if cfg.Grid.Tile != 48 || cfg.Trains.LengthTiles != 16 {
		t.Errorf("defaults not preserved: tile=%v length=%v", cfg.Grid.Tile, cfg.Trains.LengthTiles)
	}
}

func TestLoadHopperErrors(t *testing.T) {
	if _, err := LoadHopper(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  columns: 2\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	_, err := LoadHopper(path)
	if err == nil || !strings.Contains(err.Error(), "columns") {
		t.Errorf("expected columns validation error, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*HopperConfig)
	}{
		{"zero tile", func(c *HopperConfig) { c.Grid.Tile = 0 }},
		{"prune inside update window", func(c *HopperConfig) { c.World.PruneBehind = c.World.UpdateBehind }},
		{"start row outside safe zone", func(c *HopperConfig) { c.Player.StartRow = c.World.SafeRows }},
		{"inverted car speeds", func(c *HopperConfig) { c.Cars.SpeedMax = c.Cars.SpeedMin - 1 }},
		{"empty log widths", func(c *HopperConfig) { c.Logs.Widths = nil }},
		{"train interval", func(c *HopperConfig) { c.Trains.IntervalMin = 0 }},
		{"flip chance", func(c *HopperConfig) { c.Trains.FlipChance = 1.5 }},
		{"decreasing curve", func(c *HopperConfig) { c.Difficulty.Max = 0.5 }},
		{"curve scores", func(c *HopperConfig) { c.Difficulty.MaxScore = c.Difficulty.MidScore }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultHopperConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}

	if err := DefaultHopperConfig().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestMarshalRoundTripKeepsPreset(t *testing.T) {
	cfg := DefaultHopperConfig()
	ApplyHopperPreset(&cfg, DifficultyHard)

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back.Difficulty.Start != 1.00 {
		t.Errorf("difficulty.start = %v after round trip, expected 1.00", back.Difficulty.Start)
	}
}

func TestSchemaDescribesSections(t *testing.T) {
	data, err := SchemaJSON()
	if err != nil {
		t.Fatalf("SchemaJSON() failed: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}
	props, ok := doc["properties"].(map[string]any)
	if !ok {
		t.Fatalf("schema has no properties: %s", data)
	}
	for _, key := range []string{"grid", "world", "cars", "logs", "trains", "difficulty"} {
		if _, ok := props[key]; !ok {
			t.Errorf("schema missing %q section", key)
		}
	}
}
