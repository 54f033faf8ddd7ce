package config

import (
	"fmt"

	"github.com/vovakirdan/lane-hopper/internal/core"
)

// DifficultyCurve maps progress (the player's best row) to a multiplier
// applied to scroll speed, obstacle speed and spawn frequency.
//
// The curve is piecewise linear through three knots:
// (0, Start), (MidScore, Mid) and (MaxScore, Max), flat outside them.
type DifficultyCurve struct {
	Start    float64 `yaml:"start" json:"start" jsonschema:"exclusiveMinimum=0"`
	Mid      float64 `yaml:"mid" json:"mid"`
	Max      float64 `yaml:"max" json:"max"`
	MidScore int     `yaml:"mid_score" json:"mid_score" jsonschema:"minimum=1"`
	MaxScore int     `yaml:"max_score" json:"max_score"`
}

// DefaultCurve returns the stock curve: 0.60 at the start, 1.00 at
// score 20, 1.45 from score 80 onwards.
func DefaultCurve() DifficultyCurve {
	return DifficultyCurve{
		Start:    0.60,
		Mid:      1.00,
		Max:      1.45,
		MidScore: 20,
		MaxScore: 80,
	}
}

// At returns the multiplier for the given score.
func (c DifficultyCurve) At(score int) float64 {
	switch {
	case score <= 0:
		return c.Start
	case score < c.MidScore:
		return core.Lerp(c.Start, c.Mid, float64(score)/float64(c.MidScore))
	case score < c.MaxScore:
		span := float64(c.MaxScore - c.MidScore)
		return core.Lerp(c.Mid, c.Max, float64(score-c.MidScore)/span)
	default:
		return c.Max
	}
}

// Validate checks that the curve is positive and non-decreasing.
func (c DifficultyCurve) Validate() error {
	if c.Start <= 0 {
		return fmt.Errorf("config: difficulty.start must be positive, got %v", c.Start)
	}
	if c.Mid < c.Start || c.Max < c.Mid {
		return fmt.Errorf("config: difficulty knots must be non-decreasing (start %v, mid %v, max %v)", c.Start, c.Mid, c.Max)
	}
	if c.MidScore <= 0 || c.MaxScore <= c.MidScore {
		return fmt.Errorf("config: difficulty scores must satisfy 0 < mid_score < max_score (got %d, %d)", c.MidScore, c.MaxScore)
	}
	return nil
}

// WithPreset returns a copy of the curve retuned for a preset.
// Easy and normal keep the curve, hard starts at the mid multiplier and
// fixed pins the whole curve to its starting value.
func (c DifficultyCurve) WithPreset(preset DifficultyPreset) DifficultyCurve {
	switch preset {
	case DifficultyHard:
		c.Start = c.Mid
	case DifficultyFixed:
		c.Mid = c.Start
		c.Max = c.Start
	}
	return c
}
