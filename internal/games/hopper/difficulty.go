package hopper

import "github.com/vovakirdan/lane-hopper/internal/config"

var stockCurve = config.DefaultCurve()

// Difficulty returns the stock multiplier for a score: 0.60 at the start,
// 1.00 at row 20 and capped at 1.45 from row 80.
// Sessions use the curve from their own configuration.
func Difficulty(score int) float64 {
	return stockCurve.At(score)
}
