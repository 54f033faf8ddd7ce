package hopper

import "github.com/vovakirdan/lane-hopper/internal/core"

// ObstacleID identifies an obstacle for the lifetime of a world.
// The high 32 bits hold the lane row, the low 32 bits a per-lane sequence.
type ObstacleID uint64

func makeObstacleID(row int, seq uint32) ObstacleID {
	return ObstacleID(uint64(uint32(row))<<32 | uint64(seq))
}

// Obstacle is a car or a log: a horizontal interval moving at constant
// velocity. X is the left edge.
type Obstacle struct {
	ID        ObstacleID
	X         float64
	W         float64
	BaseSpeed float64
	Dir       int // +1 right, -1 left
}

// Advance moves the obstacle by its velocity scaled by mult over dt seconds.
func (o *Obstacle) Advance(dt, mult float64) {
	o.X += o.Velocity(mult) * dt
}

// Velocity returns the signed speed at the given multiplier.
func (o Obstacle) Velocity(mult float64) float64 {
	return float64(o.Dir) * o.BaseSpeed * mult
}

// Right returns the x of the trailing/right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.W
}

// Span returns the occupied interval.
func (o Obstacle) Span() core.Span {
	return core.SpanAt(o.X, o.W)
}
