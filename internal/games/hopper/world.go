package hopper

import (
	"math/rand"
	"sort"
)

// World is the sparse, row-indexed collection of lanes. Lanes are created
// strictly in ascending row order from a single RNG stream so a seed
// reproduces the same terrain.
type World struct {
	p       *Params
	rng     *rand.Rand
	lanes   map[int]*Lane
	highest int
}

// NewWorld builds the safe zone and the initial lookahead.
func NewWorld(p *Params, rng *rand.Rand) *World {
	w := &World{
		p:       p,
		rng:     rng,
		lanes:   make(map[int]*Lane),
		highest: -1,
	}
	w.GenerateAhead(p.SafeRows + p.Lookahead)
	return w
}

// GenerateAhead creates every missing row up to and including target.
func (w *World) GenerateAhead(target int) {
	for row := w.highest + 1; row <= target; row++ {
		prevOpen := w.p.allColumns()
		if prev, ok := w.lanes[row-1]; ok {
			prevOpen = prev.OpenColumns()
		}
		w.lanes[row] = w.newLane(row, prevOpen)
		w.highest = row
	}
}

// EnsureLane returns the lane at row, creating it when absent. Rows past
// the generated frontier are produced through GenerateAhead so creation
// order is preserved. Rows below the frontier that were pruned are
// rebuilt from the current RNG state and will not match the originals.
func (w *World) EnsureLane(row int) *Lane {
	if l, ok := w.lanes[row]; ok {
		return l
	}
	if row > w.highest {
		w.GenerateAhead(row)
		return w.lanes[row]
	}
	var prevOpen []int
	if prev, ok := w.lanes[row-1]; ok {
		prevOpen = prev.OpenColumns()
	}
	l := w.newLane(row, prevOpen)
	w.lanes[row] = l
	return l
}

// LaneAt is EnsureLane: a lane query never fails.
func (w *World) LaneAt(row int) *Lane {
	return w.EnsureLane(row)
}

func (w *World) newLane(row int, prevOpen []int) *Lane {
	kind := Ground
	if row >= w.p.SafeRows {
		kind = w.chooseKind(row)
	}
	return NewLane(row, kind, w.rng, prevOpen, w.p)
}

// chooseKind weighs the next lane kind against the streak formed by the
// last three rows, damping long runs of the same hazard.
func (w *World) chooseKind(row int) Kind {
	counts := make(map[Kind]int, 4)
	for r := row - 3; r < row; r++ {
		if l, ok := w.lanes[r]; ok {
			counts[l.kind]++
		}
	}

	weights := [4]float64{Ground: 6, Roadway: 5, Waterway: 5, Railway: 5}
	switch {
	case counts[Waterway] >= 2:
		weights = [4]float64{Ground: 7, Roadway: 5, Railway: 5, Waterway: 2}
	case counts[Railway] >= 2:
		weights = [4]float64{Ground: 7, Roadway: 5, Waterway: 5, Railway: 2}
	case counts[Roadway] >= 2:
		weights = [4]float64{Ground: 7, Waterway: 5, Railway: 5, Roadway: 2}
	}

	total := 0.0
	for _, wt := range weights {
		total += wt
	}
	pick := w.rng.Float64() * total
	acc := 0.0
	for k, wt := range weights {
		acc += wt
		if pick <= acc {
			return Kind(k)
		}
	}
	return Ground
}

// Update generates ahead of the camera, advances the lanes around it and
// drops rows that fell far behind.
func (w *World) Update(dt float64, cameraRow int, mult float64) {
	w.GenerateAhead(cameraRow + w.p.Lookahead)

	from := max(0, cameraRow-w.p.UpdateBehind)
	for row := from; row <= cameraRow+w.p.Lookahead; row++ {
		if l, ok := w.lanes[row]; ok {
			l.Update(dt, mult)
		}
	}

	w.prune(cameraRow - w.p.PruneBehind)
}

func (w *World) prune(below int) {
	for row := range w.lanes {
		if row < below {
			delete(w.lanes, row)
		}
	}
}

// Lanes returns the existing lanes with from <= row <= to in ascending
// row order. It never generates.
func (w *World) Lanes(from, to int) []*Lane {
	out := make([]*Lane, 0, max(0, to-from+1))
	for row, l := range w.lanes {
		if row >= from && row <= to {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].row < out[j].row })
	return out
}

// Highest returns the generation frontier.
func (w *World) Highest() int { return w.highest }

// Len returns the number of lanes held.
func (w *World) Len() int { return len(w.lanes) }

// Has reports whether row is currently materialized.
func (w *World) Has(row int) bool {
	_, ok := w.lanes[row]
	return ok
}
