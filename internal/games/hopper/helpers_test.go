package hopper

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/lane-hopper/internal/config"
)

const eps = 1e-9

func testParams() *Params {
	return NewParams(config.DefaultHopperConfig())
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// bareLane builds an empty lane of the given kind without touching an RNG
// stream, for hand-arranged scenarios.
func bareLane(p *Params, row int, kind Kind) *Lane {
	return &Lane{
		row:     row,
		kind:    kind,
		dir:     1,
		p:       p,
		rng:     rand.New(rand.NewSource(1)),
		blocked: make([]bool, p.Columns),
		train:   Train{Dir: 1, Length: p.TrainLength},
	}
}

// handWorld builds a world holding exactly the given lanes.
func handWorld(p *Params, lanes ...*Lane) *World {
	w := &World{
		p:       p,
		rng:     rand.New(rand.NewSource(1)),
		lanes:   make(map[int]*Lane),
		highest: -1,
	}
	for _, l := range lanes {
		w.lanes[l.row] = l
		w.highest = max(w.highest, l.row)
	}
	return w
}
