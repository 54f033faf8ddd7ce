package hopper

import (
	"math/rand"
	"slices"
	"testing"
)

func TestSafeGroundKeepsCenterCorridor(t *testing.T) {
	p := testParams()
	mid := p.Columns / 2

	for seed := int64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for row := 0; row < p.SafeRows; row++ {
			l := NewLane(row, Ground, rng, nil, p)
			for _, c := range []int{mid - 1, mid, mid + 1} {
				if l.IsBlocked(c) {
					t.Fatalf("seed %d row %d: corridor column %d blocked", seed, row, c)
				}
			}
			if n := len(l.BlockedColumns()); n > 2 {
				t.Fatalf("seed %d row %d: %d trees in safe zone, want at most 2", seed, row, n)
			}
		}
	}
}

func TestGroundFollowsPreviousOpenColumns(t *testing.T) {
	p := testParams()
	prevSets := [][]int{
		{0},
		{10},
		{2, 7},
		{3, 4, 5, 9},
	}

	for seed := int64(1); seed <= 100; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for _, prev := range prevSets {
			l := NewLane(p.SafeRows+3, Ground, rng, prev, p)

			open := l.OpenColumns()
			if len(open) < 3 {
				t.Fatalf("seed %d prev %v: only %d open columns", seed, prev, len(open))
			}
			blocked := len(l.BlockedColumns())
			if blocked < 2 && p.Columns-3 >= 2 {
				t.Fatalf("seed %d prev %v: %d trees, want at least 2", seed, prev, blocked)
			}
			shared := false
			for _, c := range prev {
				if slices.Contains(open, c) {
					shared = true
					break
				}
			}
			if !shared {
				t.Fatalf("seed %d: no open column shared with previous row %v (open %v)", seed, prev, open)
			}
		}
	}
}

func TestNonGroundLanesHaveNoTrees(t *testing.T) {
	p := testParams()
	rng := rand.New(rand.NewSource(3))

	for _, kind := range []Kind{Roadway, Waterway, Railway} {
		l := NewLane(20, kind, rng, nil, p)
		if got := len(l.OpenColumns()); got != p.Columns {
			t.Errorf("%s: %d open columns, want %d", kind, got, p.Columns)
		}
	}
}

func TestTrafficWidths(t *testing.T) {
	p := testParams()

	for seed := int64(1); seed <= 30; seed++ {
		rng := rand.New(rand.NewSource(seed))
		road := NewLane(10, Roadway, rng, nil, p)
		water := NewLane(11, Waterway, rng, nil, p)

		for i := 0; i < 600; i++ {
			road.Update(1.0/60, 1.2)
			water.Update(1.0/60, 1.2)
		}
		for _, o := range road.Obstacles() {
			if o.W != p.Tile {
				t.Fatalf("car width %v, want %v", o.W, p.Tile)
			}
		}
		for _, o := range water.Obstacles() {
			if o.W != 2*p.Tile && o.W != 3*p.Tile {
				t.Fatalf("log width %v, want 2 or 3 tiles", o.W)
			}
		}
	}
}

func TestTrafficKeepsMinimumGap(t *testing.T) {
	p := testParams()
	mults := []float64{0.6, 1.0, 1.45}

	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		lanes := []*Lane{
			NewLane(10, Roadway, rng, nil, p),
			NewLane(11, Waterway, rng, nil, p),
		}
		for _, l := range lanes {
			for tick := 0; tick < 1500; tick++ {
				l.Update(1.0/60, mults[tick%len(mults)])

				obs := l.Obstacles()
				for i := 1; i < len(obs); i++ {
					prev, cur := obs[i-1], obs[i]
					if cur.X+eps < prev.Right()+p.MinGap {
						t.Fatalf("seed %d %s tick %d: obstacle at %v within gap of [%v, %v]",
							seed, l.Kind(), tick, cur.X, prev.X, prev.Right())
					}
				}
			}
		}
	}
}

func TestTrafficSpawnsOffScreen(t *testing.T) {
	p := testParams()

	for seed := int64(1); seed <= 30; seed++ {
		rng := rand.New(rand.NewSource(seed))
		l := NewLane(10, Roadway, rng, nil, p)
		if len(l.Obstacles()) == 0 {
			t.Fatalf("seed %d: road created without cars", seed)
		}
		for _, o := range l.Obstacles() {
			if o.Dir != l.Dir() {
				t.Fatalf("obstacle dir %d, lane dir %d", o.Dir, l.Dir())
			}
			if l.Dir() == 1 && o.Right() > 0 {
				t.Fatalf("seed %d: rightward car spawned on screen at %v", seed, o.X)
			}
			if l.Dir() == -1 && o.X < p.ScreenW {
				t.Fatalf("seed %d: leftward car spawned on screen at %v", seed, o.X)
			}
		}
	}
}

func TestCullRemovesFarObstacles(t *testing.T) {
	p := testParams()
	l := bareLane(p, 10, Roadway)
	l.traffic = &trafficState{cfg: p.Cars, interval: 100, baseSpeed: 100}
	l.obstacles = []Obstacle{
		{ID: 1, X: -p.CullMargin - 200, W: p.Tile, BaseSpeed: 100, Dir: 1},
		{ID: 2, X: 100, W: p.Tile, BaseSpeed: 100, Dir: 1},
		{ID: 3, X: p.ScreenW + p.CullMargin + 100, W: p.Tile, BaseSpeed: 100, Dir: 1},
	}

	l.Update(1.0/60, 1)

	obs := l.Obstacles()
	if len(obs) != 1 || obs[0].ID != 2 {
		t.Fatalf("after cull: %+v, want only obstacle 2", obs)
	}
}

func TestSpawnRespectsGap(t *testing.T) {
	p := testParams()

	right := bareLane(p, 10, Roadway)
	right.obstacles = []Obstacle{{X: 0, W: p.Tile, Dir: 1}}
	if right.canSpawn(-p.Tile, p.Tile) {
		t.Error("rightward spawn touching the leftmost car was accepted")
	}
	if !right.canSpawn(-2*p.Tile-p.MinGap, p.Tile) {
		t.Error("rightward spawn one gap behind was rejected")
	}

	left := bareLane(p, 10, Roadway)
	left.dir = -1
	left.obstacles = []Obstacle{{X: p.ScreenW - p.Tile, W: p.Tile, Dir: -1}}
	if left.canSpawn(p.ScreenW, p.Tile) {
		t.Error("leftward spawn touching the rightmost car was accepted")
	}
	if !left.canSpawn(p.ScreenW+p.MinGap, p.Tile) {
		t.Error("leftward spawn one gap behind was rejected")
	}
}

func TestTrainWarningArmsOnce(t *testing.T) {
	p := testParams()
	l := NewLane(15, Railway, rand.New(rand.NewSource(9)), nil, p)
	l.trainTimer = p.Trains.Warning + 0.5

	const dt = 1.0 / 60
	arms := 0
	was := l.Warning()
	for i := 0; i < 1000 && !l.Train().Active; i++ {
		l.Update(dt, 1)
		if l.Warning() && !was {
			arms++
		}
		was = l.Warning()
	}

	if !l.Train().Active {
		t.Fatal("train never spawned")
	}
	if arms != 1 {
		t.Errorf("warning armed %d times, want 1", arms)
	}
}

func TestTrainExactThresholdArmsOnce(t *testing.T) {
	p := testParams()
	l := NewLane(15, Railway, rand.New(rand.NewSource(9)), nil, p)
	l.trainTimer = p.Trains.Warning + 0.25

	l.Update(0.25, 1)
	if !l.Warning() {
		t.Fatal("warning not armed when countdown reached the threshold")
	}
	l.warning = 0
	l.Update(0.1, 1)
	if l.Warning() {
		t.Error("warning re-armed in the same idle phase")
	}
}

func TestTrainCrossesAndReturnsToIdle(t *testing.T) {
	p := testParams()
	for seed := int64(1); seed <= 10; seed++ {
		l := NewLane(15, Railway, rand.New(rand.NewSource(seed)), nil, p)
		l.trainTimer = 0.01

		const dt = 1.0 / 60
		l.Update(dt, 1)
		tr := l.Train()
		if !tr.Active {
			t.Fatalf("seed %d: train not active after countdown", seed)
		}
		if span := tr.Span(); span.Max > 0 && span.Min < p.ScreenW {
			t.Fatalf("seed %d: train spawned on screen at [%v, %v]", seed, span.Min, span.Max)
		}

		mult := 1.2
		ticks := 0
		for l.Train().Active && ticks < 2000 {
			l.Update(dt, mult)
			ticks++
		}
		if l.Train().Active {
			t.Fatalf("seed %d: train still active after %d ticks", seed, ticks)
		}
		lo, hi := p.Trains.IntervalMin/mult, p.Trains.IntervalMax/mult
		if cd := l.TrainCountdown(); cd < lo-eps || cd > hi+eps {
			t.Errorf("seed %d: countdown %v outside [%v, %v]", seed, cd, lo, hi)
		}
		if l.Warning() {
			t.Errorf("seed %d: warning lit right after the train left", seed)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		Ground:   "ground",
		Roadway:  "road",
		Waterway: "water",
		Railway:  "rail",
		Kind(42): "unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
