package hopper

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/lane-hopper/internal/config"
	"github.com/vovakirdan/lane-hopper/internal/core"
)

// Kind is the terrain type of a lane.
type Kind uint8

const (
	Ground Kind = iota
	Roadway
	Waterway
	Railway
)

func (k Kind) String() string {
	switch k {
	case Ground:
		return "ground"
	case Roadway:
		return "road"
	case Waterway:
		return "water"
	case Railway:
		return "rail"
	default:
		return "unknown"
	}
}

// Train is the single train a railway lane may carry. X is the left edge.
type Train struct {
	Active bool
	X      float64
	Dir    int
	Length float64
}

// Span returns the interval the train occupies.
func (t Train) Span() core.Span {
	return core.SpanAt(t.X, t.Length)
}

// Lane is one horizontal row of the world. Its content is a function of
// the row, the kind, the previous row's open columns and the shared RNG
// stream at the time of creation.
type Lane struct {
	row  int
	kind Kind
	dir  int
	p    *Params
	rng  *rand.Rand

	blocked []bool

	obstacles []Obstacle
	seq       uint32
	traffic   *trafficState

	train      Train
	trainTimer float64
	warning    float64
	warned     bool
}

type trafficState struct {
	cfg       config.TrafficConfig
	interval  float64 // base spawn interval, seconds at difficulty 1.0
	timer     float64
	baseSpeed float64
}

// NewLane builds a lane. prevOpen holds the open columns of row-1 and may
// be nil when that row is unknown.
func NewLane(row int, kind Kind, rng *rand.Rand, prevOpen []int, p *Params) *Lane {
	l := &Lane{
		row:     row,
		kind:    kind,
		p:       p,
		rng:     rng,
		blocked: make([]bool, p.Columns),
	}

	// The draw order below is part of the world's determinism.
	l.dir = pickDir(rng)
	l.trainTimer = uniform(rng, p.Trains.IntervalMin, p.Trains.IntervalMax)
	l.train = Train{Dir: pickDir(rng), Length: p.TrainLength}

	switch kind {
	case Ground:
		if row < p.SafeRows {
			l.generateSafeGround()
		} else {
			l.generateGround(prevOpen)
		}
	case Roadway:
		l.initTraffic(p.Cars)
	case Waterway:
		l.initTraffic(p.Logs)
	case Railway:
		l.trainTimer = uniform(rng, p.Trains.IntervalMin, p.Trains.IntervalMax)
	}
	return l
}

// generateSafeGround keeps a three-column corridor around the center open
// and scatters up to two decorative trees outside it.
func (l *Lane) generateSafeGround() {
	cols := l.p.Columns
	mid := cols / 2
	corridor := map[int]bool{
		core.Clamp(mid-1, 0, cols-1): true,
		mid:                          true,
		core.Clamp(mid+1, 0, cols-1): true,
	}
	target := l.rng.Intn(3)
	l.blockOutside(corridor, target, 0)
}

// generateGround picks a corridor centered on a column that was open in the
// previous row so there is always a straight step forward, then plants
// 2..5 trees outside it.
func (l *Lane) generateGround(prevOpen []int) {
	cols := l.p.Columns

	var center int
	if len(prevOpen) > 0 {
		sorted := slices.Clone(prevOpen)
		slices.Sort(sorted)
		center = sorted[l.rng.Intn(len(sorted))]
	} else {
		center = l.rng.Intn(cols)
	}

	width := 2 + l.rng.Intn(2)
	start := center - (width-1)/2
	start = core.Clamp(start, 0, cols-width)

	corridor := make(map[int]bool, width)
	for c := start; c < start+width; c++ {
		corridor[c] = true
	}

	target := 2 + l.rng.Intn(4)
	l.blockOutside(corridor, target, 3)
}

// blockOutside blocks up to target columns outside the corridor in a random
// order while keeping at least minOpen columns open.
func (l *Lane) blockOutside(corridor map[int]bool, target, minOpen int) {
	cols := l.p.Columns
	candidates := make([]int, 0, cols)
	for c := 0; c < cols; c++ {
		if !corridor[c] {
			candidates = append(candidates, c)
		}
	}
	l.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	n := 0
	for _, c := range candidates {
		if n >= target {
			break
		}
		if cols-(n+1) < minOpen {
			break
		}
		l.blocked[c] = true
		n++
	}
}

func (l *Lane) initTraffic(tc config.TrafficConfig) {
	ts := &trafficState{cfg: tc}
	ts.interval = uniform(l.rng, tc.SpawnMin, tc.SpawnMax)
	ts.baseSpeed = uniform(l.rng, tc.SpeedMin, tc.SpeedMax)
	l.traffic = ts

	for i, n := 0, pickInt(l.rng, tc.SeedCounts); i < n; i++ {
		l.trySpawn()
	}
}

// trySpawn places one obstacle just past the entry edge, skipping the
// spawn when it would land closer than the minimum gap to the obstacle
// nearest that edge.
func (l *Lane) trySpawn() bool {
	ts := l.traffic
	w := float64(pickInt(l.rng, ts.cfg.Widths)) * l.p.Tile
	jitter := uniform(l.rng, 0, l.p.SpawnJitter)

	var x float64
	if l.dir == 1 {
		x = -w - jitter
	} else {
		x = l.p.ScreenW + jitter
	}
	if !l.canSpawn(x, w) {
		return false
	}

	l.obstacles = append(l.obstacles, Obstacle{
		ID:        makeObstacleID(l.row, l.seq),
		X:         x,
		W:         w,
		BaseSpeed: ts.baseSpeed,
		Dir:       l.dir,
	})
	l.seq++
	return true
}

func (l *Lane) canSpawn(x, w float64) bool {
	if len(l.obstacles) == 0 {
		return true
	}
	gap := l.p.MinGap
	if l.dir == 1 {
		minX := l.obstacles[0].X
		for _, o := range l.obstacles[1:] {
			minX = min(minX, o.X)
		}
		return x+w <= minX-gap
	}
	maxRight := l.obstacles[0].Right()
	for _, o := range l.obstacles[1:] {
		maxRight = max(maxRight, o.Right())
	}
	return x >= maxRight+gap
}

// enforceSpacing sorts obstacles left to right and pushes any that crept
// within the minimum gap of their left neighbour.
func (l *Lane) enforceSpacing() {
	if len(l.obstacles) < 2 {
		return
	}
	slices.SortFunc(l.obstacles, func(a, b Obstacle) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		}
		return 0
	})
	for i := 1; i < len(l.obstacles); i++ {
		prev := l.obstacles[i-1]
		if limit := prev.Right() + l.p.MinGap; l.obstacles[i].X < limit {
			l.obstacles[i].X = limit
		}
	}
}

func (l *Lane) cull() {
	margin := l.p.CullMargin
	right := l.p.ScreenW + margin
	l.obstacles = slices.DeleteFunc(l.obstacles, func(o Obstacle) bool {
		return o.Right() < -margin || o.X > right
	})
}

// Update advances the lane by dt seconds at difficulty mult.
func (l *Lane) Update(dt, mult float64) {
	switch l.kind {
	case Roadway, Waterway:
		l.updateTraffic(dt, mult)
	case Railway:
		l.updateRail(dt, mult)
	}
}

func (l *Lane) updateTraffic(dt, mult float64) {
	for i := range l.obstacles {
		l.obstacles[i].Advance(dt, mult)
	}
	l.cull()

	ts := l.traffic
	ts.timer += dt
	if ts.timer >= ts.interval/mult {
		ts.timer = 0
		ts.interval = uniform(l.rng, ts.cfg.SpawnMin, ts.cfg.SpawnMax)
		l.trySpawn()
	}
	l.enforceSpacing()
}

func (l *Lane) updateRail(dt, mult float64) {
	tc := l.p.Trains
	if !l.train.Active {
		l.trainTimer -= dt
		if !l.warned && l.trainTimer <= tc.Warning {
			l.warning = tc.Warning
			l.warned = true
		}
		if l.trainTimer <= 0 {
			l.spawnTrain()
		}
	} else {
		l.train.X += float64(l.train.Dir) * tc.Speed * mult * dt
		if l.trainCleared() {
			l.finishTrain(mult)
		}
	}

	if l.warning > 0 {
		l.warning = max(0, l.warning-dt)
	}
}

func (l *Lane) spawnTrain() {
	l.train.Active = true
	l.warning = 0
	if l.train.Dir == 1 {
		l.train.X = -l.train.Length - l.p.TrainSpawnOffset
	} else {
		l.train.X = l.p.ScreenW + l.p.TrainSpawnOffset
	}
}

func (l *Lane) trainCleared() bool {
	margin := l.p.TrainClearMargin
	if l.train.Dir == 1 {
		return l.train.X > l.p.ScreenW+margin
	}
	return l.train.X+l.train.Length < -margin
}

func (l *Lane) finishTrain(mult float64) {
	tc := l.p.Trains
	l.train.Active = false
	l.warned = false
	l.trainTimer = uniform(l.rng, tc.IntervalMin, tc.IntervalMax) / mult
	if l.rng.Float64() < tc.FlipChance {
		l.train.Dir = -l.train.Dir
	}
}

// Row returns the lane's row index.
func (l *Lane) Row() int { return l.row }

// Kind returns the lane's terrain type.
func (l *Lane) Kind() Kind { return l.kind }

// Dir returns the travel direction shared by the lane's obstacles.
func (l *Lane) Dir() int { return l.dir }

// IsBlocked reports whether a tree stands in col. Out-of-range columns
// and non-ground lanes are never blocked.
func (l *Lane) IsBlocked(col int) bool {
	if col < 0 || col >= len(l.blocked) {
		return false
	}
	return l.blocked[col]
}

// OpenColumns returns the unblocked columns in ascending order.
func (l *Lane) OpenColumns() []int {
	open := make([]int, 0, len(l.blocked))
	for c, b := range l.blocked {
		if !b {
			open = append(open, c)
		}
	}
	return open
}

// BlockedColumns returns the blocked columns in ascending order.
func (l *Lane) BlockedColumns() []int {
	var out []int
	for c, b := range l.blocked {
		if b {
			out = append(out, c)
		}
	}
	return out
}

// Obstacles returns a copy of the lane's cars or logs.
func (l *Lane) Obstacles() []Obstacle {
	return slices.Clone(l.obstacles)
}

// ObstacleAt returns the first obstacle whose span contains x.
func (l *Lane) ObstacleAt(x float64) (Obstacle, bool) {
	for _, o := range l.obstacles {
		if o.Span().Contains(x) {
			return o, true
		}
	}
	return Obstacle{}, false
}

// Train returns the railway's train state.
func (l *Lane) Train() Train { return l.train }

// TrainCountdown returns the seconds left before the next train while idle.
func (l *Lane) TrainCountdown() float64 { return l.trainTimer }

// Warning reports whether the crossing lights are on.
func (l *Lane) Warning() bool { return l.warning > 0 }
