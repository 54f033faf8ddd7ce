package hopper

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/lane-hopper/internal/config"
)

// Intents is the input gathered for one tick.
type Intents struct {
	Moves   []Direction // applied in order
	Restart bool        // honored only while dead
}

// Session is one run: a world, a player and the camera that chases them.
// A session is driven by a single goroutine.
type Session struct {
	cfg    config.HopperConfig
	p      *Params
	seeds  *rand.Rand
	seed   int64
	world  *World
	player *Player

	cameraY float64
	tick    uint64
}

// NewSession starts a run from seed. Restarts draw their seeds from a
// stream derived from the same value, so a whole sequence of runs is
// reproducible.
func NewSession(cfg config.HopperConfig, seed int64) *Session {
	s := &Session{
		cfg:   cfg,
		p:     NewParams(cfg),
		seeds: rand.New(rand.NewSource(seed)),
	}
	s.start(seed)
	return s
}

// start discards the previous world and player wholesale.
func (s *Session) start(seed int64) {
	s.seed = seed
	s.world = NewWorld(s.p, rand.New(rand.NewSource(seed)))
	s.player = NewPlayer(s.p)
	s.cameraY = 0
	s.tick = 0
}

// Restart begins a new run with an explicit seed.
func (s *Session) Restart(seed int64) {
	s.start(seed)
}

// Tick advances the run by dt seconds and returns the resulting snapshot.
func (s *Session) Tick(dt float64, in Intents) Snapshot {
	if in.Restart && !s.player.Alive() {
		s.start(s.seeds.Int63())
		return s.Snapshot()
	}

	for _, m := range in.Moves {
		s.player.TryMove(m, s.world)
	}

	mult := s.Difficulty()
	if s.player.Alive() {
		s.cameraY += s.p.ScrollSpeed * mult * dt
	}
	camRow := s.CameraRow()

	s.world.Update(dt, camRow, mult)
	s.player.Update(dt, s.world, s.cameraY, mult)
	s.tick++

	return s.Snapshot()
}

// Snapshot captures the lanes visible from the camera plus a small margin.
func (s *Session) Snapshot() Snapshot {
	from := max(0, s.CameraRow()-3)
	to := int((s.cameraY+s.p.ScreenH-s.p.Tile)/s.p.Tile) + 3
	return s.View(from, to)
}

// View captures a snapshot whose lanes cover rows from..to. Only lanes
// already generated are included.
func (s *Session) View(from, to int) Snapshot {
	lanes := s.world.Lanes(from, to)
	views := make([]LaneView, len(lanes))
	for i, l := range lanes {
		views[i] = viewOf(l)
	}
	pl := s.player
	return Snapshot{
		Tick:       s.tick,
		Seed:       s.seed,
		Score:      pl.MaxRow(),
		Difficulty: s.Difficulty(),
		CameraY:    s.cameraY,
		CameraRow:  s.CameraRow(),
		Lanes:      views,
		Player: PlayerView{
			Row:      pl.Row,
			Col:      pl.Col,
			X:        pl.X,
			Alive:    pl.Alive(),
			Riding:   pl.Riding(),
			DipPhase: pl.DipPhase(),
		},
	}
}

// Difficulty is the current multiplier, driven by the score.
func (s *Session) Difficulty() float64 {
	return s.p.Curve.At(s.player.MaxRow())
}

// CameraRow is the camera offset in whole rows.
func (s *Session) CameraRow() int {
	return int(math.Floor(s.cameraY / s.p.Tile))
}

// Score returns the furthest row reached.
func (s *Session) Score() int { return s.player.MaxRow() }

// Alive reports whether the run is still going.
func (s *Session) Alive() bool { return s.player.Alive() }

// Seed returns the seed of the current run.
func (s *Session) Seed() int64 { return s.seed }

// Ticks returns the number of ticks simulated in the current run.
func (s *Session) Ticks() uint64 { return s.tick }

// Params exposes the resolved configuration.
func (s *Session) Params() *Params { return s.p }

// World exposes the world for inspection.
func (s *Session) World() *World { return s.world }

// Player exposes the player for inspection.
func (s *Session) Player() *Player { return s.player }
