// Package hopper implements Lane Hopper, an endless lane-crossing arcade
// game. The world is generated row by row from a seed: safe ground with
// trees, roads with cars, rivers with drifting logs and railways with
// trains. The camera scrolls forward on its own and the run ends when
// the chicken is hit, drowns or falls off the bottom of the screen.
package hopper

import (
	"github.com/vovakirdan/lane-hopper/internal/config"
	"github.com/vovakirdan/lane-hopper/internal/core"
	"github.com/vovakirdan/lane-hopper/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "hopper"

// Game adapts a Session to the platform's fixed-step game contract.
type Game struct {
	cfg     config.HopperConfig
	runtime core.RuntimeConfig
	session *Session
	snap    Snapshot
	dt      float64
	paused  bool
	best    int
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the configured curve.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lane Hopper"
}

// Reset starts a new run seeded from runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.dt = runtime.StepDuration()

	cfg, err := config.LoadHopper(configPath)
	if err != nil {
		cfg = config.DefaultHopperConfig()
	}
	if difficultyPreset != "" {
		config.ApplyHopperPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.session = NewSession(cfg, runtime.Seed)
	g.snap = g.session.Snapshot()
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.session.Alive() {
		if in.Has(core.ActionRestart) {
			g.snap = g.session.Tick(0, Intents{Restart: true})
			g.paused = false
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.snap = g.session.Tick(g.dt, Intents{Moves: movesFrom(in)})
	g.best = max(g.best, g.snap.Score)

	return core.StepResult{State: g.State()}
}

func movesFrom(in core.InputFrame) []Direction {
	if len(in.Moves) == 0 {
		return nil
	}
	moves := make([]Direction, 0, len(in.Moves))
	for _, a := range in.Moves {
		switch a {
		case core.ActionUp:
			moves = append(moves, Forward)
		case core.ActionDown:
			moves = append(moves, Back)
		case core.ActionLeft:
			moves = append(moves, Left)
		case core.ActionRight:
			moves = append(moves, Right)
		}
	}
	return moves
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: !g.session.Alive(),
		Paused:   g.paused,
	}
}

// Session exposes the running session.
func (g *Game) Session() *Session {
	return g.session
}

// Snapshot returns the snapshot produced by the last step.
func (g *Game) Snapshot() Snapshot {
	return g.snap
}

// Best returns the best score seen by this instance.
func (g *Game) Best() int {
	return g.best
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
