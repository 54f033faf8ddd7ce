package hopper

// Direction is a one-tile hop.
type Direction uint8

const (
	NoMove Direction = iota
	Forward
	Back
	Left
	Right
)

func (d Direction) delta() (dRow, dCol int) {
	switch d {
	case Forward:
		return 1, 0
	case Back:
		return -1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Back:
		return "back"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Player is the chicken. Row and Col are its grid cell; X is the
// continuous horizontal position of its center, which drifts off the
// column center while riding a log.
type Player struct {
	p *Params

	Row int
	Col int
	X   float64

	alive  bool
	maxRow int

	riding bool
	rideID ObstacleID
	dip    float64
}

// NewPlayer places the player at the start cell, centered.
func NewPlayer(p *Params) *Player {
	col := p.Columns / 2
	return &Player{
		p:      p,
		Row:    p.StartRow,
		Col:    col,
		X:      p.ColumnCenter(col),
		alive:  true,
		maxRow: p.StartRow,
	}
}

// TryMove hops one tile. Moves off the grid, below row 0 or into a tree
// are rejected and leave the player untouched. A successful move snaps X
// to the new column's center.
func (pl *Player) TryMove(d Direction, w *World) bool {
	if !pl.alive || d == NoMove {
		return false
	}
	dRow, dCol := d.delta()
	row, col := pl.Row+dRow, pl.Col+dCol
	if col < 0 || col >= pl.p.Columns || row < 0 {
		return false
	}
	if w.LaneAt(row).IsBlocked(col) {
		return false
	}

	pl.Row, pl.Col = row, col
	pl.X = pl.p.ColumnCenter(col)
	pl.maxRow = max(pl.maxRow, row)
	return true
}

// Update applies the lane the player stands on: waterway riding, road and
// train hits, and falling behind the camera. Death is sticky.
func (pl *Player) Update(dt float64, w *World, cameraY, mult float64) {
	if !pl.alive {
		return
	}
	if pl.dip > 0 {
		pl.dip = max(0, pl.dip-dt)
	}

	lane := w.LaneAt(pl.Row)
	switch lane.Kind() {
	case Waterway:
		pl.updateRiding(dt, lane, mult)
	case Roadway:
		pl.riding = false
		if _, hit := lane.ObstacleAt(pl.X); hit {
			pl.alive = false
		}
	case Railway:
		pl.riding = false
		if t := lane.Train(); t.Active && t.Span().Contains(pl.X) {
			pl.alive = false
		}
	default:
		pl.riding = false
	}
	if !pl.alive {
		return
	}

	if pl.p.ScreenY(pl.Row, cameraY) > pl.p.ScreenH {
		pl.alive = false
	}
}

func (pl *Player) updateRiding(dt float64, lane *Lane, mult float64) {
	log, ok := lane.ObstacleAt(pl.X)
	if !ok {
		pl.riding = false
		pl.alive = false
		return
	}
	if !pl.riding || pl.rideID != log.ID {
		pl.dip = pl.p.DipSeconds
	}
	pl.riding = true
	pl.rideID = log.ID

	pl.X += log.Velocity(mult) * dt
	if pl.X < 0 || pl.X > pl.p.ScreenW {
		pl.alive = false
		return
	}
	pl.Col = pl.p.ColumnOf(pl.X)
}

// Alive reports whether the run is still going.
func (pl *Player) Alive() bool { return pl.alive }

// MaxRow is the furthest row reached; it is the score.
func (pl *Player) MaxRow() int { return pl.maxRow }

// Riding reports whether the player is standing on a log.
func (pl *Player) Riding() bool { return pl.riding }

// DipPhase returns the landing animation progress, 1 just after landing
// on a log and 0 once it has settled.
func (pl *Player) DipPhase() float64 {
	if pl.p.DipSeconds <= 0 {
		return 0
	}
	return pl.dip / pl.p.DipSeconds
}
