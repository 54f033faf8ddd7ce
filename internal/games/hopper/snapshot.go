package hopper

// LaneView is the read-only state of one visible lane.
type LaneView struct {
	Row       int
	Kind      Kind
	Dir       int
	Blocked   []int
	Obstacles []Obstacle
	Train     Train
	Warning   bool
}

// PlayerView is the read-only state of the player.
type PlayerView struct {
	Row      int
	Col      int
	X        float64
	Alive    bool
	Riding   bool
	DipPhase float64
}

// Snapshot is what a renderer sees after a tick. Lanes are ordered by
// ascending row.
type Snapshot struct {
	Tick       uint64
	Seed       int64
	Score      int
	Difficulty float64
	CameraY    float64
	CameraRow  int
	Lanes      []LaneView
	Player     PlayerView
}

// Lane returns the view of row, if it is part of the snapshot.
func (s Snapshot) Lane(row int) (LaneView, bool) {
	for _, lv := range s.Lanes {
		if lv.Row == row {
			return lv, true
		}
	}
	return LaneView{}, false
}

func viewOf(l *Lane) LaneView {
	return LaneView{
		Row:       l.row,
		Kind:      l.kind,
		Dir:       l.dir,
		Blocked:   l.BlockedColumns(),
		Obstacles: l.Obstacles(),
		Train:     l.train,
		Warning:   l.Warning(),
	}
}
