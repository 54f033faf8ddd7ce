package hopper

import "github.com/vovakirdan/lane-hopper/internal/config"

// Params is the configuration resolved into world units. It is shared,
// read-only, by the world, every lane and the player of one session.
type Params struct {
	Tile        float64
	Columns     int
	VisibleRows int
	ScreenW     float64 // Columns * Tile
	ScreenH     float64 // VisibleRows * Tile

	SafeRows     int
	Lookahead    int
	UpdateBehind int
	PruneBehind  int

	ScrollSpeed float64 // units per second at difficulty 1.0

	Cars   config.TrafficConfig
	Logs   config.TrafficConfig
	Trains config.TrainConfig

	TrainLength      float64
	TrainSpawnOffset float64
	TrainClearMargin float64

	MinGap      float64
	SpawnJitter float64
	CullMargin  float64

	StartRow   int
	DipSeconds float64

	Curve config.DifficultyCurve
}

// NewParams resolves a validated configuration.
func NewParams(cfg config.HopperConfig) *Params {
	tile := cfg.Grid.Tile
	return &Params{
		Tile:        tile,
		Columns:     cfg.Grid.Columns,
		VisibleRows: cfg.Grid.VisibleRows,
		ScreenW:     float64(cfg.Grid.Columns) * tile,
		ScreenH:     float64(cfg.Grid.VisibleRows) * tile,

		SafeRows:     cfg.World.SafeRows,
		Lookahead:    cfg.World.Lookahead,
		UpdateBehind: cfg.World.UpdateBehind,
		PruneBehind:  cfg.World.PruneBehind,

		ScrollSpeed: cfg.Scroll.BaseTilesPerSec * tile,

		Cars:   cfg.Cars,
		Logs:   cfg.Logs,
		Trains: cfg.Trains,

		TrainLength:      cfg.Trains.LengthTiles * tile,
		TrainSpawnOffset: cfg.Trains.SpawnOffsetTiles * tile,
		TrainClearMargin: cfg.Trains.ClearMarginTiles * tile,

		MinGap:      cfg.Spacing.MinGapTiles * tile,
		SpawnJitter: cfg.Spacing.SpawnJitterTiles * tile,
		CullMargin:  cfg.Spacing.CullMarginTiles * tile,

		StartRow:   cfg.Player.StartRow,
		DipSeconds: cfg.Player.DipSeconds,

		Curve: cfg.Difficulty,
	}
}

// ColumnCenter returns the world x of a column's center.
func (p *Params) ColumnCenter(col int) float64 {
	return float64(col)*p.Tile + p.Tile/2
}

// ColumnOf maps a world x onto its column by floor division.
func (p *Params) ColumnOf(x float64) int {
	col := int(x / p.Tile)
	if x < 0 {
		col--
	}
	return col
}

// ScreenY returns the top edge of a row on the logical screen
// (y grows downwards, rows grow upwards) for a camera offset.
func (p *Params) ScreenY(row int, cameraY float64) float64 {
	return (p.ScreenH - p.Tile) - (float64(row)*p.Tile - cameraY)
}

// allColumns returns 0..Columns-1.
func (p *Params) allColumns() []int {
	cols := make([]int, p.Columns)
	for i := range cols {
		cols[i] = i
	}
	return cols
}
