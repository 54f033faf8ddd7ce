package hopper

import (
	"fmt"
	"math"

	"github.com/vovakirdan/lane-hopper/internal/core"
)

// Visual characters for rendering
const (
	GrassChar   = '░'
	TreeChar    = '♣'
	RoadChar    = '·'
	CarChar     = '█'
	WaterChar   = '~'
	LogChar     = '▬'
	RailChar    = '═'
	TrainChar   = '▓'
	WarningChar = '!'
	ChickenChar = '@'
	DipChar     = '^'
	SplatChar   = 'X'
)

var (
	grassStyle = core.Style{FG: core.ColorGreen, BG: core.ColorDarkGreen}
	treeStyle  = core.Style{FG: core.ColorBrightGreen, BG: core.ColorDarkGreen}
	roadStyle  = core.Style{FG: core.ColorGray, BG: core.ColorDarkGray}
	waterStyle = core.Style{FG: core.ColorBlue, BG: core.ColorDeepBlue}
	logStyle   = core.Style{FG: core.ColorOrange, BG: core.ColorBrown}
	railStyle  = core.Style{FG: core.ColorGray, BG: core.ColorBlack}
	trainStyle = core.Style{FG: core.ColorBrightWhite, BG: core.ColorGray}
	hudStyle   = core.Style{FG: core.ColorBrightWhite}
	boxStyle   = core.Style{FG: core.ColorBrightYellow, BG: core.ColorBlack}

	carColors = []core.Color{core.ColorRed, core.ColorYellow, core.ColorBrightRed, core.ColorWhite}
)

// Minimum terminal cells per tile and the cap used on wide terminals.
const (
	minCellW = 2
	maxCellW = 4
)

// Board maps world coordinates onto screen cells. Each row of the world
// takes one line; each tile takes CellW columns.
type Board struct {
	p       *Params
	OriginX int
	Top     int // first line of the play area
	Bottom  int // last line of the play area
	CellW   int
}

// NewBoard fits the grid into a screen of w×h cells, keeping line 0 for
// the HUD. ok is false when the screen is too small to play on.
func NewBoard(p *Params, w, h int) (b Board, ok bool) {
	cellW := core.Clamp(w/p.Columns, minCellW, maxCellW)
	boardW := cellW * p.Columns
	b = Board{
		p:       p,
		OriginX: max(0, (w-boardW)/2),
		Top:     1,
		Bottom:  h - 1,
		CellW:   cellW,
	}
	return b, boardW <= w && h >= 6
}

// Width returns the board width in cells.
func (b Board) Width() int {
	return b.CellW * b.p.Columns
}

// Rows returns the world rows the board can show for a camera offset.
func (b Board) Rows(cameraY float64) (from, to int) {
	from = int(math.Floor(cameraY / b.p.Tile))
	return from, from + (b.Bottom - b.Top) + 1
}

// LineOf returns the screen line of row.
func (b Board) LineOf(row int, cameraY float64) int {
	off := float64(row) - cameraY/b.p.Tile
	return b.Bottom - int(math.Floor(off+0.5))
}

// CellOf returns the screen column of world x.
func (b Board) CellOf(x float64) int {
	return b.OriginX + int(math.Floor(x/b.p.Tile*float64(b.CellW)))
}

func (b Board) drawSpan(dst *core.Screen, y int, span core.Span, r rune, st core.Style) {
	x0 := max(b.CellOf(span.Min), b.OriginX)
	x1 := min(max(b.CellOf(span.Max), x0+1), b.OriginX+b.Width())
	for x := x0; x < x1; x++ {
		dst.SetStyled(x, y, r, st)
	}
}

func (b Board) drawLane(dst *core.Screen, lv LaneView, y int, tick uint64) {
	left, width := b.OriginX, b.Width()
	row := core.NewRect(left, y, width, 1)

	switch lv.Kind {
	case Ground:
		dst.DrawRect(row, GrassChar, grassStyle)
		for _, c := range lv.Blocked {
			for dx := 0; dx < b.CellW; dx++ {
				dst.SetStyled(left+c*b.CellW+dx, y, TreeChar, treeStyle)
			}
		}
	case Roadway:
		dst.DrawRect(row, RoadChar, roadStyle)
		for _, o := range lv.Obstacles {
			st := core.Style{FG: carColors[int(o.ID%ObstacleID(len(carColors)))], BG: roadStyle.BG}
			b.drawSpan(dst, y, o.Span(), CarChar, st)
		}
	case Waterway:
		dst.DrawRect(row, WaterChar, waterStyle)
		for _, o := range lv.Obstacles {
			b.drawSpan(dst, y, o.Span(), LogChar, logStyle)
		}
	case Railway:
		dst.DrawRect(row, RailChar, railStyle)
		if lv.Train.Active {
			b.drawSpan(dst, y, lv.Train.Span(), TrainChar, trainStyle)
		}
		if lv.Warning {
			fg := core.ColorYellow
			if (tick/8)%2 == 0 {
				fg = core.ColorBrightRed
			}
			st := core.Style{FG: fg, BG: railStyle.BG}
			dst.SetStyled(left, y, WarningChar, st)
			dst.SetStyled(left+width-1, y, WarningChar, st)
		}
	}
}

func (b Board) drawPlayer(dst *core.Screen, pv PlayerView, cameraY float64, tick uint64) {
	y := b.LineOf(pv.Row, cameraY)
	if y < b.Top || y > b.Bottom {
		return
	}
	x := b.CellOf(pv.X)
	bg := dst.GetCell(x, y).Style.BG

	switch {
	case !pv.Alive:
		fg := core.ColorBrightRed
		if (tick/8)%2 == 1 {
			fg = core.ColorRed
		}
		dst.SetStyled(x, y, SplatChar, core.Style{FG: fg, BG: bg})
	case pv.DipPhase > 0.5:
		dst.SetStyled(x, y, DipChar, core.Style{FG: core.ColorBrightYellow, BG: bg})
	default:
		dst.SetStyled(x, y, ChickenChar, core.Style{FG: core.ColorBrightYellow, BG: bg})
	}
}

// Draw renders a snapshot onto the play area.
func (b Board) Draw(dst *core.Screen, snap Snapshot) {
	for _, lv := range snap.Lanes {
		y := b.LineOf(lv.Row, snap.CameraY)
		if y < b.Top || y > b.Bottom {
			continue
		}
		b.drawLane(dst, lv, y, snap.Tick)
	}
	b.drawPlayer(dst, snap.Player, snap.CameraY, snap.Tick)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	board, ok := NewBoard(g.session.Params(), dst.Width(), dst.Height())
	if !ok {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	from, to := board.Rows(g.snap.CameraY)
	snap := g.session.View(from, to)
	board.Draw(dst, snap)

	dst.DrawTextStyled(board.OriginX, 0, fmt.Sprintf(" Score: %d  Best: %d ", snap.Score, max(g.best, snap.Score)), hudStyle)
	diffText := fmt.Sprintf(" x%.2f ", snap.Difficulty)
	dst.DrawTextStyled(board.OriginX+board.Width()-len(diffText), 0, diffText, hudStyle)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if !snap.Player.Alive {
		drawCenteredMessage(dst, "SPLAT!", fmt.Sprintf("Score: %d  |  R restart  Q quit", snap.Score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', boxStyle)
	dst.DrawBox(box, boxStyle)
	dst.DrawTextStyled(box.X+(boxW-len(title))/2, box.Y+1, title, boxStyle)
	dst.DrawTextStyled(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle, boxStyle)
}
