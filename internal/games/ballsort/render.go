package ballsort

import (
	"fmt"

	"github.com/vovakirdan/ballsort/internal/core"
)

// Visual constants.
const (
	BallChar   = '●'
	CursorChar = '▲'

	tubeWidth = 5 // wall, space, ball, space, wall
	tubeGap   = 3
	liftRows  = 2 // room above the tubes for the picked-up ball
	hudRows   = 2
)

var ballColors = map[Color]core.Color{
	Red:    core.ColorRed,
	Blue:   core.ColorBlue,
	Green:  core.ColorGreen,
	Yellow: core.ColorYellow,
}

// layout places the tubes on screen.
type layout struct {
	tubes [TubeCount]core.Rect
	depth int // ball rows inside a tube
	fits  bool
}

func newLayout(screenW, screenH int, b Board) layout {
	depth := TubeCapacity
	for _, t := range b {
		depth = max(depth, len(t))
	}

	totalW := TubeCount*tubeWidth + (TubeCount-1)*tubeGap
	tubeH := depth + 1 // balls + floor
	// HUD, lift space, tube, label row, cursor row
	totalH := hudRows + liftRows + tubeH + 2

	l := layout{depth: depth, fits: screenW >= totalW && screenH >= totalH}

	x0 := max(0, (screenW-totalW)/2)
	y0 := hudRows + liftRows + max(0, (screenH-totalH)/2)
	for i := range l.tubes {
		l.tubes[i] = core.NewRect(x0+i*(tubeWidth+tubeGap), y0, tubeWidth, tubeH)
	}
	return l
}

// hit returns the tube whose column contains (x, y). The column spans from
// the lift area down to the cursor row so a click near a tube still counts.
func (l layout) hit(x, y int) (int, bool) {
	for i, r := range l.tubes {
		column := r.Extend(liftRows, 2)
		if column.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// Render draws the board into the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorYellow)
		return
	}

	hud := fmt.Sprintf("%s   Moves: %d", g.title, g.session.Moves)
	dst.DrawTextCentered(0, hud, core.ColorBrightWhite)

	for i, r := range g.layout.tubes {
		g.renderTube(dst, i, r)
	}

	if g.session.Won {
		dst.DrawTextCentered(1, "Solved!", core.ColorGreen)
	}
}

func (g *Game) renderTube(dst *core.Screen, i int, r core.Rect) {
	tube := g.session.Board[i]
	selected := g.session.Selected == i

	wall := core.ColorGray
	if selected {
		wall = core.ColorBrightWhite
	}
	dst.DrawTube(r, wall)

	ballX, _ := r.Center()
	floor := r.Bottom() - 1

	// The picked-up ball hovers above the tube instead of sitting inside it.
	visible := tube
	if selected && !tube.Empty() {
		dst.SetColored(ballX, r.Y-liftRows, BallChar, ballColors[tube.Top()])
		visible = tube[1:]
	}

	// Bottom of the stack sits on the floor.
	for k := range visible {
		y := floor - len(visible) + k
		dst.SetColored(ballX, y, BallChar, ballColors[visible[k]])
	}

	dst.DrawTextColored(ballX, floor+1, fmt.Sprintf("%d", i+1), core.ColorGray)
	if g.cursor == i {
		dst.SetColored(ballX, floor+2, CursorChar, core.ColorYellow)
	}
}
