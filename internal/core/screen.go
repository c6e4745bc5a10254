package core

import "strings"

// Cell is one character position: a rune and the color it is drawn in.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a fixed-size grid of cells that games draw into each frame.
// Writes outside the grid are dropped; reads outside it return a blank.
type Screen struct {
	w, h  int
	cells []Cell // row-major, len w*h
}

// NewScreen returns a blank w x h screen.
func NewScreen(w, h int) *Screen {
	s := &Screen{}
	s.Resize(w, h)
	return s
}

// Width returns the screen width in cells.
func (s *Screen) Width() int { return s.w }

// Height returns the screen height in cells.
func (s *Screen) Height() int { return s.h }

// Resize changes the dimensions and blanks the screen. Resizing to the
// current size keeps the content.
func (s *Screen) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if s.cells != nil && w == s.w && h == s.h {
		return
	}
	s.w, s.h = w, h
	s.cells = make([]Cell, w*h)
	s.Clear()
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return 0, false
	}
	return y*s.w + x, true
}

// SetColored draws r in color c at (x, y).
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = Cell{Rune: r, Color: c}
	}
}

// GetCell returns the cell at (x, y).
func (s *Screen) GetCell(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blankCell
}

// Get returns the rune at (x, y).
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// DrawTextColored writes text left to right from (x, y), one rune per cell.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColored(x, y, r, c)
		x++
	}
}

// DrawTextCentered writes text on row y, centered horizontally.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	n := len([]rune(text))
	s.DrawTextColored((s.w-n)/2, y, text, c)
}

// DrawTube outlines an open-topped container filling r: two walls and a floor.
func (s *Screen) DrawTube(r Rect, c Color) {
	left, right, floor := r.X, r.Right()-1, r.Bottom()-1
	for y := r.Y; y < floor; y++ {
		s.SetColored(left, y, '│', c)
		s.SetColored(right, y, '│', c)
	}
	for x := left + 1; x < right; x++ {
		s.SetColored(x, floor, '─', c)
	}
	s.SetColored(left, floor, '└', c)
	s.SetColored(right, floor, '┘', c)
}

// Row returns row y as plain text; rows outside the screen are all spaces.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.h {
		return strings.Repeat(" ", s.w)
	}
	var b strings.Builder
	for _, c := range s.cells[y*s.w : (y+1)*s.w] {
		b.WriteRune(c.Rune)
	}
	return b.String()
}

// String returns the whole screen as plain text, one line per row.
func (s *Screen) String() string {
	rows := make([]string, s.h)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
