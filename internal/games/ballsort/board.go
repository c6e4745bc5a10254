// Package ballsort implements the ball sort puzzle: colored balls spread
// across tubes must be sorted into single-color tubes using two empty
// buffer tubes.
package ballsort

import (
	"math/rand"
	"strings"
)

// Color is the color of a single ball.
type Color uint8

// Ball colors. NoColor is never stored in a tube.
const (
	NoColor Color = iota
	Red
	Blue
	Green
	Yellow
)

// Colors lists every ball color in board order.
var Colors = [...]Color{Red, Blue, Green, Yellow}

// Board geometry.
const (
	TubeCapacity = 4
	TubeCount    = 6
	BufferTubes  = 2
	FilledTubes  = TubeCount - BufferTubes
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	default:
		return "none"
	}
}

// Letter returns a one-letter code, used by Board.String and tests.
func (c Color) Letter() byte {
	switch c {
	case Red:
		return 'R'
	case Blue:
		return 'B'
	case Green:
		return 'G'
	case Yellow:
		return 'Y'
	default:
		return '.'
	}
}

// Tube is a stack of balls. Index 0 is the top, the ball a player picks up.
type Tube []Color

// Empty reports whether the tube holds no balls.
func (t Tube) Empty() bool {
	return len(t) == 0
}

// Full reports whether the tube is at capacity.
func (t Tube) Full() bool {
	return len(t) >= TubeCapacity
}

// Space returns how many more balls fit before the tube is full.
func (t Tube) Space() int {
	if t.Full() {
		return 0
	}
	return TubeCapacity - len(t)
}

// Top returns the color of the top ball, or NoColor for an empty tube.
func (t Tube) Top() Color {
	if t.Empty() {
		return NoColor
	}
	return t[0]
}

// RunLength returns the size of the contiguous same-color group at the top.
func (t Tube) RunLength() int {
	if t.Empty() {
		return 0
	}
	n := 1
	for n < len(t) && t[n] == t[0] {
		n++
	}
	return n
}

// Complete reports whether the tube holds exactly TubeCapacity balls of one color.
func (t Tube) Complete() bool {
	return len(t) == TubeCapacity && t.RunLength() == TubeCapacity
}

// Board is the ordered set of tubes for one session.
type Board [TubeCount]Tube

// NewBoard builds a fresh board: every filled tube holds each color once in
// an independently shuffled order, and the buffer tubes start empty.
func NewBoard(rng *rand.Rand) Board {
	var b Board
	for i := 0; i < FilledTubes; i++ {
		tube := make(Tube, len(Colors))
		copy(tube, Colors[:])
		// Fisher-Yates
		for j := len(tube) - 1; j > 0; j-- {
			k := rng.Intn(j + 1)
			tube[j], tube[k] = tube[k], tube[j]
		}
		b[i] = tube
	}
	for i := FilledTubes; i < TubeCount; i++ {
		b[i] = Tube{}
	}
	return b
}

// ParseBoard builds a board from letter strings, top ball first
// ("RRGB" is a tube with two reds on top). Missing tubes are empty.
// Unknown letters are rejected with ok=false.
func ParseBoard(tubes ...string) (Board, bool) {
	var b Board
	if len(tubes) > TubeCount {
		return b, false
	}
	for i := range b {
		b[i] = Tube{}
	}
	for i, s := range tubes {
		for j := 0; j < len(s); j++ {
			c := colorFromLetter(s[j])
			if c == NoColor {
				return b, false
			}
			b[i] = append(b[i], c)
		}
	}
	return b, true
}

func colorFromLetter(l byte) Color {
	for _, c := range Colors {
		if c.Letter() == l {
			return c
		}
	}
	return NoColor
}

// Clone returns a deep copy so moves never alias the caller's tubes.
func (b Board) Clone() Board {
	var out Board
	for i, t := range b {
		out[i] = append(Tube{}, t...)
	}
	return out
}

// Valid reports whether i is a tube index on the board.
func (b Board) Valid(i int) bool {
	return i >= 0 && i < len(b)
}

// ColorCounts returns how many balls of each color are on the board.
func (b Board) ColorCounts() map[Color]int {
	counts := make(map[Color]int, len(Colors))
	for _, t := range b {
		for _, c := range t {
			counts[c]++
		}
	}
	return counts
}

// CompleteTubes counts tubes holding four balls of one color.
func (b Board) CompleteTubes() int {
	n := 0
	for _, t := range b {
		if t.Complete() {
			n++
		}
	}
	return n
}

// String renders the board as "|RRGB|BGRG|...|" with tops on the left.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteByte('|')
	for _, t := range b {
		for _, c := range t {
			sb.WriteByte(c.Letter())
		}
		sb.WriteByte('|')
	}
	return sb.String()
}
