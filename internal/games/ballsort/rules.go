package ballsort

import "fmt"

// RunPolicy decides what happens when the run being moved is longer than
// the free space in the destination tube.
type RunPolicy string

const (
	// RunCapped moves only as many balls as fit; the rest stay in the source.
	RunCapped RunPolicy = "capped"
	// RunOverflow moves the whole run even if the destination ends up above
	// capacity. This is the rule of the classic version of the game.
	RunOverflow RunPolicy = "overflow"
)

// ParseRunPolicy converts a config string into a RunPolicy.
// An empty string selects RunCapped.
func ParseRunPolicy(s string) (RunPolicy, error) {
	switch RunPolicy(s) {
	case "", RunCapped:
		return RunCapped, nil
	case RunOverflow:
		return RunOverflow, nil
	default:
		return "", fmt.Errorf("ballsort: unknown run policy %q", s)
	}
}

// MoveBalls moves the top run of tube from onto tube to.
//
// On success it returns the updated board and the number of balls moved.
// On failure it returns b unchanged together with ErrInvalidMove,
// ErrSameTube or ErrColorMismatch. b itself is never modified.
func MoveBalls(b Board, from, to int, policy RunPolicy) (Board, int, error) {
	if !b.Valid(from) || !b.Valid(to) {
		return b, 0, ErrInvalidMove
	}
	if from == to {
		return b, 0, ErrSameTube
	}

	src, dst := b[from], b[to]
	if src.Empty() || dst.Full() {
		return b, 0, ErrInvalidMove
	}

	color := src.Top()
	if !dst.Empty() && dst.Top() != color {
		// The run goes straight back where it came from.
		return b, 0, ErrColorMismatch
	}

	n := src.RunLength()
	if policy != RunOverflow && n > dst.Space() {
		n = dst.Space()
	}

	next := b.Clone()
	run := next[from][:n]
	moved := make(Tube, 0, n+len(dst))
	moved = append(moved, run...)
	moved = append(moved, next[to]...)
	next[to] = moved
	next[from] = next[from][n:]

	return next, n, nil
}

// CheckWin reports whether the board is solved: at least FilledTubes tubes
// are complete, or both buffer tubes (the last two) are empty again.
func CheckWin(b Board) bool {
	if b.CompleteTubes() >= FilledTubes {
		return true
	}
	for i := TubeCount - BufferTubes; i < TubeCount; i++ {
		if !b[i].Empty() {
			return false
		}
	}
	return true
}
