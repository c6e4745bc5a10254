package ballsort

import (
	"errors"
	"fmt"
)

// Move failures. None of them are fatal: the board is left as it was and the
// player simply tries again.
var (
	// ErrEmptyTube is returned when picking up from a tube with no balls.
	ErrEmptyTube = errors.New("ballsort: select a non-empty tube")

	// ErrInvalidMove covers an empty source, a full destination, or an index
	// that is not on the board.
	ErrInvalidMove = errors.New("ballsort: invalid move")

	// ErrColorMismatch is returned when the moved run does not match the
	// destination's top ball.
	ErrColorMismatch = errors.New("ballsort: color does not match")

	// ErrSameTube is returned for a move whose source and destination are
	// the same tube. It is also an ErrInvalidMove.
	ErrSameTube = fmt.Errorf("%w: same source and destination", ErrInvalidMove)
)
