package ballsort

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/ballsort/internal/core"
)

// NoSelection marks a session where no tube is picked up.
const NoSelection = -1

// Notice is a transient, player-facing message produced by a tap.
type Notice int

const (
	NoticeNone Notice = iota
	NoticeSelectNonEmpty
	NoticeInvalidMove
	NoticeColorMismatch
	NoticeWin
)

// String returns the text shown to the player.
func (n Notice) String() string {
	switch n {
	case NoticeSelectNonEmpty:
		return "Select a non-empty tube!"
	case NoticeInvalidMove:
		return "Invalid move!"
	case NoticeColorMismatch:
		return "Invalid move: Ball color does not match!"
	case NoticeWin:
		return "You Win!"
	default:
		return ""
	}
}

// noticeFor maps a move error to the notice the player sees.
func noticeFor(err error) Notice {
	switch {
	case err == nil:
		return NoticeNone
	case errors.Is(err, ErrEmptyTube):
		return NoticeSelectNonEmpty
	case errors.Is(err, ErrColorMismatch):
		return NoticeColorMismatch
	default:
		return NoticeInvalidMove
	}
}

// Session is the complete state of one game. It is a value: Update returns
// a new Session and never mutates the board of the one it was given.
type Session struct {
	Board    Board
	Selected int
	Moves    int
	Won      bool
	Policy   RunPolicy
}

// NewSession shuffles a fresh board.
func NewSession(rng *rand.Rand, policy RunPolicy) Session {
	return Session{
		Board:    NewBoard(rng),
		Selected: NoSelection,
		Policy:   policy,
	}
}

// NewSessionFromBoard starts a session on a prepared board.
func NewSessionFromBoard(b Board, policy RunPolicy) Session {
	return Session{
		Board:    b.Clone(),
		Selected: NoSelection,
		Policy:   policy,
	}
}

// HasSelection reports whether a tube is currently picked up.
func (s Session) HasSelection() bool {
	return s.Selected != NoSelection
}

// Outcome describes what a single input did.
type Outcome struct {
	Notice   Notice
	Err      error            // nil on success or when nothing happened
	Moved    int              // balls moved by this input
	Navigate core.Destination // set when the platform should switch screens
}

// Event is an input consumed by Update.
type Event interface {
	event()
}

// TapEvent is a tap on the tube at index Tube.
type TapEvent struct {
	Tube int
}

// ResetEvent discards the session and shuffles a new board from Seed.
type ResetEvent struct {
	Seed int64
}

func (TapEvent) event()   {}
func (ResetEvent) event() {}

// Update applies one input event to the session.
func Update(s Session, ev Event) (Session, Outcome) {
	switch e := ev.(type) {
	case TapEvent:
		return SelectTube(s, e.Tube)
	case ResetEvent:
		return NewSession(rand.New(rand.NewSource(e.Seed)), s.Policy), Outcome{}
	default:
		return s, Outcome{}
	}
}

// SelectTube handles a tap on a tube.
//
// With nothing picked up, a non-empty tube becomes the selection and an empty
// one is rejected. With a tube picked up, the tap is a move attempt from the
// selection to index, and the selection is cleared whatever the result.
// Tapping the selected tube again is a self-move and fails. Once the puzzle
// is won further taps are ignored.
func SelectTube(s Session, index int) (Session, Outcome) {
	if s.Won {
		return s, Outcome{}
	}

	if !s.HasSelection() {
		switch {
		case !s.Board.Valid(index):
			return s, Outcome{Notice: NoticeInvalidMove, Err: ErrInvalidMove}
		case s.Board[index].Empty():
			return s, Outcome{Notice: NoticeSelectNonEmpty, Err: ErrEmptyTube}
		}
		s.Selected = index
		return s, Outcome{}
	}

	from := s.Selected
	s.Selected = NoSelection

	next, moved, err := MoveBalls(s.Board, from, index, s.Policy)
	if err != nil {
		return s, Outcome{Notice: noticeFor(err), Err: err}
	}

	s.Board = next
	s.Moves++
	out := Outcome{Moved: moved}

	if CheckWin(s.Board) {
		s.Won = true
		out.Notice = NoticeWin
		out.Navigate = core.DestHome
	}
	return s, out
}
