package ballsort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/ballsort/internal/core"
)

func scenarioSession(t *testing.T) Session {
	return NewSessionFromBoard(scenarioBoard(t), RunCapped)
}

func TestSelectThenMoveToBuffer(t *testing.T) {
	s := scenarioSession(t)

	s, out := SelectTube(s, 0)
	assert.Equal(t, 0, s.Selected)
	assert.Equal(t, NoticeNone, out.Notice)

	s, out = SelectTube(s, 4)
	require.NoError(t, out.Err)
	assert.Equal(t, 2, out.Moved)
	assert.Equal(t, NoSelection, s.Selected)
	assert.Equal(t, Tube{Red, Red}, s.Board[4])
	assert.Equal(t, Tube{Green, Blue}, s.Board[0])
	assert.Equal(t, 1, s.Moves)
	assert.False(t, s.Won)
}

func TestSelectEmptyTube(t *testing.T) {
	s := scenarioSession(t)

	next, out := SelectTube(s, 5)
	assert.ErrorIs(t, out.Err, ErrEmptyTube)
	assert.Equal(t, NoticeSelectNonEmpty, out.Notice)
	assert.Equal(t, NoSelection, next.Selected)
	assert.Equal(t, s.Board.String(), next.Board.String())
}

func TestSelectSameTubeTwice(t *testing.T) {
	s := scenarioSession(t)

	s, _ = SelectTube(s, 1)
	s, out := SelectTube(s, 1)
	assert.ErrorIs(t, out.Err, ErrSameTube)
	assert.Equal(t, NoticeInvalidMove, out.Notice)
	assert.Equal(t, NoSelection, s.Selected)
	assert.Zero(t, s.Moves)
}

func TestFailedMoveClearsSelection(t *testing.T) {
	s := NewSessionFromBoard(mismatchBoard(t), RunCapped)

	s, _ = SelectTube(s, 0)
	s, out := SelectTube(s, 1)
	assert.ErrorIs(t, out.Err, ErrColorMismatch)
	assert.Equal(t, NoticeColorMismatch, out.Notice)
	assert.Equal(t, NoSelection, s.Selected)
	assert.Zero(t, s.Moves)
	assert.Equal(t, mismatchBoard(t).String(), s.Board.String())
}

func TestSelectOutOfRange(t *testing.T) {
	s := scenarioSession(t)

	_, out := SelectTube(s, 6)
	assert.ErrorIs(t, out.Err, ErrInvalidMove)
	assert.Equal(t, NoticeInvalidMove, out.Notice)
}

func TestWinningMoveNavigatesHome(t *testing.T) {
	s := NewSessionFromBoard(mustBoard(t, "RRRR", "BBBB", "GGGG", "YYY", "Y"), RunCapped)

	s, _ = SelectTube(s, 4)
	s, out := SelectTube(s, 3)
	require.NoError(t, out.Err)
	assert.True(t, s.Won)
	assert.Equal(t, NoticeWin, out.Notice)
	assert.Equal(t, core.DestHome, out.Navigate)

	// Terminal: further taps do nothing.
	after, out := SelectTube(s, 0)
	assert.Equal(t, s, after)
	assert.Equal(t, Outcome{}, out)
}

func TestEmptyBuffersWinPath(t *testing.T) {
	// Returning the last buffered ball leaves both buffers empty.
	s := NewSessionFromBoard(mustBoard(t, "RGB", "GBYR", "BYRG", "YGBY", "R"), RunCapped)

	s, _ = SelectTube(s, 4)
	s, out := SelectTube(s, 0)
	require.NoError(t, out.Err)
	assert.Equal(t, Tube{Red, Red, Green, Blue}, s.Board[0])
	assert.Zero(t, s.Board.CompleteTubes())
	assert.True(t, s.Won)
	assert.Equal(t, NoticeWin, out.Notice)
}

func TestColorMismatchDoesNotCheckWin(t *testing.T) {
	// An overflowed tube leaves room in tube 1 while both buffers are empty.
	b := mustBoard(t, "RRGBG", "BGR", "YBYR", "GYBY")
	require.True(t, CheckWin(b), "board satisfies the empty-buffers rule")
	s := NewSessionFromBoard(b, RunOverflow)

	s, _ = SelectTube(s, 0)
	s, out := SelectTube(s, 1)
	require.ErrorIs(t, out.Err, ErrColorMismatch)
	assert.False(t, s.Won, "a failed move is not a win")
	assert.NotEqual(t, NoticeWin, out.Notice)
	assert.Equal(t, core.DestNone, out.Navigate)
}

func TestUpdateReset(t *testing.T) {
	s := scenarioSession(t)
	s, _ = SelectTube(s, 0)
	s, _ = SelectTube(s, 4)

	a, out := Update(s, ResetEvent{Seed: 99})
	assert.Equal(t, Outcome{}, out)
	assert.Zero(t, a.Moves)
	assert.Equal(t, NoSelection, a.Selected)
	assert.Equal(t, RunCapped, a.Policy)

	b, _ := Update(s, ResetEvent{Seed: 99})
	assert.Equal(t, a.Board.String(), b.Board.String(), "same seed, same shuffle")
}

func TestUpdateDoesNotMutateInput(t *testing.T) {
	s := scenarioSession(t)
	before := s.Board.String()

	s1, _ := Update(s, TapEvent{Tube: 0})
	_, _ = Update(s1, TapEvent{Tube: 4})

	assert.Equal(t, before, s.Board.String())
	assert.Equal(t, before, s1.Board.String())
}

func TestNoticeText(t *testing.T) {
	assert.Equal(t, "Select a non-empty tube!", NoticeSelectNonEmpty.String())
	assert.Equal(t, "Invalid move!", NoticeInvalidMove.String())
	assert.Equal(t, "Invalid move: Ball color does not match!", NoticeColorMismatch.String())
	assert.Equal(t, "You Win!", NoticeWin.String())
	assert.Empty(t, NoticeNone.String())
}
