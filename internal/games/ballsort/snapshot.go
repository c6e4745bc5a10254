package ballsort

// StateType names the phase of a session.
type StateType string

const (
	StateIdle        StateType = "idle"
	StateSelected    StateType = "selected"
	StateWon         StateType = "won"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Board    string // Board.String() form
	Selected int
	Cursor   int
	Moves    int
	State    StateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StateIdle
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.session.Won:
		state = StateWon
	case g.session.HasSelection():
		state = StateSelected
	}

	return Snapshot{
		Tick:     g.tick,
		Mode:     string(g.policy),
		Board:    g.session.Board.String(),
		Selected: g.session.Selected,
		Cursor:   g.cursor,
		Moves:    g.session.Moves,
		State:    state,
	}
}
