package ballsort

import (
	"math/rand"

	"github.com/vovakirdan/ballsort/internal/core"
	"github.com/vovakirdan/ballsort/internal/registry"
)

// Game IDs.
const (
	IDStandard = "ballsort"
	IDClassic  = "ballsort_classic"
)

// Game adapts a Session to the platform's registry.Game interface.
type Game struct {
	id     string
	title  string
	policy RunPolicy

	rng     *rand.Rand
	session Session
	cursor  int
	tick    uint64

	screenW  int
	screenH  int
	tooSmall bool
	layout   layout
}

// Package-level setting for the standard variant, applied at creation.
var defaultPolicy = RunCapped

// SetDefaultPolicy sets the run policy of newly created standard games.
func SetDefaultPolicy(p RunPolicy) {
	defaultPolicy = p
}

// New creates the standard game, using the configured run policy.
func New() *Game {
	return &Game{
		id:     IDStandard,
		title:  "Ball Sort",
		policy: defaultPolicy,
	}
}

// NewClassic creates the classic game, where a run may overflow its
// destination tube.
func NewClassic() *Game {
	return &Game{
		id:     IDClassic,
		title:  "Ball Sort (Classic)",
		policy: RunOverflow,
	}
}

func init() {
	registry.Register(IDStandard, func() registry.Game {
		return New()
	})
	registry.Register(IDClassic, func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Policy returns the run policy in effect.
func (g *Game) Policy() RunPolicy {
	return g.policy
}

// Reset shuffles a new board from the config seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.session = NewSession(g.rng, g.policy)
	g.cursor = 0
	g.tick = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// LoadBoard replaces the current board, keeping the run policy.
func (g *Game) LoadBoard(b Board) {
	g.session = NewSessionFromBoard(b, g.policy)
	g.relayout()
}

// Resize adapts the layout to new screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.relayout()
}

func (g *Game) relayout() {
	g.layout = newLayout(g.screenW, g.screenH, g.session.Board)
	g.tooSmall = !g.layout.fits
}

// Session returns the current session value.
func (g *Game) Session() Session {
	return g.session
}

// Step applies the input collected since the last step.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var events []core.Event

	if in.Has(core.ActionRestart) {
		g.session, _ = Update(g.session, ResetEvent{Seed: g.rng.Int63()})
		g.cursor = 0
		g.relayout()
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionLeft):
		g.cursor = core.Clamp(g.cursor-1, 0, TubeCount-1)
	case in.Has(core.ActionRight):
		g.cursor = core.Clamp(g.cursor+1, 0, TubeCount-1)
	}

	taps := in.Taps
	if in.Has(core.ActionSelect) {
		taps = append(append([]int(nil), taps...), g.cursor)
	}

	for _, idx := range taps {
		var out Outcome
		g.session, out = Update(g.session, TapEvent{Tube: idx})
		if g.session.Board.Valid(idx) {
			g.cursor = idx
		}
		events = append(events, outcomeEvents(out)...)
	}

	// Overflowing runs can make a tube taller than the current layout.
	g.relayout()

	return core.StepResult{State: g.State(), Events: events}
}

// outcomeEvents translates an engine outcome into platform events.
func outcomeEvents(out Outcome) []core.Event {
	var events []core.Event
	if out.Notice != NoticeNone {
		events = append(events, core.Event{Kind: core.EventNotice, Message: out.Notice.String()})
	}
	if out.Notice == NoticeWin {
		events = append(events, core.Event{Kind: core.EventWin})
	}
	if out.Navigate != core.DestNone {
		events = append(events, core.Event{Kind: core.EventNavigate, Destination: out.Navigate})
	}
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Moves:    g.session.Moves,
		Selected: g.session.Selected,
		Won:      g.session.Won,
	}
}

// TubeAt maps a screen position to the tube drawn there.
func (g *Game) TubeAt(x, y int) (int, bool) {
	if g.tooSmall {
		return 0, false
	}
	return g.layout.hit(x, y)
}

var _ registry.Game = (*Game)(nil)
var _ registry.Tappable = (*Game)(nil)
