package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform ticks per second, drives notice expiry
	Seed     int64 // RNG seed for the shuffle (0 = time based, resolved by the platform)

	// NoticeDuration is how long a transient notice stays on screen.
	NoticeDuration time.Duration
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:        80,
		ScreenH:        24,
		TickRate:       30,
		Seed:           0,
		NoticeDuration: 1500 * time.Millisecond,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Moves    int  // Successful moves made this session
	Selected int  // Selected tube index, -1 when nothing is picked up
	Won      bool // Whether the puzzle has been solved
}

// EventKind classifies something that happened during a Step.
type EventKind int

const (
	EventNotice   EventKind = iota // Transient message for the player
	EventWin                       // Puzzle solved
	EventNavigate                  // Platform should leave the game screen
)

// Event is a side effect reported by a game for the platform to act on.
type Event struct {
	Kind        EventKind
	Message     string
	Destination Destination
}

// StepResult is returned by Game.Step() after each input is applied.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
