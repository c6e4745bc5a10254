// Package registry keeps the puzzle variants the platform can start.
// Variants register a factory from init(), so the CLI, menu and SSH server
// discover them without importing each one by name.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/ballsort/internal/core"
)

// Game is one playable puzzle variant. Implementations hold pure logic and
// never import Bubble Tea; the platform owns input mapping, notices,
// navigation and terminal output.
type Game interface {
	// ID is the stable identifier used on the command line and in stored results.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh round sized and seeded from cfg.
	Reset(cfg core.RuntimeConfig)

	// Resize re-lays out the board for a new screen size without a reshuffle.
	Resize(w, h int)

	// Step applies the input gathered since the previous step.
	Step(in core.InputFrame) core.StepResult

	// Render draws the board into dst.
	Render(dst *core.Screen)

	// State reports moves, selection and whether the puzzle is solved.
	State() core.GameState
}

// Tappable is implemented by games that can tell which target is drawn at
// a screen cell, which lets mouse clicks act as taps.
type Tappable interface {
	TubeAt(x, y int) (int, bool)
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new, unstarted game.
type Factory func() Game

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("unknown game")

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a variant. Registering the same ID twice is a programming
// error and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: f().Title(), factory: f}
}

// List returns every registered variant ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Create builds a new instance of the variant with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
