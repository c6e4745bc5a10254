package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ballsort/internal/core"
	"github.com/vovakirdan/ballsort/internal/registry"
)

// GameKeyMap defines the key bindings used on the puzzle screen.
type GameKeyMap struct {
	Tap     key.Binding
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tap, k.Select, k.Restart, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tap, k.Left, k.Right, k.Select},
		{k.Restart, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Tap: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "tap tube"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "cursor left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "cursor right"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "tap cursor"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reshuffle"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "home"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct {
	keys GameKeyMap
	menu MenuKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap(), menu: DefaultMenuKeyMap()}
}

// Keys returns the game bindings in use, for the help bar.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MenuKeys returns the menu bindings in use, for the help bar.
func (km *KeyMapper) MenuKeys() MenuKeyMap {
	return km.menu
}

// MapKey translates a key message to an action.
// A number key yields ActionSelect together with the tube it names;
// every other key yields tube -1.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, tube int) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, -1
	case key.Matches(msg, km.keys.Tap):
		return core.ActionSelect, int(msg.String()[0] - '1')
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, -1
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, -1
	case key.Matches(msg, km.keys.Select):
		return core.ActionSelect, -1
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, -1
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack, -1
	}
	return core.ActionNone, -1
}

// MapKeyToFrame updates an input frame based on a key message.
// Quit and Back are returned to the caller instead of being queued.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) core.Action {
	action, tube := km.MapKey(msg)
	switch {
	case action == core.ActionQuit, action == core.ActionBack:
		return action
	case tube >= 0:
		frame.Tap(tube)
	case action != core.ActionNone:
		frame.Set(action)
	}
	return core.ActionNone
}

// MouseTap converts a left click into a tap on whatever the game draws there.
func MouseTap(msg tea.MouseMsg, target registry.Tappable) (int, bool) {
	if target == nil {
		return 0, false
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return 0, false
	}
	return target.TubeAt(msg.X, msg.Y)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionResults
	MenuActionQuit
)

// MenuKeyMap defines the key bindings of the home menu.
type MenuKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Play    key.Binding
	Results key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Play, k.Results, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("up/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("down/j", "down")),
		Play:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
		Results: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "results")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	bindings := []struct {
		binding key.Binding
		action  MenuAction
	}{
		{km.menu.Quit, MenuActionQuit},
		{km.menu.Up, MenuActionUp},
		{km.menu.Down, MenuActionDown},
		{km.menu.Play, MenuActionSelect},
		{km.menu.Results, MenuActionResults},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return MenuActionNone
}
