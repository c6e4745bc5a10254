package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ballsort/internal/core"
	"github.com/vovakirdan/ballsort/internal/registry"
	"github.com/vovakirdan/ballsort/internal/storage"
)

// SessionOptions configures a player session.
type SessionOptions struct {
	Store     *storage.Store // May be nil; results are then not recorded
	Config    core.RuntimeConfig
	Player    string
	Logger    *log.Logger // May be nil
	StartGame string      // Game to open directly instead of the home menu
}

type screen int

const (
	screenHome screen = iota
	screenGame
	screenResults
)

// SessionModel manages the full flow of one player: home -> game -> home,
// plus the results screen. It is used for local play and for SSH sessions.
type SessionModel struct {
	opts      SessionOptions
	config    core.RuntimeConfig
	current   screen
	menu      MenuModel
	gameModel *GameModel
	results   ResultsModel
	played    int
	quitting  bool
}

// NewSessionModel opens on the home menu, or directly on opts.StartGame.
func NewSessionModel(opts SessionOptions) (SessionModel, error) {
	m := SessionModel{
		opts:   opts,
		config: opts.Config,
		menu:   NewMenuModel(opts.Store, opts.Config),
	}

	if opts.StartGame != "" {
		if err := m.startGame(opts.StartGame); err != nil {
			return SessionModel{}, err
		}
	}
	return m, nil
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	if m.current == screenGame && m.gameModel != nil {
		return m.gameModel.Init()
	}
	return m.menu.Init()
}

// Navigate moves the session to the given destination.
func (m *SessionModel) Navigate(dest core.Destination) {
	switch dest {
	case core.DestHome:
		m.current = screenHome
		m.gameModel = nil
		m.menu = NewMenuModel(m.opts.Store, m.config)
	}
}

var _ core.Navigator = (*SessionModel)(nil)

// startGame creates the game and switches to the game screen.
func (m *SessionModel) startGame(gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	// Only the first game uses the configured seed; later ones reshuffle.
	cfg := m.config
	if m.played > 0 {
		cfg.Seed = 0
	}
	m.played++

	gm := NewGameModel(game, m.opts.Store, cfg, m.opts.Player, m.opts.Logger)
	m.gameModel = &gm
	m.current = screenGame
	return nil
}

// Update forwards msg to the active screen, then follows whatever that
// screen asked for: quit, another screen or a game.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = size.Width, size.Height
	}

	var next tea.Model
	var cmd tea.Cmd
	switch m.current {
	case screenGame:
		next, cmd = m.gameModel.Update(msg)
		gm := next.(GameModel)
		m.gameModel = &gm
	case screenResults:
		next, cmd = m.results.Update(msg)
		m.results = next.(ResultsModel)
	default:
		next, cmd = m.menu.Update(msg)
		m.menu = next.(MenuModel)
	}

	if m.childQuit() {
		m.quitting = true
		return m, tea.Quit
	}
	if transition, changed := m.transition(); changed {
		return m, transition
	}
	return m, cmd
}

func (m *SessionModel) childQuit() bool {
	switch m.current {
	case screenGame:
		return m.gameModel.IsQuitting()
	case screenResults:
		return m.results.IsQuitting()
	default:
		return m.menu.IsQuitting()
	}
}

// transition moves to the screen the active one asked for, if any.
func (m *SessionModel) transition() (tea.Cmd, bool) {
	switch m.current {
	case screenGame:
		if dest := m.gameModel.Destination(); dest != core.DestNone {
			m.Navigate(dest)
			return m.menu.Init(), true
		}

	case screenResults:
		if m.results.IsGoingBack() {
			m.Navigate(core.DestHome)
			return nil, true
		}

	default:
		if m.menu.WantsResults() {
			m.current = screenResults
			m.results = NewResultsModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
			return m.results.Init(), true
		}
		if item := m.menu.Selected(); item != nil {
			m.config = m.menu.Config()
			if err := m.startGame(item.GameID); err != nil {
				// the menu lists registered variants only
				m.Navigate(core.DestHome)
				return nil, true
			}
			return m.gameModel.Init(), true
		}
	}
	return nil, false
}

// View renders the active screen.
func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.current == screenGame:
		return m.gameModel.View()
	case m.current == screenResults:
		return m.results.View()
	}
	return m.menu.View()
}

// Game returns the running game model, or nil when not on the game screen.
func (m SessionModel) Game() *GameModel {
	return m.gameModel
}

// OnHome reports whether the home menu is showing.
func (m SessionModel) OnHome() bool {
	return m.current == screenHome
}

// Run plays a session in the current terminal until the player quits.
func Run(opts SessionOptions) error {
	model, err := NewSessionModel(opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
