package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/ballsort/internal/core"
	"github.com/vovakirdan/ballsort/internal/registry"
	"github.com/vovakirdan/ballsort/internal/storage"
)

// footerRows is the space below the board: one notice line, one help line.
const footerRows = 2

// toast is a transient notice shown under the board.
type toast struct {
	text  string
	win   bool
	until time.Time
}

func (t toast) visible(now time.Time) bool {
	return t.text != "" && now.Before(t.until)
}

// GameModel runs one puzzle game: it feeds input to the game on every tick,
// shows notices, records a result on win and requests navigation home.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	player    string
	sessionID string
	started   time.Time
	finished  time.Time
	loop      uint64

	input     core.InputFrame
	gameState core.GameState
	keyMapper *KeyMapper
	help      help.Model
	toast     toast

	pending    core.Destination // navigation requested by the game, delayed until the notice is read
	pendingAt  time.Time
	dest       core.Destination // navigation the parent model should perform
	resultSave error
	saved      bool
	quitting   bool
}

// NewGameModel creates a game model and starts a fresh session.
// store and logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.NoticeDuration <= 0 {
		cfg.NoticeDuration = core.DefaultConfig().NoticeDuration
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		store:     store,
		logger:    logger,
		config:    cfg,
		player:    player,
		input:     core.NewInputFrame(),
		keyMapper: NewKeyMapper(),
		help:      h,
		loop:      newTickLoop(),
	}

	boardCfg := cfg
	boardCfg.ScreenH = boardHeight(cfg.ScreenH)
	m.game.Reset(boardCfg)
	m.newRound(time.Now())
	return m
}

func boardHeight(screenH int) int {
	return max(screenH-footerRows, 1)
}

// newRound resets everything the platform tracks per shuffle.
func (m *GameModel) newRound(now time.Time) {
	m.gameState = m.game.State()
	m.sessionID = uuid.NewString()
	m.started = now
	m.finished = time.Time{}
	m.toast = toast{}
	m.pending = core.DestNone
	m.saved = false
	m.resultSave = nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.loop, m.config.TickRate)
}

// tickAt builds the tick this model's loop delivers at t.
func (m GameModel) tickAt(t time.Time) TickMsg {
	return TickMsg{Loop: m.loop, At: t}
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if target, ok := m.game.(registry.Tappable); ok {
			if idx, hit := MouseTap(msg, target); hit {
				m.input.Tap(idx)
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, boardHeight(msg.Height))
		m.game.Resize(msg.Width, boardHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			// left over from a game that is no longer on screen
			return m, nil
		}
		return m.handleTick(msg.At)
	}
	return m, nil
}

// handleKey queues game input; quit and back are handled immediately.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToFrame(msg, &m.input) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.dest = core.DestHome
	}
	return m, nil
}

// handleTick applies queued input and advances notice and navigation timers.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.input.Empty() {
		restart := m.input.Has(core.ActionRestart)
		result := m.game.Step(m.input)
		m.gameState = result.State
		if restart {
			m.newRound(now)
		}
		m.applyEvents(result, now)
	}
	m.input.Clear()

	if m.pending != core.DestNone && !now.Before(m.pendingAt) {
		m.dest = m.pending
		m.pending = core.DestNone
	}

	return m, tickCmd(m.loop, m.config.TickRate)
}

// applyEvents turns game events into notices, a stored result and a
// delayed navigation request.
func (m *GameModel) applyEvents(result core.StepResult, now time.Time) {
	for _, e := range result.Events {
		switch e.Kind {
		case core.EventNotice:
			m.toast = toast{text: e.Message, until: now.Add(m.config.NoticeDuration)}
		case core.EventWin:
			m.toast.win = true
			m.finished = now
			m.saveResult()
		}
	}

	core.Dispatch(core.NavigatorFunc(func(dest core.Destination) {
		m.pending = dest
		m.pendingAt = now.Add(m.config.NoticeDuration)
	}), result)
}

// saveResult records the solved puzzle once per round.
func (m *GameModel) saveResult() {
	if m.saved {
		return
	}
	m.saved = true

	elapsed := m.finished.Sub(m.started)
	if m.logger != nil {
		m.logger.Info("puzzle solved",
			"player", m.player,
			"game", m.game.ID(),
			"moves", m.gameState.Moves,
			"elapsed", elapsed.Round(time.Second),
		)
	}

	if m.store == nil {
		return
	}
	_, m.resultSave = m.store.SaveResult(storage.Result{
		SessionID: m.sessionID,
		GameID:    m.game.ID(),
		Player:    m.player,
		Moves:     m.gameState.Moves,
		Duration:  elapsed,
	})
	if m.resultSave != nil && m.logger != nil {
		m.logger.Warn("could not save result", "error", m.resultSave)
	}
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.noticeLine(time.Now()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keyMapper.Keys())))
	return b.String()
}

// noticeLine shows the active toast, or the elapsed time when there is none.
func (m GameModel) noticeLine(now time.Time) string {
	if m.toast.visible(now) {
		style := noticeStyle
		if m.toast.win {
			style = winNoticeStyle
		}
		return centerText(style.Render(m.toast.text), m.config.ScreenW)
	}
	return centerText(helpStyle.Render("Time "+FormatElapsed(m.Elapsed(now))), m.config.ScreenW)
}

// Elapsed returns the play time of the current round, frozen once solved.
func (m GameModel) Elapsed(now time.Time) time.Duration {
	if !m.finished.IsZero() {
		return m.finished.Sub(m.started)
	}
	return now.Sub(m.started)
}

// FormatElapsed renders a duration as m:ss.
func FormatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Notice returns the toast visible at now, or "".
func (m GameModel) Notice(now time.Time) string {
	if m.toast.visible(now) {
		return m.toast.text
	}
	return ""
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// SessionID identifies the current round in stored results.
func (m GameModel) SessionID() string {
	return m.sessionID
}

// SaveErr reports why the last result could not be stored, if it failed.
func (m GameModel) SaveErr() error {
	return m.resultSave
}

// Destination returns where the player should be taken, or DestNone.
func (m GameModel) Destination() core.Destination {
	return m.dest
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}
