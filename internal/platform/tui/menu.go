package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ballsort/internal/core"
	"github.com/vovakirdan/ballsort/internal/registry"
	"github.com/vovakirdan/ballsort/internal/storage"
)

var (
	logoStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	bestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuItem is one puzzle variant on the home screen.
type MenuItem struct {
	GameID string
	Title  string
	Best   string // "best N moves, fastest m:ss", empty before the first solve
}

// MenuModel is the home screen: pick a variant, open results or quit.
type MenuModel struct {
	items  []MenuItem
	cursor int
	config core.RuntimeConfig
	keys   *KeyMapper
	help   help.Model

	selected    *MenuItem
	openResults bool
	quitting    bool
}

// NewMenuModel lists every registered variant with its best result.
// store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	h := help.New()
	h.Width = cfg.ScreenW
	return MenuModel{
		items:  menuItems(store),
		config: cfg,
		keys:   NewKeyMapper(),
		help:   h,
	}
}

func menuItems(store *storage.Store) []MenuItem {
	var stats map[string]*storage.GameStats
	if store != nil {
		//nolint:errcheck // a menu without best results is still usable
		stats, _ = store.GetAllGamesStats()
	}

	var items []MenuItem
	for _, g := range registry.List() {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if st := stats[g.ID]; st != nil && st.Wins > 0 {
			item.Best = fmt.Sprintf("best %d moves, fastest %s", st.BestMoves, FormatElapsed(st.Fastest))
		}
		items = append(items, item)
	}
	return items
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			m.cursor = core.Clamp(m.cursor-1, 0, len(m.items)-1)
		case MenuActionDown:
			m.cursor = core.Clamp(m.cursor+1, 0, len(m.items)-1)
		case MenuActionSelect:
			if m.cursor < len(m.items) {
				item := m.items[m.cursor]
				m.selected = &item
			}
		case MenuActionResults:
			m.openResults = true
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := make([]string, 0, len(m.items))
	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = cursorStyle.Render("> " + item.Title)
		}
		if item.Best != "" {
			line += "  " + bestStyle.Render("("+item.Best+")")
		}
		lines = append(lines, line)
	}

	page := lipgloss.JoinVertical(lipgloss.Center,
		"",
		logoStyle.Render("B A L L   S O R T"),
		"",
		menuBalls(),
		"",
		"Pick a puzzle",
		"",
		lipgloss.JoinVertical(lipgloss.Left, lines...),
		"",
		helpStyle.Render(m.help.View(m.keys.MenuKeys())),
	)
	return lipgloss.PlaceHorizontal(m.config.ScreenW, lipgloss.Center, page)
}

// menuBalls draws one ball of each color as a logo.
func menuBalls() string {
	colors := []core.Color{core.ColorRed, core.ColorBlue, core.ColorGreen, core.ColorYellow}
	balls := make([]string, len(colors))
	for i, c := range colors {
		balls[i] = colorStyles[c].Render("●")
	}
	return strings.Join(balls, " ")
}

// Selected returns the chosen variant, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the player quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsResults reports whether the player asked for the results screen.
func (m MenuModel) WantsResults() bool {
	return m.openResults
}

// Config returns the runtime config, updated by window resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
