package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ballsort/internal/registry"
	"github.com/vovakirdan/ballsort/internal/storage"
)

const (
	resultsLimit     = 100
	variantListWidth = 24
	wideResultsWidth = 90 // below this the variant list collapses into a "< title >" line
	resultsChrome    = 8  // rows taken by title, summary, borders and help
)

var resultColumns = []table.Column{
	{Title: "Rank", Width: 5},
	{Title: "Moves", Width: 6},
	{Title: "Time", Width: 6},
	{Title: "Player", Width: 12},
	{Title: "Date", Width: 13},
}

var (
	resultsTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	summaryStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	emptyResultStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
	panelStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// resultsKeys are the bindings of the results screen; scrolling uses the
// table's own key map.
type resultsKeys struct {
	scroll table.KeyMap
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func newResultsKeys(scroll table.KeyMap) resultsKeys {
	return resultsKeys{
		scroll: scroll,
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next puzzle")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev puzzle")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k resultsKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.scroll.LineUp, k.scroll.LineDown, k.Next, k.Prev, k.Back}
}

func (k resultsKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Quit}}
}

// ResultsModel lists the best solves of each variant, fewest moves first.
type ResultsModel struct {
	variants []registry.GameInfo
	current  int
	store    *storage.Store

	results []storage.Result
	stats   *storage.GameStats
	loadErr error

	table  table.Model
	help   help.Model
	keys   resultsKeys
	width  int
	height int

	back     bool
	quitting bool
}

// NewResultsModel creates the results screen. store may be nil.
func NewResultsModel(store *storage.Store, width, height int) ResultsModel {
	m := ResultsModel{
		variants: registry.List(),
		store:    store,
		help:     help.New(),
	}
	m.resize(width, height)
	m.reload()
	return m
}

func (m *ResultsModel) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	m.table = table.New(
		table.WithColumns(resultColumns),
		table.WithFocused(true),
		table.WithHeight(max(height-resultsChrome, 3)),
		table.WithStyles(styles),
	)
	m.keys = newResultsKeys(m.table.KeyMap)
	m.table.SetRows(resultRows(m.results))
}

// reload fetches the rows and summary of the selected variant.
func (m *ResultsModel) reload() {
	m.results, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.current].ID
		m.results, m.loadErr = m.store.BestResults(id, resultsLimit)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetGameStats(id)
		}
	}
	m.table.SetRows(resultRows(m.results))
	m.table.GotoTop()
}

func resultRows(results []storage.Result) []table.Row {
	rows := make([]table.Row, 0, len(results))
	for i, r := range results {
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(r.Moves),
			FormatElapsed(r.Duration),
			player,
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	return rows
}

func (m *ResultsModel) cycle(step int) {
	n := len(m.variants)
	if n == 0 {
		return
	}
	m.current = ((m.current+step)%n + n) % n
	m.reload()
}

// Init implements tea.Model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ResultsModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	title := "BEST RESULTS"
	if name := m.variantTitle(); name != "" {
		title += " - " + name
	}

	var body string
	if m.width >= wideResultsWidth {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			panelStyle.Width(variantListWidth).Render(m.variantList()),
			"  ",
			panelStyle.Render(m.tableOrMessage()),
		)
	} else {
		body = centerText("< "+m.variantTitle()+" >", m.width) + "\n\n" +
			centerText(panelStyle.Render(m.tableOrMessage()), m.width)
	}

	return strings.Join([]string{
		centerText(resultsTitleStyle.Render(title), m.width),
		centerText(summaryStyle.Render(m.summary()), m.width),
		body,
		helpStyle.Render(m.help.View(m.keys)),
	}, "\n")
}

func (m ResultsModel) variantTitle() string {
	if len(m.variants) == 0 {
		return ""
	}
	return m.variants[m.current].Title
}

func (m ResultsModel) variantList() string {
	var b strings.Builder
	b.WriteString("Puzzles\n")
	b.WriteString(strings.Repeat("-", variantListWidth-4))
	for i, v := range m.variants {
		line := "  " + v.Title
		if i == m.current {
			line = resultsTitleStyle.Render("> " + v.Title)
		}
		b.WriteString("\n" + line)
	}
	return b.String()
}

// summary describes the selected variant's totals, or nothing without data.
func (m ResultsModel) summary() string {
	if m.stats == nil || m.stats.Wins == 0 {
		return ""
	}
	return fmt.Sprintf("%d solved, best %d moves, avg %.1f, fastest %s",
		m.stats.Wins, m.stats.BestMoves, m.stats.AvgMoves, FormatElapsed(m.stats.Fastest))
}

func (m ResultsModel) tableOrMessage() string {
	switch {
	case m.store == nil:
		return emptyResultStyle.Render("Results are unavailable:\nno database is open.")
	case m.loadErr != nil:
		return emptyResultStyle.Render("Could not load results.")
	case len(m.results) == 0:
		return emptyResultStyle.Render("No puzzles solved yet.\nSort every tube to record a result!")
	}
	return m.table.View()
}

// Results returns the rows currently listed.
func (m ResultsModel) Results() []storage.Result {
	return m.results
}

// Summary returns the selected variant's totals, or nil.
func (m ResultsModel) Summary() *storage.GameStats {
	return m.stats
}

// IsGoingBack reports whether the player left the screen.
func (m ResultsModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting reports whether the player quit the program.
func (m ResultsModel) IsQuitting() bool {
	return m.quitting
}
