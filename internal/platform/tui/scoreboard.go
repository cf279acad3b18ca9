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

	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

const historyLimit = 100

// historyOrder selects which runs the history lists.
type historyOrder int

const (
	orderTop historyOrder = iota
	orderRecent
)

func (o historyOrder) String() string {
	if o == orderRecent {
		return "Recent runs"
	}
	return "Top runs"
}

// historyKeys are the scoreboard bindings. They double as the help text.
type historyKeys struct {
	Up, Down   key.Binding
	Next, Prev key.Binding
	Order      key.Binding
	Back, Quit key.Binding
}

func (k historyKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Order, k.Back, k.Quit}
}

func (k historyKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Next, k.Prev, k.Order}, {k.Back, k.Quit}}
}

func newHistoryKeys() historyKeys {
	return historyKeys{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next:  key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next game")),
		Prev:  key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev game")),
		Order: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "top/recent")),
		Back:  key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	historyTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	historyTab   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	historyOn    = historyTab.Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	historyStats = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	historyFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	historyEmpty = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
	historyHelp  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardModel browses the recorded runs of each game.
type ScoreboardModel struct {
	games  []registry.GameInfo
	tab    int
	order  historyOrder
	store  *storage.Store
	runs   []storage.Run
	stats  *storage.GameStats
	table  table.Model
	keys   historyKeys
	help   help.Model
	width  int
	height int

	back, quit bool
}

// NewScoreboardModel opens the history on the first registered game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   newHistoryKeys(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = newHistoryTable(width, height)
	m.reload()
	return m
}

func newHistoryTable(width, height int) table.Model {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Pickups", Width: 8},
		{Title: "Mode", Width: 8},
		{Title: "Time", Width: 6},
		{Title: "When", Width: 12},
	}
	// Leftover width widens the date column
	used := 0
	for _, c := range cols {
		used += c.Width + 2
	}
	if spare := width - 6 - used; spare > 0 {
		cols[len(cols)-1].Width += min(spare, 8)
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 3)),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true)
	st.Selected = st.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(st)
	return t
}

// reload fetches the runs of the current tab in the current order.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats = nil, nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.tab].ID
		if m.order == orderRecent {
			m.runs, _ = m.store.RecentRuns(id, historyLimit)
		} else {
			m.runs, _ = m.store.TopRuns(id, historyLimit)
		}
		m.stats, _ = m.store.GetGameStats(id)
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Pickups),
			r.Mode,
			formatDuration(r.DurationMs),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatDuration renders a run length as m:ss.
func formatDuration(ms int64) string {
	secs := max(0, ms/1000)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newHistoryTable(m.width, m.height)
		m.reload()
		return m, nil

	case tea.KeyMsg:
		n := len(m.games)
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next) && n > 0:
			m.tab = (m.tab + 1) % n
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Prev) && n > 0:
			m.tab = (m.tab + n - 1) % n
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Order):
			m.order = 1 - m.order
			m.reload()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.back || m.quit {
		return ""
	}

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.tab {
			tabs[i] = historyOn.Render(g.Title)
		} else {
			tabs[i] = historyTab.Render(g.Title)
		}
	}

	body := historyEmpty.Render("No runs recorded yet. Finish a run to fill this page.")
	if len(m.runs) > 0 {
		body = m.table.View()
	}

	parts := []string{
		historyTitle.Render(strings.ToUpper(m.order.String())),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		historyStats.Render(m.statsLine()),
		historyFrame.Render(body),
		historyHelp.Render(m.help.View(m.keys)),
	}
	return lipgloss.PlaceHorizontal(max(m.width, 20), lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, parts...))
}

// statsLine summarizes every recorded run of the current game.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.RunsCount == 0 {
		return " "
	}
	return fmt.Sprintf("%d runs · best %d · avg %.0f · %d pickups · longest %s",
		m.stats.RunsCount, m.stats.HighScore, m.stats.AvgScore, m.stats.TotalPickups, formatDuration(m.stats.LongestMs))
}

// IsGoingBack reports whether the player returned to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting reports whether the player quit from the history.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quit
}

// RunScoreboard shows the history in its own program. It reports true
// when the player went back rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
