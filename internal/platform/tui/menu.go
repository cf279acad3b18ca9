package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// MenuEntry is one game card in the picker.
type MenuEntry struct {
	registry.GameInfo
	Best int // Saved best score
	Runs int // Recorded runs in the history
}

// menuOutcome is what ended the menu.
type menuOutcome int

const (
	menuOpen menuOutcome = iota
	menuPicked
	menuScores
	menuQuit
)

var (
	menuBanner = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 3)
	menuCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
	menuCardActive = menuCard.
			BorderForeground(lipgloss.Color("212"))
	menuName  = lipgloss.NewStyle().Bold(true)
	menuBlurb = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuFacts = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	menuHint  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the game picker. It ends with a pick, a request for the
// run history, or a quit.
type MenuModel struct {
	entries []MenuEntry
	cursor  int
	config  core.RuntimeConfig
	keys    *KeyMapper
	outcome menuOutcome
}

// NewMenuModel lists every registered game with its saved best from
// bestDir and its run count from store. Either source may be missing.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, bestDir string) MenuModel {
	return newMenuModel(loadMenuEntries(registry.List(), store, bestDir), cfg)
}

func newMenuModel(entries []MenuEntry, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{entries: entries, config: cfg, keys: NewKeyMapper()}
}

// loadMenuEntries decorates games with their best score and run count.
// Without a best directory the history's high score stands in.
func loadMenuEntries(games []registry.GameInfo, store *storage.Store, bestDir string) []MenuEntry {
	var stats map[string]*storage.GameStats
	if store != nil {
		stats, _ = store.GetAllGamesStats()
	}

	entries := make([]MenuEntry, len(games))
	for i, g := range games {
		e := MenuEntry{GameInfo: g}
		if st := stats[g.ID]; st != nil {
			e.Runs = st.RunsCount
			e.Best = st.HighScore
		}
		if bestDir != "" {
			e.Best = storage.BestFileFor(bestDir, g.ID).Load()
		}
		entries[i] = e
	}
	return entries
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

	case tea.KeyMsg:
		n := len(m.entries)
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			if n > 0 {
				m.cursor = (m.cursor + n - 1) % n
			}
		case MenuActionDown:
			if n > 0 {
				m.cursor = (m.cursor + 1) % n
			}
		case MenuActionSelect:
			if n > 0 {
				m.outcome = menuPicked
				return m, tea.Quit
			}
		case MenuActionScoreboard:
			m.outcome = menuScores
			return m, tea.Quit
		case MenuActionQuit:
			m.outcome = menuQuit
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.outcome == menuQuit {
		return ""
	}

	width := max(m.config.ScreenW, 20)
	cardWidth := min(width-4, 60)

	parts := []string{"", menuBanner.Render("R U N N E R"), ""}
	if len(m.entries) == 0 {
		parts = append(parts, menuBlurb.Render("No games registered."))
	}
	for i, e := range m.entries {
		style := menuCard
		marker := "  "
		if i == m.cursor {
			style = menuCardActive
			marker = "▶ "
		}

		facts := "no runs yet"
		if e.Best > 0 || e.Runs > 0 {
			facts = fmt.Sprintf("best %d · %d runs", e.Best, e.Runs)
		}

		lines := []string{marker + menuName.Render(e.Title)}
		if e.Blurb != "" {
			lines = append(lines, menuBlurb.Render(e.Blurb))
		}
		lines = append(lines, menuFacts.Render(facts))
		parts = append(parts, style.Width(cardWidth).Render(strings.Join(lines, "\n")))
	}
	parts = append(parts, "", menuHint.Render("↑/↓ choose · enter play · tab history · q quit"))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, parts...))
}

// Choice returns the picked game ID.
func (m MenuModel) Choice() (string, bool) {
	if m.outcome != menuPicked || len(m.entries) == 0 {
		return "", false
	}
	return m.entries[m.cursor].ID, true
}

// IsQuitting reports whether the player asked to leave.
func (m MenuModel) IsQuitting() bool {
	return m.outcome == menuQuit
}

// WantsScoreboard reports whether the run history was requested.
func (m MenuModel) WantsScoreboard() bool {
	return m.outcome == menuScores
}

// Config returns the runtime config with the latest terminal size.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult is how a standalone menu program ended.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the picker in its own program.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, bestDir string) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg, bestDir), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.Config(), WantsScoreboard: m.WantsScoreboard()}
	if id, picked := m.Choice(); picked {
		res.GameID = id
	} else if !res.WantsScoreboard {
		res.Quit = true
	}
	return res, nil
}
