package tui

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

type sessionPhase int

const (
	phaseMenu sessionPhase = iota
	phaseHistory
	phasePlay
)

// SessionModel chains the menu, the run history and games inside a single
// program, for hosts like SSH where every screen shares one connection.
// The child screens end with tea.Quit when they run standalone; here those
// commands are dropped and the session switches screens instead.
type SessionModel struct {
	store  *storage.Store
	config core.RuntimeConfig
	opts   Options
	phase  sessionPhase

	menu    MenuModel
	history ScoreboardModel
	play    Model
	done    bool
}

// NewSessionModel starts a session on the menu.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, opts Options) SessionModel {
	opts.Embedded = true
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "runner"})
	}
	return SessionModel{
		store:  store,
		config: cfg,
		opts:   opts,
		menu:   NewMenuModel(store, cfg, opts.BestDir),
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = ws.Width, ws.Height
	}

	switch m.phase {
	case phasePlay:
		return m.updatePlay(msg)
	case phaseHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		return m.finish()
	case m.menu.WantsScoreboard():
		m.phase = phaseHistory
		m.history = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, nil
	}

	id, picked := m.menu.Choice()
	if !picked {
		return m, cmd
	}
	game, err := registry.Create(id)
	if err != nil {
		m.opts.Logger.Warn("menu offered an unknown game", "game", id)
		return m.backToMenu()
	}

	cfg := m.config
	cfg.Seed = time.Now().UnixNano()
	m.play = NewModel(game, m.store, cfg, m.opts)
	m.phase = phasePlay
	return m, m.play.Init()
}

func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.history.Update(msg)
	m.history = next.(ScoreboardModel)

	switch {
	case m.history.IsQuitting():
		return m.finish()
	case m.history.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.play.Update(msg)
	m.play = next.(Model)

	switch {
	case m.play.Err() != nil, m.play.IsQuitting():
		return m.finish()
	case m.play.BackToMenu():
		return m.backToMenu()
	}
	return m, cmd
}

// backToMenu rebuilds the menu so it shows fresh bests and run counts.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.phase = phaseMenu
	m.menu = NewMenuModel(m.store, m.config, m.opts.BestDir)
	return m, nil
}

func (m SessionModel) finish() (tea.Model, tea.Cmd) {
	m.done = true
	return m, tea.Quit
}

// View implements tea.Model.
func (m SessionModel) View() string {
	switch {
	case m.done:
		return ""
	case m.phase == phasePlay:
		return m.play.View()
	case m.phase == phaseHistory:
		return m.history.View()
	default:
		return m.menu.View()
	}
}
