package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Options configures a game session.
type Options struct {
	HoldTimeout time.Duration // Key release timeout, 0 for the default
	BestDir     string        // Directory of best-score files, empty keeps bests in memory
	Logger      *log.Logger
	Embedded    bool // Back returns to a menu instead of quitting
}

// crash records a panic raised by a game so the program can stop and
// report it after the terminal is restored.
type crash struct {
	value any
	stack []byte
}

func (c *crash) record(r any) {
	if c.value == nil {
		c.value = r
		c.stack = debug.Stack()
	}
}

// Model is the Bubble Tea model for running one runner game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	keys       *KeyMapper
	holds      *HoldTracker
	crash      *crash
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model for the given game. Games that
// keep a best score get a file store under opts.BestDir.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "runner"})
	}
	if bk, ok := game.(registry.BestKeeper); ok && opts.BestDir != "" {
		bk.SetBestStore(storage.BestFileFor(opts.BestDir, game.ID()))
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		keys:       NewKeyMapper(),
		holds:      NewHoldTracker(opts.HoldTimeout),
		crash:      &crash{},
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() (cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			m.crash.record(r)
			cmd = tea.Quit
		}
	}()
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.crash.value != nil {
		m.quitting = true
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if a := m.keys.MapMouse(msg); a != core.ActionNone {
			m.inputFrame.Set(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// Only the picture changes; the run keeps going in world units.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if !m.opts.Embedded {
			m.quitting = true
			return m, tea.Quit
		}
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
		}
		return m, nil
	case action == core.ActionNone:
		return m, nil
	}

	if Holdable(action) {
		if m.holds.Observe(action, time.Now()) {
			m.inputFrame.Set(action)
		}
		return m, nil
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.holds.Apply(&m.inputFrame, now)
	if !m.step() {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.recordRun()
		m.scoreSaved = true
	case !m.gameState.GameOver:
		m.scoreSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// step advances the game, reporting false if it panicked.
func (m *Model) step() (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			m.crash.record(r)
			ok = false
		}
	}()
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	return true
}

// recordRun adds the finished run to the history.
func (m Model) recordRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	run := storage.Run{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Seed:   m.config.Seed,
	}
	if rr, ok := m.game.(registry.RunReporter); ok {
		s := rr.RunSummary()
		run.Pickups, run.Mode, run.DurationMs = s.Pickups, s.Mode, s.DurationMs
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.opts.Logger.Warn("could not save run", "game", run.GameID, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".runner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() (view string) {
	if m.quitting || m.crash.value != nil {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			m.crash.record(r)
			view = ""
		}
	}()

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Err returns the game crash, if any, after logging its stack.
func (m Model) Err() error {
	if m.crash.value == nil {
		return nil
	}
	m.opts.Logger.Error("game crashed",
		"game", m.game.ID(),
		"panic", m.crash.value,
		"stack", string(m.crash.stack),
	)
	return fmt.Errorf("tui: %s crashed: %v", m.game.ID(), m.crash.value)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Left click fires the special
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
