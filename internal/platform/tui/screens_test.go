package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
)

func testEntries() []MenuEntry {
	return []MenuEntry{
		{GameInfo: registry.GameInfo{ID: "parkour", Title: "Parkour"}},
		{GameInfo: registry.GameInfo{ID: "rabbit", Title: "Happy Rabbit", Blurb: "hop"}, Best: 42, Runs: 3},
	}
}

func sendMenu(m MenuModel, msgs ...tea.Msg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestMenuCursorWraps(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24}

	m := sendMenu(newMenuModel(testEntries(), cfg), keyUp, keyEnter)
	if id, ok := m.Choice(); !ok || id != "rabbit" {
		t.Errorf("up from the first card should wrap to rabbit, got %q %v", id, ok)
	}

	m = sendMenu(newMenuModel(testEntries(), cfg), keyDown, keyDown, keyEnter)
	if id, _ := m.Choice(); id != "parkour" {
		t.Errorf("two downs should wrap back to parkour, got %q", id)
	}
}

func TestMenuOutcomes(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24}

	m := newMenuModel(testEntries(), cfg)
	if _, ok := m.Choice(); ok {
		t.Error("fresh menu should have no choice")
	}
	if m.View() == "" {
		t.Error("open menu should render")
	}

	if m := sendMenu(newMenuModel(testEntries(), cfg), keyTab); !m.WantsScoreboard() {
		t.Error("tab should ask for the history")
	}
	if m := sendMenu(newMenuModel(testEntries(), cfg), runeKey('q')); !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit with an empty view")
	}
	if m := sendMenu(newMenuModel(nil, cfg), keyEnter); m.IsQuitting() {
		t.Error("enter on an empty menu should do nothing")
	} else if _, ok := m.Choice(); ok {
		t.Error("empty menu cannot pick")
	}

	m = sendMenu(newMenuModel(testEntries(), cfg), tea.WindowSizeMsg{Width: 120, Height: 40})
	if got := m.Config(); got.ScreenW != 120 || got.ScreenH != 40 {
		t.Errorf("Config() = %dx%d, want 120x40", got.ScreenW, got.ScreenH)
	}
}

func TestLoadMenuEntriesPrefersBestFile(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(storage.Run{GameID: "rabbit", Score: 100}); err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	storage.BestFileFor(dir, "rabbit").Save(321)

	games := []registry.GameInfo{{ID: "rabbit", Title: "Happy Rabbit"}, {ID: "parkour", Title: "Parkour"}}

	withFile := loadMenuEntries(games, store, dir)
	if withFile[0].Best != 321 || withFile[0].Runs != 1 {
		t.Errorf("rabbit entry = best %d runs %d, want 321 and 1", withFile[0].Best, withFile[0].Runs)
	}
	if withFile[1].Best != 0 || withFile[1].Runs != 0 {
		t.Errorf("parkour without history should be empty, got %+v", withFile[1])
	}

	if historyOnly := loadMenuEntries(games, store, ""); historyOnly[0].Best != 100 {
		t.Errorf("without a best dir the history high score should show, got %d", historyOnly[0].Best)
	}
	if bare := loadMenuEntries(games, nil, ""); len(bare) != 2 || bare[0].Best != 0 {
		t.Errorf("no sources should still list every game, got %+v", bare)
	}
}

func TestScoreboardOrderToggle(t *testing.T) {
	store := openTestStore(t)
	for _, score := range []int{90, 50} {
		if _, err := store.SaveRun(storage.Run{GameID: "rabbit", Score: score, Pickups: 2, Mode: "grass"}); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, 80, 24)
	m.games = []registry.GameInfo{{ID: "rabbit", Title: "Happy Rabbit"}}
	m.tab = 0
	m.reload()

	if len(m.runs) != 2 || m.runs[0].Score != 90 {
		t.Fatalf("top order should lead with 90, got %+v", m.runs)
	}
	if m.stats == nil || m.stats.RunsCount != 2 {
		t.Errorf("stats should count both runs, got %+v", m.stats)
	}

	next, _ := m.Update(runeKey('r'))
	m = next.(ScoreboardModel)
	if m.order != orderRecent || m.runs[0].Score != 50 {
		t.Errorf("recent order should lead with the last run, got order %v first %d", m.order, m.runs[0].Score)
	}

	next, _ = m.Update(keyEsc)
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back without quitting")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	m.games = []registry.GameInfo{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}

	next, _ := m.Update(keyTab)
	m = next.(ScoreboardModel)
	if m.tab != 1 || len(m.runs) != 0 {
		t.Errorf("tab should move to the next game, tab=%d runs=%d", m.tab, len(m.runs))
	}
	next, _ = m.Update(keyTab)
	if m = next.(ScoreboardModel); m.tab != 0 {
		t.Errorf("tab should wrap, got %d", m.tab)
	}
	if m.View() == "" {
		t.Error("history should render without a store")
	}
}

func TestSessionVisitsHistoryAndQuits(t *testing.T) {
	s := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, quietOptions())
	s.menu = newMenuModel(testEntries(), s.config)

	step := func(msg tea.Msg) tea.Cmd {
		next, cmd := s.Update(msg)
		s = next.(SessionModel)
		return cmd
	}

	if cmd := step(keyTab); cmd != nil || s.phase != phaseHistory {
		t.Fatalf("tab should open the history inside the session, phase=%d", s.phase)
	}
	if cmd := step(keyEsc); cmd != nil || s.phase != phaseMenu {
		t.Fatalf("esc should come back to the menu without quitting, phase=%d", s.phase)
	}
	if s.menu.WantsScoreboard() {
		t.Error("menu should be rebuilt after the history")
	}

	step(runeKey('q'))
	if !s.done || s.View() != "" {
		t.Error("q in the menu should end the session")
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tt := range tests {
		if got := tickInterval(tt.rate); got != tt.want {
			t.Errorf("tickInterval(%d) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}
