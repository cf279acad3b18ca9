// Package registry is the catalogue of runner games. Game packages add
// themselves from init(), so the CLI and SSH front ends only import them
// for side effects.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Game is a pure simulation driven one fixed tick at a time. It never
// touches the terminal: the platform turns keys into InputFrames and
// prints whatever Render leaves in the screen buffer.
type Game interface {
	// ID is the short name used on the command line and in storage.
	ID() string
	// Title is the display name.
	Title() string

	// Reset starts a new run. It is called before the first Step and on
	// every restart; cfg carries the RNG seed.
	Reset(cfg core.RuntimeConfig)
	// Step advances one tick.
	Step(in core.InputFrame) core.StepResult
	// Render draws into a cleared screen.
	Render(dst *core.Screen)
	State() core.GameState
}

// BestKeeper is implemented by games that track a persisted best score.
// The platform attaches the store before the first Reset.
type BestKeeper interface {
	SetBestStore(store runner.BestStore)
	Best() int
}

// RunReporter is implemented by games that can describe a finished run
// beyond its score, for the run history.
type RunReporter interface {
	RunSummary() RunSummary
}

// Describer is implemented by games with a one-line pitch for menus.
type Describer interface {
	Blurb() string
}

// RunSummary carries the extra facts recorded with a finished run.
type RunSummary struct {
	Pickups    int
	Mode       string
	DurationMs int64
}

// GameInfo describes a registered game without creating it.
type GameInfo struct {
	ID    string
	Title string
	Blurb string
}

// Factory builds a fresh game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game. The factory is called once here to read the
// title and blurb. Registering an ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	sample := f()
	info := GameInfo{ID: id, Title: sample.Title()}
	if d, ok := sample.(Describer); ok {
		info.Blurb = d.Blurb()
	}
	entries[id] = entry{info: info, factory: f}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Lookup returns the metadata of one game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create builds a new instance of the game registered as id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
