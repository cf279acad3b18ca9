package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/parkour"
	"github.com/vovakirdan/tui-runner/internal/games/rabbit"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// prepare validates the global flags and hands the difficulty to the game
// packages before any subcommand runs.
func prepare(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(gf.logLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	logger.SetLevel(level)

	if gf.difficulty != "" && config.ParsePreset(gf.difficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", gf.difficulty)
	}
	if gf.fps <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", gf.fps)
	}
	if gf.holdMs < 0 {
		return fmt.Errorf("--hold-ms cannot be negative, got %d", gf.holdMs)
	}

	// A tuning file describes one game, so commands offering several
	// games cannot take it
	if gf.configPath != "" && (cmd.Name() == "menu" || cmd.Name() == "serve") {
		return fmt.Errorf("--config tunes a single game, use it with 'runner play <game>'")
	}

	rabbit.SetDifficultyPreset(gf.difficulty)
	parkour.SetDifficultyPreset(gf.difficulty)
	return nil
}

// tuneGame points only the chosen game at the --config file.
func tuneGame(id string) {
	switch id {
	case "rabbit":
		rabbit.SetConfigPath(gf.configPath)
	case "parkour":
		parkour.SetConfigPath(gf.configPath)
	}
}

// runtimeConfig sizes the screen from the terminal, 80x24 when stdout is
// not one.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = gf.fps
	cfg.Seed = gf.seed
	return cfg
}

func holdTimeout() time.Duration {
	return time.Duration(gf.holdMs) * time.Millisecond
}

func sessionOptions() tui.Options {
	return tui.Options{
		HoldTimeout: holdTimeout(),
		BestDir:     gf.bestDir,
		Logger:      logger,
	}
}

// openStore opens the run history. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(gf.dbPath)
	if err != nil {
		logger.Warn("run history disabled", "path", gf.dbPath, "error", err)
		return nil
	}
	return store
}

// closeStore tolerates a store that never opened.
func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}

// gameArg checks that the argument names a registered game.
func gameArg(args []string) (string, error) {
	id := args[0]
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown game %q, see 'runner list'", id)
	}
	return id, nil
}
