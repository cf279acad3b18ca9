package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick games from an interactive menu",
	Long: `Open the game picker. Each finished game brings you back to it.

Menu keys:
  Up/Down/j/k  move between games
  Enter/Space  play the highlighted game
  Tab          browse the run history
  Q            quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	defer closeStore(store)

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(store, cfg, gf.bestDir)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		default:
			playFromMenu(res.GameID, store, cfg)
		}
	}
}

// playFromMenu runs one game and logs, rather than returns, its failure so
// the menu comes back.
func playFromMenu(id string, store *storage.Store, cfg core.RuntimeConfig) {
	game, err := registry.Create(id)
	if err != nil {
		logger.Error("could not create game", "game", id, "error", err)
		return
	}
	// Each pick gets a fresh seed unless one was pinned
	if gf.seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := tui.Run(game, store, cfg, sessionOptions()); err != nil {
		logger.Error("game stopped", "game", id, "error", err)
	}
}
