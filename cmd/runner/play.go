package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Run one game in the terminal until you quit.

Controls:
  Space/Up/W   jump; hold for height in Happy Rabbit, flap while winged
  Down/S       slide while held (Parkour)
  F or click   special: fireball or wand charge (Happy Rabbit)
  Enter        start from the Parkour title
  H            toggle hard mode on the Parkour title
  P/Esc        pause
  R            restart after game over
  Ctrl+S       save a text screenshot
  Q/Ctrl+C     quit

Difficulty presets scale the speed curve: easy starts slower, hard starts
faster and ramps harder, fixed never speeds up.`,
	Example: `  runner play rabbit
  runner play parkour --difficulty hard
  runner play rabbit --seed 42 --hold-ms 200
  runner play rabbit --config ./my-rabbit.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	id, err := gameArg(args)
	if err != nil {
		return err
	}
	tuneGame(id)
	game, err := registry.Create(id)
	if err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	logger.Debug("starting game", "game", id, "fps", gf.fps, "seed", gf.seed)
	if err := tui.Run(game, store, runtimeConfig(), sessionOptions()); err != nil {
		return fmt.Errorf("%s stopped: %w", id, err)
	}
	return nil
}
