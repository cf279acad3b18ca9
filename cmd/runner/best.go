package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

var bestCmd = &cobra.Command{
	Use:   "best <game>",
	Short: "Print the saved best score of a game",
	Long: `Print the best score kept in <best-dir>/<game>_best.txt, and the highest
score in the run history when there is one. A missing or unreadable file
counts as 0.`,
	Example: `  runner best rabbit
  runner best parkour --best-dir ./saves`,
	Args: cobra.ExactArgs(1),
	RunE: runBest,
}

func runBest(_ *cobra.Command, args []string) error {
	id, err := gameArg(args)
	if err != nil {
		return err
	}
	bf := storage.BestFileFor(gf.bestDir, id)
	fmt.Printf("%s: %d (%s)\n", id, bf.Load(), bf.Path())

	store := openStore()
	if store == nil {
		return nil
	}
	defer store.Close()
	if high, err := store.HighScore(id); err == nil && high > 0 {
		fmt.Printf("history high: %d\n", high)
	}
	return nil
}
