package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagRecent bool
	flagLimit  int
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show the run history for a game",
	Long:  "Print the best runs recorded for a game, or the latest ones with --recent.\n--clear deletes the game's history instead.",
	Example: `  runner scores rabbit
  runner scores parkour --recent --limit 20
  runner scores rabbit --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest runs instead of the best")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the game's run history (the best-score file is kept)")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}
	info, _ := registry.Lookup(gameID)

	store, err := storage.Open(gf.dbPath)
	if err != nil {
		return fmt.Errorf("run history: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared the %s run history.\n", info.Title)
		return nil
	}

	fetch, heading := store.TopRuns, "Top runs"
	if flagRecent {
		fetch, heading = store.RecentRuns, "Recent runs"
	}
	runs, err := fetch(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Println(lipgloss.NewStyle().Bold(true).Render(heading + " · " + info.Title))
	if len(runs) == 0 {
		fmt.Printf("Nothing recorded yet. Finish a run of 'runner play %s' first.\n", gameID)
		return nil
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(_, _ int) lipgloss.Style { return cell }).
		Headers("#", "SCORE", "PICKUPS", "MODE", "TIME", "WHEN")
	for i, r := range runs {
		secs := r.DurationMs / 1000
		t.Row(
			strconv.Itoa(i+1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Pickups),
			r.Mode,
			fmt.Sprintf("%d:%02d", secs/60, secs%60),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(t.Render())

	if stats, err := store.GetGameStats(gameID); err == nil && stats.RunsCount > 0 {
		fmt.Printf("%d runs · best %d · average %.0f · saved best %d\n",
			stats.RunsCount, stats.HighScore, stats.AvgScore, storage.BestFileFor(gf.bestDir, gameID).Load())
	}
	return nil
}
