// runner plays side-scrolling runner games in the terminal.
//
// Usage:
//
//	runner list              - List the games and their saved bests
//	runner play <game>       - Play one game
//	runner menu              - Pick games from an interactive menu
//	runner scores <game>     - Show the run history of a game
//	runner best <game>       - Print the saved best score
//	runner serve             - Host the games over SSH
//
// Global flags:
//
//	--fps <rate>         - Simulation ticks per second (default: 60)
//	--seed <value>       - RNG seed, 0 picks one from the clock
//	--db <path>          - Run history database (default: ~/.runner/runs.db)
//	--best-dir <path>    - Directory of <game>_best.txt files (default: ~/.runner)
//	--config <path>      - Game tuning YAML
//	--difficulty <name>  - easy, normal, hard or fixed
//	--hold-ms <ms>       - Key release timeout for held jumps and slides
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	_ "github.com/vovakirdan/tui-runner/internal/games/parkour"
	_ "github.com/vovakirdan/tui-runner/internal/games/rabbit"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	fps        int
	seed       int64
	dbPath     string
	bestDir    string
	configPath string
	difficulty string
	holdMs     int
	logLevel   string
}

var (
	gf     globalFlags
	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "runner"})
)

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Side-scrolling runner games for the terminal",
	Long: `runner hosts two endless runners:

  rabbit   Happy Rabbit: double jumps, carrots, wings, portals and fireballs
  parkour  Parkour: boxes, towers and birds, coins, shields and slides

Play one directly, browse them from the menu, or serve them over SSH.
Finished runs go to a SQLite history; each game also keeps its best score
in <best-dir>/<game>_best.txt.`,
	Example: `  runner play rabbit
  runner play parkour --difficulty hard --seed 7
  runner menu
  runner scores rabbit --recent
  runner serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: prepare,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&gf.fps, "fps", 60, "Simulation ticks per second")
	pf.Int64Var(&gf.seed, "seed", 0, "RNG seed (0 = from the clock)")
	pf.StringVar(&gf.dbPath, "db", "~/.runner/runs.db", "Run history database")
	pf.StringVar(&gf.bestDir, "best-dir", "~/.runner", "Directory of <game>_best.txt files")
	pf.StringVar(&gf.configPath, "config", "", "Tuning YAML for the game started by play")
	pf.StringVar(&gf.difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.IntVar(&gf.holdMs, "hold-ms", 150, "Milliseconds without key repeats before a held key counts as released")
	pf.StringVar(&gf.logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd, playCmd, menuCmd, scoresCmd, bestCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
