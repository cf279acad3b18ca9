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

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the runner games",
	Long:  `Shows every game with its ID, a one-line pitch and the best score saved in --best-dir.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games registered.")
		return
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(_, _ int) lipgloss.Style { return cell }).
		Headers("ID", "GAME", "BEST", "ABOUT")

	for _, g := range games {
		best := storage.BestFileFor(gf.bestDir, g.ID).Load()
		t.Row(g.ID, g.Title, strconv.Itoa(best), g.Blurb)
	}

	fmt.Println(t.Render())
	fmt.Println("Start one with 'runner play <id>' or pick from 'runner menu'.")
}
