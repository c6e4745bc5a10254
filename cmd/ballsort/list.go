package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ballsort/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List puzzle variants",
	Long:  `Shows every puzzle variant that can be played, with its move rule.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	variants := registry.List()
	out := cmd.OutOrStdout()
	if len(variants) == 0 {
		fmt.Fprintln(out, "No puzzles available.")
		return nil
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("ID", "TITLE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})
	for _, v := range variants {
		t.Row(v.ID, v.Title)
	}

	fmt.Fprintln(out, t.Render())
	fmt.Fprintf(out, "\nStandard rule: %s runs (rules.run_policy)\n", appConfig.Rules.RunPolicy)
	fmt.Fprintln(out, "Run 'ballsort play <id>' to play.")
	return nil
}
