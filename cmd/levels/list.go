package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all levels",
	Long:  `Shows every level found on disk or embedded, in play order.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	loader := newLoader()
	indexes := loader.Indexes()
	if len(indexes) == 0 {
		fmt.Fprintln(out, "No levels found.")
		return nil
	}

	fmt.Fprintln(out, titleStyle.Render("Levels"))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s\n", headerStyle.Render(fmt.Sprintf("%-3s  %-20s  %6s  %7s  %6s", "#", "Name", "Sugar", "Buckets", "Limit")))
	for _, i := range indexes {
		def, err := loader.Load(i)
		if err != nil {
			fmt.Fprintf(out, "  %-3d  %s\n", i, errorStyle.Render(err.Error()))
			continue
		}
		limit := "-"
		if def.TimeLimit > 0 {
			limit = fmt.Sprintf("%gs", def.TimeLimit)
		}
		fmt.Fprintf(out, "  %-3d  %-20s  %6d  %7d  %6s\n", i, def.DisplayName(i), def.GrainGoal, len(def.Buckets), limit)
	}
	return nil
}
