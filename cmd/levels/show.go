package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <n>",
	Short: "Print one level in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil || index < 1 {
		return fmt.Errorf("invalid level number %q", args[0])
	}
	def, err := newLoader().Load(index)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Level %d: %s", index, def.DisplayName(index))))
	fmt.Fprintf(out, "  spout      (%g, %g)\n", def.SpoutX, def.SpoutY)
	fmt.Fprintf(out, "  sugar      %d\n", def.GrainGoal)
	if def.TimeLimit > 0 {
		fmt.Fprintf(out, "  time limit %gs\n", def.TimeLimit)
	}
	if def.SpoutScript != "" {
		fmt.Fprintln(out, "  spout script:")
		fmt.Fprintln(out, dimStyle.Render(def.SpoutScript))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, headerStyle.Render("Buckets"))
	for i, b := range def.Buckets {
		fmt.Fprintf(out, "  %d. at (%g, %g) %gx%g needs %d\n", i+1, b.X, b.Y, b.Width, b.Height, b.NeededSugar)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, headerStyle.Render("Statics"))
	for i, s := range def.Statics {
		fmt.Fprintf(out, "  %d. (%g, %g) -> (%g, %g) %s\n", i+1, s.X1, s.Y1, s.X2, s.Y2, s.Color)
	}
	return nil
}
