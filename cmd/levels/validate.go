package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errInvalidLevels = errors.New("some levels are invalid")

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Parse and validate every level",
	Long: `Loads every level the game could reach and reports problems.

Levels are played from 1 upwards and the game ends at the first gap, so
levels after a gap are reported as unreachable.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	loader := newLoader()
	indexes := loader.Indexes()
	if len(indexes) == 0 {
		return fmt.Errorf("no levels found in %q", flagDir)
	}

	failed := false
	next := 1
	for _, i := range indexes {
		def, err := loader.Load(i)
		switch {
		case err != nil:
			failed = true
			fmt.Fprintf(out, "%s level %d: %v\n", errorStyle.Render("FAIL"), i, err)
		case i != next:
			fmt.Fprintf(out, "%s level %d: unreachable, level %d is missing\n", warnStyle.Render("WARN"), i, next)
		default:
			note := ""
			if need := def.TotalNeeded(); need > def.GrainGoal {
				note = dimStyle.Render(fmt.Sprintf(" (buckets need %d of %d grains)", need, def.GrainGoal))
			}
			fmt.Fprintf(out, "%s level %d: %s%s\n", okStyle.Render("ok"), i, def.DisplayName(i), note)
		}
		if i == next {
			next++
		}
	}
	if failed {
		return errInvalidLevels
	}
	return nil
}
