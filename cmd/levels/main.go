// levels inspects Sugar Pop level files.
//
// Usage:
//
//	levels list            - List levels with their goals
//	levels validate        - Parse and validate every level
//	levels show <n>        - Print one level in detail
//
// Global flags:
//
//	--dir <path>    - Directory searched before the embedded levels (default: levels)
//	--no-embed      - Ignore the embedded levels
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/milk9111/sugarpop/levels"
)

var (
	flagDir     string
	flagNoEmbed bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "levels",
	Short:         "Inspect Sugar Pop level files",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "levels", "Directory searched before the embedded levels")
	rootCmd.PersistentFlags().BoolVar(&flagNoEmbed, "no-embed", false, "Ignore the embedded levels")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(showCmd)
}

func newLoader() *levels.Loader {
	l := levels.NewLoader(flagDir)
	if flagNoEmbed {
		l.FS = nil
	}
	return l
}
