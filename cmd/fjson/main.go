package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"fjson/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "fjson",
	Short: "Formatter for JSON with comments and trailing commas",
	Long: `fjson parses a JSON superset (C-style comments, trailing commas) and
re-serializes it deterministically: annotated output for humans, strict
pretty or compact JSON for machines.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 64, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the persistent --color flag against the stream.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
