package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"smtfuzz/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "smtfuzz",
	Short: "Structural fuzzer for SMT-LIB string problems",
	Long:  `smtfuzz parses SMT-LIB problem files and rewrites them with randomized structural mutations`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(mutateCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(campaignCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("in-dialect", "smt25", "input dialect (smt20|smt25)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
