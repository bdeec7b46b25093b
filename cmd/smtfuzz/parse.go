package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smtfuzz/internal/diagfmt"
	"smtfuzz/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.smt2>",
	Short: "Parse a problem file and dump its tree",
	Long:  `Parse analyzes an SMT-LIB problem file and outputs its node tree`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	inD, err := inDialect(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Parse(filePath, inD, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		result.Bag.Sort()
		opts := diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			Context:   2,
			ShowNotes: true,
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatNodesPretty(os.Stdout, result.Nodes, result.FileSet)
	case "json":
		return diagfmt.FormatNodesJSON(os.Stdout, result.Nodes)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
