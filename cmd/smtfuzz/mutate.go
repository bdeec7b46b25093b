package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"smtfuzz/internal/dialect"
	"smtfuzz/internal/driver"
	"smtfuzz/internal/observ"
	"smtfuzz/internal/transform"
)

var mutateCmd = &cobra.Command{
	Use:   "mutate <operator> [file.smt2]",
	Short: "Apply one mutation operator to a problem file",
	Long: `Mutate parses a problem file (or stdin), filters out solver directives,
applies the named operator, and prints the rewritten problem.
Operators: ` + opList(),
	Args: cobra.RangeArgs(1, 2),
	RunE: runMutate,
}

func init() {
	mutateCmd.Flags().String("out-dialect", "", "output dialect (smt20|smt25), defaults to the input dialect")
	mutateCmd.Flags().Int64("seed", 0, "random seed (0 = derive from current time)")
	mutateCmd.Flags().StringP("output", "o", "", "write output to file instead of stdout")

	mutateCmd.Flags().Int("factor", 2, "multiplier for the multiply operator")
	mutateCmd.Flags().Bool("include-re-range", false, "also mutate inside re.range applications")
	mutateCmd.Flags().Bool("include-str-to-re", false, "let graft touch str.to.re coercions")
	mutateCmd.Flags().Bool("rename-ints", false, "let translate rename Int-sorted symbols")
}

func opList() string {
	s := ""
	for i, op := range transform.Ops() {
		if i > 0 {
			s += ", "
		}
		s += op.String()
	}
	return s
}

func buildTransformer(cmd *cobra.Command, op transform.Op) (transform.Transformer, error) {
	factor, err := cmd.Flags().GetInt("factor")
	if err != nil {
		return nil, err
	}
	includeReRange, err := cmd.Flags().GetBool("include-re-range")
	if err != nil {
		return nil, err
	}
	includeStrToRe, err := cmd.Flags().GetBool("include-str-to-re")
	if err != nil {
		return nil, err
	}
	renameInts, err := cmd.Flags().GetBool("rename-ints")
	if err != nil {
		return nil, err
	}

	switch op {
	case transform.OpMultiply:
		return transform.Multiply{Factor: factor, IncludeReRange: includeReRange}, nil
	case transform.OpGraft:
		return transform.Graft{IncludeStrToRe: includeStrToRe}, nil
	case transform.OpTranslate:
		return transform.Translate{RenameInts: renameInts, IncludeReRange: includeReRange}, nil
	case transform.OpFuzz:
		return transform.Fuzz{IncludeReRange: includeReRange}, nil
	case transform.OpUnprintable:
		return transform.Unprintable{IncludeReRange: includeReRange}, nil
	default:
		return transform.Default(op), nil
	}
}

func inDialect(cmd *cobra.Command) (dialect.Dialect, error) {
	s, err := cmd.Root().PersistentFlags().GetString("in-dialect")
	if err != nil {
		return dialect.Unknown, err
	}
	return dialect.Parse(s)
}

func runMutate(cmd *cobra.Command, args []string) error {
	op, err := transform.ParseOp(args[0])
	if err != nil {
		return err
	}
	filePath := "-"
	if len(args) == 2 {
		filePath = args[1]
	}

	tr, err := buildTransformer(cmd, op)
	if err != nil {
		return err
	}

	inD, err := inDialect(cmd)
	if err != nil {
		return err
	}

	outD := dialect.Unknown
	if s, _ := cmd.Flags().GetString("out-dialect"); s != "" {
		outD, err = dialect.Parse(s)
		if err != nil {
			return err
		}
	}

	seed, err := cmd.Flags().GetInt64("seed")
	if err != nil {
		return err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
		if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); !quiet {
			fmt.Fprintf(os.Stderr, "seed %d\n", seed)
		}
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}
	var timer *observ.Timer
	if showTimings {
		timer = observ.NewTimer()
	}

	req := driver.MutateRequest{
		Transformer:    tr,
		InDialect:      inD,
		OutDialect:     outD,
		Seed:           seed,
		MaxDiagnostics: maxDiagnostics,
		Timer:          timer,
	}

	var result *driver.MutateResult
	if filePath == "-" {
		content, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			return fmt.Errorf("read stdin: %w", readErr)
		}
		result, err = driver.MutateBytes("<stdin>", content, req)
	} else {
		result, err = driver.Mutate(filePath, req)
	}
	if err != nil {
		var parseErr *driver.ParseError
		var cfgErr *transform.ConfigError
		switch {
		case errors.As(err, &parseErr):
			return fmt.Errorf("input rejected: %w", parseErr)
		case errors.As(err, &cfgErr):
			return fmt.Errorf("bad operator options: %w", cfgErr)
		default:
			return err
		}
	}

	if timer != nil {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	outPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if outPath == "" {
		_, err = os.Stdout.Write(result.Output)
		return err
	}
	return os.WriteFile(outPath, result.Output, 0o644)
}
