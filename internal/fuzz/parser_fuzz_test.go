package fuzztests

import (
	"bytes"
	"testing"

	"smtfuzz/internal/diag"
	"smtfuzz/internal/dialect"
	"smtfuzz/internal/lexer"
	"smtfuzz/internal/parser"
	"smtfuzz/internal/printer"
	"smtfuzz/internal/source"
)

func parseInput(name string, input []byte, d dialect.Dialect) (parser.Result, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, input)
	file := fs.Get(fileID)

	bag := diag.NewBag(128)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Dialect: d, Reporter: reporter})

	return parser.ParseFile(lx, parser.Options{
		Reporter:  reporter,
		MaxErrors: 128,
	}), bag
}

func FuzzParserBuildsForest(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(_ *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		for _, d := range []dialect.Dialect{dialect.Old, dialect.New} {
			_, _ = parseInput("fuzz.smt2", input, d)
		}
	})
}

// FuzzPrintRoundTrip checks the core pipeline property: anything that
// parses cleanly prints to a form that parses back to the same forest.
func FuzzPrintRoundTrip(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		res, bag := parseInput("fuzz.smt2", input, dialect.New)
		if bag.HasErrors() {
			return
		}

		printed := printer.Print(res.Nodes, dialect.New)
		again, bag2 := parseInput("reprint.smt2", printed, dialect.New)
		if bag2.HasErrors() {
			first, _ := bag2.FirstError()
			t.Fatalf("printed form does not parse: %s\ninput: %q\nprinted: %q",
				first.Message, truncateForLog(input, 200), truncateForLog(printed, 200))
		}

		printed2 := printer.Print(again.Nodes, dialect.New)
		if !bytes.Equal(printed, printed2) {
			t.Fatalf("print is not a fixpoint:\nfirst:  %q\nsecond: %q",
				truncateForLog(printed, 200), truncateForLog(printed2, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen], []byte("...")...)
}
