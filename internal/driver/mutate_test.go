package driver

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"smtfuzz/internal/dialect"
	"smtfuzz/internal/observ"
	"smtfuzz/internal/transform"
)

func writeProblem(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestMutateNopKeepsWholeProblem(t *testing.T) {
	path := writeProblem(t, "p.smt2", `(set-logic QF_S)
(declare-fun x () String)
(assert (= (str.len x) 3))
(check-sat)
(get-model)
`)
	res, err := Mutate(path, MutateRequest{
		Transformer:    transform.Nop{},
		InDialect:      dialect.New,
		Seed:           1,
		MaxDiagnostics: 16,
	})
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}
	want := `(set-logic QF_S)
(declare-fun x () String)
(assert (= (str.len x) 3))
(check-sat)
(get-model)
`
	if string(res.Output) != want {
		t.Fatalf("nop output:\n%s\nwant:\n%s", res.Output, want)
	}
}

func TestMutateFiltersForOtherOperators(t *testing.T) {
	path := writeProblem(t, "p.smt2", `(set-logic QF_S)
(declare-fun x () String)
(assert (= (str.len x) 3))
(check-sat)
(get-model)
`)
	res, err := Mutate(path, MutateRequest{
		Transformer:    transform.Multiply{Factor: 3},
		InDialect:      dialect.New,
		Seed:           1,
		MaxDiagnostics: 16,
	})
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}
	want := `(declare-fun x () String)
(assert (= (str.len x) 9))
`
	if string(res.Output) != want {
		t.Fatalf("multiply output:\n%s\nwant:\n%s", res.Output, want)
	}
}

func TestMutateTranslatesDialects(t *testing.T) {
	path := writeProblem(t, "old.smt2", `(assert (RegexIn x (Str2Reg "ab")))`+"\n")
	res, err := Mutate(path, MutateRequest{
		Transformer:    transform.Nop{},
		InDialect:      dialect.Old,
		OutDialect:     dialect.New,
		Seed:           1,
		MaxDiagnostics: 16,
	})
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}
	want := `(assert (str.in.re x (str.to.re "ab")))` + "\n"
	if string(res.Output) != want {
		t.Fatalf("got %q, want %q", res.Output, want)
	}
}

func TestMutateReportsParseErrorPosition(t *testing.T) {
	path := writeProblem(t, "broken.smt2", "(assert true)\n(assert (= x\n")
	_, err := Mutate(path, MutateRequest{
		Transformer:    transform.Nop{},
		InDialect:      dialect.New,
		Seed:           1,
		MaxDiagnostics: 16,
	})
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("want ParseError, got %v", err)
	}
	if parseErr.Line < 2 {
		t.Fatalf("error points at line %d, want the broken form", parseErr.Line)
	}
	if parseErr.Path != path {
		t.Fatalf("error path = %q, want %q", parseErr.Path, path)
	}
}

func TestMutateRejectsBadOptionsBeforeParsing(t *testing.T) {
	// The path does not exist; option validation must fire first.
	_, err := Mutate(filepath.Join(t.TempDir(), "missing.smt2"), MutateRequest{
		Transformer: transform.Multiply{Factor: -2},
		InDialect:   dialect.New,
	})
	var cfgErr *transform.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("want ConfigError, got %v", err)
	}
}

func TestMutateRecordsTimings(t *testing.T) {
	path := writeProblem(t, "p.smt2", "(assert true)\n")
	timer := observ.NewTimer()
	_, err := Mutate(path, MutateRequest{
		Transformer:    transform.Reverse{},
		InDialect:      dialect.New,
		Seed:           1,
		MaxDiagnostics: 16,
		Timer:          timer,
	})
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}
	report := timer.Report()
	names := make(map[string]bool, len(report.Phases))
	for _, p := range report.Phases {
		names[p.Name] = true
	}
	for _, want := range []string{"parse", "filter", "reverse", "print"} {
		if !names[want] {
			t.Fatalf("missing phase %q in %+v", want, report.Phases)
		}
	}
}
