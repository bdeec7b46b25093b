package dialect

import "fmt"

// Dialect identifies a lexical convention for string-theory SMT-LIB.
type Dialect uint8

const (
	Unknown Dialect = iota
	// Old is the pre-2.5 Z3-str style surface (Concat, Length, RegexIn).
	Old
	// New is the dotted surface standardized later (str.++, str.len).
	New

	dialectCount
)

func (d Dialect) String() string {
	switch d {
	case Old:
		return "smt20"
	case New:
		return "smt25"
	default:
		return "unknown"
	}
}

func (d Dialect) GoString() string {
	return fmt.Sprintf("Dialect(%s)", d.String())
}

// Valid reports whether d is a concrete, selectable dialect.
func (d Dialect) Valid() bool {
	return d > Unknown && d < dialectCount
}

// Parse maps a CLI spelling to a Dialect.
func Parse(s string) (Dialect, error) {
	switch s {
	case "smt20", "old":
		return Old, nil
	case "smt25", "new":
		return New, nil
	default:
		return Unknown, fmt.Errorf("unknown dialect %q (want smt20 or smt25)", s)
	}
}
