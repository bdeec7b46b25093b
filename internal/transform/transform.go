package transform

import (
	"fmt"
	"math/rand"

	"smtfuzz/internal/ast"
)

// Transformer is one mutation operator with its options bound.
//
// Apply must be deterministic for a fixed rng state and must never mutate
// the input sequence or any tree hanging off it.
type Transformer interface {
	Op() Op
	// Validate checks the bound options; it runs before any tree work.
	Validate() error
	Apply(nodes []*ast.Node, rng *rand.Rand) []*ast.Node
}

// Default returns op's transformer with default options.
func Default(op Op) Transformer {
	switch op {
	case OpNop:
		return Nop{}
	case OpReverse:
		return Reverse{}
	case OpRotate:
		return Rotate{}
	case OpMultiply:
		return Multiply{Factor: 2}
	case OpGraft:
		return Graft{}
	case OpTranslate:
		return Translate{}
	case OpFuzz:
		return Fuzz{}
	case OpUnprintable:
		return Unprintable{}
	}
	return Nop{}
}

// ConfigError reports an operator option outside its valid domain.
type ConfigError struct {
	Op    Op
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: option %s: %s", e.Op, e.Field, e.Msg)
}
