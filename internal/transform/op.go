package transform

import "fmt"

// Op identifies a mutation operator.
type Op uint8

const (
	OpNop Op = iota
	OpReverse
	OpRotate
	OpMultiply
	OpGraft
	OpTranslate
	OpFuzz
	OpUnprintable

	opCount
)

func (op Op) String() string {
	switch op {
	case OpNop:
		return "nop"
	case OpReverse:
		return "reverse"
	case OpRotate:
		return "rotate"
	case OpMultiply:
		return "multiply"
	case OpGraft:
		return "graft"
	case OpTranslate:
		return "translate"
	case OpFuzz:
		return "fuzz"
	case OpUnprintable:
		return "unprintable"
	}
	return "unknown"
}

// Ops lists every operator in declaration order.
func Ops() []Op {
	out := make([]Op, 0, opCount)
	for op := OpNop; op < opCount; op++ {
		out = append(out, op)
	}
	return out
}

// ParseOp maps a CLI spelling to an Op.
func ParseOp(s string) (Op, error) {
	for op := OpNop; op < opCount; op++ {
		if op.String() == s {
			return op, nil
		}
	}
	return OpNop, fmt.Errorf("unknown transformer %q", s)
}
