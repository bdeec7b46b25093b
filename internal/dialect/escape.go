package dialect

import (
	"fmt"
	"strings"
)

// needsEscape reports whether a byte cannot appear verbatim inside a
// string literal. UTF-8 continuation bytes pass through untouched.
func needsEscape(b byte) bool {
	return b < 0x20 || b == 0x7f
}

// EncodeStringBody escapes decoded string contents for dialect d. The
// surrounding quotes are the printer's business.
//
// Old dialect: backslash escapes (\" \\ \xNN).
// New dialect: doubled quotes ("" for ") plus \\ and \xNN.
func EncodeStringBody(d Dialect, s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b == '"':
			if d == Old {
				sb.WriteString(`\"`)
			} else {
				sb.WriteString(`""`)
			}
		case b == '\\':
			sb.WriteString(`\\`)
		case needsEscape(b):
			fmt.Fprintf(&sb, `\x%02x`, b)
		default:
			sb.WriteByte(b)
		}
	}
	return sb.String()
}

// DecodeStringBody is the inverse of EncodeStringBody over raw literal
// bodies produced by the lexer (quotes stripped, escapes intact).
// Unknown escapes decode to their literal characters rather than failing;
// the lexer has already reported anything suspicious.
func DecodeStringBody(d Dialect, raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		if d == New && b == '"' && i+1 < len(raw) && raw[i+1] == '"' {
			sb.WriteByte('"')
			i++
			continue
		}
		if b != '\\' || i+1 >= len(raw) {
			sb.WriteByte(b)
			continue
		}
		i++
		switch raw[i] {
		case '\\':
			sb.WriteByte('\\')
		case '"':
			sb.WriteByte('"')
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case 'x':
			if i+2 < len(raw) {
				if v, ok := hexByte(raw[i+1], raw[i+2]); ok {
					sb.WriteByte(v)
					i += 2
					continue
				}
			}
			sb.WriteString(`\x`)
		default:
			sb.WriteByte('\\')
			sb.WriteByte(raw[i])
		}
	}
	return sb.String()
}

func hexByte(hi, lo byte) (byte, bool) {
	h, ok1 := hexVal(hi)
	l, ok2 := hexVal(lo)
	if !ok1 || !ok2 {
		return 0, false
	}
	return h<<4 | l, true
}

func hexVal(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}
