// Package dialect models the two string-theory SMT-LIB conventions the
// fuzzer understands: the older Z3-str style surface (Concat, Length,
// RegexIn, ...) and the newer dotted surface (str.++, str.len,
// str.in.re, ...).
//
// Both map onto one tree shape: the parser folds surface names to the
// canonical (new-style) spelling, and the printer translates back on the
// way out. The dialect also owns the string-literal escaping rules, which
// differ between the two conventions.
package dialect
