// Package printer serializes a node sequence back into dialect-specific
// SMT-LIB text. It is the inverse of the parser: for any tree the parser
// can produce, printing and re-parsing under the same dialect yields a
// structurally equal tree.
//
// Printing never fails on a structurally valid tree; feeding it anything
// else is a caller bug.
package printer
