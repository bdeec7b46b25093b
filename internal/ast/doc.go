// Package ast defines the tree model for parsed SMT-LIB problems.
// Invariants:
//   - A problem is an ordered sequence of top-level nodes; order matters.
//   - Children are exclusively owned: no node appears under two parents
//     and the tree is acyclic by construction.
//   - Built-in theory symbols are stored under their canonical (new
//     dialect) spelling; dialects translate at the parse/print boundary.
//   - A literal's class is fixed at parse time. Transformers may rewrite
//     a literal's value but never its class.
//
// Transformers never mutate a tree they received: they build replacements
// from Clone so subtree reuse (grafting) cannot alias.
package ast
