// Package transform holds the filtering policy and the eight mutation
// operators. Every operator is a pure function over a top-level node
// sequence: it never touches the input trees (replacements are built from
// clones) and draws all randomness from the *rand.Rand the caller seeds,
// so a fixed seed reproduces a campaign byte for byte.
//
// Option values are validated before any tree work starts; a bad option
// is a ConfigError, never a partially mutated tree.
package transform
