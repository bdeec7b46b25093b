// Package fuzztests houses Go fuzz harnesses that exercise the problem
// pipeline (source -> lexer -> parser -> printer). Its goal is to smoke
// test robustness and guard against panics or allocator explosions on
// arbitrary inputs.
//
// It does not generate corpora, write files, or run the CLI.
package fuzztests
