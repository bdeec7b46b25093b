// Package diag carries diagnostics produced while lexing and parsing
// SMT-LIB input. Phases report into a Bag through the Reporter interface;
// the driver turns a bag with errors into a single ParseError for the CLI.
package diag
