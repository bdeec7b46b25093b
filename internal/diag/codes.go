package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003
	LexBadEscape          Code = 1004
	LexUnterminatedQuoted Code = 1005

	// Syntactic
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnclosedParen      Code = 2002
	SynUnexpectedRParen   Code = 2003
	SynUnexpectedTopLevel Code = 2004
	SynExpectSymbol       Code = 2005
	SynBadArity           Code = 2006

	// I/O
	IOInfo          Code = 3000
	IOLoadFileError Code = 3001
	IOWriteError    Code = 3002

	// Observability
	ObsTimings Code = 4000
)

func (c Code) String() string {
	switch {
	case c >= ObsTimings:
		return fmt.Sprintf("OBS%04d", uint16(c))
	case c >= IOInfo:
		return fmt.Sprintf("IO%04d", uint16(c))
	case c >= SynInfo:
		return fmt.Sprintf("SYN%04d", uint16(c))
	case c >= LexInfo:
		return fmt.Sprintf("LEX%04d", uint16(c))
	default:
		return fmt.Sprintf("DIAG%04d", uint16(c))
	}
}
