package driver

import "smtfuzz/internal/transform"

type EventKind uint8

const (
	// EventDone: the job produced an output file.
	EventDone EventKind = iota
	// EventSkipped: the cache already had this run.
	EventSkipped
	// EventFailed: the input did not parse or the output could not be
	// written; Err carries the cause.
	EventFailed
)

// Event is one campaign job outcome, in completion order.
type Event struct {
	Kind    EventKind
	Path    string
	Op      transform.Op
	OutPath string
	Err     error

	// Done and Total let a consumer draw progress without counting.
	Done  int
	Total int
}
