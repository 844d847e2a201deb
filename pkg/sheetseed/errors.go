package sheetseed

import (
	"errors"
	"fmt"
)

// ErrNoEventID indicates the resolver exhausted every path without
// obtaining a parent event identifier. The run must stop before any child
// table is touched.
var ErrNoEventID = errors.New("no event id obtainable")

// StageError wraps a failure inside one pipeline stage.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
