package checker

import (
	"fmt"
)

// ReadError indicates that a discovered file could not be read. The run
// aborts rather than degrading the check to a guess about the file's content.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("unable to read source file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
