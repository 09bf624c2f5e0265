package formatter

import (
	"fmt"
)

// LaunchError indicates that the formatter executable could not be spawned
// at all (missing binary, permission problem). It is unrecoverable and aborts
// the whole run, unlike a nonzero exit status from a launched process.
type LaunchError struct {
	Exe string
	Err error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("unable to run %s: %v", e.Exe, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}
