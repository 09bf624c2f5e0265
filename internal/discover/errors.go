package discover

import (
	"fmt"
)

// NotFoundError indicates that an input path does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("input path %s does not exist", e.Path)
}
