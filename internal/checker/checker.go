// Package checker decides per file whether formatted output matches the
// on-disk content, and fans that decision out over a whole file set.
package checker

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/andyballingall/fmtgate/internal/formatter"
)

// Checker runs the formatter against single files and compares the result
// with what is on disk.
type Checker struct {
	// Formatter is the executable invoked per file.
	Formatter string

	// Runner spawns the formatter subprocess.
	Runner formatter.Runner
}

// NewChecker creates a Checker using the given formatter executable.
func NewChecker(exe string, runner formatter.Runner) *Checker {
	if exe == "" {
		exe = formatter.DefaultExecutable
	}
	return &Checker{Formatter: exe, Runner: runner}
}

// Check returns nil when path already conforms to the formatter's output,
// or a Verdict describing the nonconformance. The comparison is exact bytes;
// nothing on the read or capture path normalizes line endings, so a single
// trailing-newline difference is a real verdict, not noise.
//
// An unreadable file or an unlaunchable formatter returns an error, which
// aborts the whole run rather than producing a verdict.
func (c *Checker) Check(ctx context.Context, path string) (*Verdict, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	res, err := c.Runner.Run(ctx, c.Formatter, path)
	if err != nil {
		return nil, err
	}

	if res.ExitStatus != 0 {
		return &Verdict{
			Path: path,
			Kind: KindToolFailed,
			Message: fmt.Sprintf("got return code %d when executing %s %s",
				res.ExitStatus, c.Formatter, path),
		}, nil
	}

	if !bytes.Equal(content, res.Output) {
		return &Verdict{
			Path:    path,
			Kind:    KindMismatch,
			Message: fmt.Sprintf("%s changes when formatted", path),
		}, nil
	}

	return nil, nil
}
