// Package formatter invokes the external formatting executable and captures
// its output.
package formatter

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
)

// DefaultExecutable is the formatter binary used when no override is given.
// It is resolved on PATH at invocation time.
const DefaultExecutable = "clang-format"

// Result holds the captured standard output and the exit status of one
// formatter invocation.
type Result struct {
	Output     []byte
	ExitStatus int
}

// Runner executes the formatter against one file. Implementations must be
// safe for concurrent use; the checker invokes one Runner from many workers.
type Runner interface {
	Run(ctx context.Context, exe string, args ...string) (Result, error)
}

// ExecRunner is the concrete Runner backed by os/exec. The argument vector
// is handed to the process spawn directly, never joined into a shell command
// line, so file names containing spaces or shell metacharacters are safe.
type ExecRunner struct {
	// Stderr receives the subprocess's standard error stream. The formatter's
	// own diagnostics stay visible but never take part in the comparison.
	// Nil discards it.
	Stderr io.Writer
}

// NewExecRunner creates an ExecRunner whose subprocess stderr goes to stderr.
func NewExecRunner(stderr io.Writer) *ExecRunner {
	return &ExecRunner{Stderr: stderr}
}

// Run executes exe with args, captures its full standard output and waits for
// it to terminate. A nonzero exit status from a successfully launched process
// is not an error: it is reported in the Result for the caller to judge.
// Failing to launch the process at all returns a LaunchError.
func (r *ExecRunner) Run(ctx context.Context, exe string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, exe, args...)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = r.Stderr
	// No stdin: the formatter reads the file named in its arguments.

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{Output: out.Bytes(), ExitStatus: exitErr.ExitCode()}, nil
		}
		return Result{}, &LaunchError{Exe: exe, Err: err}
	}

	return Result{Output: out.Bytes()}, nil
}
