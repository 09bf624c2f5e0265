package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Exit codes. CI systems key off the distinction between "nothing to do"
// and "the gate is closed".
const (
	ExitOK              = 0 // every discovered file conforms
	ExitError           = 1 // usage error or unrecoverable failure
	ExitNeedsFormatting = 2 // at least one file needs formatting
)

// Run executes the CLI and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logLevel := &slog.LevelVar{}
	logLevel.Set(slog.LevelInfo)

	rootCmd := NewRootCmd(logLevel, stdout, stderr)
	rootCmd.SetArgs(args[1:]) // Skip the program name
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var needs *FormattingNeededError
		if errors.As(err, &needs) {
			// Verdicts and the summary have already been written.
			return ExitNeedsFormatting
		}
		// Print error to stderr for script tests and CLI users (SilenceErrors is set)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}

	return ExitOK
}
