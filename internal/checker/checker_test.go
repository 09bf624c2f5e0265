package checker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andyballingall/fmtgate/internal/formatter"
)

// runnerFunc adapts a function to the formatter.Runner interface.
type runnerFunc func(ctx context.Context, exe string, args ...string) (formatter.Result, error)

func (f runnerFunc) Run(ctx context.Context, exe string, args ...string) (formatter.Result, error) {
	return f(ctx, exe, args...)
}

// echoRunner always returns the given output with exit status 0.
func echoRunner(output string) runnerFunc {
	return func(_ context.Context, _ string, _ ...string) (formatter.Result, error) {
		return formatter.Result{Output: []byte(output)}, nil
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheckConformingFile(t *testing.T) {
	t.Parallel()
	content := "int main() {\n  return 0;\n}\n"
	path := writeFile(t, t.TempDir(), "a.cpp", content)

	c := NewChecker("clang-format", echoRunner(content))
	v, err := c.Check(context.Background(), path)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestCheckMismatchedFile(t *testing.T) {
	t.Parallel()
	path := writeFile(t, t.TempDir(), "b.h", "int  x ;\n")

	c := NewChecker("clang-format", echoRunner("int x;\n"))
	v, err := c.Check(context.Background(), path)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, KindMismatch, v.Kind)
	assert.Equal(t, path, v.Path)
	assert.Contains(t, v.Message, path)
}

func TestCheckTrailingNewlineIsARealDiff(t *testing.T) {
	t.Parallel()
	path := writeFile(t, t.TempDir(), "c.cc", "int x;\n")

	// Formatter output identical except for the final newline.
	c := NewChecker("clang-format", echoRunner("int x;"))
	v, err := c.Check(context.Background(), path)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, KindMismatch, v.Kind)
}

func TestCheckToolNonZeroExit(t *testing.T) {
	t.Parallel()
	content := "int x;\n"
	path := writeFile(t, t.TempDir(), "broken.cpp", content)

	// Output equals the file content, but the exit status still wins.
	r := runnerFunc(func(_ context.Context, _ string, _ ...string) (formatter.Result, error) {
		return formatter.Result{Output: []byte(content), ExitStatus: 1}, nil
	})

	c := NewChecker("clang-format", r)
	v, err := c.Check(context.Background(), path)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, KindToolFailed, v.Kind)
	assert.Contains(t, v.Message, "return code 1")
	assert.Contains(t, v.Message, "clang-format")
	assert.Contains(t, v.Message, path)
}

func TestCheckUnreadableFile(t *testing.T) {
	t.Parallel()
	c := NewChecker("clang-format", echoRunner(""))
	_, err := c.Check(context.Background(), filepath.Join(t.TempDir(), "gone.cpp"))
	require.Error(t, err)

	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Contains(t, readErr.Error(), "gone.cpp")
}

func TestCheckLaunchErrorPropagates(t *testing.T) {
	t.Parallel()
	path := writeFile(t, t.TempDir(), "d.cpp", "int x;\n")

	launchErr := &formatter.LaunchError{Exe: "clang-format", Err: errors.New("executable file not found")}
	r := runnerFunc(func(_ context.Context, _ string, _ ...string) (formatter.Result, error) {
		return formatter.Result{}, launchErr
	})

	c := NewChecker("clang-format", r)
	_, err := c.Check(context.Background(), path)
	require.ErrorIs(t, err, launchErr)
}

func TestNewCheckerDefaultsExecutable(t *testing.T) {
	t.Parallel()
	c := NewChecker("", echoRunner(""))
	assert.Equal(t, formatter.DefaultExecutable, c.Formatter)
}
