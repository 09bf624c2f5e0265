package checker

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andyballingall/fmtgate/internal/formatter"
)

// makeTree writes n files; those whose index is in dirty get content the stub
// formatter will disagree with. Returns all paths and the dirty paths.
func makeTree(t *testing.T, n int, dirty map[int]bool) (files, wantDirty []string) {
	t.Helper()
	dir := t.TempDir()
	for i := range n {
		content := "int x;\n"
		if dirty[i] {
			content = "int  x ;\n"
		}
		path := writeFile(t, dir, fmt.Sprintf("f%03d.cpp", i), content)
		files = append(files, path)
		if dirty[i] {
			wantDirty = append(wantDirty, path)
		}
	}
	return files, wantDirty
}

// canonRunner emulates a formatter that always emits the canonical form.
func canonRunner() runnerFunc {
	return func(_ context.Context, _ string, _ ...string) (formatter.Result, error) {
		return formatter.Result{Output: []byte("int x;\n")}, nil
	}
}

func TestAggregatorAllConform(t *testing.T) {
	t.Parallel()
	files, _ := makeTree(t, 8, nil)

	a := NewAggregator(NewChecker("clang-format", canonRunner()), 4)
	outcome, err := a.Run(context.Background(), files)
	require.NoError(t, err)

	assert.False(t, outcome.NeedsFormatting)
	assert.Empty(t, outcome.Verdicts)
	assert.Equal(t, 8, outcome.Checked)
	assert.False(t, outcome.EndTime.Before(outcome.StartTime))
}

func TestAggregatorSomeNeedFormatting(t *testing.T) {
	t.Parallel()
	files, wantDirty := makeTree(t, 10, map[int]bool{2: true, 5: true, 9: true})

	a := NewAggregator(NewChecker("clang-format", canonRunner()), 4)
	outcome, err := a.Run(context.Background(), files)
	require.NoError(t, err)

	assert.True(t, outcome.NeedsFormatting)
	require.Len(t, outcome.Verdicts, 3)

	var got []string
	for _, v := range outcome.Verdicts {
		got = append(got, v.Path)
	}
	assert.Equal(t, wantDirty, got, "verdicts should come back sorted by path")
	assert.True(t, sort.StringsAreSorted(got))
}

func TestAggregatorNoLostUpdatesUnderConcurrency(t *testing.T) {
	t.Parallel()
	dirty := make(map[int]bool, 200)
	for i := range 200 {
		dirty[i] = true
	}
	files, _ := makeTree(t, 200, dirty)

	a := NewAggregator(NewChecker("clang-format", canonRunner()), 16)

	var streamed int
	a.OnVerdict = func(Verdict) { streamed++ } // serialized under the aggregator lock

	outcome, err := a.Run(context.Background(), files)
	require.NoError(t, err)

	assert.True(t, outcome.NeedsFormatting)
	assert.Len(t, outcome.Verdicts, 200)
	assert.Equal(t, 200, streamed)
}

func TestAggregatorFlagMatchesVerdicts(t *testing.T) {
	t.Parallel()
	files, _ := makeTree(t, 50, map[int]bool{17: true})

	a := NewAggregator(NewChecker("clang-format", canonRunner()), 8)
	outcome, err := a.Run(context.Background(), files)
	require.NoError(t, err)

	assert.Equal(t, len(outcome.Verdicts) > 0, outcome.NeedsFormatting)
}

func TestAggregatorAbortsOnLaunchError(t *testing.T) {
	t.Parallel()
	files, _ := makeTree(t, 4, nil)

	r := runnerFunc(func(_ context.Context, exe string, _ ...string) (formatter.Result, error) {
		return formatter.Result{}, &formatter.LaunchError{Exe: exe, Err: context.Canceled}
	})

	a := NewAggregator(NewChecker("missing-fmt", r), 2)
	_, err := a.Run(context.Background(), files)
	require.Error(t, err)

	var launchErr *formatter.LaunchError
	require.ErrorAs(t, err, &launchErr)
	assert.Equal(t, "missing-fmt", launchErr.Exe)
}

func TestAggregatorEmptyFileSet(t *testing.T) {
	t.Parallel()
	a := NewAggregator(NewChecker("clang-format", canonRunner()), 0)
	outcome, err := a.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, outcome.NeedsFormatting)
	assert.Zero(t, outcome.Checked)
}

func TestAggregatorToolFailureCountsAsNeedsFormatting(t *testing.T) {
	t.Parallel()
	files, _ := makeTree(t, 3, nil)

	r := runnerFunc(func(_ context.Context, _ string, args ...string) (formatter.Result, error) {
		// Fail only the middle file; its on-disk content is still echoed.
		if strings.HasSuffix(args[0], "f001.cpp") {
			return formatter.Result{Output: []byte("int x;\n"), ExitStatus: 2}, nil
		}
		return formatter.Result{Output: []byte("int x;\n")}, nil
	})

	a := NewAggregator(NewChecker("clang-format", r), 2)
	outcome, err := a.Run(context.Background(), files)
	require.NoError(t, err)

	assert.True(t, outcome.NeedsFormatting)
	require.Len(t, outcome.Verdicts, 1)
	assert.Equal(t, KindToolFailed, outcome.Verdicts[0].Kind)
}
