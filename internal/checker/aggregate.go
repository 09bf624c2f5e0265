package checker

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Outcome is the reduced result of one run over a file set.
type Outcome struct {
	// Verdicts holds every nonconformance found, sorted by path. Sorting
	// happens once after the barrier; report order during the run is
	// whatever the workers produced.
	Verdicts []Verdict

	// Checked is the number of files visited.
	Checked int

	// NeedsFormatting is true iff at least one verdict was produced.
	NeedsFormatting bool

	StartTime time.Time
	EndTime   time.Time
}

// Aggregator fans a Checker out over a file set with a bounded worker pool.
type Aggregator struct {
	checker *Checker
	workers int

	// OnVerdict, when set, is called for each verdict as it is found. Calls
	// are serialized under the same lock that guards the aggregate state, so
	// a report and its flag update are atomic with respect to other workers.
	OnVerdict func(Verdict)

	mu       sync.Mutex
	verdicts []Verdict
	flagged  bool
}

// NewAggregator creates an Aggregator running at most workers checks
// concurrently. workers <= 0 means one worker per CPU.
func NewAggregator(c *Checker, workers int) *Aggregator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Aggregator{checker: c, workers: workers}
}

// Run checks every file and returns the aggregate outcome. Per-file verdicts
// never abort the run: a worker records its verdict and the remaining files
// are still checked. Only unrecoverable errors (unreadable file, formatter
// that cannot launch) fail the group, cancel the remaining workers, and
// surface here.
func (a *Aggregator) Run(ctx context.Context, files []string) (*Outcome, error) {
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for _, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := a.checker.Check(gctx, path)
			if err != nil {
				return err
			}
			if v != nil {
				a.record(*v)
			}
			return nil
		})
	}

	// Synchronous barrier: no outcome until every worker has finished.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	a.mu.Lock()
	verdicts := a.verdicts
	flagged := a.flagged
	a.mu.Unlock()

	sort.Slice(verdicts, func(i, j int) bool { return verdicts[i].Path < verdicts[j].Path })

	return &Outcome{
		Verdicts:        verdicts,
		Checked:         len(files),
		NeedsFormatting: flagged,
		StartTime:       start,
		EndTime:         time.Now(),
	}, nil
}

// record appends a verdict, flips the aggregate flag and emits the streaming
// report inside one critical section.
func (a *Aggregator) record(v Verdict) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.verdicts = append(a.verdicts, v)
	a.flagged = true
	if a.OnVerdict != nil {
		a.OnVerdict(v)
	}
}
