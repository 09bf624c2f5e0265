package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/andyballingall/fmtgate/internal/checker"
	"github.com/andyballingall/fmtgate/internal/config"
	"github.com/andyballingall/fmtgate/internal/discover"
	"github.com/andyballingall/fmtgate/internal/formatter"
	"github.com/andyballingall/fmtgate/internal/report"
)

// checkOptions carries the per-run settings that do not come from the
// config file.
type checkOptions struct {
	Inputs    []string
	NoIgnore  bool
	UseColour bool
}

// FormattingNeededError is returned when at least one checked file does not
// conform. It maps to exit code 2 rather than an "Error:" line; the verdicts
// themselves have already been reported.
type FormattingNeededError struct {
	Count int
}

func (e *FormattingNeededError) Error() string {
	return fmt.Sprintf("%d file(s) need formatting", e.Count)
}

// runCheck discovers files under every input, fans the conformance check out
// over them and reports the outcome.
func runCheck(ctx context.Context, logger *slog.Logger, cfg *config.Config,
	opts checkOptions, stdout, stderr io.Writer,
) error {
	var files []string
	for _, input := range opts.Inputs {
		found, err := discover.Files(input, discover.Options{
			Extensions: cfg.Extensions,
			NoIgnore:   opts.NoIgnore,
		})
		if err != nil {
			return err
		}
		files = append(files, found...)
	}
	logger.Debug("discovered source files", "inputs", len(opts.Inputs), "files", len(files))

	chk := checker.NewChecker(cfg.Formatter, formatter.NewExecRunner(stderr))
	agg := checker.NewAggregator(chk, cfg.Workers)

	var reporter report.Reporter
	if cfg.Output == config.OutputJSON {
		reporter = &report.JSONReporter{}
	} else {
		tr := &report.TextReporter{UseColour: opts.UseColour}
		// Stream verdict lines as workers find them. The aggregator invokes
		// this under its lock, so lines never interleave.
		agg.OnVerdict = func(v checker.Verdict) {
			fmt.Fprintln(stdout, tr.Line(v))
		}
		reporter = tr
	}

	outcome, err := agg.Run(ctx, files)
	if err != nil {
		return err
	}
	logger.Debug("check complete",
		"checked", outcome.Checked,
		"verdicts", len(outcome.Verdicts),
		"duration", outcome.EndTime.Sub(outcome.StartTime))

	if err := reporter.Write(stdout, outcome); err != nil {
		return err
	}

	if outcome.NeedsFormatting {
		return &FormattingNeededError{Count: len(outcome.Verdicts)}
	}
	return nil
}
