// Package report renders the outcome of a format-conformance run.
package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/andyballingall/fmtgate/internal/checker"
)

// Reporter renders one run outcome to a writer.
type Reporter interface {
	Write(w io.Writer, o *checker.Outcome) error
}

// JSONReporter implements Reporter for JSON output.
type JSONReporter struct{}

type jsonVerdict struct {
	Path    string `json:"path"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type jsonOutput struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  string `json:"duration"`
	Stats     struct {
		Checked         int `json:"checked"`
		NeedsFormatting int `json:"needsFormatting"`
	} `json:"stats"`
	Verdicts []jsonVerdict `json:"verdicts"`
}

func (jr *JSONReporter) Write(w io.Writer, o *checker.Outcome) error {
	out := jsonOutput{
		StartTime: o.StartTime.Format(time.RFC3339),
		EndTime:   o.EndTime.Format(time.RFC3339),
		Duration:  o.EndTime.Sub(o.StartTime).String(),
		Verdicts:  make([]jsonVerdict, 0, len(o.Verdicts)),
	}
	out.Stats.Checked = o.Checked
	out.Stats.NeedsFormatting = len(o.Verdicts)

	for _, v := range o.Verdicts {
		out.Verdicts = append(out.Verdicts, jsonVerdict{
			Path:    v.Path,
			Kind:    string(v.Kind),
			Message: v.Message,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
