package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/andyballingall/fmtgate/internal/checker"
)

// TextReporter implements Reporter for plain text output.
type TextReporter struct {
	UseColour bool
}

const (
	colReset     = "\033[0m"
	colRed       = "\033[31m"
	colGrey      = "\033[90m"
	colBoldRed   = "\033[1;31m"
	colBoldGreen = "\033[1;32m"
	colBoldWhite = "\033[1;37m"
)

// cs returns a string which will render with the given colour
// if colourisation is enabled.
func (tr *TextReporter) cs(c, s string) string {
	if !tr.UseColour {
		return s
	}
	return c + s + colReset
}

// Line renders one streaming verdict line. The aggregator emits these as
// verdicts arrive, under its lock; order between files may vary run to run.
func (tr *TextReporter) Line(v checker.Verdict) string {
	reason := v.Message
	if v.Kind == checker.KindToolFailed {
		reason = tr.cs(colRed, v.Message)
	}
	return fmt.Sprintf("%s %s", tr.cs(colRed, "✗"), reason)
}

// Write renders the end-of-run summary. Per-file lines have already been
// streamed, so only the aggregate lands here.
func (tr *TextReporter) Write(w io.Writer, o *checker.Outcome) error {
	divider := strings.Repeat("-", 40)

	fmt.Fprintf(w, "%s\n", divider)

	label := tr.cs(colBoldWhite, "Format check: ")
	stats := fmt.Sprintf("%d checked, %d need formatting", o.Checked, len(o.Verdicts))
	statsColour := colBoldGreen
	if o.NeedsFormatting {
		statsColour = colBoldRed
	}
	duration := tr.cs(colGrey, fmt.Sprintf(" (%s)", o.EndTime.Sub(o.StartTime)))

	fmt.Fprintf(w, "%s%s%s\n", label, tr.cs(statsColour, stats), duration)
	fmt.Fprintf(w, "%s\n", divider)

	return nil
}
