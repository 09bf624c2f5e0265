package checker

// VerdictKind classifies why a file failed the conformance check.
type VerdictKind string

const (
	// KindMismatch means the formatter ran cleanly but its output differs
	// from the on-disk content.
	KindMismatch VerdictKind = "mismatch"

	// KindToolFailed means the formatter launched but exited nonzero, e.g.
	// on a syntax error. The file may or may not have a style diff; both
	// kinds fold into the same overall outcome.
	KindToolFailed VerdictKind = "tool-failed"
)

// Verdict is the outcome for one nonconforming file. A conforming file
// produces no Verdict at all.
type Verdict struct {
	Path    string
	Kind    VerdictKind
	Message string
}
