package solver

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/nonolath/cache"
	"github.com/katalvlaran/nonolath/grid"
)

// Status is the terminal outcome of a Solve call.
type Status int

const (
	// Solved indicates every cell settled to exactly one color.
	Solved Status = iota
	// Ambiguous indicates quiescence was reached with at least one cell
	// still admitting more than one color.
	Ambiguous
	// Contradiction indicates some line admits no legal placement; the
	// puzzle as given has no solution.
	Contradiction
	// Cancelled indicates the host's Continuation, or ctx, ended the solve
	// before quiescence.
	Cancelled
)

// String renders Status for logs and CLI output.
func (s Status) String() string {
	switch s {
	case Solved:
		return "solved"
	case Ambiguous:
		return "ambiguous"
	case Contradiction:
		return "contradiction"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Counters tallies the work a Solve call performed, for CLI reporting and
// benchmarking.
type Counters struct {
	Skims          int
	Scrubs         int
	CacheHits      int
	CacheMisses    int
	Contradictions int
}

// Decision is the host's answer at a yield point.
type Decision int

const (
	// Resume continues the solve.
	Resume Decision = iota
	// Cancel ends the solve immediately, returning Status Cancelled.
	Cancel
)

// Token is handed to Continuation at every yield point: an opaque
// identifier plus a read-only Snapshot of solver state at that instant.
type Token struct {
	ID       uuid.UUID
	Snapshot grid.Snapshot
	Counters Counters
}

// Continuation is the host's cooperative-cancellation hook (spec §5,
// §7). It is called once after every individual skim or scrub line
// operation; a single line operation is never interrupted mid-flight.
type Continuation func(Token) Decision

// ProgressSink receives coarse progress reports during a solve. Defined
// locally (rather than importing package progress) so solver has no
// dependency on the rendering/CLI layer; progress.SpinnerSink and
// progress.NullSink satisfy this interface structurally.
type ProgressSink interface {
	Report(phase string, done, total int)
}

// Options configures a Solve call.
type Options struct {
	// Cache, when non-nil, is shared across the call (and, for the
	// disambiguator, across many calls) instead of a fresh per-call
	// cache. Sharing is what makes repeated perturbed solves cheap.
	Cache *cache.Cache

	// Continuation, when non-nil, is invoked after every skim/scrub line
	// operation as a cancellation/inspection point.
	Continuation Continuation

	// Progress, when non-nil, receives coarse phase/done/total reports.
	Progress ProgressSink
}
