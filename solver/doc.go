// Package solver implements the grid solver driver (spec §4.5): a FIFO
// worklist of dirty lines, skim dispatched before scrub, dirty
// propagation to orthogonal lines, and termination on quiescence or
// contradiction.
//
// Concurrency (spec §5): Solve is single-threaded cooperative. Between
// line operations it offers an explicit yield point via Options.Continuation —
// a continuation the host may use to inspect a Snapshot and either
// resume or cancel. A single skim or scrub call always runs to
// completion; only the gaps between such calls are suspension points.
package solver
