// Package grid defines the nonogram data model: Cell, Grid, Clue,
// LineClues and Puzzle, plus the construction-time validation that keeps
// MalformedPuzzle a constructor-time error rather than a mid-solve
// surprise.
//
// Lifecycle (matches SPEC_FULL.md "grid"):
//   - A Puzzle is built once, by a loader (see package formats) or a test
//     fixture (see package builder), and validated by NewPuzzle.
//   - A solver (see package solver) creates a mutable working Grid
//     initialized to "all colors possible" and narrows it in place.
//   - Snapshot gives a host a read-only, non-aliasing view of that working
//     Grid after each yield point (spec §5).
package grid
