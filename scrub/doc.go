// Package scrub implements the per-cell, per-color placement-consistency
// technique (spec §4.4): strictly more powerful than package skim, and
// strictly more expensive, so the grid solver driver only reaches for it
// once skim can no longer narrow a line.
//
// The recursive placement search (clue index, start position) prunes the
// same way spec §4.4 describes — insufficient remaining room, a run cell
// that has lost the clue's color, a gap cell that has lost background —
// and walks candidate start positions in increasing order, the same
// deterministic, bound-then-branch discipline the teacher's tsp package
// uses for BranchAndBound (see SPEC_FULL.md).
package scrub
