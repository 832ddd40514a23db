// File: skim.go
// Role: left push, right push, overlap (spec §4.3).
//
// A capped clue boundary occupies its cap cell exactly like an ordinary
// cell of the clue's color for placement purposes; the only effect a cap
// has on skim/scrub is relaxing the separator requirement between two
// same-color clues (grid.Clue.LeftCap / RightCap, see
// grid/validate.go:needsSeparator). This keeps skim and scrub branch-free
// on trianogram mode, per SPEC_FULL.md's trianogram section.
package skim

import "github.com/katalvlaran/nonolath/palette"

// Status reports the outcome of a skim pass.
type Status int

const (
	// Refined indicates the line was narrowed (possibly to no change) without contradiction.
	Refined Status = iota
	// Contradiction indicates no legal placement of the clue list exists
	// under the given possibility vector.
	Contradiction
)

// clueLike is the minimal shape skim needs from a clue: a struct with
// grid.Clue's fields, which callers convert grid.Clue values into, so
// skim has no import-time dependency on package grid.
type clueLike struct {
	Color    palette.Color
	Length   int
	LeftCap  bool
	RightCap bool
}

// Clue mirrors grid.Clue's fields; callers (package solver) convert.
type Clue = clueLike

// Run executes skim over a line of clues against vector, which must have
// length L. It returns a freshly allocated, narrowed vector (never
// mutating vector) and Refined, or (nil, Contradiction) if no legal
// placement exists.
func Run(clues []Clue, vector []palette.Set) ([]palette.Set, Status) {
	l := len(vector)
	n := len(clues)

	leftStarts, ok := pushLeft(clues, vector, l)
	if !ok {
		return nil, Contradiction
	}
	rightStarts, ok := pushRight(clues, vector, l)
	if !ok {
		return nil, Contradiction
	}

	out := make([]palette.Set, l)
	copy(out, vector)

	reachable := make([]bool, l)
	for i := 0; i < n; i++ {
		// The full freedom interval for clue i is every position covered by
		// SOME placement with start in [leftStarts[i], rightStarts[i]], not
		// just the two extreme placements — a middle start can reach cells
		// neither extreme does whenever the slack exceeds the clue length.
		markRange(reachable, leftStarts[i], rightStarts[i]+clues[i].Length-leftStarts[i])

		lo, hi := overlapRange(leftStarts[i], rightStarts[i], clues[i].Length)
		for p := lo; p < hi; p++ {
			out[p] = palette.Single(clues[i].Color)
		}
	}

	for p := 0; p < l; p++ {
		if !reachable[p] {
			out[p] = out[p].Intersect(palette.Single(palette.Background))
		}
	}

	for p := 0; p < l; p++ {
		if out[p].IsEmpty() {
			return nil, Contradiction
		}
	}

	return out, Refined
}

// pushLeft places every clue as far left as legality (per vector) allows,
// returning the start position of each clue.
func pushLeft(clues []Clue, vector []palette.Set, l int) ([]int, bool) {
	starts := make([]int, len(clues))
	minStart := 0
	for i, c := range clues {
		start := minStart
		for {
			if start+c.Length > l {
				return nil, false
			}
			if runAllows(vector, start, c.Length, c.Color) {
				break
			}
			start++
		}
		starts[i] = start
		minStart = start + c.Length
		if i+1 < len(clues) && needsSeparator(c, clues[i+1]) {
			minStart++
		}
	}

	return starts, true
}

// pushRight is pushLeft's mirror image: clues are placed as far right as
// legality allows, scanning the clue list back to front.
func pushRight(clues []Clue, vector []palette.Set, l int) ([]int, bool) {
	starts := make([]int, len(clues))
	maxEnd := l
	for i := len(clues) - 1; i >= 0; i-- {
		c := clues[i]
		end := maxEnd
		for {
			start := end - c.Length
			if start < 0 {
				return nil, false
			}
			if runAllows(vector, start, c.Length, c.Color) {
				starts[i] = start
				break
			}
			end--
		}
		maxEnd = starts[i]
		if i-1 >= 0 && needsSeparator(clues[i-1], c) {
			maxEnd--
		}
	}

	return starts, true
}

// runAllows reports whether every cell in [start, start+length) still
// admits color.
func runAllows(vector []palette.Set, start, length int, color palette.Color) bool {
	for p := start; p < start+length; p++ {
		if !vector[p].Contains(color) {
			return false
		}
	}

	return true
}

// markRange flags positions [start, start+length) as reachable by some
// placement of a clue.
func markRange(reachable []bool, start, length int) {
	for p := start; p < start+length; p++ {
		reachable[p] = true
	}
}

// overlapRange returns the cells common to a clue's left-pushed and
// right-pushed placements, which must be that clue's color in every
// legal solution.
func overlapRange(leftStart, rightStart, length int) (lo, hi int) {
	lo = rightStart
	if leftStart > lo {
		lo = leftStart
	}
	hi = leftStart + length
	if rightStart+length < hi {
		hi = rightStart + length
	}
	if hi < lo {
		hi = lo
	}

	return lo, hi
}

// needsSeparator reports whether a mandatory background cell must sit
// between clue a (left) and clue b (right) — duplicated in miniature from
// grid.validate's rule so this package stays free of a grid import; the
// rule itself is spec §4.3 ("a separator is required unless at least one
// facing side is capped").
func needsSeparator(a, b Clue) bool {
	if a.Color != b.Color {
		return false
	}

	return !(a.RightCap || b.LeftCap)
}
