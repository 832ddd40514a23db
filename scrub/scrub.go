package scrub

import "github.com/katalvlaran/nonolath/palette"

// Status reports the outcome of a scrub pass.
type Status int

const (
	// Refined indicates the line was narrowed (possibly to no change) without contradiction.
	Refined Status = iota
	// Contradiction indicates no legal placement of the clue list exists
	// under the given possibility vector.
	Contradiction
)

// Clue mirrors grid.Clue's fields; package solver converts between them.
type Clue struct {
	Color    palette.Color
	Length   int
	LeftCap  bool
	RightCap bool
}

// Run exhaustively enumerates every legal placement of clues against a
// line of len(vector) positions and keeps, per position, the union of
// colors realized by at least one surviving placement. Any (position,
// color) pair never realized is dropped. Returns (nil, Contradiction) if
// no placement exists at all.
func Run(clues []Clue, vector []palette.Set) ([]palette.Set, Status) {
	l := len(vector)
	n := len(clues)

	suffixMin := make([]int, n+1)
	for i := n - 1; i >= 0; i-- {
		suffixMin[i] = suffixMin[i+1] + clues[i].Length
		if i+1 < n && needsSeparator(clues[i], clues[i+1]) {
			suffixMin[i]++
		}
	}

	assign := make([]palette.Color, l)
	marked := make([]palette.Set, l)
	found := false

	var recurse func(ci, at int)
	recurse = func(ci, at int) {
		if ci == n {
			for p := at; p < l; p++ {
				if !vector[p].Contains(palette.Background) {
					return
				}
			}
			for p := 0; p < l; p++ {
				var col palette.Color
				if p < at {
					col = assign[p]
				} else {
					col = palette.Background
				}
				marked[p] = marked[p].Union(palette.Single(col))
			}
			found = true

			return
		}

		c := clues[ci]
		for s := at; s+c.Length+suffixMin[ci+1] <= l; s++ {
			if s > at && !vector[s-1].Contains(palette.Background) {
				break
			}
			if !runAllows(vector, s, c.Length, c.Color) {
				continue
			}
			for p := at; p < s; p++ {
				assign[p] = palette.Background
			}
			for p := s; p < s+c.Length; p++ {
				assign[p] = c.Color
			}

			sepPos := s + c.Length
			needSep := ci+1 < n && needsSeparator(c, clues[ci+1])
			if !needSep {
				recurse(ci+1, sepPos)
				continue
			}
			if sepPos >= l || !vector[sepPos].Contains(palette.Background) {
				continue
			}
			assign[sepPos] = palette.Background
			recurse(ci+1, sepPos+1)
		}
	}
	recurse(0, 0)

	if !found {
		return nil, Contradiction
	}

	out := make([]palette.Set, l)
	for p := 0; p < l; p++ {
		out[p] = vector[p].Intersect(marked[p])
		if out[p].IsEmpty() {
			return nil, Contradiction
		}
	}

	return out, Refined
}

func runAllows(vector []palette.Set, start, length int, color palette.Color) bool {
	for p := start; p < start+length; p++ {
		if !vector[p].Contains(color) {
			return false
		}
	}

	return true
}

func needsSeparator(a, b Clue) bool {
	if a.Color != b.Color {
		return false
	}

	return !(a.RightCap || b.LeftCap)
}
