// File: derive.go
// Role: DeriveClues(grid, palette) — the inverse of §4.3's interpretation:
// walk each line of a fully-solved Grid, coalesce runs of equal
// non-background color into Clues, and emit cap flags for trianogram
// half-cells at run boundaries.
package grid

import "github.com/katalvlaran/nonolath/palette"

// DeriveClues walks g and returns the row and column clue lists a solver
// would need to reproduce g, exactly as library operation §6 names.
// g must be fully solved; unsolved cells are treated as background for
// the purposes of derivation (callers needing strict solved-only
// derivation should check Grid solvedness themselves).
func DeriveClues(g *Grid, pal palette.Palette) (rowClues, colClues []LineClues) {
	rowClues = make([]LineClues, g.Height)
	for r := 0; r < g.Height; r++ {
		rowClues[r] = deriveLine(lineColors(g, Row, r))
	}

	colClues = make([]LineClues, g.Width)
	for c := 0; c < g.Width; c++ {
		colClues[c] = deriveLine(lineColors(g, Column, c))
	}

	return rowClues, colClues
}

// DeriveLineClues recomputes the clue list for a single line of g,
// without touching any other line — the disambiguator uses this to
// re-derive only the one row and one column a candidate edit perturbs,
// leaving every other line's clues (and therefore cache key) untouched.
func DeriveLineClues(g *Grid, o Orientation, index int) LineClues {
	return deriveLine(lineColors(g, o, index))
}

// lineColors extracts the resolved colors (and cap info) along one line,
// in position order, treating unsolved cells as background.
func lineColors(g *Grid, o Orientation, index int) []Cell {
	n := g.LineLengthFor(o)
	out := make([]Cell, n)
	for i := 0; i < n; i++ {
		if o == Row {
			out[i] = g.At(index, i)
		} else {
			out[i] = g.At(i, index)
		}
	}

	return out
}

// LineLengthFor returns the length of a line in the given orientation for
// this Grid (Width for rows, Height for columns).
func (g *Grid) LineLengthFor(o Orientation) int {
	if o == Row {
		return g.Width
	}

	return g.Height
}

// deriveLine coalesces a slice of cells into LineClues. A maximal run of
// equal non-background color is emitted as a single clue, except where
// two consecutive cells within the run are both capped: that pair marks
// a cap-relaxed clue boundary with no separator, exactly the junction
// builder.CheckerboardCaps constructs, and the run is split there into
// two clues, RightCap on the left piece and LeftCap on the right piece.
func deriveLine(cells []Cell) LineClues {
	var out LineClues
	i := 0
	for i < len(cells) {
		color, ok := cells[i].Possible.AsColor()
		if !ok || color == palette.Background {
			i++
			continue
		}
		j := i
		for j < len(cells) {
			c, ok := cells[j].Possible.AsColor()
			if !ok || c != color {
				break
			}
			j++
		}

		start := i
		for k := i; k < j-1; k++ {
			if cells[k].Cap.Orientation == palette.NoCap || cells[k+1].Cap.Orientation == palette.NoCap {
				continue
			}
			out = append(out, Clue{Color: color, Length: k + 1 - start, LeftCap: start > i, RightCap: true})
			start = k + 1
		}
		out = append(out, Clue{Color: color, Length: j - start, LeftCap: start > i})
		i = j
	}

	return out
}
