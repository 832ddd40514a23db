package line

import (
	"sort"

	"github.com/katalvlaran/nonolath/grid"
	"github.com/katalvlaran/nonolath/palette"
)

// View addresses one row or column of a grid.Grid uniformly.
type View struct {
	g      *grid.Grid
	o      grid.Orientation
	index  int
	staged map[int]palette.Set
}

// New returns a View over line (o, index) of g.
func New(g *grid.Grid, o grid.Orientation, index int) *View {
	return &View{g: g, o: o, index: index, staged: make(map[int]palette.Set)}
}

// Orientation returns the line's orientation.
func (v *View) Orientation() grid.Orientation { return v.o }

// Index returns the line's index within its orientation.
func (v *View) Index() int { return v.index }

// Len returns the number of positions in the line.
func (v *View) Len() int {
	if v.o == grid.Row {
		return v.g.Width
	}

	return v.g.Height
}

// coord translates a line-local position into (row, col) on the grid.
func (v *View) coord(pos int) (row, col int) {
	if v.o == grid.Row {
		return v.index, pos
	}

	return pos, v.index
}

// Cell returns the grid.Cell at position pos, including any staged loss
// not yet flushed.
func (v *View) Cell(pos int) grid.Cell {
	row, col := v.coord(pos)
	cell := v.g.At(row, col)
	if staged, ok := v.staged[pos]; ok {
		cell.Possible = staged
	}

	return cell
}

// Possible returns the possibility Set at pos, reflecting any staged loss.
func (v *View) Possible(pos int) palette.Set { return v.Cell(pos).Possible }

// Read returns a fresh copy of the whole line's possibility vector,
// reflecting any staged losses.
func (v *View) Read() []palette.Set {
	out := make([]palette.Set, v.Len())
	for i := range out {
		out[i] = v.Possible(i)
	}

	return out
}

// Lose records that color is no longer possible at pos. The change is not
// visible to Cell/Possible/Read of *other* Views until Flush is called;
// within the same View it is visible immediately so a single skim/scrub
// pass can reason about its own cumulative effect.
func (v *View) Lose(pos int, color palette.Color) {
	current, ok := v.staged[pos]
	if !ok {
		row, col := v.coord(pos)
		current = v.g.At(row, col).Possible
	}
	v.staged[pos] = current.Remove(color)
}

// Replace stages a full replacement of the possibility Set at pos. Used
// when an engine computes a refined vector directly (e.g. from the cache)
// rather than removing colors one at a time.
func (v *View) Replace(pos int, set palette.Set) {
	v.staged[pos] = set
}

// Flush applies every staged change to the underlying Grid and returns the
// sorted list of positions that actually changed (spec §4.2: "the Grid
// Solver translates a flush into dirty-flags on the orthogonal lines
// crossing every changed position").
func (v *View) Flush() []int {
	if len(v.staged) == 0 {
		return nil
	}

	changed := make([]int, 0, len(v.staged))
	for pos, newSet := range v.staged {
		row, col := v.coord(pos)
		cell := v.g.At(row, col)
		if cell.Possible != newSet {
			cell.Possible = newSet
			v.g.Set(row, col, cell)
			changed = append(changed, pos)
		}
	}
	v.staged = make(map[int]palette.Set)
	sort.Ints(changed)

	return changed
}
