// Package formats declares the loader/emitter collaborator contracts
// spec §6 names, plus the two concrete format packages (chargrid,
// webpbn) that implement them. The core package never imports
// formats; formats imports grid/palette, keeping the dependency
// direction collaborator -> core, never the reverse.
package formats

import (
	"io"

	"github.com/katalvlaran/nonolath/grid"
	"github.com/katalvlaran/nonolath/palette"
)

// Puzzle is the shape a loader produces and an emitter consumes. A
// source that encodes actual cell colors (char-grid) fills Grid; a
// source that encodes clues directly (webpbn) fills RowClues/ColClues
// instead. Both may be present; neither is required to be non-nil on
// its own, per spec §6's "(palette, grid) or (palette, row_clues,
// column_clues)" contract.
type Puzzle struct {
	Palette  palette.Palette
	Grid     *grid.Grid
	RowClues []grid.LineClues
	ColClues []grid.LineClues
}

// Loader reads a Puzzle from an external representation.
type Loader interface {
	Load(r io.Reader) (Puzzle, error)
}

// Emitter serializes a Puzzle to an external representation.
type Emitter interface {
	Emit(w io.Writer, p Puzzle) error
}

// CluesOrDerive returns p's clue lists, deriving them from p.Grid via
// grid.DeriveClues when the source didn't supply clues directly — the
// bridge an emitter needs when handed a char-grid-shaped Puzzle.
func CluesOrDerive(p Puzzle) (rowClues, colClues []grid.LineClues, ok bool) {
	if p.RowClues != nil || p.ColClues != nil {
		return p.RowClues, p.ColClues, true
	}
	if p.Grid == nil {
		return nil, nil, false
	}

	rowClues, colClues = grid.DeriveClues(p.Grid, p.Palette)

	return rowClues, colClues, true
}
