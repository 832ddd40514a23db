// File: disambiguate.go
// Role: Disambiguate implements spec §4.7 steps 1-4: derive clues,
// baseline-solve to find the unsolved set U, trial every (cell,
// alternative color) perturbation against a shared cache, and rank the
// results.
package disambiguate

import (
	"context"
	"sort"

	"github.com/katalvlaran/nonolath/cache"
	"github.com/katalvlaran/nonolath/grid"
	"github.com/katalvlaran/nonolath/palette"
	"github.com/katalvlaran/nonolath/solver"
)

// Disambiguate finds, for every unsolved cell of the puzzle derived from
// ground, which alternative color would resolve the most other cells if
// given as additional information, and returns both the ranked edit list
// and an opacity-weighted overlay for rendering.
func Disambiguate(ctx context.Context, ground *grid.Grid, pal palette.Palette, opts Options) ([]Edit, OverlayMap, error) {
	if !fullySolved(ground) {
		return nil, nil, ErrNotFullySolved
	}

	c := opts.Cache
	if c == nil {
		c = cache.New(opts.MaxCacheEntries)
	}

	rowClues, colClues := grid.DeriveClues(ground, pal)
	basePuzzle, err := grid.NewPuzzle(ground.Width, ground.Height, pal, rowClues, colClues, opts.Trianogram)
	if err != nil {
		return nil, nil, err
	}

	solveOpts := solver.Options{Cache: c, Continuation: opts.Continuation, Progress: opts.Progress}

	baseSnap, _, baseStatus := solver.Solve(ctx, basePuzzle, solveOpts)
	if baseStatus == solver.Contradiction {
		return nil, nil, ErrContradiction
	}

	u := unsolvedCells(baseSnap)
	baseline := len(u)

	var edits []Edit
	for _, cell := range u {
		current, _ := ground.At(cell.Row, cell.Col).Possible.AsColor()
		for k := palette.Color(0); int(k) < pal.Len(); k++ {
			if k == current {
				continue
			}
			if ctx.Err() != nil {
				return edits, nil, ctx.Err()
			}

			resolved := trial(ctx, ground, pal, rowClues, colClues, cell, k, opts.Trianogram, solveOpts, baseline)
			edits = append(edits, Edit{Row: cell.Row, Col: cell.Col, Color: k, Resolved: resolved})
		}
	}

	sort.Slice(edits, func(i, j int) bool {
		a, b := edits[i], edits[j]
		if a.Resolved != b.Resolved {
			return a.Resolved > b.Resolved
		}
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		if a.Col != b.Col {
			return a.Col < b.Col
		}

		return a.Color < b.Color
	})

	overlay, err := BuildOverlay(ground.Height, ground.Width, edits, pal)
	if err != nil {
		return nil, nil, err
	}

	return edits, overlay, nil
}

// trial perturbs ground at cell to color k, re-derives only the two
// affected lines, re-solves against the shared cache, and returns the
// number of cells the baseline solve left unsolved that the perturbed
// solve resolved.
func trial(
	ctx context.Context,
	ground *grid.Grid,
	pal palette.Palette,
	rowClues, colClues []grid.LineClues,
	cell Cell,
	k palette.Color,
	trianogram bool,
	solveOpts solver.Options,
	baseline int,
) int {
	perturbed := grid.NewSnapshot(ground).Grid()
	pc := perturbed.At(cell.Row, cell.Col)
	pc.Possible = palette.Single(k)
	perturbed.Set(cell.Row, cell.Col, pc)

	rowClues2 := append([]grid.LineClues(nil), rowClues...)
	rowClues2[cell.Row] = grid.DeriveLineClues(perturbed, grid.Row, cell.Row)
	colClues2 := append([]grid.LineClues(nil), colClues...)
	colClues2[cell.Col] = grid.DeriveLineClues(perturbed, grid.Column, cell.Col)

	puzzle, err := grid.NewPuzzle(perturbed.Width, perturbed.Height, pal, rowClues2, colClues2, trianogram)
	if err != nil {
		return 0
	}

	snap, _, status := solver.Solve(ctx, puzzle, solveOpts)
	if status == solver.Contradiction {
		return 0
	}

	remaining := len(unsolvedCells(snap))
	if baseline < remaining {
		return 0
	}

	return baseline - remaining
}

func fullySolved(g *grid.Grid) bool {
	for r := 0; r < g.Height; r++ {
		for col := 0; col < g.Width; col++ {
			if !g.At(r, col).Possible.IsSolved() {
				return false
			}
		}
	}

	return true
}

// unsolvedCells returns every non-singleton cell of snap, in row-major
// order for deterministic iteration.
func unsolvedCells(snap grid.Snapshot) []Cell {
	var out []Cell
	for r := 0; r < snap.Height(); r++ {
		for c := 0; c < snap.Width(); c++ {
			if !snap.At(r, c).Possible.IsSolved() {
				out = append(out, Cell{Row: r, Col: c})
			}
		}
	}

	return out
}
