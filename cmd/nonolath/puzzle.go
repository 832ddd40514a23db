package main

import (
	"fmt"

	"github.com/katalvlaran/nonolath/formats"
	"github.com/katalvlaran/nonolath/grid"
	"github.com/katalvlaran/nonolath/palette"
	"github.com/katalvlaran/nonolath/solver"
)

// loadPuzzleFile opens inputPath, resolves its loader by flag or
// extension, and loads it. An open failure is an I/O error; every Load
// failure is a usage error, a malformed body and a read error inside
// the loader alike, since Load does not tell the two apart.
func loadPuzzleFile(inputPath string, pal palette.Palette) (formats.Puzzle, error) {
	in, err := openInput(inputPath)
	if err != nil {
		return formats.Puzzle{}, ioError(err)
	}
	defer in.Close()

	loader, err := newLoader(formatName(inputFormatFlag, inputPath), pal)
	if err != nil {
		return formats.Puzzle{}, usageError(err)
	}

	p, err := loader.Load(in)
	if err != nil {
		return formats.Puzzle{}, usageError(err)
	}

	return p, nil
}

// errStatus renders a non-Solved solver.Status as an error for exit
// code 2 reporting.
func errStatus(status solver.Status) error {
	return fmt.Errorf("nonolath: %s", status.String())
}

// buildPuzzle turns a loaded formats.Puzzle into a solvable grid.Puzzle,
// deriving clues from p.Grid when the loader only produced a solution
// grid (chargrid).
func buildPuzzle(p formats.Puzzle, trianogram bool) (*grid.Puzzle, error) {
	rowClues, colClues, ok := formats.CluesOrDerive(p)
	if !ok {
		return nil, fmt.Errorf("nonolath: input has neither clues nor a grid")
	}

	width, height := len(colClues), len(rowClues)
	if p.Grid != nil {
		width, height = p.Grid.Width, p.Grid.Height
	}

	return grid.NewPuzzle(width, height, p.Palette, rowClues, colClues, trianogram)
}
