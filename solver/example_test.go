package solver_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/nonolath/grid"
	"github.com/katalvlaran/nonolath/palette"
	"github.com/katalvlaran/nonolath/solver"
)

// ExampleSolve solves a tiny two-color plus sign to completion.
func ExampleSolve() {
	pal, _ := palette.NewPalette([]palette.ColorInfo{
		{Glyph: '.'},
		{Glyph: '#'},
	})
	clue := grid.LineClues{{Color: 1, Length: 1}}
	cross := grid.LineClues{{Color: 1, Length: 3}}

	puzzle, _ := grid.NewPuzzle(3, 3, pal,
		[]grid.LineClues{clue, cross, clue},
		[]grid.LineClues{clue, cross, clue},
		false,
	)

	snap, _, status := solver.Solve(context.Background(), puzzle, solver.Options{})
	fmt.Println(status)

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			color, _ := snap.At(r, c).Possible.AsColor()
			if color == 0 {
				fmt.Print(".")
			} else {
				fmt.Print("#")
			}
		}
		fmt.Println()
	}
	// Output:
	// solved
	// .#.
	// ###
	// .#.
}
