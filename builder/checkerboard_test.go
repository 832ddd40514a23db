package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/nonolath/builder"
	"github.com/katalvlaran/nonolath/grid"
)

func TestCheckerboardCaps_BuildsValidTrianogramPuzzle(t *testing.T) {
	p, err := builder.CheckerboardCaps(4)
	if err != nil {
		t.Fatalf("CheckerboardCaps: %v", err)
	}
	if !p.Trianogram {
		t.Errorf("Trianogram = false; want true")
	}
	if p.Width != 4 || p.Height != 4 {
		t.Fatalf("dims = %dx%d; want 4x4", p.Width, p.Height)
	}

	for r := 0; r < p.Height; r++ {
		cl := p.RowClues[r]
		if len(cl) != 2 {
			t.Fatalf("row %d has %d clues; want 2", r, len(cl))
		}
		if !cl[0].RightCap || !cl[1].LeftCap {
			t.Errorf("row %d clues not capped as expected: %+v", r, cl)
		}
		if cl[0].Color != cl[1].Color {
			t.Errorf("row %d clue colors differ: %+v", r, cl)
		}
	}
}

func TestCheckerboardCaps_RejectsOddOrSmallN(t *testing.T) {
	for _, n := range []int{0, 1, 3, -2} {
		if _, err := builder.CheckerboardCaps(n); !errors.Is(err, builder.ErrBadSize) {
			t.Errorf("n=%d: err = %v; want ErrBadSize", n, err)
		}
	}
}

// TestCheckerboardCapsGround_DeriveClues locks in that a solved
// CheckerboardCaps grid, complete with Cap markers at each row's
// midpoint, re-derives the same capped two-clue row decomposition the
// puzzle was built from, rather than coalescing each row into one
// plain uncapped clue.
func TestCheckerboardCapsGround_DeriveClues(t *testing.T) {
	g, pal, err := builder.CheckerboardCapsGround(4)
	if err != nil {
		t.Fatalf("CheckerboardCapsGround: %v", err)
	}

	rowClues, _ := grid.DeriveClues(g, pal)
	for r := 0; r < g.Height; r++ {
		cl := rowClues[r]
		if len(cl) != 2 {
			t.Fatalf("row %d derived %d clues; want 2 (one per capped half): %+v", r, len(cl), cl)
		}
		if !cl[0].RightCap || !cl[1].LeftCap {
			t.Errorf("row %d clues not capped as expected: %+v", r, cl)
		}
		if cl[0].Color != cl[1].Color || cl[0].Length != 2 || cl[1].Length != 2 {
			t.Errorf("row %d = %+v; want two length-2 clues of the same color", r, cl)
		}
	}
}

func TestCheckerboardCapsGround_RejectsOddOrSmallN(t *testing.T) {
	for _, n := range []int{0, 1, 3, -2} {
		if _, _, err := builder.CheckerboardCapsGround(n); !errors.Is(err, builder.ErrBadSize) {
			t.Errorf("n=%d: err = %v; want ErrBadSize", n, err)
		}
	}
}
