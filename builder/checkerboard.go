// checkerboard.go — a trianogram fixture that cannot be expressed
// without caps.
//
// Each row is two equal-length same-color clues meeting at the row's
// midpoint, right-capped then left-capped, generalizing spec §8
// scenario 6 ("two capped runs meeting in the middle, no separator
// required") to an n x n grid. Without the caps, minimumSpan would
// require a mandatory separator between the two same-color halves and
// push the required span to n+1, one more than the line has room for
// — so this fixture is only constructible at all because of the cap
// rule it exists to exercise. Rows alternate between two foreground
// colors so columns carry an uncapped, plain alternating-color clue
// list, keeping the cap-dependent logic isolated to rows.
package builder

import (
	"fmt"

	"github.com/katalvlaran/nonolath/grid"
	"github.com/katalvlaran/nonolath/palette"
)

const methodCheckerboardCaps = "CheckerboardCaps"

// CheckerboardCaps returns an n x n trianogram puzzle, n even and >= 2,
// whose rows alternate between two foreground colors and whose row
// clues are only valid because of cap-relaxed separators.
func CheckerboardCaps(n int) (*grid.Puzzle, error) {
	if n < 2 || n%2 != 0 {
		return nil, fmt.Errorf("%s: n=%d must be even and >= 2: %w", methodCheckerboardCaps, n, ErrBadSize)
	}

	pal, err := palette.NewPalette([]palette.ColorInfo{
		{Glyph: '.'},
		{Glyph: 'A'},
		{Glyph: 'B'},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCheckerboardCaps, err)
	}
	colorA, colorB := palette.Color(1), palette.Color(2)

	half := n / 2
	rowClues := make([]grid.LineClues, n)
	for r := 0; r < n; r++ {
		color := colorA
		if r%2 == 1 {
			color = colorB
		}
		rowClues[r] = grid.LineClues{
			{Color: color, Length: half, RightCap: true},
			{Color: color, Length: half, LeftCap: true},
		}
	}

	colClues := make([]grid.LineClues, n)
	for c := 0; c < n; c++ {
		cl := make(grid.LineClues, n)
		for r := 0; r < n; r++ {
			color := colorA
			if r%2 == 1 {
				color = colorB
			}
			cl[r] = grid.Clue{Color: color, Length: 1}
		}
		colClues[c] = cl
	}

	return grid.NewPuzzle(n, n, pal, rowClues, colClues, true)
}

// CheckerboardCapsGround builds the unique solved grid for
// CheckerboardCaps(n) directly, cap markers included, rather than
// obtaining it by solving. Each row's midpoint pair of cells — the
// last cell of the left half and the first cell of the right half —
// is tagged with a Cap whose foreground triangle sits on the side away
// from the other half, so the two background halves face each other at
// the junction and grid.DeriveClues can recover the two-clue,
// cap-relaxed decomposition instead of coalescing the row into one
// plain clue.
func CheckerboardCapsGround(n int) (*grid.Grid, palette.Palette, error) {
	if n < 2 || n%2 != 0 {
		return nil, nil, fmt.Errorf("%s: n=%d must be even and >= 2: %w", methodCheckerboardCaps, n, ErrBadSize)
	}

	pal, err := palette.NewPalette([]palette.ColorInfo{
		{Glyph: '.'},
		{Glyph: 'A'},
		{Glyph: 'B'},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodCheckerboardCaps, err)
	}
	colorA, colorB := palette.Color(1), palette.Color(2)
	half := n / 2

	g := grid.NewGrid(n, n, palette.Single(palette.Background))
	for r := 0; r < n; r++ {
		color := colorA
		if r%2 == 1 {
			color = colorB
		}
		for c := 0; c < n; c++ {
			g.Set(r, c, grid.Cell{Possible: palette.Single(color)})
		}

		left, err := palette.NewCap(palette.CapTL, color, palette.Background, pal)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", methodCheckerboardCaps, err)
		}
		right, err := palette.NewCap(palette.CapTR, color, palette.Background, pal)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", methodCheckerboardCaps, err)
		}
		g.Set(r, half-1, grid.Cell{Possible: palette.Single(color), Cap: left})
		g.Set(r, half, grid.Cell{Possible: palette.Single(color), Cap: right})
	}

	return g, pal, nil
}
