// canvas.go — solid and striped canvas fixtures.
//
// Adapted from the teacher's impl_grid.go: row-major deterministic cell
// emission, an fmt.Errorf-wrapped sentinel on bad dimensions, and the
// "method name" prefix on every error the teacher's MethodGrid constant
// supplied.
package builder

import (
	"fmt"

	"github.com/katalvlaran/nonolath/grid"
	"github.com/katalvlaran/nonolath/palette"
)

const methodGrid = "Grid"
const methodStripes = "Stripes"

// Grid returns a width x height canvas fully solved to fill.
func Grid(width, height int, fill palette.Color) (*grid.Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%s: width=%d height=%d: %w", methodGrid, width, height, ErrBadSize)
	}

	g := grid.NewGrid(width, height, palette.Single(fill))
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			g.Set(r, c, grid.Cell{Possible: palette.Single(fill)})
		}
	}

	return g, nil
}

// Stripes returns a width x height canvas whose rows cycle through
// colors in order: row r is solved entirely to colors[r%len(colors)].
func Stripes(width, height int, colors []palette.Color) (*grid.Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%s: width=%d height=%d: %w", methodStripes, width, height, ErrBadSize)
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("%s: %w", methodStripes, ErrNoColors)
	}

	g := grid.NewGrid(width, height, palette.Single(colors[0]))
	for r := 0; r < height; r++ {
		color := colors[r%len(colors)]
		for c := 0; c < width; c++ {
			g.Set(r, c, grid.Cell{Possible: palette.Single(color)})
		}
	}

	return g, nil
}
