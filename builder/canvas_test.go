package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/nonolath/builder"
	"github.com/katalvlaran/nonolath/palette"
)

func TestGrid_FillsEveryCellWithColor(t *testing.T) {
	g, err := builder.Grid(3, 2, palette.Color(1))
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	if g.Width != 3 || g.Height != 2 {
		t.Fatalf("dims = %dx%d; want 3x2", g.Width, g.Height)
	}
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			color, ok := g.At(r, c).Possible.AsColor()
			if !ok || color != 1 {
				t.Errorf("cell (%d,%d) = %v; want solved color 1", r, c, g.At(r, c).Possible)
			}
		}
	}
}

func TestGrid_RejectsNonPositiveDimensions(t *testing.T) {
	if _, err := builder.Grid(0, 1, palette.Color(1)); !errors.Is(err, builder.ErrBadSize) {
		t.Errorf("err = %v; want ErrBadSize", err)
	}
}

func TestStripes_CyclesColorsPerRow(t *testing.T) {
	colors := []palette.Color{1, 2}
	g, err := builder.Stripes(2, 4, colors)
	if err != nil {
		t.Fatalf("Stripes: %v", err)
	}
	for r := 0; r < 4; r++ {
		want := colors[r%2]
		for c := 0; c < 2; c++ {
			got, _ := g.At(r, c).Possible.AsColor()
			if got != want {
				t.Errorf("row %d col %d = %d; want %d", r, c, got, want)
			}
		}
	}
}

func TestStripes_RejectsEmptyColorList(t *testing.T) {
	if _, err := builder.Stripes(2, 2, nil); !errors.Is(err, builder.ErrNoColors) {
		t.Errorf("err = %v; want ErrNoColors", err)
	}
}
