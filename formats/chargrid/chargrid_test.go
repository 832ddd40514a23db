package chargrid_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/nonolath/formats"
	"github.com/katalvlaran/nonolath/formats/chargrid"
	"github.com/katalvlaran/nonolath/palette"
)

func testPalette(t *testing.T) palette.Palette {
	t.Helper()
	pal, err := palette.NewPalette([]palette.ColorInfo{{Glyph: '.'}, {Glyph: '#'}})
	if err != nil {
		t.Fatalf("NewPalette: %v", err)
	}

	return pal
}

func TestLoader_RoundTripsThroughEmitter(t *testing.T) {
	pal := testPalette(t)
	input := "#.#\n.#.\n#.#\n"

	l := chargrid.NewLoader(pal)
	p, err := l.Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Grid.Width != 3 || p.Grid.Height != 3 {
		t.Fatalf("dims = %dx%d; want 3x3", p.Grid.Width, p.Grid.Height)
	}

	var out strings.Builder
	e := chargrid.NewEmitter()
	if err := e.Emit(&out, p); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if out.String() != input {
		t.Errorf("round trip = %q; want %q", out.String(), input)
	}
}

func TestLoader_RejectsRaggedRows(t *testing.T) {
	pal := testPalette(t)
	l := chargrid.NewLoader(pal)
	_, err := l.Load(strings.NewReader("##\n#\n"))
	if err != chargrid.ErrRaggedGrid {
		t.Errorf("err = %v; want ErrRaggedGrid", err)
	}
}

func TestLoader_RejectsUnknownGlyph(t *testing.T) {
	pal := testPalette(t)
	l := chargrid.NewLoader(pal)
	_, err := l.Load(strings.NewReader("#@\n"))
	if err == nil {
		t.Fatal("expected an error for an unknown glyph")
	}
}

func TestEmitter_RejectsMissingGrid(t *testing.T) {
	e := chargrid.NewEmitter()
	var out strings.Builder
	err := e.Emit(&out, formats.Puzzle{})
	if err != chargrid.ErrGridRequired {
		t.Errorf("err = %v; want ErrGridRequired", err)
	}
}
