// impl_letters.go — Word builds raster words from the glyphs table.
//
// Adapted from the teacher's impl_letters.go: glyph geometry stays
// data-only in letters_spec.go, building logic stays here, and
// unrecognized glyphs fail with a sentinel rather than silently
// skipping (ErrUnknownLetter -> ErrUnknownGlyph).
package builder

import (
	"fmt"
	"unicode"

	"github.com/katalvlaran/nonolath/grid"
	"github.com/katalvlaran/nonolath/palette"
)

const methodWord = "Word"

// glyphGap is the blank column count between adjacent glyphs.
const glyphGap = 1

// Word lays out the upper-cased runes of word left to right using the
// trimmed 5x7 glyph table, coloring set pixels fg and leaving the rest
// background. Returns ErrUnknownGlyph for any rune the table lacks.
func Word(word string, fg palette.Color, pal palette.Palette) (*grid.Grid, error) {
	if word == "" {
		return nil, fmt.Errorf("%s: empty word: %w", methodWord, ErrBadSize)
	}
	if !pal.Valid(fg) {
		return nil, fmt.Errorf("%s: color %d: %w", methodWord, fg, ErrUnknownColor)
	}

	runes := []rune(word)
	rasters := make([][glyphHeight]string, len(runes))
	for i, r := range runes {
		raster, ok := glyphs[unicode.ToUpper(r)]
		if !ok {
			return nil, fmt.Errorf("%s: %q: %w", methodWord, r, ErrUnknownGlyph)
		}
		rasters[i] = raster
	}

	width := len(runes)*glyphWidth + (len(runes)-1)*glyphGap
	g := grid.NewGrid(width, glyphHeight, palette.Single(palette.Background))
	for r := 0; r < glyphHeight; r++ {
		for c := 0; c < width; c++ {
			g.Set(r, c, grid.Cell{Possible: palette.Single(palette.Background)})
		}
	}

	col := 0
	for _, raster := range rasters {
		for row := 0; row < glyphHeight; row++ {
			line := raster[row]
			for i := 0; i < glyphWidth; i++ {
				if line[i] == '#' {
					g.Set(row, col+i, grid.Cell{Possible: palette.Single(fg)})
				}
			}
		}
		col += glyphWidth + glyphGap
	}

	return g, nil
}
