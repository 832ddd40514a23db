// Package chargrid implements the .txt char-grid format: one line per
// row, one rune per cell, each rune a palette glyph. It is a solution
// format — it encodes cell colors directly, not clues — so round-
// tripping through a Puzzle without a Grid fails with ErrGridRequired.
package chargrid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/nonolath/formats"
	"github.com/katalvlaran/nonolath/grid"
	"github.com/katalvlaran/nonolath/palette"
)

// ErrRaggedGrid indicates input rows have inconsistent widths.
var ErrRaggedGrid = errors.New("chargrid: ragged rows")

// ErrUnknownGlyph indicates a rune has no matching palette color.
var ErrUnknownGlyph = errors.New("chargrid: glyph not in palette")

// ErrGridRequired indicates Emit was given a Puzzle with no Grid —
// char-grid has no clue-only representation.
var ErrGridRequired = errors.New("chargrid: emitting requires a solved grid")

// ErrEmptyInput indicates the reader produced zero rows.
var ErrEmptyInput = errors.New("chargrid: empty input")

// Loader reads char-grid text against a fixed palette: the palette
// isn't encoded in the format itself, so the caller supplies it.
type Loader struct {
	Palette palette.Palette
}

// NewLoader returns a Loader that resolves glyphs against pal.
func NewLoader(pal palette.Palette) *Loader {
	return &Loader{Palette: pal}
}

// Load reads r line by line, mapping each rune to its palette color by
// matching ColorInfo.Glyph.
func (l *Loader) Load(r io.Reader) (formats.Puzzle, error) {
	glyphOf := make(map[rune]palette.Color, l.Palette.Len())
	for i, info := range l.Palette {
		glyphOf[info.Glyph] = palette.Color(i)
	}

	var rows [][]rune
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		rows = append(rows, []rune(line))
	}
	if err := scanner.Err(); err != nil {
		return formats.Puzzle{}, fmt.Errorf("chargrid: %w", err)
	}
	if len(rows) == 0 {
		return formats.Puzzle{}, ErrEmptyInput
	}

	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return formats.Puzzle{}, ErrRaggedGrid
		}
	}

	g := grid.NewGrid(width, len(rows), palette.Single(palette.Background))
	for r, row := range rows {
		for c, glyph := range row {
			color, ok := glyphOf[glyph]
			if !ok {
				return formats.Puzzle{}, fmt.Errorf("chargrid: %q: %w", glyph, ErrUnknownGlyph)
			}
			g.Set(r, c, grid.Cell{Possible: palette.Single(color)})
		}
	}

	return formats.Puzzle{Palette: l.Palette, Grid: g}, nil
}

// Emitter writes a solved Puzzle's Grid as char-grid text.
type Emitter struct{}

// NewEmitter returns a char-grid Emitter.
func NewEmitter() *Emitter { return &Emitter{} }

// Emit writes one line per row, one glyph per cell. Unsolved cells
// print '?'.
func (*Emitter) Emit(w io.Writer, p formats.Puzzle) error {
	if p.Grid == nil {
		return ErrGridRequired
	}

	bw := bufio.NewWriter(w)
	for r := 0; r < p.Grid.Height; r++ {
		for c := 0; c < p.Grid.Width; c++ {
			color, ok := p.Grid.At(r, c).Possible.AsColor()
			glyph := '?'
			if ok {
				glyph = p.Palette[color].Glyph
			}
			if _, err := bw.WriteRune(glyph); err != nil {
				return fmt.Errorf("chargrid: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("chargrid: %w", err)
		}
	}

	return bw.Flush()
}
