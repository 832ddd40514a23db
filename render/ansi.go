package render

import (
	"strings"

	"github.com/fatih/color"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/nonolath/grid"
	"github.com/katalvlaran/nonolath/palette"
)

// unresolvedGlyph marks a cell that has not settled to a single color.
const unresolvedGlyph = '?'

type ansiSwatch struct {
	attr color.Attribute
	lab  colorful.Color
}

// ansiSwatches is the 16-color ANSI basic palette, expressed as Lab
// anchors for nearest-color matching.
var ansiSwatches = []ansiSwatch{
	{color.FgBlack, colorful.Color{R: 0, G: 0, B: 0}},
	{color.FgRed, colorful.Color{R: 0.5, G: 0, B: 0}},
	{color.FgGreen, colorful.Color{R: 0, G: 0.5, B: 0}},
	{color.FgYellow, colorful.Color{R: 0.5, G: 0.5, B: 0}},
	{color.FgBlue, colorful.Color{R: 0, G: 0, B: 0.5}},
	{color.FgMagenta, colorful.Color{R: 0.5, G: 0, B: 0.5}},
	{color.FgCyan, colorful.Color{R: 0, G: 0.5, B: 0.5}},
	{color.FgWhite, colorful.Color{R: 0.75, G: 0.75, B: 0.75}},
	{color.FgHiBlack, colorful.Color{R: 0.5, G: 0.5, B: 0.5}},
	{color.FgHiRed, colorful.Color{R: 1, G: 0, B: 0}},
	{color.FgHiGreen, colorful.Color{R: 0, G: 1, B: 0}},
	{color.FgHiYellow, colorful.Color{R: 1, G: 1, B: 0}},
	{color.FgHiBlue, colorful.Color{R: 0, G: 0, B: 1}},
	{color.FgHiMagenta, colorful.Color{R: 1, G: 0, B: 1}},
	{color.FgHiCyan, colorful.Color{R: 0, G: 1, B: 1}},
	{color.FgHiWhite, colorful.Color{R: 1, G: 1, B: 1}},
}

// nearestSwatch returns the ANSI attribute whose Lab anchor is closest
// to rgb by perceptual distance.
func nearestSwatch(rgb [3]uint8) color.Attribute {
	target := colorful.Color{
		R: float64(rgb[0]) / 255,
		G: float64(rgb[1]) / 255,
		B: float64(rgb[2]) / 255,
	}

	best := ansiSwatches[0]
	bestDist := target.DistanceLab(best.lab)
	for _, sw := range ansiSwatches[1:] {
		if d := target.DistanceLab(sw.lab); d < bestDist {
			best, bestDist = sw, d
		}
	}

	return best.attr
}

// ANSI renders g as a newline-separated grid of colored glyphs, one
// per cell: solved cells print their palette glyph in the nearest
// ANSI color, unsolved cells print unresolvedGlyph uncolored.
func ANSI(g *grid.Grid, pal palette.Palette) string {
	var b strings.Builder
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			cell := g.At(r, c)
			col, ok := cell.Possible.AsColor()
			if !ok {
				b.WriteRune(unresolvedGlyph)
				continue
			}

			info := pal[col]
			glyph := info.Glyph
			if glyph == 0 {
				glyph = unresolvedGlyph
			}
			b.WriteString(color.New(nearestSwatch(info.RGB)).Sprint(string(glyph)))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
