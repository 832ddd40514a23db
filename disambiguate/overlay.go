// File: overlay.go
// Role: BuildOverlay folds every candidate Edit's Resolved count into a
// per-color matrix.Overlay, then picks, for each unsolved cell, the
// color with the largest accumulated weight — producing the opacity-
// weighted tint map spec §4.7 step 4 describes.
package disambiguate

import (
	"github.com/katalvlaran/nonolath/matrix"
	"github.com/katalvlaran/nonolath/palette"
)

// BuildOverlay accumulates edits into one matrix.Overlay per color, then
// reduces them to a single OverlayMap by keeping, per unsolved cell, the
// color with the largest Resolved weight seen at that cell.
func BuildOverlay(height, width int, edits []Edit, pal palette.Palette) (OverlayMap, error) {
	byColor := make(map[palette.Color]*matrix.Overlay, pal.Len())
	for _, e := range edits {
		ov, ok := byColor[e.Color]
		if !ok {
			var err error
			ov, err = matrix.NewOverlay(height, width)
			if err != nil {
				return nil, err
			}
			byColor[e.Color] = ov
		}
		if err := ov.Accumulate(e.Row, e.Col, float64(e.Resolved)); err != nil {
			return nil, err
		}
	}

	normalized := make(map[palette.Color]*matrix.Overlay, len(byColor))
	for color, ov := range byColor {
		normalized[color] = ov.Normalized()
	}

	out := make(OverlayMap)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			var best Tint
			bestWeight := 0.0
			for color, ov := range byColor {
				raw, _ := ov.At(r, c)
				if raw == 0 {
					continue
				}
				if raw > bestWeight || (raw == bestWeight && color < best.Color) {
					w, _ := normalized[color].At(r, c)
					best = Tint{Color: color, Opacity: w}
					bestWeight = raw
				}
			}
			if best.Opacity > 0 {
				out[Cell{Row: r, Col: c}] = best
			}
		}
	}

	return out, nil
}
