package disambiguate

import (
	"github.com/katalvlaran/nonolath/cache"
	"github.com/katalvlaran/nonolath/palette"
	"github.com/katalvlaran/nonolath/solver"
)

// Cell identifies one grid position.
type Cell struct {
	Row, Col int
}

// Edit is one candidate single-cell recoloring and how many previously
// unsolved cells resolving the puzzle against it would settle.
type Edit struct {
	Row, Col int
	Color    palette.Color
	Resolved int
}

// Tint is the color and opacity an unsolved cell is painted in the
// overlay: the color k with the largest Resolved count achieved by some
// edit at that cell, opacity proportional to that count.
type Tint struct {
	Color   palette.Color
	Opacity float64
}

// OverlayMap tints every unsolved cell of the baseline solve.
type OverlayMap map[Cell]Tint

// Options configures a Disambiguate call.
type Options struct {
	// Trianogram enables cap rules on every derived and perturbed puzzle.
	Trianogram bool

	// Cache, when non-nil, is shared across every internal solve —
	// ordinarily supplied so a caller can inspect hit-rate Stats()
	// afterward. When nil, Disambiguate creates one bounded by
	// MaxCacheEntries.
	Cache *cache.Cache

	// MaxCacheEntries bounds a Disambiguate-owned cache (ignored when
	// Cache is non-nil). Zero means unbounded.
	MaxCacheEntries int

	// Continuation, when non-nil, is forwarded to every internal Solve
	// call, so a host can yield/cancel mid-trial exactly as it would for
	// a standalone solve.
	Continuation solver.Continuation

	// Progress, when non-nil, is forwarded to every internal Solve call.
	Progress solver.ProgressSink
}
