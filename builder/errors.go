// errors.go — sentinel errors for the builder package.
//
// Error policy, carried over from the teacher's builder/errors.go:
// only sentinel variables are exported, callers branch with errors.Is,
// and every constructor wraps a sentinel with fmt.Errorf("%s: %w", ...)
// context rather than stringifying parameters into the sentinel itself.
package builder

import "errors"

// ErrBadSize indicates a dimension or length argument (width, height,
// n) fell outside the constructor's valid range.
var ErrBadSize = errors.New("builder: invalid size")

// ErrNoColors indicates Stripes was called with an empty color list.
var ErrNoColors = errors.New("builder: no colors supplied")

// ErrUnknownColor indicates a color index does not belong to the
// supplied palette.
var ErrUnknownColor = errors.New("builder: color not in palette")

// ErrUnknownGlyph indicates Word was given a rune with no entry in the
// trimmed glyph table.
var ErrUnknownGlyph = errors.New("builder: no glyph for rune")
