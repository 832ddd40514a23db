// File: errors.go
// Role: sentinel errors for puzzle construction and validation.
// Policy (carried from the teacher's builder/errors.go): only sentinel
// variables are exported; callers branch with errors.Is; sentinels are
// never wrapped with fmt.Errorf at their definition site.
package grid

import "errors"

var (
	// ErrEmptyPuzzle indicates a puzzle with zero width or zero height.
	ErrEmptyPuzzle = errors.New("grid: puzzle must have positive width and height")

	// ErrCluesTooLong indicates a line's clue lengths plus mandatory
	// separators exceed the line's length (spec §3, §8 boundary behavior).
	ErrCluesTooLong = errors.New("grid: clue list exceeds line length")

	// ErrZeroLengthClue indicates a Clue with Length < 1.
	ErrZeroLengthClue = errors.New("grid: clue length must be at least 1")

	// ErrBackgroundClue indicates a Clue naming the background color.
	ErrBackgroundClue = errors.New("grid: clue color must not be background")

	// ErrClueCountMismatch indicates the number of row or column clue
	// lists does not match the puzzle's height or width.
	ErrClueCountMismatch = errors.New("grid: clue list count does not match grid dimension")

	// ErrInconsistentCaps indicates a trianogram cap flag was set on a
	// clue while the puzzle was not constructed with Trianogram enabled.
	ErrInconsistentCaps = errors.New("grid: cap flags require trianogram mode")

	// ErrUnknownColor indicates a clue or cell references a color outside
	// the puzzle's palette.
	ErrUnknownColor = errors.New("grid: color index out of palette range")
)
