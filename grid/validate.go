// File: validate.go
// Role: construction-time validation (spec §7 MalformedPuzzle). No solver
// runs until a Puzzle passes NewPuzzle.
package grid

import (
	"fmt"

	"github.com/katalvlaran/nonolath/palette"
)

// NewPuzzle validates dimensions, clue lists and cap flags, returning a
// ready-to-solve Puzzle or a wrapped MalformedPuzzle-class sentinel.
//
// Validation order (stable, for deterministic error messages):
//  1. dimensions non-zero
//  2. clue list counts match dimensions
//  3. each row line, then each column line, in index order:
//     a. per-clue: length ≥ 1, color ≠ background, color in palette, caps only in trianogram mode
//     b. Σlength + mandatory separators ≤ line length
func NewPuzzle(width, height int, pal palette.Palette, rowClues, colClues []LineClues, trianogram bool) (*Puzzle, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyPuzzle
	}
	if len(rowClues) != height {
		return nil, fmt.Errorf("%w: %d row clue lists for height %d", ErrClueCountMismatch, len(rowClues), height)
	}
	if len(colClues) != width {
		return nil, fmt.Errorf("%w: %d column clue lists for width %d", ErrClueCountMismatch, len(colClues), width)
	}

	if err := validateLines(rowClues, width, pal, trianogram); err != nil {
		return nil, err
	}
	if err := validateLines(colClues, height, pal, trianogram); err != nil {
		return nil, err
	}

	return &Puzzle{
		Width:      width,
		Height:     height,
		Palette:    pal,
		RowClues:   rowClues,
		ColClues:   colClues,
		Trianogram: trianogram,
	}, nil
}

func validateLines(lines []LineClues, lineLen int, pal palette.Palette, trianogram bool) error {
	for idx, cl := range lines {
		if err := validateLine(cl, lineLen, pal, trianogram); err != nil {
			return fmt.Errorf("line %d: %w", idx, err)
		}
	}

	return nil
}

func validateLine(cl LineClues, lineLen int, pal palette.Palette, trianogram bool) error {
	for i, c := range cl {
		if c.Length < 1 {
			return fmt.Errorf("clue %d: %w", i, ErrZeroLengthClue)
		}
		if c.Color == palette.Background {
			return fmt.Errorf("clue %d: %w", i, ErrBackgroundClue)
		}
		if !pal.Valid(c.Color) {
			return fmt.Errorf("clue %d: %w", i, ErrUnknownColor)
		}
		if (c.LeftCap || c.RightCap) && !trianogram {
			return fmt.Errorf("clue %d: %w", i, ErrInconsistentCaps)
		}
	}

	minLen := minimumSpan(cl)
	if minLen > lineLen {
		return fmt.Errorf("%w: clues need at least %d cells, line has %d", ErrCluesTooLong, minLen, lineLen)
	}

	return nil
}

// minimumSpan computes the shortest line length that can legally host cl:
// the sum of clue lengths plus one mandatory separator between every pair
// of consecutive same-color, uncapped-facing clues (spec §3, §4.3).
func minimumSpan(cl LineClues) int {
	total := 0
	for i, c := range cl {
		total += c.Length
		if i == 0 {
			continue
		}
		prev := cl[i-1]
		if needsSeparator(prev, c) {
			total++
		}
	}

	return total
}

// needsSeparator reports whether a mandatory background cell must sit
// between clue a (left) and clue b (right): true when they share a color
// and neither facing side is capped (spec §4.3 trianogram rule).
func needsSeparator(a, b Clue) bool {
	if a.Color != b.Color {
		return false
	}
	if a.RightCap || b.LeftCap {
		return false
	}

	return true
}
