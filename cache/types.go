package cache

import (
	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/nonolath/grid"
	"github.com/katalvlaran/nonolath/palette"
)

// Engine names which technique produced (or is being asked to produce) a
// cached entry.
type Engine int

const (
	// Skim identifies entries produced by package skim.
	Skim Engine = iota
	// Scrub identifies entries produced by package scrub.
	Scrub
)

// Key is the comparable, orientation-agnostic cache key: a digest of the
// clue list, a digest of the possibility vector, and the engine. It
// deliberately carries no row/column identity.
type Key struct {
	ClueHash   uint64
	VectorHash uint64
	Engine     Engine
}

// NewKey builds a Key from a clue list and possibility vector.
func NewKey(clues grid.LineClues, vector []palette.Set, engine Engine) Key {
	return Key{ClueHash: hashClues(clues), VectorHash: palette.HashVector(vector), Engine: engine}
}

// hashClues folds a clue list into one stable digest.
func hashClues(clues grid.LineClues) uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 8*len(clues))
	for _, c := range clues {
		buf = append(buf, byte(c.Color), byte(c.Length), byte(c.Length>>8))
		flags := byte(0)
		if c.LeftCap {
			flags |= 1
		}
		if c.RightCap {
			flags |= 2
		}
		buf = append(buf, flags)
	}
	_, _ = d.Write(buf)

	return d.Sum64()
}

// Entry is a cached refined line, or a recorded contradiction.
type Entry struct {
	Vector        []palette.Set
	Contradiction bool
}
