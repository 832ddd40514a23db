// File: driver.go
// Role: Solve is the grid solver driver (spec §4.5): a FIFO worklist of
// dirty lines, skim dispatched before scrub, dirty-flag propagation to
// orthogonal lines on every change, and termination on quiescence or
// contradiction. Adapted from the teacher's worklist-over-queue traversal
// style (core/bfs-shaped iteration) generalized from graph vertices to
// grid lines.
package solver

import (
	"context"

	"github.com/google/uuid"

	"github.com/katalvlaran/nonolath/cache"
	"github.com/katalvlaran/nonolath/grid"
	"github.com/katalvlaran/nonolath/line"
	"github.com/katalvlaran/nonolath/palette"
	"github.com/katalvlaran/nonolath/scrub"
	"github.com/katalvlaran/nonolath/skim"
)

// Solve narrows puzzle's possibility grid to quiescence, contradiction, or
// cancellation and returns a read-only Snapshot of the final state.
func Solve(ctx context.Context, puzzle *grid.Puzzle, opts Options) (grid.Snapshot, Counters, Status) {
	working := grid.NewGrid(puzzle.Width, puzzle.Height, palette.Full(puzzle.Palette))

	c := opts.Cache
	if c == nil {
		c = cache.New(0)
	}

	var counters Counters

	skimQ := newWorklist()
	scrubQ := newWorklist()

	for r := 0; r < puzzle.Height; r++ {
		skimQ.push(lineKey{o: grid.Row, index: r})
	}
	for col := 0; col < puzzle.Width; col++ {
		skimQ.push(lineKey{o: grid.Column, index: col})
	}

	total := puzzle.Height + puzzle.Width
	done := 0

	markDirty := func(o grid.Orientation, index int) {
		k := lineKey{o: o, index: index}
		scrubQ.remove(k)
		skimQ.push(k)
	}

	yield := func(phase string) bool {
		done++
		if opts.Progress != nil {
			opts.Progress.Report(phase, done, total)
		}
		if ctx.Err() != nil {
			return true
		}
		if opts.Continuation == nil {
			return false
		}
		tok := Token{ID: uuid.New(), Snapshot: grid.NewSnapshot(working), Counters: counters}

		return opts.Continuation(tok) == Cancel
	}

	for {
		if k, ok := skimQ.pop(); ok {
			changed, contradiction := runSkim(working, puzzle, c, k, &counters)
			if contradiction {
				counters.Contradictions++

				return grid.NewSnapshot(working), counters, Contradiction
			}
			propagate(markDirty, k, changed)
			if len(changed) == 0 && !lineSolved(working, puzzle, k) {
				scrubQ.push(k)
			}
			if yield("skim") {
				return grid.NewSnapshot(working), counters, Cancelled
			}

			continue
		}

		if k, ok := scrubQ.pop(); ok {
			changed, contradiction := runScrub(working, puzzle, c, k, &counters)
			if contradiction {
				counters.Contradictions++

				return grid.NewSnapshot(working), counters, Contradiction
			}
			propagate(markDirty, k, changed)
			if yield("scrub") {
				return grid.NewSnapshot(working), counters, Cancelled
			}

			continue
		}

		break
	}

	if gridSolved(working) {
		return grid.NewSnapshot(working), counters, Solved
	}

	return grid.NewSnapshot(working), counters, Ambiguous
}

// propagate marks, for every changed position on line k, the orthogonal
// line crossing that position dirty.
func propagate(markDirty func(grid.Orientation, int), k lineKey, changed []int) {
	other := grid.Column
	if k.o == grid.Column {
		other = grid.Row
	}
	for _, pos := range changed {
		markDirty(other, pos)
	}
}

// runSkim runs (or fetches from cache) a skim pass over line k and applies
// the result to working, returning the changed positions.
func runSkim(working *grid.Grid, puzzle *grid.Puzzle, c *cache.Cache, k lineKey, counters *Counters) ([]int, bool) {
	counters.Skims++

	view := line.New(working, k.o, k.index)
	vector := view.Read()
	clues := puzzle.Clues(k.o, k.index)
	key := cache.NewKey(clues, vector, cache.Skim)

	entry, hit := c.Get(key)
	if hit {
		counters.CacheHits++
	} else {
		counters.CacheMisses++
		refined, status := skim.Run(toSkimClues(clues), vector)
		if status == skim.Contradiction {
			c.Put(key, cache.Entry{Contradiction: true})

			return nil, true
		}
		entry = cache.Entry{Vector: refined}
		c.Put(key, entry)
	}
	if entry.Contradiction {
		return nil, true
	}

	return applyVector(view, entry.Vector), false
}

// runScrub mirrors runSkim for the scrub engine.
func runScrub(working *grid.Grid, puzzle *grid.Puzzle, c *cache.Cache, k lineKey, counters *Counters) ([]int, bool) {
	counters.Scrubs++

	view := line.New(working, k.o, k.index)
	vector := view.Read()
	clues := puzzle.Clues(k.o, k.index)
	key := cache.NewKey(clues, vector, cache.Scrub)

	entry, hit := c.Get(key)
	if hit {
		counters.CacheHits++
	} else {
		counters.CacheMisses++
		refined, status := scrub.Run(toScrubClues(clues), vector)
		if status == scrub.Contradiction {
			c.Put(key, cache.Entry{Contradiction: true})

			return nil, true
		}
		entry = cache.Entry{Vector: refined}
		c.Put(key, entry)
	}
	if entry.Contradiction {
		return nil, true
	}

	return applyVector(view, entry.Vector), false
}

// applyVector stages every position of vector onto view and flushes,
// returning the positions that actually changed.
func applyVector(view *line.View, vector []palette.Set) []int {
	for p, s := range vector {
		view.Replace(p, s)
	}

	return view.Flush()
}

// toSkimClues converts a grid clue list to skim's structurally-identical
// clue shape.
func toSkimClues(cl grid.LineClues) []skim.Clue {
	out := make([]skim.Clue, len(cl))
	for i, c := range cl {
		out[i] = skim.Clue{Color: c.Color, Length: c.Length, LeftCap: c.LeftCap, RightCap: c.RightCap}
	}

	return out
}

// toScrubClues mirrors toSkimClues for scrub's clue shape.
func toScrubClues(cl grid.LineClues) []scrub.Clue {
	out := make([]scrub.Clue, len(cl))
	for i, c := range cl {
		out[i] = scrub.Clue{Color: c.Color, Length: c.Length, LeftCap: c.LeftCap, RightCap: c.RightCap}
	}

	return out
}

// lineSolved reports whether every cell of line k is already singleton.
func lineSolved(g *grid.Grid, puzzle *grid.Puzzle, k lineKey) bool {
	v := line.New(g, k.o, k.index)
	for p := 0; p < v.Len(); p++ {
		if !v.Possible(p).IsSolved() {
			return false
		}
	}

	return true
}

// gridSolved reports whether every cell in g is singleton.
func gridSolved(g *grid.Grid) bool {
	for r := 0; r < g.Height; r++ {
		for col := 0; col < g.Width; col++ {
			if !g.At(r, col).Possible.IsSolved() {
				return false
			}
		}
	}

	return true
}
