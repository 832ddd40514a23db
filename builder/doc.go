// Package builder constructs deterministic puzzle fixtures: solid
// canvases, striped grids, letter-raster words, and a cap-exercising
// checkerboard. Every fixture is a fully-solved grid.Grid (or, for
// CheckerboardCaps, a ready grid.Puzzle), so callers feed it straight
// into grid.DeriveClues, solver.Solve, or disambiguate.Disambiguate
// without extra wiring.
//
// Adapted from the teacher's builder package: the same "method name
// for error context" and "data table separate from building logic"
// idioms (constants.go, letters_spec.go/impl_letters.go) carry over,
// narrowed from graph topologies to raster grids. The teacher's
// BuilderOption/Constructor composition pipeline and its RNG-driven
// random topologies have no analogue here: every fixture below is one
// deterministic shape with a fixed argument list, not a composable
// sequence of mutations over a shared config, so that machinery is not
// reproduced (see DESIGN.md).
package builder
