// Package line gives row and column access to a grid.Grid a single,
// uniform shape (spec §4.2): a View is addressed by (Orientation, Index)
// and reads/writes positions 0..Length-1 without its caller ever branching
// on whether it is looking at a row or a column.
//
// Writes are staged ("cell at position p lost color c") and flushed
// atomically, so a skim or scrub pass can describe every change it wants
// to make before any of them become visible, and the grid solver driver
// (package solver) can compute which orthogonal lines went dirty from one
// Flush call.
package line
