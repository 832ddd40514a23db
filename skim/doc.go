// Package skim implements the left-push / right-push / overlap technique
// (spec §4.3): the cheap, linear-in-L·n first pass the grid solver driver
// runs on every dirty line before falling back to package scrub.
//
// Skim never widens a possibility vector; every returned Set is a subset
// of the corresponding input Set (spec §8 "skim is a refinement of
// identity").
package skim
