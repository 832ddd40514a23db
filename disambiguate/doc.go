// Package disambiguate implements the disambiguator (spec §4.7): given a
// fully-solved ground-truth grid, it finds which single-cell recolorings
// would most reduce ambiguity if they were given as additional clue
// information, by perturbing one cell at a time, re-deriving only the
// two affected lines, and re-running the solver against a cache shared
// across every trial.
package disambiguate
