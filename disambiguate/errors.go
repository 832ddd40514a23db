package disambiguate

import "errors"

var (
	// ErrNotFullySolved indicates the supplied ground-truth grid has at
	// least one cell with more than one possible color.
	ErrNotFullySolved = errors.New("disambiguate: ground-truth grid must be fully solved")

	// ErrContradiction indicates the baseline solve against the derived
	// clues itself produced a contradiction, which should never happen
	// for clues derived from a real grid but is checked defensively.
	ErrContradiction = errors.New("disambiguate: baseline solve against derived clues contradicted")
)
