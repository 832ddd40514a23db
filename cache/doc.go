// Package cache implements the line-result cache (spec §4.6): a
// process-wide memo of (clue list, possibility vector, engine) → refined
// vector or Contradiction.
//
// The key is orientation-agnostic by construction (SPEC_FULL.md "cache
// key stability") — it hashes the clue list and the vector's bit pattern,
// never a row or column index — so a row and a column of equal length
// sharing the same clues and vector hit the same entry. This is what
// makes package disambiguate's repeated re-solves tractable: only the one
// row and one column touched by a perturbation miss the cache.
package cache
