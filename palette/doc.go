// Package palette defines Color, Palette and the per-cell possibility Set
// bitset that the rest of nonolath builds on.
//
// Design goals:
//   - Compactness: a palette has at most 32 colors, so a Set fits in a
//     uint32 and a cache key packs one Set per cell cheaply.
//   - Purity: every operation here returns a new value; nothing in this
//     package mutates shared state.
//   - Determinism: Set.Hash and HashVector are stable across processes for
//     the same bits; HashVector is what gives the line-result cache (see
//     package cache) its orientation-agnostic key.
package palette
