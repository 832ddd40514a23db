// File: set.go
// Role: Set is a bitset over a Palette's colors — the "possibility set" a
// solving cell carries while it is still ambiguous.
// Invariants:
//   - A Set is never the zero value once solving has begun for a well-formed
//     puzzle; a zero Set represents Contradiction and is handled by callers,
//     not by this package.
//   - IsSolved() is true only for singleton sets.
package palette

import (
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// Set is a bitset over color indices 0..31. Bit k set means color k is
// still possible for the cell this Set belongs to.
type Set uint32

// Empty is the contradiction sentinel: no color remains possible.
const Empty Set = 0

// Full returns a Set with every color of pal marked possible.
func Full(pal Palette) Set {
	if pal.Len() >= MaxColors {
		return Set(^uint32(0))
	}

	return Set(uint32(1)<<uint(pal.Len()) - 1)
}

// Single returns a Set containing only c.
func Single(c Color) Set { return Set(1) << uint(c) }

// Contains reports whether c is still possible in s.
func (s Set) Contains(c Color) bool { return s&Single(c) != 0 }

// Remove returns s with c no longer possible.
func (s Set) Remove(c Color) Set { return s &^ Single(c) }

// Intersect returns the colors possible in both s and other.
func (s Set) Intersect(other Set) Set { return s & other }

// Union returns the colors possible in either s or other.
func (s Set) Union(other Set) Set { return s | other }

// IsEmpty reports whether no color remains possible (Contradiction).
func (s Set) IsEmpty() bool { return s == Empty }

// IsSolved reports whether exactly one color remains possible.
func (s Set) IsSolved() bool { return s != 0 && s&(s-1) == 0 }

// AsColor returns the sole possible color and true if s is solved;
// otherwise it returns (0, false).
func (s Set) AsColor() (Color, bool) {
	if !s.IsSolved() {
		return 0, false
	}

	return Color(bits.TrailingZeros32(uint32(s))), true
}

// Count returns the number of colors still possible.
func (s Set) Count() int { return bits.OnesCount32(uint32(s)) }

// IsSubsetOf reports whether every color possible in s is also possible
// in other — the refinement relation spec §8 requires of skim and scrub.
func (s Set) IsSubsetOf(other Set) bool { return s&other == s }

// Hash returns a stable 64-bit digest of s. It hashes only the bit
// pattern, not any row/column identity. Package cache does not call it:
// cache keys hash whole lines with HashVector, which packs each Set with
// the same byte layout.
func (s Set) Hash() uint64 {
	var buf [4]byte
	buf[0] = byte(s)
	buf[1] = byte(s >> 8)
	buf[2] = byte(s >> 16)
	buf[3] = byte(s >> 24)

	return xxhash.Sum64(buf[:])
}

// HashVector returns a stable digest of an ordered slice of Sets, combining
// per-cell hashes with xxhash's streaming Digest so cache keys for whole
// lines stay O(L) to compute and collision-resistant across typical palette
// sizes (≤32 colors, lines up to a few hundred cells).
func HashVector(vec []Set) uint64 {
	d := xxhash.New()
	buf := make([]byte, 4*len(vec))
	for i, s := range vec {
		buf[4*i] = byte(s)
		buf[4*i+1] = byte(s >> 8)
		buf[4*i+2] = byte(s >> 16)
		buf[4*i+3] = byte(s >> 24)
	}
	_, _ = d.Write(buf)

	return d.Sum64()
}
