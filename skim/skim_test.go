package skim_test

import (
	"testing"

	"github.com/katalvlaran/nonolath/palette"
	"github.com/katalvlaran/nonolath/skim"
)

const (
	bg palette.Color = 0
	a  palette.Color = 1
	b  palette.Color = 2
)

func fullVector(n int, colors int) []palette.Set {
	full := palette.Set(0)
	for c := 0; c < colors; c++ {
		full = full.Union(palette.Single(palette.Color(c)))
	}
	out := make([]palette.Set, n)
	for i := range out {
		out[i] = full
	}

	return out
}

// TestRun_ForcedByOverlap is spec §8 scenario 1.
func TestRun_ForcedByOverlap(t *testing.T) {
	vec := fullVector(5, 2)
	out, status := skim.Run([]skim.Clue{{Color: a, Length: 3}}, vec)
	if status != skim.Refined {
		t.Fatalf("status = %v; want Refined", status)
	}
	if c, ok := out[2].AsColor(); !ok || c != a {
		t.Fatalf("out[2] = %v; want solved to A", out[2])
	}
	for _, p := range []int{0, 1, 3, 4} {
		if out[p].IsSolved() {
			t.Errorf("out[%d] = %v; want still ambiguous {A,bg}", p, out[p])
		}
		if !out[p].Contains(a) || !out[p].Contains(bg) {
			t.Errorf("out[%d] = %v; want {A,bg}", p, out[p])
		}
	}
}

// TestRun_SameColorRequiresSeparator is spec §8 scenario 2.
func TestRun_SameColorRequiresSeparator(t *testing.T) {
	vec := fullVector(5, 2)
	out, status := skim.Run([]skim.Clue{{Color: a, Length: 2}, {Color: a, Length: 2}}, vec)
	if status != skim.Refined {
		t.Fatalf("status = %v; want Refined", status)
	}
	want := []palette.Color{a, a, bg, a, a}
	for i, w := range want {
		c, ok := out[i].AsColor()
		if !ok || c != w {
			t.Errorf("out[%d] = %v; want solved %v", i, out[i], w)
		}
	}
}

// TestRun_DifferentColorsMayTouch is spec §8 scenario 3.
func TestRun_DifferentColorsMayTouch(t *testing.T) {
	vec := fullVector(4, 3)
	out, status := skim.Run([]skim.Clue{{Color: a, Length: 2}, {Color: b, Length: 2}}, vec)
	if status != skim.Refined {
		t.Fatalf("status = %v; want Refined", status)
	}
	want := []palette.Color{a, a, b, b}
	for i, w := range want {
		c, ok := out[i].AsColor()
		if !ok || c != w {
			t.Errorf("out[%d] = %v; want solved %v", i, out[i], w)
		}
	}
}

// TestRun_TrianogramCapsMeetWithoutSeparator is spec §8 scenario 6.
func TestRun_TrianogramCapsMeetWithoutSeparator(t *testing.T) {
	vec := fullVector(4, 2)
	clues := []skim.Clue{
		{Color: a, Length: 2, RightCap: true},
		{Color: a, Length: 2, LeftCap: true},
	}
	out, status := skim.Run(clues, vec)
	if status != skim.Refined {
		t.Fatalf("status = %v; want Refined", status)
	}
	for i := 0; i < 4; i++ {
		c, ok := out[i].AsColor()
		if !ok || c != a {
			t.Errorf("out[%d] = %v; want solved A", i, out[i])
		}
	}
}

// TestRun_ClueLengthEqualsLineLength forces every cell to the clue's
// color (spec §8 boundary behavior).
func TestRun_ClueLengthEqualsLineLength(t *testing.T) {
	vec := fullVector(3, 2)
	out, status := skim.Run([]skim.Clue{{Color: a, Length: 3}}, vec)
	if status != skim.Refined {
		t.Fatalf("status = %v; want Refined", status)
	}
	for i := 0; i < 3; i++ {
		if c, ok := out[i].AsColor(); !ok || c != a {
			t.Errorf("out[%d] = %v; want solved A", i, out[i])
		}
	}
}

// TestRun_NoFeasiblePlacementIsContradiction checks a clue that cannot
// possibly fit because a cell it must occupy already excludes its color.
func TestRun_NoFeasiblePlacementIsContradiction(t *testing.T) {
	vec := fullVector(3, 2)
	vec[1] = palette.Single(bg) // middle cell is forced background
	_, status := skim.Run([]skim.Clue{{Color: a, Length: 3}}, vec)
	if status != skim.Contradiction {
		t.Fatalf("status = %v; want Contradiction", status)
	}
}

// TestRun_EmptyClueListForcesBackground covers the length>0, no-clues case:
// every cell must be background.
func TestRun_EmptyClueListForcesBackground(t *testing.T) {
	vec := fullVector(3, 2)
	out, status := skim.Run(nil, vec)
	if status != skim.Refined {
		t.Fatalf("status = %v; want Refined", status)
	}
	for i := 0; i < 3; i++ {
		if c, ok := out[i].AsColor(); !ok || c != bg {
			t.Errorf("out[%d] = %v; want solved background", i, out[i])
		}
	}
}

// TestRun_ZeroLengthLineNoOp is spec §8: line length 0, empty clue list → OK.
func TestRun_ZeroLengthLineNoOp(t *testing.T) {
	out, status := skim.Run(nil, nil)
	if status != skim.Refined || len(out) != 0 {
		t.Fatalf("Run(nil, nil) = (%v, %v); want (empty, Refined)", out, status)
	}
}

// TestRun_NeverWidens locks in the refinement-of-identity property (spec §8).
func TestRun_NeverWidens(t *testing.T) {
	vec := fullVector(6, 2)
	out, status := skim.Run([]skim.Clue{{Color: a, Length: 2}}, vec)
	if status != skim.Refined {
		t.Fatalf("status = %v; want Refined", status)
	}
	for i := range vec {
		if !out[i].IsSubsetOf(vec[i]) {
			t.Errorf("out[%d] = %v is not a subset of input %v", i, out[i], vec[i])
		}
	}
}
