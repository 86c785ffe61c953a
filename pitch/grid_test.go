package pitch

import (
	"sort"
	"testing"
)

func TestBuildGridShapes(t *testing.T) {
	g := buildGrid(100, 600, 16000)

	if len(g.pc) < 3 {
		t.Fatalf("candidate grid too small: %d", len(g.pc))
	}
	if !sort.Float64sAreSorted(g.pc) {
		t.Error("candidate grid pc is not ascending")
	}
	if len(g.pc) != len(g.d) {
		t.Errorf("len(pc)=%d != len(d)=%d", len(g.pc), len(g.d))
	}

	if len(g.ws) == 0 {
		t.Fatal("window ladder ws is empty")
	}
	for i := 1; i < len(g.ws); i++ {
		if g.ws[i] > g.ws[i-1] {
			t.Errorf("window ladder not descending at %d: %d > %d", i, g.ws[i], g.ws[i-1])
		}
	}

	if !sort.Float64sAreSorted(g.fERBs) {
		t.Error("fERBs is not ascending")
	}
	if len(g.primeMask) == 0 {
		t.Error("primeMask is empty")
	}
	if !g.primeMask[0] {
		t.Error("primeMask[0] (the fundamental) must always be true")
	}
}

func TestBuildGridNarrowRange(t *testing.T) {
	// A degenerate range should still produce something rather than panic;
	// Track itself is responsible for rejecting too-narrow ranges.
	g := buildGrid(590, 600, 16000)
	if len(g.pc) == 0 {
		t.Fatal("expected at least one candidate for a narrow but valid range")
	}
}
