package pcloud

import (
	"testing"
)

func TestSearchRankX(t *testing.T) {
	// empty
	c := New()
	if r := c.xi.searchRank(c.points, 1); r != 0 {
		t.Fatalf("empty: %v", r)
	}

	type probe struct {
		v    float64
		rank int
	}

	// one point at (0,0)
	c.Push(P(0, 0))
	for _, u := range []probe{{-1, 0}, {1, 1}, {0, 1}} {
		if r := c.xi.searchRank(c.points, u.v); r != u.rank {
			t.Fatalf("%v: %v, want %v", u.v, r, u.rank)
		}
	}

	// two points at (0,0) (1,0)
	c.Push(P(1, 0))
	for _, u := range []probe{{-1, 0}, {0, 1}, {0.5, 1}, {1, 2}, {2, 2}} {
		if r := c.xi.searchRank(c.points, u.v); r != u.rank {
			t.Fatalf("%v: %v, want %v", u.v, r, u.rank)
		}
	}
}

func TestSearchRankY(t *testing.T) {
	c := New()
	if r := c.yi.searchRank(c.points, 1); r != 0 {
		t.Fatalf("empty: %v", r)
	}

	type probe struct {
		v    float64
		rank int
	}

	c.Push(P(0, 0))
	for _, u := range []probe{{-1, 0}, {1, 1}, {0, 1}} {
		if r := c.yi.searchRank(c.points, u.v); r != u.rank {
			t.Fatalf("%v: %v, want %v", u.v, r, u.rank)
		}
	}

	c.Push(P(0, 1))
	for _, u := range []probe{{-1, 0}, {0, 1}, {0.5, 1}, {1, 2}, {2, 2}} {
		if r := c.yi.searchRank(c.points, u.v); r != u.rank {
			t.Fatalf("%v: %v, want %v", u.v, r, u.rank)
		}
	}
}

func TestSearchRankEqualRun(t *testing.T) {
	c := New()
	c.Push(P(5, 0))
	c.Push(P(5, 1))
	c.Push(P(5, 2))
	// equal values insert after the whole run
	if r := c.xi.searchRank(c.points, 5); r != 3 {
		t.Fatalf("on the run: %v", r)
	}
	if r := c.xi.searchRank(c.points, 4.9); r != 0 {
		t.Fatalf("before the run: %v", r)
	}
	// pushes with equal values keep arrival order
	cmpInts(t, "sortedx", c.xi.sorted, []int{0, 1, 2})
}
