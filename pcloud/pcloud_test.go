package pcloud

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func init() {
	Debug = true // every mutation below self-checks the indexes
}

//----------

func TestPush(t *testing.T) {
	c := New()
	if i := c.Push(P(0, 0)); i != 0 {
		t.Fatalf("index: %v", i)
	}
	cmpInts(t, "sortedx", c.xi.sorted, []int{0})
	cmpInts(t, "sortedy", c.yi.sorted, []int{0})

	// goes before on x, after on y (equal values keep arrival order)
	if i := c.Push(P(-1, 0)); i != 1 {
		t.Fatalf("index: %v", i)
	}
	cmpInts(t, "sortedx", c.xi.sorted, []int{1, 0})
	cmpInts(t, "posx", c.xi.pos, []int{1, 0})
	cmpInts(t, "sortedy", c.yi.sorted, []int{0, 1})
	cmpInts(t, "posy", c.yi.pos, []int{0, 1})

	if c.Len() != 2 || c.Empty() {
		t.Fatalf("len: %v", c.Len())
	}
}

func TestUpdatePoint(t *testing.T) {
	c := New()
	c.Push(P(0, 0))
	c.Push(P(1, 0))
	c.Push(P(2, 0))

	// move the first point further left, already first on x
	if err := c.UpdatePoint(0, P(-1, 0)); err != nil {
		t.Fatal(err)
	}
	cmpInts(t, "sortedx", c.xi.sorted, []int{0, 1, 2})
	cmpInts(t, "posx", c.xi.pos, []int{0, 1, 2})
	cmpInts(t, "posy", c.yi.pos, []int{0, 1, 2})
	if p, _ := c.Point(0); p != P(-1, 0) {
		t.Fatalf("point: %v", p)
	}

	// move it to the far right, x order ends up [1,2,0], y untouched
	if err := c.UpdatePoint(0, P(12, 0)); err != nil {
		t.Fatal(err)
	}
	cmpInts(t, "sortedx", c.xi.sorted, []int{1, 2, 0})
	cmpInts(t, "posx", c.xi.pos, []int{2, 0, 1})
	cmpInts(t, "sortedy", c.yi.sorted, []int{0, 1, 2})
	cmpInts(t, "posy", c.yi.pos, []int{0, 1, 2})
	if p, _ := c.Point(0); p != P(12, 0) {
		t.Fatalf("point: %v", p)
	}
}

func TestUpdatePointAxis(t *testing.T) {
	c := New()
	c.Push(P(0, 0))
	c.Push(P(1, 1))
	c.Push(P(2, 2))

	// single axis move down
	if err := c.UpdatePointY(2, -5); err != nil {
		t.Fatal(err)
	}
	cmpInts(t, "sortedy", c.yi.sorted, []int{2, 0, 1})
	cmpInts(t, "posy", c.yi.pos, []int{1, 2, 0})
	cmpInts(t, "sortedx", c.xi.sorted, []int{0, 1, 2})
	if p, _ := c.Point(2); p != P(2, -5) {
		t.Fatalf("point: %v", p)
	}

	// single axis move up
	if err := c.UpdatePointX(0, 1.5); err != nil {
		t.Fatal(err)
	}
	cmpInts(t, "sortedx", c.xi.sorted, []int{1, 0, 2})
	cmpInts(t, "posx", c.xi.pos, []int{1, 0, 2})
}

func TestUpdateSameValue(t *testing.T) {
	c := New()
	c.Push(P(0, 0))
	c.Push(P(0, 1))
	c.Push(P(0, 2))

	// updating to the current value leaves all four slices alone
	if err := c.UpdatePoint(1, P(0, 1)); err != nil {
		t.Fatal(err)
	}
	cmpInts(t, "sortedx", c.xi.sorted, []int{0, 1, 2})
	cmpInts(t, "posx", c.xi.pos, []int{0, 1, 2})
	cmpInts(t, "sortedy", c.yi.sorted, []int{0, 1, 2})
	cmpInts(t, "posy", c.yi.pos, []int{0, 1, 2})
}

func TestTranslatePoint(t *testing.T) {
	c := New()
	c.Push(P(0, 0))
	c.Push(P(1, 1))

	if err := c.TranslatePoint(0, 2, 0); err != nil {
		t.Fatal(err)
	}
	cmpInts(t, "sortedx", c.xi.sorted, []int{1, 0})
	cmpInts(t, "sortedy", c.yi.sorted, []int{0, 1})
	if p, _ := c.Point(0); p != P(2, 0) {
		t.Fatalf("point: %v", p)
	}

	if err := c.TranslatePoint(0, 0, 3); err != nil {
		t.Fatal(err)
	}
	cmpInts(t, "sortedy", c.yi.sorted, []int{1, 0})
	if p, _ := c.Point(0); p != P(2, 3) {
		t.Fatalf("point: %v", p)
	}
}

//----------

func TestBadIndex(t *testing.T) {
	c := New()
	c.Push(P(0, 0))

	if err := c.UpdatePoint(1, P(1, 1)); !errors.Is(err, ErrBadIndex) {
		t.Fatalf("err: %v", err)
	}
	if err := c.UpdatePoint(-1, P(1, 1)); !errors.Is(err, ErrBadIndex) {
		t.Fatalf("err: %v", err)
	}
	if err := c.UpdatePointX(1, 0); !errors.Is(err, ErrBadIndex) {
		t.Fatalf("err: %v", err)
	}
	if err := c.TranslatePoint(1, 0, 0); !errors.Is(err, ErrBadIndex) {
		t.Fatalf("err: %v", err)
	}
	if _, err := c.Point(1); !errors.Is(err, ErrBadIndex) {
		t.Fatalf("err: %v", err)
	}
	// store untouched by the failures
	if c.Len() != 1 {
		t.Fatalf("len: %v", c.Len())
	}
}

func TestUnsorted(t *testing.T) {
	c := NewUnsorted()
	for i := 0; i < 5; i++ {
		c.Push(P(float64(i), 0))
	}
	if c.Sorted() {
		t.Fatal("sorted")
	}
	if len(c.xi.sorted) != 0 || len(c.yi.sorted) != 0 {
		t.Fatal("index not empty")
	}
	if _, err := c.TestWorldPoint(P(0, 0)); !errors.Is(err, ErrUnsorted) {
		t.Fatalf("err: %v", err)
	}
	// the store itself still works
	if err := c.UpdatePoint(2, P(9, 9)); err != nil {
		t.Fatal(err)
	}
	if p, err := c.Point(2); err != nil || p != P(9, 9) {
		t.Fatalf("point: %v, %v", p, err)
	}
}

func TestNaNPanics(t *testing.T) {
	c := New()
	c.Push(P(0, 0))
	defer func() {
		if recover() == nil {
			t.Fatal("no panic")
		}
	}()
	_ = c.UpdatePointX(0, math.NaN())
}

func TestNaNPushPanics(t *testing.T) {
	c := New()
	defer func() {
		if recover() == nil {
			t.Fatal("no panic")
		}
	}()
	c.Push(P(0, math.NaN()))
}

//----------

func TestRandomOps(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	rndp := func() Point {
		return P(rnd.Float64()*20-10, rnd.Float64()*20-10)
	}
	c := New()
	for i := 0; i < 500; i++ {
		switch {
		case c.Empty() || rnd.Intn(3) == 0:
			c.Push(rndp())
		case rnd.Intn(2) == 0:
			if err := c.UpdatePoint(rnd.Intn(c.Len()), rndp()); err != nil {
				t.Fatal(err)
			}
		default:
			err := c.TranslatePoint(rnd.Intn(c.Len()), rnd.Float64()-0.5, rnd.Float64()-0.5)
			if err != nil {
				t.Fatal(err)
			}
		}
	}
	checkCloud(t, c)
}

//----------

func checkCloud(t *testing.T, c *Cloud) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatal(r)
		}
	}()
	c.xi.check(c.points)
	c.yi.check(c.points)
}

func cmpInts(t *testing.T, name string, got, want []int) {
	t.Helper()
	eq := len(got) == len(want)
	for i := 0; eq && i < len(got); i++ {
		eq = got[i] == want[i]
	}
	if !eq {
		t.Fatalf("%v: %v, want %v", name, got, want)
	}
}
