// Package pcloud keeps a growing set of 2-D points sorted along both axes
// at once. Each axis has an order index that is updated incrementally on
// every mutation, so rank windows stay available for bounded searches
// without ever re-sorting the whole set.
package pcloud

import (
	"errors"
	"fmt"
)

// Callers can branch on these with errors.Is.
var (
	ErrBadIndex = errors.New("pcloud: bad point index")
	ErrUnsorted = errors.New("pcloud: unsorted cloud")
)

//----------

// Cloud is the point store plus one order index per axis. A point is named
// by the stable index returned from Push; indexes are never reused and
// there is no delete. Not safe for concurrent use.
type Cloud struct {
	// TestRadius bounds TestWorldPoint searches, in world units.
	TestRadius float64

	points  []Point
	xi, yi  axisIndex
	sorting bool
}

// New returns a cloud that maintains its order indexes.
func New() *Cloud {
	return NewWithCapacity(0)
}

func NewWithCapacity(n int) *Cloud {
	c := &Cloud{TestRadius: DefaultTestRadius, sorting: true}
	c.points = make([]Point, 0, n)
	c.xi.init(AxisX, n)
	c.yi.init(AxisY, n)
	return c
}

// NewUnsorted returns a cloud in degraded mode: Push costs O(1) and no
// order is kept, so rank based operations fail with ErrUnsorted.
func NewUnsorted() *Cloud {
	c := New()
	c.sorting = false
	return c
}

//----------

func (c *Cloud) Len() int {
	return len(c.points)
}
func (c *Cloud) Empty() bool {
	return len(c.points) == 0
}

// Sorted reports whether the order indexes are being maintained.
func (c *Cloud) Sorted() bool {
	return c.sorting
}

// Points is the store in stable index order. Callers must not mutate it.
func (c *Cloud) Points() []Point {
	return c.points
}

func (c *Cloud) Point(i int) (Point, error) {
	if err := c.checkIndex(i); err != nil {
		return Point{}, err
	}
	return c.points[i], nil
}

func (c *Cloud) checkIndex(i int) error {
	if i < 0 || i >= len(c.points) {
		return fmt.Errorf("%w: %v", ErrBadIndex, i)
	}
	return nil
}

//----------

// Push appends p to the store and splices it into both order indexes.
// Returns the point's stable index.
func (c *Cloud) Push(p Point) int {
	checkPoint(p)
	si := len(c.points)
	c.points = append(c.points, p)
	if c.sorting {
		c.xi.insert(si, c.xi.searchRank(c.points, p.X))
		c.yi.insert(si, c.yi.searchRank(c.points, p.Y))
	}
	c.checkConsistency()
	return si
}

// UpdatePointX repositions point i on the x axis and stores the new
// coordinate. Cost is proportional to the rank distance moved.
func (c *Cloud) UpdatePointX(i int, x float64) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	checkCoord(x)
	if c.sorting {
		c.xi.reposition(c.points, i, x)
	}
	c.points[i].X = x
	c.checkConsistency()
	return nil
}

// UpdatePointY is UpdatePointX for the y axis.
func (c *Cloud) UpdatePointY(i int, y float64) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	checkCoord(y)
	if c.sorting {
		c.yi.reposition(c.points, i, y)
	}
	c.points[i].Y = y
	c.checkConsistency()
	return nil
}

// UpdatePoint moves point i to p. An axis whose value is unchanged is left
// alone, a move along one axis never disturbs the other axis order.
func (c *Cloud) UpdatePoint(i int, p Point) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	checkPoint(p)
	if !c.sorting {
		c.points[i] = p
		return nil
	}
	cur := c.points[i]
	if p.X != cur.X {
		c.xi.reposition(c.points, i, p.X)
		c.points[i].X = p.X
	}
	if p.Y != cur.Y {
		c.yi.reposition(c.points, i, p.Y)
		c.points[i].Y = p.Y
	}
	c.checkConsistency()
	return nil
}

// TranslatePoint moves point i by (dx, dy) world units.
func (c *Cloud) TranslatePoint(i int, dx, dy float64) error {
	p, err := c.Point(i)
	if err != nil {
		return err
	}
	return c.UpdatePoint(i, Point{p.X + dx, p.Y + dy})
}
