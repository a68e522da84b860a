package pcloud

import (
	"fmt"
	"math"
)

// Point is a location in world units. World Y grows upward.
type Point struct {
	X, Y float64
}

// P is shorthand for Point{x, y}.
func P(x, y float64) Point {
	return Point{x, y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// SqDistTo returns the squared euclidean distance to q.
func (p Point) SqDistTo(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

func (p Point) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

//----------

// Axis selects one coordinate of a point.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Along returns the coordinate on the given axis.
func (p Point) Along(a Axis) float64 {
	if a == AxisX {
		return p.X
	}
	return p.Y
}

//----------

// NaN never compares, the order indexes can't place it. Caught at the
// mutation boundary since letting it in would corrupt the permutations.
func checkCoord(v float64) {
	if math.IsNaN(v) {
		panic("pcloud: NaN coordinate")
	}
}
func checkPoint(p Point) {
	checkCoord(p.X)
	checkCoord(p.Y)
}
