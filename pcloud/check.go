package pcloud

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// Debug enables exhaustive consistency checks after every mutation. A
// violation panics with a dump of the broken index. Costly, off by default.
var Debug = false

func (c *Cloud) checkConsistency() {
	if !Debug || !c.sorting {
		return
	}
	c.xi.check(c.points)
	c.yi.check(c.points)
}

func (ai *axisIndex) check(points []Point) {
	n := len(points)
	if len(ai.sorted) != n || len(ai.pos) != n {
		ai.violation(fmt.Sprintf("%v lengths: points=%v sorted=%v pos=%v",
			ai.axis, n, len(ai.sorted), len(ai.pos)))
	}
	for r, si := range ai.sorted {
		if si < 0 || si >= n {
			ai.violation(fmt.Sprintf("%v sorted[%v] out of range: %v", ai.axis, r, si))
		}
		// inverse at every rank also covers that sorted is a permutation
		if ai.pos[si] != r {
			ai.violation(fmt.Sprintf("%v not inverse: sorted[%v]=%v but pos[%v]=%v",
				ai.axis, r, si, si, ai.pos[si]))
		}
		if r > 0 {
			prev := points[ai.sorted[r-1]].Along(ai.axis)
			cur := points[si].Along(ai.axis)
			if prev > cur {
				ai.violation(fmt.Sprintf("%v order broken at rank %v: %v > %v",
					ai.axis, r, prev, cur))
			}
		}
	}
}

func (ai *axisIndex) violation(msg string) {
	panic(fmt.Sprintf("pcloud: index inconsistency: %v\n%v",
		msg, spew.Sdump(ai.sorted, ai.pos)))
}
