package pcloud

// DefaultTestRadius is the TestRadius of new clouds, in world units.
const DefaultTestRadius = 0.25

// TestWorldPoint returns the stable index of the point closest to p within
// TestRadius. The order indexes bound the scan to the points inside the
// radius square on whichever axis has the narrower rank window.
// Returns (-1, nil) if no point is close enough.
// Fails with ErrUnsorted when no order is kept, callers branch on Sorted()
// and run their own scan.
func (c *Cloud) TestWorldPoint(p Point) (int, error) {
	if !c.sorting {
		return -1, ErrUnsorted
	}

	r := c.TestRadius
	minX := c.xi.searchRank(c.points, p.X-r)
	maxX := c.xi.searchRank(c.points, p.X+r)
	minY := c.yi.searchRank(c.points, p.Y-r)
	maxY := c.yi.searchRank(c.points, p.Y+r)

	ai := &c.xi
	min, max := minX, maxX
	if maxX-minX > maxY-minY {
		ai = &c.yi
		min, max = minY, maxY
	}

	// exact distances on the narrower window, first of equals wins
	found := -1
	best := r * r
	for k := min; k < max; k++ {
		si := ai.sorted[k]
		if sqd := p.SqDistTo(c.points[si]); sqd < best {
			found = si
			best = sqd
		}
	}
	return found, nil
}
