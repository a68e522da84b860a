package pcloud

import "sort"

// Order index of one axis. Two mutually inverse permutations of the point
// store: sorted maps rank to stable index with axis values non-decreasing,
// pos maps stable index back to rank.
type axisIndex struct {
	axis   Axis
	sorted []int
	pos    []int
}

func (ai *axisIndex) init(axis Axis, n int) {
	ai.axis = axis
	ai.sorted = make([]int, 0, n)
	ai.pos = make([]int, 0, n)
}

//----------

// Rank where a point with value v would be inserted. Equal values insert
// after the existing ones. Result is in [0,len].
func (ai *axisIndex) searchRank(points []Point, v float64) int {
	return sort.Search(len(ai.sorted), func(r int) bool {
		return points[ai.sorted[r]].Along(ai.axis) > v
	})
}

// Splices stable index si (the store's last entry) in at rank.
func (ai *axisIndex) insert(si, rank int) {
	ai.sorted = append(ai.sorted, 0)
	copy(ai.sorted[rank+1:], ai.sorted[rank:])
	ai.sorted[rank] = si
	ai.pos = append(ai.pos, 0)
	ai.repos(rank, len(ai.sorted)-1)
}

// Rewrites pos from sorted over the rank span [lo,hi].
func (ai *axisIndex) repos(lo, hi int) {
	for r := lo; r <= hi; r++ {
		ai.pos[ai.sorted[r]] = r
	}
}

// Moves stable index si to the rank where value v belongs, shifting the
// ranks in between. The store must still hold si's old value: the search
// runs against the pre-move order. Cost is proportional to the rank
// distance moved.
func (ai *axisIndex) reposition(points []Point, si int, v float64) {
	old := ai.pos[si]
	cand := ai.searchRank(points, v)
	switch {
	case cand > old:
		// the search counted si's own old slot, discount it
		cand--
		if cand == old {
			return
		}
		copy(ai.sorted[old:cand], ai.sorted[old+1:cand+1])
		ai.sorted[cand] = si
		ai.repos(old, cand)
	case cand < old:
		copy(ai.sorted[cand+1:old+1], ai.sorted[cand:old])
		ai.sorted[cand] = si
		ai.repos(cand, old)
	}
}
