package chartsense

import "math"

const (
	quadCapacity = 8 // points per leaf before it splits
	quadMaxDepth = 8 // leaves at this depth grow instead of splitting
)

// quadtree partitions registered points by position. Entries are indices
// into the owning SpatialIndex's point slice so rebuilding never copies data.
type quadtree struct {
	bounds   Rect
	depth    int
	entries  []int
	children *[4]quadtree
}

func newQuadtree(bounds Rect) *quadtree {
	return &quadtree{bounds: bounds}
}

// boundsOf returns the bounding box of pts, padded so points on the far
// edge stay inside.
func boundsOf(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX + 1, Height: maxY - minY + 1}
}

func (q *quadtree) insert(pts []Point, idx int) bool {
	p := pts[idx]
	if !q.bounds.Contains(p.X, p.Y) {
		return false
	}
	if q.children == nil {
		if len(q.entries) < quadCapacity || q.depth >= quadMaxDepth {
			q.entries = append(q.entries, idx)
			return true
		}
		q.split(pts)
	}
	for i := range q.children {
		if q.children[i].insert(pts, idx) {
			return true
		}
	}
	// Rounding on a shared edge: keep it here.
	q.entries = append(q.entries, idx)
	return true
}

func (q *quadtree) split(pts []Point) {
	hw := q.bounds.Width / 2
	hh := q.bounds.Height / 2
	x, y := q.bounds.X, q.bounds.Y
	q.children = &[4]quadtree{
		{bounds: Rect{X: x, Y: y, Width: hw, Height: hh}, depth: q.depth + 1},
		{bounds: Rect{X: x + hw, Y: y, Width: hw, Height: hh}, depth: q.depth + 1},
		{bounds: Rect{X: x, Y: y + hh, Width: hw, Height: hh}, depth: q.depth + 1},
		{bounds: Rect{X: x + hw, Y: y + hh, Width: hw, Height: hh}, depth: q.depth + 1},
	}
	old := q.entries
	q.entries = nil
	for _, idx := range old {
		placed := false
		for i := range q.children {
			if q.children[i].insert(pts, idx) {
				placed = true
				break
			}
		}
		if !placed {
			q.entries = append(q.entries, idx)
		}
	}
}

// distToRect returns the distance from (x, y) to the nearest point of r.
func distToRect(r Rect, x, y float64) float64 {
	dx := math.Max(math.Max(r.X-x, 0), x-r.Right())
	dy := math.Max(math.Max(r.Y-y, 0), y-r.Bottom())
	return math.Hypot(dx, dy)
}

// nearest returns the index of the closest point within radius, or -1.
// Ties resolve to the lower index (earlier registration).
func (q *quadtree) nearest(pts []Point, x, y, radius float64) (int, float64) {
	best, bestDist := -1, math.Inf(1)
	q.searchNearest(pts, x, y, radius, &best, &bestDist)
	return best, bestDist
}

func (q *quadtree) searchNearest(pts []Point, x, y, radius float64, best *int, bestDist *float64) {
	d := distToRect(q.bounds, x, y)
	if d > radius || d > *bestDist {
		return
	}
	for _, idx := range q.entries {
		p := pts[idx]
		pd := math.Hypot(p.X-x, p.Y-y)
		if pd > radius {
			continue
		}
		if pd < *bestDist || (pd == *bestDist && idx < *best) {
			*best = idx
			*bestDist = pd
		}
	}
	if q.children == nil {
		return
	}
	for i := range q.children {
		q.children[i].searchNearest(pts, x, y, radius, best, bestDist)
	}
}

// rangeQuery appends the indices of all points inside r to buf.
func (q *quadtree) rangeQuery(pts []Point, r Rect, buf []int) []int {
	if !q.bounds.Intersects(r) {
		return buf
	}
	for _, idx := range q.entries {
		if r.Contains(pts[idx].X, pts[idx].Y) {
			buf = append(buf, idx)
		}
	}
	if q.children == nil {
		return buf
	}
	for i := range q.children {
		buf = q.children[i].rangeQuery(pts, r, buf)
	}
	return buf
}
