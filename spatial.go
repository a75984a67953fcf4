package chartsense

import (
	"math"
	"sort"
)

const defaultSearchRadius = 30.0 // pixels

// Point is a registered data point in plot-relative coordinates.
type Point struct {
	X, Y      float64
	Data      any
	SeriesID  string
	DataIndex int
	Kind      MarkKind
}

// Candidate is a hypothesis that an input targets a specific data point.
// Candidates are recomputed per signal and never persisted.
type Candidate struct {
	Type       string // "point" or "bar"
	Data       any
	SeriesID   string
	DataIndex  int
	Coordinate Vec2 // plot-relative position of the point
	Distance   float64

	order int // registration order, for tie-breaking
}

// ElementTag is the metadata carried by a rendered mark: what it is, which
// series it belongs to, and which datum it draws.
type ElementTag struct {
	Kind      MarkKind
	SeriesID  string
	DataIndex int
}

// ElementLocator answers "which tagged elements are under this point".
// Coordinates are container-relative: element geometry does not depend on
// the plot margin, so plot-relative coordinates would miss by the margin.
// Results are topmost first.
type ElementLocator interface {
	ElementsAt(containerX, containerY float64) []ElementTag
}

// MatchMode selects how many quadtree candidates a query produces.
type MatchMode uint8

const (
	MatchSharedX MatchMode = iota // nearest point plus every point sharing its x
	MatchNearest                  // nearest point only
)

// Query is a hit-test request in both coordinate spaces.
type Query struct {
	ChartX, ChartY         float64
	ContainerX, ContainerY float64
}

type pointKey struct {
	kind      MarkKind
	seriesID  string
	dataIndex int
}

// SpatialIndex resolves positions to candidates by combining exact element
// matching with a quadtree nearest-neighbour search.
type SpatialIndex struct {
	// UseElementHitTesting enables exact matching through Locator.
	UseElementHitTesting bool
	// Locator answers element queries. Nil disables exact matching.
	Locator ElementLocator
	// SearchRadius bounds the nearest-neighbour search. Zero means 30px.
	SearchRadius float64
	// Mode selects single or shared-x candidates for the quadtree search.
	Mode MatchMode

	points []Point
	lookup map[pointKey]int
	tree   *quadtree
	diag   *Diagnostics
	buf    []int
}

// NewSpatialIndex returns an empty index.
func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{lookup: make(map[pointKey]int)}
}

// SetDiagnostics routes discard/ambiguity diagnostics to d.
func (s *SpatialIndex) SetDiagnostics(d *Diagnostics) {
	s.diag = d
}

// SetPoints replaces every registered point and rebuilds the tree. Call it
// whenever the data set changes or the container resizes.
func (s *SpatialIndex) SetPoints(pts []Point) {
	s.points = append(s.points[:0], pts...)
	s.lookup = make(map[pointKey]int, len(pts))
	for i, p := range s.points {
		k := pointKey{p.Kind, p.SeriesID, p.DataIndex}
		if _, dup := s.lookup[k]; dup {
			s.diag.Warnf("duplicate point %s[%d] registered; keeping the first", p.SeriesID, p.DataIndex)
			continue
		}
		s.lookup[k] = i
	}
	s.tree = newQuadtree(boundsOf(s.points))
	for i := range s.points {
		s.tree.insert(s.points, i)
	}
}

// Len returns the number of registered points.
func (s *SpatialIndex) Len() int {
	return len(s.points)
}

// Points returns the registered points. The returned slice MUST NOT be mutated.
func (s *SpatialIndex) Points() []Point {
	return s.points
}

// Lookup returns the registered point for (kind, seriesID, dataIndex).
func (s *SpatialIndex) Lookup(kind MarkKind, seriesID string, dataIndex int) (Point, bool) {
	i, ok := s.lookup[pointKey{kind, seriesID, dataIndex}]
	if !ok {
		return Point{}, false
	}
	return s.points[i], true
}

func (s *SpatialIndex) radius() float64 {
	if s.SearchRadius > 0 {
		return s.SearchRadius
	}
	return defaultSearchRadius
}

// Find returns the candidates for q ordered by distance, ties by
// registration order. Exact element matches, when any survive validation,
// are returned on their own.
func (s *SpatialIndex) Find(q Query) []Candidate {
	if s.UseElementHitTesting && s.Locator != nil {
		if exact := s.findExact(q); len(exact) > 0 {
			return exact
		}
	}
	return s.findNearest(q)
}

// findExact cross-references element tags against registered points. A tag
// with no registered point is a ghost from an earlier render and is dropped.
func (s *SpatialIndex) findExact(q Query) []Candidate {
	tags := s.Locator.ElementsAt(q.ContainerX, q.ContainerY)
	if len(tags) == 0 {
		return nil
	}
	var out []Candidate
	seen := make(map[int]bool, len(tags))
	for _, tag := range tags {
		if tag.Kind == MarkGroup {
			s.diag.Logf("ambiguous element match on series %q treated as absent", tag.SeriesID)
			continue
		}
		i, ok := s.lookup[pointKey{tag.Kind, tag.SeriesID, tag.DataIndex}]
		if !ok {
			s.diag.Logf("discarding element match %s[%d] (%s): not in spatial index",
				tag.SeriesID, tag.DataIndex, markTypeName(tag.Kind))
			continue
		}
		if seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, s.candidate(i, q.ChartX, q.ChartY))
	}
	sortCandidates(out)
	return out
}

func (s *SpatialIndex) findNearest(q Query) []Candidate {
	if s.tree == nil || len(s.points) == 0 {
		return nil
	}
	r := s.radius()
	best, _ := s.tree.nearest(s.points, q.ChartX, q.ChartY, r)
	if best < 0 {
		return nil
	}
	if s.Mode == MatchNearest {
		return []Candidate{s.candidate(best, q.ChartX, q.ChartY)}
	}

	// Every point in the same column as the nearest one, within the vertical
	// extent of the data.
	bx := s.points[best].X
	b := s.tree.bounds
	s.buf = s.tree.rangeQuery(s.points, Rect{X: bx, Y: b.Y, Width: 0, Height: b.Height}, s.buf[:0])
	out := make([]Candidate, 0, len(s.buf))
	for _, i := range s.buf {
		if s.points[i].X != bx {
			continue
		}
		out = append(out, s.candidate(i, q.ChartX, q.ChartY))
	}
	sortCandidates(out)
	return out
}

func (s *SpatialIndex) candidate(i int, x, y float64) Candidate {
	p := s.points[i]
	return Candidate{
		Type:       markTypeName(p.Kind),
		Data:       p.Data,
		SeriesID:   p.SeriesID,
		DataIndex:  p.DataIndex,
		Coordinate: Vec2{X: p.X, Y: p.Y},
		Distance:   math.Hypot(p.X-x, p.Y-y),
		order:      i,
	}
}

func markTypeName(k MarkKind) string {
	switch k {
	case MarkBar:
		return "bar"
	case MarkGroup:
		return "group"
	default:
		return "point"
	}
}

func sortCandidates(c []Candidate) {
	sort.SliceStable(c, func(i, j int) bool {
		if c[i].Distance != c[j].Distance {
			return c[i].Distance < c[j].Distance
		}
		return c[i].order < c[j].order
	})
}

// primaryCandidate returns the minimum-distance candidate; ties go to the
// earliest registered point.
func primaryCandidate(c []Candidate) (Candidate, bool) {
	if len(c) == 0 {
		return Candidate{}, false
	}
	best := 0
	for i := 1; i < len(c); i++ {
		if c[i].Distance < c[best].Distance ||
			(c[i].Distance == c[best].Distance && c[i].order < c[best].order) {
			best = i
		}
	}
	return c[best], true
}
