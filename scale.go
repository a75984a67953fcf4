package chartsense

import (
	"math"
	"reflect"
)

// Scale maps data values to plot pixels and back.
type Scale interface {
	Map(v float64) float64
	Invert(px float64) float64
}

// LinearScale maps Domain linearly onto Range.
type LinearScale struct {
	Domain [2]float64
	Range  [2]float64
	// Clamp restricts Invert to the domain.
	Clamp bool
}

// Map implements Scale.
func (s LinearScale) Map(v float64) float64 {
	d := s.Domain[1] - s.Domain[0]
	if d == 0 {
		return s.Range[0]
	}
	return s.Range[0] + (v-s.Domain[0])/d*(s.Range[1]-s.Range[0])
}

// Invert implements Scale.
func (s LinearScale) Invert(px float64) float64 {
	r := s.Range[1] - s.Range[0]
	if r == 0 {
		return s.Domain[0]
	}
	v := s.Domain[0] + (px-s.Range[0])/r*(s.Domain[1]-s.Domain[0])
	if s.Clamp {
		lo := math.Min(s.Domain[0], s.Domain[1])
		hi := math.Max(s.Domain[0], s.Domain[1])
		v = math.Max(lo, math.Min(hi, v))
	}
	return v
}

// BandScale maps category indices 0..Count-1 to the centres of equal bands
// across Range. Invert returns the index of the band containing px.
type BandScale struct {
	Count int
	Range [2]float64
}

func (s BandScale) step() float64 {
	if s.Count <= 0 {
		return 0
	}
	return (s.Range[1] - s.Range[0]) / float64(s.Count)
}

// Map implements Scale.
func (s BandScale) Map(i float64) float64 {
	return s.Range[0] + (i+0.5)*s.step()
}

// Invert implements Scale.
func (s BandScale) Invert(px float64) float64 {
	st := s.step()
	if st == 0 {
		return 0
	}
	i := math.Floor((px - s.Range[0]) / st)
	return math.Max(0, math.Min(float64(s.Count-1), i))
}

// sameDatum compares data by identity for pointers and by value for other
// comparable types. Non-comparable values never match.
func sameDatum(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

func indexOfDatum(list []any, datum any) int {
	for i, d := range list {
		if sameDatum(d, datum) {
			return i
		}
	}
	return -1
}
