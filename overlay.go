package chartsense

import "strings"

// ShapeKind selects how an overlay Shape is drawn.
type ShapeKind uint8

const (
	ShapeLine   ShapeKind = iota // segment from (X, Y) to (X2, Y2)
	ShapeCircle                  // circle at (X, Y) with Radius
	ShapeRect                    // box at (X, Y) sized Width x Height
	ShapeLabel                   // text box at (X, Y) sized Width x Height
)

// Shape is one overlay primitive in container-relative coordinates.
type Shape struct {
	Kind ShapeKind

	X, Y          float64
	X2, Y2        float64
	Radius        float64
	Width, Height float64
	Text          string

	Color       Color
	Alpha       float64
	Scale       float64
	StrokeWidth float64
	Dashed      bool
	Visible     bool
}

// Overlay holds the shapes behaviors draw above the chart, keyed by name.
// Keys are stable across updates so a re-render never re-creates a shape
// that already exists.
type Overlay struct {
	shapes map[string]*Shape
	order  []string
}

func newOverlay() *Overlay {
	return &Overlay{shapes: make(map[string]*Shape)}
}

// Ensure returns the shape under key, creating a hidden one of kind k when
// absent. created reports whether it was new.
func (o *Overlay) Ensure(key string, k ShapeKind) (shape *Shape, created bool) {
	if sh, ok := o.shapes[key]; ok {
		return sh, false
	}
	sh := &Shape{Kind: k, Color: ColorWhite, Alpha: 1, Scale: 1, StrokeWidth: 1}
	o.shapes[key] = sh
	o.order = append(o.order, key)
	return sh, true
}

// Get returns the shape under key.
func (o *Overlay) Get(key string) (*Shape, bool) {
	sh, ok := o.shapes[key]
	return sh, ok
}

// Remove deletes the shape under key.
func (o *Overlay) Remove(key string) {
	if _, ok := o.shapes[key]; !ok {
		return
	}
	delete(o.shapes, key)
	for i, k := range o.order {
		if k == key {
			o.order = append(o.order[:i], o.order[i+1:]...)
			return
		}
	}
}

// Keys returns the keys beginning with prefix, in creation order.
func (o *Overlay) Keys(prefix string) []string {
	var out []string
	for _, k := range o.order {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	return out
}

// Each calls fn for every shape in creation order.
func (o *Overlay) Each(fn func(key string, sh *Shape)) {
	for _, k := range o.order {
		fn(k, o.shapes[k])
	}
}

// Len returns the number of shapes.
func (o *Overlay) Len() int {
	return len(o.order)
}
