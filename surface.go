package chartsense

import "sort"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default shape color.
var ColorWhite = Color{1, 1, 1, 1}

// HitShape is a custom hit region in container-relative coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// elementIDCounter is a plain counter; elements are built on one goroutine.
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// Element is a rendered chart element as the interaction layer sees it:
// where it is, which datum it draws, and the visual state behaviors set on
// it. Drawing code owns the tree; behaviors only touch Alpha, Selected, and
// Dimmed.
type Element struct {
	ID   uint32
	Name string

	// Tag identifies what the element draws. Only tagged elements are
	// returned by hit tests.
	Tag    ElementTag
	Tagged bool
	// Datum is the bound data value, compared by identity for pointers.
	Datum any

	// Bounds is the container-relative box used when HitShape is nil.
	Bounds   Rect
	HitShape HitShape

	Alpha    float64
	Visible  bool
	Selected bool
	Dimmed   bool
	Color    Color
	ZIndex   int

	Parent   *Element
	children []*Element
	disposed bool
}

func elementDefaults(e *Element) {
	e.ID = nextElementID()
	e.Alpha = 1
	e.Visible = true
	e.Color = ColorWhite
}

// NewGroup creates an untagged container element.
func NewGroup(name string) *Element {
	e := &Element{Name: name}
	elementDefaults(e)
	return e
}

// NewMark creates a tagged element drawing datum.
func NewMark(name string, tag ElementTag, bounds Rect, datum any) *Element {
	e := &Element{Name: name, Tag: tag, Tagged: true, Bounds: bounds, Datum: datum}
	elementDefaults(e)
	return e
}

// AddChild appends child to e's children, reparenting it if needed.
// Panics if child is nil or an ancestor of e.
func (e *Element) AddChild(child *Element) {
	if child == nil {
		panic("chartsense: cannot add nil child")
	}
	if isAncestorElement(child, e) {
		panic("chartsense: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child from e. Panics if child.Parent != e.
func (e *Element) RemoveChild(child *Element) {
	if child.Parent != e {
		panic("chartsense: child's parent is not this element")
	}
	e.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches e. No-op without a parent.
func (e *Element) RemoveFromParent() {
	if e.Parent == nil {
		return
	}
	e.Parent.RemoveChild(e)
}

// RemoveChildren detaches every child. Children are NOT disposed.
func (e *Element) RemoveChildren() {
	for _, c := range e.children {
		c.Parent = nil
	}
	e.children = e.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (e *Element) Children() []*Element {
	return e.children
}

// Dispose detaches e and releases its subtree.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	e.RemoveFromParent()
	e.dispose()
}

func (e *Element) dispose() {
	e.disposed = true
	e.ID = 0
	for _, c := range e.children {
		c.Parent = nil
		c.dispose()
	}
	e.children = nil
	e.HitShape = nil
	e.Datum = nil
}

// IsDisposed reports whether Dispose was called.
func (e *Element) IsDisposed() bool {
	return e.disposed
}

// Contains reports whether the container-relative point hits e.
func (e *Element) Contains(x, y float64) bool {
	if e.HitShape != nil {
		return e.HitShape.Contains(x, y)
	}
	if e.Bounds.Width == 0 && e.Bounds.Height == 0 {
		return false
	}
	return e.Bounds.Contains(x, y)
}

func isAncestorElement(candidate, e *Element) bool {
	for p := e; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

func (e *Element) removeChildByPtr(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}

// Surface is the chart's rendered state: the element tree drawing code
// maintains, the overlay behaviors draw into, and the active tweens.
type Surface struct {
	root    *Element
	overlay *Overlay
	tweens  map[string]*TweenGroup
	hitBuf  []*Element
}

// NewSurface returns a surface with an empty root group and overlay.
func NewSurface() *Surface {
	return &Surface{
		root:    NewGroup("root"),
		overlay: newOverlay(),
		tweens:  make(map[string]*TweenGroup),
	}
}

// Root returns the root element.
func (s *Surface) Root() *Element {
	return s.root
}

// Overlay returns the overlay layer.
func (s *Surface) Overlay() *Overlay {
	return s.overlay
}

// collect walks the tree in painter order (DFS, ZIndex-stable-sorted),
// appending visible elements to buf.
func collectElements(e *Element, buf []*Element) []*Element {
	if !e.Visible {
		return buf
	}
	buf = append(buf, e)
	if len(e.children) == 0 {
		return buf
	}
	children := e.children
	if !sort.SliceIsSorted(children, func(i, j int) bool { return children[i].ZIndex < children[j].ZIndex }) {
		children = append([]*Element(nil), children...)
		sort.SliceStable(children, func(i, j int) bool { return children[i].ZIndex < children[j].ZIndex })
	}
	for _, c := range children {
		buf = collectElements(c, buf)
	}
	return buf
}

// ElementsAt implements ElementLocator: tags of every visible tagged
// element under the container-relative point, topmost first.
func (s *Surface) ElementsAt(x, y float64) []ElementTag {
	s.hitBuf = collectElements(s.root, s.hitBuf[:0])
	var tags []ElementTag
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		e := s.hitBuf[i]
		if e.Tagged && e.Contains(x, y) {
			tags = append(tags, e.Tag)
		}
	}
	return tags
}

// Marks calls fn for every tagged element in painter order, including
// hidden ones.
func (s *Surface) Marks(fn func(*Element)) {
	var walk func(*Element)
	walk = func(e *Element) {
		if e.Tagged {
			fn(e)
		}
		for _, c := range e.children {
			walk(c)
		}
	}
	walk(s.root)
}

// Animate runs g under key, replacing any tween already running under it.
func (s *Surface) Animate(key string, g *TweenGroup) {
	s.tweens[key] = g
}

// StopAnimation cancels the tween under key, leaving fields where they are.
func (s *Surface) StopAnimation(key string) {
	delete(s.tweens, key)
}

// Animating reports whether a tween runs under key.
func (s *Surface) Animating(key string) bool {
	_, ok := s.tweens[key]
	return ok
}

// Update advances every active tween by dt seconds and drops finished ones.
func (s *Surface) Update(dt float32) {
	for k, g := range s.tweens {
		g.Update(dt)
		if g.Done {
			delete(s.tweens, k)
		}
	}
}
