package chartsense

// Default Reposition offsets in pixels.
const (
	DefaultGapX        = 12.0
	DefaultGapY        = 8.0
	DefaultTouchOffset = 48.0
	DefaultEdgeMargin  = 10.0

	minTouchOffset = 40.0
	maxTouchOffset = 60.0
)

// HAlign selects which side of the anchor an overlay sits on.
type HAlign uint8

const (
	HAlignLeft   HAlign = iota // overlay starts at the anchor and extends right
	HAlignCenter               // overlay centred on the anchor
	HAlignRight                // overlay ends at the anchor and extends left
)

// VAlign selects where an overlay sits vertically relative to the anchor.
type VAlign uint8

const (
	VAlignBottom VAlign = iota // below the anchor
	VAlignCenter               // centred on the anchor, shifted down by the gap
	VAlignTop                  // above the anchor
)

// Placement names the side an overlay ended up on.
type Placement string

const (
	PlacementRight  Placement = "right"
	PlacementLeft   Placement = "left"
	PlacementCenter Placement = "center"
	PlacementTop    Placement = "top"
	PlacementBottom Placement = "bottom"
)

// Position is the result of Reposition.Calculate.
type Position struct {
	X, Y              float64
	Placement         Placement
	VerticalPlacement Placement
}

// Reposition computes where a floating overlay of a given size goes
// relative to an anchor point. Setters return the receiver for chaining:
//
//	pos := NewReposition(anchor).Size(w, h).EdgeDetection(vp).Calculate()
type Reposition struct {
	anchor        Vec2
	w, h          float64
	v             VAlign
	hz            HAlign
	touch         bool
	touchOffset   float64
	gapX, gapY    float64
	margin        float64
	viewport      Rect
	edgeDetection bool
}

// NewReposition returns a calculator with default gaps, touch offset, and
// margin, and edge detection off.
func NewReposition(anchor Vec2) *Reposition {
	return &Reposition{
		anchor:      anchor,
		touchOffset: DefaultTouchOffset,
		gapX:        DefaultGapX,
		gapY:        DefaultGapY,
		margin:      DefaultEdgeMargin,
	}
}

// Size sets the measured overlay size.
func (r *Reposition) Size(w, h float64) *Reposition {
	r.w, r.h = w, h
	return r
}

// Vertical sets the vertical alignment.
func (r *Reposition) Vertical(a VAlign) *Reposition {
	r.v = a
	return r
}

// Horizontal sets the horizontal alignment.
func (r *Reposition) Horizontal(a HAlign) *Reposition {
	r.hz = a
	return r
}

// Touch lifts the overlay by the touch offset so the finger does not cover
// it.
func (r *Reposition) Touch(enabled bool) *Reposition {
	r.touch = enabled
	return r
}

// TouchOffset sets the touch lift, clamped to [40, 60].
func (r *Reposition) TouchOffset(px float64) *Reposition {
	r.touchOffset = max(minTouchOffset, min(maxTouchOffset, px))
	return r
}

// Gap sets the distance between anchor and overlay.
func (r *Reposition) Gap(x, y float64) *Reposition {
	r.gapX, r.gapY = x, y
	return r
}

// EdgeDetection keeps the overlay inside viewport.
func (r *Reposition) EdgeDetection(viewport Rect) *Reposition {
	r.viewport = viewport
	r.edgeDetection = true
	return r
}

// Margin sets the clamp distance from the viewport edge used when neither
// vertical side fits.
func (r *Reposition) Margin(px float64) *Reposition {
	r.margin = px
	return r
}

// Calculate returns the overlay's top-left corner and final placement.
func (r *Reposition) Calculate() Position {
	x, hp := r.horizontal(r.hz)
	y, vp := r.vertical(r.v)
	if r.touch {
		y -= r.touchOffset
	}
	if !r.edgeDetection {
		return Position{X: x, Y: y, Placement: hp, VerticalPlacement: vp}
	}
	x, hp = r.fitHorizontal(x, hp)
	y, vp = r.fitVertical(y, vp)
	return Position{X: x, Y: y, Placement: hp, VerticalPlacement: vp}
}

func (r *Reposition) horizontal(a HAlign) (float64, Placement) {
	switch a {
	case HAlignCenter:
		return r.anchor.X - r.w/2, PlacementCenter
	case HAlignRight:
		return r.anchor.X - r.w - r.gapX, PlacementLeft
	default:
		return r.anchor.X + r.gapX, PlacementRight
	}
}

func (r *Reposition) vertical(a VAlign) (float64, Placement) {
	switch a {
	case VAlignCenter:
		return r.anchor.Y - r.h/2 + r.gapY, PlacementCenter
	case VAlignTop:
		return r.anchor.Y - r.h - r.gapY, PlacementTop
	default:
		return r.anchor.Y + r.gapY, PlacementBottom
	}
}

// fitHorizontal flips to the other side once. When the flipped side
// overflows too, the preferred side is kept.
func (r *Reposition) fitHorizontal(x float64, p Placement) (float64, Placement) {
	vp := r.viewport
	switch p {
	case PlacementRight:
		if x+r.w <= vp.Right() {
			return x, p
		}
		if fx, fp := r.horizontal(HAlignRight); fx >= vp.X {
			return fx, fp
		}
	case PlacementLeft:
		if x >= vp.X {
			return x, p
		}
		if fx, fp := r.horizontal(HAlignLeft); fx+r.w <= vp.Right() {
			return fx, fp
		}
	case PlacementCenter:
		return r.clamp(x, r.w, vp.X, vp.Right()), p
	}
	return x, p
}

// fitVertical flips once, then clamps to the margin.
func (r *Reposition) fitVertical(y float64, p Placement) (float64, Placement) {
	vp := r.viewport
	fits := func(y float64) bool { return y >= vp.Y && y+r.h <= vp.Bottom() }
	if fits(y) {
		return y, p
	}
	var flip VAlign
	switch p {
	case PlacementBottom:
		flip = VAlignTop
	case PlacementTop:
		flip = VAlignBottom
	default:
		return r.clamp(y, r.h, vp.Y, vp.Bottom()), p
	}
	fy, fp := r.vertical(flip)
	if r.touch {
		fy -= r.touchOffset
	}
	if fits(fy) {
		return fy, fp
	}
	return r.clamp(y, r.h, vp.Y, vp.Bottom()), p
}

func (r *Reposition) clamp(v, size, lo, hi float64) float64 {
	if v+size > hi-r.margin {
		v = hi - r.margin - size
	}
	if v < lo+r.margin {
		v = lo + r.margin
	}
	return v
}

// TooltipTransformInput describes a cursor-following tooltip. Cursor and
// wrapper positions share one coordinate space (usually the page); the
// result is relative to the wrapper.
type TooltipTransformInput struct {
	CursorX, CursorY float64
	Width, Height    float64
	// WrapperLeft and WrapperTop locate the tooltip's positioned parent.
	WrapperLeft, WrapperTop float64
	// ViewportWidth and ViewportHeight bound the tooltip. Zero disables
	// the check on that axis.
	ViewportWidth, ViewportHeight float64
	// Offset between cursor and tooltip. Zero means DefaultGapX.
	Offset float64
}

// CalculateTooltipTransform places a tooltip below-right of the cursor,
// flipping to the left or above when it would overflow the viewport.
func CalculateTooltipTransform(in TooltipTransformInput) (x, y float64) {
	off := in.Offset
	if off == 0 {
		off = DefaultGapX
	}
	x = in.CursorX - in.WrapperLeft + off
	if in.ViewportWidth > 0 && in.CursorX+off+in.Width > in.ViewportWidth {
		x = in.CursorX - in.WrapperLeft - in.Width
	}
	y = in.CursorY - in.WrapperTop + off
	if in.ViewportHeight > 0 && in.CursorY+off+in.Height > in.ViewportHeight {
		y = in.CursorY - in.WrapperTop - in.Height
	}
	return x, y
}
