package chartsense

import "testing"

func TestRepositionPlacement(t *testing.T) {
	view := Rect{Width: 1000, Height: 800}
	tests := []struct {
		name   string
		r      *Reposition
		x, y   float64
		hp, vp Placement
	}{
		{
			name: "default below right",
			r:    NewReposition(Vec2{X: 100, Y: 100}).Size(50, 20),
			x:    112, y: 108, hp: PlacementRight, vp: PlacementBottom,
		},
		{
			name: "centred vertically",
			r:    NewReposition(Vec2{X: 100, Y: 100}).Size(200, 100).Vertical(VAlignCenter),
			x:    112, y: 58, hp: PlacementRight, vp: PlacementCenter,
		},
		{
			name: "above",
			r:    NewReposition(Vec2{X: 100, Y: 100}).Size(50, 20).Vertical(VAlignTop),
			x:    112, y: 72, hp: PlacementRight, vp: PlacementTop,
		},
		{
			name: "left of anchor",
			r:    NewReposition(Vec2{X: 100, Y: 100}).Size(50, 20).Horizontal(HAlignRight),
			x:    38, y: 108, hp: PlacementLeft, vp: PlacementBottom,
		},
		{
			name: "centred horizontally",
			r:    NewReposition(Vec2{X: 100, Y: 100}).Size(50, 20).Horizontal(HAlignCenter),
			x:    75, y: 108, hp: PlacementCenter, vp: PlacementBottom,
		},
		{
			name: "custom gap",
			r:    NewReposition(Vec2{X: 100, Y: 100}).Size(50, 20).Gap(0, 0),
			x:    100, y: 100, hp: PlacementRight, vp: PlacementBottom,
		},
		{
			name: "flip at right edge",
			r:    NewReposition(Vec2{X: 950, Y: 100}).Size(100, 20).EdgeDetection(view),
			x:    838, y: 108, hp: PlacementLeft, vp: PlacementBottom,
		},
		{
			name: "flip at left edge",
			r:    NewReposition(Vec2{X: 50, Y: 100}).Size(100, 20).Horizontal(HAlignRight).EdgeDetection(view),
			x:    62, y: 108, hp: PlacementRight, vp: PlacementBottom,
		},
		{
			name: "neither side fits keeps preferred",
			r:    NewReposition(Vec2{X: 60, Y: 100}).Size(100, 20).EdgeDetection(Rect{Width: 150, Height: 800}),
			x:    72, y: 108, hp: PlacementRight, vp: PlacementBottom,
		},
		{
			name: "centre clamped to margin",
			r:    NewReposition(Vec2{X: 20, Y: 100}).Size(100, 20).Horizontal(HAlignCenter).EdgeDetection(view),
			x:    10, y: 108, hp: PlacementCenter, vp: PlacementBottom,
		},
		{
			name: "flip at bottom edge",
			r:    NewReposition(Vec2{X: 100, Y: 790}).Size(50, 20).EdgeDetection(view),
			x:    112, y: 762, hp: PlacementRight, vp: PlacementTop,
		},
		{
			name: "flip at top edge",
			r:    NewReposition(Vec2{X: 100, Y: 10}).Size(50, 20).Vertical(VAlignTop).EdgeDetection(view),
			x:    112, y: 18, hp: PlacementRight, vp: PlacementBottom,
		},
		{
			name: "neither vertical side fits clamps",
			r:    NewReposition(Vec2{X: 100, Y: 15}).Size(50, 20).EdgeDetection(Rect{Width: 1000, Height: 30}),
			x:    112, y: 10, hp: PlacementRight, vp: PlacementBottom,
		},
		{
			name: "edge detection off overflows",
			r:    NewReposition(Vec2{X: 950, Y: 790}).Size(100, 20),
			x:    962, y: 798, hp: PlacementRight, vp: PlacementBottom,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.r.Calculate()
			if got.X != tt.x || got.Y != tt.y {
				t.Errorf("position = (%v, %v), want (%v, %v)", got.X, got.Y, tt.x, tt.y)
			}
			if got.Placement != tt.hp || got.VerticalPlacement != tt.vp {
				t.Errorf("placement = %s/%s, want %s/%s", got.Placement, got.VerticalPlacement, tt.hp, tt.vp)
			}
			if again := tt.r.Calculate(); again != got {
				t.Errorf("second Calculate = %+v, want %+v", again, got)
			}
		})
	}
}

func TestRepositionTouch(t *testing.T) {
	tests := []struct {
		name string
		r    *Reposition
		y    float64
	}{
		{"default offset", NewReposition(Vec2{X: 100, Y: 100}).Size(50, 20).Touch(true), 60},
		{"offset clamped high", NewReposition(Vec2{X: 100, Y: 100}).Size(50, 20).Touch(true).TouchOffset(100), 48},
		{"offset clamped low", NewReposition(Vec2{X: 100, Y: 100}).Size(50, 20).Touch(true).TouchOffset(10), 68},
		{"offset ignored without touch", NewReposition(Vec2{X: 100, Y: 100}).Size(50, 20).TouchOffset(50), 108},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Calculate(); got.Y != tt.y {
				t.Errorf("y = %v, want %v", got.Y, tt.y)
			}
		})
	}
}

func TestRepositionTouchFlipKeepsOffset(t *testing.T) {
	got := NewReposition(Vec2{X: 100, Y: 50}).
		Size(50, 20).
		Touch(true).
		Vertical(VAlignTop).
		EdgeDetection(Rect{Width: 1000, Height: 800}).
		Calculate()
	// Above: 50-20-8-48 = -26 overflows; below: 58-48 = 10 fits.
	if got.Y != 10 || got.VerticalPlacement != PlacementBottom {
		t.Errorf("got %+v, want y 10 below", got)
	}
}

func TestCalculateTooltipTransform(t *testing.T) {
	tests := []struct {
		name string
		in   TooltipTransformInput
		x, y float64
	}{
		{
			name: "below right",
			in:   TooltipTransformInput{CursorX: 100, CursorY: 100, Width: 150, Height: 50, ViewportWidth: 1024, ViewportHeight: 768},
			x:    112, y: 112,
		},
		{
			name: "flip left at right edge",
			in:   TooltipTransformInput{CursorX: 900, CursorY: 100, Width: 150, Height: 50, ViewportWidth: 1024, ViewportHeight: 768},
			x:    750, y: 112,
		},
		{
			name: "flip above at bottom edge",
			in:   TooltipTransformInput{CursorX: 100, CursorY: 740, Width: 150, Height: 50, ViewportWidth: 1024, ViewportHeight: 768},
			x:    112, y: 690,
		},
		{
			name: "relative to wrapper",
			in:   TooltipTransformInput{CursorX: 100, CursorY: 100, Width: 150, Height: 50, WrapperLeft: 50, WrapperTop: 20, ViewportWidth: 1024, ViewportHeight: 768},
			x:    62, y: 92,
		},
		{
			name: "custom offset",
			in:   TooltipTransformInput{CursorX: 100, CursorY: 100, Width: 150, Height: 50, Offset: 20, ViewportWidth: 1024, ViewportHeight: 768},
			x:    120, y: 120,
		},
		{
			name: "no viewport",
			in:   TooltipTransformInput{CursorX: 5000, CursorY: 5000, Width: 150, Height: 50},
			x:    5012, y: 5012,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := CalculateTooltipTransform(tt.in)
			if x != tt.x || y != tt.y {
				t.Errorf("got (%v, %v), want (%v, %v)", x, y, tt.x, tt.y)
			}
		})
	}
}
