package ebitenchart

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/chartsense"
)

const (
	dimmedAlpha = 0.35
	dashLength  = 4.0
)

var (
	selectedOutline = chartsense.Color{R: 1, G: 0.85, B: 0.2, A: 1}
	labelBackground = chartsense.Color{R: 0.08, G: 0.08, B: 0.1, A: 0.85}
)

// toRGBA converts a straight-alpha Color to premultiplied color.RGBA,
// scaled by alpha.
func toRGBA(c chartsense.Color, alpha float64) color.RGBA {
	a := clamp01(c.A * alpha)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// ContainerOrigin returns the screen position of the container padding box,
// which every surface and overlay coordinate is relative to.
func ContainerOrigin(l chartsense.Layout) chartsense.Vec2 {
	return chartsense.Vec2{X: l.Container.X + l.Border.Left, Y: l.Container.Y + l.Border.Top}
}

// DrawSurface draws the element tree, then the overlay, offset by origin.
func DrawSurface(dst *ebiten.Image, s *chartsense.Surface, origin chartsense.Vec2) {
	drawElement(dst, s.Root(), origin)
	DrawOverlay(dst, s.Overlay(), origin)
}

func drawElement(dst *ebiten.Image, e *chartsense.Element, o chartsense.Vec2) {
	if !e.Visible {
		return
	}
	alpha := e.Alpha
	if e.Dimmed {
		alpha *= dimmedAlpha
	}
	clr := toRGBA(e.Color, alpha)
	switch hs := e.HitShape.(type) {
	case chartsense.HitCircle:
		cx, cy := float32(o.X+hs.CenterX), float32(o.Y+hs.CenterY)
		vector.DrawFilledCircle(dst, cx, cy, float32(hs.Radius), clr, true)
		if e.Selected {
			vector.StrokeCircle(dst, cx, cy, float32(hs.Radius)+2, 2, toRGBA(selectedOutline, 1), true)
		}
	default:
		b := e.Bounds
		if b.Width > 0 && b.Height > 0 {
			x, y := float32(o.X+b.X), float32(o.Y+b.Y)
			vector.DrawFilledRect(dst, x, y, float32(b.Width), float32(b.Height), clr, false)
			if e.Selected {
				vector.StrokeRect(dst, x-1, y-1, float32(b.Width)+2, float32(b.Height)+2, 2, toRGBA(selectedOutline, 1), false)
			}
		}
	}
	for _, c := range e.Children() {
		drawElement(dst, c, o)
	}
}

// DrawOverlay draws every visible overlay shape in creation order.
func DrawOverlay(dst *ebiten.Image, ov *chartsense.Overlay, o chartsense.Vec2) {
	ov.Each(func(_ string, sh *chartsense.Shape) {
		if !sh.Visible || sh.Alpha <= 0 {
			return
		}
		drawShape(dst, sh, o)
	})
}

func drawShape(dst *ebiten.Image, sh *chartsense.Shape, o chartsense.Vec2) {
	clr := toRGBA(sh.Color, sh.Alpha)
	sw := float32(math.Max(1, sh.StrokeWidth))
	x, y := float32(o.X+sh.X), float32(o.Y+sh.Y)
	switch sh.Kind {
	case chartsense.ShapeLine:
		x2, y2 := float32(o.X+sh.X2), float32(o.Y+sh.Y2)
		if sh.Dashed {
			strokeDashed(dst, x, y, x2, y2, sw, clr)
		} else {
			vector.StrokeLine(dst, x, y, x2, y2, sw, clr, true)
		}
	case chartsense.ShapeCircle:
		r := float32(sh.Radius * sh.Scale)
		if r > 0 {
			vector.DrawFilledCircle(dst, x, y, r, clr, true)
		}
	case chartsense.ShapeRect:
		vector.StrokeRect(dst, x, y, float32(sh.Width), float32(sh.Height), sw, clr, false)
	case chartsense.ShapeLabel:
		vector.DrawFilledRect(dst, x, y, float32(sh.Width), float32(sh.Height), toRGBA(labelBackground, sh.Alpha), false)
		ebitenutil.DebugPrintAt(dst, sh.Text, int(x)+labelPadding, int(y)+labelPadding)
	}
}

func strokeDashed(dst *ebiten.Image, x0, y0, x1, y1, sw float32, clr color.RGBA) {
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length
	for d := float32(0); d < length; d += 2 * dashLength {
		end := min(d+dashLength, length)
		vector.StrokeLine(dst, x0+ux*d, y0+uy*d, x0+ux*end, y0+uy*end, sw, clr, true)
	}
}
