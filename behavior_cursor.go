package chartsense

// CursorLines selects which crosshair lines the cursor draws.
type CursorLines uint8

const (
	CursorBoth       CursorLines = iota // vertical and horizontal
	CursorVertical                      // vertical only
	CursorHorizontal                    // horizontal only
)

const (
	cursorKeyX = "cursor:x"
	cursorKeyY = "cursor:y"
)

var defaultCursorColor = Color{R: 0.6, G: 0.6, B: 0.6, A: 1}

// CursorBehavior draws crosshair lines through the hover position, clipped
// to the plot area.
type CursorBehavior struct {
	// Channel defaults to ChannelHover.
	Channel Channel
	Lines   CursorLines
	// Snap places the lines on the primary target instead of the pointer.
	Snap   bool
	Color  Color
	Dashed bool
}

// Attach implements Behavior.
func (b *CursorBehavior) Attach(ctx *Context) Disposable {
	cc, surf, ok := drawingContext(ctx)
	if !ok {
		return noopDisposable
	}
	ov := surf.Overlay()
	color := b.Color
	if color == (Color{}) {
		color = defaultCursorColor
	}
	vx, _ := ov.Ensure(cursorKeyX, ShapeLine)
	hy, _ := ov.Ensure(cursorKeyY, ShapeLine)
	for _, sh := range []*Shape{vx, hy} {
		sh.Color = color
		sh.Dashed = b.Dashed
	}
	ch := channelOr(b.Channel, ChannelHover)

	render := func() {
		vx.Visible, hy.Visible = false, false
		in, ok := ctx.GetInteraction(ch)
		if !ok {
			return
		}
		x, y, ok := b.position(cc, in)
		if !ok {
			return
		}
		plot := cc.Layout.PlotRect()
		if b.Lines != CursorHorizontal {
			vx.X, vx.Y, vx.X2, vx.Y2 = x, plot.Y, x, plot.Bottom()
			vx.Visible = true
		}
		if b.Lines != CursorVertical {
			hy.X, hy.Y, hy.X2, hy.Y2 = plot.X, y, plot.Right(), y
			hy.Visible = true
		}
	}
	sub := watch(ctx, ch, render)
	return DisposeFunc(func() {
		sub.Unsubscribe()
		ov.Remove(cursorKeyX)
		ov.Remove(cursorKeyY)
	})
}

// position returns the container-relative crosshair point.
func (b *CursorBehavior) position(cc *ChartContext, in Interaction) (float64, float64, bool) {
	if h, ok := in.(HoverInteraction); ok && !b.Snap {
		return h.Pointer.ContainerX, h.Pointer.ContainerY, true
	}
	targets := targetsOf(in)
	if len(targets) == 0 {
		return 0, 0, false
	}
	x, y := cc.Layout.PlotToContainer(targets[0].Coordinate.X, targets[0].Coordinate.Y)
	return x, y, true
}
