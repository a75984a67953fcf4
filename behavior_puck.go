package chartsense

const (
	puckKey          = "puck"
	puckGhostKey     = "puck:ghost"
	puckConnectorKey = "puck:connector"
	defaultPuckSize  = 8.0
)

// DraggablePuckBehavior draws a puck at the current drag position, an
// optional ghost at the dragged datum's original position, and a connector
// between them. Everything is hidden while no drag is active.
type DraggablePuckBehavior struct {
	// Channel defaults to ChannelDrag.
	Channel Channel
	// Radius of the puck. Zero means 8.
	Radius    float64
	Ghost     bool
	Connector bool
	Color     Color
}

// Attach implements Behavior.
func (b *DraggablePuckBehavior) Attach(ctx *Context) Disposable {
	cc, surf, ok := drawingContext(ctx)
	if !ok {
		return noopDisposable
	}
	ov := surf.Overlay()
	r := b.Radius
	if r <= 0 {
		r = defaultPuckSize
	}
	color := b.Color
	if color == (Color{}) {
		color = ColorWhite
	}
	puck, _ := ov.Ensure(puckKey, ShapeCircle)
	ghost, _ := ov.Ensure(puckGhostKey, ShapeCircle)
	line, _ := ov.Ensure(puckConnectorKey, ShapeLine)
	puck.Radius, ghost.Radius = r, r
	puck.Color, ghost.Color, line.Color = color, color, color
	ghost.Alpha = 0.4
	line.Dashed = true
	ch := channelOr(b.Channel, ChannelDrag)

	render := func() {
		puck.Visible, ghost.Visible, line.Visible = false, false, false
		in, ok := ctx.GetInteraction(ch)
		if !ok {
			return
		}
		d, ok := in.(DragInteraction)
		if !ok {
			return
		}
		cx, cy := cc.Layout.PlotToContainer(d.Current.X, d.Current.Y)
		sx, sy := cc.Layout.PlotToContainer(d.Start.X, d.Start.Y)
		puck.X, puck.Y = cx, cy
		puck.Visible = true
		if b.Ghost {
			ghost.X, ghost.Y = sx, sy
			ghost.Visible = true
		}
		if b.Connector {
			line.X, line.Y, line.X2, line.Y2 = sx, sy, cx, cy
			line.Visible = true
		}
	}
	sub := watch(ctx, ch, render)
	return DisposeFunc(func() {
		sub.Unsubscribe()
		ov.Remove(puckKey)
		ov.Remove(puckGhostKey)
		ov.Remove(puckConnectorKey)
	})
}
