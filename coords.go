package chartsense

// ChartCoordinates holds one signal position in both chart coordinate spaces.
// IsWithinPlot is derived; sensors must not treat it as authoritative for
// drag continuation since touch may overshoot the plot slightly.
type ChartCoordinates struct {
	ContainerX, ContainerY float64 // relative to the container padding box (overlay placement)
	ChartX, ChartY         float64 // relative to the plot area (hit testing)
	IsWithinPlot           bool
}

// Layout describes the measured chart geometry that screen coordinates are
// resolved against. Container and Plot are in screen space.
type Layout struct {
	// Container is the container's bounding rectangle (border box).
	Container Rect
	Border    Insets
	Padding   Insets

	// Margins, when set, derives a virtual plot rectangle inset from the
	// padding box. Preferred over Plot: it is correct before any data renders
	// and at x=0 even when no mark touches the axis.
	Margins *Insets

	// Plot is the measured plot area rectangle. Used only when Margins is nil.
	Plot *Rect

	// Attached is false until the container is part of a rendered tree.
	Attached bool
}

// LayoutSource supplies the current Layout. ok is false while the
// container is not available.
type LayoutSource interface {
	Layout() (Layout, bool)
}

// StaticLayout is a LayoutSource that always returns itself.
type StaticLayout Layout

// Layout implements LayoutSource.
func (l StaticLayout) Layout() (Layout, bool) {
	return Layout(l), Layout(l).Attached
}

// paddingBox returns the container's padding box in screen space.
func (l Layout) paddingBox() Rect {
	return Rect{
		X:      l.Container.X + l.Border.Left,
		Y:      l.Container.Y + l.Border.Top,
		Width:  l.Container.Width - l.Border.Horizontal(),
		Height: l.Container.Height - l.Border.Vertical(),
	}
}

// PlotRect returns the plot area relative to the container padding box.
func (l Layout) PlotRect() Rect {
	pb := l.paddingBox()
	switch {
	case l.Margins != nil:
		m := *l.Margins
		return Rect{
			X:      l.Padding.Left + m.Left,
			Y:      l.Padding.Top + m.Top,
			Width:  pb.Width - l.Padding.Horizontal() - m.Horizontal(),
			Height: pb.Height - l.Padding.Vertical() - m.Vertical(),
		}
	case l.Plot != nil:
		p := *l.Plot
		return Rect{X: p.X - pb.X, Y: p.Y - pb.Y, Width: p.Width, Height: p.Height}
	default:
		return Rect{
			X:      l.Padding.Left,
			Y:      l.Padding.Top,
			Width:  pb.Width - l.Padding.Horizontal(),
			Height: pb.Height - l.Padding.Vertical(),
		}
	}
}

// Resolve converts screen coordinates into ChartCoordinates. It returns
// false when the container is detached or has no size, rather than a zeroed
// coordinate that would register as a hit at the origin.
func (l Layout) Resolve(screenX, screenY float64) (ChartCoordinates, bool) {
	if !l.Attached || l.Container.Empty() {
		return ChartCoordinates{}, false
	}
	pb := l.paddingBox()
	cx := screenX - pb.X
	cy := screenY - pb.Y

	plot := l.PlotRect()
	chartX := cx - plot.X
	chartY := cy - plot.Y
	within := chartX >= 0 && chartX <= plot.Width &&
		chartY >= 0 && chartY <= plot.Height

	return ChartCoordinates{
		ContainerX:   cx,
		ContainerY:   cy,
		ChartX:       chartX,
		ChartY:       chartY,
		IsWithinPlot: within,
	}, true
}

// PlotToContainer maps a plot-relative point into container-relative space.
func (l Layout) PlotToContainer(x, y float64) (float64, float64) {
	plot := l.PlotRect()
	return x + plot.X, y + plot.Y
}
