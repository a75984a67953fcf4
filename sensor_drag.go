package chartsense

const defaultDragHitRadius = 20.0 // pixels

// DragAxis restricts which value components a drag changes.
type DragAxis uint8

const (
	DragBoth DragAxis = iota // X and Y follow the pointer
	DragX                    // Y stays at the datum's value
	DragY                    // X stays at the datum's value
)

// dragState is the sensor-local drag record. It reaches the store only
// while a drag is active.
type dragState struct {
	target   Candidate
	start    Vec2
	current  Vec2
	value    DragValue
	dragging bool
	input    int
}

// DragSensor moves a data point with the pointer: IDLE until a Start lands
// within HitRadius of a candidate, DRAGGING until End or Cancel. A Start
// while dragging is ignored.
type DragSensor struct {
	// Channel defaults to ChannelDrag.
	Channel Channel
	// HitRadius is the maximum candidate distance that starts a drag.
	// Zero means 20px.
	HitRadius float64
	// Axis locks the drag to one value component.
	Axis DragAxis
	// Accept, when set, filters which candidates are draggable.
	Accept func(Candidate) bool
	// OnMove is called after every drag update.
	OnMove func(DragInteraction)
	// OnEnd is called with the final value when the drag completes. It is
	// not called on cancel.
	OnEnd func(Candidate, DragValue)

	ctx   *Context
	state dragState
}

func (s *DragSensor) channel() Channel {
	if s.Channel == "" {
		return ChannelDrag
	}
	return s.Channel
}

func (s *DragSensor) hitRadius() float64 {
	if s.HitRadius > 0 {
		return s.HitRadius
	}
	return defaultDragHitRadius
}

// Dragging reports whether a drag is active.
func (s *DragSensor) Dragging() bool {
	return s.state.dragging
}

// Attach implements Sensor.
func (s *DragSensor) Attach(ctx *Context) Disposable {
	ch := s.channel()
	if !claimOrReport(ctx, ch) {
		return noopDisposable
	}
	s.ctx = ctx
	ctx.On(EventPointerDown, s.onStart)
	ctx.On(EventPointerMove, s.onMove)
	ctx.On(EventPointerUp, s.onEnd)
	ctx.On(EventPointerLeave, s.onCancel)
	return DisposeFunc(func() {
		s.reset()
		s.ctx = nil
	})
}

func (s *DragSensor) onStart(ev *EngineEvent) {
	if s.ctx == nil || s.state.dragging || ev.Primary == nil {
		return
	}
	p := *ev.Primary
	if p.Distance > s.hitRadius() || (s.Accept != nil && !s.Accept(p)) {
		return
	}
	ev.PreventDefault()
	pos := Vec2{X: ev.ChartX, Y: ev.ChartY}
	s.state = dragState{
		target:   p,
		start:    p.Coordinate,
		current:  pos,
		dragging: true,
		input:    ev.Signal.ID,
	}
	s.state.value = s.invert(pos)
	s.publish()
}

func (s *DragSensor) onMove(ev *EngineEvent) {
	if !s.active(ev) || !ev.HasCoordinates {
		return
	}
	s.state.current = Vec2{X: ev.ChartX, Y: ev.ChartY}
	s.state.value = s.invert(s.state.current)
	s.publish()
	if s.OnMove != nil {
		s.OnMove(s.interaction())
	}
}

func (s *DragSensor) onEnd(ev *EngineEvent) {
	if !s.active(ev) {
		return
	}
	if ev.HasCoordinates {
		s.state.current = Vec2{X: ev.ChartX, Y: ev.ChartY}
		s.state.value = s.invert(s.state.current)
	}
	ev.PreventDefault()
	target, value := s.state.target, s.state.value
	s.reset()
	if s.OnEnd != nil {
		s.OnEnd(target, value)
	}
}

func (s *DragSensor) onCancel(ev *EngineEvent) {
	if !s.active(ev) {
		return
	}
	s.reset()
}

// active reports whether ev belongs to the running drag.
func (s *DragSensor) active(ev *EngineEvent) bool {
	return s.ctx != nil && s.state.dragging && ev.Signal.ID == s.state.input
}

func (s *DragSensor) reset() {
	was := s.state.dragging
	s.state = dragState{}
	if was && s.ctx != nil {
		_ = s.ctx.RemoveInteraction(s.channel())
	}
}

func (s *DragSensor) publish() {
	_ = s.ctx.UpsertInteraction(s.channel(), s.interaction())
}

func (s *DragSensor) interaction() DragInteraction {
	return DragInteraction{
		Target:  s.state.target,
		Start:   s.state.start,
		Current: s.state.current,
		Value:   s.state.value,
	}
}

// invert maps a plot-relative pixel position back to data values through
// the active scales. Without scales the pixel position is returned.
func (s *DragSensor) invert(pos Vec2) DragValue {
	v := DragValue{X: pos.X, Y: pos.Y}
	if cc, ok := s.ctx.ChartContext(); ok {
		if cc.XScale != nil {
			v.X = cc.XScale.Invert(pos.X)
		}
		if cc.YScale != nil {
			v.Y = cc.YScale.Invert(pos.Y)
		}
	}
	switch s.Axis {
	case DragX, DragY:
		orig := s.datumValue()
		if s.Axis == DragX {
			v.Y = orig.Y
		} else {
			v.X = orig.X
		}
	}
	return v
}

// datumValue returns the dragged datum's unscaled values, taken from the
// chart accessors or, failing that, by inverting its coordinate.
func (s *DragSensor) datumValue() DragValue {
	t := s.state.target
	if cc, ok := s.ctx.ChartContext(); ok {
		if cc.X != nil && cc.Y != nil && t.Data != nil {
			return DragValue{X: cc.X(t.Data), Y: cc.Y(t.Data)}
		}
		v := DragValue{X: t.Coordinate.X, Y: t.Coordinate.Y}
		if cc.XScale != nil {
			v.X = cc.XScale.Invert(t.Coordinate.X)
		}
		if cc.YScale != nil {
			v.Y = cc.YScale.Invert(t.Coordinate.Y)
		}
		return v
	}
	return DragValue{X: t.Coordinate.X, Y: t.Coordinate.Y}
}
