package chartsense

// keyboardInputID is the input stream ID of synthesized keyboard hover moves.
const keyboardInputID = -1

// KeyboardSensor moves a focus index through the chart's primary data with
// the arrow keys. Each move publishes the focus on its own channel and
// emits a synthetic keyboard move carrying a candidate at the focused
// point, so the hover channel's writer (HoverSensor) reflects it and every
// hover behavior works for keyboard users unchanged.
type KeyboardSensor struct {
	// Channel defaults to ChannelKeyboardFocus.
	Channel Channel

	ctx     *Context
	focused int
}

func (s *KeyboardSensor) channel() Channel {
	if s.Channel == "" {
		return ChannelKeyboardFocus
	}
	return s.Channel
}

// FocusedIndex returns the focused data index, or -1.
func (s *KeyboardSensor) FocusedIndex() int {
	if s.ctx == nil {
		return -1
	}
	return s.focused
}

// Attach implements Sensor. Without a drawing context there is no data to
// navigate and it attaches as a no-op.
func (s *KeyboardSensor) Attach(ctx *Context) Disposable {
	if _, ok := ctx.ChartContext(); !ok {
		return noopDisposable
	}
	if !claimOrReport(ctx, s.channel()) {
		return noopDisposable
	}
	s.ctx = ctx
	s.focused = -1
	ctx.On(EventKeyDown, s.onKey)
	return DisposeFunc(func() {
		s.focused = -1
		_ = ctx.RemoveInteraction(s.channel())
		s.ctx = nil
	})
}

func (s *KeyboardSensor) onKey(ev *EngineEvent) {
	cc, ok := s.ctx.ChartContext()
	if !ok {
		return
	}
	n := len(cc.Data)
	next := s.focused
	switch ev.Signal.Key {
	case KeyArrowRight:
		if s.focused < 0 {
			next = 0
		} else {
			next = s.focused + 1
		}
	case KeyArrowLeft:
		if s.focused < 0 {
			next = n - 1
		} else {
			next = s.focused - 1
		}
	case KeyHome:
		next = 0
	case KeyEnd:
		next = n - 1
	case KeyEscape:
		s.blur(ev)
		return
	default:
		return
	}
	if n == 0 {
		return
	}
	next = max(0, min(n-1, next))
	if next == s.focused || s.focus(cc, next, ev) {
		ev.PreventDefault()
	}
}

// focus moves focus to i and reports whether the datum could be positioned.
func (s *KeyboardSensor) focus(cc *ChartContext, i int, ev *EngineEvent) bool {
	pos, ok := cc.point(i)
	if !ok {
		return false
	}
	s.focused = i
	cand := Candidate{
		Type:       "point",
		Data:       cc.Data[i],
		SeriesID:   cc.SeriesID,
		DataIndex:  i,
		Coordinate: pos,
		order:      i,
	}
	_ = s.ctx.UpsertInteraction(s.channel(), KeyboardFocus{Index: i, Candidate: cand})

	cx, cy := cc.Layout.PlotToContainer(pos.X, pos.Y)
	s.ctx.Emit(EventPointerMove, &EngineEvent{
		Signal: InputSignal{
			ID: keyboardInputID, Action: ActionMove, Source: SourceKeyboard,
			Key: ev.Signal.Key, Timestamp: ev.Signal.Timestamp,
		},
		Candidates:     []Candidate{cand},
		Primary:        &cand,
		ChartX:         pos.X,
		ChartY:         pos.Y,
		ContainerX:     cx,
		ContainerY:     cy,
		IsWithinPlot:   true,
		HasCoordinates: true,
	})
	return true
}

func (s *KeyboardSensor) blur(ev *EngineEvent) {
	if s.focused < 0 {
		return
	}
	s.focused = -1
	_ = s.ctx.RemoveInteraction(s.channel())
	s.ctx.Emit(EventPointerLeave, &EngineEvent{
		Signal: InputSignal{
			ID: keyboardInputID, Action: ActionCancel, Source: SourceKeyboard,
			Key: ev.Signal.Key, Timestamp: ev.Signal.Timestamp,
		},
	})
}
