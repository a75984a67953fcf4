package chartsense

// SelectionSensor toggles the primary candidate's datum in a selection list
// on every pointer Start.
type SelectionSensor struct {
	// Channel defaults to ChannelSelection.
	Channel Channel
	// Single replaces the selection instead of adding to it.
	Single bool

	ctx      *Context
	selected []any
}

func (s *SelectionSensor) channel() Channel {
	if s.Channel == "" {
		return ChannelSelection
	}
	return s.Channel
}

// Selected returns the current selection. The returned slice MUST NOT be mutated.
func (s *SelectionSensor) Selected() []any {
	return s.selected
}

// Attach implements Sensor.
func (s *SelectionSensor) Attach(ctx *Context) Disposable {
	if !claimOrReport(ctx, s.channel()) {
		return noopDisposable
	}
	s.ctx = ctx
	ctx.On(EventPointerDown, s.onStart)
	return DisposeFunc(func() {
		s.selected = nil
		_ = ctx.RemoveInteraction(s.channel())
		s.ctx = nil
	})
}

func (s *SelectionSensor) onStart(ev *EngineEvent) {
	if s.ctx == nil || ev.Primary == nil {
		return
	}
	s.Toggle(ev.Primary.Data)
}

// Toggle adds datum to the selection, or removes it when already present.
func (s *SelectionSensor) Toggle(datum any) {
	if s.ctx == nil {
		return
	}
	// Copy so records already handed to subscribers never change.
	next := make([]any, 0, len(s.selected)+1)
	if i := indexOfDatum(s.selected, datum); i >= 0 {
		next = append(next, s.selected[:i]...)
		next = append(next, s.selected[i+1:]...)
	} else if s.Single {
		next = append(next, datum)
	} else {
		next = append(next, s.selected...)
		next = append(next, datum)
	}
	s.selected = next
	_ = s.ctx.UpsertInteraction(s.channel(), SelectionInteraction{Selected: next})
}

// Clear empties the selection and removes the record.
func (s *SelectionSensor) Clear() {
	if s.ctx == nil {
		return
	}
	s.selected = nil
	_ = s.ctx.RemoveInteraction(s.channel())
}
