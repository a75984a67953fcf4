package chartsense

// HoverSensor tracks the data point under the pointer on its channel.
// Keyboard-source moves (synthesized by KeyboardSensor) are accepted
// regardless of plot containment.
type HoverSensor struct {
	// Channel defaults to ChannelHover.
	Channel Channel

	ctx *Context
}

func (s *HoverSensor) channel() Channel {
	if s.Channel == "" {
		return ChannelHover
	}
	return s.Channel
}

// Attach implements Sensor.
func (s *HoverSensor) Attach(ctx *Context) Disposable {
	ch := s.channel()
	if !claimOrReport(ctx, ch) {
		return noopDisposable
	}
	s.ctx = ctx
	ctx.On(EventPointerMove, s.onMove)
	ctx.On(EventPointerLeave, s.onCancel)
	return DisposeFunc(func() {
		_ = ctx.RemoveInteraction(ch)
		s.ctx = nil
	})
}

func (s *HoverSensor) onMove(ev *EngineEvent) {
	if s.ctx == nil {
		return
	}
	src := ev.Signal.Source
	inside := ev.IsWithinPlot || src == SourceTouch || src == SourceKeyboard
	if !inside || ev.Primary == nil {
		// Touch overshoot keeps the last hover rather than flickering off.
		if src != SourceTouch || (ev.Primary == nil && ev.IsWithinPlot) {
			_ = s.ctx.RemoveInteraction(s.channel())
		}
		return
	}
	_ = s.ctx.UpsertInteraction(s.channel(), HoverInteraction{
		Pointer: ev.Coordinates(),
		Targets: []Candidate{*ev.Primary},
		Source:  src,
	})
}

func (s *HoverSensor) onCancel(ev *EngineEvent) {
	if s.ctx == nil {
		return
	}
	_ = s.ctx.RemoveInteraction(s.channel())
}
