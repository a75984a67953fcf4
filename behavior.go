package chartsense

// drawingContext returns the chart context and its surface, or false when
// the chart has not drawn yet. Behaviors attach as no-ops in that case.
func drawingContext(ctx *Context) (*ChartContext, *Surface, bool) {
	cc, ok := ctx.ChartContext()
	if !ok || cc.Surface == nil {
		return nil, nil, false
	}
	return cc, cc.Surface, true
}

// watch calls render now and after every change to ch.
func watch(ctx *Context, ch Channel, render func()) Subscription {
	sub := ctx.Subscribe(func(c Change) {
		if c.Channel == ch {
			render()
		}
	})
	render()
	return sub
}

// targetsOf extracts the candidates an interaction points at.
func targetsOf(in Interaction) []Candidate {
	switch v := in.(type) {
	case HoverInteraction:
		return v.Targets
	case DragInteraction:
		return []Candidate{v.Target}
	case KeyboardFocus:
		return []Candidate{v.Candidate}
	}
	return nil
}

// boundTo reports whether e draws one of the targets (by tag or datum).
func boundTo(e *Element, targets []Candidate) bool {
	for _, t := range targets {
		if e.Tagged && e.Tag.SeriesID == t.SeriesID && e.Tag.DataIndex == t.DataIndex {
			return true
		}
		if e.Datum != nil && sameDatum(e.Datum, t.Data) {
			return true
		}
	}
	return false
}

func channelOr(ch, def Channel) Channel {
	if ch == "" {
		return def
	}
	return ch
}
