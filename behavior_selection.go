package chartsense

// SelectionUpdateBehavior marks elements selected or dimmed from the
// selection channel. An empty selection clears both states.
type SelectionUpdateBehavior struct {
	// Channel defaults to ChannelSelection.
	Channel Channel
	// Match selects participating marks. Nil means every tagged mark.
	Match func(*Element) bool
}

// Attach implements Behavior.
func (b *SelectionUpdateBehavior) Attach(ctx *Context) Disposable {
	_, surf, ok := drawingContext(ctx)
	if !ok {
		return noopDisposable
	}
	ch := channelOr(b.Channel, ChannelSelection)

	apply := func(fn func(*Element)) {
		surf.Marks(func(e *Element) {
			if b.Match == nil || b.Match(e) {
				fn(e)
			}
		})
	}
	render := func() {
		var sel SelectionInteraction
		if in, ok := ctx.GetInteraction(ch); ok {
			sel, _ = in.(SelectionInteraction)
		}
		if len(sel.Selected) == 0 {
			apply(func(e *Element) { e.Selected, e.Dimmed = false, false })
			return
		}
		apply(func(e *Element) {
			e.Selected = e.Datum != nil && sel.Contains(e.Datum)
			e.Dimmed = !e.Selected
		})
	}
	sub := watch(ctx, ch, render)
	return DisposeFunc(func() {
		sub.Unsubscribe()
		apply(func(e *Element) { e.Selected, e.Dimmed = false, false })
	})
}
