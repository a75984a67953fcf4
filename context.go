package chartsense

import "fmt"

// ChartContext is the chart's drawing context: what rendering produced and
// how data maps to pixels. It exists only after the chart first draws.
type ChartContext struct {
	Surface *Surface
	Layout  Layout

	XScale, YScale Scale

	// Data is the primary series in display order, used for keyboard
	// navigation. X and Y read a datum's values before scaling.
	Data     []any
	X, Y     func(any) float64
	SeriesID string
}

// point returns the plot-relative position of Data[i].
func (c *ChartContext) point(i int) (Vec2, bool) {
	if i < 0 || i >= len(c.Data) || c.X == nil || c.Y == nil || c.XScale == nil || c.YScale == nil {
		return Vec2{}, false
	}
	d := c.Data[i]
	return Vec2{X: c.XScale.Map(c.X(d)), Y: c.YScale.Map(c.Y(d))}, true
}

// Sensor interprets engine events into interaction records. Sensor-local
// state lives on the implementing struct.
type Sensor interface {
	Attach(ctx *Context) Disposable
}

// Behavior applies interaction records to the surface. Disposing it resets
// the effect to neutral.
type Behavior interface {
	Attach(ctx *Context) Disposable
}

// Context is what one attached sensor or behavior sees of the chart. It
// tracks everything the attachment registered so Dispose can undo it, and
// carries the attachment's identity so channel ownership is enforced.
type Context struct {
	chart *Chart
	owner string

	handles  []ListenerHandle
	subs     []Subscription
	claims   []Channel
	disposed bool
}

func newContext(c *Chart, owner string) *Context {
	return &Context{chart: c, owner: owner}
}

// Owner returns the identity used for channel claims.
func (c *Context) Owner() string {
	return c.owner
}

// On registers fn on the chart's event bus.
func (c *Context) On(t EventType, fn Listener) ListenerHandle {
	if c.disposed {
		return ListenerHandle{}
	}
	h := c.chart.bus.On(t, fn)
	c.handles = append(c.handles, h)
	return h
}

// Off removes a registration made through On.
func (c *Context) Off(h ListenerHandle) {
	c.chart.bus.Off(h)
	for i := range c.handles {
		if c.handles[i] == h {
			c.handles = append(c.handles[:i], c.handles[i+1:]...)
			return
		}
	}
}

// Emit dispatches a synthetic event to every listener of t, synchronously.
func (c *Context) Emit(t EventType, ev *EngineEvent) {
	if c.disposed || ev == nil {
		return
	}
	c.chart.bus.Emit(t, ev)
}

// Pointer returns the bus's memoized pointer position.
func (c *Context) Pointer() (ChartCoordinates, bool) {
	return c.chart.bus.Pointer()
}

// ChartContext returns the drawing context, or false before the chart has
// drawn.
func (c *Context) ChartContext() (*ChartContext, bool) {
	cc := c.chart.chartCtx
	return cc, cc != nil
}

// Diagnostics returns the chart's debug output.
func (c *Context) Diagnostics() *Diagnostics {
	return c.chart.diag
}

// Claim makes this attachment the single writer of ch.
func (c *Context) Claim(ch Channel) error {
	if c.disposed {
		return ErrDisposed
	}
	if err := c.chart.store.Claim(ch, c.owner); err != nil {
		return err
	}
	for _, have := range c.claims {
		if have == ch {
			return nil
		}
	}
	c.claims = append(c.claims, ch)
	return nil
}

// UpsertInteraction replaces the record on a channel this attachment owns.
func (c *Context) UpsertInteraction(ch Channel, v Interaction) error {
	if c.disposed {
		return ErrDisposed
	}
	return c.chart.store.Upsert(ch, c.owner, v)
}

// RemoveInteraction deletes the record on a channel this attachment owns.
func (c *Context) RemoveInteraction(ch Channel) error {
	if c.disposed {
		return ErrDisposed
	}
	return c.chart.store.Remove(ch, c.owner)
}

// GetInteraction reads any channel.
func (c *Context) GetInteraction(ch Channel) (Interaction, bool) {
	return c.chart.store.Get(ch)
}

// Subscribe observes every store change until Dispose.
func (c *Context) Subscribe(fn func(Change)) Subscription {
	if c.disposed {
		return Subscription{}
	}
	s := c.chart.store.Subscribe(fn)
	c.subs = append(c.subs, s)
	return s
}

// Dispose removes listeners and subscriptions, clears owned channels, and
// releases claims.
func (c *Context) Dispose() {
	if c.disposed {
		return
	}
	for _, h := range c.handles {
		c.chart.bus.Off(h)
	}
	for _, s := range c.subs {
		s.Unsubscribe()
	}
	for _, ch := range c.claims {
		_ = c.chart.store.Remove(ch, c.owner)
		c.chart.store.Release(ch, c.owner)
	}
	c.handles, c.subs, c.claims = nil, nil, nil
	c.disposed = true
}

// claimOrReport claims ch and reports a conflict through diagnostics.
func claimOrReport(ctx *Context, ch Channel) bool {
	if err := ctx.Claim(ch); err != nil {
		ctx.Diagnostics().Warnf("%s not attached: %v", ctx.owner, err)
		return false
	}
	return true
}

func ownerName(v any, seq int) string {
	return fmt.Sprintf("%T#%d", v, seq)
}
