package chartsense

import (
	"io"
	"time"
)

// Config configures a Chart. The zero value is usable: no sensors, no
// behaviors, nearest-neighbour hit testing with a 30px radius, and an
// internal LoopHost advanced by Chart.Update.
type Config struct {
	// Sensors and Behaviors are attached by Mount in this order.
	Sensors   []Sensor
	Behaviors []Behavior

	// UseElementHitTesting enables exact element matching against the
	// surface (or Locator when set).
	UseElementHitTesting bool
	Locator              ElementLocator
	SearchRadius         float64
	MatchMode            MatchMode

	// Host drives VISUAL and IDLE flushing. Nil means an internal LoopHost.
	Host Host

	// Sink, when set, receives every interaction change.
	Sink InteractionSink

	// Debug enables diagnostics on DebugOutput (default os.Stderr).
	Debug       bool
	DebugOutput io.Writer
}

type attachment struct {
	ctx  *Context
	disp Disposable
}

// Chart wires the interaction engine for one chart instance: the store,
// event bus, spatial index, scheduler, and engine, plus the attached
// sensors and behaviors. Not safe for concurrent use.
type Chart struct {
	cfg Config

	store     *Store
	bus       *EventBus
	index     *SpatialIndex
	scheduler *Scheduler
	engine    *Engine
	loop      *LoopHost
	diag      *Diagnostics

	layout   Layout
	chartCtx *ChartContext

	mounted  []attachment
	seq      int
	disposed bool

	injectQueue []InputSignal
	clock       int64
	runner      *ScriptRunner
}

// NewChart creates an unmounted chart.
func NewChart(cfg Config) *Chart {
	c := &Chart{
		cfg:   cfg,
		store: NewStore(),
		bus:   NewEventBus(),
		index: NewSpatialIndex(),
		diag:  NewDiagnostics(cfg.Debug, cfg.DebugOutput),
	}
	c.store.SetDiagnostics(c.diag)
	c.store.SetSink(cfg.Sink)
	c.index.SetDiagnostics(c.diag)
	c.index.UseElementHitTesting = cfg.UseElementHitTesting
	c.index.Locator = cfg.Locator
	c.index.SearchRadius = cfg.SearchRadius
	c.index.Mode = cfg.MatchMode

	host := cfg.Host
	if host == nil {
		c.loop = NewLoopHost()
		host = c.loop
	}
	c.scheduler = NewScheduler(host, c.dispatch)
	c.engine = NewEngine(c, c.index, c.scheduler)
	return c
}

func (c *Chart) dispatch(ev *EngineEvent) {
	c.bus.Emit(EventTypeFor(ev.Signal.Action), ev)
}

// Store returns the interaction store.
func (c *Chart) Store() *Store { return c.store }

// Bus returns the event bus.
func (c *Chart) Bus() *EventBus { return c.bus }

// Index returns the spatial index.
func (c *Chart) Index() *SpatialIndex { return c.index }

// Scheduler returns the scheduler.
func (c *Chart) Scheduler() *Scheduler { return c.scheduler }

// Engine returns the engine.
func (c *Chart) Engine() *Engine { return c.engine }

// Loop returns the internal LoopHost, or nil when Config.Host was set.
func (c *Chart) Loop() *LoopHost { return c.loop }

// Diagnostics returns the chart's debug output.
func (c *Chart) Diagnostics() *Diagnostics { return c.diag }

// SetDebugMode enables or disables diagnostics.
func (c *Chart) SetDebugMode(enabled bool) {
	c.diag.SetEnabled(enabled)
}

// Layout implements LayoutSource.
func (c *Chart) Layout() (Layout, bool) {
	return c.layout, c.layout.Attached
}

// SetLayout records the measured geometry. Call it when the container
// attaches or resizes, then refresh points with SetPoints.
func (c *Chart) SetLayout(l Layout) {
	c.layout = l
	if c.chartCtx != nil {
		c.chartCtx.Layout = l
	}
}

// SetPoints rebuilds the spatial index.
func (c *Chart) SetPoints(pts []Point) {
	c.index.SetPoints(pts)
}

// SetChartContext installs the drawing context. Mount after this so
// behaviors find a surface; before it they attach as no-ops.
func (c *Chart) SetChartContext(cc *ChartContext) {
	c.chartCtx = cc
	if cc == nil {
		return
	}
	if c.layout.Attached {
		cc.Layout = c.layout
	} else if cc.Layout.Attached {
		c.layout = cc.Layout
	}
	if c.cfg.Locator == nil && cc.Surface != nil {
		c.index.Locator = cc.Surface
	}
}

// ChartContext returns the drawing context, or nil before it is set.
func (c *Chart) ChartContext() *ChartContext {
	return c.chartCtx
}

// Mount attaches every configured sensor, then every behavior, each through
// its own Context.
func (c *Chart) Mount() {
	if c.disposed {
		return
	}
	for _, s := range c.cfg.Sensors {
		c.Attach(s)
	}
	for _, b := range c.cfg.Behaviors {
		c.Attach(b)
	}
}

// Attach attaches one sensor or behavior outside of Mount. The returned
// Disposable detaches it.
func (c *Chart) Attach(a interface{ Attach(*Context) Disposable }) Disposable {
	if c.disposed {
		return noopDisposable
	}
	c.seq++
	ctx := newContext(c, ownerName(a, c.seq))
	d := a.Attach(ctx)
	if d == nil {
		d = noopDisposable
	}
	c.mounted = append(c.mounted, attachment{ctx: ctx, disp: d})
	return DisposeFunc(func() {
		d.Dispose()
		ctx.Dispose()
	})
}

// Unmount disposes every attachment in reverse order and the scheduler.
// The chart cannot be mounted again.
func (c *Chart) Unmount() {
	if c.disposed {
		return
	}
	for i := len(c.mounted) - 1; i >= 0; i-- {
		m := c.mounted[i]
		m.disp.Dispose()
		m.ctx.Dispose()
	}
	c.mounted = nil
	c.scheduler.Dispose()
	c.disposed = true
}

// HandleInput feeds one signal to the engine.
func (c *Chart) HandleInput(sig InputSignal) Result {
	if c.disposed {
		return Result{Priority: Classify(sig.Action)}
	}
	if sig.Timestamp > c.clock {
		c.clock = sig.Timestamp
	}
	return c.engine.Process(sig)
}

// Update advances one frame: the script runner, one injected signal, the
// internal loop (frame, timers, idle), then surface tweens. dt is seconds.
func (c *Chart) Update(dt float32) {
	if c.disposed {
		return
	}
	if c.runner != nil {
		c.runner.step(c)
	}
	c.processInjectedInput()
	if c.loop != nil {
		c.loop.Frame()
		c.loop.Advance(time.Duration(float64(dt) * float64(time.Second)))
		c.loop.Idle()
	}
	if c.chartCtx != nil && c.chartCtx.Surface != nil {
		c.chartCtx.Surface.Update(dt)
	}
}
