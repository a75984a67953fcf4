package chartsense

const injectFrameMillis = 16

// InjectSignal queues sig; queued signals are consumed one per Update. A
// zero Timestamp is replaced with the chart's clock.
func (c *Chart) InjectSignal(sig InputSignal) {
	c.injectQueue = append(c.injectQueue, sig)
}

func (c *Chart) injectPointer(a Action, x, y float64) {
	c.InjectSignal(InputSignal{Action: a, Source: SourceMouse, X: x, Y: y})
}

// InjectMove queues a mouse move at screen coordinates (x, y).
func (c *Chart) InjectMove(x, y float64) { c.injectPointer(ActionMove, x, y) }

// InjectPress queues a mouse press at screen coordinates (x, y).
func (c *Chart) InjectPress(x, y float64) { c.injectPointer(ActionStart, x, y) }

// InjectRelease queues a mouse release at screen coordinates (x, y).
func (c *Chart) InjectRelease(x, y float64) { c.injectPointer(ActionEnd, x, y) }

// InjectLeave queues a pointer leave.
func (c *Chart) InjectLeave() { c.injectPointer(ActionCancel, 0, 0) }

// InjectClick queues a press followed by a release. Consumes two frames.
func (c *Chart) InjectClick(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectKey queues a key press followed by its release. Consumes two frames.
func (c *Chart) InjectKey(key string) {
	c.InjectSignal(InputSignal{Action: ActionKey, Source: SourceKeyboard, Key: key})
	c.InjectSignal(InputSignal{Action: ActionKeyUp, Source: SourceKeyboard, Key: key})
}

// InjectDrag queues press at (fromX, fromY), frames-2 interpolated moves,
// and release at (toX, toY). Minimum frames is 2.
func (c *Chart) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		c.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	c.InjectRelease(toX, toY)
}

// PendingInjected returns the number of queued synthetic signals.
func (c *Chart) PendingInjected() int {
	return len(c.injectQueue)
}

// processInjectedInput pops one signal and feeds it to the engine.
func (c *Chart) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	sig := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	if sig.Timestamp == 0 {
		c.clock += injectFrameMillis
		sig.Timestamp = c.clock
	}
	c.HandleInput(sig)
	return true
}
