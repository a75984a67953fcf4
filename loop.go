package chartsense

import "time"

type loopCallback struct {
	id uint32
	fn func()
}

type loopTimer struct {
	id       uint32
	deadline time.Duration
	fn       func()
}

// LoopHost is a cooperative Host driven by a game loop on a single
// goroutine. The loop calls Frame once per tick, Idle when it has spare
// time, and Advance with the elapsed time so timers fire. Nothing runs on
// another goroutine.
type LoopHost struct {
	frames []loopCallback
	idles  []loopCallback
	timers []loopTimer
	now    time.Duration
	nextID uint32
}

// NewLoopHost returns an empty LoopHost.
func NewLoopHost() *LoopHost {
	return &LoopHost{}
}

// RequestFrame implements Host.
func (h *LoopHost) RequestFrame(fn func()) CancelFunc {
	h.nextID++
	id := h.nextID
	h.frames = append(h.frames, loopCallback{id: id, fn: fn})
	return func() { h.frames = removeLoopCallback(h.frames, id) }
}

// RequestIdle implements IdleHost.
func (h *LoopHost) RequestIdle(fn func()) CancelFunc {
	h.nextID++
	id := h.nextID
	h.idles = append(h.idles, loopCallback{id: id, fn: fn})
	return func() { h.idles = removeLoopCallback(h.idles, id) }
}

// AfterFunc implements TimerHost against the loop's own clock.
func (h *LoopHost) AfterFunc(d time.Duration, fn func()) CancelFunc {
	h.nextID++
	id := h.nextID
	h.timers = append(h.timers, loopTimer{id: id, deadline: h.now + d, fn: fn})
	return func() {
		for i := range h.timers {
			if h.timers[i].id == id {
				h.timers = append(h.timers[:i], h.timers[i+1:]...)
				return
			}
		}
	}
}

// Frame runs the frame callbacks requested before this call. Callbacks
// requested while running wait for the next Frame.
func (h *LoopHost) Frame() {
	pending := h.frames
	h.frames = nil
	for _, cb := range pending {
		cb.fn()
	}
}

// Idle runs the idle callbacks requested before this call.
func (h *LoopHost) Idle() {
	pending := h.idles
	h.idles = nil
	for _, cb := range pending {
		cb.fn()
	}
}

// Advance moves the loop clock forward by dt and fires every due timer in
// deadline order.
func (h *LoopHost) Advance(dt time.Duration) {
	h.now += dt
	for {
		due := -1
		for i, t := range h.timers {
			if t.deadline <= h.now && (due < 0 || t.deadline < h.timers[due].deadline) {
				due = i
			}
		}
		if due < 0 {
			return
		}
		t := h.timers[due]
		h.timers = append(h.timers[:due], h.timers[due+1:]...)
		t.fn()
	}
}

// Pending reports how many frame, idle, and timer callbacks are waiting.
func (h *LoopHost) Pending() (frames, idles, timers int) {
	return len(h.frames), len(h.idles), len(h.timers)
}

func removeLoopCallback(s []loopCallback, id uint32) []loopCallback {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = loopCallback{}
			return s[:len(s)-1]
		}
	}
	return s
}

// FrameOnlyHost wraps a Host so it exposes neither an idle window nor
// timers; IDLE tasks then wait for an explicit FlushIdle. Useful for hosts
// that must not run work outside a frame.
type FrameOnlyHost struct {
	Host
}

// TimerOnlyHost adapts a LoopHost so IDLE work uses the timer fallback
// instead of the idle window.
type TimerOnlyHost struct {
	Loop *LoopHost
}

// RequestFrame implements Host.
func (h TimerOnlyHost) RequestFrame(fn func()) CancelFunc { return h.Loop.RequestFrame(fn) }

// AfterFunc implements TimerHost.
func (h TimerOnlyHost) AfterFunc(d time.Duration, fn func()) CancelFunc {
	return h.Loop.AfterFunc(d, fn)
}
