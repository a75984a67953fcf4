package ebitenchart

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/chartsense"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// keyNames maps the ebiten keys charts react to onto signal key names.
var keyNames = map[ebiten.Key]string{
	ebiten.KeyArrowLeft:  chartsense.KeyArrowLeft,
	ebiten.KeyArrowRight: chartsense.KeyArrowRight,
	ebiten.KeyHome:       chartsense.KeyHome,
	ebiten.KeyEnd:        chartsense.KeyEnd,
	ebiten.KeyEscape:     chartsense.KeyEscape,
}

type pointerState struct {
	down   bool
	inside bool
	seen   bool
	lastX  float64
	lastY  float64
}

// tracker turns per-frame pointer samples into input signals. It holds no
// ebiten state so it can be driven directly.
type tracker struct {
	pointers [maxPointers]pointerState
	bounds   chartsense.Rect
}

// sample runs the state machine for one pointer. x, y are screen pixels.
func (t *tracker) sample(id int, src chartsense.Source, x, y float64, pressed bool, ts int64, emit func(chartsense.InputSignal)) {
	ps := &t.pointers[id]
	sig := chartsense.InputSignal{ID: id, Source: src, X: x, Y: y, Timestamp: ts}
	inside := t.bounds.Empty() || t.bounds.Contains(x, y)

	switch {
	case pressed && !ps.down:
		ps.down = true
		sig.Action = chartsense.ActionStart
		emit(sig)
	case !pressed && ps.down:
		ps.down = false
		sig.Action = chartsense.ActionEnd
		emit(sig)
	case x != ps.lastX || y != ps.lastY || !ps.seen:
		if !inside && !ps.down {
			// Hovering outside the window: one leave, then silence.
			if ps.inside {
				sig.Action = chartsense.ActionCancel
				emit(sig)
			}
			break
		}
		sig.Action = chartsense.ActionMove
		emit(sig)
	}
	ps.inside = inside
	ps.seen = true
	ps.lastX, ps.lastY = x, y
}

// release ends a pointer that disappeared (a lifted touch). A touch that
// was pressed ends where it was last seen, then leaves.
func (t *tracker) release(id int, src chartsense.Source, ts int64, emit func(chartsense.InputSignal)) {
	ps := &t.pointers[id]
	sig := chartsense.InputSignal{ID: id, Source: src, X: ps.lastX, Y: ps.lastY, Timestamp: ts}
	if ps.down {
		sig.Action = chartsense.ActionEnd
		emit(sig)
	}
	if ps.seen {
		sig.Action = chartsense.ActionCancel
		emit(sig)
	}
	*ps = pointerState{}
}

// Input polls ebiten's mouse, touch, and keyboard state each tick and feeds
// the resulting signals to a chart.
type Input struct {
	tracker

	touchMap  [maxPointers]ebiten.TouchID
	touchUsed [maxPointers]bool
	touchBuf  []ebiten.TouchID
	keyBuf    []ebiten.Key
}

// SetBounds limits mouse hover to the given screen rectangle; moving out of
// it produces a leave. An empty rectangle disables the check.
func (in *Input) SetBounds(r chartsense.Rect) {
	in.bounds = r
}

// Poll samples the current input state and delivers every signal to c.
func (in *Input) Poll(c *chartsense.Chart, ts int64) {
	emit := func(sig chartsense.InputSignal) { c.HandleInput(sig) }

	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.sample(0, chartsense.SourceMouse, float64(mx), float64(my), pressed, ts, emit)

	in.pollTouches(ts, emit)
	in.pollKeys(ts, emit)
}

func (in *Input) pollTouches(ts int64, emit func(chartsense.InputSignal)) {
	in.touchBuf = ebiten.AppendTouchIDs(in.touchBuf[:0])

	var active [maxPointers]bool
	for _, tid := range in.touchBuf {
		slot := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		in.sample(slot, chartsense.SourceTouch, float64(tx), float64(ty), true, ts, emit)
	}

	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && !active[i] {
			in.release(i, chartsense.SourceTouch, ts, emit)
			in.touchUsed[i] = false
			in.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (in *Input) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i
		}
	}
	return -1
}

func (in *Input) pollKeys(ts int64, emit func(chartsense.InputSignal)) {
	in.keyBuf = inpututil.AppendJustPressedKeys(in.keyBuf[:0])
	for _, k := range in.keyBuf {
		if name, ok := keyNames[k]; ok {
			emit(chartsense.InputSignal{Action: chartsense.ActionKey, Source: chartsense.SourceKeyboard, Key: name, Timestamp: ts})
		}
	}
	in.keyBuf = inpututil.AppendJustReleasedKeys(in.keyBuf[:0])
	for _, k := range in.keyBuf {
		if name, ok := keyNames[k]; ok {
			emit(chartsense.InputSignal{Action: chartsense.ActionKeyUp, Source: chartsense.SourceKeyboard, Key: name, Timestamp: ts})
		}
	}
}
