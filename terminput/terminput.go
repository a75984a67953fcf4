// Package terminput feeds terminal input from tcell into a chartsense chart.
// Mouse positions are cell coordinates scaled by the cell size, so a chart
// laid out in cells uses a cell size of 1.
package terminput

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/phanxgames/chartsense"
)

const mouseInputID = 0

// Translator converts tcell events to input signals. Terminals report only
// the current button mask, so presses and releases are found by comparing
// it with the previous event's mask.
type Translator struct {
	// CellWidth and CellHeight scale cell coordinates. Zero means 1.
	CellWidth, CellHeight float64

	prevButtons tcell.ButtonMask
}

func (t *Translator) scale() (float64, float64) {
	w, h := t.CellWidth, t.CellHeight
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return w, h
}

// Translate returns the signals ev produces. Wheel and unrelated events
// produce none.
func (t *Translator) Translate(ev tcell.Event) []chartsense.InputSignal {
	switch e := ev.(type) {
	case *tcell.EventMouse:
		return t.mouse(e)
	case *tcell.EventKey:
		if sig, ok := translateKey(e); ok {
			return []chartsense.InputSignal{sig}
		}
	}
	return nil
}

func (t *Translator) mouse(ev *tcell.EventMouse) []chartsense.InputSignal {
	buttons := ev.Buttons()
	if buttons&(tcell.WheelUp|tcell.WheelDown|tcell.WheelLeft|tcell.WheelRight) != 0 {
		return nil
	}
	prev := t.prevButtons
	t.prevButtons = buttons

	cx, cy := ev.Position()
	sw, sh := t.scale()
	sig := chartsense.InputSignal{
		ID:        mouseInputID,
		Source:    chartsense.SourceMouse,
		X:         float64(cx) * sw,
		Y:         float64(cy) * sh,
		Timestamp: ev.When().UnixMilli(),
	}
	down := buttons&tcell.Button1 != 0
	wasDown := prev&tcell.Button1 != 0
	switch {
	case down && !wasDown:
		sig.Action = chartsense.ActionStart
	case !down && wasDown:
		sig.Action = chartsense.ActionEnd
	default:
		sig.Action = chartsense.ActionMove
	}
	return []chartsense.InputSignal{sig}
}

// Leave returns the signal for the pointer leaving the chart, e.g. when the
// terminal loses focus.
func (t *Translator) Leave(ts int64) chartsense.InputSignal {
	t.prevButtons = 0
	return chartsense.InputSignal{
		ID:        mouseInputID,
		Action:    chartsense.ActionCancel,
		Source:    chartsense.SourceMouse,
		Timestamp: ts,
	}
}

// Feed translates ev and hands every signal to c. It reports whether a
// listener asked for the default action to be suppressed.
func (t *Translator) Feed(c *chartsense.Chart, ev tcell.Event) bool {
	prevented := false
	for _, sig := range t.Translate(ev) {
		if c.HandleInput(sig).DefaultPrevented {
			prevented = true
		}
	}
	return prevented
}

func translateKey(ev *tcell.EventKey) (chartsense.InputSignal, bool) {
	var name string
	switch ev.Key() {
	case tcell.KeyLeft:
		name = chartsense.KeyArrowLeft
	case tcell.KeyRight:
		name = chartsense.KeyArrowRight
	case tcell.KeyHome:
		name = chartsense.KeyHome
	case tcell.KeyEnd:
		name = chartsense.KeyEnd
	case tcell.KeyEsc:
		name = chartsense.KeyEscape
	case tcell.KeyRune:
		name = string(ev.Rune())
	default:
		return chartsense.InputSignal{}, false
	}
	return chartsense.InputSignal{
		Action:    chartsense.ActionKey,
		Source:    chartsense.SourceKeyboard,
		Key:       name,
		Timestamp: ev.When().UnixMilli(),
	}, true
}

// MeasureText returns the size of text in terminal cells: the widest line's
// display width and the line count.
func MeasureText(text string) (w, h float64) {
	lines := strings.Split(text, "\n")
	widest := 0
	for _, l := range lines {
		widest = max(widest, runewidth.StringWidth(l))
	}
	return float64(widest), float64(len(lines))
}

// Measurer adapts MeasureText for chartsense.TooltipLayer, adding pad cells
// on every side.
func Measurer(pad float64) chartsense.TextMeasurer {
	return func(text string) (float64, float64) {
		w, h := MeasureText(text)
		return w + 2*pad, h + 2*pad
	}
}
