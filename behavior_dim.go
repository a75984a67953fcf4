package chartsense

import (
	"strconv"

	"github.com/tanema/gween/ease"
)

const defaultDimOpacity = 0.3

// DimBehavior fades every matching mark except the ones bound to the active
// interaction's targets. With nothing active all marks return to full
// opacity.
type DimBehavior struct {
	// Channel defaults to ChannelHover.
	Channel Channel
	// Opacity of dimmed marks. Zero means 0.3.
	Opacity float64
	// Duration of the fade in seconds. Zero applies instantly.
	Duration float32
	// BySeries keeps every mark of an active target's series at full opacity.
	BySeries bool
	// Match selects participating marks. Nil means every tagged mark.
	Match func(*Element) bool
}

func (b *DimBehavior) opacity() float64 {
	if b.Opacity > 0 {
		return b.Opacity
	}
	return defaultDimOpacity
}

// Attach implements Behavior.
func (b *DimBehavior) Attach(ctx *Context) Disposable {
	_, surf, ok := drawingContext(ctx)
	if !ok {
		return noopDisposable
	}
	ch := channelOr(b.Channel, ChannelHover)

	render := func() {
		var targets []Candidate
		if in, ok := ctx.GetInteraction(ch); ok {
			targets = targetsOf(in)
		}
		surf.Marks(func(e *Element) {
			if b.Match != nil && !b.Match(e) {
				return
			}
			alpha := 1.0
			if len(targets) > 0 && !b.active(e, targets) {
				alpha = b.opacity()
			}
			b.setAlpha(surf, e, alpha)
		})
	}
	sub := watch(ctx, ch, render)
	return DisposeFunc(func() {
		sub.Unsubscribe()
		surf.Marks(func(e *Element) {
			if b.Match != nil && !b.Match(e) {
				return
			}
			surf.StopAnimation(dimTweenKey(e))
			e.Alpha = 1
		})
	})
}

func (b *DimBehavior) active(e *Element, targets []Candidate) bool {
	if b.BySeries {
		for _, t := range targets {
			if e.Tag.SeriesID == t.SeriesID {
				return true
			}
		}
	}
	return boundTo(e, targets)
}

func (b *DimBehavior) setAlpha(surf *Surface, e *Element, alpha float64) {
	key := dimTweenKey(e)
	if b.Duration <= 0 {
		surf.StopAnimation(key)
		e.Alpha = alpha
		return
	}
	if e.Alpha == alpha && !surf.Animating(key) {
		return
	}
	surf.Animate(key, TweenElementAlpha(e, alpha, b.Duration, ease.OutQuad))
}

func dimTweenKey(e *Element) string {
	return "dim:" + strconv.FormatUint(uint64(e.ID), 10)
}
