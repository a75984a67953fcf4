package chartsense

import "github.com/tanema/gween/ease"

const (
	markerKeyPrefix     = "marker:"
	defaultMarkerRadius = 4.0
	defaultMarkerEntry  = 0.15 // seconds
)

// MarkersBehavior draws one marker per active target, keyed by series ID.
// Keys are stable, so a marker that stays active moves instead of being
// re-created, and the entry animation runs only for new series.
type MarkersBehavior struct {
	// Channel defaults to ChannelHover.
	Channel Channel
	// Radius in pixels. Zero means 4.
	Radius float64
	// EntryDuration of the grow-in animation in seconds. Zero means 0.15;
	// negative disables it.
	EntryDuration float32
	// MoveDuration glides a marker that stays active to its new target, in
	// seconds. Zero snaps.
	MoveDuration float32
	// Palette colors markers per series; missing series use Color.
	Palette map[string]Color
	Color   Color
}

func (b *MarkersBehavior) radius() float64 {
	if b.Radius > 0 {
		return b.Radius
	}
	return defaultMarkerRadius
}

func (b *MarkersBehavior) entry() float32 {
	switch {
	case b.EntryDuration < 0:
		return 0
	case b.EntryDuration == 0:
		return defaultMarkerEntry
	}
	return b.EntryDuration
}

func (b *MarkersBehavior) color(series string) Color {
	if c, ok := b.Palette[series]; ok {
		return c
	}
	if b.Color != (Color{}) {
		return b.Color
	}
	return ColorWhite
}

// MarkerKey returns the overlay key of the marker for a series.
func MarkerKey(seriesID string) string {
	return markerKeyPrefix + seriesID
}

// Attach implements Behavior.
func (b *MarkersBehavior) Attach(ctx *Context) Disposable {
	cc, surf, ok := drawingContext(ctx)
	if !ok {
		return noopDisposable
	}
	ov := surf.Overlay()
	ch := channelOr(b.Channel, ChannelHover)

	render := func() {
		var targets []Candidate
		if in, ok := ctx.GetInteraction(ch); ok {
			targets = targetsOf(in)
		}
		live := make(map[string]bool, len(targets))
		for _, t := range targets {
			key := MarkerKey(t.SeriesID)
			if live[key] {
				continue
			}
			live[key] = true
			sh, created := ov.Ensure(key, ShapeCircle)
			x, y := cc.Layout.PlotToContainer(t.Coordinate.X, t.Coordinate.Y)
			if !created && b.MoveDuration > 0 && (sh.X != x || sh.Y != y) {
				surf.Animate(markerMoveKey(key), TweenShapePosition(sh, x, y, b.MoveDuration, ease.OutQuad))
			} else {
				surf.StopAnimation(markerMoveKey(key))
				sh.X, sh.Y = x, y
			}
			sh.Radius = b.radius()
			sh.Color = b.color(t.SeriesID)
			sh.Visible = true
			if created && b.entry() > 0 {
				surf.Animate(key, TweenShapeScale(sh, 0, 1, b.entry(), ease.OutBack))
			}
		}
		for _, key := range ov.Keys(markerKeyPrefix) {
			if !live[key] {
				surf.StopAnimation(key)
				surf.StopAnimation(markerMoveKey(key))
				ov.Remove(key)
			}
		}
	}
	sub := watch(ctx, ch, render)
	return DisposeFunc(func() {
		sub.Unsubscribe()
		for _, key := range ov.Keys(markerKeyPrefix) {
			surf.StopAnimation(key)
			surf.StopAnimation(markerMoveKey(key))
			ov.Remove(key)
		}
	})
}

func markerMoveKey(key string) string {
	return key + ":move"
}
