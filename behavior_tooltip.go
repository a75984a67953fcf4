package chartsense

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const tooltipKey = "tooltip"

// TooltipBehavior draws nothing. It publishes which channel tooltips follow
// and how to render them, so a TooltipLayer renders consistently.
type TooltipBehavior struct {
	// Channel the tooltip follows. Defaults to ChannelHover.
	Channel Channel
	// Render produces the tooltip text. Nil uses DefaultTooltipText.
	Render TooltipRenderer
}

// Attach implements Behavior.
func (b *TooltipBehavior) Attach(ctx *Context) Disposable {
	if !claimOrReport(ctx, ChannelTooltipConfig) {
		return noopDisposable
	}
	render := b.Render
	if render == nil {
		render = DefaultTooltipText
	}
	_ = ctx.UpsertInteraction(ChannelTooltipConfig, TooltipConfig{
		Channel: channelOr(b.Channel, ChannelHover),
		Render:  render,
	})
	return DisposeFunc(func() {
		_ = ctx.RemoveInteraction(ChannelTooltipConfig)
	})
}

// DefaultTooltipText lists "series: value" for every target.
func DefaultTooltipText(in Interaction) string {
	if d, ok := in.(DragInteraction); ok {
		return fmt.Sprintf("%s: %.4g, %.4g", d.Target.SeriesID, d.Value.X, d.Value.Y)
	}
	var lines []string
	for _, t := range targetsOf(in) {
		lines = append(lines, fmt.Sprintf("%s: %v", t.SeriesID, t.Data))
	}
	return strings.Join(lines, "\n")
}

// TextMeasurer returns the rendered size of text in pixels (or cells).
type TextMeasurer func(text string) (w, h float64)

// MonospaceMeasurer measures text in a fixed-size glyph grid.
func MonospaceMeasurer(glyphW, lineH, pad float64) TextMeasurer {
	return func(text string) (float64, float64) {
		lines := strings.Split(text, "\n")
		widest := 0
		for _, l := range lines {
			widest = max(widest, utf8.RuneCountInString(l))
		}
		return float64(widest)*glyphW + 2*pad, float64(len(lines))*lineH + 2*pad
	}
}

// TooltipLayer renders the tooltip described by the tooltip-config channel
// as an overlay label, placed next to the pointer with Reposition and kept
// inside the container.
type TooltipLayer struct {
	// Measure sizes the text. Nil uses a 6x16 monospace grid with 4px padding.
	Measure TextMeasurer
	// Touch applies the finger-occlusion offset for touch input.
	Touch bool
}

// Attach implements Behavior.
func (l *TooltipLayer) Attach(ctx *Context) Disposable {
	cc, surf, ok := drawingContext(ctx)
	if !ok {
		return noopDisposable
	}
	measure := l.Measure
	if measure == nil {
		measure = MonospaceMeasurer(6, 16, 4)
	}
	ov := surf.Overlay()
	label, _ := ov.Ensure(tooltipKey, ShapeLabel)

	render := func() {
		label.Visible = false
		cfgIn, ok := ctx.GetInteraction(ChannelTooltipConfig)
		if !ok {
			return
		}
		cfg, ok := cfgIn.(TooltipConfig)
		if !ok || cfg.Render == nil {
			return
		}
		in, ok := ctx.GetInteraction(cfg.Channel)
		if !ok {
			return
		}
		text := cfg.Render(in)
		if text == "" {
			return
		}
		anchor, touch, ok := tooltipAnchor(cc, in)
		if !ok {
			return
		}
		w, h := measure(text)
		box := cc.Layout.paddingBox()
		pos := NewReposition(anchor).
			Size(w, h).
			Touch(touch || l.Touch).
			EdgeDetection(Rect{Width: box.Width, Height: box.Height}).
			Calculate()
		label.Text = text
		label.X, label.Y = pos.X, pos.Y
		label.Width, label.Height = w, h
		label.Visible = true
	}
	sub := ctx.Subscribe(func(c Change) {
		if c.Channel == ChannelTooltipConfig {
			render()
			return
		}
		if cfgIn, ok := ctx.GetInteraction(ChannelTooltipConfig); ok {
			if cfg, ok := cfgIn.(TooltipConfig); ok && cfg.Channel == c.Channel {
				render()
			}
		}
	})
	render()
	return DisposeFunc(func() {
		sub.Unsubscribe()
		ov.Remove(tooltipKey)
	})
}

// tooltipAnchor returns the container-relative point a tooltip follows.
func tooltipAnchor(cc *ChartContext, in Interaction) (Vec2, bool, bool) {
	switch v := in.(type) {
	case HoverInteraction:
		return Vec2{X: v.Pointer.ContainerX, Y: v.Pointer.ContainerY}, v.Source == SourceTouch, true
	case DragInteraction:
		x, y := cc.Layout.PlotToContainer(v.Current.X, v.Current.Y)
		return Vec2{X: x, Y: y}, false, true
	case KeyboardFocus:
		x, y := cc.Layout.PlotToContainer(v.Candidate.Coordinate.X, v.Candidate.Coordinate.Y)
		return Vec2{X: x, Y: y}, false, true
	}
	return Vec2{}, false, false
}
