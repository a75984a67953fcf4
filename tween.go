package chartsense

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Register it
// with Surface.Animate; Surface.Update advances it.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenField animates *field to the target value.
func TweenField(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[0] = field
	return g
}

// TweenElementAlpha animates e.Alpha to the target value.
func TweenElementAlpha(e *Element, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return TweenField(&e.Alpha, to, duration, fn)
}

// TweenShapeScale animates sh.Scale from `from` to `to`.
func TweenShapeScale(sh *Shape, from, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	sh.Scale = from
	return TweenField(&sh.Scale, to, duration, fn)
}

// TweenShapePosition animates sh.X and sh.Y to the given coordinates.
func TweenShapePosition(sh *Shape, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(sh.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(sh.Y), float32(toY), duration, fn)
	g.fields[0] = &sh.X
	g.fields[1] = &sh.Y
	return g
}
