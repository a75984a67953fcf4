// Package ebitenchart runs a chartsense chart inside an ebiten game loop:
// it polls mouse, touch, and keyboard input into the chart and draws the
// chart's surface and overlay with ebiten's vector API.
package ebitenchart

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/chartsense"
)

// ebitenutil.DebugPrint draws a 6x16 glyph grid.
const (
	glyphWidth   = 6
	glyphHeight  = 16
	labelPadding = 4
)

// Measure sizes tooltip text the way DrawOverlay renders it.
var Measure = chartsense.MonospaceMeasurer(glyphWidth, glyphHeight, labelPadding)

// RunConfig configures Run. Zero values get sensible defaults.
type RunConfig struct {
	Title  string
	Width  int // default 640
	Height int // default 480

	// Background fills the screen before drawing.
	Background chartsense.Color
	// ShowFPS draws FPS and TPS in the top-left corner, refreshed every
	// half second.
	ShowFPS bool

	// OnUpdate runs before input is polled each tick. Returning an error
	// stops the game.
	OnUpdate func(dt float32) error
	// OnDraw runs after the background fill and before the surface.
	OnDraw func(screen *ebiten.Image)
}

func (cfg RunConfig) withDefaults() RunConfig {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Title == "" {
		cfg.Title = "chartsense"
	}
	return cfg
}

// Game implements ebiten.Game for one chart.
type Game struct {
	chart *chartsense.Chart
	cfg   RunConfig
	input Input
	ticks int64

	fps      *ebiten.Image
	fpsTimer float32
}

// NewGame wraps c. The chart should already be mounted.
func NewGame(c *chartsense.Chart, cfg RunConfig) *Game {
	return &Game{chart: c, cfg: cfg.withDefaults()}
}

// Input returns the game's input poller.
func (g *Game) Input() *Input {
	return &g.input
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	if g.cfg.OnUpdate != nil {
		if err := g.cfg.OnUpdate(dt); err != nil {
			return err
		}
	}
	g.ticks++
	ts := g.ticks * 1000 / int64(ebiten.TPS())
	if l, ok := g.chart.Layout(); ok {
		g.input.SetBounds(l.Container)
	}
	g.input.Poll(g.chart, ts)
	g.chart.Update(dt)
	if g.cfg.ShowFPS {
		g.updateFPS(dt)
	}
	return nil
}

func (g *Game) updateFPS(dt float32) {
	if g.fps == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		g.fps = ebiten.NewImage(100, 32)
	}
	g.fpsTimer += dt
	if g.fpsTimer < 0.5 && g.ticks > 1 {
		return
	}
	g.fpsTimer = 0
	g.fps.Clear()
	g.fps.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(g.fps, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.cfg.Background != (chartsense.Color{}) {
		screen.Fill(toRGBA(g.cfg.Background, 1))
	}
	if g.cfg.OnDraw != nil {
		g.cfg.OnDraw(screen)
	}
	if cc := g.chart.ChartContext(); cc != nil && cc.Surface != nil {
		l, _ := g.chart.Layout()
		DrawSurface(screen, cc.Surface, ContainerOrigin(l))
	}
	if g.fps != nil {
		screen.DrawImage(g.fps, nil)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and runs c until the window closes. The chart is
// unmounted on return.
func Run(c *chartsense.Chart, cfg RunConfig) error {
	g := NewGame(c, cfg)
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	defer c.Unmount()
	return ebiten.RunGame(g)
}
