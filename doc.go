// Package chartsense is an interaction engine for 2D charts.
//
// It turns raw pointer and keyboard input into high-level interaction
// records (hover, drag, selection, keyboard focus) and applies them as
// visual feedback (crosshairs, dimming, markers, draggable pucks, tooltips)
// without the drawing code knowing anything about input.
//
// # Quick start
//
// A [Chart] wires everything together. Give it sensors that interpret input
// and behaviors that draw feedback, the measured layout, and the indexed
// data points, then feed it input:
//
//	chart := chartsense.NewChart(chartsense.Config{
//		Sensors:   []chartsense.Sensor{&chartsense.HoverSensor{}},
//		Behaviors: []chartsense.Behavior{&chartsense.CursorBehavior{}, &chartsense.MarkersBehavior{}},
//	})
//	chart.SetLayout(layout)
//	chart.SetPoints(points)
//	chart.SetChartContext(&chartsense.ChartContext{Surface: surface, Layout: layout})
//	chart.Mount()
//
//	chart.HandleInput(sig) // per native event
//	chart.Update(dt)       // per frame
//
// The ebitenchart package does the input polling and drawing for an
// [Ebitengine] window; terminput does the same translation for tcell.
//
// # Pipeline
//
// Each [InputSignal] is resolved by [Layout] into container- and
// plot-relative coordinates, matched against the [SpatialIndex] (exact
// element hits first, then a quadtree nearest-neighbour search), and handed
// to the [Scheduler] with a [Priority]: presses and releases dispatch
// synchronously so listeners can call [EngineEvent.PreventDefault], moves
// are coalesced per input to one per frame, and sync work waits for idle
// time. The [EventBus] fans events out to sensors.
//
// # Channels
//
// Sensors write [Interaction] records to named channels in the [Store];
// behaviors read them. Each channel has exactly one writer, enforced by
// [Context.Claim]: a second sensor claiming the same channel is rejected
// with [ErrChannelClaimed]. Keyboard navigation reaches the hover channel
// through a synthetic keyboard move that the [HoverSensor] accepts, so
// every hover behavior serves keyboard users unchanged.
//
// # Debugging
//
// [Config.Debug] (or [Chart.SetDebugMode]) writes diagnostics as
// "[chartsense] ..." lines to stderr: discarded element hits, ambiguous
// group hits, and rejected channel claims.
//
// [Ebitengine]: https://ebitengine.org
package chartsense
