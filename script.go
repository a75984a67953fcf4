package chartsense

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Key    string  `json:"key,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"move": true, "press": true, "release": true, "click": true,
	"drag": true, "key": true, "leave": true, "wait": true,
}

// ScriptRunner replays a scripted input sequence across frames, for
// reproducible interaction tests and demos. Attach it with SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script:
//
//	{"steps": [{"action": "move", "x": 120, "y": 80}, {"action": "wait", "frames": 3}]}
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// SetScriptRunner attaches r; Update advances it before consuming input.
func (c *Chart) SetScriptRunner(r *ScriptRunner) {
	c.runner = r
}

// Done reports whether every step ran and every injected signal drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

func (r *ScriptRunner) step(c *Chart) {
	if r.done {
		return
	}
	if len(c.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		if r.waitCount == 0 && r.cursor >= len(r.steps) {
			r.done = true
		}
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		c.InjectMove(st.X, st.Y)
	case "press":
		c.InjectPress(st.X, st.Y)
	case "release":
		c.InjectRelease(st.X, st.Y)
	case "click":
		c.InjectClick(st.X, st.Y)
	case "leave":
		c.InjectLeave()
	case "key":
		c.InjectKey(st.Key)
	case "drag":
		c.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 {
		r.done = true
	}
}
