package game

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// Script replays pointer input and screenshots frame by frame, for example
// to record a demo or to check rendering by eye.
//
//	{"steps": [
//	  {"action": "press", "x": 100, "y": 100},
//	  {"action": "wait", "frames": 72},
//	  {"action": "release"},
//	  {"action": "screenshot", "label": "after-release"}
//	]}
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script.
func LoadScript(data []byte) (*Script, error) {
	var s script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "press", "move", "release", "drag", "wait", "screenshot", "toggle", "clear":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: s.Steps}, nil
}

// Done reports whether every step has run.
func (s *Script) Done() bool {
	return s.done
}

// step runs the script for one frame. Injected pointer events are consumed
// one per frame, so the script waits for the queue to drain before moving on.
func (s *Script) step(g *Game) {
	if s.done {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if g.pointer.pendingInjected() > 0 {
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++
	switch st.Action {
	case "press":
		g.InjectPress(st.X, st.Y)
	case "move":
		g.InjectMove(st.X, st.Y)
	case "release":
		g.InjectRelease()
	case "drag":
		g.InjectDrag(st.X, st.Y, st.ToX, st.ToY, st.Frames)
	case "wait":
		s.waitCount = max(st.Frames-1, 0)
	case "screenshot":
		g.Screenshot(st.Label)
	case "toggle":
		g.panel.toggle()
	case "clear":
		g.field.Clear()
	}
}
