package game

import (
	"strings"
	"testing"
	"time"
)

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"invalid json", `{`, "parse script"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "jump"}]}`, `unknown action "jump"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("LoadScript() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestScriptDrivesSession(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "press", "x": 100, "y": 120},
		{"action": "wait", "frames": 3},
		{"action": "move", "x": 200, "y": 220},
		{"action": "release"},
		{"action": "screenshot", "label": "done"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	g, clock := newTestGame(t)
	g.script = s
	var kinds []string
	for i := 0; i < 20 && !s.Done(); i++ {
		s.step(g)
		if g.pointer.pendingInjected() > 0 {
			g.events = g.pointer.poll(g.events[:0])
		} else {
			g.events = g.events[:0]
		}
		for _, e := range g.events {
			kinds = append(kinds, e.kind.String())
		}
		g.step(clock.advance(100*time.Millisecond), g.events)
	}

	if !s.Done() {
		t.Fatal("script did not finish")
	}
	if got := strings.Join(kinds, " "); got != "down move up" {
		t.Errorf("events = %q, want %q", got, "down move up")
	}
	if len(g.screenshots) != 1 || g.screenshots[0] != "done" {
		t.Errorf("screenshots = %v, want [done]", g.screenshots)
	}
	if g.field.Len() == 0 || g.field.Waves()[0].X != 100 {
		t.Errorf("script press did not emit at (100, 120): %+v", g.field.Waves())
	}
}

func TestScriptToggleAndClear(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [{"action": "toggle"}, {"action": "clear"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	g, clock := newTestGame(t)
	frame(g, clock, 0, down(10, 10), up(10, 10))
	if g.field.Len() != 1 {
		t.Fatalf("waves = %d, want 1", g.field.Len())
	}

	for i := 0; i < 3; i++ {
		s.step(g)
	}
	if g.panel.visible {
		t.Error("toggle step left the panel visible")
	}
	if g.field.Len() != 0 {
		t.Errorf("clear step left %d waves", g.field.Len())
	}
	if !s.Done() {
		t.Error("script not done")
	}
}
