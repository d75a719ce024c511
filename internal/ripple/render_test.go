package ripple

import (
	"image/color"
	"testing"
	"time"
)

type strokeCall struct {
	x, y, radius, width float64
	clr                 color.Color
}

// recordingCanvas keeps every paint call in order.
type recordingCanvas struct {
	fills   []color.Color
	strokes []strokeCall
	ops     []string
}

func (c *recordingCanvas) Fill(clr color.Color) {
	c.fills = append(c.fills, clr)
	c.ops = append(c.ops, "fill")
}

func (c *recordingCanvas) StrokeCircle(x, y, radius, width float64, clr color.Color) {
	c.strokes = append(c.strokes, strokeCall{x, y, radius, width, clr})
	c.ops = append(c.ops, "stroke")
}

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestRendererFirstTickOnlySetsBaseline(t *testing.T) {
	f := NewField(1000, 1000)
	f.Spawn(0, 0)
	r := NewRenderer(f)
	r.Start()

	if dt := r.Tick(t0.Add(time.Hour), 10); dt != 0 {
		t.Errorf("first tick dt = %v, want 0", dt)
	}
	if got := f.Waves()[0].Radius; got != 0 {
		t.Errorf("radius after first tick = %v, want 0", got)
	}
}

func TestRendererIntegratesWallClock(t *testing.T) {
	f := NewField(1000, 1000)
	f.Spawn(0, 0)
	r := NewRenderer(f)
	r.Start()
	r.Tick(t0, 10)

	// Uneven frames must give the same radius as even ones.
	steps := []time.Duration{16 * time.Millisecond, 50 * time.Millisecond, 434 * time.Millisecond}
	now := t0
	for _, d := range steps {
		now = now.Add(d)
		r.Tick(now, 10)
	}
	if got := f.Waves()[0].Radius; !approx(got, 5) {
		t.Errorf("radius after 500ms at 10px/s = %v, want 5", got)
	}
}

func TestRendererTickUsesCurrentSpeed(t *testing.T) {
	f := NewField(1000, 1000)
	f.Spawn(0, 0)
	r := NewRenderer(f)
	r.Start()
	r.Tick(t0, 10)

	r.Tick(t0.Add(time.Second), 10)
	r.Tick(t0.Add(2*time.Second), 40)

	if got := f.Waves()[0].Radius; got != 50 {
		t.Errorf("radius = %v, want 50", got)
	}
}

func TestRendererClockGoingBackwards(t *testing.T) {
	f := NewField(1000, 1000)
	f.Spawn(0, 0)
	r := NewRenderer(f)
	r.Start()
	r.Tick(t0, 10)
	r.Tick(t0.Add(time.Second), 10)

	if dt := r.Tick(t0, 10); dt != 0 {
		t.Errorf("dt = %v for a backwards clock, want 0", dt)
	}
	if got := f.Waves()[0].Radius; got != 10 {
		t.Errorf("radius = %v, want 10", got)
	}
}

func TestRendererStopAndRestart(t *testing.T) {
	f := NewField(1000, 1000)
	f.Spawn(0, 0)
	r := NewRenderer(f)
	r.Start()
	r.Tick(t0, 10)
	r.Tick(t0.Add(time.Second), 10)

	r.Stop()
	if r.Running() {
		t.Fatal("Running() = true after Stop")
	}
	r.Tick(t0.Add(2*time.Second), 10)

	r.Start()
	// The gap while stopped is not integrated.
	r.Tick(t0.Add(time.Minute), 10)
	r.Tick(t0.Add(time.Minute+time.Second), 10)

	if got := f.Waves()[0].Radius; got != 20 {
		t.Errorf("radius = %v, want 20", got)
	}
}

func TestRendererNotStarted(t *testing.T) {
	f := NewField(1000, 1000)
	f.Spawn(0, 0)
	r := NewRenderer(f)
	r.Tick(t0, 10)
	r.Tick(t0.Add(time.Second), 10)
	if got := f.Waves()[0].Radius; got != 0 {
		t.Errorf("radius = %v before Start, want 0", got)
	}
}

func TestRendererPaint(t *testing.T) {
	f := NewField(1000, 1000)
	f.Spawn(10, 20)
	f.Spawn(30, 40)
	f.waves[0].Radius = 7

	waveColor := color.RGBA{R: 0x00, G: 0x4c, B: 0x66, A: 0xff}
	bg := color.RGBA{R: 0xff, G: 0xff, B: 0xf0, A: 0xff}
	c := &recordingCanvas{}
	NewRenderer(f).Paint(c, Style{Wave: waveColor, Background: bg})

	if len(c.ops) != 3 || c.ops[0] != "fill" {
		t.Fatalf("ops = %v, want fill then two strokes", c.ops)
	}
	if c.fills[0] != bg {
		t.Errorf("fill = %v, want %v", c.fills[0], bg)
	}
	want := []strokeCall{
		{10, 20, 7, LineWidth, waveColor},
		{30, 40, 0, LineWidth, waveColor},
	}
	for i, w := range want {
		if c.strokes[i] != w {
			t.Errorf("stroke %d = %+v, want %+v", i, c.strokes[i], w)
		}
	}
}

func TestRendererPaintEmptyFieldClears(t *testing.T) {
	c := &recordingCanvas{}
	NewRenderer(NewField(10, 10)).Paint(c, Style{Wave: color.White, Background: color.Black})
	if len(c.fills) != 1 || len(c.strokes) != 0 {
		t.Errorf("fills = %d strokes = %d, want 1 and 0", len(c.fills), len(c.strokes))
	}
}

func TestRendererPaintWithoutSurface(t *testing.T) {
	f := NewField(10, 10)
	f.Spawn(1, 1)
	// Must not panic.
	NewRenderer(f).Paint(nil, Style{Wave: color.White, Background: color.Black})
}

func approx(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
