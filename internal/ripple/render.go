package ripple

import (
	"image/color"
	"time"
)

// LineWidth is the stroke width of every ring.
const LineWidth = 2

// Canvas is the raster surface a frame is painted onto.
type Canvas interface {
	Fill(clr color.Color)
	StrokeCircle(x, y, radius, width float64, clr color.Color)
}

// Style carries the colors used for one frame.
type Style struct {
	Wave       color.Color
	Background color.Color
}

// Renderer advances a Field by elapsed wall-clock time and paints it.
type Renderer struct {
	field *Field

	running  bool
	baseline bool
	last     time.Time
}

// NewRenderer returns a renderer for field. Call Start before ticking it.
func NewRenderer(field *Field) *Renderer {
	return &Renderer{field: field}
}

// Start begins a render session. The next tick only records the baseline.
func (r *Renderer) Start() {
	r.running = true
	r.Reset()
}

// Stop ends the render session; ticks are ignored until Start is called again.
func (r *Renderer) Stop() {
	r.running = false
	r.baseline = false
}

// Reset forgets the previous timestamp so that the next tick does not
// integrate the time spent while the loop was not running.
func (r *Renderer) Reset() {
	r.baseline = false
	r.last = time.Time{}
}

// Running reports whether a render session is active.
func (r *Renderer) Running() bool {
	return r.running
}

// Tick integrates the time since the previous tick into every wave radius
// and returns the elapsed seconds that were applied.
func (r *Renderer) Tick(now time.Time, speed float64) float64 {
	if !r.running {
		return 0
	}
	if !r.baseline {
		r.baseline = true
		r.last = now
		return 0
	}
	dt := now.Sub(r.last).Seconds()
	r.last = now
	if dt < 0 {
		dt = 0
	}
	if speed < 0 {
		speed = 0
	}
	r.field.Advance(speed * dt)
	return dt
}

// Paint clears the canvas to the background and strokes every live wave.
// A nil canvas means the surface is gone and the frame is skipped.
func (r *Renderer) Paint(c Canvas, style Style) {
	if c == nil {
		return
	}
	c.Fill(style.Background)
	for _, w := range r.field.Waves() {
		c.StrokeCircle(w.X, w.Y, w.Radius, LineWidth, style.Wave)
	}
}
