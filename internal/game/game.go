package game

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/ripple-visualization/internal/config"
	"github.com/iburimskiy/ripple-visualization/internal/ripple"
)

// Options configure a new Game.
type Options struct {
	Params        config.Params
	Width, Height int
	HideControls  bool
	Debug         bool
	ScreenshotDir string
	Script        *Script

	// Now is the wall clock; tests replace it.
	Now func() time.Time
}

// Game is the ripple visualizer as an Ebiten game: pointer presses emit
// waves, the control panel edits the params, resizing the window resizes
// the surface.
type Game struct {
	params config.Params

	field     *ripple.Field
	renderer  *ripple.Renderer
	scheduler *ripple.Scheduler

	panel   *panel
	pointer pointerTracker
	events  []pointerEvent
	script  *Script

	now           func() time.Time
	width, height int
	paused        bool
	debug         bool

	dialogs    chan dialogResult
	dialogOpen bool

	screenshots   []string
	screenshotDir string
	screenshotSeq int
	frames        *frameHistory

	lastErr error
}

// New builds a game with a running render loop and no active session.
func New(opts Options) *Game {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Width <= 0 {
		opts.Width = config.WindowWidth
	}
	if opts.Height <= 0 {
		opts.Height = config.WindowHeight
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = config.DefaultScreenshotDir
	}

	g := &Game{
		params:        opts.Params,
		field:         ripple.NewField(float64(opts.Width), float64(opts.Height)),
		panel:         newPanel(!opts.HideControls),
		script:        opts.Script,
		now:           opts.Now,
		width:         opts.Width,
		height:        opts.Height,
		debug:         opts.Debug,
		dialogs:       make(chan dialogResult, 1),
		screenshotDir: opts.ScreenshotDir,
		frames:        newFrameHistory(config.FrameHistorySize),
	}
	if err := g.params.Validate(); err != nil {
		g.params = config.Defaults()
		g.setError(fmt.Errorf("using defaults: %w", err))
	}
	g.renderer = ripple.NewRenderer(g.field)
	g.scheduler = ripple.NewScheduler(g.field)
	g.panel.resize(float64(opts.Width), float64(opts.Height))
	g.renderer.Start()
	return g
}

// Params returns the current settings.
func (g *Game) Params() config.Params {
	return g.params
}

// SetParams replaces the settings. Speed and colors apply from the next
// frame, frequency from the next scheduling decision.
func (g *Game) SetParams(p config.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	g.params = p
	return nil
}

func (g *Game) Update() error {
	now := g.now()
	g.drainDialogs()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.setPaused(!g.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.field.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.panel.toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.Screenshot("manual")
	}

	if g.script != nil {
		g.script.step(g)
	}
	g.events = g.pointer.poll(g.events[:0])
	g.step(now, g.events)

	mx, my := ebiten.CursorPosition()
	g.panel.hovered = g.panel.hit(float64(mx), float64(my))
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g.panel.update(1 / float64(tps))
	return nil
}

// step runs one frame of the simulation. Existing waves are advanced before
// new ones are emitted, so a new wave appears at radius zero in its first
// frame.
func (g *Game) step(now time.Time, events []pointerEvent) {
	if !g.paused {
		if dt := g.renderer.Tick(now, g.params.WaveSpeed); dt > 0 {
			g.frames.record(time.Duration(dt * float64(time.Second)))
		}
	}
	for _, evt := range events {
		g.handlePointer(now, evt)
	}
	if !g.paused {
		g.scheduler.Poll(now, g.params.WaveFrequency)
	}
}

func (g *Game) handlePointer(now time.Time, evt pointerEvent) {
	switch evt.kind {
	case pointerDown:
		if g.panel.covers(evt.x, evt.y) {
			g.panel.pressed = g.panel.hit(evt.x, evt.y)
			return
		}
		if g.paused {
			return
		}
		sess := g.scheduler.Start(now, evt.x, evt.y, g.params.WaveFrequency)
		log.Printf("Session %d started at (%.0f, %.0f), %g Hz", sess.ID, evt.x, evt.y, g.params.WaveFrequency)
	case pointerMove:
		g.scheduler.Move(evt.x, evt.y)
	case pointerUp:
		if pressed := g.panel.pressed; pressed != controlNone {
			g.panel.pressed = controlNone
			if g.panel.hit(evt.x, evt.y) == pressed {
				g.activate(pressed)
			}
		}
		if sess := g.scheduler.Session(); sess != nil {
			// Spawns that fell due while the pointer was still held belong
			// to the session even when the frame carrying the release is late.
			if !g.paused {
				g.scheduler.Poll(now, g.params.WaveFrequency)
			}
			g.scheduler.Stop()
			log.Printf("Session %d stopped after %s", sess.ID, formatDuration(now.Sub(sess.Start)))
		}
	}
}

func (g *Game) activate(c control) {
	if c == controlToggle {
		g.panel.toggle()
		return
	}
	g.openDialog(c)
}

// setPaused freezes the field. Resuming starts a fresh render session so the
// paused time is not integrated into the radii.
func (g *Game) setPaused(paused bool) {
	if g.paused == paused {
		return
	}
	g.paused = paused
	if paused {
		g.scheduler.Stop()
		g.renderer.Stop()
		return
	}
	g.renderer.Start()
}

// resize applies a new surface size. Live waves are kept as they are.
func (g *Game) resize(width, height int) {
	if width == g.width && height == g.height {
		return
	}
	g.width, g.height = width, height
	g.field.Resize(float64(width), float64(height))
	g.panel.resize(float64(width), float64(height))
}

func (g *Game) setError(err error) {
	g.lastErr = err
	log.Printf("Error: %v", err)
}

// InjectPress queues a synthetic pointer press at (x, y).
func (g *Game) InjectPress(x, y float64) {
	g.pointer.inject(pointerEvent{kind: pointerDown, x: x, y: y})
}

// InjectMove queues a synthetic pointer move to (x, y).
func (g *Game) InjectMove(x, y float64) {
	g.pointer.inject(pointerEvent{kind: pointerMove, x: x, y: y})
}

// InjectRelease queues a synthetic release at the last pointer position.
func (g *Game) InjectRelease() {
	g.pointer.inject(pointerEvent{kind: pointerUp, atLast: true})
}

// InjectDrag queues a press at (fromX, fromY), moves spread over the given
// number of frames and a release at (toX, toY).
func (g *Game) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	g.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		g.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	g.InjectMove(toX, toY)
	g.pointer.inject(pointerEvent{kind: pointerUp, x: toX, y: toY})
}

func (g *Game) Draw(screen *ebiten.Image) {
	var canvas ripple.Canvas
	if screen != nil {
		canvas = screenCanvas{dst: screen}
	}
	g.renderer.Paint(canvas, ripple.Style{Wave: g.params.WaveColor, Background: g.params.Background})
	if screen == nil {
		return
	}

	g.panel.draw(screen, g.params)
	g.drawStatus(screen)
	g.flushScreenshots(screen)
}

var statusBackground = color.RGBA{R: 0, G: 0, B: 0, A: 140}

func (g *Game) drawStatus(screen *ebiten.Image) {
	lines := []string{g.statusLine()}
	if g.debug {
		mean, longest := g.frames.stats()
		lines = append(lines, fmt.Sprintf("FPS: %.1f  TPS: %.1f  Waves: %d  Diagonal: %.0f",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.field.Len(), g.field.Diagonal()),
			fmt.Sprintf("Tick: mean %.1f ms, max %.1f ms over %d frames",
				mean.Seconds()*1000, longest.Seconds()*1000, g.frames.len()))
	}
	for i, line := range lines {
		y := 8 + i*18
		w := len(line)*6 + 8
		vector.DrawFilledRect(screen, 8, float32(y), float32(w), 18, statusBackground, false)
		ebitenutil.DebugPrintAt(screen, line, 12, y+1)
	}
}

func (g *Game) statusLine() string {
	var status string
	switch {
	case g.paused:
		status = "Paused - Space to resume"
	case g.scheduler.Active():
		sess := g.scheduler.Session()
		status = fmt.Sprintf("Emitting %g waves/s for %s", g.params.WaveFrequency, formatDuration(g.now().Sub(sess.Start)))
	default:
		status = "Hold the mouse to emit waves - H: controls, Space: pause, C: clear, F12: screenshot, Esc/Q: quit"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)
	g.resize(w, h)
	return w, h
}
