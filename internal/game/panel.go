package game

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/ripple-visualization/internal/config"
)

// control identifies a clickable element of the control panel.
type control int

const (
	controlNone control = iota
	controlSpeed
	controlFrequency
	controlWaveColor
	controlBackground
	controlToggle
)

var fieldControls = [...]control{controlSpeed, controlFrequency, controlWaveColor, controlBackground}

func (c control) String() string {
	switch c {
	case controlSpeed:
		return "Speed"
	case controlFrequency:
		return "Frequency"
	case controlWaveColor:
		return "Colour"
	case controlBackground:
		return "Background"
	case controlToggle:
		return "Toggle"
	}
	return "None"
}

// rect is an axis-aligned area in screen coordinates.
type rect struct {
	X, Y, W, H float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W &&
		y >= r.Y && y <= r.Y+r.H
}

// panel is the strip of controls along the bottom edge. Hiding slides it off
// screen; the toggle button stays in place.
type panel struct {
	width, height float64

	visible bool
	offset  float64 // 0 fully shown, 1 fully hidden
	target  float64
	tween   *gween.Tween

	hovered control
	pressed control
}

func newPanel(visible bool) *panel {
	p := &panel{visible: visible}
	if !visible {
		p.offset, p.target = 1, 1
	}
	return p
}

// resize lays the panel out for a surface of the given size.
func (p *panel) resize(width, height float64) {
	p.width, p.height = width, height
}

// toggle shows or hides the panel with a short slide.
func (p *panel) toggle() {
	p.visible = !p.visible
	p.target = 1
	if p.visible {
		p.target = 0
	}
	p.tween = gween.New(float32(p.offset), float32(p.target), config.PanelSlideTime, ease.OutCubic)
}

// update advances the slide animation by dt seconds.
func (p *panel) update(dt float64) {
	if p.tween == nil {
		return
	}
	v, done := p.tween.Update(float32(dt))
	p.offset = clamp01(float64(v))
	if done {
		p.offset = p.target
		p.tween = nil
	}
}

func (p *panel) bounds() rect {
	y := p.height - config.PanelHeight + p.offset*config.PanelHeight
	return rect{X: 0, Y: y, W: p.width, H: config.PanelHeight}
}

func (p *panel) toggleBounds() rect {
	return rect{
		X: p.width - config.ToggleWidth - config.PanelPadding,
		Y: p.height - config.ToggleHeight - (config.PanelHeight-config.ToggleHeight)/2,
		W: config.ToggleWidth,
		H: config.ToggleHeight,
	}
}

func (p *panel) fieldBounds(i int) rect {
	b := p.bounds()
	return rect{
		X: config.PanelPadding + float64(i)*(config.FieldWidth+config.PanelPadding),
		Y: b.Y + (config.PanelHeight-config.FieldHeight)/2,
		W: config.FieldWidth,
		H: config.FieldHeight,
	}
}

// shown reports whether any part of the strip is on screen.
func (p *panel) shown() bool {
	return p.offset < 1
}

// hit returns the control under (x, y).
func (p *panel) hit(x, y float64) control {
	if p.toggleBounds().contains(x, y) {
		return controlToggle
	}
	if !p.shown() {
		return controlNone
	}
	for i, c := range fieldControls {
		if p.fieldBounds(i).contains(x, y) {
			return c
		}
	}
	return controlNone
}

// covers reports whether (x, y) lands on the panel rather than the ripple
// surface. Presses there never start an emission session.
func (p *panel) covers(x, y float64) bool {
	if p.toggleBounds().contains(x, y) {
		return true
	}
	if !p.shown() {
		return false
	}
	return p.bounds().contains(x, y)
}

var (
	panelBackground = color.RGBA{R: 243, G: 244, B: 246, A: 235}
	panelBorder     = color.RGBA{R: 150, G: 160, B: 175, A: 255}
	fieldNormal     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	fieldHovered    = color.RGBA{R: 229, G: 236, B: 246, A: 255}
	buttonNormal    = color.RGBA{R: 24, G: 24, B: 27, A: 255}
	buttonHovered   = color.RGBA{R: 63, G: 63, B: 70, A: 255}
	labelColor      = color.RGBA{R: 24, G: 24, B: 27, A: 255}
	buttonLabel     = color.RGBA{R: 250, G: 250, B: 250, A: 255}
)

var (
	faceOnce   sync.Once
	faceSource *text.GoTextFaceSource
)

func labelFace() text.Face {
	faceOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Printf("Loading panel font failed: %v", err)
			return
		}
		faceSource = src
	})
	if faceSource == nil {
		return nil
	}
	return &text.GoTextFace{Source: faceSource, Size: config.LabelSize}
}

// fieldLabel is the text shown inside a field for the current params.
func fieldLabel(c control, params config.Params) string {
	switch c {
	case controlSpeed:
		return fmt.Sprintf("Speed: %g px/s", params.WaveSpeed)
	case controlFrequency:
		return fmt.Sprintf("Frequency: %g Hz", params.WaveFrequency)
	case controlWaveColor:
		return "Colour: " + config.FormatColor(params.WaveColor)
	case controlBackground:
		return "Background: " + config.FormatColor(params.Background)
	}
	return ""
}

func (p *panel) draw(screen *ebiten.Image, params config.Params) {
	face := labelFace()

	if p.shown() {
		b := p.bounds()
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), panelBackground, false)
		vector.StrokeLine(screen, 0, float32(b.Y), float32(b.W), float32(b.Y), 1, panelBorder, false)

		for i, c := range fieldControls {
			fb := p.fieldBounds(i)
			bg := fieldNormal
			if p.hovered == c {
				bg = fieldHovered
			}
			vector.DrawFilledRect(screen, float32(fb.X), float32(fb.Y), float32(fb.W), float32(fb.H), bg, false)
			vector.StrokeRect(screen, float32(fb.X), float32(fb.Y), float32(fb.W), float32(fb.H), 1, panelBorder, false)

			textX := fb.X + 8
			if swatch := swatchColor(c, params); swatch != nil {
				s := fb.H - 12
				vector.DrawFilledRect(screen, float32(fb.X+6), float32(fb.Y+6), float32(s), float32(s), swatch, false)
				vector.StrokeRect(screen, float32(fb.X+6), float32(fb.Y+6), float32(s), float32(s), 1, panelBorder, false)
				textX += s + 4
			}
			drawLabel(screen, face, fieldLabel(c, params), textX, fb.Y+fb.H/2, labelColor)
		}
	}

	tb := p.toggleBounds()
	bg := buttonNormal
	if p.hovered == controlToggle || p.pressed == controlToggle {
		bg = buttonHovered
	}
	vector.DrawFilledRect(screen, float32(tb.X), float32(tb.Y), float32(tb.W), float32(tb.H), bg, false)
	label := "Hide"
	if !p.visible {
		label = "Show"
	}
	drawLabel(screen, face, label, tb.X+14, tb.Y+tb.H/2, buttonLabel)
}

func swatchColor(c control, params config.Params) color.Color {
	switch c {
	case controlWaveColor:
		return params.WaveColor
	case controlBackground:
		return params.Background
	}
	return nil
}

// drawLabel draws str left-aligned at x and vertically centered on midY.
func drawLabel(screen *ebiten.Image, face text.Face, str string, x, midY float64, clr color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, midY)
	op.PrimaryAlign = text.AlignStart
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
