package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenCanvas paints ripple frames onto an Ebiten image.
type screenCanvas struct {
	dst *ebiten.Image
}

func (c screenCanvas) Fill(clr color.Color) {
	c.dst.Fill(clr)
}

func (c screenCanvas) StrokeCircle(x, y, radius, width float64, clr color.Color) {
	vector.StrokeCircle(c.dst, float32(x), float32(y), float32(radius), float32(width), clr, true)
}
