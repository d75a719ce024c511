package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/ripple-visualization/internal/config"
)

// Native dialogs block, so they run off the game goroutine. The prompts are
// variables so tests can answer them without a desktop session.
var (
	promptEntry = func(title, current string) (string, error) {
		return zenity.Entry(title,
			zenity.Title("Ripple settings"),
			zenity.EntryText(current),
		)
	}
	promptColor = func(title string, current color.Color) (color.Color, error) {
		return zenity.SelectColor(
			zenity.Title(title),
			zenity.Color(current),
		)
	}
)

// dialogResult carries a finished dialog back to the game goroutine.
type dialogResult struct {
	control control
	value   float64
	color   color.Color
	err     error
}

// openDialog starts the dialog for c unless one is already open.
func (g *Game) openDialog(c control) {
	if g.dialogOpen {
		return
	}
	g.dialogOpen = true
	params := g.params
	go func() {
		g.dialogs <- runDialog(c, params)
	}()
}

// runDialog asks the user for a new value of c and parses the answer.
func runDialog(c control, params config.Params) dialogResult {
	res := dialogResult{control: c}
	switch c {
	case controlSpeed:
		s, err := promptEntry("Wave speed (px/s)", fmt.Sprintf("%g", params.WaveSpeed))
		if err != nil {
			res.err = err
			return res
		}
		res.value, res.err = config.ParseSpeed(s)
	case controlFrequency:
		s, err := promptEntry("Wave frequency (Hz)", fmt.Sprintf("%g", params.WaveFrequency))
		if err != nil {
			res.err = err
			return res
		}
		res.value, res.err = config.ParseFrequency(s)
	case controlWaveColor:
		res.color, res.err = promptColor("Wave colour", params.WaveColor)
	case controlBackground:
		res.color, res.err = promptColor("Background colour", params.Background)
	default:
		res.err = fmt.Errorf("no dialog for control %v", c)
	}
	if res.err == nil && (c == controlWaveColor || c == controlBackground) && res.color == nil {
		res.err = zenity.ErrCanceled
	}
	return res
}

// drainDialogs applies any finished dialog without blocking.
func (g *Game) drainDialogs() {
	for {
		select {
		case res := <-g.dialogs:
			g.dialogOpen = false
			g.applyDialog(res)
		default:
			return
		}
	}
}

// applyDialog folds a dialog answer into the params. Rejected answers leave
// the params unchanged and surface on the status line.
func (g *Game) applyDialog(res dialogResult) {
	if res.err != nil {
		if errors.Is(res.err, zenity.ErrCanceled) {
			return
		}
		g.setError(fmt.Errorf("%v: %w", res.control, res.err))
		return
	}

	next := g.params
	switch res.control {
	case controlSpeed:
		next.WaveSpeed = res.value
	case controlFrequency:
		next.WaveFrequency = res.value
	case controlWaveColor:
		next.WaveColor = config.Opaque(res.color)
	case controlBackground:
		next.Background = config.Opaque(res.color)
	}
	if err := g.SetParams(next); err != nil {
		g.setError(err)
		return
	}
	log.Printf("%v set to %s", res.control, fieldLabel(res.control, g.params))
}
