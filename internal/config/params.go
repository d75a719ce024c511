package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	ErrInvalidSpeed     = errors.New("wave speed must be a positive number")
	ErrInvalidFrequency = errors.New("wave frequency must be a positive number")
)

// Params are the user-facing settings of the visualizer. They may be
// replaced at any time; the simulation reads them every frame.
type Params struct {
	WaveSpeed     float64 // px/s
	WaveFrequency float64 // Hz
	WaveColor     color.Color
	Background    color.Color
}

// Defaults returns the settings the visualizer starts with.
func Defaults() Params {
	return Params{
		WaveSpeed:     DefaultWaveSpeed,
		WaveFrequency: DefaultWaveFrequency,
		WaveColor:     mustParseColor(DefaultWaveColor),
		Background:    mustParseColor(DefaultBackground),
	}
}

// Validate rejects settings the simulation cannot run with.
func (p Params) Validate() error {
	if err := checkPositive(p.WaveSpeed, ErrInvalidSpeed); err != nil {
		return err
	}
	if err := checkPositive(p.WaveFrequency, ErrInvalidFrequency); err != nil {
		return err
	}
	if p.WaveColor == nil || p.Background == nil {
		return errors.New("colors must be set")
	}
	return nil
}

func checkPositive(v float64, sentinel error) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: got %v", sentinel, v)
	}
	return nil
}

// ParseSpeed parses a wave speed typed by the user.
func ParseSpeed(s string) (float64, error) {
	return parsePositive(s, ErrInvalidSpeed)
}

// ParseFrequency parses a wave frequency typed by the user.
func ParseFrequency(s string) (float64, error) {
	return parsePositive(s, ErrInvalidFrequency)
}

func parsePositive(s string, sentinel error) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", sentinel, s)
	}
	if err := checkPositive(v, sentinel); err != nil {
		return 0, err
	}
	return v, nil
}

// ParseColor parses a hex color token such as "#004C66" or "#fff".
func ParseColor(s string) (color.Color, error) {
	token := strings.TrimSpace(s)
	if !strings.HasPrefix(token, "#") {
		token = "#" + token
	}
	c, err := colorful.Hex(token)
	if err != nil {
		return nil, fmt.Errorf("parse color %q: %w", s, err)
	}
	return toRGBA(c), nil
}

// FormatColor returns the hex token of clr.
func FormatColor(clr color.Color) string {
	if clr == nil {
		return ""
	}
	c, _ := colorful.MakeColor(clr)
	return strings.ToUpper(c.Hex())
}

// Opaque drops any transparency from clr, so picked colors paint like the
// hex tokens typed on the command line.
func Opaque(clr color.Color) color.Color {
	c, ok := colorful.MakeColor(clr)
	if !ok {
		return color.RGBA{A: 0xff}
	}
	return toRGBA(c)
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func mustParseColor(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
