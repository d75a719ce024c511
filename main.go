package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/ripple-visualization/internal/config"
	"github.com/iburimskiy/ripple-visualization/internal/game"
)

func main() {
	flag.Parse()

	params, err := paramsFromFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ripple: %v\n", err)
		os.Exit(2)
	}

	var script *game.Script
	if *scriptFlag != "" {
		data, err := os.ReadFile(*scriptFlag)
		if err != nil {
			log.Fatalf("Reading script failed: %v", err)
		}
		if script, err = game.LoadScript(data); err != nil {
			log.Fatalf("Loading script failed: %v", err)
		}
	}

	g := game.New(game.Options{
		Params:        params,
		Width:         *widthFlag,
		Height:        *heightFlag,
		HideControls:  *hideControlsFlag,
		Debug:         *debugFlag,
		ScreenshotDir: *screenshotDirFlag,
		Script:        script,
	})

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Ripples - hold the mouse to emit waves, H: controls, Esc/Q: quit")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}

func paramsFromFlags() (config.Params, error) {
	waveColor, err := config.ParseColor(*waveColorFlag)
	if err != nil {
		return config.Params{}, fmt.Errorf("-wave-color: %w", err)
	}
	background, err := config.ParseColor(*backgroundFlag)
	if err != nil {
		return config.Params{}, fmt.Errorf("-background: %w", err)
	}
	p := config.Params{
		WaveSpeed:     *speedFlag,
		WaveFrequency: *frequencyFlag,
		WaveColor:     waveColor,
		Background:    background,
	}
	if err := p.Validate(); err != nil {
		return config.Params{}, err
	}
	if *widthFlag <= 0 || *heightFlag <= 0 {
		return config.Params{}, fmt.Errorf("window size must be positive, got %dx%d", *widthFlag, *heightFlag)
	}
	return p, nil
}
