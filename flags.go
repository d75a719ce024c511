package main

import (
	"flag"

	"github.com/iburimskiy/ripple-visualization/internal/config"
)

// Command-line flags for the initial settings and optional tooling.
var (
	speedFlag     = flag.Float64("speed", config.DefaultWaveSpeed, "wave speed in pixels per second")
	frequencyFlag = flag.Float64("frequency", config.DefaultWaveFrequency, "waves emitted per second while the pointer is held")

	waveColorFlag  = flag.String("wave-color", config.DefaultWaveColor, "ring colour as a hex token")
	backgroundFlag = flag.String("background", config.DefaultBackground, "background colour as a hex token")

	widthFlag  = flag.Int("width", config.WindowWidth, "initial window width")
	heightFlag = flag.Int("height", config.WindowHeight, "initial window height")

	// hideControlsFlag starts with the control panel slid away.
	hideControlsFlag = flag.Bool("hide-controls", false, "start with the control panel hidden")

	// debugFlag enables the FPS and wave count overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and wave count overlay")

	screenshotDirFlag = flag.String("screenshot-dir", config.DefaultScreenshotDir, "directory for F12 and scripted screenshots")
	scriptFlag        = flag.String("script", "", "JSON file with scripted pointer input to replay")
)
