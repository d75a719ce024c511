package config

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Wave defaults
	DefaultWaveSpeed     = 10.0 // px/s
	DefaultWaveFrequency = 2.0  // Hz
	DefaultWaveColor     = "#004C66"
	DefaultBackground    = "#FFFFF0"

	// Control panel dimensions
	PanelHeight    = 56
	PanelPadding   = 12
	FieldWidth     = 180
	FieldHeight    = 32
	ToggleWidth    = 64
	ToggleHeight   = 32
	PanelSlideTime = 0.25 // seconds
	LabelSize      = 14

	DefaultScreenshotDir = "screenshots"
	FrameHistorySize     = 120
)
