package config

import (
	"image/color"

	"github.com/automoto/jumpcar/shared/chassis"
	"github.com/automoto/jumpcar/shared/drive"
	"github.com/automoto/jumpcar/shared/logging"
	"github.com/automoto/jumpcar/shared/tuning"
)

// Config holds general game configuration
type Config struct {
	Width   int
	Height  int
	Title   string
	TPS     int    // fixed simulation rate
	Level   string // arena stem under assets/levels
	AppName string // gdata save directory name
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	Zoom              float64 // screen pixels per arena pixel
	FollowSmoothing   float64 // How fast camera follows the vehicle (0.0-1.0)
	LookAheadDistance float64 // Max look-ahead offset in screen pixels, along the heading
	LookAheadSpeed    float64 // speed in m/s at which the full look-ahead applies
}

// OverlayConfig contains the toggleable overlays and their defaults.
type OverlayConfig struct {
	Debug   bool
	ShowFPS bool
}

// UIConfig contains HUD layout and colours.
type UIConfig struct {
	HUDFontSize   float64
	DebugFontSize float64
	Margin        float64
	PipRadius     float64
	PipGap        float64

	GroundColor    color.RGBA
	GridColor      color.RGBA
	WallColor      color.RGBA
	BodyColor      color.RGBA
	NoseColor      color.RGBA
	ShadowColor    color.RGBA
	PipFullColor   color.RGBA
	PipEmptyColor  color.RGBA
	TextColor      color.RGBA
	DebugWallColor color.RGBA
	DebugBodyColor color.RGBA
}

// PulseConfig sets the length of the jump and reset flashes, in ticks.
type PulseConfig struct {
	JumpTicks  int
	ResetTicks int
	JumpRadius float64 // metres the jump ring grows to
}

// Global configuration instances
var C *Config
var Drive drive.Tuning
var Jump tuning.Jump
var Chassis chassis.Config
var Camera CameraConfig
var Overlay OverlayConfig
var UI UIConfig
var Pulse PulseConfig
var Logging logging.Options

// White is the default text and outline colour.
var White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Palette colours read by UI below.
var (
	Yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange     = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Green      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Magenta    = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	DarkBlue   = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:   640,
		Height:  360,
		Title:   "jumpcar",
		TPS:     60,
		Level:   "arena",
		AppName: "jumpcar",
	}

	applyTuning(tuning.Default())

	Camera = CameraConfig{
		Zoom:              1.0,
		FollowSmoothing:   0.1,
		LookAheadDistance: 60.0, // ~10% of 640px screen width
		LookAheadSpeed:    12.0,
	}

	Overlay = OverlayConfig{}

	UI = UIConfig{
		HUDFontSize:   14,
		DebugFontSize: 10,
		Margin:        8,
		PipRadius:     5,
		PipGap:        14,

		GroundColor:    color.RGBA{R: 38, G: 42, B: 48, A: 255},
		GridColor:      color.RGBA{R: 52, G: 57, B: 64, A: 255},
		WallColor:      DarkBlue,
		BodyColor:      Orange,
		NoseColor:      Yellow,
		ShadowColor:    color.RGBA{R: 0, G: 0, B: 0, A: 110},
		PipFullColor:   LightGreen,
		PipEmptyColor:  color.RGBA{R: 90, G: 90, B: 90, A: 255},
		TextColor:      White,
		DebugWallColor: Magenta,
		DebugBodyColor: Green,
	}

	Pulse = PulseConfig{
		JumpTicks:  24,
		ResetTicks: 18,
		JumpRadius: 2.5,
	}
}

// Tuning returns the current vehicle constants as one set.
func Tuning() tuning.Set {
	return tuning.Set{
		Drive:   Drive,
		Jump:    Jump,
		Chassis: Chassis,
		Logging: Logging,
	}
}

func applyTuning(s tuning.Set) {
	Drive = s.Drive
	Jump = s.Jump
	Chassis = s.Chassis
	Logging = s.Logging
}
