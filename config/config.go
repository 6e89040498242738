package config

import (
	"image/color"

	"github.com/automoto/pupu/actors"
	"github.com/automoto/pupu/collision"
	"github.com/automoto/pupu/kinematic"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = iota

// Config holds general game configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	// TPS is the ebiten tick rate. Physics runs on its own fixed step.
	TPS int `yaml:"tps"`
	// LevelDir is searched for level files given without a directory.
	LevelDir string `yaml:"levelDir"`
}

// RenderConfig contains drawing configuration values
type RenderConfig struct {
	BackgroundColors []color.RGBA `yaml:"-"`
	BoxColor         color.RGBA   `yaml:"-"`
	HUDMargin        int          `yaml:"hudMargin"`
	// AppearScaleFrom is the sprite scale at the start of the appear tween.
	AppearScaleFrom float32 `yaml:"appearScaleFrom"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"followSmoothing"` // How fast camera follows the character (0.0-1.0)
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	Overlay  bool `yaml:"overlay"`  // hit-map boundaries around the character
	Hitboxes bool `yaml:"hitboxes"` // outline every hitbox
}

// PersistenceConfig names the gdata application
type PersistenceConfig struct {
	AppName string `yaml:"appName"`
}

// Global configuration instances
var C *Config
var Character kinematic.Config
var Collision collision.Config
var Actors actors.Config
var Render RenderConfig
var Camera CameraConfig
var Debug DebugConfig
var Persistence PersistenceConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:    640,
		Height:   360,
		Title:    "pupu",
		TPS:      60,
		LevelDir: "levels",
	}

	Character = kinematic.DefaultConfig()
	Collision = collision.DefaultConfig()
	Actors = actors.DefaultConfig()

	Render = RenderConfig{
		BackgroundColors: []color.RGBA{
			{R: 33, G: 31, B: 48, A: 255},
			{R: 46, G: 72, B: 82, A: 255},
			{R: 74, G: 44, B: 56, A: 255},
			{R: 52, G: 70, B: 40, A: 255},
		},
		BoxColor:        color.RGBA{R: 164, G: 110, B: 60, A: 255},
		HUDMargin:       4,
		AppearScaleFrom: 0.2,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
	}

	Debug = DebugConfig{}

	Persistence = PersistenceConfig{
		AppName: "pupu",
	}
}

// Background returns the clear colour for a level background index. Indices
// outside the palette wrap around.
func Background(index int) color.RGBA {
	n := len(Render.BackgroundColors)
	if n == 0 {
		return Black
	}
	i := index % n
	if i < 0 {
		i += n
	}
	return Render.BackgroundColors[i]
}
