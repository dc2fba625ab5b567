// Package config loads and saves settings for the planet tools.
package config

import (
	"time"

	"github.com/Faultbox/cubeplanet/pkg/math"
	"github.com/Faultbox/cubeplanet/pkg/planet"
)

// Config holds every tool setting. Planet is the generator request; the
// other sections configure the hosts around it.
type Config struct {
	Planet   planet.Config  `yaml:"planet"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Lighting LightingConfig `yaml:"lighting"`
	Regen    RegenConfig    `yaml:"regen"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	FOV        float32    `yaml:"fov"` // degrees
	Wireframe  bool       `yaml:"wireframe"`
	ClearColor [4]float32 `yaml:"clear_color,flow"`
}

// CameraConfig holds the free-fly camera.
type CameraConfig struct {
	Position      math.Vec3 `yaml:"position"`
	LookAt        math.Vec3 `yaml:"look_at"`
	MovementSpeed float32   `yaml:"movement_speed"`
	RotationSpeed float32   `yaml:"rotation_speed"`
	InvertY       bool      `yaml:"invert_y"`
}

// LightingConfig holds the directional sun and ambient term.
type LightingConfig struct {
	SunLongitude     float32    `yaml:"sun_longitude"` // degrees
	SunLatitude      float32    `yaml:"sun_latitude"`  // degrees
	SunColor         [3]float32 `yaml:"sun_color,flow"`
	AmbientColor     [3]float32 `yaml:"ambient_color,flow"`
	AmbientIntensity float32    `yaml:"ambient_intensity"`
}

// RegenConfig controls live regeneration while tuning.
type RegenConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Planet: planet.Default(),
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FOV:        45,
			ClearColor: [4]float32{0.05, 0.05, 0.08, 1.0},
		},
		Camera: CameraConfig{
			Position:      math.Vec3{X: 0, Y: 20, Z: 10},
			LookAt:        math.Vec3{},
			MovementSpeed: 2.0,
			RotationSpeed: 1.7,
		},
		Lighting: LightingConfig{
			SunLongitude:     0,
			SunLatitude:      45,
			SunColor:         [3]float32{1, 1, 1},
			AmbientColor:     [3]float32{0.98, 0.92, 0.84}, // antique white
			AmbientIntensity: 0.2,
		},
		Regen: RegenConfig{
			Debounce: 150 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
