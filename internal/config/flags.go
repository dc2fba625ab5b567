package config

import (
	"flag"

	"github.com/Faultbox/cubeplanet/pkg/noise"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagResolution = flag.Int("resolution", 0, "Vertices per face edge")
	flagRadius     = flag.Float64("radius", 0, "Planet base radius")
	flagSeed       = flag.Int64("seed", 0, "Added to every layer seed")
	flagNoise      = flag.String("noise", "", "Noise primitive (perlin, opensimplex)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path given with -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagResolution > 0 {
		cfg.Planet.Resolution = *flagResolution
	}
	if *flagRadius > 0 {
		cfg.Planet.Radius = *flagRadius
	}
	if *flagSeed != 0 {
		cfg.Planet = cfg.Planet.Reseed(*flagSeed)
	}
	if *flagNoise != "" {
		cfg.Planet.Noise = noise.Kind(*flagNoise)
	}
}
