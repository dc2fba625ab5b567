// Package planet generates cube-sphere planet meshes displaced by layered noise.
package planet

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/cubeplanet/pkg/math"
	"github.com/Faultbox/cubeplanet/pkg/noise"
)

// Validation errors.
var (
	ErrInvalidResolution = errors.New("invalid resolution")
	ErrInvalidRadius     = errors.New("invalid radius")
	ErrNoLayers          = errors.New("no noise layers")
	ErrInvalidLayer      = errors.New("invalid noise layer")
	ErrInvalidOrigin     = errors.New("invalid origin")
)

// Resolution limits. MaxResolution keeps 6*res^2 vertices well inside uint32 indices.
const (
	MinResolution = 2
	MaxResolution = 1024
)

// DefaultColor is the placeholder vertex color.
var DefaultColor = [4]float32{1.0, 0.8, 1.0, 1.0}

// Config describes one generation request. It is a value: callers pass a copy
// per regeneration and the generator keeps nothing from it.
type Config struct {
	Radius     float64       `yaml:"radius"`
	Resolution int           `yaml:"resolution"`
	Origin     math.Vec3     `yaml:"origin"`
	Noise      noise.Kind    `yaml:"noise"`
	Layers     []noise.Layer `yaml:"layers"`
	Color      [4]float32    `yaml:"color,flow"`
}

// Default returns the built-in planet: three unit perlin layers with seeds 0, 1, 2.
func Default() Config {
	return Config{
		Radius:     20.0,
		Resolution: 32,
		Origin:     math.Vec3{X: 0, Y: 10, Z: -50},
		Noise:      noise.Perlin,
		Layers: []noise.Layer{
			{Seed: 0, Amplitude: 1.0, Frequency: 1.0},
			{Seed: 1, Amplitude: 1.0, Frequency: 1.0},
			{Seed: 2, Amplitude: 1.0, Frequency: 1.0},
		},
		Color: DefaultColor,
	}
}

// Clone returns a copy that shares no slices with c.
func (c Config) Clone() Config {
	c.Layers = append([]noise.Layer(nil), c.Layers...)
	return c
}

// Equal reports whether two configs describe the same planet.
func (c Config) Equal(other Config) bool {
	if c.Radius != other.Radius || c.Resolution != other.Resolution ||
		c.Origin != other.Origin || c.Noise != other.Noise || c.Color != other.Color {
		return false
	}
	if len(c.Layers) != len(other.Layers) {
		return false
	}
	for i := range c.Layers {
		if c.Layers[i] != other.Layers[i] {
			return false
		}
	}
	return true
}

// Validate checks the config before any arithmetic depends on it.
func (c Config) Validate() error {
	if c.Resolution < MinResolution || c.Resolution > MaxResolution {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidResolution, c.Resolution, MinResolution, MaxResolution)
	}
	if c.Radius <= 0 || gomath.IsNaN(c.Radius) || gomath.IsInf(c.Radius, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidRadius, c.Radius)
	}
	if !finite(c.Origin) {
		return fmt.Errorf("%w: %v", ErrInvalidOrigin, c.Origin)
	}
	if len(c.Layers) == 0 {
		return ErrNoLayers
	}
	for i, l := range c.Layers {
		if !finite(l.Origin) {
			return fmt.Errorf("%w: layer %d origin %v", ErrInvalidLayer, i, l.Origin)
		}
		if !(l.Amplitude >= 0) || gomath.IsInf(l.Amplitude, 0) {
			return fmt.Errorf("%w: layer %d amplitude %v", ErrInvalidLayer, i, l.Amplitude)
		}
		if !(l.Frequency >= 0) || gomath.IsInf(l.Frequency, 0) {
			return fmt.Errorf("%w: layer %d frequency %v", ErrInvalidLayer, i, l.Frequency)
		}
	}
	if !c.Noise.Valid() {
		return fmt.Errorf("%w: %q", noise.ErrUnknownKind, string(c.Noise))
	}
	return nil
}

func finite(v math.Vec3) bool {
	for _, c := range v.Array() {
		f := float64(c)
		if gomath.IsNaN(f) || gomath.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Reseed shifts every layer seed by delta, keeping relative seeds intact.
func (c Config) Reseed(delta int64) Config {
	c = c.Clone()
	for i := range c.Layers {
		c.Layers[i].Seed += delta
	}
	return c
}
