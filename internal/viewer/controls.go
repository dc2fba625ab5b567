package viewer

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/cubeplanet/pkg/noise"
	"github.com/Faultbox/cubeplanet/pkg/planet"
)

// Planet edit keys.
const (
	keyReseed  = sdl.SCANCODE_R
	keyResDown = sdl.SCANCODE_LEFTBRACKET
	keyResUp   = sdl.SCANCODE_RIGHTBRACKET
	keyMask    = sdl.SCANCODE_M
	keyNoise   = sdl.SCANCODE_O
	keyGrowR   = sdl.SCANCODE_EQUALS
	keyShrinkR = sdl.SCANCODE_MINUS
)

const radiusScale = 1.1

// editPlanet applies one edit key to cfg. It reports whether the key was a
// planet edit at all; the result may still equal cfg at a limit.
func editPlanet(cfg planet.Config, key sdl.Scancode) (planet.Config, bool) {
	switch key {
	case keyReseed:
		// Shift by the layer count so no layer reuses a seed of the previous set.
		return cfg.Reseed(int64(len(cfg.Layers))), true

	case keyResUp:
		cfg = cfg.Clone()
		cfg.Resolution = min(cfg.Resolution*2, planet.MaxResolution)
		return cfg, true

	case keyResDown:
		cfg = cfg.Clone()
		cfg.Resolution = max(cfg.Resolution/2, planet.MinResolution)
		return cfg, true

	case keyMask:
		return toggleMasks(cfg), true

	case keyNoise:
		cfg = cfg.Clone()
		cfg.Noise = nextNoise(cfg)
		return cfg, true

	case keyGrowR:
		cfg = cfg.Clone()
		cfg.Radius *= radiusScale
		return cfg, true

	case keyShrinkR:
		cfg = cfg.Clone()
		cfg.Radius /= radiusScale
		return cfg, true
	}
	return cfg, false
}

// toggleMasks flips MaskByPrevious on every layer after the first. When the
// layers disagree they all end up masked.
func toggleMasks(cfg planet.Config) planet.Config {
	cfg = cfg.Clone()
	if len(cfg.Layers) < 2 {
		return cfg
	}

	allMasked := true
	for _, l := range cfg.Layers[1:] {
		allMasked = allMasked && l.MaskByPrevious
	}
	for i := 1; i < len(cfg.Layers); i++ {
		cfg.Layers[i].MaskByPrevious = !allMasked
	}
	return cfg
}

func nextNoise(cfg planet.Config) noise.Kind {
	for i, k := range noise.Kinds {
		if k == cfg.Noise {
			return noise.Kinds[(i+1)%len(noise.Kinds)]
		}
	}
	return noise.Kinds[0]
}

// keyState is the part of input the camera controls read.
type keyState interface {
	IsKeyHeld(sdl.Scancode) bool
}

// moveAxes maps held keys to fly camera axes: W/S forward, A/D strafe,
// Space/LShift up and down.
func moveAxes(keys keyState) (forward, right, up float32) {
	axis := func(pos, neg sdl.Scancode) float32 {
		var v float32
		if keys.IsKeyHeld(pos) {
			v++
		}
		if keys.IsKeyHeld(neg) {
			v--
		}
		return v
	}
	return axis(sdl.SCANCODE_W, sdl.SCANCODE_S),
		axis(sdl.SCANCODE_D, sdl.SCANCODE_A),
		axis(sdl.SCANCODE_SPACE, sdl.SCANCODE_LSHIFT)
}
