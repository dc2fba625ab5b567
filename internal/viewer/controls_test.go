package viewer

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/cubeplanet/internal/engine/input"
	"github.com/Faultbox/cubeplanet/pkg/noise"
	"github.com/Faultbox/cubeplanet/pkg/planet"
)

func TestEditPlanetResolution(t *testing.T) {
	tests := []struct {
		name string
		res  int
		key  sdl.Scancode
		want int
	}{
		{"double", 32, keyResUp, 64},
		{"cap at max", planet.MaxResolution, keyResUp, planet.MaxResolution},
		{"halve", 32, keyResDown, 16},
		{"floor at min", 3, keyResDown, planet.MinResolution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := planet.Default()
			cfg.Resolution = tt.res

			got, ok := editPlanet(cfg, tt.key)
			if !ok {
				t.Fatal("key not recognized")
			}
			if got.Resolution != tt.want {
				t.Errorf("resolution = %d, want %d", got.Resolution, tt.want)
			}
			if err := got.Validate(); err != nil {
				t.Errorf("edited config invalid: %v", err)
			}
		})
	}
}

func TestEditPlanetReseed(t *testing.T) {
	cfg := planet.Default()
	got, _ := editPlanet(cfg, keyReseed)

	seen := map[int64]bool{}
	for _, l := range cfg.Layers {
		seen[l.Seed] = true
	}
	for i, l := range got.Layers {
		if seen[l.Seed] {
			t.Errorf("layer %d reuses seed %d", i, l.Seed)
		}
	}
	if cfg.Layers[0].Seed != 0 {
		t.Error("original config modified")
	}
}

func TestEditPlanetMaskToggle(t *testing.T) {
	cfg := planet.Default()

	masked, _ := editPlanet(cfg, keyMask)
	if masked.Layers[0].MaskByPrevious {
		t.Error("first layer must never be masked")
	}
	for i := 1; i < len(masked.Layers); i++ {
		if !masked.Layers[i].MaskByPrevious {
			t.Errorf("layer %d not masked", i)
		}
	}

	unmasked, _ := editPlanet(masked, keyMask)
	for i, l := range unmasked.Layers {
		if l.MaskByPrevious {
			t.Errorf("layer %d still masked", i)
		}
	}

	// Mixed state masks everything.
	mixed := cfg.Clone()
	mixed.Layers[2].MaskByPrevious = true
	got, _ := editPlanet(mixed, keyMask)
	if !got.Layers[1].MaskByPrevious || !got.Layers[2].MaskByPrevious {
		t.Error("mixed masks should all become masked")
	}
}

func TestEditPlanetNoiseAndRadius(t *testing.T) {
	cfg := planet.Default()

	got, _ := editPlanet(cfg, keyNoise)
	if got.Noise != noise.OpenSimplex {
		t.Errorf("noise = %q, want opensimplex", got.Noise)
	}
	got, _ = editPlanet(got, keyNoise)
	if got.Noise != noise.Perlin {
		t.Errorf("noise = %q, want to wrap to perlin", got.Noise)
	}

	got, _ = editPlanet(cfg, keyGrowR)
	if got.Radius <= cfg.Radius {
		t.Errorf("radius %v did not grow", got.Radius)
	}
	got, _ = editPlanet(got, keyShrinkR)
	if d := got.Radius - cfg.Radius; d > 1e-9 || d < -1e-9 {
		t.Errorf("grow then shrink = %v, want %v", got.Radius, cfg.Radius)
	}
}

func TestEditPlanetIgnoresOtherKeys(t *testing.T) {
	cfg := planet.Default()
	got, ok := editPlanet(cfg, sdl.SCANCODE_W)
	if ok {
		t.Error("movement key treated as a planet edit")
	}
	if !got.Equal(cfg) {
		t.Error("config changed by an unrelated key")
	}
}

func TestMoveAxes(t *testing.T) {
	in := input.New()
	in.Apply(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_W})
	in.Apply(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_A})
	in.Apply(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_LSHIFT})

	f, r, u := moveAxes(in)
	if f != 1 || r != -1 || u != -1 {
		t.Errorf("moveAxes() = %v, %v, %v; want 1, -1, -1", f, r, u)
	}

	// Opposite keys cancel.
	in.Apply(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_S})
	if f, _, _ := moveAxes(in); f != 0 {
		t.Errorf("forward with W+S = %v, want 0", f)
	}
}
