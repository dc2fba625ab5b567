package picking

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/cubeplanet/pkg/math"
	"github.com/Faultbox/cubeplanet/pkg/planet"
)

func near(a, b, eps float32) bool {
	return gomath.Abs(float64(a-b)) <= float64(eps)
}

func TestScreenToRayCenter(t *testing.T) {
	eye := math.Vec3{X: 0, Y: 0, Z: 10}
	view := math.LookAt(eye, math.Vec3{}, math.UnitY)
	proj := math.Perspective(float32(gomath.Pi/4), 800.0/600.0, 0.1, 100)

	r := ScreenToRay(400, 300, 800, 600, proj.Mul(view).Inverse())

	if !near(r.Direction.X, 0, 1e-3) || !near(r.Direction.Y, 0, 1e-3) || !near(r.Direction.Z, -1, 1e-3) {
		t.Errorf("direction = %v, want (0,0,-1)", r.Direction)
	}
	if !near(r.Origin.X, 0, 1e-3) || !near(r.Origin.Y, 0, 1e-3) || !near(r.Origin.Z, 9.9, 1e-2) {
		t.Errorf("origin = %v, want on the near plane at z=9.9", r.Origin)
	}
}

func TestScreenToRayTopLeft(t *testing.T) {
	view := math.LookAt(math.Vec3{Z: 10}, math.Vec3{}, math.UnitY)
	proj := math.Perspective(float32(gomath.Pi/4), 1, 0.1, 100)

	r := ScreenToRay(0, 0, 600, 600, proj.Mul(view).Inverse())
	if r.Direction.X >= 0 || r.Direction.Y <= 0 {
		t.Errorf("top-left ray should point left and up, got %v", r.Direction)
	}
}

func TestIntersectBounds(t *testing.T) {
	box := planet.Bounds{Min: [3]float32{-1, -1, -1}, Max: [3]float32{1, 1, 1}}

	tests := []struct {
		name  string
		ray   Ray
		hit   bool
		wantT float32
	}{
		{"front", Ray{math.Vec3{Z: 5}, math.Vec3{Z: -1}}, true, 4},
		{"inside", Ray{math.Vec3{}, math.Vec3{X: 1}}, true, 1},
		{"behind", Ray{math.Vec3{Z: 5}, math.Vec3{Z: 1}}, false, 0},
		{"parallel outside", Ray{math.Vec3{Y: 3, Z: 5}, math.Vec3{Z: -1}}, false, 0},
		{"miss", Ray{math.Vec3{X: 3, Z: 5}, math.Vec3{Z: -1}}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := tt.ray.IntersectBounds(box)
			if hit != tt.hit {
				t.Fatalf("hit = %v, want %v", hit, tt.hit)
			}
			if hit && !near(got, tt.wantT, 1e-5) {
				t.Errorf("t = %f, want %f", got, tt.wantT)
			}
		})
	}
}

func TestIntersectTriangle(t *testing.T) {
	a := math.Vec3{X: -1, Y: -1}
	b := math.Vec3{X: 1, Y: -1}
	c := math.Vec3{Y: 1}

	tests := []struct {
		name string
		ray  Ray
		hit  bool
	}{
		{"front side", Ray{math.Vec3{Z: 2}, math.Vec3{Z: -1}}, true},
		{"back side", Ray{math.Vec3{Z: -2}, math.Vec3{Z: 1}}, true},
		{"outside edge", Ray{math.Vec3{X: 2, Z: 2}, math.Vec3{Z: -1}}, false},
		{"pointing away", Ray{math.Vec3{Z: 2}, math.Vec3{Z: 1}}, false},
		{"parallel", Ray{math.Vec3{Z: 2}, math.Vec3{X: 1}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := tt.ray.IntersectTriangle(a, b, c)
			if hit != tt.hit {
				t.Fatalf("hit = %v, want %v", hit, tt.hit)
			}
			if hit && !near(got, 2, 1e-5) {
				t.Errorf("t = %f, want 2", got)
			}
		})
	}
}

func flatPlanet(t *testing.T) (planet.Config, *planet.MeshBuffer) {
	t.Helper()
	cfg := planet.Default()
	cfg.Resolution = 3
	for i := range cfg.Layers {
		cfg.Layers[i].Amplitude = 0
	}
	m, err := planet.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return cfg, m
}

func TestPickPlanet(t *testing.T) {
	cfg, m := flatPlanet(t)
	o := cfg.Origin

	// Positions are mirrored in Y, so the face generated towards -Y sits on top.
	tests := []struct {
		name string
		ray  Ray
		face planet.Face
	}{
		{"from +Z", Ray{o.Add(math.Vec3{Z: 100}), math.Vec3{Z: -1}}, planet.FaceFront},
		{"from -Z", Ray{o.Add(math.Vec3{Z: -100}), math.Vec3{Z: 1}}, planet.FaceBack},
		{"from above", Ray{o.Add(math.Vec3{Y: 100}), math.Vec3{Y: -1}}, planet.FaceBottom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := PickPlanet(tt.ray, m, o, cfg.Radius)
			if !ok {
				t.Fatal("PickPlanet() missed")
			}
			if hit.Face != tt.face {
				t.Errorf("face = %v, want %v", hit.Face, tt.face)
			}
			// The ray passes through a grid vertex at the face center.
			if !near(hit.Distance, 100-float32(cfg.Radius), 1e-3) {
				t.Errorf("distance = %f, want %f", hit.Distance, 100-cfg.Radius)
			}
			if gomath.Abs(hit.Elevation) > 1e-3 {
				t.Errorf("elevation = %f, want 0 on a flat planet", hit.Elevation)
			}
		})
	}
}

func TestPickPlanetMiss(t *testing.T) {
	cfg, m := flatPlanet(t)
	r := Ray{cfg.Origin.Add(math.Vec3{X: 100, Z: 100}), math.Vec3{Z: -1}}
	if _, ok := PickPlanet(r, m, cfg.Origin, cfg.Radius); ok {
		t.Error("PickPlanet() hit with a ray passing beside the planet")
	}
}
