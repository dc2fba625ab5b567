// Package scene draws a generated planet with its debug overlays.
package scene

import (
	"github.com/Faultbox/cubeplanet/internal/engine/debug"
	"github.com/Faultbox/cubeplanet/internal/engine/lighting"
	"github.com/Faultbox/cubeplanet/pkg/math"
	"github.com/Faultbox/cubeplanet/pkg/planet"
)

// Scene owns the planet renderer, overlay renderers and lighting.
type Scene struct {
	Planet  *PlanetRenderer
	normals *LineRenderer
	bounds  *LineRenderer

	Light lighting.Light

	ShowNormals bool
	ShowBounds  bool
	NormalScale float32
}

// New creates a scene lit by light.
func New(light lighting.Light) (*Scene, error) {
	pr, err := NewPlanetRenderer()
	if err != nil {
		return nil, err
	}
	normals, err := NewLineRenderer([3]float32{0.2, 0.9, 1.0})
	if err != nil {
		pr.Destroy()
		return nil, err
	}
	bounds, err := NewLineRenderer([3]float32{1.0, 0.8, 0.2})
	if err != nil {
		pr.Destroy()
		normals.Destroy()
		return nil, err
	}

	return &Scene{
		Planet:      pr,
		normals:     normals,
		bounds:      bounds,
		Light:       light,
		NormalScale: 1.0,
	}, nil
}

// SetMesh uploads a new planet mesh and rebuilds the overlays from it.
func (s *Scene) SetMesh(m *planet.MeshBuffer, cfg planet.Config) {
	s.Planet.Upload(m, cfg.Origin, cfg.Radius)

	// Normal segments scale with the cell size so they stay readable.
	cell := float32(cfg.Radius) * 2 / float32(max(m.Resolution-1, 1))
	every := max(m.Resolution/32, 1)
	s.normals.SetLines(debug.NormalLines(m, cell*s.NormalScale, every))
	s.bounds.SetLines(debug.FaceBoxLines(m))
}

// Render draws the planet and enabled overlays.
func (s *Scene) Render(view, proj math.Mat4) {
	viewProj := proj.Mul(view)
	s.Planet.Render(viewProj, s.Light)
	if s.ShowNormals {
		s.normals.Render(viewProj)
	}
	if s.ShowBounds {
		s.bounds.Render(viewProj)
	}
}

// Destroy releases all GPU resources.
func (s *Scene) Destroy() {
	s.Planet.Destroy()
	s.normals.Destroy()
	s.bounds.Destroy()
}
