// Package picking casts rays from screen space onto a planet mesh.
package picking

import (
	gomath "math"

	"github.com/Faultbox/cubeplanet/pkg/math"
	"github.com/Faultbox/cubeplanet/pkg/planet"
)

// Ray is a half-line with a unit direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// ScreenToRay converts pixel coordinates in a viewport to a world-space ray.
// invViewProj is the inverse of proj * view.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH

	near := invViewProj.TransformVec3(math.Vec3{X: ndcX, Y: ndcY, Z: -1})
	far := invViewProj.TransformVec3(math.Vec3{X: ndcX, Y: ndcY, Z: 1})

	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

// IntersectBounds tests the ray against a box with the slab method. It
// returns the entry distance, or the exit distance when the ray starts inside.
func (r Ray) IntersectBounds(b planet.Bounds) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	origin := r.Origin.Array()
	dir := r.Direction.Array()
	for axis := range 3 {
		if dir[axis] == 0 {
			if origin[axis] < b.Min[axis] || origin[axis] > b.Max[axis] {
				return 0, false
			}
			continue
		}
		t1 := (b.Min[axis] - origin[axis]) / dir[axis]
		t2 := (b.Max[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// IntersectTriangle returns the distance to a triangle hit from either side
// (Moller-Trumbore).
func (r Ray) IntersectTriangle(a, b, c math.Vec3) (t float32, hit bool) {
	const eps = 1e-7

	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := r.Direction.Cross(e2)
	det := e1.Dot(p)
	if det > -eps && det < eps {
		return 0, false
	}
	inv := 1 / det

	s := r.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t = e2.Dot(q) * inv
	return t, t > 0
}

// Hit describes where a ray meets the planet surface.
type Hit struct {
	Face      planet.Face
	Point     math.Vec3
	Distance  float32
	Elevation float64 // distance from origin minus radius
}

// PickPlanet returns the nearest surface hit. Faces whose bounds the ray
// misses are skipped before testing their triangles.
func PickPlanet(r Ray, m *planet.MeshBuffer, origin math.Vec3, radius float64) (Hit, bool) {
	best := Hit{Distance: float32(gomath.MaxFloat32)}
	found := false

	for _, fr := range m.Faces {
		if _, ok := r.IntersectBounds(fr.Bounds); !ok {
			continue
		}

		idx := m.FaceIndices(fr)
		for i := 0; i+2 < len(idx); i += 3 {
			a := math.Vec3FromArray(m.Vertices[idx[i]].Position)
			b := math.Vec3FromArray(m.Vertices[idx[i+1]].Position)
			c := math.Vec3FromArray(m.Vertices[idx[i+2]].Position)
			if t, ok := r.IntersectTriangle(a, b, c); ok && t < best.Distance {
				best.Distance = t
				best.Face = fr.Face
				found = true
			}
		}
	}

	if !found {
		return Hit{}, false
	}
	best.Point = r.At(best.Distance)
	best.Elevation = float64(best.Point.Distance(origin)) - radius
	return best, true
}
