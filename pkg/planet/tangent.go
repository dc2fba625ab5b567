package planet

import (
	"github.com/Faultbox/cubeplanet/pkg/math"
)

// generateTangents fills Vertex.Tangent from positions, UVs and normals.
// Per-triangle UV gradients are accumulated per vertex, then made orthogonal
// to the normal. W carries the bitangent sign.
func generateTangents(verts []Vertex, indices []uint32) {
	tan := make([]math.Vec3, len(verts))
	bitan := make([]math.Vec3, len(verts))

	for t := 0; t+2 < len(indices); t += 3 {
		a, b, c := indices[t], indices[t+1], indices[t+2]

		p0 := math.Vec3FromArray(verts[a].Position)
		e1 := math.Vec3FromArray(verts[b].Position).Sub(p0)
		e2 := math.Vec3FromArray(verts[c].Position).Sub(p0)

		uv0 := math.Vec2{X: verts[a].UV[0], Y: verts[a].UV[1]}
		d1 := math.Vec2{X: verts[b].UV[0], Y: verts[b].UV[1]}.Sub(uv0)
		d2 := math.Vec2{X: verts[c].UV[0], Y: verts[c].UV[1]}.Sub(uv0)

		det := d1.Cross(d2)
		if det == 0 {
			continue
		}
		inv := 1 / det

		sdir := e1.Scale(d2.Y).Sub(e2.Scale(d1.Y)).Scale(inv)
		tdir := e2.Scale(d1.X).Sub(e1.Scale(d2.X)).Scale(inv)

		for _, i := range [3]uint32{a, b, c} {
			tan[i] = tan[i].Add(sdir)
			bitan[i] = bitan[i].Add(tdir)
		}
	}

	for i := range verts {
		n := math.Vec3FromArray(verts[i].Normal)

		t := tan[i].Sub(n.Scale(n.Dot(tan[i]))).Normalize()
		if t == (math.Vec3{}) {
			t = perpendicular(n)
		}

		w := float32(1)
		if n.Cross(t).Dot(bitan[i]) < 0 {
			w = -1
		}

		verts[i].Tangent = [4]float32{t.X, t.Y, t.Z, w}
	}
}

// perpendicular returns some unit vector orthogonal to n.
func perpendicular(n math.Vec3) math.Vec3 {
	axis := math.UnitX
	if n.X > 0.9 || n.X < -0.9 {
		axis = math.UnitY
	}
	return axis.Sub(n.Scale(n.Dot(axis))).Normalize()
}
