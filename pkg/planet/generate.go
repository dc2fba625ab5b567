package planet

import (
	"fmt"

	"github.com/Faultbox/cubeplanet/pkg/math"
	"github.com/Faultbox/cubeplanet/pkg/noise"
)

// Generate builds the planet mesh for cfg: six faces in one combined buffer,
// each with its own FaceRange. It is a pure function of cfg.
//
// The Y component of every vertex offset is mirrored before Origin is added.
// Together with the grid triangulation this makes triangles wind
// counter-clockwise seen from outside, which is what the renderers cull with.
func Generate(cfg Config) (*MeshBuffer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generate planet: %w", err)
	}

	field, err := noise.NewField(cfg.Noise, cfg.Layers)
	if err != nil {
		return nil, fmt.Errorf("generate planet: %w", err)
	}

	res := cfg.Resolution
	m := &MeshBuffer{
		Vertices:   make([]Vertex, 0, FaceCount*res*res),
		Indices:    make([]uint32, 0, FaceCount*(res-1)*(res-1)*6),
		Faces:      make([]FaceRange, FaceCount),
		Resolution: res,
	}

	for f := Face(0); f < FaceCount; f++ {
		m.Faces[f] = buildFace(m, f, cfg, field)
		computeFaceNormals(m.FaceVertices(m.Faces[f]), res, cfg.Origin)
	}

	generateTangents(m.Vertices, m.Indices)

	return m, nil
}

// buildFace appends one face's grid of vertices and triangles to m.
func buildFace(m *MeshBuffer, f Face, cfg Config, field *noise.Field) FaceRange {
	res := cfg.Resolution
	r := faceRange(f, res)
	last := float32(res - 1)
	stride := uint32(res)

	for y := 0; y < res; y++ {
		v := float32(y) / last

		for x := 0; x < res; x++ {
			u := float32(x) / last

			dir := f.Direction(u, v)
			offset := field.Sample(dir)

			local := dir.Scale(float32(cfg.Radius + offset)).FlipY()
			pos := cfg.Origin.Add(local).Array()

			m.Vertices = append(m.Vertices, Vertex{
				Position: pos,
				UV:       [2]float32{u, v},
				Color:    cfg.Color,
			})
			r.Bounds = r.Bounds.Extend(pos)
			r.Elevation = r.Elevation.include(offset)

			// Cells on the last row or column have no right/below neighbor.
			if x == res-1 || y == res-1 {
				continue
			}
			i := r.BaseVertex + uint32(y*res+x)
			m.Indices = append(m.Indices,
				i, i+stride, i+1,
				i+stride, i+stride+1, i+1,
			)
		}
	}

	return r
}

// computeFaceNormals derives normals for one face's res x res grid by finite
// difference. verts is the face's own slice, so lookups never leave the face.
func computeFaceNormals(verts []Vertex, res int, origin math.Vec3) {
	for y := 0; y < res; y++ {
		ny := neighbor(y, res)
		for x := 0; x < res; x++ {
			nx := neighbor(x, res)

			p := math.Vec3FromArray(verts[y*res+x].Position)
			px := math.Vec3FromArray(verts[y*res+nx].Position)
			py := math.Vec3FromArray(verts[ny*res+x].Position)

			radial := p.Sub(origin)
			n := px.Sub(p).Cross(py.Sub(p)).Normalize()
			if n == (math.Vec3{}) {
				n = radial.Normalize()
			}
			if n.Dot(radial) < 0 {
				n = n.Negate()
			}

			verts[y*res+x].Normal = n.Array()
		}
	}
}

// neighbor returns the next grid coordinate after i, or the previous one on
// the trailing edge.
func neighbor(i, res int) int {
	if i+1 < res {
		return i + 1
	}
	return max(i-1, 0)
}
