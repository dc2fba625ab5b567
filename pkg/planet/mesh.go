package planet

import "github.com/Faultbox/cubeplanet/pkg/math"

// Vertex is one planet mesh vertex with all attributes.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	UV       [2]float32
	Color    [4]float32
	Tangent  [4]float32 // xyz unit tangent, w = bitangent handedness (+1 or -1)
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// emptyBounds is the identity for Extend.
var emptyBounds = Bounds{
	Min: [3]float32{1e30, 1e30, 1e30},
	Max: [3]float32{-1e30, -1e30, -1e30},
}

// Extend grows b to contain p.
func (b Bounds) Extend(p [3]float32) Bounds {
	v := math.Vec3FromArray(p)
	return Bounds{
		Min: math.Vec3FromArray(b.Min).Min(v).Array(),
		Max: math.Vec3FromArray(b.Max).Max(v).Array(),
	}
}

// Union returns the smallest box containing both.
func (b Bounds) Union(other Bounds) Bounds {
	return b.Extend(other.Min).Extend(other.Max)
}

// Center returns the box center.
func (b Bounds) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// Range is a closed interval of elevation offsets.
type Range struct {
	Min, Max float64
}

var emptyRange = Range{Min: 1e300, Max: -1e300}

func (r Range) include(v float64) Range {
	return Range{Min: min(r.Min, v), Max: max(r.Max, v)}
}

// MeshBuffer is a generated planet ready for upload. Triangles are listed in
// Indices and wind counter-clockwise seen from outside the planet.
// The generator keeps no reference to it after returning.
type MeshBuffer struct {
	Vertices   []Vertex
	Indices    []uint32
	Faces      []FaceRange
	Resolution int
}

// Bounds returns the bounding box of every face.
func (m *MeshBuffer) Bounds() Bounds {
	b := emptyBounds
	for _, f := range m.Faces {
		b = b.Union(f.Bounds)
	}
	return b
}

// Elevation returns the range of noise offsets over every face.
func (m *MeshBuffer) Elevation() Range {
	r := emptyRange
	for _, f := range m.Faces {
		r = r.include(f.Elevation.Min).include(f.Elevation.Max)
	}
	return r
}

// TriangleCount returns the number of triangles.
func (m *MeshBuffer) TriangleCount() int {
	return len(m.Indices) / 3
}

// FaceVertices returns the vertices of one face, sharing storage with m.
func (m *MeshBuffer) FaceVertices(r FaceRange) []Vertex {
	return m.Vertices[r.BaseVertex : r.BaseVertex+r.VertexCount]
}

// FaceIndices returns the indices of one face, still in the combined index space.
func (m *MeshBuffer) FaceIndices(r FaceRange) []uint32 {
	return m.Indices[r.BaseIndex : r.BaseIndex+r.IndexCount]
}

// SplitFaces returns one independent buffer per face, each indexed from zero.
// The results share no storage with m.
func (m *MeshBuffer) SplitFaces() []*MeshBuffer {
	out := make([]*MeshBuffer, 0, len(m.Faces))
	for _, r := range m.Faces {
		verts := append([]Vertex(nil), m.FaceVertices(r)...)
		src := m.FaceIndices(r)
		indices := make([]uint32, len(src))
		for i, idx := range src {
			indices[i] = idx - r.BaseVertex
		}

		local := r
		local.BaseVertex = 0
		local.BaseIndex = 0

		out = append(out, &MeshBuffer{
			Vertices:   verts,
			Indices:    indices,
			Faces:      []FaceRange{local},
			Resolution: m.Resolution,
		})
	}
	return out
}
