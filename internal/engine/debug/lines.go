// Package debug builds planet debug overlays and captures screenshots.
package debug

import (
	"github.com/Faultbox/cubeplanet/pkg/planet"
)

// BoxLineVertexCount is the number of line vertices per box (12 edges x 2).
const BoxLineVertexCount = 24

// BoxLines returns the 12 edges of an axis-aligned box as xyz line pairs.
func BoxLines(b planet.Bounds) []float32 {
	lo, hi := b.Min, b.Max
	corner := func(i int) [3]float32 {
		c := lo
		if i&1 != 0 {
			c[0] = hi[0]
		}
		if i&2 != 0 {
			c[1] = hi[1]
		}
		if i&4 != 0 {
			c[2] = hi[2]
		}
		return c
	}

	out := make([]float32, 0, BoxLineVertexCount*3)
	// Corners differing in exactly one bit share an edge.
	for i := 0; i < 8; i++ {
		for bit := 1; bit < 8; bit <<= 1 {
			if i&bit != 0 {
				continue
			}
			p, q := corner(i), corner(i|bit)
			out = append(out, p[0], p[1], p[2], q[0], q[1], q[2])
		}
	}
	return out
}

// FaceBoxLines returns one box per face of m.
func FaceBoxLines(m *planet.MeshBuffer) []float32 {
	out := make([]float32, 0, len(m.Faces)*BoxLineVertexCount*3)
	for _, r := range m.Faces {
		out = append(out, BoxLines(r.Bounds)...)
	}
	return out
}

// NormalLines returns a segment of the given length along every every-th
// vertex normal, starting at the vertex.
func NormalLines(m *planet.MeshBuffer, length float32, every int) []float32 {
	every = max(every, 1)
	out := make([]float32, 0, (len(m.Vertices)/every+1)*6)
	for i := 0; i < len(m.Vertices); i += every {
		p, n := m.Vertices[i].Position, m.Vertices[i].Normal
		out = append(out,
			p[0], p[1], p[2],
			p[0]+n[0]*length, p[1]+n[1]*length, p[2]+n[2]*length,
		)
	}
	return out
}
