// Package export writes planet meshes to interchange formats.
package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/cubeplanet/pkg/planet"
)

// WriteOBJ writes m as Wavefront OBJ with one group per cube face. Positions,
// UVs and normals share the vertex numbering.
func WriteOBJ(w io.Writer, m *planet.MeshBuffer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# cube planet: %d vertices, %d triangles\n", len(m.Vertices), m.TriangleCount())
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.Position[0], v.Position[1], v.Position[2])
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "vt %g %g\n", v.UV[0], v.UV[1])
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal[0], v.Normal[1], v.Normal[2])
	}

	for _, r := range m.Faces {
		fmt.Fprintf(bw, "g %s\n", r.Face)
		idx := m.FaceIndices(r)
		for t := 0; t+2 < len(idx); t += 3 {
			// OBJ indices are 1-based.
			a, b, c := idx[t]+1, idx[t+1]+1, idx[t+2]+1
			fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
		}
	}

	return bw.Flush()
}
