package planet

import (
	gomath "math"

	"github.com/Faultbox/cubeplanet/pkg/math"
)

// Face is one of the six cube faces.
type Face int

const (
	FaceFront  Face = iota // +Z
	FaceBottom             // -Y
	FaceTop                // +Y
	FaceBack               // -Z
	FaceRight              // +X
	FaceLeft               // -X
)

// FaceCount is the number of cube faces.
const FaceCount = 6

var faceNames = [FaceCount]string{"front", "bottom", "top", "back", "right", "left"}

func (f Face) String() string {
	if f < 0 || f >= FaceCount {
		return "unknown"
	}
	return faceNames[f]
}

// faceRotations map the canonical (x, y, 1) grid onto each face.
var faceRotations = [FaceCount]math.Mat3{
	FaceFront:  math.Identity3(),
	FaceBottom: math.Rotation3X(gomath.Pi / 2).Snap(1e-6),
	FaceTop:    math.Rotation3X(-gomath.Pi / 2).Snap(1e-6),
	FaceBack:   math.Rotation3X(gomath.Pi).Snap(1e-6),
	FaceRight:  math.Rotation3Y(gomath.Pi / 2).Snap(1e-6),
	FaceLeft:   math.Rotation3Y(-gomath.Pi / 2).Snap(1e-6),
}

// Rotation returns the matrix that orients the canonical grid onto f.
func (f Face) Rotation() math.Mat3 {
	return faceRotations[f]
}

// Direction returns the unit sphere direction for plane coordinates u, v in [0, 1].
func (f Face) Direction(u, v float32) math.Vec3 {
	local := math.UnitZ.Add(math.Vec3{X: -1 + 2*u, Y: -1 + 2*v}).Normalize()
	return faceRotations[f].MulVec3(local)
}

// FaceRange is one face's slice of a combined mesh. Each face owns its own
// index space: BaseVertex plus a local grid index.
type FaceRange struct {
	Face        Face
	BaseVertex  uint32
	VertexCount uint32
	BaseIndex   uint32
	IndexCount  uint32
	Bounds      Bounds
	Elevation   Range
}

// faceRange lays out face f of a combined mesh at resolution res.
func faceRange(f Face, res int) FaceRange {
	verts := uint32(res * res)
	idx := uint32((res - 1) * (res - 1) * 6)
	return FaceRange{
		Face:        f,
		BaseVertex:  uint32(f) * verts,
		VertexCount: verts,
		BaseIndex:   uint32(f) * idx,
		IndexCount:  idx,
		Bounds:      emptyBounds,
		Elevation:   emptyRange,
	}
}

// Contains reports whether a global vertex index belongs to the face.
func (r FaceRange) Contains(vertex uint32) bool {
	return vertex >= r.BaseVertex && vertex < r.BaseVertex+r.VertexCount
}
