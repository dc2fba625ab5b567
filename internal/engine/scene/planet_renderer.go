package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/cubeplanet/internal/engine/lighting"
	"github.com/Faultbox/cubeplanet/internal/engine/scene/shaders"
	"github.com/Faultbox/cubeplanet/internal/engine/shader"
	"github.com/Faultbox/cubeplanet/pkg/math"
	"github.com/Faultbox/cubeplanet/pkg/planet"
)

// ShadeMode selects what the planet fragment shader shows.
type ShadeMode int32

const (
	ShadeLit ShadeMode = iota
	ShadeNormals
	ShadeTangents
	ShadeUV
	ShadeElevation
)

// ShadeModeNames are display names indexed by ShadeMode.
var ShadeModeNames = []string{"Lit", "Normals", "Tangents", "UV", "Elevation"}

func (m ShadeMode) String() string {
	if m < 0 || int(m) >= len(ShadeModeNames) {
		return "unknown"
	}
	return ShadeModeNames[m]
}

// faceTints color each cube face when face highlighting is on.
var faceTints = [planet.FaceCount][3]float32{
	{1.0, 0.55, 0.55},
	{0.55, 1.0, 0.55},
	{0.55, 0.55, 1.0},
	{1.0, 1.0, 0.55},
	{1.0, 0.55, 1.0},
	{0.55, 1.0, 1.0},
}

var noTint = [3]float32{1, 1, 1}

// PlanetRenderer uploads a planet MeshBuffer and draws it face by face.
type PlanetRenderer struct {
	program *shader.Program

	vao, vbo, ebo uint32
	faces         []planet.FaceRange
	vertexCount   int

	origin    math.Vec3
	radius    float32
	elevation planet.Range

	Mode          ShadeMode
	HighlightFace bool
	HiddenFaces   [planet.FaceCount]bool
}

// NewPlanetRenderer compiles the planet program.
func NewPlanetRenderer() (*PlanetRenderer, error) {
	program, err := shader.New(shaders.PlanetVertexShader, shaders.PlanetFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("planet shader: %w", err)
	}
	return &PlanetRenderer{program: program}, nil
}

// Upload replaces the GPU mesh with m. origin and radius feed elevation shading.
func (pr *PlanetRenderer) Upload(m *planet.MeshBuffer, origin math.Vec3, radius float64) {
	pr.clearMesh()
	if m == nil || len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return
	}

	gl.GenVertexArrays(1, &pr.vao)
	gl.BindVertexArray(pr.vao)

	gl.GenBuffers(1, &pr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, pr.vbo)
	stride := int32(unsafe.Sizeof(planet.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(stride), unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	attribs := []struct {
		size   int32
		offset uintptr
	}{
		{3, unsafe.Offsetof(planet.Vertex{}.Position)},
		{3, unsafe.Offsetof(planet.Vertex{}.Normal)},
		{2, unsafe.Offsetof(planet.Vertex{}.UV)},
		{4, unsafe.Offsetof(planet.Vertex{}.Color)},
		{4, unsafe.Offsetof(planet.Vertex{}.Tangent)},
	}
	for loc, a := range attribs {
		gl.VertexAttribPointerWithOffset(uint32(loc), a.size, gl.FLOAT, false, stride, a.offset)
		gl.EnableVertexAttribArray(uint32(loc))
	}

	gl.GenBuffers(1, &pr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, pr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	pr.faces = append(pr.faces[:0], m.Faces...)
	pr.vertexCount = len(m.Vertices)
	pr.origin = origin
	pr.radius = float32(radius)
	pr.elevation = m.Elevation()
}

// Render draws every visible face.
func (pr *PlanetRenderer) Render(viewProj math.Mat4, light lighting.Light) {
	if pr.vao == 0 {
		return
	}

	p := pr.program
	p.Use()
	gl.UniformMatrix4fv(p.Uniform("uViewProj"), 1, false, viewProj.Ptr())
	gl.Uniform1i(p.Uniform("uMode"), int32(pr.Mode))
	gl.Uniform3fv(p.Uniform("uLightDir"), 1, &light.Direction[0])
	gl.Uniform3fv(p.Uniform("uLightColor"), 1, &light.Color[0])
	gl.Uniform3fv(p.Uniform("uAmbient"), 1, &light.Ambient[0])
	gl.Uniform3f(p.Uniform("uOrigin"), pr.origin.X, pr.origin.Y, pr.origin.Z)
	gl.Uniform1f(p.Uniform("uRadius"), pr.radius)
	gl.Uniform2f(p.Uniform("uElevation"), float32(pr.elevation.Min), float32(pr.elevation.Max))

	gl.BindVertexArray(pr.vao)
	for _, f := range pr.faces {
		if pr.HiddenFaces[f.Face] {
			continue
		}
		tint := noTint
		if pr.HighlightFace {
			tint = faceTints[f.Face]
		}
		gl.Uniform3fv(p.Uniform("uTint"), 1, &tint[0])
		gl.DrawElementsWithOffset(gl.TRIANGLES, int32(f.IndexCount), gl.UNSIGNED_INT, uintptr(f.BaseIndex*4))
	}
	gl.BindVertexArray(0)
}

// Loaded reports whether a mesh is on the GPU.
func (pr *PlanetRenderer) Loaded() bool {
	return pr.vao != 0
}

func (pr *PlanetRenderer) clearMesh() {
	if pr.vao != 0 {
		gl.DeleteVertexArrays(1, &pr.vao)
		pr.vao = 0
	}
	if pr.vbo != 0 {
		gl.DeleteBuffers(1, &pr.vbo)
		pr.vbo = 0
	}
	if pr.ebo != 0 {
		gl.DeleteBuffers(1, &pr.ebo)
		pr.ebo = 0
	}
	pr.faces = pr.faces[:0]
	pr.vertexCount = 0
}

// Destroy releases all resources.
func (pr *PlanetRenderer) Destroy() {
	pr.clearMesh()
	pr.program.Delete()
}
