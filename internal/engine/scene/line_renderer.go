package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/cubeplanet/internal/engine/scene/shaders"
	"github.com/Faultbox/cubeplanet/internal/engine/shader"
	"github.com/Faultbox/cubeplanet/pkg/math"
)

// LineRenderer draws one batch of xyz line pairs in a flat color.
type LineRenderer struct {
	program  *shader.Program
	vao, vbo uint32
	count    int32
	Color    [3]float32
}

// NewLineRenderer compiles the line program and allocates an empty buffer.
func NewLineRenderer(color [3]float32) (*LineRenderer, error) {
	program, err := shader.New(shaders.LineVertexShader, shaders.LineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("line shader: %w", err)
	}

	lr := &LineRenderer{program: program, Color: color}
	gl.GenVertexArrays(1, &lr.vao)
	gl.BindVertexArray(lr.vao)
	gl.GenBuffers(1, &lr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.vbo)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	return lr, nil
}

// SetLines replaces the batch.
func (lr *LineRenderer) SetLines(xyz []float32) {
	lr.count = int32(len(xyz) / 3)
	if lr.count == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(xyz)*4, unsafe.Pointer(&xyz[0]), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Render draws the batch.
func (lr *LineRenderer) Render(viewProj math.Mat4) {
	if lr.count == 0 {
		return
	}
	lr.program.Use()
	gl.UniformMatrix4fv(lr.program.Uniform("uViewProj"), 1, false, viewProj.Ptr())
	gl.Uniform3fv(lr.program.Uniform("uColor"), 1, &lr.Color[0])

	gl.BindVertexArray(lr.vao)
	gl.DrawArrays(gl.LINES, 0, lr.count)
	gl.BindVertexArray(0)
}

// Destroy releases all resources.
func (lr *LineRenderer) Destroy() {
	if lr.vao != 0 {
		gl.DeleteVertexArrays(1, &lr.vao)
		lr.vao = 0
	}
	if lr.vbo != 0 {
		gl.DeleteBuffers(1, &lr.vbo)
		lr.vbo = 0
	}
	lr.program.Delete()
}
