package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/ConArtist141/Terrain/internal/engine/debug"
	"github.com/ConArtist141/Terrain/internal/engine/scene/shaders"
	"github.com/ConArtist141/Terrain/internal/engine/shader"
)

// LineRenderer draws colored line lists, used for the chunk and contour
// debug overlays.
type LineRenderer struct {
	program     uint32
	locViewProj int32

	vao         uint32
	vbo         uint32
	vertexCount int32
}

// NewLineRenderer creates a new line renderer.
func NewLineRenderer() (*LineRenderer, error) {
	lr := &LineRenderer{}

	program, err := shader.CompileProgram(shaders.LineVertexShader, shaders.LineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("line shader: %w", err)
	}
	lr.program = program
	lr.locViewProj = shader.GetUniform(program, "uViewProj")

	return lr, nil
}

// Load replaces the uploaded line list.
func (lr *LineRenderer) Load(vertices []debug.LineVertex) {
	lr.clearBuffers()
	lr.vertexCount = int32(len(vertices))
	if len(vertices) == 0 {
		return
	}

	gl.GenVertexArrays(1, &lr.vao)
	gl.BindVertexArray(lr.vao)

	gl.GenBuffers(1, &lr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.vbo)
	vertexSize := int(unsafe.Sizeof(debug.LineVertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*vertexSize, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)

	// Color (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

// Render draws the loaded line list.
func (lr *LineRenderer) Render(viewProj mgl32.Mat4) {
	if lr.vao == 0 || lr.vertexCount == 0 {
		return
	}

	gl.UseProgram(lr.program)
	gl.UniformMatrix4fv(lr.locViewProj, 1, false, &viewProj[0])

	gl.BindVertexArray(lr.vao)
	gl.DrawArrays(gl.LINES, 0, lr.vertexCount)
	gl.BindVertexArray(0)
}

func (lr *LineRenderer) clearBuffers() {
	if lr.vao != 0 {
		gl.DeleteVertexArrays(1, &lr.vao)
		lr.vao = 0
	}
	if lr.vbo != 0 {
		gl.DeleteBuffers(1, &lr.vbo)
		lr.vbo = 0
	}
	lr.vertexCount = 0
}

// Destroy releases all resources.
func (lr *LineRenderer) Destroy() {
	lr.clearBuffers()
	if lr.program != 0 {
		gl.DeleteProgram(lr.program)
		lr.program = 0
	}
}
