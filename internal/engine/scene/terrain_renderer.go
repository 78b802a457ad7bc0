// Package scene renders terrain chunk meshes and debug overlays.
package scene

import (
	"fmt"
	"image/color"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/ConArtist141/Terrain/internal/engine/lighting"
	"github.com/ConArtist141/Terrain/internal/engine/scene/shaders"
	"github.com/ConArtist141/Terrain/internal/engine/shader"
	"github.com/ConArtist141/Terrain/internal/engine/texture"
	"github.com/ConArtist141/Terrain/pkg/terrain"
)

// RenderMode selects how terrain fragments are shaded.
type RenderMode int32

const (
	// ModeNoTexture tints fragments by normalized height.
	ModeNoTexture RenderMode = iota
	// ModeTextured samples a single base texture.
	ModeTextured
	// ModeMultiTextured blends grass, rock and snow by height and slope.
	ModeMultiTextured
)

// ParseRenderMode maps a config mode name to a RenderMode.
func ParseRenderMode(name string) (RenderMode, error) {
	switch name {
	case "no-texture":
		return ModeNoTexture, nil
	case "textured":
		return ModeTextured, nil
	case "multitextured":
		return ModeMultiTextured, nil
	}
	return 0, fmt.Errorf("unknown render mode %q", name)
}

// Material bundles the shading settings for a frame.
type Material struct {
	Mode    RenderMode
	UVScale float32
}

// chunkBuffers holds the GPU objects for one uploaded mesh chunk.
type chunkBuffers struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// TerrainRenderer uploads terrain chunks and draws them.
type TerrainRenderer struct {
	// Shader
	program uint32

	// Uniform locations
	locViewProj  int32
	locLightDir  int32
	locAmbient   int32
	locDiffuse   int32
	locMode      int32
	locUVScale   int32
	locMinHeight int32
	locMaxHeight int32
	locBaseTex   int32
	locGrassTex  int32
	locRockTex   int32
	locSnowTex   int32

	// One buffer set per chunk
	chunks []chunkBuffers

	// Ground textures
	baseTex  uint32
	grassTex uint32
	rockTex  uint32
	snowTex  uint32

	// Height range of the loaded terrain, for height-based shading
	minHeight float32
	maxHeight float32

	// Bounds
	MinBounds mgl32.Vec3
	MaxBounds mgl32.Vec3
}

// NewTerrainRenderer creates a new terrain renderer.
func NewTerrainRenderer() (*TerrainRenderer, error) {
	tr := &TerrainRenderer{}

	program, err := shader.CompileProgram(shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	tr.program = program

	// Get uniform locations
	tr.locViewProj = shader.GetUniform(program, "uViewProj")
	tr.locLightDir = shader.GetUniform(program, "uLightDir")
	tr.locAmbient = shader.GetUniform(program, "uAmbient")
	tr.locDiffuse = shader.GetUniform(program, "uDiffuse")
	tr.locMode = shader.GetUniform(program, "uMode")
	tr.locUVScale = shader.GetUniform(program, "uUVScale")
	tr.locMinHeight = shader.GetUniform(program, "uMinHeight")
	tr.locMaxHeight = shader.GetUniform(program, "uMaxHeight")
	tr.locBaseTex = shader.GetUniform(program, "uBaseTexture")
	tr.locGrassTex = shader.GetUniform(program, "uGrassTexture")
	tr.locRockTex = shader.GetUniform(program, "uRockTexture")
	tr.locSnowTex = shader.GetUniform(program, "uSnowTexture")

	tr.createGroundTextures()

	return tr, nil
}

// createGroundTextures synthesizes and uploads the procedural ground set.
func (tr *TerrainRenderer) createGroundTextures() {
	const texSize = 256

	light := color.RGBA{R: 190, G: 190, B: 190, A: 255}
	dark := color.RGBA{R: 90, G: 90, B: 90, A: 255}

	tr.baseTex = texture.Upload(texture.Checkerboard(texSize, 8, light, dark))
	tr.grassTex = texture.Upload(texture.Grass(texSize, 1))
	tr.rockTex = texture.Upload(texture.Rock(texSize, 2))
	tr.snowTex = texture.Upload(texture.Snow(texSize, 3))
}

// Load replaces the uploaded chunk set with freshly extracted chunks.
func (tr *TerrainRenderer) Load(data *terrain.TerrainData, chunks []terrain.MeshChunk) {
	tr.clearChunks()

	tr.minHeight = data.MinHeight()
	tr.maxHeight = data.MaxHeight()

	bounds := data.Bounds()
	tr.MinBounds = bounds.Min
	tr.MaxBounds = bounds.Max

	for i := range chunks {
		tr.chunks = append(tr.chunks, uploadChunk(&chunks[i]))
	}
}

// ChunkCount returns the number of uploaded chunks.
func (tr *TerrainRenderer) ChunkCount() int {
	return len(tr.chunks)
}

// uploadChunk creates the VAO/VBO/EBO for one mesh chunk.
func uploadChunk(chunk *terrain.MeshChunk) chunkBuffers {
	var cb chunkBuffers

	gl.GenVertexArrays(1, &cb.vao)
	gl.BindVertexArray(cb.vao)

	// VBO
	gl.GenBuffers(1, &cb.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, cb.vbo)
	vertexSize := int(unsafe.Sizeof(terrain.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(chunk.Vertices)*vertexSize, unsafe.Pointer(&chunk.Vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	// TexCoord (location 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	// EBO
	gl.GenBuffers(1, &cb.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, cb.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(chunk.Indices)*4, unsafe.Pointer(&chunk.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	cb.indexCount = int32(len(chunk.Indices))
	return cb
}

// Render renders all terrain chunks.
func (tr *TerrainRenderer) Render(viewProj mgl32.Mat4, sun lighting.Sun, mat Material) {
	if len(tr.chunks) == 0 {
		return
	}

	gl.UseProgram(tr.program)

	// Set uniforms
	gl.UniformMatrix4fv(tr.locViewProj, 1, false, &viewProj[0])
	gl.Uniform3f(tr.locLightDir, sun.Direction.X(), sun.Direction.Y(), sun.Direction.Z())
	gl.Uniform3f(tr.locAmbient, sun.Ambient.X(), sun.Ambient.Y(), sun.Ambient.Z())
	gl.Uniform3f(tr.locDiffuse, sun.Diffuse.X(), sun.Diffuse.Y(), sun.Diffuse.Z())
	gl.Uniform1i(tr.locMode, int32(mat.Mode))
	gl.Uniform1f(tr.locUVScale, mat.UVScale)
	gl.Uniform1f(tr.locMinHeight, tr.minHeight)
	gl.Uniform1f(tr.locMaxHeight, tr.maxHeight)

	// Bind ground textures
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tr.baseTex)
	gl.Uniform1i(tr.locBaseTex, 0)

	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, tr.grassTex)
	gl.Uniform1i(tr.locGrassTex, 1)

	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, tr.rockTex)
	gl.Uniform1i(tr.locRockTex, 2)

	gl.ActiveTexture(gl.TEXTURE3)
	gl.BindTexture(gl.TEXTURE_2D, tr.snowTex)
	gl.Uniform1i(tr.locSnowTex, 3)

	// Draw each chunk
	for _, cb := range tr.chunks {
		gl.BindVertexArray(cb.vao)
		gl.DrawElements(gl.TRIANGLES, cb.indexCount, gl.UNSIGNED_INT, nil)
	}

	gl.BindVertexArray(0)
}

func (tr *TerrainRenderer) clearChunks() {
	for i := range tr.chunks {
		cb := &tr.chunks[i]
		if cb.vao != 0 {
			gl.DeleteVertexArrays(1, &cb.vao)
		}
		if cb.vbo != 0 {
			gl.DeleteBuffers(1, &cb.vbo)
		}
		if cb.ebo != 0 {
			gl.DeleteBuffers(1, &cb.ebo)
		}
	}
	tr.chunks = tr.chunks[:0]
}

// Destroy releases all resources.
func (tr *TerrainRenderer) Destroy() {
	tr.clearChunks()

	for _, tex := range []*uint32{&tr.baseTex, &tr.grassTex, &tr.rockTex, &tr.snowTex} {
		if *tex != 0 {
			gl.DeleteTextures(1, tex)
			*tex = 0
		}
	}

	if tr.program != 0 {
		gl.DeleteProgram(tr.program)
		tr.program = 0
	}
}
