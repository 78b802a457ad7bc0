// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/ConArtist141/Terrain/pkg/terrain"
)

// LineVertex represents a colored vertex for line rendering.
type LineVertex struct {
	X, Y, Z float32 // Position
	R, G, B float32 // Color
}

// ChunkOutlines generates line vertices tracing each chunk's border along the
// terrain surface. lift raises the lines above the mesh so they stay visible.
func ChunkOutlines(chunks []terrain.MeshChunk, lift float32) []LineVertex {
	var vertices []LineVertex
	for i := range chunks {
		vertices = appendOutline(vertices, &chunks[i], lift)
	}
	return vertices
}

// appendOutline emits one segment per cell edge along the chunk perimeter.
func appendOutline(vertices []LineVertex, chunk *terrain.MeshChunk, lift float32) []LineVertex {
	const r, g, b = 1.0, 0.55, 0.0

	point := func(x, y int) LineVertex {
		pos := chunk.Vertices[y*chunk.Width+x].Position
		return LineVertex{pos.X(), pos.Y() + lift, pos.Z(), r, g, b}
	}

	// Top and bottom rows
	for x := 0; x < chunk.Width-1; x++ {
		vertices = append(vertices, point(x, 0), point(x+1, 0))
		vertices = append(vertices, point(x, chunk.Height-1), point(x+1, chunk.Height-1))
	}

	// Left and right columns
	for y := 0; y < chunk.Height-1; y++ {
		vertices = append(vertices, point(0, y), point(0, y+1))
		vertices = append(vertices, point(chunk.Width-1, y), point(chunk.Width-1, y+1))
	}

	return vertices
}
