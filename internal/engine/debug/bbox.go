package debug

import (
	"github.com/ConArtist141/Terrain/pkg/terrain"
)

// BoundsWireframeVertexCount is the number of vertices for one box wireframe
// (12 edges x 2 endpoints).
const BoundsWireframeVertexCount = 24

// BoundsWireframe creates line vertices for a wireframe box around bounds.
func BoundsWireframe(bounds terrain.Bounds, r, g, b float32) []LineVertex {
	minX, minY, minZ := bounds.Min.X(), bounds.Min.Y(), bounds.Min.Z()
	maxX, maxY, maxZ := bounds.Max.X(), bounds.Max.Y(), bounds.Max.Z()

	edges := [...][6]float32{
		// Bottom face (4 edges)
		{minX, minY, minZ, maxX, minY, minZ},
		{maxX, minY, minZ, maxX, minY, maxZ},
		{maxX, minY, maxZ, minX, minY, maxZ},
		{minX, minY, maxZ, minX, minY, minZ},
		// Top face (4 edges)
		{minX, maxY, minZ, maxX, maxY, minZ},
		{maxX, maxY, minZ, maxX, maxY, maxZ},
		{maxX, maxY, maxZ, minX, maxY, maxZ},
		{minX, maxY, maxZ, minX, maxY, minZ},
		// Vertical edges (4 edges)
		{minX, minY, minZ, minX, maxY, minZ},
		{maxX, minY, minZ, maxX, maxY, minZ},
		{maxX, minY, maxZ, maxX, maxY, maxZ},
		{minX, minY, maxZ, minX, maxY, maxZ},
	}

	vertices := make([]LineVertex, 0, BoundsWireframeVertexCount)
	for _, e := range edges {
		vertices = append(vertices,
			LineVertex{e[0], e[1], e[2], r, g, b},
			LineVertex{e[3], e[4], e[5], r, g, b},
		)
	}
	return vertices
}

// ChunkBoundsWireframes creates wireframe boxes for every chunk's bounds.
func ChunkBoundsWireframes(chunks []terrain.MeshChunk) []LineVertex {
	var vertices []LineVertex
	for i := range chunks {
		vertices = append(vertices, BoundsWireframe(chunks[i].Bounds, 0.5, 0.5, 0.5)...)
	}
	return vertices
}
