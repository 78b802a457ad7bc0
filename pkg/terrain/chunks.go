package terrain

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is an interleaved mesh vertex. The field order matches the GPU
// attribute layout: position, normal, texture coordinates.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// MeshChunk is a self-contained tile of the terrain mesh: its index buffer
// refers only to its own vertices, so every chunk can be uploaded and drawn
// independently. OriginX/OriginY and Width/Height locate the chunk's vertex
// range on the source grid. Neighboring chunks duplicate their shared
// border row and column, which keeps the tiles watertight.
type MeshChunk struct {
	Vertices []Vertex
	Indices  []uint32

	OriginX, OriginY int
	Width, Height    int

	Bounds Bounds
}

// TriangleCount returns the number of triangles in the chunk.
func (c *MeshChunk) TriangleCount() int {
	return len(c.Indices) / 3
}

// ExtractChunks slices the terrain into mesh chunks of at most
// maxChunkSize x maxChunkSize vertices, emitted in row-major tile order.
// Chunk origins advance by maxChunkSize-1 per axis so adjacent chunks share
// their border vertices, and triangles wind counter-clockwise seen from
// above. The total triangle count over all chunks is always
// 2*(width-1)*(height-1), independent of maxChunkSize.
func ExtractChunks(terrain *TerrainData, maxChunkSize int) ([]MeshChunk, error) {
	if terrain == nil {
		return nil, fmt.Errorf("%w: terrain must not be nil", ErrInvalidArgument)
	}
	if maxChunkSize < 2 {
		return nil, fmt.Errorf("%w: maxChunkSize must be >= 2, got %d", ErrInvalidArgument, maxChunkSize)
	}

	width, height := terrain.field.width, terrain.field.height
	stride := maxChunkSize - 1

	var chunks []MeshChunk
	for y0 := 0; y0 < height-1; y0 += stride {
		ch := min(maxChunkSize, height-y0)
		for x0 := 0; x0 < width-1; x0 += stride {
			cw := min(maxChunkSize, width-x0)
			chunks = append(chunks, buildChunk(terrain, x0, y0, cw, ch))
		}
	}
	return chunks, nil
}

// buildChunk assembles the vertex and index buffers for one tile.
func buildChunk(terrain *TerrainData, x0, y0, cw, ch int) MeshChunk {
	vertices := make([]Vertex, 0, cw*ch)
	bounds := Bounds{
		Min: mgl32.Vec3{1e10, 1e10, 1e10},
		Max: mgl32.Vec3{-1e10, -1e10, -1e10},
	}

	for y := y0; y < y0+ch; y++ {
		for x := x0; x < x0+cw; x++ {
			pos := terrain.VertexAt(x, y)
			growBounds(&bounds, pos)
			vertices = append(vertices, Vertex{
				Position: pos,
				Normal:   terrain.NormalAt(x, y),
				TexCoord: terrain.UVAt(x, y),
			})
		}
	}

	// Two counter-clockwise triangles per cell, indexed within this chunk.
	indices := make([]uint32, 0, (cw-1)*(ch-1)*6)
	for y := 0; y < ch-1; y++ {
		for x := 0; x < cw-1; x++ {
			i00 := uint32(y*cw + x)
			i10 := i00 + 1
			i01 := i00 + uint32(cw)
			i11 := i01 + 1
			indices = append(indices, i00, i01, i10, i10, i01, i11)
		}
	}

	return MeshChunk{
		Vertices: vertices,
		Indices:  indices,
		OriginX:  x0,
		OriginY:  y0,
		Width:    cw,
		Height:   ch,
		Bounds:   bounds,
	}
}

func growBounds(b *Bounds, p mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
