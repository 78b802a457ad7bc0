package debug

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/ConArtist141/Terrain/pkg/terrain"
)

func TestBoundsWireframe(t *testing.T) {
	bounds := terrain.Bounds{
		Min: mgl32.Vec3{0, 0, 0},
		Max: mgl32.Vec3{2, 3, 4},
	}

	vertices := BoundsWireframe(bounds, 0.5, 0.5, 0.5)

	if len(vertices) != BoundsWireframeVertexCount {
		t.Fatalf("expected %d vertices, got %d", BoundsWireframeVertexCount, len(vertices))
	}

	// Every vertex must sit on a box corner
	for i, v := range vertices {
		if v.X != 0 && v.X != 2 {
			t.Fatalf("vertex %d: X=%v not on box face", i, v.X)
		}
		if v.Y != 0 && v.Y != 3 {
			t.Fatalf("vertex %d: Y=%v not on box face", i, v.Y)
		}
		if v.Z != 0 && v.Z != 4 {
			t.Fatalf("vertex %d: Z=%v not on box face", i, v.Z)
		}
		if v.R != 0.5 || v.G != 0.5 || v.B != 0.5 {
			t.Fatalf("vertex %d: unexpected color (%v, %v, %v)", i, v.R, v.G, v.B)
		}
	}
}

func TestChunkBoundsWireframes(t *testing.T) {
	chunks := createTestChunks(t)

	vertices := ChunkBoundsWireframes(chunks)

	expected := len(chunks) * BoundsWireframeVertexCount
	if len(vertices) != expected {
		t.Fatalf("expected %d vertices, got %d", expected, len(vertices))
	}
}
