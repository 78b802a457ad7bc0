package terrain

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// TerrainData scales a HeightField into world space. CellSize.X and
// CellSize.Z are the horizontal spacing between neighboring samples and
// CellSize.Y multiplies elevations. The world-space height extremes are
// computed once at construction so material systems can read them without
// rescanning the field.
type TerrainData struct {
	field     *HeightField
	cellSize  mgl32.Vec3
	minHeight float32
	maxHeight float32
}

// NewTerrainData pairs a height field with world-space cell dimensions.
// All cellSize components must be positive.
func NewTerrainData(field *HeightField, cellSize mgl32.Vec3) (*TerrainData, error) {
	if field == nil {
		return nil, fmt.Errorf("%w: field must not be nil", ErrInvalidArgument)
	}
	if !(cellSize.X() > 0) || !(cellSize.Y() > 0) || !(cellSize.Z() > 0) {
		return nil, fmt.Errorf("%w: cell size must be positive, got (%g, %g, %g)",
			ErrInvalidArgument, cellSize.X(), cellSize.Y(), cellSize.Z())
	}

	min, max := field.MinMax()
	return &TerrainData{
		field:     field,
		cellSize:  cellSize,
		minHeight: min * cellSize.Y(),
		maxHeight: max * cellSize.Y(),
	}, nil
}

// Field returns the underlying height field.
func (t *TerrainData) Field() *HeightField { return t.field }

// CellSize returns the world-space cell dimensions.
func (t *TerrainData) CellSize() mgl32.Vec3 { return t.cellSize }

// MinHeight returns the lowest world-space elevation in the terrain.
func (t *TerrainData) MinHeight() float32 { return t.minHeight }

// MaxHeight returns the highest world-space elevation in the terrain.
func (t *TerrainData) MaxHeight() float32 { return t.maxHeight }

// VertexAt returns the world-space position of the sample at (x, y).
func (t *TerrainData) VertexAt(x, y int) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(x) * t.cellSize.X(),
		t.field.At(x, y) * t.cellSize.Y(),
		float32(y) * t.cellSize.Z(),
	}
}

// NormalAt returns the unit surface normal at (x, y), estimated with
// central differences on the scaled surface. Samples on the grid border
// fall back to one-sided differences.
func (t *TerrainData) NormalAt(x, y int) mgl32.Vec3 {
	x0, x1 := x-1, x+1
	if x0 < 0 {
		x0 = 0
	}
	if x1 > t.field.width-1 {
		x1 = t.field.width - 1
	}
	slopeX := (t.field.At(x1, y) - t.field.At(x0, y)) * t.cellSize.Y() /
		(float32(x1-x0) * t.cellSize.X())

	y0, y1 := y-1, y+1
	if y0 < 0 {
		y0 = 0
	}
	if y1 > t.field.height-1 {
		y1 = t.field.height - 1
	}
	slopeZ := (t.field.At(x, y1) - t.field.At(x, y0)) * t.cellSize.Y() /
		(float32(y1-y0) * t.cellSize.Z())

	return mgl32.Vec3{-slopeX, 1, -slopeZ}.Normalize()
}

// UVAt returns texture coordinates for the sample at (x, y), normalized so
// the full terrain spans [0, 1] on both axes. Materials that tile apply
// their own scale on top.
func (t *TerrainData) UVAt(x, y int) mgl32.Vec2 {
	return mgl32.Vec2{
		float32(x) / float32(t.field.width-1),
		float32(y) / float32(t.field.height-1),
	}
}

// HeightAt samples the terrain height at an arbitrary world position using
// bilinear interpolation between the surrounding samples. ok is false when
// the position lies outside the terrain footprint.
func (t *TerrainData) HeightAt(worldX, worldZ float32) (height float32, ok bool) {
	gx := worldX / t.cellSize.X()
	gz := worldZ / t.cellSize.Z()

	maxX := float32(t.field.width - 1)
	maxZ := float32(t.field.height - 1)
	if gx < 0 || gz < 0 || gx > maxX || gz > maxZ {
		return 0, false
	}

	x0, z0 := int(gx), int(gz)
	x1, z1 := x0+1, z0+1
	if x1 > t.field.width-1 {
		x1 = t.field.width - 1
	}
	if z1 > t.field.height-1 {
		z1 = t.field.height - 1
	}

	fx := gx - float32(x0)
	fz := gz - float32(z0)

	h00 := t.field.At(x0, z0)
	h10 := t.field.At(x1, z0)
	h01 := t.field.At(x0, z1)
	h11 := t.field.At(x1, z1)

	h0 := h00 + (h10-h00)*fx
	h1 := h01 + (h11-h01)*fx
	return (h0 + (h1-h0)*fz) * t.cellSize.Y(), true
}

// Bounds returns the axis-aligned world-space box enclosing the terrain.
func (t *TerrainData) Bounds() Bounds {
	return Bounds{
		Min: mgl32.Vec3{0, t.minHeight, 0},
		Max: mgl32.Vec3{
			float32(t.field.width-1) * t.cellSize.X(),
			t.maxHeight,
			float32(t.field.height-1) * t.cellSize.Z(),
		},
	}
}
