// Package terrain generates fractal height fields and converts them into
// chunked triangle meshes ready for GPU upload.
package terrain

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is returned when an argument violates a generator or
// extractor contract. Every validation failure wraps it, so callers can
// branch with errors.Is while the message carries the specific cause.
var ErrInvalidArgument = errors.New("terrain: invalid argument")

// HeightField is a width x height grid of elevation samples in row-major
// order (index y*width + x). A field is immutable once constructed.
type HeightField struct {
	width      int
	height     int
	elevations []float32
}

// NewHeightField wraps elevations in a HeightField, taking ownership of the
// slice. Width and height must each be at least 2 so the field describes at
// least one terrain cell, and len(elevations) must equal width*height.
func NewHeightField(width, height int, elevations []float32) (*HeightField, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("%w: field must be at least 2x2, got %dx%d", ErrInvalidArgument, width, height)
	}
	if len(elevations) != width*height {
		return nil, fmt.Errorf("%w: expected %d elevations for a %dx%d field, got %d",
			ErrInvalidArgument, width*height, width, height, len(elevations))
	}
	return &HeightField{width: width, height: height, elevations: elevations}, nil
}

// Width returns the number of samples along the X axis.
func (f *HeightField) Width() int { return f.width }

// Height returns the number of samples along the Y axis.
func (f *HeightField) Height() int { return f.height }

// At returns the elevation at grid coordinates (x, y).
// Coordinates must lie inside the grid.
func (f *HeightField) At(x, y int) float32 {
	return f.elevations[y*f.width+x]
}

// MinMax returns the smallest and largest elevation in the field.
func (f *HeightField) MinMax() (min, max float32) {
	min, max = f.elevations[0], f.elevations[0]
	for _, e := range f.elevations[1:] {
		if e < min {
			min = e
		}
		if e > max {
			max = e
		}
	}
	return min, max
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
