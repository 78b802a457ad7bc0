package terrain

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// GenerateGaussian builds a height field containing a single elliptical
// Gaussian bump. The sample at (x, y) is
//
//	amplitude * exp(-(dx^2/(2*sigma.X^2) + dy^2/(2*sigma.Y^2)))
//
// where (dx, dy) is the grid-space offset from center. Samples farther than
// falloffRadius from the center are cut to exactly zero, so the bump has a
// finite footprint no matter how wide sigma is.
func GenerateGaussian(width, height int, sigma mgl32.Vec2, amplitude float32, center mgl32.Vec2, falloffRadius float32) (*HeightField, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("%w: field must be at least 2x2, got %dx%d", ErrInvalidArgument, width, height)
	}
	if !(sigma.X() > 0) || !(sigma.Y() > 0) {
		return nil, fmt.Errorf("%w: sigma must be positive, got (%g, %g)", ErrInvalidArgument, sigma.X(), sigma.Y())
	}
	if !(falloffRadius > 0) || math.IsInf(float64(falloffRadius), 0) {
		return nil, fmt.Errorf("%w: falloffRadius must be positive and finite, got %g", ErrInvalidArgument, falloffRadius)
	}
	if !finite(amplitude) || !finite(center.X()) || !finite(center.Y()) {
		return nil, fmt.Errorf("%w: amplitude and center must be finite", ErrInvalidArgument)
	}

	elevations := make([]float32, width*height)
	radiusSq := float64(falloffRadius) * float64(falloffRadius)
	twoSigmaXSq := 2 * float64(sigma.X()) * float64(sigma.X())
	twoSigmaYSq := 2 * float64(sigma.Y()) * float64(sigma.Y())

	for y := 0; y < height; y++ {
		dy := float64(y) - float64(center.Y())
		for x := 0; x < width; x++ {
			dx := float64(x) - float64(center.X())
			if dx*dx+dy*dy > radiusSq {
				continue
			}
			e := float64(amplitude) * math.Exp(-(dx*dx/twoSigmaXSq + dy*dy/twoSigmaYSq))
			elevations[y*width+x] = float32(e)
		}
	}

	return NewHeightField(width, height, elevations)
}
