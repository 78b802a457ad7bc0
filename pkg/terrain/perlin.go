package terrain

import (
	"fmt"

	"github.com/aquilax/go-perlin"
)

// Noise parameters shared by every Perlin field. Alpha is the weight applied
// to successive octaves, beta the frequency ratio between them.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// GeneratePerlin builds a height field from layered Perlin noise. Scale is
// the feature size in grid units, so larger values give broader hills. The
// noise is remapped from its nominal [-1, 1] range to [0, amplitude];
// octave sums that stray outside the nominal range are clamped first, so
// the output always stays within [0, amplitude]. Deterministic per seed.
func GeneratePerlin(seed int64, width, height int, scale float64, amplitude float32) (*HeightField, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("%w: field must be at least 2x2, got %dx%d", ErrInvalidArgument, width, height)
	}
	if !(scale > 0) {
		return nil, fmt.Errorf("%w: scale must be positive, got %g", ErrInvalidArgument, scale)
	}
	if !finite(amplitude) {
		return nil, fmt.Errorf("%w: amplitude must be finite", ErrInvalidArgument)
	}

	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)
	elevations := make([]float32, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n := noise.Noise2D(float64(x)/scale, float64(y)/scale)
			if n > 1 {
				n = 1
			} else if n < -1 {
				n = -1
			}
			elevations[y*width+x] = float32(n+1) / 2 * amplitude
		}
	}

	return NewHeightField(width, height, elevations)
}
