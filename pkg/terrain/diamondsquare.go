package terrain

import (
	"fmt"
	"math"
	"math/rand"
)

// maxIterations caps the fractal subdivision depth. Each iteration doubles
// the grid side, so deeper subdivision would not fit a practical allocation.
const maxIterations = 30

// GenerateRandom builds a fractal height field with diamond-square midpoint
// displacement. The grid side is 2^iterations + 1; the four corners are
// seeded with uniform values in [0, maxSeedHeight). Each pass halves the
// step size, fills cell centers from their four diagonal corners (square
// step) and edge midpoints from their orthogonal neighbors (diamond step),
// displacing every new sample by a uniform offset in [-range, range]. The
// range starts at maxSeedHeight and shrinks by 2^-roughness after every
// pass, so higher roughness values produce smoother terrain.
//
// Midpoints on the grid border average their three existing neighbors; the
// grid never wraps. The same rng seed and parameters reproduce the field
// bit for bit.
func GenerateRandom(rng *rand.Rand, roughness, maxSeedHeight float32, iterations int) (*HeightField, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: rng must not be nil", ErrInvalidArgument)
	}
	if iterations < 0 {
		return nil, fmt.Errorf("%w: iterations must be >= 0, got %d", ErrInvalidArgument, iterations)
	}
	if iterations > maxIterations {
		return nil, fmt.Errorf("%w: iterations must be <= %d, got %d", ErrInvalidArgument, maxIterations, iterations)
	}
	if !finite(roughness) || !finite(maxSeedHeight) {
		return nil, fmt.Errorf("%w: roughness and maxSeedHeight must be finite", ErrInvalidArgument)
	}

	side := (1 << iterations) + 1
	grid := make([]float32, side*side)

	// Seed the corners
	grid[0] = rng.Float32() * maxSeedHeight
	grid[side-1] = rng.Float32() * maxSeedHeight
	grid[(side-1)*side] = rng.Float32() * maxSeedHeight
	grid[side*side-1] = rng.Float32() * maxSeedHeight

	displacement := maxSeedHeight
	decay := float32(math.Pow(2, -float64(roughness)))

	for step := side - 1; step > 1; step /= 2 {
		half := step / 2

		// Square step: cell centers from their four diagonal corners.
		for y := half; y < side; y += step {
			for x := half; x < side; x += step {
				sum := grid[(y-half)*side+(x-half)] +
					grid[(y-half)*side+(x+half)] +
					grid[(y+half)*side+(x-half)] +
					grid[(y+half)*side+(x+half)]
				grid[y*side+x] = sum/4 + offset(rng, displacement)
			}
		}

		// Diamond step: edge midpoints from their orthogonal neighbors.
		for y := 0; y < side; y += half {
			start := half
			if (y/half)%2 == 1 {
				start = 0
			}
			for x := start; x < side; x += step {
				var sum float32
				var n int
				if x-half >= 0 {
					sum += grid[y*side+(x-half)]
					n++
				}
				if x+half < side {
					sum += grid[y*side+(x+half)]
					n++
				}
				if y-half >= 0 {
					sum += grid[(y-half)*side+x]
					n++
				}
				if y+half < side {
					sum += grid[(y+half)*side+x]
					n++
				}
				grid[y*side+x] = sum/float32(n) + offset(rng, displacement)
			}
		}

		displacement *= decay
	}

	return NewHeightField(side, side, grid)
}

// offset draws a uniform displacement in [-limit, limit).
func offset(rng *rand.Rand, limit float32) float32 {
	return (rng.Float32()*2 - 1) * limit
}
