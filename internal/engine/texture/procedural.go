// Package texture synthesizes ground textures procedurally and uploads them
// to the GPU.
package texture

import (
	"image"
	"image/color"

	"github.com/aquilax/go-perlin"
)

// Noise parameters shared by all shaded tiles.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

// Checkerboard renders a cells x cells check pattern into a size x size image.
func Checkerboard(size, cells int, light, dark color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	cellSize := size / cells
	if cellSize < 1 {
		cellSize = 1
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := light
			if (x/cellSize+y/cellSize)%2 == 1 {
				c = dark
			}
			img.SetRGBA(x, y, c)
		}
	}

	return img
}

// Grass returns a noise-shaded grass tile.
func Grass(size int, seed int64) *image.RGBA {
	return noiseShade(size, seed, 18, color.RGBA{R: 66, G: 105, B: 47, A: 255}, 0.35)
}

// Rock returns a noise-shaded rock tile.
func Rock(size int, seed int64) *image.RGBA {
	return noiseShade(size, seed, 9, color.RGBA{R: 112, G: 106, B: 98, A: 255}, 0.3)
}

// Snow returns a noise-shaded snow tile.
func Snow(size int, seed int64) *image.RGBA {
	return noiseShade(size, seed, 24, color.RGBA{R: 235, G: 238, B: 242, A: 255}, 0.08)
}

// noiseShade fills a tile with the base color scaled by Perlin noise.
// The same seed always yields the same pixels.
func noiseShade(size int, seed int64, scale float64, base color.RGBA, variation float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			n := noise.Noise2D(float64(x)/scale, float64(y)/scale)
			// Octave sums can leave [-1, 1]
			if n > 1 {
				n = 1
			} else if n < -1 {
				n = -1
			}

			factor := 1 + n*variation
			img.SetRGBA(x, y, color.RGBA{
				R: shade(base.R, factor),
				G: shade(base.G, factor),
				B: shade(base.B, factor),
				A: 255,
			})
		}
	}

	return img
}

// shade scales an 8-bit channel, clamping to [0, 255].
func shade(c uint8, factor float64) uint8 {
	v := float64(c) * factor
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
