// Package lighting provides lighting utilities for 3D rendering.
package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sun is a directional light with ambient and diffuse terms.
type Sun struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
}

// NewSun creates a sun at the given azimuth/elevation with daylight colors.
func NewSun(azimuth, elevation float32) Sun {
	return Sun{
		Direction: SunDirection(azimuth, elevation),
		Ambient:   mgl32.Vec3{0.35, 0.35, 0.38},
		Diffuse:   mgl32.Vec3{0.85, 0.82, 0.75},
	}
}

// SunDirection converts azimuth/elevation angles to a light direction vector.
// Azimuth is rotation around the Y axis (0-360), elevation is measured up
// from the horizon (0-90). Returns a normalized direction pointing towards
// the sun.
func SunDirection(azimuth, elevation float32) mgl32.Vec3 {
	// Convert degrees to radians
	azRad := float64(azimuth) * math.Pi / 180.0
	elRad := float64(elevation) * math.Pi / 180.0

	// Spherical to Cartesian conversion
	x := float32(math.Cos(elRad) * math.Sin(azRad))
	y := float32(math.Sin(elRad))
	z := float32(math.Cos(elRad) * math.Cos(azRad))

	return mgl32.Vec3{x, y, z}
}
