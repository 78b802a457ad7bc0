// Package picking provides ray casting utilities for probing the terrain.
package picking

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/ConArtist141/Terrain/pkg/terrain"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3 // Normalized direction
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj mgl32.Mat4) Ray {
	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH // Flip Y

	// Unproject near and far points
	nearWorld := invViewProj.Mul4x1(mgl32.Vec4{ndcX, ndcY, -1.0, 1.0})
	farWorld := invViewProj.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1.0, 1.0})

	// Perspective divide
	if w := nearWorld.W(); w != 0 {
		nearWorld = nearWorld.Mul(1 / w)
	}
	if w := farWorld.W(); w != 0 {
		farWorld = farWorld.Mul(1 / w)
	}

	origin := nearWorld.Vec3()
	dir := farWorld.Vec3().Sub(origin)
	if length := dir.Len(); length > 0 {
		dir = dir.Mul(1 / length)
	}

	return Ray{Origin: origin, Direction: dir}
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box terrain.Bounds) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		if r.Direction[axis] != 0 {
			t1 := (box.Min[axis] - r.Origin[axis]) / r.Direction[axis]
			t2 := (box.Max[axis] - r.Origin[axis]) / r.Direction[axis]
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > tmin {
				tmin = t1
			}
			if t2 < tmax {
				tmax = t2
			}
		} else if r.Origin[axis] < box.Min[axis] || r.Origin[axis] > box.Max[axis] {
			return 0, false
		}
	}

	// Check if intersection is valid
	if tmax < tmin || tmax < 0 {
		return 0, false
	}

	// Return entry point, or exit point if starting inside
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// IntersectTerrain marches the ray across the height field and returns the
// surface point under it, if any. maxDist bounds the march in world units.
func (r Ray) IntersectTerrain(data *terrain.TerrainData, maxDist float32) (mgl32.Vec3, bool) {
	// Start at the terrain bounds so the march skips empty space
	enter, hit := r.IntersectAABB(data.Bounds())
	if !hit || enter > maxDist {
		return mgl32.Vec3{}, false
	}

	// Half a cell per step keeps the march from skipping over ridges
	step := data.CellSize().X() * 0.5
	if s := data.CellSize().Z() * 0.5; s < step {
		step = s
	}

	prev := enter
	for t := enter; t <= maxDist; t += step {
		p := r.Origin.Add(r.Direction.Mul(t))
		h, ok := data.HeightAt(p.X(), p.Z())
		if ok && p.Y() <= h {
			return r.refine(data, prev, t), true
		}
		prev = t
	}

	return mgl32.Vec3{}, false
}

// refine bisects between the last point above the surface and the first
// point below it.
func (r Ray) refine(data *terrain.TerrainData, lo, hi float32) mgl32.Vec3 {
	for i := 0; i < 16; i++ {
		mid := (lo + hi) / 2
		p := r.Origin.Add(r.Direction.Mul(mid))
		if h, ok := data.HeightAt(p.X(), p.Z()); ok && p.Y() <= h {
			hi = mid
		} else {
			lo = mid
		}
	}

	p := r.Origin.Add(r.Direction.Mul(hi))
	if h, ok := data.HeightAt(p.X(), p.Z()); ok {
		return mgl32.Vec3{p.X(), h, p.Z()}
	}
	return p
}
