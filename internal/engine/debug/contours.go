package debug

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/ConArtist141/Terrain/pkg/terrain"
)

// contourSegments maps a marching-squares cell case to pairs of crossed
// edges. Corner bits follow the order (x, y), (x+1, y), (x+1, y+1),
// (x, y+1), each set when that corner sits at or above the iso elevation.
// Edges are 0 top, 1 right, 2 bottom, 3 left. The two saddle cases (5, 10)
// keep each high corner on its own segment.
var contourSegments = [16][]uint8{
	1:  {3, 0},
	2:  {0, 1},
	3:  {3, 1},
	4:  {1, 2},
	5:  {3, 0, 1, 2},
	6:  {0, 2},
	7:  {3, 2},
	8:  {2, 3},
	9:  {0, 2},
	10: {0, 1, 2, 3},
	11: {1, 2},
	12: {3, 1},
	13: {0, 1},
	14: {3, 0},
}

// contourEdgeCorners gives the two corner indices bounding each edge.
var contourEdgeCorners = [4][2]int{{0, 1}, {1, 2}, {3, 2}, {0, 3}}

// ContourLines traces iso-elevation lines across the terrain surface, the
// same way a topographic map draws height rings. levels picks how many
// evenly spaced elevations get a line strictly between the terrain's height
// extremes; lift raises the lines off the mesh so they stay visible. Lines
// shade from blue at the lowest level to white at the highest.
func ContourLines(data *terrain.TerrainData, levels int, lift float32) []LineVertex {
	if data == nil || levels <= 0 || data.MaxHeight() <= data.MinHeight() {
		return nil
	}

	field := data.Field()
	span := data.MaxHeight() - data.MinHeight()

	var vertices []LineVertex
	for level := 1; level <= levels; level++ {
		fraction := float32(level) / float32(levels+1)
		iso := data.MinHeight() + span*fraction
		r, g, b := contourColor(fraction)

		for y := 0; y < field.Height()-1; y++ {
			for x := 0; x < field.Width()-1; x++ {
				vertices = appendCellContour(vertices, data, x, y, iso, lift, r, g, b)
			}
		}
	}
	return vertices
}

// appendCellContour emits the contour segments crossing one grid cell.
func appendCellContour(vertices []LineVertex, data *terrain.TerrainData, x, y int, iso, lift, r, g, b float32) []LineVertex {
	corners := [4]mgl32.Vec3{
		data.VertexAt(x, y),
		data.VertexAt(x+1, y),
		data.VertexAt(x+1, y+1),
		data.VertexAt(x, y+1),
	}

	index := 0
	for i, corner := range corners {
		if corner.Y() >= iso {
			index |= 1 << i
		}
	}

	edges := contourSegments[index]
	for i := 0; i+1 < len(edges); i += 2 {
		p0 := edgeCrossing(corners, edges[i], iso, lift)
		p1 := edgeCrossing(corners, edges[i+1], iso, lift)
		vertices = append(vertices,
			LineVertex{p0.X(), p0.Y(), p0.Z(), r, g, b},
			LineVertex{p1.X(), p1.Y(), p1.Z(), r, g, b},
		)
	}
	return vertices
}

// edgeCrossing interpolates where the iso elevation cuts one cell edge.
// A crossed edge always has one corner at or above the level and one below,
// so the heights never coincide.
func edgeCrossing(corners [4]mgl32.Vec3, edge uint8, iso, lift float32) mgl32.Vec3 {
	ends := contourEdgeCorners[edge]
	a, b := corners[ends[0]], corners[ends[1]]
	t := (iso - a.Y()) / (b.Y() - a.Y())
	p := a.Add(b.Sub(a).Mul(t))
	return mgl32.Vec3{p.X(), iso + lift, p.Z()}
}

// contourColor shades a level by its fraction of the height range.
func contourColor(fraction float32) (r, g, b float32) {
	return 0.2 + 0.7*fraction, 0.35 + 0.55*fraction, 0.9
}
