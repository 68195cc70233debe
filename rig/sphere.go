package rig

import (
	"github.com/chewxy/math32"

	"camrig/math"
)

// tiledSphere samples a unit sphere on an elevation/azimuth grid and returns
// the welded vertex set plus quad topology. rings is the number of elevation
// bands between the poles, segments the number of azimuth steps. Pole rows
// collapse to a single vertex each and the azimuth seam is welded, so quads
// touching a pole are degenerate; the rig generator relies on edge
// deduplication to clean those up.
func tiledSphere(rings, segments int) ([]math.Vec3, [][4]int) {
	if rings < 2 {
		rings = 2
	}
	if segments < 3 {
		segments = 3
	}

	// 2 poles + (rings-1) interior rows of `segments` vertices
	verts := make([]math.Vec3, 0, 2+(rings-1)*segments)
	verts = append(verts, math.Vec3{Z: 1}) // north pole
	for ring := 1; ring < rings; ring++ {
		polar := math32.Pi * float32(ring) / float32(rings)
		sinP := math32.Sin(polar)
		cosP := math32.Cos(polar)
		for seg := 0; seg < segments; seg++ {
			azimuth := 2 * math32.Pi * float32(seg) / float32(segments)
			verts = append(verts, math.Vec3{
				X: sinP * math32.Cos(azimuth),
				Y: sinP * math32.Sin(azimuth),
				Z: cosP,
			})
		}
	}
	south := len(verts)
	verts = append(verts, math.Vec3{Z: -1})

	index := func(ring, seg int) int {
		switch {
		case ring <= 0:
			return 0
		case ring >= rings:
			return south
		}
		return 1 + (ring-1)*segments + seg%segments
	}

	quads := make([][4]int, 0, rings*segments)
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			quads = append(quads, [4]int{
				index(ring, seg),
				index(ring+1, seg),
				index(ring+1, seg+1),
				index(ring, seg+1),
			})
		}
	}
	return verts, quads
}
