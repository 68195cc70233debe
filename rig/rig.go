package rig

import (
	"github.com/chewxy/math32"

	"camrig/math"
)

// TiltAngle is the fixed rotation about the X axis applied to every
// polyhedral and spherical rig. It breaks the axis-aligned symmetry of the
// source shapes so no viewpoint ends up exactly on a coordinate axis.
const TiltAngle = math32.Pi / 100

// DefaultAperture is the default bokeh cluster aperture angle in radians.
const DefaultAperture = math32.Pi / 16

// Rig is an ordered set of viewpoint positions and the adjacency between
// them. Positions are cartesian unless the generator was asked for spherical
// (azimuth, elevation, radius) coordinates.
type Rig struct {
	Positions []math.Vec3
	Edges     []Edge
}

// FromPolyhedron places one viewpoint on every vertex of the polyhedron:
// vertices are normalized to unit length, tilted by TiltAngle about X and
// scaled by distance. Adjacency is the polyhedron's own edge topology.
func FromPolyhedron(p Polyhedron, distance float32, toSpherical bool) Rig {
	tilt := math.Mat4RotationX(TiltAngle)

	positions := make([]math.Vec3, len(p.Vertices))
	for i, v := range p.Vertices {
		positions[i] = tilt.MulVec3(v.Normalize()).Mul(distance)
	}
	if toSpherical {
		for i, v := range positions {
			positions[i] = math.Cart2Sph(v)
		}
	}
	return Rig{Positions: positions, Edges: p.Edges()}
}

// Views6 places viewpoints on the octahedron vertices.
func Views6(distance float32, toSpherical bool) Rig {
	return FromPolyhedron(Octahedron(), distance, toSpherical)
}

// Views12 places viewpoints on the icosahedron vertices.
func Views12(distance float32, toSpherical bool) Rig {
	return FromPolyhedron(Icosahedron(), distance, toSpherical)
}

// Views18 places viewpoints on the once-subdivided octahedron vertices.
func Views18(distance float32, toSpherical bool) Rig {
	return FromPolyhedron(Octahedron().Subdivide(), distance, toSpherical)
}

// Views42 places viewpoints on the once-subdivided icosahedron vertices.
func Views42(distance float32, toSpherical bool) Rig {
	return FromPolyhedron(Icosahedron().Subdivide(), distance, toSpherical)
}

// Views66 places viewpoints on the twice-subdivided octahedron vertices.
func Views66(distance float32, toSpherical bool) Rig {
	return FromPolyhedron(Octahedron().Subdivide().Subdivide(), distance, toSpherical)
}

// Stage places viewpoints on an elevation/azimuth tiled sphere. Adjacency is
// the union of the grid's quad edges and quad diagonals, with the self-edges
// of degenerate pole quads removed. The same tilt and scaling as
// FromPolyhedron apply.
func Stage(tileElevation, tileAzimuth int, distance float32, toSpherical bool) Rig {
	verts, quads := tiledSphere(tileElevation, tileAzimuth)
	tilt := math.Mat4RotationX(TiltAngle)

	positions := make([]math.Vec3, len(verts))
	for i, v := range verts {
		positions[i] = tilt.MulVec3(v).Mul(distance)
	}
	edges := UniqueEdges(append(quadEdges(quads), quadDiagonals(quads)...))

	if toSpherical {
		for i, v := range positions {
			positions[i] = math.Cart2Sph(v)
		}
	}
	return Rig{Positions: positions, Edges: edges}
}

// Polygon places n viewpoints on a regular n-gon of circumradius distance in
// the XY plane. Adjacency is an open chain: vertex i connects to i+1 and the
// polygon is deliberately not closed back to vertex 0.
func Polygon(n int, distance float32, toSpherical bool) Rig {
	positions := EquilateralPolygon(n)
	for i, v := range positions {
		positions[i] = v.Mul(distance)
	}
	if toSpherical {
		for i, v := range positions {
			positions[i] = math.Cart2Sph(v)
		}
	}
	return Rig{Positions: positions, Edges: chainEdges(n)}
}

// EquilateralPolygon returns the n vertices of a regular unit-circumradius
// polygon in the XY plane, starting at +X and winding counter-clockwise.
func EquilateralPolygon(n int) []math.Vec3 {
	positions := make([]math.Vec3, n)
	for i := 0; i < n; i++ {
		t := 2 * math32.Pi * float32(i) / float32(n)
		positions[i] = math.Vec3{X: math32.Cos(t), Y: math32.Sin(t)}
	}
	return positions
}

// Bokeh spreads n extra viewpoints around position p to simulate a finite
// aperture. Row 0 is p itself (through the spherical round trip, with zero
// offset); rows 1..n add the vertices of an aperture-scaled polygon onto p's
// spherical coordinates. The polygon offsets land on the elevation and
// radius components with the azimuth untouched, mirroring the original
// generator's column permutation.
func Bokeh(p math.Vec3, n int, aperture float32) []math.Vec3 {
	sph := math.Cart2Sph(p)

	out := make([]math.Vec3, n+1)
	out[0] = math.Sph2Cart(sph)
	for i, q := range EquilateralPolygon(n) {
		out[i+1] = math.Sph2Cart(math.Vec3{
			X: sph.X,
			Y: sph.Y + aperture*q.X,
			Z: sph.Z + aperture*q.Y,
		})
	}
	return out
}
