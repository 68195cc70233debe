package rig

import (
	"github.com/chewxy/math32"

	"camrig/math"
)

// Polyhedron is a triangulated closed surface used as a source of rig
// viewpoints.
type Polyhedron struct {
	Vertices []math.Vec3
	Faces    [][3]int
}

// Octahedron returns the six axis-aligned unit vertices and eight faces.
func Octahedron() Polyhedron {
	return Polyhedron{
		Vertices: []math.Vec3{
			{X: 1}, {X: -1},
			{Y: 1}, {Y: -1},
			{Z: 1}, {Z: -1},
		},
		Faces: [][3]int{
			{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
			{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
		},
	}
}

// Icosahedron returns the twelve golden-rectangle vertices and twenty faces.
// Vertices are not unit length; rig generators normalize before use.
func Icosahedron() Polyhedron {
	phi := (1 + math32.Sqrt(5)) / 2
	return Polyhedron{
		Vertices: []math.Vec3{
			{X: -1, Y: phi}, {X: 1, Y: phi}, {X: -1, Y: -phi}, {X: 1, Y: -phi},
			{Y: -1, Z: phi}, {Y: 1, Z: phi}, {Y: -1, Z: -phi}, {Y: 1, Z: -phi},
			{X: phi, Z: -1}, {X: phi, Z: 1}, {X: -phi, Z: -1}, {X: -phi, Z: 1},
		},
		Faces: [][3]int{
			{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
			{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
			{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
			{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
		},
	}
}

// Subdivide splits every face into four by inserting edge midpoints.
// Midpoints are shared between adjacent faces, and vertices are left where
// the split puts them: no reprojection onto the sphere happens here.
func (p Polyhedron) Subdivide() Polyhedron {
	verts := make([]math.Vec3, len(p.Vertices), len(p.Vertices)+3*len(p.Faces)/2)
	copy(verts, p.Vertices)

	midpoints := make(map[Edge]int)
	midpoint := func(a, b int) int {
		key := Edge{a, b}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if idx, ok := midpoints[key]; ok {
			return idx
		}
		idx := len(verts)
		verts = append(verts, p.Vertices[a].Lerp(p.Vertices[b], 0.5))
		midpoints[key] = idx
		return idx
	}

	faces := make([][3]int, 0, 4*len(p.Faces))
	for _, f := range p.Faces {
		ab := midpoint(f[0], f[1])
		bc := midpoint(f[1], f[2])
		ca := midpoint(f[2], f[0])
		faces = append(faces,
			[3]int{f[0], ab, ca},
			[3]int{f[1], bc, ab},
			[3]int{f[2], ca, bc},
			[3]int{ab, bc, ca},
		)
	}

	return Polyhedron{Vertices: verts, Faces: faces}
}

// Edges returns the unique undirected edges of the face topology.
func (p Polyhedron) Edges() []Edge {
	return UniqueEdges(triangleEdges(p.Faces))
}
