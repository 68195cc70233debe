package camera

import "camrig/math"

// Plane represents a half-space: ax + by + cz + d = 0.
// Normal (a, b, c) points into the "inside" of the frustum.
type Plane struct {
	Normal math.Vec3
	D      float32
}

// DistanceTo returns the signed distance from a point to the plane.
// Positive means on the "inside" (same side as Normal).
func (p Plane) DistanceTo(pt math.Vec3) float32 {
	return p.Normal.Dot(pt) + p.D
}

// Frustum holds the six clip planes of a camera's view volume. It bounds the
// world-space region whose projection lands inside the image, which is the
// region where the project/unproject round trip is meaningful.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// Frustum extracts the six clip planes from the camera's combined
// projection-view matrix (Gribb/Hartmann). With the column-vector matrix
// convention used here the plane rows are the matrix rows themselves.
func (c *Camera) Frustum() (Frustum, error) {
	m, err := c.matrix()
	if err != nil {
		return Frustum{}, err
	}

	r0 := math.Vec4{X: m[0][0], Y: m[0][1], Z: m[0][2], W: m[0][3]}
	r1 := math.Vec4{X: m[1][0], Y: m[1][1], Z: m[1][2], W: m[1][3]}
	r2 := math.Vec4{X: m[2][0], Y: m[2][1], Z: m[2][2], W: m[2][3]}
	r3 := math.Vec4{X: m[3][0], Y: m[3][1], Z: m[3][2], W: m[3][3]}

	var f Frustum
	f.Planes[0] = normalizePlane(r3.Add(r0)) // Left:   r3 + r0
	f.Planes[1] = normalizePlane(r3.Sub(r0)) // Right:  r3 - r0
	f.Planes[2] = normalizePlane(r3.Add(r1)) // Bottom: r3 + r1
	f.Planes[3] = normalizePlane(r3.Sub(r1)) // Top:    r3 - r1
	f.Planes[4] = normalizePlane(r3.Add(r2)) // Near:   r3 + r2
	f.Planes[5] = normalizePlane(r3.Sub(r2)) // Far:    r3 - r2
	return f, nil
}

func normalizePlane(v math.Vec4) Plane {
	n := v.ToVec3()
	l := n.Length()
	if l == 0 {
		return Plane{}
	}
	return Plane{Normal: n.Div(l), D: v.W / l}
}

// Contains reports whether the point lies inside or on all six planes.
func (f Frustum) Contains(pt math.Vec3) bool {
	for i := 0; i < 6; i++ {
		if f.Planes[i].DistanceTo(pt) < 0 {
			return false
		}
	}
	return true
}
