package camera

import (
	"fmt"

	"camrig/math"
)

// Camera composes one Extrinsic and one Intrinsic. Each camera owns its pair
// exclusively unless the caller deliberately aliases them; New never shares
// state between cameras.
type Camera struct {
	Extrinsic *Extrinsic
	Intrinsic *Intrinsic
	Name      string
	Device    Device
}

// New builds a camera from an explicit extrinsic/intrinsic pair. Nil parts
// fall back to fresh defaults so that two cameras never accidentally share
// state.
func New(extrinsic *Extrinsic, intrinsic *Intrinsic, name string) *Camera {
	if extrinsic == nil {
		extrinsic = DefaultExtrinsic()
	}
	if intrinsic == nil {
		intrinsic = DefaultIntrinsic()
	}
	return &Camera{
		Extrinsic: extrinsic,
		Intrinsic: intrinsic,
		Name:      name,
		Device:    CPU,
	}
}

// matrix returns projection * view.
func (c *Camera) matrix() (math.Mat4, error) {
	proj, err := c.Intrinsic.ProjectionMatrix()
	if err != nil {
		return math.Mat4Zero(), err
	}
	return proj.Mul(c.Extrinsic.ViewMatrix()), nil
}

// Project maps world-space points to image coordinates (u, v, depth). Points
// are lifted to homogeneous coordinates, transformed by projection*view and
// divided back to cartesian, giving normalized device coordinates in [-1,1].
// With pixels set, u and v are rescaled to [0, width-1] and [0, height-1]
// and depth to [0, 1].
func (c *Camera) Project(points []math.Vec3, pixels bool) ([]math.Vec3, error) {
	m, err := c.matrix()
	if err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}

	out := make([]math.Vec3, len(points))
	for i, p := range points {
		out[i] = m.MulVec(p.ToVec4(1)).ToVec3DivW()
	}
	if pixels {
		s := math.Vec3{
			X: 0.5 * (c.Intrinsic.ImageSize.X - 1),
			Y: 0.5 * (c.Intrinsic.ImageSize.Y - 1),
			Z: 0.5,
		}
		for i := range out {
			out[i] = out[i].MulVec(s).Add(s)
		}
	}
	return out, nil
}

// Unproject is the exact algebraic inverse of Project: it takes (u, v, depth)
// triples produced with the same pixels setting and returns world-space
// points. Depth must be carried through from Project; without it the inverse
// is not defined. Fails when the combined projection-view matrix is singular
// (math.ErrSingular), e.g. for a degenerate pose.
func (c *Camera) Unproject(uvd []math.Vec3, pixels bool) ([]math.Vec3, error) {
	m, err := c.matrix()
	if err != nil {
		return nil, fmt.Errorf("unproject: %w", err)
	}
	inv, err := m.Inverse()
	if err != nil {
		return nil, fmt.Errorf("unproject: %w", err)
	}

	out := make([]math.Vec3, len(uvd))
	for i, q := range uvd {
		if pixels {
			s := math.Vec3{
				X: 2 / (c.Intrinsic.ImageSize.X - 1),
				Y: 2 / (c.Intrinsic.ImageSize.Y - 1),
				Z: 2,
			}
			q = q.MulVec(s).Sub(math.Vec3One)
		}
		out[i] = inv.MulVec(q.ToVec4(1)).ToVec3DivW()
	}
	return out, nil
}

// Retarget moves the camera and both owned parts onto the given device.
func (c *Camera) Retarget(d Device) {
	c.Device = d
	c.Extrinsic.Retarget(d)
	c.Intrinsic.Retarget(d)
}
