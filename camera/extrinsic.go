package camera

import "camrig/math"

// Extrinsic holds the camera pose: where the camera sits, what it looks at
// and which way is up. The view matrix is derived on demand, never cached, so
// any mutation is reflected by the next call.
type Extrinsic struct {
	Position math.Vec3
	Target   math.Vec3
	UpVector math.Vec3
	Device   Device
}

// NewExtrinsic returns a pose looking from position towards target. The up
// vector does not need to be unit length, but must not be parallel to the
// view direction when ViewMatrix is called.
func NewExtrinsic(position, target, up math.Vec3) *Extrinsic {
	return &Extrinsic{
		Position: position,
		Target:   target,
		UpVector: up,
		Device:   CPU,
	}
}

// DefaultExtrinsic returns the origin pose looking down +Z with +Y up.
func DefaultExtrinsic() *Extrinsic {
	return NewExtrinsic(math.Vec3Zero, math.Vec3Front, math.Vec3Up)
}

// LookAt replaces the target and returns the receiver for chaining. The
// caller is responsible for keeping the direction non-degenerate.
func (e *Extrinsic) LookAt(target math.Vec3) *Extrinsic {
	e.Target = target
	return e
}

// LookFrom replaces the position and returns the receiver for chaining.
func (e *Extrinsic) LookFrom(position math.Vec3) *Extrinsic {
	e.Position = position
	return e
}

// Direction returns target - position, unnormalized.
func (e *Extrinsic) Direction() math.Vec3 {
	return e.Target.Sub(e.Position)
}

// ViewMatrix builds the world-to-camera transform from the right-handed
// basis z = normalize(direction), x = normalize(up x z), y = z x x. The
// basis vectors form the columns of the upper 3x3 block and the negated
// position fills the last column. An up vector parallel to the view
// direction collapses the basis and yields a singular matrix; that is a
// caller error and is not detected here.
func (e *Extrinsic) ViewMatrix() math.Mat4 {
	z := e.Direction().Normalize()
	x := e.UpVector.Cross(z).Normalize()
	y := z.Cross(x)
	p := e.Position

	return math.Mat4{
		{x.X, y.X, z.X, -p.X},
		{x.Y, y.Y, z.Y, -p.Y},
		{x.Z, y.Z, z.Z, -p.Z},
		{0, 0, 0, 1},
	}
}

// Retarget moves the pose onto the given device.
func (e *Extrinsic) Retarget(d Device) {
	e.Device = d
}
