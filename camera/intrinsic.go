package camera

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"camrig/math"
)

// ErrInvalidConfig reports camera parameters that cannot produce a valid
// projection matrix.
var ErrInvalidConfig = errors.New("camera: invalid configuration")

// Projection selects how the camera maps the view volume to normalized
// device coordinates. It is a closed enum: anything other than Perspective or
// Orthographic is rejected at construction and at matrix build time.
type Projection uint8

const (
	Perspective Projection = iota
	Orthographic
)

func (p Projection) String() string {
	switch p {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	}
	return fmt.Sprintf("projection(%d)", uint8(p))
}

// ParseProjection maps the textual projection kind to the enum.
func ParseProjection(s string) (Projection, error) {
	switch s {
	case "perspective":
		return Perspective, nil
	case "orthographic":
		return Orthographic, nil
	}
	return 0, fmt.Errorf("%w: unknown projection type %q", ErrInvalidConfig, s)
}

// Intrinsic holds the camera projection parameters. Like Extrinsic, all
// matrices are derived on demand from the current field values.
type Intrinsic struct {
	FOV        float32   // vertical field of view, degrees
	Near       float32   // near clipping plane distance
	Far        float32   // far clipping plane distance
	ImageSize  math.Vec2 // image width and height in pixels
	Projection Projection
	Device     Device
}

// NewIntrinsic validates and returns a projection parameter set. It requires
// 0 < fov < 180, 0 < near < far, and a positive image size.
func NewIntrinsic(fov, near, far float32, imageSize math.Vec2, projection Projection) (*Intrinsic, error) {
	if fov <= 0 || fov >= 180 {
		return nil, fmt.Errorf("%w: fov %v degrees out of range (0, 180)", ErrInvalidConfig, fov)
	}
	if near <= 0 || near >= far {
		return nil, fmt.Errorf("%w: clip planes near=%v far=%v must satisfy 0 < near < far", ErrInvalidConfig, near, far)
	}
	if imageSize.X <= 0 || imageSize.Y <= 0 {
		return nil, fmt.Errorf("%w: image size %vx%v must be positive", ErrInvalidConfig, imageSize.X, imageSize.Y)
	}
	if projection != Perspective && projection != Orthographic {
		return nil, fmt.Errorf("%w: unknown projection kind %v", ErrInvalidConfig, projection)
	}
	return &Intrinsic{
		FOV:        fov,
		Near:       near,
		Far:        far,
		ImageSize:  imageSize,
		Projection: projection,
		Device:     CPU,
	}, nil
}

// DefaultIntrinsic returns a 30 degree perspective camera with clip planes
// 0.1 and 10 on a 256x256 image.
func DefaultIntrinsic() *Intrinsic {
	return &Intrinsic{
		FOV:        30,
		Near:       0.1,
		Far:        10,
		ImageSize:  math.NewVec2(256, 256),
		Projection: Perspective,
		Device:     CPU,
	}
}

// Aspect returns width/height of the image.
func (in *Intrinsic) Aspect() float32 {
	return in.ImageSize.X / in.ImageSize.Y
}

// OrthographicMatrix builds the orthographic projection matrix.
func (in *Intrinsic) OrthographicMatrix() math.Mat4 {
	fov := math.Deg2Rad(in.FOV)
	t := math32.Tan(fov / 2)

	m := math.Mat4Zero()
	m[0][0] = 1 / (in.Aspect() * t)
	m[1][1] = 1 / t
	m[2][2] = 2 / (in.Far - in.Near)
	m[2][3] = -(in.Far + in.Near) / (in.Far - in.Near)
	m[3][3] = 1
	return m
}

// PerspectiveMatrix builds the right-handed perspective projection matrix.
// The homogeneous component of a projected point carries the view-space
// depth; the divide happens downstream.
func (in *Intrinsic) PerspectiveMatrix() math.Mat4 {
	fov := math.Deg2Rad(in.FOV)
	t := math32.Tan(fov / 2)

	m := math.Mat4Zero()
	m[0][0] = 1 / (in.Aspect() * t)
	m[1][1] = 1 / t
	m[2][2] = (in.Far + in.Near) / (in.Far - in.Near)
	m[2][3] = -2 * (in.Far * in.Near) / (in.Far - in.Near)
	m[3][2] = 1
	return m
}

// ProjectionMatrix dispatches on the projection kind. An unknown kind fails
// with ErrInvalidConfig.
func (in *Intrinsic) ProjectionMatrix() (math.Mat4, error) {
	switch in.Projection {
	case Orthographic:
		return in.OrthographicMatrix(), nil
	case Perspective:
		return in.PerspectiveMatrix(), nil
	}
	return math.Mat4Zero(), fmt.Errorf("%w: unknown projection kind %v", ErrInvalidConfig, in.Projection)
}

// Retarget moves the projection parameters onto the given device.
func (in *Intrinsic) Retarget(d Device) {
	in.Device = d
}
