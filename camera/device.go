// Package camera models a pinhole camera split into extrinsic (pose) and
// intrinsic (projection) parameters, with batched projection of world-space
// points into image space and the exact inverse.
package camera

// Device is an execution-target tag carried alongside the camera state. It is
// orthogonal to the math in this package: all computation here happens on the
// CPU, the tag tells callers that mirror camera data into GPU buffers where
// those mirrors should live.
type Device string

const (
	// CPU is the default device tag.
	CPU Device = "cpu"
	// GPU marks camera data whose mirrors live in GPU memory.
	GPU Device = "gpu"
)

// Retargeter is implemented by every camera component that carries a Device
// tag. Retargeting is always an explicit call, never a side effect of field
// assignment, and cascades from owner to owned parts.
type Retargeter interface {
	Retarget(Device)
}

var (
	_ Retargeter = (*Extrinsic)(nil)
	_ Retargeter = (*Intrinsic)(nil)
	_ Retargeter = (*Camera)(nil)
)
