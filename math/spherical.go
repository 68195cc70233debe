package math

import "github.com/chewxy/math32"

// Angle and coordinate-system conversions shared by the camera and rig
// packages. Spherical coordinates are (azimuth, elevation, radius) with the
// Z axis up: azimuth is measured in the XY plane from +X, elevation from the
// XY plane towards +Z.

func Deg2Rad(deg float32) float32 {
	return deg * math32.Pi / 180
}

func Rad2Deg(rad float32) float32 {
	return rad * 180 / math32.Pi
}

// Cart2Sph converts a cartesian point to (azimuth, elevation, radius).
func Cart2Sph(p Vec3) Vec3 {
	return Vec3{
		X: math32.Atan2(p.Y, p.X),
		Y: math32.Atan2(p.Z, math32.Hypot(p.X, p.Y)),
		Z: p.Length(),
	}
}

// Sph2Cart converts (azimuth, elevation, radius) back to a cartesian point.
func Sph2Cart(s Vec3) Vec3 {
	az, el, r := s.X, s.Y, s.Z
	cosEl := math32.Cos(el)
	return Vec3{
		X: r * cosEl * math32.Cos(az),
		Y: r * cosEl * math32.Sin(az),
		Z: r * math32.Sin(el),
	}
}
