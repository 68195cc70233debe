package math

import (
	"math"
	"testing"
)

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	// Addition
	result := v1.Add(v2)
	expected := NewVec3(5, 7, 9)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	// Subtraction
	result = v2.Sub(v1)
	expected = NewVec3(3, 3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	// Scalar multiplication
	result = v1.Mul(2)
	expected = NewVec3(2, 4, 6)
	if result != expected {
		t.Errorf("Mul: expected %v, got %v", expected, result)
	}

	// Dot product
	dot := v1.Dot(v2)
	expectedDot := float32(32) // 1*4 + 2*5 + 3*6
	if dot != expectedDot {
		t.Errorf("Dot: expected %v, got %v", expectedDot, dot)
	}

	// Cross product (Right x Up = Front in right-handed system)
	cross := Vec3Right.Cross(Vec3Up)
	if cross != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, cross)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 0)
	normalized := v.Normalize()
	expected := NewVec3(1, 0, 0)

	if normalized != expected {
		t.Errorf("Normalize: expected %v, got %v", expected, normalized)
	}

	length := normalized.Length()
	if math.Abs(float64(length-1)) > 0.0001 {
		t.Errorf("Normalize: expected length 1, got %v", length)
	}

	// Zero vector stays untouched
	if Vec3Zero.Normalize() != Vec3Zero {
		t.Errorf("Normalize: expected zero vector to stay zero")
	}
}

func TestMat4Identity(t *testing.T) {
	m := Mat4Identity()

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			expected := float32(0)
			if i == j {
				expected = 1
			}
			if m[i][j] != expected {
				t.Errorf("Identity: expected [%d][%d] = %v, got %v", i, j, expected, m[i][j])
			}
		}
	}
}

func TestMat4Multiplication(t *testing.T) {
	m1 := Mat4Identity()
	m2 := Mat4Identity()

	result := m1.Mul(m2)

	// Identity * Identity = Identity
	if result != Mat4Identity() {
		t.Errorf("Mul: expected identity, got %v", result)
	}
}

func TestMat4Translation(t *testing.T) {
	translation := NewVec3(1, 2, 3)
	m := Mat4Translation(translation)

	// Translation lives in the last column
	if m[0][3] != 1 || m[1][3] != 2 || m[2][3] != 3 {
		t.Errorf("Translation: expected (1,2,3), got (%v,%v,%v)", m[0][3], m[1][3], m[2][3])
	}

	// Test transforming a point
	result := m.MulVec(NewVec4(0, 0, 0, 1))
	if result.ToVec3() != translation {
		t.Errorf("Translation: expected %v, got %v", translation, result.ToVec3())
	}
}

func TestMat4RotationX(t *testing.T) {
	// 90 degree rotation around X should take +Y to +Z
	m := Mat4RotationX(float32(math.Pi / 2))
	result := m.MulVec3(Vec3Up)

	tolerance := float32(0.001)
	if math.Abs(float64(result.X)) > float64(tolerance) ||
		math.Abs(float64(result.Y)) > float64(tolerance) ||
		math.Abs(float64(result.Z-1)) > float64(tolerance) {
		t.Errorf("RotationX: expected approximately (0,0,1), got (%v,%v,%v)", result.X, result.Y, result.Z)
	}
}

func TestMat4Inverse(t *testing.T) {
	m := Mat4Translation(NewVec3(1, -2, 3)).Mul(Mat4RotationY(0.7)).Mul(Mat4Scale(NewVec3(2, 2, 2)))

	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse: unexpected error %v", err)
	}

	result := m.Mul(inv)
	identity := Mat4Identity()
	tolerance := 0.0001
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(float64(result[i][j]-identity[i][j])) > tolerance {
				t.Errorf("Inverse: M*inv(M)[%d][%d] = %v, expected %v", i, j, result[i][j], identity[i][j])
			}
		}
	}
}

func TestMat4InverseSingular(t *testing.T) {
	if _, err := Mat4Zero().Inverse(); err != ErrSingular {
		t.Errorf("Inverse: expected ErrSingular for the zero matrix, got %v", err)
	}
}

func TestDegreeConversions(t *testing.T) {
	if math.Abs(float64(Deg2Rad(180))-math.Pi) > 1e-6 {
		t.Errorf("Deg2Rad: expected pi, got %v", Deg2Rad(180))
	}
	if math.Abs(float64(Rad2Deg(Deg2Rad(73))-73)) > 0.001 {
		t.Errorf("Rad2Deg: round trip failed, got %v", Rad2Deg(Deg2Rad(73)))
	}
}

func TestSphericalRoundTrip(t *testing.T) {
	points := []Vec3{
		{1, 0, 0},
		{0, 2, 0},
		{0, 0, 3},
		{1, -2, 0.5},
		{-0.3, 0.4, -1.2},
	}

	tolerance := 0.0001
	for _, p := range points {
		q := Sph2Cart(Cart2Sph(p))
		if math.Abs(float64(q.X-p.X)) > tolerance ||
			math.Abs(float64(q.Y-p.Y)) > tolerance ||
			math.Abs(float64(q.Z-p.Z)) > tolerance {
			t.Errorf("Sph2Cart(Cart2Sph(%v)): got %v", p, q)
		}
	}
}

func TestCart2SphConvention(t *testing.T) {
	// +X axis: azimuth 0, elevation 0, radius 1
	s := Cart2Sph(Vec3Right)
	if s.X != 0 || s.Y != 0 || s.Z != 1 {
		t.Errorf("Cart2Sph(+X): expected (0,0,1), got %v", s)
	}

	// +Z axis: elevation pi/2
	s = Cart2Sph(NewVec3(0, 0, 2))
	if math.Abs(float64(s.Y)-math.Pi/2) > 0.0001 || s.Z != 2 {
		t.Errorf("Cart2Sph(+Z): expected elevation pi/2 radius 2, got %v", s)
	}
}

func BenchmarkVec3Add(b *testing.B) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	for i := 0; i < b.N; i++ {
		_ = v1.Add(v2)
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Mat4Identity()
	m2 := Mat4Identity()

	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat4Inverse(b *testing.B) {
	m := Mat4Translation(NewVec3(1, -2, 3)).Mul(Mat4RotationY(0.7))

	for i := 0; i < b.N; i++ {
		_, _ = m.Inverse()
	}
}
