package math

import "math"

// Mat3 is a 3x3 matrix in column-major order, matching Mat4.
// Layout: [m0 m3 m6]
//
//	[m1 m4 m7]
//	[m2 m5 m8]
type Mat3 [9]float32

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Rotation3X returns a rotation around the X axis (right-handed, radians).
func Rotation3X(angle float32) Mat3 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))

	return Mat3{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	}
}

// Rotation3Y returns a rotation around the Y axis (right-handed, radians).
func Rotation3Y(angle float32) Mat3 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))

	return Mat3{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	}
}

// MulVec3 returns m * v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// Snap rounds entries within eps of -1, 0 or 1 to that value.
// Trig on multiples of pi/2 leaves residue like 1e-8 that would otherwise leak
// into every vector the matrix touches.
func (m Mat3) Snap(eps float32) Mat3 {
	for i, v := range m {
		for _, target := range [...]float32{-1, 0, 1} {
			if v-target < eps && target-v < eps {
				m[i] = target
			}
		}
	}
	return m
}
