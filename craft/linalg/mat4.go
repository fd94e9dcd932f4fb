package linalg

import (
	"errors"
	"math"
)

var (
	// ErrDegenerateView is returned by LookAt when eye and target coincide or
	// the view direction is parallel to up.
	ErrDegenerateView = errors.New("linalg: degenerate view basis")

	// ErrSingular is returned by Inverse for a zero determinant.
	ErrSingular = errors.New("linalg: singular matrix")
)

// singularEps bounds |det| below which Inverse refuses to divide.
const singularEps = 1e-12

func Identity4() Mat { return Identity(4, 4) }

func Translation(t Vec) Mat {
	return Mat{
		{1, 0, 0, t[0]},
		{0, 1, 0, t[1]},
		{0, 0, 1, t[2]},
		{0, 0, 0, 1},
	}
}

func Scaling(s Vec) Mat {
	return Mat{
		{s[0], 0, 0, 0},
		{0, s[1], 0, 0},
		{0, 0, s[2], 0},
		{0, 0, 0, 1},
	}
}

// Rotation rotates by angle radians about axis (normalized here).
func Rotation(angle float64, axis Vec) Mat {
	a := axis.Normalized()
	x, y, z := a[0], a[1], a[2]
	c, s := math.Cos(angle), math.Sin(angle)
	omc := 1 - c
	return Mat{
		{x*x*omc + c, x*y*omc - z*s, x*z*omc + y*s, 0},
		{x*y*omc + z*s, y*y*omc + c, y*z*omc - x*s, 0},
		{x*z*omc - y*s, y*z*omc + x*s, z*z*omc + c, 0},
		{0, 0, 0, 1},
	}
}

// Perspective builds a frustum projection. fovY is in radians.
func Perspective(fovY, aspect, near, far float64) Mat {
	f := 1 / math.Tan(fovY/2)
	d := far - near
	return Mat{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, -(near + far) / d, -2 * near * far / d},
		{0, 0, -1, 0},
	}
}

// Orthographic builds a box-shaped projection.
func Orthographic(left, right, bottom, top, near, far float64) Mat {
	return Scaling(V(1/(right-left), 1/(top-bottom), 1/(far-near))).
		Mul(Translation(V(-left-right, -top-bottom, -near-far))).
		Mul(Scaling(V(2, 2, -2)))
}

// LookAt builds a camera (inverse) transform looking from eye towards at.
func LookAt(eye, at, up Vec) (Mat, error) {
	z := at.Sub(eye).Normalized()
	x := z.Cross(up).Normalized()
	y := x.Cross(z).Normalized()
	if !x.Finite() || !y.Finite() || !z.Finite() {
		return nil, ErrDegenerateView
	}
	z.Scale(-1)
	basis := Mat{x.To4(false), y.To4(false), z.To4(false), {0, 0, 0, 1}}
	return Translation(V(-x.Dot(eye), -y.Dot(eye), -z.Dot(eye))).Mul(basis), nil
}

// Inverse inverts a 4x4 matrix by cofactor expansion.
func Inverse(m Mat) (Mat, error) {
	m00, m01, m02, m03 := m[0][0], m[0][1], m[0][2], m[0][3]
	m10, m11, m12, m13 := m[1][0], m[1][1], m[1][2], m[1][3]
	m20, m21, m22, m23 := m[2][0], m[2][1], m[2][2], m[2][3]
	m30, m31, m32, m33 := m[3][0], m[3][1], m[3][2], m[3][3]

	r := Identity4()
	r[0][0] = m12*m23*m31 - m13*m22*m31 + m13*m21*m32 - m11*m23*m32 - m12*m21*m33 + m11*m22*m33
	r[0][1] = m03*m22*m31 - m02*m23*m31 - m03*m21*m32 + m01*m23*m32 + m02*m21*m33 - m01*m22*m33
	r[0][2] = m02*m13*m31 - m03*m12*m31 + m03*m11*m32 - m01*m13*m32 - m02*m11*m33 + m01*m12*m33
	r[0][3] = m03*m12*m21 - m02*m13*m21 - m03*m11*m22 + m01*m13*m22 + m02*m11*m23 - m01*m12*m23
	r[1][0] = m13*m22*m30 - m12*m23*m30 - m13*m20*m32 + m10*m23*m32 + m12*m20*m33 - m10*m22*m33
	r[1][1] = m02*m23*m30 - m03*m22*m30 + m03*m20*m32 - m00*m23*m32 - m02*m20*m33 + m00*m22*m33
	r[1][2] = m03*m12*m30 - m02*m13*m30 - m03*m10*m32 + m00*m13*m32 + m02*m10*m33 - m00*m12*m33
	r[1][3] = m02*m13*m20 - m03*m12*m20 + m03*m10*m22 - m00*m13*m22 - m02*m10*m23 + m00*m12*m23
	r[2][0] = m11*m23*m30 - m13*m21*m30 + m13*m20*m31 - m10*m23*m31 - m11*m20*m33 + m10*m21*m33
	r[2][1] = m03*m21*m30 - m01*m23*m30 - m03*m20*m31 + m00*m23*m31 + m01*m20*m33 - m00*m21*m33
	r[2][2] = m01*m13*m30 - m03*m11*m30 + m03*m10*m31 - m00*m13*m31 - m01*m10*m33 + m00*m11*m33
	r[2][3] = m03*m11*m20 - m01*m13*m20 - m03*m10*m21 + m00*m13*m21 + m01*m10*m23 - m00*m11*m23
	r[3][0] = m12*m21*m30 - m11*m22*m30 - m12*m20*m31 + m10*m22*m31 + m11*m20*m32 - m10*m21*m32
	r[3][1] = m01*m22*m30 - m02*m21*m30 + m02*m20*m31 - m00*m22*m31 - m01*m20*m32 + m00*m21*m32
	r[3][2] = m02*m11*m30 - m01*m12*m30 - m02*m10*m31 + m00*m12*m31 + m01*m10*m32 - m00*m11*m32
	r[3][3] = m01*m12*m20 - m02*m11*m20 + m02*m10*m21 - m00*m12*m21 - m01*m10*m22 + m00*m11*m22

	det := m00*r[0][0] + m10*r[0][1] + m20*r[0][2] + m30*r[0][3]
	if math.Abs(det) < singularEps || math.IsNaN(det) {
		return nil, ErrSingular
	}
	return r.Times(1 / det), nil
}
