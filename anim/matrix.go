package anim

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix is a 2D affine transformation in row major order with an implicit
// bottom row of [0 0 1]:
//
//	x' = m[0]*x + m[1]*y + m[2]
//	y' = m[3]*x + m[4]*y + m[5]
//
// It converts directly to f64.Aff3 for use with golang.org/x/image/draw.
type Matrix f64.Aff3

// IdentityMatrix returns the identity matrix.
func IdentityMatrix() Matrix {
	return Matrix{1, 0, 0, 0, 1, 0}
}

// TranslateMatrix returns a translation by (dx, dy).
func TranslateMatrix(dx, dy float64) Matrix {
	return Matrix{1, 0, dx, 0, 1, dy}
}

// ScaleMatrix returns a scale by (sx, sy) about the pivot (px, py).
func ScaleMatrix(sx, sy, px, py float64) Matrix {
	return Matrix{sx, 0, px - sx*px, 0, sy, py - sy*py}
}

// RotateMatrix returns a rotation by degrees about the pivot (px, py).
// Positive angles rotate clockwise in a y-down coordinate space.
func RotateMatrix(degrees, px, py float64) Matrix {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return Matrix{
		cos, -sin, px - cos*px + sin*py,
		sin, cos, py - sin*px - cos*py,
	}
}

// Mul returns m·n, the transform that applies n first and then m.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		m[0]*n[0] + m[1]*n[3],
		m[0]*n[1] + m[1]*n[4],
		m[0]*n[2] + m[1]*n[5] + m[2],
		m[3]*n[0] + m[4]*n[3],
		m[3]*n[1] + m[4]*n[4],
		m[3]*n[2] + m[4]*n[5] + m[5],
	}
}

// Apply maps the point (x, y) through m.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

// Invert returns the inverse of m. The second result is false when m is
// singular.
func (m Matrix) Invert() (Matrix, bool) {
	det := m[0]*m[4] - m[1]*m[3]
	if math.Abs(det) < 1e-12 {
		return Matrix{}, false
	}
	inv := 1 / det
	return Matrix{
		m[4] * inv, -m[1] * inv, (m[1]*m[5] - m[2]*m[4]) * inv,
		-m[3] * inv, m[0] * inv, (m[2]*m[3] - m[0]*m[5]) * inv,
	}, true
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == IdentityMatrix()
}
