package vgbridge

import "math"

// Vec2D is a point or vector in engine space.
type Vec2D struct {
	X, Y float32
}

// Mat2D is a 2D affine transform stored column-major as
//
//	[xx, xy, yx, yy, tx, ty]
//
// which represents
//
//	x' = xx*x + yx*y + tx
//	y' = xy*x + yy*y + ty
type Mat2D [6]float32

// IdentityMat2D returns the identity transform.
func IdentityMat2D() Mat2D {
	return Mat2D{1, 0, 0, 1, 0, 0}
}

// TranslateMat2D returns a translation.
func TranslateMat2D(x, y float32) Mat2D {
	return Mat2D{1, 0, 0, 1, x, y}
}

// ScaleMat2D returns a scale about the origin.
func ScaleMat2D(x, y float32) Mat2D {
	return Mat2D{x, 0, 0, y, 0, 0}
}

// RotateMat2D returns a rotation by angle radians.
func RotateMat2D(angle float64) Mat2D {
	sin, cos := math.Sincos(angle)
	return Mat2D{float32(cos), float32(sin), float32(-sin), float32(cos), 0, 0}
}

// Multiply returns m * n: the transform applying n first, then m.
func (m Mat2D) Multiply(n Mat2D) Mat2D {
	return Mat2D{
		m[0]*n[0] + m[2]*n[1],
		m[1]*n[0] + m[3]*n[1],
		m[0]*n[2] + m[2]*n[3],
		m[1]*n[2] + m[3]*n[3],
		m[0]*n[4] + m[2]*n[5] + m[4],
		m[1]*n[4] + m[3]*n[5] + m[5],
	}
}

// MapPoint applies the transform to p.
func (m Mat2D) MapPoint(p Vec2D) Vec2D {
	return Vec2D{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Invert returns the inverse transform. ok is false when m is singular.
func (m Mat2D) Invert() (inv Mat2D, ok bool) {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 {
		return Mat2D{}, false
	}
	invDet := 1 / det
	return Mat2D{
		m[3] * invDet,
		-m[1] * invDet,
		-m[2] * invDet,
		m[0] * invDet,
		(m[2]*m[5] - m[3]*m[4]) * invDet,
		(m[1]*m[4] - m[0]*m[5]) * invDet,
	}, true
}

// IsIdentity reports whether m is the identity transform.
func (m Mat2D) IsIdentity() bool {
	return m == IdentityMat2D()
}
