package vg

import (
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Identity is the identity transform.
var Identity = rasterx.Matrix2D{A: 1, D: 1}

// Concat returns the transform that applies n first and then m.
func Concat(m, n rasterx.Matrix2D) rasterx.Matrix2D {
	return rasterx.Matrix2D{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Invert returns the inverse of m. ok is false when m is singular.
func Invert(m rasterx.Matrix2D) (inv rasterx.Matrix2D, ok bool) {
	det := m.A*m.D - m.B*m.C
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return rasterx.Matrix2D{}, false
	}
	return rasterx.Matrix2D{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
		E: (m.C*m.F - m.D*m.E) / det,
		F: (m.B*m.E - m.A*m.F) / det,
	}, true
}

// Apply maps (x, y) through m.
func Apply(m rasterx.Matrix2D, x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// similarity reports whether m preserves angles and scales uniformly, and
// returns the scale factor.
func similarity(m rasterx.Matrix2D) (float64, bool) {
	sx := math.Hypot(m.A, m.B)
	sy := math.Hypot(m.C, m.D)
	if sx == 0 || sy == 0 {
		return 0, false
	}
	const eps = 1e-9
	if math.Abs(sx-sy) > eps*math.Max(sx, sy) {
		return 0, false
	}
	if math.Abs(m.A*m.C+m.B*m.D) > eps*sx*sy {
		return 0, false
	}
	return sx, true
}

func unfix(p fixed.Point26_6) (float64, float64) {
	return float64(p.X) / 64, float64(p.Y) / 64
}
