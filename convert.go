package vgbridge

import (
	"github.com/srwiley/rasterx"

	"github.com/gogpu/vgbridge/internal/vg"
)

// toMatrix maps the engine's column-major transform onto the rasterizer's
// matrix. Both use the same element order.
func toMatrix(m Mat2D) rasterx.Matrix2D {
	return rasterx.Matrix2D{
		A: float64(m[0]),
		B: float64(m[1]),
		C: float64(m[2]),
		D: float64(m[3]),
		E: float64(m[4]),
		F: float64(m[5]),
	}
}

func fromMatrix(m rasterx.Matrix2D) Mat2D {
	return Mat2D{
		float32(m.A), float32(m.B), float32(m.C),
		float32(m.D), float32(m.E), float32(m.F),
	}
}

// toColor unpacks a ColorInt into float channels. fromColor inverts it
// exactly for every 32-bit value.
func toColor(c ColorInt) vg.Color {
	return vg.RGBA(c.Red(), c.Green(), c.Blue(), c.Alpha())
}

func fromColor(c vg.Color) ColorInt {
	r, g, b, a := c.Bytes()
	return ColorARGB(a, r, g, b)
}

func toFillRule(rule FillRule) vg.FillRule {
	switch rule {
	case FillRuleEvenOdd:
		return vg.FillRuleEvenOdd
	default:
		return vg.FillRuleNonZero
	}
}

func toLineCap(c StrokeCap) vg.LineCap {
	switch c {
	case StrokeCapRound:
		return vg.LineCapRound
	case StrokeCapSquare:
		return vg.LineCapSquare
	default:
		return vg.LineCapButt
	}
}

func toLineJoin(j StrokeJoin) vg.LineJoin {
	switch j {
	case StrokeJoinRound:
		return vg.LineJoinRound
	case StrokeJoinBevel:
		return vg.LineJoinBevel
	default:
		return vg.LineJoinMiter
	}
}

// toOperator approximates every blend mode with source-over.
func toOperator(BlendMode) vg.Operator {
	return vg.OperatorSrcOver
}
