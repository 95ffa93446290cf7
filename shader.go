package vgbridge

import "github.com/gogpu/vgbridge/internal/vg"

// Shader is the software backend's RenderShader: an immutable gradient.
// Paints share a Shader by pointer.
type Shader struct {
	kind     ShaderKind
	gradient *vg.Gradient
}

var _ RenderShader = (*Shader)(nil)

// ShaderKind reports whether the shader is linear or radial.
func (s *Shader) ShaderKind() ShaderKind { return s.kind }

// StopCount returns the number of color stops.
func (s *Shader) StopCount() int { return len(s.gradient.Stops()) }

func gradientStops(colors []ColorInt, stops []float32) []vg.Stop {
	n := min(len(colors), len(stops))
	out := make([]vg.Stop, n)
	for i := range n {
		out[i] = vg.Stop{Offset: float64(stops[i]), Color: toColor(colors[i])}
	}
	return out
}

// newLinearShader builds a gradient from (sx, sy) to (ex, ey). Stops keep
// the caller's order.
func newLinearShader(sx, sy, ex, ey float32, colors []ColorInt, stops []float32) *Shader {
	return &Shader{
		kind: ShaderLinearGradient,
		gradient: vg.NewLinearGradient(
			float64(sx), float64(sy), float64(ex), float64(ey),
			gradientStops(colors, stops),
		),
	}
}

// newRadialShader builds a gradient centered on (cx, cy) whose focus is
// the center.
func newRadialShader(cx, cy, radius float32, colors []ColorInt, stops []float32) *Shader {
	return &Shader{
		kind: ShaderRadialGradient,
		gradient: vg.NewRadialGradient(
			float64(cx), float64(cy), float64(radius),
			gradientStops(colors, stops),
		),
	}
}
