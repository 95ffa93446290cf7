package vg

import "math"

// GradientKind distinguishes gradient geometries.
type GradientKind int

const (
	// GradientLinear varies color along the line between two points.
	GradientLinear GradientKind = iota
	// GradientRadial varies color with the distance from a center.
	GradientRadial
)

// Stop is a color at an offset along a gradient.
type Stop struct {
	Offset float64
	Color  Color
}

// Gradient is an immutable linear or radial gradient defined in user space.
// Colors beyond the first and last stop are padded.
//
// Stops are kept in the order given. Lookups take the first adjacent pair
// whose offsets bracket t, so unsorted input renders deterministically.
type Gradient struct {
	kind   GradientKind
	x0, y0 float64
	x1, y1 float64
	radius float64
	stops  []Stop
}

// NewLinearGradient returns a gradient from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64, stops []Stop) *Gradient {
	return &Gradient{
		kind:  GradientLinear,
		x0:    x0,
		y0:    y0,
		x1:    x1,
		y1:    y1,
		stops: append([]Stop(nil), stops...),
	}
}

// NewRadialGradient returns a gradient around (cx, cy). The focal point is
// the center and the focal radius is zero.
func NewRadialGradient(cx, cy, radius float64, stops []Stop) *Gradient {
	return &Gradient{
		kind:   GradientRadial,
		x0:     cx,
		y0:     cy,
		x1:     cx,
		y1:     cy,
		radius: radius,
		stops:  append([]Stop(nil), stops...),
	}
}

// Kind returns the gradient geometry.
func (g *Gradient) Kind() GradientKind { return g.kind }

// Stops returns a copy of the color stops.
func (g *Gradient) Stops() []Stop { return append([]Stop(nil), g.stops...) }

// Points returns the start and end points. Both are the center for radial
// gradients.
func (g *Gradient) Points() (x0, y0, x1, y1 float64) { return g.x0, g.y0, g.x1, g.y1 }

// Radius returns the radius of a radial gradient.
func (g *Gradient) Radius() float64 { return g.radius }

// ColorAt returns the color at user-space point (x, y).
func (g *Gradient) ColorAt(x, y float64) Color {
	return g.colorAtOffset(g.offset(x, y))
}

func (g *Gradient) offset(x, y float64) float64 {
	switch g.kind {
	case GradientRadial:
		if g.radius <= 0 {
			return 1
		}
		return math.Hypot(x-g.x0, y-g.y0) / g.radius
	default:
		dx, dy := g.x1-g.x0, g.y1-g.y0
		lenSq := dx*dx + dy*dy
		if lenSq == 0 {
			return 1
		}
		return ((x-g.x0)*dx + (y-g.y0)*dy) / lenSq
	}
}

func (g *Gradient) colorAtOffset(t float64) Color {
	n := len(g.stops)
	if n == 0 {
		return Transparent
	}
	if n == 1 {
		return g.stops[0].Color
	}

	t = clamp01(t)

	first, last := g.stops[0], g.stops[n-1]
	if t <= first.Offset {
		return first.Color
	}
	if t >= last.Offset {
		return last.Color
	}

	for i := 0; i < n-1; i++ {
		s0, s1 := g.stops[i], g.stops[i+1]
		if t < s0.Offset || t >= s1.Offset {
			continue
		}
		return lerpColor(s0.Color, s1.Color, (t-s0.Offset)/(s1.Offset-s0.Offset))
	}
	return last.Color
}

func lerpColor(c0, c1 Color, t float64) Color {
	return Color{
		R: c0.R + t*(c1.R-c0.R),
		G: c0.G + t*(c1.G-c0.G),
		B: c0.B + t*(c1.B-c0.B),
		A: c0.A + t*(c1.A-c0.A),
	}
}
