package vg

import (
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Point is a position in user or device space.
type Point struct {
	X, Y float64
}

// Tolerance is the maximum device-space distance between a curve and its
// flattened polyline.
const Tolerance = 0.1

// maxDepth bounds curve subdivision.
const maxDepth = 16

// maxCoord bounds coordinates handed to the fixed-point stroker and the
// scanner. It keeps 26.6 values inside int32.
const maxCoord = 1 << 24

// PathElement is one command of a Path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic curve.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is user-space geometry kept in float64 until it is mapped to device
// space. Drawing commands without a current subpath start one at the last
// subpath's start point, or at the origin.
type Path []PathElement

// MoveTo starts a subpath at (x, y).
func (p *Path) MoveTo(x, y float64) { *p = append(*p, MoveTo{Point{x, y}}) }

// LineTo adds a line to (x, y).
func (p *Path) LineTo(x, y float64) { *p = append(*p, LineTo{Point{x, y}}) }

// QuadTo adds a quadratic curve with control point (cx, cy).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	*p = append(*p, QuadTo{Point{cx, cy}, Point{x, y}})
}

// CubicTo adds a cubic curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	*p = append(*p, CubicTo{Point{c1x, c1y}, Point{c2x, c2y}, Point{x, y}})
}

// Close closes the current subpath.
func (p *Path) Close() { *p = append(*p, Close{}) }

// TransformElement returns e with every point mapped through m.
func TransformElement(e PathElement, m rasterx.Matrix2D) PathElement {
	switch e := e.(type) {
	case MoveTo:
		return MoveTo{mapPoint(m, e.Point)}
	case LineTo:
		return LineTo{mapPoint(m, e.Point)}
	case QuadTo:
		return QuadTo{mapPoint(m, e.Control), mapPoint(m, e.Point)}
	case CubicTo:
		return CubicTo{mapPoint(m, e.Control1), mapPoint(m, e.Control2), mapPoint(m, e.Point)}
	}
	return e
}

func mapPoint(m rasterx.Matrix2D, p Point) Point {
	x, y := Apply(m, p.X, p.Y)
	return Point{x, y}
}

// segmenter receives flattened device-space polylines.
type segmenter interface {
	moveTo(p Point)
	lineTo(p Point)
	closePath()
}

// flatten maps the path through m and feeds it to dst as polylines. Curves
// are subdivided after the mapping, so precision follows device pixels.
func (p Path) flatten(m rasterx.Matrix2D, dst segmenter) {
	var start, cur Point
	open := false
	begin := func() {
		if !open {
			dst.moveTo(mapPoint(m, cur))
			open = true
		}
	}
	for _, elem := range p {
		switch e := elem.(type) {
		case MoveTo:
			start, cur = e.Point, e.Point
			dst.moveTo(mapPoint(m, cur))
			open = true
		case LineTo:
			begin()
			dst.lineTo(mapPoint(m, e.Point))
			cur = e.Point
		case QuadTo:
			begin()
			flattenQuadratic(dst, mapPoint(m, cur), mapPoint(m, e.Control), mapPoint(m, e.Point), 0)
			cur = e.Point
		case CubicTo:
			begin()
			flattenCubic(dst, mapPoint(m, cur), mapPoint(m, e.Control1), mapPoint(m, e.Control2), mapPoint(m, e.Point), 0)
			cur = e.Point
		case Close:
			if open {
				dst.closePath()
				open = false
			}
			cur = start
		}
	}
}

// addTo replays the path into a fixed-point rasterx adder, mapping points
// through m first. Open subpaths end with Stop(false).
func (p Path) addTo(a rasterx.Adder, m rasterx.Matrix2D) {
	var start, cur Point
	open := false
	begin := func() {
		if !open {
			a.Start(toFixed(mapPoint(m, cur)))
			open = true
		}
	}
	for _, elem := range p {
		switch e := elem.(type) {
		case MoveTo:
			if open {
				a.Stop(false)
			}
			start, cur = e.Point, e.Point
			a.Start(toFixed(mapPoint(m, cur)))
			open = true
		case LineTo:
			begin()
			a.Line(toFixed(mapPoint(m, e.Point)))
			cur = e.Point
		case QuadTo:
			begin()
			a.QuadBezier(toFixed(mapPoint(m, e.Control)), toFixed(mapPoint(m, e.Point)))
			cur = e.Point
		case CubicTo:
			begin()
			a.CubeBezier(toFixed(mapPoint(m, e.Control1)), toFixed(mapPoint(m, e.Control2)), toFixed(mapPoint(m, e.Point)))
			cur = e.Point
		case Close:
			if open {
				a.Stop(true)
				open = false
			}
			cur = start
		}
	}
	if open {
		a.Stop(false)
	}
}

// Lerp interpolates between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Mul scales p by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the distance from the origin.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between p and q.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// clampPoint limits p to the representable coordinate range. NaN is kept.
func clampPoint(p Point) Point {
	return Point{
		X: max(-maxCoord, min(maxCoord, p.X)),
		Y: max(-maxCoord, min(maxCoord, p.Y)),
	}
}

// toFixed rounds p to the nearest 26.6 point.
func toFixed(p Point) fixed.Point26_6 {
	p = clampPoint(p)
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(p.X * 64)),
		Y: fixed.Int26_6(math.Round(p.Y * 64)),
	}
}

// flattenQuadratic subdivides a device-space quadratic until its control
// point lies within Tolerance of the chord.
func flattenQuadratic(dst segmenter, p0, p1, p2 Point, depth int) {
	dist := distanceToLine(p1, p0, p2)

	// NaN stops subdivision too.
	if depth >= maxDepth || !(dist >= Tolerance) {
		dst.lineTo(p2)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	flattenQuadratic(dst, p0, q0, q2, depth+1)
	flattenQuadratic(dst, q2, q1, p2, depth+1)
}

// flattenCubic subdivides a device-space cubic with de Casteljau's
// algorithm.
func flattenCubic(dst segmenter, p0, p1, p2, p3 Point, depth int) {
	dist := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))

	if depth >= maxDepth || !(dist >= Tolerance) {
		dst.lineTo(p3)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubic(dst, p0, q0, r0, s, depth+1)
	flattenCubic(dst, s, r1, q2, p3, depth+1)
}

// distanceToLine returns the distance from p to the segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()
	if abLen < 1e-10 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / (abLen * abLen)
	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
