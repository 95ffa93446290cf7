package vgbridge

import "github.com/gogpu/vgbridge/internal/vg"

// Path is the software backend's RenderPath. Geometry is recorded in user
// space in float64 and only mapped to device pixels when it is drawn.
//
// Drawing commands issued before any MoveTo, or after Close, start a new
// contour at the last contour's start point.
type Path struct {
	native   vg.Path
	fillRule FillRule

	startX, startY float64
	open           bool
}

var _ RenderPath = (*Path)(nil)

// NewPath returns an empty path using the non-zero fill rule.
func NewPath() *Path {
	return &Path{}
}

// Reset removes all commands. The fill rule is kept.
func (p *Path) Reset() {
	p.native = p.native[:0]
	p.startX, p.startY = 0, 0
	p.open = false
}

// SetFillRule sets the rule used when the path is filled or used as a clip.
func (p *Path) SetFillRule(rule FillRule) { p.fillRule = rule }

// FillRule returns the path's fill rule.
func (p *Path) FillRule() FillRule { return p.fillRule }

// IsEmpty reports whether the path has no commands.
func (p *Path) IsEmpty() bool { return len(p.native) == 0 }

// MoveTo starts a new contour at (x, y).
func (p *Path) MoveTo(x, y float32) {
	p.native.MoveTo(float64(x), float64(y))
	p.startX, p.startY = float64(x), float64(y)
	p.open = true
}

func (p *Path) ensureContour() {
	if !p.open {
		p.native.MoveTo(p.startX, p.startY)
		p.open = true
	}
}

// LineTo adds a straight segment to (x, y).
func (p *Path) LineTo(x, y float32) {
	p.ensureContour()
	p.native.LineTo(float64(x), float64(y))
}

// QuadTo adds a quadratic curve through control point (ox, oy) to (x, y).
func (p *Path) QuadTo(ox, oy, x, y float32) {
	p.ensureContour()
	p.native.QuadTo(float64(ox), float64(oy), float64(x), float64(y))
}

// CubicTo adds a cubic curve with control points (ox, oy) and (ix, iy)
// ending at (x, y).
func (p *Path) CubicTo(ox, oy, ix, iy, x, y float32) {
	p.ensureContour()
	p.native.CubicTo(float64(ox), float64(oy), float64(ix), float64(iy), float64(x), float64(y))
}

// Close closes the current contour. It does nothing without one.
func (p *Path) Close() {
	if !p.open {
		return
	}
	p.native.Close()
	p.open = false
}

// AddRenderPath appends the geometry of path mapped through transform.
// Points are mapped in float64, so sub-unit detail survives scaling.
// Paths from other backends are ignored.
func (p *Path) AddRenderPath(path RenderPath, transform Mat2D) {
	src, ok := path.(*Path)
	if !ok {
		Logger().Warn("vgbridge: AddRenderPath with foreign path ignored", "type", typeName(path))
		return
	}
	m := toMatrix(transform)
	for _, elem := range src.native {
		elem = vg.TransformElement(elem, m)
		switch e := elem.(type) {
		case vg.MoveTo:
			p.startX, p.startY = e.Point.X, e.Point.Y
			p.open = true
		case vg.Close:
			if !p.open {
				continue
			}
			p.open = false
		default:
			p.ensureContour()
		}
		p.native = append(p.native, elem)
	}
}

// Native returns the recorded user-space geometry.
func (p *Path) Native() vg.Path { return p.native }

// buildPath issues the incremental commands described by bulk data. Each
// verb consumes its points in order; a points slice shorter than the verbs
// require panics with an index error.
func buildPath(p *Path, points []Vec2D, verbs []PathVerb) {
	i := 0
	for _, v := range verbs {
		switch v {
		case VerbMove:
			p.MoveTo(points[i].X, points[i].Y)
		case VerbLine:
			p.LineTo(points[i].X, points[i].Y)
		case VerbQuad:
			p.QuadTo(points[i].X, points[i].Y, points[i+1].X, points[i+1].Y)
		case VerbCubic:
			p.CubicTo(points[i].X, points[i].Y, points[i+1].X, points[i+1].Y, points[i+2].X, points[i+2].Y)
		case VerbClose:
			p.Close()
		}
		i += v.pointCount()
	}
}
