// Package vg is a small immediate-mode vector rasterizer over ARGB32
// surfaces. A Context keeps a stack of graphics states (transform, clip,
// source, operator, fill rule and stroke parameters) and fills or strokes
// the current path into its target surface.
//
// Paths stay in float64 user space until they are mapped to device space.
// Fills flatten in device space straight into an area-coverage scanner,
// which resolves the non-zero and even-odd rules and composites through the
// clip mask. Stroke expansion comes from rasterx.
package vg

import (
	"encoding/binary"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// FillRule selects how path winding maps to inside and outside.
type FillRule int

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

// Operator is a Porter-Duff compositing operator.
type Operator int

const (
	// OperatorSrc replaces the destination, weighted by coverage.
	OperatorSrc Operator = iota
	// OperatorSrcOver draws the source over the destination.
	OperatorSrcOver
)

// LineCap is the shape of open stroke ends.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin is the shape of stroke corners.
type LineJoin int

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// DefaultMiterLimit is the miter limit of a new context.
const DefaultMiterLimit = 10

type sourceKind int

const (
	sourceColor sourceKind = iota
	sourceGradient
	sourceTexture
)

type state struct {
	matrix     rasterx.Matrix2D
	clip       *mask
	kind       sourceKind
	color      Color
	gradient   *Gradient
	texture    *Texture
	opacity    float64
	operator   Operator
	fillRule   FillRule
	lineWidth  float64
	lineCap    LineCap
	lineJoin   LineJoin
	miterLimit float64
}

func defaultState() state {
	return state{
		matrix:     Identity,
		color:      Color{A: 1},
		opacity:    1,
		operator:   OperatorSrcOver,
		fillRule:   FillRuleNonZero,
		lineWidth:  1,
		lineCap:    LineCapButt,
		lineJoin:   LineJoinMiter,
		miterLimit: DefaultMiterLimit,
	}
}

// Context draws into a premultiplied Surface.
type Context struct {
	surface *Surface
	st      state
	stack   []state
	path    Path
	scan    *scanner
}

// NewContext returns a context drawing into s.
func NewContext(s *Surface) *Context {
	return &Context{
		surface: s,
		st:      defaultState(),
		scan:    newScanner(s.Width(), s.Height()),
	}
}

// Surface returns the target surface.
func (c *Context) Surface() *Surface { return c.surface }

// Save pushes a copy of the current graphics state.
func (c *Context) Save() {
	c.stack = append(c.stack, c.st)
}

// Restore pops the most recently saved state. It does nothing when no state
// has been saved.
func (c *Context) Restore() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.st = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

// Depth returns the number of saved states.
func (c *Context) Depth() int { return len(c.stack) }

// Transform pre-multiplies m onto the current matrix, so m applies to
// geometry before the existing transform.
func (c *Context) Transform(m rasterx.Matrix2D) {
	c.st.matrix = Concat(c.st.matrix, m)
}

// Translate pre-multiplies a translation.
func (c *Context) Translate(tx, ty float64) {
	c.Transform(rasterx.Matrix2D{A: 1, D: 1, E: tx, F: ty})
}

// SetMatrix replaces the current matrix.
func (c *Context) SetMatrix(m rasterx.Matrix2D) { c.st.matrix = m }

// Matrix returns the current matrix.
func (c *Context) Matrix() rasterx.Matrix2D { return c.st.matrix }

// SetSourceColor sets a solid color source.
func (c *Context) SetSourceColor(col Color) {
	c.st.kind = sourceColor
	c.st.color = col
	c.st.gradient = nil
	c.st.texture = nil
}

// SetSourceGradient sets a gradient source. A nil gradient paints nothing.
func (c *Context) SetSourceGradient(g *Gradient) {
	c.st.kind = sourceGradient
	c.st.gradient = g
	c.st.texture = nil
}

// SetSourceTexture sets a texture source. A nil texture paints nothing.
func (c *Context) SetSourceTexture(t *Texture) {
	c.st.kind = sourceTexture
	c.st.texture = t
	c.st.gradient = nil
}

// SetOpacity sets the global opacity, clamped to [0, 1].
func (c *Context) SetOpacity(opacity float64) { c.st.opacity = clamp01(opacity) }

// SetOperator sets the compositing operator.
func (c *Context) SetOperator(op Operator) { c.st.operator = op }

// SetFillRule sets the rule used by Fill and Clip.
func (c *Context) SetFillRule(rule FillRule) { c.st.fillRule = rule }

// FillRule returns the current fill rule.
func (c *Context) FillRule() FillRule { return c.st.fillRule }

// SetLineWidth sets the stroke width in user units.
func (c *Context) SetLineWidth(w float64) { c.st.lineWidth = w }

// SetLineCap sets the stroke cap.
func (c *Context) SetLineCap(lc LineCap) { c.st.lineCap = lc }

// SetLineJoin sets the stroke join.
func (c *Context) SetLineJoin(lj LineJoin) { c.st.lineJoin = lj }

// SetMiterLimit sets the miter length limit, as a multiple of the width.
func (c *Context) SetMiterLimit(limit float64) { c.st.miterLimit = limit }

// AddPath appends user-space geometry to the current path.
func (c *Context) AddPath(p Path) {
	c.path = append(c.path, p...)
}

// Rect appends a closed axis-aligned rectangle to the current path.
func (c *Context) Rect(x, y, w, h float64) {
	c.path.MoveTo(x, y)
	c.path.LineTo(x+w, y)
	c.path.LineTo(x+w, y+h)
	c.path.LineTo(x, y+h)
	c.path.Close()
}

// NewPath discards the current path.
func (c *Context) NewPath() { c.path = c.path[:0] }

// Fill fills the current path with the current source and clears it.
func (c *Context) Fill() {
	defer c.NewPath()
	if len(c.path) == 0 || c.surface.Data() == nil {
		return
	}
	c.fillInto(c.st.fillRule == FillRuleNonZero, c.surfaceSpan())
}

// Stroke strokes the current path with the current source and clears it.
// Strokes always resolve with the non-zero rule. A non-positive width
// draws nothing.
func (c *Context) Stroke() {
	defer c.NewPath()
	if len(c.path) == 0 || c.st.lineWidth <= 0 || c.surface.Data() == nil {
		return
	}

	width := c.st.lineWidth
	c.scan.clearTransform()
	stroker := rasterx.NewStroker(c.surface.Width(), c.surface.Height(), c.scan)
	c.scan.SetWinding(true)
	c.scan.emit = c.surfaceSpan()

	// Similar transforms stroke in device space with a scaled width, so
	// curves flatten at device resolution. Other transforms stroke in a
	// uniformly scaled space and let the scanner apply the remainder.
	pre := c.st.matrix
	if k, ok := similarity(c.st.matrix); ok {
		width *= k
	} else {
		k = math.Max(math.Hypot(pre.A, pre.B), math.Hypot(pre.C, pre.D))
		if k == 0 || math.IsNaN(k) || math.IsInf(k, 0) {
			c.scan.Clear()
			return
		}
		width *= k
		pre = rasterx.Matrix2D{A: k, D: k}
		c.scan.setTransform(Concat(c.st.matrix, rasterx.Matrix2D{A: 1 / k, D: 1 / k}))
	}

	stroker.SetStroke(
		fixed26(width),
		fixed26(c.st.miterLimit),
		capFunc(c.st.lineCap),
		capFunc(c.st.lineCap),
		gapFunc(c.st.lineJoin),
		joinMode(c.st.lineJoin),
	)
	c.path.addTo(stroker, pre)
	c.scan.Draw()
	c.scan.clearTransform()
	c.scan.Clear()
}

// Clip intersects the clip region with the current path using the current
// fill rule and clears the path.
func (c *Context) Clip() {
	defer c.NewPath()
	if c.surface.Data() == nil {
		return
	}
	next := newMask(c.surface.Width(), c.surface.Height())
	if len(c.path) > 0 {
		prev := c.st.clip
		c.fillInto(c.st.fillRule == FillRuleNonZero, func(y, x0 int, cover []float64) {
			for i, cv := range cover {
				if cv == 0 {
					continue
				}
				x := x0 + i
				if prev != nil {
					cv *= prev.at(x, y)
				}
				next.set(x, y, cv)
			}
		})
	}
	c.st.clip = next
}

// ResetClip removes the clip region.
func (c *Context) ResetClip() { c.st.clip = nil }

// Paint fills the whole clip region with the current source.
func (c *Context) Paint() {
	if c.surface.Data() == nil {
		return
	}
	emit := c.surfaceSpan()
	cover := make([]float64, c.surface.Width())
	for i := range cover {
		cover[i] = 1
	}
	for y := range c.surface.Height() {
		emit(y, 0, cover)
	}
}

func (c *Context) fillInto(nonZero bool, emit spanFunc) {
	c.scan.clearTransform()
	c.scan.SetWinding(nonZero)
	c.scan.emit = emit
	c.path.flatten(c.st.matrix, c.scan)
	c.scan.Draw()
	c.scan.Clear()
}

// surfaceSpan returns a span function compositing the current source
// through the clip mask.
func (c *Context) surfaceSpan() spanFunc {
	sp := c.newSampler()
	clip := c.st.clip
	op := c.st.operator
	buf := c.surface.buf
	return func(y, x0 int, cover []float64) {
		row := buf.RowBytes(y)
		for i, cv := range cover {
			if cv == 0 {
				continue
			}
			x := x0 + i
			if clip != nil {
				if cv *= clip.at(x, y); cv == 0 {
					continue
				}
			}
			src := sp.at(x, y)
			off := x * 4
			dst := unpackPixel(binary.LittleEndian.Uint32(row[off:]), true)
			binary.LittleEndian.PutUint32(row[off:], packPixel(composite(op, src, dst, cv)))
		}
	}
}

func composite(op Operator, src, dst pixel, cov float64) pixel {
	s := src.scale(cov)
	k := 1 - cov
	if op == OperatorSrcOver {
		k = 1 - s.a
	}
	return pixel{
		r: s.r + dst.r*k,
		g: s.g + dst.g*k,
		b: s.b + dst.b*k,
		a: s.a + dst.a*k,
	}
}

// sampler resolves the current source at device pixel centers.
type sampler struct {
	kind     sourceKind
	solid    pixel
	gradient *Gradient
	texture  *Texture
	inverse  rasterx.Matrix2D
	ok       bool
	opacity  float64
}

func (c *Context) newSampler() *sampler {
	sp := &sampler{
		kind:     c.st.kind,
		gradient: c.st.gradient,
		texture:  c.st.texture,
		opacity:  c.st.opacity,
	}
	if sp.kind == sourceColor {
		sp.solid = c.st.color.premultiply().scale(sp.opacity)
		sp.ok = true
		return sp
	}
	sp.inverse, sp.ok = Invert(c.st.matrix)
	return sp
}

func (sp *sampler) at(x, y int) pixel {
	if sp.kind == sourceColor {
		return sp.solid
	}
	if !sp.ok {
		return pixel{}
	}
	ux, uy := Apply(sp.inverse, float64(x)+0.5, float64(y)+0.5)
	switch sp.kind {
	case sourceGradient:
		if sp.gradient == nil {
			return pixel{}
		}
		return sp.gradient.ColorAt(ux, uy).premultiply().scale(sp.opacity)
	case sourceTexture:
		if sp.texture == nil {
			return pixel{}
		}
		return sp.texture.at(ux, uy).scale(sp.opacity)
	}
	return pixel{}
}

func fixed26(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(max(-maxCoord, min(maxCoord, v)) * 64))
}

func capFunc(lc LineCap) rasterx.CapFunc {
	switch lc {
	case LineCapRound:
		return rasterx.RoundCap
	case LineCapSquare:
		return rasterx.SquareCap
	default:
		return rasterx.ButtCap
	}
}

func gapFunc(lj LineJoin) rasterx.GapFunc {
	if lj == LineJoinRound {
		return rasterx.RoundGap
	}
	return rasterx.FlatGap
}

func joinMode(lj LineJoin) rasterx.JoinMode {
	switch lj {
	case LineJoinRound:
		return rasterx.Round
	case LineJoinBevel:
		return rasterx.Bevel
	default:
		return rasterx.Miter
	}
}
