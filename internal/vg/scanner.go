package vg

import (
	"image"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// spanFunc receives the coverage of row y starting at column x0.
type spanFunc func(y, x0 int, cover []float64)

// scanner accumulates signed area per pixel cell and resolves it into
// coverage with the non-zero or even-odd rule. Fills feed it float
// polylines directly. It also implements rasterx.Scanner, so the rasterx
// stroker drives it with fixed-point points.
//
// Each row holds width+1 cells. Contributions left of the surface fold into
// cell 0 and contributions right of it land in the spare last cell.
type scanner struct {
	width, height int
	cells         []float64
	cover         []float64

	nonZero bool
	clip    image.Rectangle
	color   interface{}
	emit    spanFunc

	xform    rasterx.Matrix2D
	hasXform bool

	firstX, firstY float64
	penX, penY     float64
	open           bool

	minRow, maxRow int
	extent         fixed.Rectangle26_6
	hasExtent      bool
}

var (
	_ rasterx.Scanner = (*scanner)(nil)
	_ segmenter       = (*scanner)(nil)
)

func newScanner(width, height int) *scanner {
	s := &scanner{nonZero: true}
	s.SetBounds(width, height)
	return s
}

// SetBounds resizes the cell grid and resets the clip rectangle.
func (s *scanner) SetBounds(width, height int) {
	if width != s.width || height != s.height || s.cells == nil {
		s.width, s.height = width, height
		s.cells = make([]float64, (width+1)*height)
		s.cover = make([]float64, width)
	}
	s.clip = image.Rect(0, 0, width, height)
	s.resetRows()
}

func (s *scanner) SetWinding(useNonZeroWinding bool) { s.nonZero = useNonZeroWinding }

func (s *scanner) SetColor(c interface{}) { s.color = c }

func (s *scanner) SetClip(r image.Rectangle) {
	bounds := image.Rect(0, 0, s.width, s.height)
	if r.Empty() {
		s.clip = bounds
		return
	}
	s.clip = r.Intersect(bounds)
}

// setTransform makes Start and Line map incoming points through m.
func (s *scanner) setTransform(m rasterx.Matrix2D) {
	s.xform = m
	s.hasXform = true
}

func (s *scanner) clearTransform() { s.hasXform = false }

func (s *scanner) point(p fixed.Point26_6) Point {
	x, y := unfix(p)
	if s.hasXform {
		x, y = Apply(s.xform, x, y)
	}
	return Point{x, y}
}

func (s *scanner) grow(p fixed.Point26_6) {
	if !s.hasExtent {
		s.extent = fixed.Rectangle26_6{Min: p, Max: p}
		s.hasExtent = true
		return
	}
	s.extent.Min.X = min(s.extent.Min.X, p.X)
	s.extent.Min.Y = min(s.extent.Min.Y, p.Y)
	s.extent.Max.X = max(s.extent.Max.X, p.X)
	s.extent.Max.Y = max(s.extent.Max.Y, p.Y)
}

func (s *scanner) Start(a fixed.Point26_6) {
	s.grow(a)
	s.moveTo(s.point(a))
}

func (s *scanner) Line(b fixed.Point26_6) {
	s.grow(b)
	s.lineTo(s.point(b))
}

// moveTo starts a contour at a device-space point, closing the previous one.
func (s *scanner) moveTo(p Point) {
	s.closeContour()
	p = clampPoint(p)
	s.firstX, s.firstY = p.X, p.Y
	s.penX, s.penY = p.X, p.Y
	s.open = true
}

func (s *scanner) lineTo(p Point) {
	p = clampPoint(p)
	s.accumulate(p.X, p.Y)
	s.open = true
}

func (s *scanner) closePath() { s.closeContour() }

// Draw closes the current contour and hands the resolved coverage to the
// span function.
func (s *scanner) Draw() {
	s.closeContour()
	if s.minRow > s.maxRow {
		return
	}
	for y := s.minRow; y <= s.maxRow; y++ {
		row := s.cells[y*(s.width+1) : (y+1)*(s.width+1)]
		if s.emit != nil && y >= s.clip.Min.Y && y < s.clip.Max.Y {
			acc := 0.0
			for x := range s.width {
				acc += row[x]
				s.cover[x] = s.coverage(acc)
			}
			s.emit(y, s.clip.Min.X, s.cover[s.clip.Min.X:s.clip.Max.X])
		}
		clear(row)
	}
	s.minRow, s.maxRow = s.height, -1
}

func (s *scanner) GetPathExtent() fixed.Rectangle26_6 { return s.extent }

func (s *scanner) Clear() {
	for y := max(s.minRow, 0); y <= s.maxRow && y < s.height; y++ {
		clear(s.cells[y*(s.width+1) : (y+1)*(s.width+1)])
	}
	s.resetRows()
}

func (s *scanner) resetRows() {
	s.minRow, s.maxRow = s.height, -1
	s.open = false
	s.hasExtent = false
	s.extent = fixed.Rectangle26_6{}
	s.penX, s.penY, s.firstX, s.firstY = 0, 0, 0, 0
}

func (s *scanner) closeContour() {
	if s.open && (s.penX != s.firstX || s.penY != s.firstY) {
		s.accumulate(s.firstX, s.firstY)
	}
	s.open = false
}

func (s *scanner) coverage(acc float64) float64 {
	const eps = 1e-6
	a := math.Abs(acc)
	if s.nonZero {
		a = min(a, 1)
	} else {
		a = math.Mod(a, 2)
		if a > 1 {
			a = 2 - a
		}
	}
	if a < eps {
		return 0
	}
	if a > 1-eps {
		return 1
	}
	return a
}

func (s *scanner) add(row []float64, x int, v float64) {
	if x < 0 {
		x = 0
	} else if x > s.width {
		x = s.width
	}
	row[x] += v
}

// accumulate adds the signed area of the segment from the pen to (bx, by).
func (s *scanner) accumulate(bx, by float64) {
	ax, ay := s.penX, s.penY
	s.penX, s.penY = bx, by

	dir := 1.0
	if ay > by {
		dir, ax, ay, bx, by = -1, bx, by, ax, ay
	}
	if by-ay <= 1e-9 || math.IsNaN(ax+ay+bx+by) {
		return
	}
	if by <= 0 || ay >= float64(s.height) {
		return
	}
	dxdy := (bx - ax) / (by - ay)
	if ay < 0 {
		ax += -ay * dxdy
		ay = 0
	}

	x := ax
	y := math.Floor(ay)
	yMax := min(math.Ceil(by), float64(s.height))

	s.minRow = min(s.minRow, int(y))
	s.maxRow = max(s.maxRow, int(yMax)-1)

	for ; y < yMax; y++ {
		dy := min(y+1, by) - max(y, ay)
		xNext := x + dy*dxdy
		row := s.cells[int(y)*(s.width+1) : (int(y)+1)*(s.width+1)]
		d := dy * dir

		x0, x1 := x, xNext
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		x0Floor := math.Floor(x0)
		x0i := int(x0Floor)
		x1Ceil := math.Ceil(x1)
		x1i := int(x1Ceil)

		if x1i <= x0i+1 {
			xmf := 0.5*(x+xNext) - x0Floor
			s.add(row, x0i, d-d*xmf)
			s.add(row, x0i+1, d*xmf)
		} else {
			inv := 1 / (x1 - x0)
			x0f := x0 - x0Floor
			oneMinusX0f := 1 - x0f
			a0 := 0.5 * inv * oneMinusX0f * oneMinusX0f
			x1f := x1 - x1Ceil + 1
			am := 0.5 * inv * x1f * x1f

			s.add(row, x0i, d*a0)
			if x1i == x0i+2 {
				s.add(row, x0i+1, d*(1-a0-am))
			} else {
				a1 := inv * (1.5 - x0f)
				s.add(row, x0i+1, d*(a1-a0))
				dInv := d * inv
				lo, hi := x0i+2, x1i-1
				if lo < 0 {
					if n := min(hi, 0) - lo; n > 0 {
						s.add(row, 0, dInv*float64(n))
					}
					lo = 0
				}
				hi = min(hi, s.width+1)
				for xi := lo; xi < hi; xi++ {
					s.add(row, xi, dInv)
				}
				a2 := a1 + inv*float64(x1i-x0i-3)
				s.add(row, x1i-1, d*(1-a2-am))
			}
			s.add(row, x1i, d*am)
		}
		x = xNext
	}
}
