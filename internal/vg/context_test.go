package vg

import (
	"testing"

	"github.com/srwiley/rasterx"
)

func newTestContext(t *testing.T, w, h int) *Context {
	t.Helper()
	s, err := NewSurface(w, h)
	if err != nil {
		t.Fatalf("NewSurface(%d, %d) error = %v", w, h, err)
	}
	return NewContext(s)
}

func alphaAt(s *Surface, x, y int) uint32 {
	return s.Pixel(x, y) >> 24
}

func TestFillRectSolid(t *testing.T) {
	c := newTestContext(t, 4, 3)
	c.SetSourceColor(Color{R: 1, A: 1})
	c.Rect(0, 0, 4, 3)
	c.Fill()

	for y := range 3 {
		for x := range 4 {
			if got := c.Surface().Pixel(x, y); got != 0xFFFF0000 {
				t.Fatalf("Pixel(%d, %d) = %#08x, want 0xffff0000", x, y, got)
			}
		}
	}
}

func TestFillClearsPath(t *testing.T) {
	c := newTestContext(t, 4, 4)
	c.Rect(0, 0, 2, 2)
	c.Fill()
	c.SetSourceColor(Color{G: 1, A: 1})
	c.Fill()

	if got := c.Surface().Pixel(0, 0); got != 0xFF000000 {
		t.Errorf("Pixel(0, 0) = %#08x, want black from the first fill only", got)
	}
}

func nestedSquares() Path {
	var p Path
	for _, r := range [][4]float64{{0, 0, 10, 10}, {3, 3, 4, 4}} {
		x, y, w, h := r[0], r[1], r[2], r[3]
		p.MoveTo(x, y)
		p.LineTo(x+w, y)
		p.LineTo(x+w, y+h)
		p.LineTo(x, y+h)
		p.Close()
	}
	return p
}

func TestFillRules(t *testing.T) {
	tests := []struct {
		name       string
		rule       FillRule
		wantCenter uint32
	}{
		{"nonzero fills hole", FillRuleNonZero, 255},
		{"evenodd leaves hole", FillRuleEvenOdd, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t, 10, 10)
			c.SetFillRule(tt.rule)
			c.AddPath(nestedSquares())
			c.Fill()

			if got := alphaAt(c.Surface(), 5, 5); got != tt.wantCenter {
				t.Errorf("alpha(5, 5) = %d, want %d", got, tt.wantCenter)
			}
			if got := alphaAt(c.Surface(), 1, 1); got != 255 {
				t.Errorf("alpha(1, 1) = %d, want 255", got)
			}
		})
	}
}

func TestPartialCoverage(t *testing.T) {
	c := newTestContext(t, 2, 1)
	c.Rect(0, 0, 0.5, 1)
	c.Fill()

	got := alphaAt(c.Surface(), 0, 0)
	if got < 126 || got > 130 {
		t.Errorf("alpha(0, 0) = %d, want about 128", got)
	}
	if got := alphaAt(c.Surface(), 1, 0); got != 0 {
		t.Errorf("alpha(1, 0) = %d, want 0", got)
	}
}

func TestSubPixelGeometryScaledUp(t *testing.T) {
	c := newTestContext(t, 20, 20)
	c.Transform(rasterx.Matrix2D{A: 1000, D: 1000})
	c.Rect(0, 0, 0.01, 0.01)
	c.Fill()

	tests := []struct {
		x, y int
		want uint32
	}{
		{5, 5, 255},
		{9, 9, 255},
		{10, 5, 0},
		{12, 5, 0},
		{14, 14, 0},
	}
	for _, tt := range tests {
		if got := alphaAt(c.Surface(), tt.x, tt.y); got != tt.want {
			t.Errorf("alpha(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSubPixelStrokeScaledUp(t *testing.T) {
	c := newTestContext(t, 20, 20)
	c.Transform(rasterx.Matrix2D{A: 1000, D: 1000})
	c.SetLineWidth(0.002)
	var p Path
	p.MoveTo(0.002, 0.01)
	p.LineTo(0.018, 0.01)
	c.AddPath(p)
	c.Stroke()

	if got := alphaAt(c.Surface(), 10, 9); got < 250 {
		t.Errorf("alpha(10, 9) = %d, want opaque inside the 2px stroke", got)
	}
	if got := alphaAt(c.Surface(), 10, 12); got != 0 {
		t.Errorf("alpha(10, 12) = %d, want 0 outside the stroke", got)
	}
}

func TestCurveFlattensInDeviceSpace(t *testing.T) {
	c := newTestContext(t, 100, 100)
	c.Transform(rasterx.Matrix2D{A: 1000, D: 1000})
	var p Path
	p.MoveTo(0, 0)
	p.QuadTo(0.1, 0, 0.1, 0.1)
	p.LineTo(0, 0.1)
	p.Close()
	c.AddPath(p)
	c.Fill()

	// The curve passes through (75, 25); points just inside and outside
	// must resolve on the right side of it.
	if got := alphaAt(c.Surface(), 72, 27); got != 255 {
		t.Errorf("alpha(72, 27) = %d, want 255 below the curve", got)
	}
	if got := alphaAt(c.Surface(), 77, 22); got != 0 {
		t.Errorf("alpha(77, 22) = %d, want 0 above the curve", got)
	}
}

func TestHugeCoordinates(t *testing.T) {
	c := newTestContext(t, 4, 4)
	c.Rect(-1e12, -1e12, 2e12+2, 2e12+2)
	c.Fill()
	c.SetLineWidth(1e9)
	c.Rect(1e10, 1e10, 1, 1)
	c.Stroke()

	if got := alphaAt(c.Surface(), 0, 0); got != 255 {
		t.Errorf("alpha(0, 0) = %d, want 255", got)
	}
}

func TestGeometryOutsideSurface(t *testing.T) {
	c := newTestContext(t, 4, 4)
	c.Rect(-10, -10, 12, 12)
	c.Fill()

	if got := alphaAt(c.Surface(), 1, 1); got != 255 {
		t.Errorf("alpha(1, 1) = %d, want 255", got)
	}
	if got := alphaAt(c.Surface(), 2, 2); got != 0 {
		t.Errorf("alpha(2, 2) = %d, want 0", got)
	}
}

func TestSaveRestore(t *testing.T) {
	c := newTestContext(t, 10, 10)
	c.Save()
	c.Translate(5, 5)
	c.Restore()
	c.Rect(0, 0, 1, 1)
	c.Fill()

	if got := alphaAt(c.Surface(), 0, 0); got != 255 {
		t.Errorf("alpha(0, 0) = %d, want 255", got)
	}
	if got := alphaAt(c.Surface(), 5, 5); got != 0 {
		t.Errorf("alpha(5, 5) = %d, want 0", got)
	}
}

func TestRestoreEmptyStack(t *testing.T) {
	c := newTestContext(t, 2, 2)
	c.Translate(1, 0)
	c.Restore()

	if got := c.Matrix(); got.E != 1 {
		t.Errorf("Matrix().E = %v after empty Restore, want 1", got.E)
	}
	if c.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", c.Depth())
	}
}

func TestTransformPreComposes(t *testing.T) {
	c := newTestContext(t, 10, 10)
	c.Translate(4, 0)
	c.Transform(rasterx.Matrix2D{A: 2, D: 2})

	// Scale applies first, then the translation.
	x, y := Apply(c.Matrix(), 1, 1)
	if x != 6 || y != 2 {
		t.Errorf("Apply(1, 1) = (%v, %v), want (6, 2)", x, y)
	}
}

func TestClip(t *testing.T) {
	c := newTestContext(t, 10, 10)
	c.Rect(0, 0, 5, 10)
	c.Clip()
	c.Rect(0, 0, 10, 10)
	c.Fill()

	if got := alphaAt(c.Surface(), 2, 5); got != 255 {
		t.Errorf("alpha(2, 5) = %d, want 255", got)
	}
	if got := alphaAt(c.Surface(), 7, 5); got != 0 {
		t.Errorf("alpha(7, 5) = %d, want 0 outside clip", got)
	}
}

func TestClipIntersectsAndRestores(t *testing.T) {
	c := newTestContext(t, 10, 10)
	c.Save()
	c.Rect(0, 0, 6, 10)
	c.Clip()
	c.Rect(4, 0, 6, 10)
	c.Clip()
	c.Rect(0, 0, 10, 10)
	c.Fill()
	c.Restore()

	for _, tc := range []struct {
		x    int
		want uint32
	}{{2, 0}, {5, 255}, {8, 0}} {
		if got := alphaAt(c.Surface(), tc.x, 0); got != tc.want {
			t.Errorf("alpha(%d, 0) = %d, want %d", tc.x, got, tc.want)
		}
	}

	c.SetSourceColor(Color{B: 1, A: 1})
	c.Rect(8, 0, 1, 1)
	c.Fill()
	if got := c.Surface().Pixel(8, 0); got != 0xFF0000FF {
		t.Errorf("Pixel(8, 0) = %#08x after Restore, want 0xff0000ff", got)
	}
}

func TestStroke(t *testing.T) {
	c := newTestContext(t, 10, 10)
	c.SetLineWidth(2)
	c.SetLineCap(LineCapButt)
	var p Path
	p.MoveTo(2, 5)
	p.LineTo(8, 5)
	c.AddPath(p)
	c.Stroke()

	if got := alphaAt(c.Surface(), 5, 4); got < 250 {
		t.Errorf("alpha(5, 4) = %d, want opaque inside stroke", got)
	}
	if got := alphaAt(c.Surface(), 5, 8); got != 0 {
		t.Errorf("alpha(5, 8) = %d, want 0 outside stroke", got)
	}
}

func TestStrokeZeroWidth(t *testing.T) {
	c := newTestContext(t, 10, 10)
	c.SetLineWidth(0)
	c.Rect(1, 1, 8, 8)
	c.Stroke()

	for y := range 10 {
		for x := range 10 {
			if got := c.Surface().Pixel(x, y); got != 0 {
				t.Fatalf("Pixel(%d, %d) = %#08x, want 0", x, y, got)
			}
		}
	}
}

func TestOperatorSrcReplaces(t *testing.T) {
	c := newTestContext(t, 2, 2)
	c.SetSourceColor(Color{R: 1, A: 1})
	c.Rect(0, 0, 2, 2)
	c.Fill()

	c.SetOperator(OperatorSrc)
	c.SetSourceColor(Color{})
	c.Rect(0, 0, 1, 1)
	c.Fill()

	if got := c.Surface().Pixel(0, 0); got != 0 {
		t.Errorf("Pixel(0, 0) = %#08x, want 0 after Src with transparent", got)
	}
	if got := c.Surface().Pixel(1, 1); got != 0xFFFF0000 {
		t.Errorf("Pixel(1, 1) = %#08x, want untouched red", got)
	}
}

func TestOpacity(t *testing.T) {
	c := newTestContext(t, 1, 1)
	c.SetOpacity(0.5)
	c.Rect(0, 0, 1, 1)
	c.Fill()

	if got := alphaAt(c.Surface(), 0, 0); got != 128 {
		t.Errorf("alpha = %d, want 128", got)
	}
}

func TestPaintHonorsClip(t *testing.T) {
	c := newTestContext(t, 4, 1)
	c.Rect(0, 0, 2, 1)
	c.Clip()
	c.Paint()

	if alphaAt(c.Surface(), 0, 0) != 255 || alphaAt(c.Surface(), 3, 0) != 0 {
		t.Errorf("Paint() = [%#08x %#08x], want clip-limited fill",
			c.Surface().Pixel(0, 0), c.Surface().Pixel(3, 0))
	}
}

func TestTextureSource(t *testing.T) {
	img, err := NewSurfaceForData(make([]byte, 8), 2, 1, 8, false)
	if err != nil {
		t.Fatal(err)
	}
	img.SetPixel(0, 0, 0xFFFF0000)
	img.SetPixel(1, 0, 0x800000FF)

	c := newTestContext(t, 4, 1)
	c.Translate(1, 0)
	c.SetSourceTexture(NewTexture(img))
	c.Rect(0, 0, 2, 1)
	c.Fill()

	if got := c.Surface().Pixel(1, 0); got != 0xFFFF0000 {
		t.Errorf("Pixel(1, 0) = %#08x, want 0xffff0000", got)
	}
	if got := c.Surface().Pixel(2, 0); got != 0x80000080 {
		t.Errorf("Pixel(2, 0) = %#08x, want premultiplied 0x80000080", got)
	}
	if got := c.Surface().Pixel(0, 0); got != 0 {
		t.Errorf("Pixel(0, 0) = %#08x, want 0", got)
	}
}

func TestDestroyedSurfaceIsNoop(t *testing.T) {
	c := newTestContext(t, 2, 2)
	c.Surface().Destroy()
	c.Rect(0, 0, 2, 2)
	c.Fill()
	c.Stroke()
	c.Clip()
	c.Paint()
}
