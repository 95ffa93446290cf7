package vgbridge

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func solidNRGBA(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDecodeImageCanonicalWords(t *testing.T) {
	data := pngBytes(t, solidNRGBA(2, 2, color.NRGBA{R: 255, A: 255}))

	ri, err := NewSoftwareFactory().DecodeImage(data)
	if err != nil {
		t.Fatalf("DecodeImage() error = %v", err)
	}
	img := ri.(*Image)
	defer img.Close()

	if img.Width() != 2 || img.Height() != 2 {
		t.Fatalf("size = %dx%d, want 2x2", img.Width(), img.Height())
	}
	if got := img.Pixel(0, 0); got != 0xFFFF0000 {
		t.Errorf("Pixel(0, 0) = %v, want #FFFF0000", got)
	}
}

func TestDecodeImageChannelOrder(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44})
	src.SetNRGBA(2, 0, color.NRGBA{R: 0xAA, G: 0xBB, B: 0xCC, A: 0xFF})

	ri, err := NewSoftwareFactory().DecodeImage(pngBytes(t, src))
	if err != nil {
		t.Fatalf("DecodeImage() error = %v", err)
	}
	img := ri.(*Image)
	if got := img.Pixel(0, 0); got != 0x44112233 {
		t.Errorf("Pixel(0, 0) = %v, want #44112233", got)
	}
	if got := img.Pixel(2, 0); got != 0xFFAABBCC {
		t.Errorf("Pixel(2, 0) = %v, want #FFAABBCC", got)
	}
}

func TestReorderRespectsStrides(t *testing.T) {
	// Two rows of one pixel with a padded source stride.
	src := []byte{
		1, 2, 3, 4, 0xEE, 0xEE, 0xEE, 0xEE,
		5, 6, 7, 8, 0xEE, 0xEE, 0xEE, 0xEE,
	}
	dst := make([]byte, 8)
	rgbaToARGB(dst, 4, src, 8, 1, 2)

	want := []byte{3, 2, 1, 4, 7, 6, 5, 8}
	if !bytes.Equal(dst, want) {
		t.Errorf("rgbaToARGB() = % x, want % x", dst, want)
	}

	back := make([]byte, 24)
	argbToRGBA(back, 12, dst, 4, 1, 2)
	if !bytes.Equal(back[0:4], src[0:4]) || !bytes.Equal(back[12:16], src[8:12]) {
		t.Errorf("argbToRGBA() = % x", back)
	}
}

func TestDecodeImageFailures(t *testing.T) {
	big := pngBytes(t, solidNRGBA(40, 2, color.NRGBA{A: 255}))
	tests := []struct {
		name string
		f    *SoftwareFactory
		data []byte
	}{
		{"empty", NewSoftwareFactory(), nil},
		{"corrupt", NewSoftwareFactory(), []byte{0x89, 'P', 'N', 'G', 0, 1, 2, 3}},
		{"text", NewSoftwareFactory(), []byte("hello")},
		{"too large", NewSoftwareFactory(WithMaxImageSize(16)), big},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := tt.f.DecodeImage(tt.data)
			if err == nil {
				t.Fatal("DecodeImage() error = nil")
			}
			if !errors.Is(err, ErrDecode) {
				t.Errorf("DecodeImage() error = %v, want ErrDecode", err)
			}
			if img != nil {
				t.Errorf("DecodeImage() image = %v, want nil", img)
			}
		})
	}
}

func TestImageCloseIdempotent(t *testing.T) {
	ri, err := NewSoftwareFactory().DecodeImage(pngBytes(t, solidNRGBA(1, 1, color.NRGBA{A: 255})))
	if err != nil {
		t.Fatal(err)
	}
	img := ri.(*Image)
	img.Close()
	img.Close()
	if img.Width() != 0 || img.Pixel(0, 0) != 0 {
		t.Error("closed image still reports pixels")
	}

	r := newTestRenderer(t, 2, 2)
	r.DrawImage(img, BlendSrcOver, 1)
	if got := r.Pixel(0, 0); got != 0 {
		t.Errorf("drawing a closed image changed pixels: %v", got)
	}
}

func TestDrawImage(t *testing.T) {
	src := solidNRGBA(2, 2, color.NRGBA{G: 255, A: 255})
	ri, err := NewSoftwareFactory().DecodeImage(pngBytes(t, src))
	if err != nil {
		t.Fatal(err)
	}
	defer ri.Close()

	r := newTestRenderer(t, 6, 6)
	r.Transform(TranslateMat2D(2, 2))
	r.DrawImage(ri, BlendSrcOver, 1)

	if got := r.Pixel(3, 3); got != 0xFF00FF00 {
		t.Errorf("Pixel(3, 3) = %v, want #FF00FF00", got)
	}
	if got := r.Pixel(1, 1); got != 0 {
		t.Errorf("Pixel(1, 1) = %v, want untouched", got)
	}

	r.Clear(0)
	r.DrawImage(ri, BlendMultiply, 0.5)
	if got := r.Pixel(2, 2); got != 0x80008000 {
		t.Errorf("Pixel(2, 2) at half opacity = %v, want #80008000", got)
	}

	// Opacity above one is clamped.
	r.Clear(0)
	r.DrawImage(ri, BlendSrcOver, 3)
	if got := r.Pixel(2, 2); got != 0xFF00FF00 {
		t.Errorf("Pixel(2, 2) with opacity 3 = %v, want #FF00FF00", got)
	}
}

func TestDrawImageDoesNotLeakOpacity(t *testing.T) {
	ri, err := NewSoftwareFactory().DecodeImage(pngBytes(t, solidNRGBA(1, 1, color.NRGBA{A: 255})))
	if err != nil {
		t.Fatal(err)
	}
	r := newTestRenderer(t, 4, 4)
	r.DrawImage(ri, BlendSrcOver, 0.25)
	r.DrawPath(rectPath(2, 2, 2, 2), solidPaint(0xFFFFFFFF))

	if got := r.Pixel(3, 3); got != 0xFFFFFFFF {
		t.Errorf("Pixel(3, 3) = %v, want opaque white after image draw", got)
	}
}
