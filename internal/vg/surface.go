package vg

import (
	"fmt"

	imageio "github.com/gogpu/vgbridge/internal/image"
)

// Surface errors.
var (
	// ErrInvalidDimensions is returned for non-positive or oversized surfaces.
	ErrInvalidDimensions = imageio.ErrInvalidDimensions

	// ErrInvalidStride is returned when a row stride cannot hold a full row.
	ErrInvalidStride = imageio.ErrInvalidStride

	// ErrDataTooSmall is returned when wrapped data cannot hold every row.
	ErrDataTooSmall = imageio.ErrDataTooSmall
)

// MaxDimension is the largest accepted surface width or height.
const MaxDimension = 1 << 15

// Surface is a rectangular buffer of 32-bit ARGB words stored little-endian,
// so each pixel occupies the bytes B, G, R, A in that order.
//
// Surfaces created by NewSurface hold premultiplied pixels. Surfaces wrapping
// external data may hold straight alpha, which readers premultiply on access.
type Surface struct {
	buf *imageio.ImageBuf
}

// NewSurface allocates a zeroed premultiplied surface with a tight stride.
func NewSurface(width, height int) (*Surface, error) {
	return NewSurfaceStride(width, height, width*4)
}

// NewSurfaceStride allocates a zeroed premultiplied surface whose rows are
// stride bytes apart.
func NewSurfaceStride(width, height, stride int) (*Surface, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	buf, err := imageio.NewImageBufWithStride(width, height, imageio.FormatARGB32Premul, stride)
	if err != nil {
		return nil, fmt.Errorf("vg: surface %dx%d stride %d: %w", width, height, stride, err)
	}
	return &Surface{buf: buf}, nil
}

// NewSurfaceForData wraps caller-owned data without copying it.
func NewSurfaceForData(data []byte, width, height, stride int, premultiplied bool) (*Surface, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	format := imageio.FormatARGB32
	if premultiplied {
		format = imageio.FormatARGB32Premul
	}
	buf, err := imageio.FromRaw(data, width, height, format, stride)
	if err != nil {
		return nil, fmt.Errorf("vg: wrap %d bytes as %dx%d stride %d: %w", len(data), width, height, stride, err)
	}
	return &Surface{buf: buf}, nil
}

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("vg: surface %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return nil
}

// Width returns the width in pixels.
func (s *Surface) Width() int {
	if s.buf == nil {
		return 0
	}
	return s.buf.Width()
}

// Height returns the height in pixels.
func (s *Surface) Height() int {
	if s.buf == nil {
		return 0
	}
	return s.buf.Height()
}

// Stride returns the distance between rows in bytes.
func (s *Surface) Stride() int {
	if s.buf == nil {
		return 0
	}
	return s.buf.Stride()
}

// Data returns the backing bytes.
func (s *Surface) Data() []byte {
	if s.buf == nil {
		return nil
	}
	return s.buf.Data()
}

// Premultiplied reports whether pixels are stored premultiplied.
func (s *Surface) Premultiplied() bool {
	return s.buf != nil && s.buf.Format().IsPremultiplied()
}

// Pixel returns the raw ARGB word at (x, y), or 0 outside the surface.
func (s *Surface) Pixel(x, y int) uint32 {
	if s.buf == nil {
		return 0
	}
	return s.buf.Word(x, y)
}

// SetPixel stores a raw ARGB word at (x, y). Out-of-range writes are ignored.
func (s *Surface) SetPixel(x, y int, w uint32) {
	if s.buf != nil {
		s.buf.SetWord(x, y, w)
	}
}

// Clear replaces every pixel with c.
func (s *Surface) Clear(c Color) {
	if s.buf == nil {
		return
	}
	var w uint32
	if s.Premultiplied() {
		w = packPixel(c.premultiply())
	} else {
		r, g, b, a := c.Bytes()
		w = uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	}
	s.buf.Fill(w)
}

// Destroy drops the reference to the pixel data. The surface reads as
// empty afterwards.
func (s *Surface) Destroy() { s.buf = nil }

// sample returns the premultiplied pixel at (x, y).
func (s *Surface) sample(x, y int) pixel {
	if s.buf == nil {
		return pixel{}
	}
	return unpackPixel(s.buf.Word(x, y), s.Premultiplied())
}
