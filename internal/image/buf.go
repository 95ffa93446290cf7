package image

import (
	"encoding/binary"
	"errors"
)

// Buffer errors.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")
)

// ImageBuf is a pixel buffer with an explicit row stride. Rows may carry
// padding after their last pixel.
//
// ImageBuf is not safe for concurrent writes.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// NewImageBuf creates a zeroed buffer with a tight stride.
func NewImageBuf(width, height int, format Format) (*ImageBuf, error) {
	return NewImageBufWithStride(width, height, format, format.RowBytes(width))
}

// NewImageBufWithStride creates a zeroed buffer whose rows are stride
// bytes apart. Stride must be at least format.RowBytes(width).
func NewImageBufWithStride(width, height int, format Format, stride int) (*ImageBuf, error) {
	if err := validate(width, height, format, stride); err != nil {
		return nil, err
	}
	return &ImageBuf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// FromRaw wraps existing data without copying. The last row needs no
// padding, so data must hold at least stride*(height-1) plus one row.
func FromRaw(data []byte, width, height int, format Format, stride int) (*ImageBuf, error) {
	if err := validate(width, height, format, stride); err != nil {
		return nil, err
	}
	if len(data) < stride*(height-1)+format.RowBytes(width) {
		return nil, ErrDataTooSmall
	}
	return &ImageBuf{
		data:   data,
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

func validate(width, height int, format Format, stride int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if !format.IsValid() {
		return ErrInvalidFormat
	}
	if stride < format.RowBytes(width) {
		return ErrInvalidStride
	}
	return nil
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int { return b.width }

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int { return b.height }

// Stride returns the number of bytes per row (including padding).
func (b *ImageBuf) Stride() int { return b.stride }

// Format returns the pixel format.
func (b *ImageBuf) Format() Format { return b.format }

// Data returns the raw pixel data slice.
func (b *ImageBuf) Data() []byte { return b.data }

// RowBytes returns the pixels of row y without padding, or nil if y is out
// of bounds.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.format.RowBytes(b.width)]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *ImageBuf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.format.BytesPerPixel()
}

// Word returns the four bytes of pixel (x, y) as a little-endian word, or
// 0 outside the buffer. For ARGB formats this is the a<<24|r<<16|g<<8|b
// value.
func (b *ImageBuf) Word(x, y int) uint32 {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return 0
	}
	return binary.LittleEndian.Uint32(b.data[off:])
}

// SetWord stores w little-endian at (x, y). Out-of-range writes are ignored.
func (b *ImageBuf) SetWord(x, y int, w uint32) {
	if off := b.PixelOffset(x, y); off >= 0 {
		binary.LittleEndian.PutUint32(b.data[off:], w)
	}
}

// Fill sets every pixel to the little-endian word w. Row padding is left
// untouched.
func (b *ImageBuf) Fill(w uint32) {
	for y := range b.height {
		row := b.RowBytes(y)
		for x := 0; x < len(row); x += 4 {
			binary.LittleEndian.PutUint32(row[x:], w)
		}
	}
}
