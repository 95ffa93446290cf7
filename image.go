package vgbridge

import (
	"encoding/binary"
	"fmt"

	imageio "github.com/gogpu/vgbridge/internal/image"
	"github.com/gogpu/vgbridge/internal/vg"
)

// Image is the software backend's RenderImage. It owns a buffer of
// straight-alpha ARGB words (little-endian) and the rasterizer surface and
// texture that read from it.
type Image struct {
	width, height int
	stride        int
	buffer        []byte
	surface       *vg.Surface
	texture       *vg.Texture
}

var _ RenderImage = (*Image)(nil)

// decodeImage decodes encoded bytes into an Image. Nothing is allocated
// beyond the decoder's own buffers when decoding fails.
func decodeImage(data []byte, maxDim int) (*Image, error) {
	src, format, err := imageio.Decode(data, maxDim)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	img := &Image{
		width:  w,
		height: h,
		stride: w * 4,
		buffer: make([]byte, w*h*4),
	}
	rgbaToARGB(img.buffer, img.stride, src.Pix, src.Stride, w, h)

	img.surface, err = vg.NewSurfaceForData(img.buffer, w, h, img.stride, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	img.texture = vg.NewTexture(img.surface)

	Logger().Debug("vgbridge: image decoded", "format", format, "width", w, "height", h)
	return img, nil
}

// rgbaToARGB converts rows of RGBA bytes into ARGB words. Source and
// destination strides are independent.
func rgbaToARGB(dst []byte, dstStride int, src []byte, srcStride int, width, height int) {
	for y := range height {
		s := src[y*srcStride : y*srcStride+width*4]
		d := dst[y*dstStride : y*dstStride+width*4]
		for x := 0; x < len(s); x += 4 {
			r, g, b, a := uint32(s[x]), uint32(s[x+1]), uint32(s[x+2]), uint32(s[x+3])
			binary.LittleEndian.PutUint32(d[x:], a<<24|r<<16|g<<8|b)
		}
	}
}

// argbToRGBA converts rows of ARGB words into RGBA bytes.
func argbToRGBA(dst []byte, dstStride int, src []byte, srcStride int, width, height int) {
	for y := range height {
		s := src[y*srcStride : y*srcStride+width*4]
		d := dst[y*dstStride : y*dstStride+width*4]
		for x := 0; x < len(s); x += 4 {
			w := binary.LittleEndian.Uint32(s[x:])
			d[x] = byte(w >> 16)
			d[x+1] = byte(w >> 8)
			d[x+2] = byte(w)
			d[x+3] = byte(w >> 24)
		}
	}
}

// Width returns the width in pixels, or 0 after Close.
func (i *Image) Width() int { return i.width }

// Height returns the height in pixels, or 0 after Close.
func (i *Image) Height() int { return i.height }

// Pixel returns the straight-alpha color at (x, y), or 0 outside the image.
func (i *Image) Pixel(x, y int) ColorInt {
	if x < 0 || y < 0 || x >= i.width || y >= i.height {
		return 0
	}
	return ColorInt(binary.LittleEndian.Uint32(i.buffer[y*i.stride+x*4:]))
}

// Close releases the texture, then the surface, then the pixel buffer.
// Closing twice is harmless.
func (i *Image) Close() {
	if i.buffer == nil {
		return
	}
	i.texture.Destroy()
	i.surface.Destroy()
	i.texture, i.surface, i.buffer = nil, nil, nil
	i.width, i.height, i.stride = 0, 0, 0
	Logger().Debug("vgbridge: image released")
}

func (i *Image) closed() bool { return i.buffer == nil }
