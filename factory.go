package vgbridge

// SoftwareFactory is the Factory for SoftwareRenderer resources.
// It holds no per-resource state and may be shared.
type SoftwareFactory struct {
	opts factoryOptions
}

var _ Factory = (*SoftwareFactory)(nil)

// NewSoftwareFactory returns a factory configured by opts.
func NewSoftwareFactory(opts ...FactoryOption) *SoftwareFactory {
	o := defaultFactoryOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &SoftwareFactory{opts: o}
}

// MakeBufferU16 copies data into a new buffer.
func (f *SoftwareFactory) MakeBufferU16(data []uint16) RenderBuffer { return newBufferU16(data) }

// MakeBufferU32 copies data into a new buffer.
func (f *SoftwareFactory) MakeBufferU32(data []uint32) RenderBuffer { return newBufferU32(data) }

// MakeBufferF32 copies data into a new buffer.
func (f *SoftwareFactory) MakeBufferF32(data []float32) RenderBuffer { return newBufferF32(data) }

// MakeLinearGradient returns a gradient from (sx, sy) to (ex, ey). The
// stop count is the shorter of colors and stops; stops are not sorted.
func (f *SoftwareFactory) MakeLinearGradient(sx, sy, ex, ey float32, colors []ColorInt, stops []float32) RenderShader {
	s := newLinearShader(sx, sy, ex, ey, colors, stops)
	Logger().Debug("vgbridge: linear gradient", "stops", s.StopCount())
	return s
}

// MakeRadialGradient returns a gradient around (cx, cy) with the given
// radius. The focus is the center.
func (f *SoftwareFactory) MakeRadialGradient(cx, cy, radius float32, colors []ColorInt, stops []float32) RenderShader {
	s := newRadialShader(cx, cy, radius, colors, stops)
	Logger().Debug("vgbridge: radial gradient", "stops", s.StopCount())
	return s
}

// MakeRenderPath builds a path from bulk verbs and points. The result is
// identical to issuing the matching MoveTo, LineTo, QuadTo, CubicTo and
// Close calls. points must hold every point the verbs consume.
func (f *SoftwareFactory) MakeRenderPath(points []Vec2D, verbs []PathVerb, rule FillRule) RenderPath {
	p := NewPath()
	p.SetFillRule(rule)
	buildPath(p, points, verbs)
	return p
}

// MakeEmptyRenderPath returns an empty non-zero path.
func (f *SoftwareFactory) MakeEmptyRenderPath() RenderPath { return NewPath() }

// MakeRenderPaint returns a paint with default state.
func (f *SoftwareFactory) MakeRenderPaint() RenderPaint { return NewPaint() }

// DecodeImage decodes PNG, JPEG, GIF, WebP, BMP or TIFF bytes. On failure
// it returns a nil RenderImage and an error wrapping ErrDecode.
func (f *SoftwareFactory) DecodeImage(data []byte) (RenderImage, error) {
	img, err := decodeImage(data, f.opts.maxImageDimension)
	if err != nil {
		Logger().Warn("vgbridge: decode image", "bytes", len(data), "err", err)
		return nil, err
	}
	return img, nil
}
