package vgbridge

// Paint is the software backend's RenderPaint. Setters only record state;
// the renderer reads it when drawing.
//
// A shader, when present, takes precedence over the flat color. Setting a
// color does not remove the shader.
type Paint struct {
	style     PaintStyle
	color     ColorInt
	thickness float32
	join      StrokeJoin
	cap       StrokeCap
	blend     BlendMode
	shader    *Shader
}

var _ RenderPaint = (*Paint)(nil)

// NewPaint returns a paint that fills with transparent black. Stroke
// defaults are thickness 1 with round joins and caps.
func NewPaint() *Paint {
	return &Paint{
		style:     PaintStyleFill,
		thickness: 1,
		join:      StrokeJoinRound,
		cap:       StrokeCapRound,
		blend:     BlendSrcOver,
	}
}

// SetStyle selects fill or stroke.
func (p *Paint) SetStyle(style PaintStyle) { p.style = style }

// SetColor sets the flat color used when no shader is set.
func (p *Paint) SetColor(color ColorInt) { p.color = color }

// SetThickness sets the stroke width in user units.
func (p *Paint) SetThickness(thickness float32) { p.thickness = thickness }

// SetJoin sets the stroke join.
func (p *Paint) SetJoin(join StrokeJoin) { p.join = join }

// SetCap sets the stroke cap.
func (p *Paint) SetCap(cap StrokeCap) { p.cap = cap }

// SetBlendMode records the blend mode.
func (p *Paint) SetBlendMode(mode BlendMode) { p.blend = mode }

// SetShader replaces the shader. nil removes it; shaders from other
// backends are ignored and also remove it.
func (p *Paint) SetShader(shader RenderShader) {
	if shader == nil {
		p.shader = nil
		return
	}
	s, ok := shader.(*Shader)
	if !ok {
		Logger().Warn("vgbridge: SetShader with foreign shader ignored", "type", typeName(shader))
		p.shader = nil
		return
	}
	p.shader = s
}

// Style returns the paint style.
func (p *Paint) Style() PaintStyle { return p.style }

// Color returns the flat color.
func (p *Paint) Color() ColorInt { return p.color }

// Thickness returns the stroke width.
func (p *Paint) Thickness() float32 { return p.thickness }

// Join returns the stroke join.
func (p *Paint) Join() StrokeJoin { return p.join }

// Cap returns the stroke cap.
func (p *Paint) Cap() StrokeCap { return p.cap }

// BlendMode returns the recorded blend mode.
func (p *Paint) BlendMode() BlendMode { return p.blend }

// Shader returns the shader, or nil.
func (p *Paint) Shader() *Shader { return p.shader }
