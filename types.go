package vgbridge

// PathVerb is a path command. Values match the engine's encoding.
type PathVerb uint8

const (
	// VerbMove starts a contour. It consumes one point.
	VerbMove PathVerb = 0
	// VerbLine adds a line. It consumes one point.
	VerbLine PathVerb = 1
	// VerbQuad adds a quadratic curve. It consumes two points.
	VerbQuad PathVerb = 2
	// VerbCubic adds a cubic curve. It consumes three points.
	VerbCubic PathVerb = 4
	// VerbClose closes the contour. It consumes no points.
	VerbClose PathVerb = 5
)

// pointCount returns how many points a verb consumes in bulk path data.
// Unknown verbs consume none.
func (v PathVerb) pointCount() int {
	switch v {
	case VerbMove, VerbLine:
		return 1
	case VerbQuad:
		return 2
	case VerbCubic:
		return 3
	default:
		return 0
	}
}

// String returns the verb name.
func (v PathVerb) String() string {
	switch v {
	case VerbMove:
		return "move"
	case VerbLine:
		return "line"
	case VerbQuad:
		return "quad"
	case VerbCubic:
		return "cubic"
	case VerbClose:
		return "close"
	default:
		return "unknown"
	}
}

// FillRule decides which regions of a path are inside.
type FillRule uint8

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

// StrokeCap is the shape of open stroke ends.
type StrokeCap uint8

const (
	StrokeCapButt StrokeCap = iota
	StrokeCapRound
	StrokeCapSquare
)

// StrokeJoin is the shape of stroke corners.
type StrokeJoin uint8

const (
	StrokeJoinMiter StrokeJoin = iota
	StrokeJoinRound
	StrokeJoinBevel
)

// PaintStyle selects between filling and stroking.
type PaintStyle uint8

const (
	PaintStyleStroke PaintStyle = iota
	PaintStyleFill
)

// BlendMode is the engine's blend mode. Only BlendSrcOver is rendered
// exactly; every other mode is drawn as source-over.
type BlendMode uint8

const (
	BlendSrcOver    BlendMode = 3
	BlendScreen     BlendMode = 14
	BlendOverlay    BlendMode = 15
	BlendDarken     BlendMode = 16
	BlendLighten    BlendMode = 17
	BlendColorDodge BlendMode = 18
	BlendColorBurn  BlendMode = 19
	BlendHardLight  BlendMode = 20
	BlendSoftLight  BlendMode = 21
	BlendDifference BlendMode = 22
	BlendExclusion  BlendMode = 23
	BlendMultiply   BlendMode = 24
	BlendHue        BlendMode = 25
	BlendSaturation BlendMode = 26
	BlendColor      BlendMode = 27
	BlendLuminosity BlendMode = 28
)

// BufferKind is the element type of a RenderBuffer.
type BufferKind uint8

const (
	BufferUint16 BufferKind = iota
	BufferUint32
	BufferFloat32
)

// ShaderKind distinguishes shader geometries.
type ShaderKind uint8

const (
	ShaderLinearGradient ShaderKind = iota
	ShaderRadialGradient
)

// RenderBuffer is an immutable typed data buffer.
type RenderBuffer interface {
	Kind() BufferKind
	Count() int
}

// RenderShader is an immutable paint source shared between paints.
type RenderShader interface {
	ShaderKind() ShaderKind
}

// RenderPath is mutable path geometry with a fill rule.
type RenderPath interface {
	Reset()
	AddRenderPath(path RenderPath, transform Mat2D)
	SetFillRule(rule FillRule)
	MoveTo(x, y float32)
	LineTo(x, y float32)
	QuadTo(ox, oy, x, y float32)
	CubicTo(ox, oy, ix, iy, x, y float32)
	Close()
}

// RenderPaint describes how geometry is filled or stroked.
type RenderPaint interface {
	SetStyle(style PaintStyle)
	SetColor(color ColorInt)
	SetThickness(thickness float32)
	SetJoin(join StrokeJoin)
	SetCap(cap StrokeCap)
	SetBlendMode(mode BlendMode)
	SetShader(shader RenderShader)
}

// RenderImage is a decoded raster image ready to draw.
type RenderImage interface {
	Width() int
	Height() int
	Close()
}

// Renderer draws engine resources onto a target.
type Renderer interface {
	Save()
	Restore()
	Transform(m Mat2D)
	ClipPath(path RenderPath)
	DrawPath(path RenderPath, paint RenderPaint)
	DrawImage(img RenderImage, mode BlendMode, opacity float32)
	DrawImageMesh(img RenderImage, vertices, uvs, indices RenderBuffer, mode BlendMode, opacity float32) error
}

// Factory creates backend resources for the engine.
type Factory interface {
	MakeBufferU16(data []uint16) RenderBuffer
	MakeBufferU32(data []uint32) RenderBuffer
	MakeBufferF32(data []float32) RenderBuffer
	MakeLinearGradient(sx, sy, ex, ey float32, colors []ColorInt, stops []float32) RenderShader
	MakeRadialGradient(cx, cy, radius float32, colors []ColorInt, stops []float32) RenderShader
	MakeRenderPath(points []Vec2D, verbs []PathVerb, rule FillRule) RenderPath
	MakeEmptyRenderPath() RenderPath
	MakeRenderPaint() RenderPaint
	DecodeImage(data []byte) (RenderImage, error)
}
