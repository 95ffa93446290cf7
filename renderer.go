package vgbridge

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	imageio "github.com/gogpu/vgbridge/internal/image"
	"github.com/gogpu/vgbridge/internal/vg"
)

// RendererState reports whether a renderer has a drawing surface.
type RendererState uint8

const (
	// StateReady renderers draw into their surface.
	StateReady RendererState = iota
	// StateDegraded renderers have no surface: draw calls do nothing,
	// accessors return zero values and exports fail with ErrNoSurface.
	StateDegraded
)

// String returns the state name.
func (s RendererState) String() string {
	if s == StateReady {
		return "ready"
	}
	return "degraded"
}

// SoftwareRenderer is a Renderer drawing into an owned premultiplied
// ARGB32 surface.
//
// The state is decided once at construction: if the surface cannot be
// created the renderer stays degraded for its lifetime. Close also leaves
// it degraded.
//
// SoftwareRenderer is not safe for concurrent use.
type SoftwareRenderer struct {
	surface *vg.Surface
	ctx     *vg.Context
	state   RendererState
}

var _ Renderer = (*SoftwareRenderer)(nil)

// NewSoftwareRenderer creates a renderer with a width×height surface.
// It never fails; check State for a degraded result.
func NewSoftwareRenderer(width, height int, opts ...RendererOption) *SoftwareRenderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}

	stride := alignUp(width*4, o.strideAlign)
	surface, err := vg.NewSurfaceStride(width, height, stride)
	if err != nil {
		Logger().Warn("vgbridge: renderer degraded", "width", width, "height", height, "err", err)
		return &SoftwareRenderer{state: StateDegraded}
	}

	r := &SoftwareRenderer{
		surface: surface,
		ctx:     vg.NewContext(surface),
		state:   StateReady,
	}
	if o.hasBackground {
		surface.Clear(toColor(o.background))
	}
	Logger().Debug("vgbridge: renderer created", "width", width, "height", height, "stride", stride)
	return r
}

func alignUp(n, align int) int {
	if n <= 0 {
		return n
	}
	return (n + align - 1) / align * align
}

// State returns StateReady or StateDegraded.
func (r *SoftwareRenderer) State() RendererState { return r.state }

func (r *SoftwareRenderer) ready() bool { return r.state == StateReady }

// Save pushes the transform and clip.
func (r *SoftwareRenderer) Save() {
	if r.ready() {
		r.ctx.Save()
	}
}

// Restore pops the transform and clip pushed by the matching Save. It does
// nothing when nothing was saved.
func (r *SoftwareRenderer) Restore() {
	if r.ready() {
		r.ctx.Restore()
	}
}

// Transform pre-multiplies m onto the current transform.
func (r *SoftwareRenderer) Transform(m Mat2D) {
	if r.ready() {
		r.ctx.Transform(toMatrix(m))
	}
}

// CurrentTransform returns the current transform, or identity when degraded.
func (r *SoftwareRenderer) CurrentTransform() Mat2D {
	if !r.ready() {
		return IdentityMat2D()
	}
	return fromMatrix(r.ctx.Matrix())
}

// Align pre-multiplies the transform placing content inside frame.
func (r *SoftwareRenderer) Align(fit Fit, alignment Alignment, frame, content AABB) {
	r.Transform(ComputeAlignment(fit, alignment, frame, content))
}

// ClipPath intersects the clip with path, using the path's fill rule.
func (r *SoftwareRenderer) ClipPath(path RenderPath) {
	if !r.ready() || path == nil {
		return
	}
	p, ok := path.(*Path)
	if !ok {
		Logger().Warn("vgbridge: ClipPath with foreign path ignored", "type", typeName(path))
		return
	}
	r.ctx.SetFillRule(toFillRule(p.fillRule))
	r.ctx.AddPath(p.native)
	r.ctx.Clip()
}

// DrawPath fills or strokes path with paint under the current transform
// and clip. The paint's shader, when set, replaces its color. Fills use the
// path's fill rule; strokes always use non-zero winding.
func (r *SoftwareRenderer) DrawPath(path RenderPath, paint RenderPaint) {
	if !r.ready() || path == nil || paint == nil {
		return
	}
	p, ok := path.(*Path)
	if !ok {
		Logger().Warn("vgbridge: DrawPath with foreign path ignored", "type", typeName(path))
		return
	}
	pt, ok := paint.(*Paint)
	if !ok {
		Logger().Warn("vgbridge: DrawPath with foreign paint ignored", "type", typeName(paint))
		return
	}

	if pt.shader != nil {
		r.ctx.SetSourceGradient(pt.shader.gradient)
	} else {
		r.ctx.SetSourceColor(toColor(pt.color))
	}
	r.ctx.SetOperator(toOperator(pt.blend))
	r.ctx.AddPath(p.native)

	if pt.style == PaintStyleFill {
		r.ctx.SetFillRule(toFillRule(p.fillRule))
		r.ctx.Fill()
		return
	}
	r.ctx.SetLineWidth(float64(pt.thickness))
	r.ctx.SetLineCap(toLineCap(pt.cap))
	r.ctx.SetLineJoin(toLineJoin(pt.join))
	r.ctx.Stroke()
}

// DrawImage draws img at the origin of the current transform, one unit per
// pixel, with opacity clamped to [0, 1].
func (r *SoftwareRenderer) DrawImage(img RenderImage, mode BlendMode, opacity float32) {
	if !r.ready() || img == nil {
		return
	}
	im, ok := img.(*Image)
	if !ok {
		Logger().Warn("vgbridge: DrawImage with foreign image ignored", "type", typeName(img))
		return
	}
	if im.closed() {
		return
	}

	r.ctx.Save()
	r.ctx.Rect(0, 0, float64(im.width), float64(im.height))
	r.ctx.SetSourceTexture(im.texture)
	r.ctx.SetOpacity(float64(opacity))
	r.ctx.SetOperator(toOperator(mode))
	r.ctx.SetFillRule(vg.FillRuleNonZero)
	r.ctx.Fill()
	r.ctx.Restore()
}

// DrawImageMesh is not supported by the software backend. It draws nothing
// and returns ErrMeshUnsupported.
func (r *SoftwareRenderer) DrawImageMesh(img RenderImage, vertices, uvs, indices RenderBuffer, mode BlendMode, opacity float32) error {
	Logger().Warn("vgbridge: image mesh not supported")
	return ErrMeshUnsupported
}

// Clear replaces every pixel inside the clip with c.
func (r *SoftwareRenderer) Clear(c ColorInt) {
	if !r.ready() {
		return
	}
	r.ctx.Save()
	r.ctx.SetOperator(vg.OperatorSrc)
	r.ctx.SetSourceColor(toColor(c))
	r.ctx.Paint()
	r.ctx.Restore()
}

// Width returns the surface width, or 0 when degraded.
func (r *SoftwareRenderer) Width() int {
	if !r.ready() {
		return 0
	}
	return r.surface.Width()
}

// Height returns the surface height, or 0 when degraded.
func (r *SoftwareRenderer) Height() int {
	if !r.ready() {
		return 0
	}
	return r.surface.Height()
}

// Stride returns the byte distance between rows, or 0 when degraded.
func (r *SoftwareRenderer) Stride() int {
	if !r.ready() {
		return 0
	}
	return r.surface.Stride()
}

// Data returns the raw surface bytes: premultiplied ARGB words stored
// little-endian. It returns nil when degraded.
func (r *SoftwareRenderer) Data() []byte {
	if !r.ready() {
		return nil
	}
	return r.surface.Data()
}

// Pixel returns the premultiplied ARGB word at (x, y).
func (r *SoftwareRenderer) Pixel(x, y int) ColorInt {
	if !r.ready() {
		return 0
	}
	return ColorInt(r.surface.Pixel(x, y))
}

// Image copies the surface into a new premultiplied RGBA image. It returns
// nil when degraded.
func (r *SoftwareRenderer) Image() *image.RGBA {
	if !r.ready() {
		return nil
	}
	w, h := r.surface.Width(), r.surface.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	argbToRGBA(img.Pix, img.Stride, r.surface.Data(), r.surface.Stride(), w, h)
	return img
}

// EncodePNG writes the surface to w as PNG.
func (r *SoftwareRenderer) EncodePNG(w io.Writer) error {
	img := r.Image()
	if img == nil {
		return ErrNoSurface
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("vgbridge: encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes the surface to a PNG file.
func (r *SoftwareRenderer) SavePNG(path string) error {
	if !r.ready() {
		return ErrNoSurface
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("vgbridge: create file: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err := r.EncodePNG(bw); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("vgbridge: write %s: %w", path, err)
	}
	return f.Close()
}

// SaveImage writes the surface to path in the format named by its
// extension: .png, .jpg, .jpeg, .bmp, .tif or .tiff.
func (r *SoftwareRenderer) SaveImage(path string) error {
	img := r.Image()
	if img == nil {
		return ErrNoSurface
	}
	if err := imageio.Save(path, img); err != nil {
		return fmt.Errorf("vgbridge: save %s: %w", path, err)
	}
	return nil
}

// Close releases the surface. The renderer is degraded afterwards.
func (r *SoftwareRenderer) Close() {
	if !r.ready() {
		return
	}
	r.surface.Destroy()
	r.surface, r.ctx = nil, nil
	r.state = StateDegraded
	Logger().Debug("vgbridge: renderer closed")
}
