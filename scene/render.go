package scene

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/vgbridge"
)

// resources holds the backend objects built for one Render call.
type resources struct {
	images  map[string]vgbridge.RenderImage
	shaders map[string]vgbridge.RenderShader
	paths   map[string]vgbridge.RenderPath
}

func (res *resources) close() {
	for _, img := range res.images {
		img.Close()
	}
}

// Render builds the scene's resources with f and replays the draw list on
// r in scene coordinates. Images are released before Render returns.
func (s *Scene) Render(f vgbridge.Factory, r vgbridge.Renderer) error {
	res, err := s.build(f)
	if err != nil {
		return err
	}
	defer res.close()

	if s.Background != "" {
		bg, err := vgbridge.ParseHexColor(s.Background)
		if err != nil {
			return fmt.Errorf("scene: background: %w", err)
		}
		rect := f.MakeRenderPath(
			[]vgbridge.Vec2D{{X: 0, Y: 0}, {X: s.Width, Y: 0}, {X: s.Width, Y: s.Height}, {X: 0, Y: s.Height}},
			[]vgbridge.PathVerb{vgbridge.VerbMove, vgbridge.VerbLine, vgbridge.VerbLine, vgbridge.VerbLine, vgbridge.VerbClose},
			vgbridge.FillRuleNonZero,
		)
		paint := f.MakeRenderPaint()
		paint.SetColor(bg)
		r.DrawPath(rect, paint)
	}

	for i, op := range s.Draw {
		if err := s.apply(f, r, res, op); err != nil {
			return fmt.Errorf("scene: draw[%d] (%s): %w", i, op.Op, err)
		}
	}
	return nil
}

func (s *Scene) build(f vgbridge.Factory) (*resources, error) {
	res := &resources{
		images:  make(map[string]vgbridge.RenderImage, len(s.Images)),
		shaders: make(map[string]vgbridge.RenderShader, len(s.Shaders)),
		paths:   make(map[string]vgbridge.RenderPath, len(s.Paths)),
	}

	for name, p := range s.Paths {
		points, verbs, err := ParsePathData(p.D)
		if err != nil {
			return nil, fmt.Errorf("scene: path %q: %w", name, err)
		}
		rule, err := parseFillRule(p.FillRule)
		if err != nil {
			return nil, fmt.Errorf("scene: path %q: %w", name, err)
		}
		res.paths[name] = f.MakeRenderPath(points, verbs, rule)
	}

	for name, sh := range s.Shaders {
		colors := make([]vgbridge.ColorInt, len(sh.Stops))
		stops := make([]float32, len(sh.Stops))
		for i, st := range sh.Stops {
			c, err := vgbridge.ParseHexColor(st.Color)
			if err != nil {
				return nil, fmt.Errorf("scene: shader %q: %w", name, err)
			}
			colors[i], stops[i] = c, st.Offset
		}
		switch sh.Type {
		case "radial":
			res.shaders[name] = f.MakeRadialGradient(sh.Center[0], sh.Center[1], sh.Radius, colors, stops)
		default:
			res.shaders[name] = f.MakeLinearGradient(sh.Start[0], sh.Start[1], sh.End[0], sh.End[1], colors, stops)
		}
	}

	for name, file := range s.Images {
		if !filepath.IsAbs(file) {
			file = filepath.Join(s.dir, file)
		}
		data, err := os.ReadFile(filepath.Clean(file))
		if err != nil {
			res.close()
			return nil, fmt.Errorf("scene: image %q: %w", name, err)
		}
		img, err := f.DecodeImage(data)
		if err != nil {
			res.close()
			return nil, fmt.Errorf("scene: image %q: %w", name, err)
		}
		res.images[name] = img
	}
	return res, nil
}

func (s *Scene) apply(f vgbridge.Factory, r vgbridge.Renderer, res *resources, op Op) error {
	switch op.Op {
	case "save":
		r.Save()
	case "restore":
		r.Restore()
	case "transform":
		m, err := op.transform()
		if err != nil {
			return err
		}
		r.Transform(m)
	case "clip":
		r.ClipPath(res.paths[op.Path])
	case "fill", "stroke":
		ps, err := op.paint()
		if err != nil {
			return err
		}
		paint := f.MakeRenderPaint()
		paint.SetStyle(ps.style)
		paint.SetColor(ps.color)
		paint.SetBlendMode(ps.blend)
		paint.SetThickness(ps.thickness)
		paint.SetCap(ps.cap)
		paint.SetJoin(ps.join)
		if op.Shader != "" {
			paint.SetShader(res.shaders[op.Shader])
		}
		r.DrawPath(res.paths[op.Path], paint)
	case "image":
		blend, err := parseBlend(op.Blend)
		if err != nil {
			return err
		}
		opacity := float32(1)
		if op.Opacity != nil {
			opacity = *op.Opacity
		}
		r.DrawImage(res.images[op.Image], blend, opacity)
	default:
		return fmt.Errorf("unknown op %q", op.Op)
	}
	return nil
}

type paintSpec struct {
	style     vgbridge.PaintStyle
	color     vgbridge.ColorInt
	blend     vgbridge.BlendMode
	thickness float32
	cap       vgbridge.StrokeCap
	join      vgbridge.StrokeJoin
}

// paint resolves an op's paint fields. Missing colors are opaque black and
// missing thickness is 1.
func (op Op) paint() (paintSpec, error) {
	ps := paintSpec{
		style:     vgbridge.PaintStyleFill,
		color:     0xFF000000,
		thickness: 1,
		cap:       vgbridge.StrokeCapRound,
		join:      vgbridge.StrokeJoinRound,
	}
	if op.Op == "stroke" {
		ps.style = vgbridge.PaintStyleStroke
	}
	var err error
	if op.Color != "" {
		if ps.color, err = vgbridge.ParseHexColor(op.Color); err != nil {
			return ps, err
		}
	}
	if op.Thickness != nil {
		ps.thickness = *op.Thickness
	}
	if ps.blend, err = parseBlend(op.Blend); err != nil {
		return ps, err
	}
	if op.Cap != "" {
		if ps.cap, err = parseCap(op.Cap); err != nil {
			return ps, err
		}
	}
	if op.Join != "" {
		if ps.join, err = parseJoin(op.Join); err != nil {
			return ps, err
		}
	}
	return ps, nil
}

// transform composes the op's translate, rotate (degrees), scale and
// matrix fields in that order.
func (op Op) transform() (vgbridge.Mat2D, error) {
	m := vgbridge.IdentityMat2D()
	set := false

	if len(op.Translate) > 0 {
		if len(op.Translate) != 2 {
			return m, fmt.Errorf("translate needs 2 values, got %d", len(op.Translate))
		}
		m = m.Multiply(vgbridge.TranslateMat2D(op.Translate[0], op.Translate[1]))
		set = true
	}
	if op.Rotate != 0 {
		m = m.Multiply(vgbridge.RotateMat2D(float64(op.Rotate) * math.Pi / 180))
		set = true
	}
	switch len(op.Scale) {
	case 0:
	case 1:
		m = m.Multiply(vgbridge.ScaleMat2D(op.Scale[0], op.Scale[0]))
		set = true
	case 2:
		m = m.Multiply(vgbridge.ScaleMat2D(op.Scale[0], op.Scale[1]))
		set = true
	default:
		return m, fmt.Errorf("scale needs 1 or 2 values, got %d", len(op.Scale))
	}
	if len(op.Matrix) > 0 {
		if len(op.Matrix) != 6 {
			return m, fmt.Errorf("matrix needs 6 values, got %d", len(op.Matrix))
		}
		m = m.Multiply(vgbridge.Mat2D(op.Matrix))
		set = true
	}
	if !set {
		return m, fmt.Errorf("transform needs matrix, translate, scale or rotate")
	}
	return m, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
}

func parseFillRule(s string) (vgbridge.FillRule, error) {
	switch normalize(s) {
	case "", "nonzero":
		return vgbridge.FillRuleNonZero, nil
	case "evenodd":
		return vgbridge.FillRuleEvenOdd, nil
	default:
		return 0, fmt.Errorf("unknown fill rule %q", s)
	}
}

func parseCap(s string) (vgbridge.StrokeCap, error) {
	switch normalize(s) {
	case "butt":
		return vgbridge.StrokeCapButt, nil
	case "round":
		return vgbridge.StrokeCapRound, nil
	case "square":
		return vgbridge.StrokeCapSquare, nil
	default:
		return 0, fmt.Errorf("unknown cap %q", s)
	}
}

func parseJoin(s string) (vgbridge.StrokeJoin, error) {
	switch normalize(s) {
	case "miter":
		return vgbridge.StrokeJoinMiter, nil
	case "round":
		return vgbridge.StrokeJoinRound, nil
	case "bevel":
		return vgbridge.StrokeJoinBevel, nil
	default:
		return 0, fmt.Errorf("unknown join %q", s)
	}
}

var blendModes = map[string]vgbridge.BlendMode{
	"srcover":    vgbridge.BlendSrcOver,
	"screen":     vgbridge.BlendScreen,
	"overlay":    vgbridge.BlendOverlay,
	"darken":     vgbridge.BlendDarken,
	"lighten":    vgbridge.BlendLighten,
	"colordodge": vgbridge.BlendColorDodge,
	"colorburn":  vgbridge.BlendColorBurn,
	"hardlight":  vgbridge.BlendHardLight,
	"softlight":  vgbridge.BlendSoftLight,
	"difference": vgbridge.BlendDifference,
	"exclusion":  vgbridge.BlendExclusion,
	"multiply":   vgbridge.BlendMultiply,
	"hue":        vgbridge.BlendHue,
	"saturation": vgbridge.BlendSaturation,
	"color":      vgbridge.BlendColor,
	"luminosity": vgbridge.BlendLuminosity,
}

func parseBlend(s string) (vgbridge.BlendMode, error) {
	if s == "" {
		return vgbridge.BlendSrcOver, nil
	}
	if m, ok := blendModes[normalize(s)]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("unknown blend mode %q", s)
}
