// Package scene reads a YAML scene description and replays it through a
// vgbridge Factory and Renderer. It stands in for an animation engine when
// producing thumbnails or fixtures.
package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/vgbridge"
)

// ErrInvalidScene is wrapped by every validation error.
var ErrInvalidScene = errors.New("scene: invalid scene")

// Scene is a parsed scene document.
type Scene struct {
	Width      float32               `yaml:"width"`
	Height     float32               `yaml:"height"`
	Background string                `yaml:"background"`
	Images     map[string]string     `yaml:"images"`
	Shaders    map[string]ShaderSpec `yaml:"shaders"`
	Paths      map[string]PathSpec   `yaml:"paths"`
	Draw       []Op                  `yaml:"draw"`

	// dir resolves relative image paths.
	dir string
}

// StopSpec is one gradient stop.
type StopSpec struct {
	Offset float32 `yaml:"offset"`
	Color  string  `yaml:"color"`
}

// ShaderSpec describes a linear or radial gradient.
type ShaderSpec struct {
	Type   string     `yaml:"type"`
	Start  []float32  `yaml:"start"`
	End    []float32  `yaml:"end"`
	Center []float32  `yaml:"center"`
	Radius float32    `yaml:"radius"`
	Stops  []StopSpec `yaml:"stops"`
}

// PathSpec is SVG-style path data with a fill rule.
type PathSpec struct {
	D        string `yaml:"d"`
	FillRule string `yaml:"fill_rule"`
}

// Op is one drawing instruction. Which fields apply depends on Op.
type Op struct {
	Op        string    `yaml:"op"`
	Path      string    `yaml:"path"`
	Image     string    `yaml:"image"`
	Color     string    `yaml:"color"`
	Shader    string    `yaml:"shader"`
	Blend     string    `yaml:"blend"`
	Thickness *float32  `yaml:"thickness"`
	Cap       string    `yaml:"cap"`
	Join      string    `yaml:"join"`
	Opacity   *float32  `yaml:"opacity"`
	Matrix    []float32 `yaml:"matrix"`
	Translate []float32 `yaml:"translate"`
	Scale     []float32 `yaml:"scale"`
	Rotate    float32   `yaml:"rotate"`
}

// Load reads and validates the scene at path. Image paths resolve against
// the scene's directory.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("scene: read: %w", err)
	}
	return Parse(data, filepath.Dir(path))
}

// Parse decodes and validates a scene document.
func Parse(data []byte, dir string) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: parse: %w", err)
	}
	s.dir = dir
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Bounds returns the scene's artboard.
func (s *Scene) Bounds() vgbridge.AABB {
	return vgbridge.AABB{MaxX: s.Width, MaxY: s.Height}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidScene, fmt.Sprintf(format, args...))
}

func (s *Scene) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return invalid("size %vx%v must be positive", s.Width, s.Height)
	}
	if s.Background != "" {
		if _, err := vgbridge.ParseHexColor(s.Background); err != nil {
			return invalid("background: %v", err)
		}
	}
	for name, sh := range s.Shaders {
		if err := sh.validate(); err != nil {
			return invalid("shader %q: %v", name, err)
		}
	}
	for name, p := range s.Paths {
		if _, _, err := ParsePathData(p.D); err != nil {
			return invalid("path %q: %v", name, err)
		}
		if _, err := parseFillRule(p.FillRule); err != nil {
			return invalid("path %q: %v", name, err)
		}
	}

	depth := 0
	for i, op := range s.Draw {
		if err := s.validateOp(op); err != nil {
			return invalid("draw[%d] (%s): %v", i, op.Op, err)
		}
		switch op.Op {
		case "save":
			depth++
		case "restore":
			if depth == 0 {
				return invalid("draw[%d]: restore without save", i)
			}
			depth--
		}
	}
	return nil
}

func (sh ShaderSpec) validate() error {
	switch sh.Type {
	case "linear":
		if len(sh.Start) != 2 || len(sh.End) != 2 {
			return errors.New("linear gradient needs start and end points")
		}
	case "radial":
		if len(sh.Center) != 2 {
			return errors.New("radial gradient needs a center point")
		}
	default:
		return fmt.Errorf("unknown type %q", sh.Type)
	}
	for _, st := range sh.Stops {
		if _, err := vgbridge.ParseHexColor(st.Color); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scene) validateOp(op Op) error {
	switch op.Op {
	case "save", "restore":
		return nil
	case "transform":
		_, err := op.transform()
		return err
	case "clip":
		return s.needPath(op.Path)
	case "fill", "stroke":
		if err := s.needPath(op.Path); err != nil {
			return err
		}
		if op.Shader != "" {
			if _, ok := s.Shaders[op.Shader]; !ok {
				return fmt.Errorf("unknown shader %q", op.Shader)
			}
		}
		_, err := op.paint()
		return err
	case "image":
		if _, ok := s.Images[op.Image]; !ok {
			return fmt.Errorf("unknown image %q", op.Image)
		}
		_, err := parseBlend(op.Blend)
		return err
	default:
		return fmt.Errorf("unknown op %q", op.Op)
	}
}

func (s *Scene) needPath(name string) error {
	if _, ok := s.Paths[name]; !ok {
		return fmt.Errorf("unknown path %q", name)
	}
	return nil
}
