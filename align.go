package vgbridge

import (
	"fmt"
	"strings"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	MinX, MinY, MaxX, MaxY float32
}

// Width returns the horizontal extent.
func (b AABB) Width() float32 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b AABB) Height() float32 { return b.MaxY - b.MinY }

// Fit selects how content is scaled into a frame.
type Fit uint8

const (
	FitFill Fit = iota
	FitContain
	FitCover
	FitWidth
	FitHeight
	FitNone
	FitScaleDown
)

var fitNames = map[string]Fit{
	"fill":      FitFill,
	"contain":   FitContain,
	"cover":     FitCover,
	"fitwidth":  FitWidth,
	"fitheight": FitHeight,
	"none":      FitNone,
	"scaledown": FitScaleDown,
}

// ParseFit parses a fit name such as "cover" or "scaleDown".
func ParseFit(s string) (Fit, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(s))
	if f, ok := fitNames[key]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("vgbridge: unknown fit %q", s)
}

// Alignment positions content within a frame. X and Y range from -1
// (left, top) to 1 (right, bottom).
type Alignment struct {
	X, Y float32
}

// Standard alignments.
var (
	AlignTopLeft      = Alignment{-1, -1}
	AlignTopCenter    = Alignment{0, -1}
	AlignTopRight     = Alignment{1, -1}
	AlignCenterLeft   = Alignment{-1, 0}
	AlignCenter       = Alignment{0, 0}
	AlignCenterRight  = Alignment{1, 0}
	AlignBottomLeft   = Alignment{-1, 1}
	AlignBottomCenter = Alignment{0, 1}
	AlignBottomRight  = Alignment{1, 1}
)

var alignmentNames = map[string]Alignment{
	"topleft":      AlignTopLeft,
	"topcenter":    AlignTopCenter,
	"topright":     AlignTopRight,
	"centerleft":   AlignCenterLeft,
	"center":       AlignCenter,
	"centerright":  AlignCenterRight,
	"bottomleft":   AlignBottomLeft,
	"bottomcenter": AlignBottomCenter,
	"bottomright":  AlignBottomRight,
}

// ParseAlignment parses an alignment name such as "center" or "top-left".
func ParseAlignment(s string) (Alignment, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(s))
	if a, ok := alignmentNames[key]; ok {
		return a, nil
	}
	return Alignment{}, fmt.Errorf("vgbridge: unknown alignment %q", s)
}

// ComputeAlignment returns the transform placing content inside frame.
// Empty content maps with unit scale.
func ComputeAlignment(fit Fit, alignment Alignment, frame, content AABB) Mat2D {
	cw, ch := content.Width(), content.Height()
	fw, fh := frame.Width(), frame.Height()

	x := -content.MinX - cw*0.5 - alignment.X*cw*0.5
	y := -content.MinY - ch*0.5 - alignment.Y*ch*0.5

	sx, sy := float32(1), float32(1)
	if cw > 0 && ch > 0 {
		switch fit {
		case FitFill:
			sx, sy = fw/cw, fh/ch
		case FitContain:
			s := min(fw/cw, fh/ch)
			sx, sy = s, s
		case FitCover:
			s := max(fw/cw, fh/ch)
			sx, sy = s, s
		case FitHeight:
			s := fh / ch
			sx, sy = s, s
		case FitWidth:
			s := fw / cw
			sx, sy = s, s
		case FitScaleDown:
			s := min(fw/cw, fh/ch, 1)
			sx, sy = s, s
		}
	}

	translation := TranslateMat2D(
		frame.MinX+fw*0.5+alignment.X*fw*0.5,
		frame.MinY+fh*0.5+alignment.Y*fh*0.5,
	)
	return translation.Multiply(ScaleMat2D(sx, sy)).Multiply(TranslateMat2D(x, y))
}
