package vg

import "math"

// Texture samples a surface placed at the user-space origin, one pixel per
// unit. Sampling is nearest-neighbour and transparent outside the surface.
type Texture struct {
	surface *Surface
}

// NewTexture returns a texture over s. The texture does not own s.
func NewTexture(s *Surface) *Texture {
	return &Texture{surface: s}
}

// Surface returns the sampled surface, or nil after Destroy.
func (t *Texture) Surface() *Surface { return t.surface }

// Destroy detaches the texture from its surface.
func (t *Texture) Destroy() { t.surface = nil }

func (t *Texture) at(x, y float64) pixel {
	if t.surface == nil {
		return pixel{}
	}
	return t.surface.sample(int(math.Floor(x)), int(math.Floor(y)))
}
