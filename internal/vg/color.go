package vg

import "math"

// Color is a straight-alpha color with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Transparent is the zero color.
var Transparent = Color{}

// RGBA returns a Color from 8-bit straight channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// Bytes returns the 8-bit straight channels of c, rounded to nearest.
func (c Color) Bytes() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

// premultiply returns c as a premultiplied pixel.
func (c Color) premultiply() pixel {
	a := clamp01(c.A)
	return pixel{
		r: clamp01(c.R) * a,
		g: clamp01(c.G) * a,
		b: clamp01(c.B) * a,
		a: a,
	}
}

// pixel is a premultiplied color with channels in [0, 1].
type pixel struct {
	r, g, b, a float64
}

func (p pixel) scale(k float64) pixel {
	return pixel{r: p.r * k, g: p.g * k, b: p.b * k, a: p.a * k}
}

// packPixel converts a premultiplied pixel to an ARGB32 word.
func packPixel(p pixel) uint32 {
	return uint32(to8(p.a))<<24 | uint32(to8(p.r))<<16 | uint32(to8(p.g))<<8 | uint32(to8(p.b))
}

// unpackPixel reads an ARGB32 word. Straight words are premultiplied on the way.
func unpackPixel(w uint32, premultiplied bool) pixel {
	p := pixel{
		a: float64(w>>24) / 255,
		r: float64(w>>16&0xff) / 255,
		g: float64(w>>8&0xff) / 255,
		b: float64(w&0xff) / 255,
	}
	if !premultiplied {
		p.r *= p.a
		p.g *= p.a
		p.b *= p.a
	}
	return p
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
