package vgbridge

import (
	"fmt"
	"strings"
)

// ColorInt is a packed straight-alpha color a<<24 | r<<16 | g<<8 | b.
type ColorInt uint32

// ColorARGB packs 8-bit channels into a ColorInt.
func ColorARGB(a, r, g, b uint8) ColorInt {
	return ColorInt(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Alpha returns the alpha channel.
func (c ColorInt) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red channel.
func (c ColorInt) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel.
func (c ColorInt) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel.
func (c ColorInt) Blue() uint8 { return uint8(c) }

// String formats c as #AARRGGBB.
func (c ColorInt) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// ParseHexColor parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA".
// The leading '#' is optional. Channels missing alpha are opaque.
func ParseHexColor(hex string) (ColorInt, error) {
	s := strings.TrimPrefix(hex, "#")

	var r, g, b, a uint32
	a = 255

	var ok bool
	switch len(s) {
	case 3:
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b) && parseHex(s[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	case 8:
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b) && parseHex(s[6:8], &a)
	}
	if !ok {
		return 0, fmt.Errorf("vgbridge: invalid hex color %q", hex)
	}

	return ColorARGB(uint8(a), uint8(r), uint8(g), uint8(b)), nil
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}
