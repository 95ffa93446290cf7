package image

// Format represents a pixel storage format. Every format uses four bytes
// per pixel.
type Format uint8

const (
	// FormatRGBA8 stores straight-alpha bytes R, G, B, A.
	FormatRGBA8 Format = iota

	// FormatRGBAPremul stores premultiplied bytes R, G, B, A.
	FormatRGBAPremul

	// FormatARGB32 stores straight-alpha a<<24|r<<16|g<<8|b words
	// little-endian, so the bytes are B, G, R, A.
	FormatARGB32

	// FormatARGB32Premul is FormatARGB32 with premultiplied alpha.
	FormatARGB32Premul

	formatCount
)

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	if !f.IsValid() {
		return 0
	}
	return 4
}

// IsPremultiplied returns true if alpha is premultiplied.
func (f Format) IsPremultiplied() bool {
	return f == FormatRGBAPremul || f == FormatARGB32Premul
}

// IsWord reports whether pixels are little-endian ARGB words.
func (f Format) IsWord() bool {
	return f == FormatARGB32 || f == FormatARGB32Premul
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatRGBA8:
		return "RGBA8"
	case FormatRGBAPremul:
		return "RGBAPremul"
	case FormatARGB32:
		return "ARGB32"
	case FormatARGB32Premul:
		return "ARGB32Premul"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}
