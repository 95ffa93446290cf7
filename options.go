package vgbridge

// RendererOption configures a SoftwareRenderer during creation.
//
// Example:
//
//	// Rows padded to 64 bytes, cleared to white
//	r := vgbridge.NewSoftwareRenderer(800, 600,
//		vgbridge.WithStrideAlignment(64),
//		vgbridge.WithBackground(0xFFFFFFFF))
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for renderer creation.
type rendererOptions struct {
	strideAlign   int
	background    ColorInt
	hasBackground bool
}

// defaultRendererOptions returns the default renderer options.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		strideAlign: 4,
	}
}

// WithStrideAlignment rounds each surface row up to a multiple of align
// bytes. Values below 4 are ignored.
func WithStrideAlignment(align int) RendererOption {
	return func(o *rendererOptions) {
		if align >= 4 {
			o.strideAlign = align
		}
	}
}

// WithBackground clears a new surface to c instead of transparent black.
func WithBackground(c ColorInt) RendererOption {
	return func(o *rendererOptions) {
		o.background = c
		o.hasBackground = true
	}
}

// FactoryOption configures a SoftwareFactory during creation.
type FactoryOption func(*factoryOptions)

type factoryOptions struct {
	maxImageDimension int
}

func defaultFactoryOptions() factoryOptions {
	return factoryOptions{
		maxImageDimension: DefaultMaxImageDimension,
	}
}

// DefaultMaxImageDimension bounds decoded image width and height.
const DefaultMaxImageDimension = 16384

// WithMaxImageSize limits the width and height of decoded images.
// Zero removes the limit.
func WithMaxImageSize(maxDim int) FactoryOption {
	return func(o *factoryOptions) {
		if maxDim >= 0 {
			o.maxImageDimension = maxDim
		}
	}
}
