package vgbridge

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode is returned when image bytes cannot be decoded.
	ErrDecode = errors.New("vgbridge: image decode failed")

	// ErrNoSurface is returned by export calls on a renderer without a
	// drawing surface.
	ErrNoSurface = errors.New("vgbridge: renderer has no surface")

	// ErrMeshUnsupported is returned by DrawImageMesh.
	ErrMeshUnsupported = fmt.Errorf("vgbridge: image mesh drawing: %w", errors.ErrUnsupported)
)
