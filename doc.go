// Package vgbridge is a software rendering backend for a vector animation
// engine. It implements the engine's resource factory and renderer
// interfaces on top of a CPU rasterizer.
//
// # Overview
//
// The engine describes drawing in its own vocabulary: verb-based paths,
// fill and stroke paints, gradient shaders, decoded images and transform
// or clip stacks. vgbridge translates each of these into rasterizer
// operations with exact fill-rule, stroke, compositing and channel-order
// semantics.
//
// # Quick Start
//
//	f := vgbridge.NewSoftwareFactory()
//	r := vgbridge.NewSoftwareRenderer(512, 512)
//	defer r.Close()
//
//	path := f.MakeRenderPath(
//		[]vgbridge.Vec2D{{X: 10, Y: 10}, {X: 200, Y: 10}, {X: 100, Y: 200}},
//		[]vgbridge.PathVerb{vgbridge.VerbMove, vgbridge.VerbLine, vgbridge.VerbLine, vgbridge.VerbClose},
//		vgbridge.FillRuleNonZero)
//	paint := f.MakeRenderPaint()
//	paint.SetColor(0xFFFF0000)
//	r.DrawPath(path, paint)
//
//	_ = r.SavePNG("out.png")
//
// # Pixels
//
// Colors are packed straight-alpha words a<<24 | r<<16 | g<<8 | b. The
// renderer's surface holds premultiplied words of the same layout stored
// little-endian; Image and the Save methods convert them to RGBA.
//
// # Limitations
//
// Only source-over compositing is implemented; other blend modes draw as
// source-over. Image meshes are not supported and DrawImageMesh reports
// ErrMeshUnsupported. Rendering is single-threaded.
package vgbridge
