// Package render provides the rendering pipeline for colored keyboards.
//
// # Overview
//
// Rendering happens in three stages, each in its own subpackage:
//
//   - [board/layout]: positions every key of a keyboard layout and colors
//     it from a pattern grid (geometry, contrast, recolor, hit testing)
//   - [board/styles]: visual styles that draw a single key (simple, keycap)
//   - [board/sink]: output formats (SVG, PNG, JSON)
//
// A typical render:
//
//	l, err := layout.Build(kb, grid)
//	svg := sink.RenderSVG(l, sink.WithStyle(styles.Keycap{}))
//	png, err := sink.RenderPNG(l, sink.WithScale(2))
//
// Layouts are values. Recoloring a key with [board/layout.Recolor] returns a
// new layout and leaves every other key and grid cell untouched.
//
// [board/layout]: github.com/matzehuels/typetonic/pkg/render/board/layout
// [board/styles]: github.com/matzehuels/typetonic/pkg/render/board/styles
// [board/sink]: github.com/matzehuels/typetonic/pkg/render/board/sink
// [board/layout.Recolor]: github.com/matzehuels/typetonic/pkg/render/board/layout.Recolor
package render
