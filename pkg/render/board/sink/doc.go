// Package sink provides output format renderers for keyboard boards.
//
// # Overview
//
// A "sink" transforms a computed [layout.Layout] into a final output format.
// This package provides renderers for:
//
//   - SVG: Scalable vector graphics with click-to-recolor hooks
//   - PNG: Raster image, drawn in-process with fogleman/gg
//   - JSON: Geometry and colors for external tools
//
// # SVG Output
//
// [RenderSVG] draws a rounded dark background and one group per key. Every
// group carries data-row and data-col attributes; clicking a non-filler key
// dispatches a bubbling "keyclick" CustomEvent whose detail holds the grid
// coordinates and pointer position, which is what an embedding page needs
// to open a color picker:
//
//	svg := sink.RenderSVG(l, sink.WithStyle(styles.Keycap{}))
//
// # PNG Output
//
// [RenderPNG] paints the same geometry onto a gg canvas at [DefaultScale].
// Labels use the Go Bold face from [fonts]. All failures are reported as
// EXPORT_FAILURE errors.
//
//	data, err := sink.RenderPNG(l, sink.WithScale(3))
//
// # JSON Output
//
// [RenderJSON] exports every key rect, fill and label color plus the color
// grid, optionally tagged with the pattern, engine version and seed.
//
// [layout.Layout]: github.com/matzehuels/typetonic/pkg/render/board/layout.Layout
// [fonts]: github.com/matzehuels/typetonic/pkg/fonts
package sink
