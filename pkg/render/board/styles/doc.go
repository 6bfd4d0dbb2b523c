// Package styles draws individual keys for the board sinks.
//
// A [Style] writes SVG fragments into a buffer; styles that also implement
// [Painter] can draw the same look onto a raster canvas for PNG export.
// Two styles ship with the module:
//
//   - [Simple]: flat rounded keys with a 1px black outline
//   - [Keycap]: darker skirt with a lightened top face (CIE Lab blending)
//
// The label color is decided upstream by the contrast rule; styles only
// place it.
package styles
