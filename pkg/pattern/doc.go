// Package pattern turns a palette and a pattern id into a color grid.
//
// Every variant computes one raw integer index per cell. The engine maps
// those indices onto the palette with [colors.Palette.At], which takes the
// absolute value modulo the palette length, so variants never have to clamp
// or bounds-check their output.
//
// # Variants
//
// Geometric variants (gradient, stripes, checkerboard, waves, diagonal,
// radial, spiral, diamond, mosaic, zigzag, concentric) are pure functions of
// the cell position and grid size. Random and the theme variants splatter
// and fur draw from the engine's random source; cracked, fog, scales, slime
// and blocks are deterministic.
//
// Unknown ids resolve to [Random]. [Engine.Resolve] reports which variant
// will run.
//
// # Extending
//
// Variants are registered functions:
//
//	e := pattern.New(pattern.WithSeed(42))
//	e.Register("solid", func(p pattern.Params, _ pattern.Rand) []int {
//	    return make([]int, p.Rows*p.Cols)
//	})
package pattern
