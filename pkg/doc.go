// Package pkg provides the core libraries for Typetonic keyboard color design.
//
// # Overview
//
// Typetonic fills the keys of a physical keyboard layout with colors from a
// palette, following a named pattern, and renders the result. The pkg
// directory is organized into three areas:
//
//  1. Domain - [keyboard] layouts, [colors] and palettes, [pattern] generation
//  2. Rendering - [render] geometry, key styles and output sinks
//  3. Lifecycle - [design] sessions that generate, recolor and export
//
// Supporting packages: [errors] (structured error codes), [cache] (export
// memoization), [io] (file export and grid import), [fonts] (label font),
// [observability] (event hooks) and [buildinfo].
//
// # Architecture
//
// The data flow through Typetonic:
//
//	keyboard.Layout + colors.Palette + pattern.ID
//	         ↓
//	    [pattern] engine (color grid, rows × longest row)
//	         ↓
//	    [render] layout (key geometry, label contrast)
//	         ↓
//	    SVG/PNG/JSON output
//
// # Quick Start
//
//	s, _ := design.New()
//	d, err := s.Generate(ctx, design.Request{
//	    Keyboard: keyboard.KeychronK6,
//	    Palette:  colors.Palette{colors.MustParse("#264653"), colors.MustParse("#e9c46a")},
//	    Pattern:  pattern.Diagonal,
//	})
//	d, err = s.Recolor(ctx, 0, 0, colors.White)
//	svg, err := s.Export(ctx, design.FormatSVG)
//
// [keyboard]: github.com/matzehuels/typetonic/pkg/keyboard
// [colors]: github.com/matzehuels/typetonic/pkg/colors
// [pattern]: github.com/matzehuels/typetonic/pkg/pattern
// [render]: github.com/matzehuels/typetonic/pkg/render
// [design]: github.com/matzehuels/typetonic/pkg/design
// [errors]: github.com/matzehuels/typetonic/pkg/errors
// [cache]: github.com/matzehuels/typetonic/pkg/cache
// [io]: github.com/matzehuels/typetonic/pkg/io
// [fonts]: github.com/matzehuels/typetonic/pkg/fonts
// [observability]: github.com/matzehuels/typetonic/pkg/observability
// [buildinfo]: github.com/matzehuels/typetonic/pkg/buildinfo
package pkg
