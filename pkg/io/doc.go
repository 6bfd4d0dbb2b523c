// Package io moves rendered artifacts and color grids across the process
// boundary.
//
// # Export
//
// [ExportFile] writes an artifact (SVG, PNG or JSON bytes) to a path. The
// data goes to a temporary file in the target directory first and is renamed
// into place, so an interrupted export never leaves a truncated image
// behind. Every failure is an EXPORT_FAILURE error and the caller's design
// is not affected.
//
//	data, err := session.Export(ctx, "png")
//	err = io.ExportFile("keyboard_design.png", data)
//
// # Import
//
// [ReadGrid] and [ImportGrid] read a color grid from JSON. Two shapes are
// accepted: a bare array of rows of hex strings, or any object with a
// "grid" field, which is what the JSON sink writes. A grid exported with a
// design can therefore be fed back in and rendered onto another keyboard.
//
//	[["#ff0000", "#00ff00"], ["#00ff00", "#ff0000"]]
package io
