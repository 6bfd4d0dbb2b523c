// Package layout computes key geometry for a colored keyboard.
//
// Each row is walked left to right accumulating an offset in key units. For
// unit size u and spacing s a key of width w at offset o gets
//
//	x = o·(u+s)    y = row·(u+s)
//	w = w·u + (w−1)·s    h = u
//
// so adjacent keys are always exactly s apart regardless of their widths.
//
// The result is a value: [Recolor] returns a new [Layout] that shares
// nothing mutable with its input, which lets an export keep rendering a
// snapshot while the user keeps editing.
package layout
