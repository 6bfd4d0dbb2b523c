// Package design manages the lifecycle of a keyboard design: generate,
// recolor, export.
//
// A [Session] holds at most one current [Design] and allows one generation
// in flight at a time. Generation runs the pure pattern engine and layout
// builder on a background goroutine and then waits out an optional minimum
// latency, which lets front ends show a progress indicator consistently.
// While a generation is running, further requests are refused with
// GENERATION_BUSY rather than queued. The in-flight flag is cleared on every
// exit path, including a panic inside a pattern, which surfaces as a
// retryable GENERATION_FAILURE.
//
//	s, _ := design.New(design.WithMinLatency(time.Second))
//	d, err := s.Generate(ctx, design.Request{
//	    Keyboard: keyboard.KeychronK8,
//	    Palette:  palette,
//	    Pattern:  pattern.Spiral,
//	})
//	d, err = s.Recolor(ctx, 2, 3, colors.MustParse("#ff8800"))
//	png, err := s.Export(ctx, design.FormatPNG)
//
// Designs are values and grids are copy-on-write, so an export renders a
// consistent snapshot even while edits continue.
package design
