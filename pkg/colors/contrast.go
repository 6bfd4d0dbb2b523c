package colors

// luminanceThreshold splits dark fills (white text) from light fills (black text).
const luminanceThreshold = 128

// Luminance returns the perceptual luminance of c on a 0-255 scale:
// 0.2126R + 0.7152G + 0.0722B over the raw sRGB channels.
func Luminance(c Color) float64 {
	return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
}

// TextColor returns the label color that stays legible on fill.
func TextColor(fill Color) Color {
	if Luminance(fill) < luminanceThreshold {
		return White
	}
	return Black
}
