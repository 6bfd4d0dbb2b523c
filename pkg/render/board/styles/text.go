package styles

import (
	"bytes"
	"encoding/xml"
	"unicode/utf8"
)

const (
	LabelFontSize  = 12.0
	fontSizeMin    = 7.0
	fontWidthRatio = 0.85
	fontCharWidth  = 0.6
)

// FontSize returns the label size for k: the standard size, shrunk when the
// label would not fit the key width.
func FontSize(k Key) float64 {
	n := max(1, utf8.RuneCountInString(k.Label))
	byWidth := (k.W * fontWidthRatio) / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(LabelFontSize, byWidth))
}

func TruncateLabel(k Key) string {
	charWidth := FontSize(k) * fontCharWidth
	maxChars := max(3, int(k.W*fontWidthRatio/charWidth))

	runes := []rune(k.Label)
	if len(runes) <= maxChars {
		return k.Label
	}
	return string(runes[:maxChars-2]) + ".."
}

func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
