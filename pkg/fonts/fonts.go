// Package fonts provides the label font for keyboard rendering.
//
// The font is Go Bold from golang.org/x/image, compiled into the binary, so
// raster export needs no system fonts and an SVG can embed the same face
// the PNG was drawn with.
package fonts

import (
	"encoding/base64"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

// FontFamily is the CSS font-family name used for the embedded face.
const FontFamily = "Go Bold"

// FallbackFontFamily is the font-family list written into SVG labels.
const FallbackFontFamily = `'Go Bold', Arial, sans-serif`

// BoldTTF returns the TTF font data.
func BoldTTF() []byte {
	return gobold.TTF
}

var (
	parsed    *truetype.Font
	parseErr  error
	parseOnce sync.Once

	ttfBase64     string
	ttfBase64Once sync.Once
)

// Bold returns the parsed font. It is parsed once on first access.
func Bold() (*truetype.Font, error) {
	parseOnce.Do(func() {
		parsed, parseErr = truetype.Parse(gobold.TTF)
	})
	return parsed, parseErr
}

// Face returns a font face for drawing at the given point size.
func Face(size float64) (font.Face, error) {
	f, err := Bold()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, Hinting: font.HintingFull}), nil
}

// BoldTTFBase64 returns the TTF data as a base64 string for @font-face
// embedding. The result is cached after first computation.
func BoldTTFBase64() string {
	ttfBase64Once.Do(func() {
		ttfBase64 = base64.StdEncoding.EncodeToString(gobold.TTF)
	})
	return ttfBase64
}
