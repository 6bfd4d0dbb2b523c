// Package colors provides the color and palette types shared by the pattern
// engine and the renderers.
//
// # Colors
//
// A [Color] is a 24-bit RGB value. Colors are parsed from CSS-style hex
// strings ("#rgb" or "#rrggbb", case-insensitive, leading '#' optional) and
// always render back as lowercase "#rrggbb":
//
//	c, err := colors.Parse("#FF8800")
//	c.Hex() // "#ff8800"
//
// # Palettes
//
// A [Palette] is an ordered list of colors. Order matters: pattern variants
// compute an integer index per key and [Palette.At] maps any integer, signed
// or out of range, onto a valid slot with palette[|i| mod n].
//
// # Contrast
//
// [TextColor] picks black or white label text for a fill color using the
// luminance rule L = 0.2126R + 0.7152G + 0.0722B (white below 128).
package colors

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/typetonic/pkg/errors"
)

// Color is an opaque 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = Color{0x00, 0x00, 0x00}
	White = Color{0xff, 0xff, 0xff}
)

// Parse reads a hex color string. It accepts "#rgb" and "#rrggbb" with or
// without the leading '#'.
func Parse(s string) (Color, error) {
	hex := strings.TrimSpace(s)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 4 && len(hex) != 7 {
		return Color{}, errors.New(errors.ErrCodeInvalidColor, "invalid color %q: want #rgb or #rrggbb", s)
	}
	c, err := colorful.Hex(strings.ToLower(hex))
	if err != nil {
		return Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid color %q", s)
	}
	return FromColorful(c), nil
}

// MustParse is like Parse but panics on error. Intended for literals.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromColorful converts a go-colorful color, clamping out-of-gamut values.
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// Colorful returns c as a go-colorful color for color-space math.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex returns the lowercase "#rrggbb" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string { return c.Hex() }

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// MarshalText encodes the color as "#rrggbb" for JSON and TOML.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText decodes a hex color string.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Lighten blends c towards white by amount (0..1) in Lab space.
func Lighten(c Color, amount float64) Color {
	amount = max(0, min(amount, 1))
	return FromColorful(c.Colorful().BlendLab(White.Colorful(), amount))
}

// Darken blends c towards black by amount (0..1) in Lab space.
func Darken(c Color, amount float64) Color {
	amount = max(0, min(amount, 1))
	return FromColorful(c.Colorful().BlendLab(Black.Colorful(), amount))
}
