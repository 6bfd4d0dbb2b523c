package colors

import (
	"strings"

	"github.com/matzehuels/typetonic/pkg/errors"
)

// Palette is an ordered sequence of colors. Repeats are allowed.
type Palette []Color

// ParsePalette parses each hex string in order.
func ParsePalette(hexes []string) (Palette, error) {
	p := make(Palette, 0, len(hexes))
	for i, h := range hexes {
		c, err := Parse(h)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPalette, err, "palette entry %d", i)
		}
		p = append(p, c)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// ParsePaletteList parses a comma-separated list such as "#f00,#0f0".
func ParsePaletteList(s string) (Palette, error) {
	var hexes []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			hexes = append(hexes, part)
		}
	}
	return ParsePalette(hexes)
}

// Validate reports an InvalidPalette error for an empty palette.
func (p Palette) Validate() error {
	if len(p) == 0 {
		return errors.New(errors.ErrCodeInvalidPalette, "palette must contain at least one color")
	}
	return nil
}

// Len returns the number of entries.
func (p Palette) Len() int { return len(p) }

// At maps any integer index onto a palette slot: palette[|i| mod n].
// It panics on an empty palette; callers validate first.
func (p Palette) At(i int) Color {
	n := len(p)
	i %= n
	if i < 0 {
		i = -i
	}
	return p[i]
}

// Contains reports whether c is one of the palette entries.
func (p Palette) Contains(c Color) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// Hex returns the palette as hex strings.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}

// Clone returns an independent copy.
func (p Palette) Clone() Palette {
	return append(Palette(nil), p...)
}
