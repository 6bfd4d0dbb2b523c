package colors

import (
	"slices"
	"strings"

	"github.com/matzehuels/typetonic/pkg/errors"
)

// Scheme is a named palette offered to the user.
type Scheme struct {
	Name   string  `toml:"name" json:"name"`
	Colors Palette `toml:"colors" json:"colors"`
}

var builtinSchemes = []Scheme{
	{Name: "Monochrome", Colors: mustPalette("#000000", "#333333", "#666666", "#999999", "#cccccc", "#ffffff")},
	{Name: "Pastel", Colors: mustPalette("#FFB3BA", "#FFDFBA", "#FFFFBA", "#BAFFC9", "#BAE1FF")},
	{Name: "Neon", Colors: mustPalette("#FF00FF", "#00FFFF", "#00FF00", "#FFFF00", "#FF0000")},
	{Name: "Earth Tones", Colors: mustPalette("#8B4513", "#A0522D", "#D2691E", "#DEB887", "#F4A460")},
	{Name: "Ocean", Colors: mustPalette("#000080", "#0000FF", "#1E90FF", "#00BFFF", "#87CEEB")},
}

func mustPalette(hexes ...string) Palette {
	p := make(Palette, len(hexes))
	for i, h := range hexes {
		p[i] = MustParse(h)
	}
	return p
}

// Schemes holds the palettes a user can pick by name.
type Schemes struct {
	list []Scheme
}

// DefaultSchemes returns the built-in schemes.
func DefaultSchemes() *Schemes {
	s := &Schemes{}
	for _, b := range builtinSchemes {
		s.list = append(s.list, Scheme{Name: b.Name, Colors: b.Colors.Clone()})
	}
	return s
}

// Add registers a scheme, replacing any existing scheme with the same name
// (case-insensitive).
func (s *Schemes) Add(sc Scheme) error {
	if strings.TrimSpace(sc.Name) == "" {
		return errors.New(errors.ErrCodeInvalidPalette, "palette name cannot be empty")
	}
	if err := sc.Colors.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPalette, err, "palette %q", sc.Name)
	}
	sc.Colors = sc.Colors.Clone()
	if i := s.index(sc.Name); i >= 0 {
		s.list[i] = sc
		return nil
	}
	s.list = append(s.list, sc)
	return nil
}

// Lookup finds a scheme by name (case-insensitive).
func (s *Schemes) Lookup(name string) (Scheme, error) {
	if i := s.index(name); i >= 0 {
		sc := s.list[i]
		sc.Colors = sc.Colors.Clone()
		return sc, nil
	}
	return Scheme{}, errors.New(errors.ErrCodePaletteNotFound, "unknown palette %q (available: %s)", name, strings.Join(s.Names(), ", "))
}

// Names returns scheme names in registration order.
func (s *Schemes) Names() []string {
	names := make([]string, len(s.list))
	for i, sc := range s.list {
		names[i] = sc.Name
	}
	return names
}

// All returns a copy of every scheme.
func (s *Schemes) All() []Scheme {
	return slices.Clone(s.list)
}

// Swatches returns the de-duplicated colors of every scheme in order,
// which is what the recolor picker offers.
func (s *Schemes) Swatches() Palette {
	var out Palette
	for _, sc := range s.list {
		for _, c := range sc.Colors {
			if !out.Contains(c) {
				out = append(out, c)
			}
		}
	}
	return out
}

func (s *Schemes) index(name string) int {
	for i, sc := range s.list {
		if strings.EqualFold(sc.Name, name) {
			return i
		}
	}
	return -1
}
