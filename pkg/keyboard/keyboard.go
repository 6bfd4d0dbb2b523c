// Package keyboard defines physical keyboard layouts and the static catalog
// of supported models.
//
// A [Layout] is an ordered list of rows; each row is an ordered list of
// [KeySpec] values whose widths are expressed in key units (a standard
// alphanumeric key is 1u). Rows need not sum to the same width: physical
// stagger is preserved as-is. A KeySpec with an empty label is a filler: it
// occupies space to keep the row aligned but is never colored or clicked.
//
// The color grid for a layout is Rows x Cols where Cols is the length of the
// longest row; key (r, i) reads grid cell (r, i).
package keyboard

import (
	"slices"
	"strings"

	"github.com/matzehuels/typetonic/pkg/errors"
)

// KeySpec is one physical key (or gap) in a row.
type KeySpec struct {
	Width float64 `toml:"width" json:"width"`
	Label string  `toml:"label" json:"label"`
}

// IsFiller reports whether the key is blank space.
func (k KeySpec) IsFiller() bool { return k.Label == "" }

// Layout is a named keyboard model.
type Layout struct {
	Name string      `toml:"name" json:"name"`
	Rows [][]KeySpec `toml:"rows" json:"rows"`
}

// Dims returns the color grid size needed to cover the layout.
func (l *Layout) Dims() (rows, cols int) {
	for _, r := range l.Rows {
		cols = max(cols, len(r))
	}
	return len(l.Rows), cols
}

// RowUnits returns the total width of row r in key units.
func (l *Layout) RowUnits(r int) float64 {
	var sum float64
	for _, k := range l.Rows[r] {
		sum += k.Width
	}
	return sum
}

// KeyCount returns the number of non-filler keys.
func (l *Layout) KeyCount() int {
	n := 0
	for _, row := range l.Rows {
		for _, k := range row {
			if !k.IsFiller() {
				n++
			}
		}
	}
	return n
}

// Validate checks that the layout has rows and every key has positive width.
func (l *Layout) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return errors.New(errors.ErrCodeInvalidInput, "layout name cannot be empty")
	}
	if len(l.Rows) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "layout %q has no rows", l.Name)
	}
	for r, row := range l.Rows {
		if len(row) == 0 {
			return errors.New(errors.ErrCodeInvalidInput, "layout %q: row %d is empty", l.Name, r)
		}
		for i, k := range row {
			if k.Width <= 0 {
				return errors.New(errors.ErrCodeInvalidInput, "layout %q: key %d in row %d has non-positive width %g", l.Name, i, r, k.Width)
			}
		}
	}
	return nil
}

func (l *Layout) clone() *Layout {
	out := &Layout{Name: l.Name, Rows: make([][]KeySpec, len(l.Rows))}
	for i, r := range l.Rows {
		out.Rows[i] = slices.Clone(r)
	}
	return out
}

// Catalog is a read-only table of layouts keyed by model name.
// Layouts are added at startup only; lookups return copies.
type Catalog struct {
	layouts map[string]*Layout
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{layouts: make(map[string]*Layout)}
}

// DefaultCatalog returns a catalog holding the built-in models.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	for _, l := range builtin() {
		// Built-ins are static and known valid.
		c.layouts[key(l.Name)] = l
	}
	return c
}

// Add registers a layout after validating it, replacing any layout with the
// same name.
func (c *Catalog) Add(l Layout) error {
	if err := l.Validate(); err != nil {
		return err
	}
	c.layouts[key(l.Name)] = l.clone()
	return nil
}

// Lookup returns a copy of the named layout. Names match case-insensitively.
func (c *Catalog) Lookup(name string) (*Layout, error) {
	l, ok := c.layouts[key(name)]
	if !ok {
		return nil, errors.New(errors.ErrCodeLayoutNotFound, "unknown keyboard %q (available: %s)", name, strings.Join(c.Names(), ", "))
	}
	return l.clone(), nil
}

// Names returns the catalog's model names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.layouts))
	for _, l := range c.layouts {
		names = append(names, l.Name)
	}
	slices.Sort(names)
	return names
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
