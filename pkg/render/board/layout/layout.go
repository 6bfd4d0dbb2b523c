package layout

import (
	"slices"

	"github.com/matzehuels/typetonic/pkg/colors"
	"github.com/matzehuels/typetonic/pkg/errors"
	"github.com/matzehuels/typetonic/pkg/keyboard"
	"github.com/matzehuels/typetonic/pkg/pattern"
)

// Default geometry, in pixels.
const (
	DefaultUnit    = 54.0
	DefaultSpacing = 4.0
	DefaultRadius  = 5.0
)

// FillerColor is the fill of blank keys.
var FillerColor = colors.MustParse("#2a2a2a")

// Layout is the computed geometry of a colored keyboard.
//
// Key coordinates are relative to the padded origin: a key at X=0 is drawn
// Padding pixels from the left canvas edge. Width and Height cover the
// whole canvas including padding.
type Layout struct {
	Keyboard string
	Width    float64
	Height   float64
	Padding  float64
	Unit     float64
	Spacing  float64
	Radius   float64
	Keys     []Key
	Grid     pattern.Grid
}

// Option configures [Build].
type Option func(*options)

type options struct {
	unit, spacing, radius float64
	padding               float64
	paddingSet            bool
}

// WithUnit sets the pixel size of a 1u key.
func WithUnit(u float64) Option { return func(o *options) { o.unit = u } }

// WithSpacing sets the gap between keys.
func WithSpacing(s float64) Option { return func(o *options) { o.spacing = s } }

// WithRadius sets the key corner radius.
func WithRadius(r float64) Option { return func(o *options) { o.radius = r } }

// WithPadding sets the canvas margin. It defaults to the key spacing.
func WithPadding(p float64) Option {
	return func(o *options) { o.padding, o.paddingSet = p, true }
}

// Build positions every key of kb and colors it from grid.
//
// Key (r, i) takes grid cell (r, i). Filler keys occupy space but use
// [FillerColor] and are excluded from [HitTest] and [Recolor].
func Build(kb *keyboard.Layout, grid pattern.Grid, opts ...Option) (Layout, error) {
	if kb == nil {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput, "keyboard layout is required")
	}
	o := options{unit: DefaultUnit, spacing: DefaultSpacing, radius: DefaultRadius}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.paddingSet {
		o.padding = o.spacing
	}
	if o.unit <= 0 || o.spacing < 0 || o.radius < 0 || o.padding < 0 {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput, "invalid geometry: unit %g spacing %g radius %g padding %g",
			o.unit, o.spacing, o.radius, o.padding)
	}
	if err := kb.Validate(); err != nil {
		return Layout{}, err
	}
	rows, cols := kb.Dims()
	if grid.Rows() < rows || grid.Cols() < cols {
		return Layout{}, errors.New(errors.ErrCodeInvalidDimensions,
			"grid %dx%d does not cover %s (%dx%d)", grid.Rows(), grid.Cols(), kb.Name, rows, cols)
	}

	step := o.unit + o.spacing
	l := Layout{
		Keyboard: kb.Name,
		Padding:  o.padding,
		Unit:     o.unit,
		Spacing:  o.spacing,
		Radius:   o.radius,
		Keys:     make([]Key, 0, rows*cols),
		Grid:     grid,
	}

	var maxExtent float64
	for r, row := range kb.Rows {
		var offset float64
		for i, spec := range row {
			k := Key{
				Row:    r,
				Col:    i,
				Label:  spec.Label,
				Units:  spec.Width,
				X:      offset * step,
				Y:      float64(r) * step,
				W:      spec.Width*o.unit + (spec.Width-1)*o.spacing,
				H:      o.unit,
				Filler: spec.IsFiller(),
			}
			k.paint(grid.At(r, i))
			l.Keys = append(l.Keys, k)
			offset += spec.Width
		}
		maxExtent = max(maxExtent, offset*step-o.spacing)
	}

	l.Width = maxExtent + 2*o.padding
	l.Height = float64(rows)*step - o.spacing + 2*o.padding
	return l, nil
}

// Recolor returns a copy of l where only the key at grid position (row, col)
// is filled with c. The grid cell is updated and the label color is
// recomputed for that key alone.
func Recolor(l Layout, row, col int, c colors.Color) (Layout, error) {
	idx := l.index(row, col)
	if idx < 0 {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput, "no key at (%d, %d)", row, col)
	}
	if l.Keys[idx].Filler {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput, "key (%d, %d) is a filler", row, col)
	}
	grid, err := l.Grid.With(row, col, c)
	if err != nil {
		return Layout{}, err
	}
	out := l
	out.Keys = slices.Clone(l.Keys)
	out.Keys[idx].paint(c)
	out.Grid = grid
	return out, nil
}

// HitTest returns the non-filler key under canvas point (x, y).
func HitTest(l Layout, x, y float64) (Key, bool) {
	x -= l.Padding
	y -= l.Padding
	for _, k := range l.Keys {
		if !k.Filler && k.Contains(x, y) {
			return k, true
		}
	}
	return Key{}, false
}

// KeyAt returns the key at grid position (row, col).
func (l Layout) KeyAt(row, col int) (Key, bool) {
	idx := l.index(row, col)
	if idx < 0 {
		return Key{}, false
	}
	return l.Keys[idx], true
}

// Targets returns the keys that can be recolored, in row-major order.
func (l Layout) Targets() []Key {
	out := make([]Key, 0, len(l.Keys))
	for _, k := range l.Keys {
		if !k.Filler {
			out = append(out, k)
		}
	}
	return out
}

func (l Layout) index(row, col int) int {
	for i, k := range l.Keys {
		if k.Row == row && k.Col == col {
			return i
		}
	}
	return -1
}
