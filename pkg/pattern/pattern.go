package pattern

import (
	"strings"
)

// ID names a pattern variant.
type ID string

// Built-in pattern identifiers.
const (
	Gradient          ID = "gradient"
	HorizontalStripes ID = "horizontal-stripes"
	VerticalStripes   ID = "vertical-stripes"
	Checkerboard      ID = "checkerboard"
	Waves             ID = "waves"
	Diagonal          ID = "diagonal"
	Radial            ID = "radial"
	Spiral            ID = "spiral"
	Diamond           ID = "diamond"
	Mosaic            ID = "mosaic"
	Zigzag            ID = "zigzag"
	Concentric        ID = "concentric"
	Random            ID = "random"

	// Theme variants.
	Splatter ID = "splatter"
	Cracked  ID = "cracked"
	Fog      ID = "fog"
	Scales   ID = "scales"
	Slime    ID = "slime"
	Fur      ID = "fur"
	Blocks   ID = "blocks"
)

// ParseID normalizes user input such as "Horizontal Stripes" or
// "vertical_stripes" into an ID. It does not check that the ID is known;
// the engine resolves unknown IDs to [Random].
func ParseID(s string) ID {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "-", "_", "-").Replace(s)
	return ID(s)
}

// Rand is the random source injected into probabilistic variants.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Params describes the grid a variant fills.
type Params struct {
	Rows, Cols  int
	Colors      int // palette length, always > 0
	StripeWidth int // rows/cols per stripe, always > 0
}

// Func computes one raw palette index per cell, row-major, len Rows*Cols.
// Indices may be negative or exceed the palette; the engine normalizes them
// with [colors.Palette.At]. Deterministic variants ignore rng.
type Func func(p Params, rng Rand) []int

// CellFunc computes the raw index of a single cell.
type CellFunc func(i, j int, p Params, rng Rand) int

// Cellwise lifts a per-cell rule into a Func, visiting cells row by row.
func Cellwise(f CellFunc) Func {
	return func(p Params, rng Rand) []int {
		out := make([]int, p.Rows*p.Cols)
		for i := 0; i < p.Rows; i++ {
			for j := 0; j < p.Cols; j++ {
				out[i*p.Cols+j] = f(i, j, p, rng)
			}
		}
		return out
	}
}
