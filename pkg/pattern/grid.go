package pattern

import (
	"encoding/json"
	"slices"

	"github.com/matzehuels/typetonic/pkg/colors"
	"github.com/matzehuels/typetonic/pkg/errors"
)

// Grid is a rectangular, fully populated rows x cols color assignment.
//
// Grids are values: [Grid.With] returns a new grid and never mutates the
// receiver, so a grid handed to a renderer or an export stays stable while
// the user keeps editing.
type Grid struct {
	rows, cols int
	cells      []colors.Color
}

// NewGrid builds a grid by calling fill for every cell in row-major order.
func NewGrid(rows, cols int, fill func(r, c int) colors.Color) (Grid, error) {
	if err := errors.ValidateDimensions(rows, cols); err != nil {
		return Grid{}, err
	}
	g := Grid{rows: rows, cols: cols, cells: make([]colors.Color, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.cells[r*cols+c] = fill(r, c)
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g Grid) Cols() int { return g.cols }

// IsZero reports whether g is the empty zero value.
func (g Grid) IsZero() bool { return g.rows == 0 || g.cols == 0 }

// InBounds reports whether (r, c) addresses a cell.
func (g Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the color of cell (r, c). It panics when out of bounds.
func (g Grid) At(r, c int) colors.Color {
	if !g.InBounds(r, c) {
		panic("pattern: grid index out of range")
	}
	return g.cells[r*g.cols+c]
}

// With returns a copy of g where only cell (r, c) is set to col.
func (g Grid) With(r, c int, col colors.Color) (Grid, error) {
	if !g.InBounds(r, c) {
		return Grid{}, errors.New(errors.ErrCodeInvalidInput, "cell (%d, %d) outside %dx%d grid", r, c, g.rows, g.cols)
	}
	out := Grid{rows: g.rows, cols: g.cols, cells: slices.Clone(g.cells)}
	out.cells[r*g.cols+c] = col
	return out, nil
}

// Equal reports whether both grids have the same shape and colors.
func (g Grid) Equal(o Grid) bool {
	return g.rows == o.rows && g.cols == o.cols && slices.Equal(g.cells, o.cells)
}

// Hex returns the grid as rows of "#rrggbb" strings.
func (g Grid) Hex() [][]string {
	out := make([][]string, g.rows)
	for r := range out {
		out[r] = make([]string, g.cols)
		for c := range out[r] {
			out[r][c] = g.cells[r*g.cols+c].Hex()
		}
	}
	return out
}

// MarshalJSON encodes the grid as nested hex strings.
func (g Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Hex())
}

// UnmarshalJSON decodes nested hex strings. Rows must be equal length.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var rows [][]colors.Color
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return errors.New(errors.ErrCodeInvalidDimensions, "grid has no rows")
	}
	cols := len(rows[0])
	for r, row := range rows {
		if len(row) != cols {
			return errors.New(errors.ErrCodeInvalidDimensions, "grid row %d has %d cells, want %d", r, len(row), cols)
		}
	}
	out, err := NewGrid(len(rows), cols, func(r, c int) colors.Color { return rows[r][c] })
	if err != nil {
		return err
	}
	*g = out
	return nil
}
