package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cell is one terminal character with its colors. Empty colors use the
// terminal default.
type cell struct {
	ch     rune
	fg, bg string
	bold   bool
}

// canvas is a fixed-size character grid the editor draws into. Later draws
// overwrite earlier ones, which is how the picker overlays the board.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: max(w, 0), h: max(h, 0)}
	c.cells = make([][]cell, c.h)
	for y := range c.cells {
		row := make([]cell, c.w)
		for x := range row {
			row[x] = cell{ch: ' '}
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) set(x, y int, cl cell) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = cl
}

// fill paints a w×h rectangle with background bg.
func (c *canvas) fill(x, y, w, h int, bg string) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			c.set(x+dx, y+dy, cell{ch: ' ', bg: bg})
		}
	}
}

// text writes s starting at (x, y), clipped at the canvas edge.
func (c *canvas) text(x, y int, s, fg, bg string, bold bool) {
	for i, r := range []rune(s) {
		c.set(x+i, y, cell{ch: r, fg: fg, bg: bg, bold: bold})
	}
}

// String renders the canvas, styling each run of equal cells once.
func (c *canvas) String() string {
	var b strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && sameStyle(row[end], row[start]) {
				end++
			}
			b.WriteString(renderRun(row[start:end]))
			start = end
		}
	}
	return b.String()
}

func sameStyle(a, b cell) bool {
	return a.fg == b.fg && a.bg == b.bg && a.bold == b.bold
}

func renderRun(run []cell) string {
	rs := make([]rune, len(run))
	for i, cl := range run {
		rs[i] = cl.ch
	}
	first := run[0]
	if first.fg == "" && first.bg == "" && !first.bold {
		return string(rs)
	}
	st := lipgloss.NewStyle().Bold(first.bold)
	if first.fg != "" {
		st = st.Foreground(lipgloss.Color(first.fg))
	}
	if first.bg != "" {
		st = st.Background(lipgloss.Color(first.bg))
	}
	return st.Render(string(rs))
}
