package cli

import (
	"context"
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/typetonic/pkg/colors"
	"github.com/matzehuels/typetonic/pkg/design"
	"github.com/matzehuels/typetonic/pkg/errors"
	"github.com/matzehuels/typetonic/pkg/io"
	"github.com/matzehuels/typetonic/pkg/pattern"
	"github.com/matzehuels/typetonic/pkg/render/board/layout"
)

// Editor geometry in terminal cells.
const (
	cellsPerUnit  = 5 // columns per 1u key, including the gap
	rowStride     = 2 // lines per keyboard row
	boardTop      = 3 // first board line, below title and help
	pickerWidth   = 14
	defaultWidth  = 100
	defaultHeight = 30
)

// editOpts holds the command-line flags for the edit command.
type editOpts struct {
	keyboard string
	palette  string
	colors   string
	pattern  string
	style    string
	output   string
	seed     uint64
	delay    time.Duration
}

// editCommand creates the interactive editor command.
func (c *CLI) editCommand() *cobra.Command {
	var opts editOpts

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Design a keyboard interactively",
		Long: `Open an interactive editor for a keyboard design.

Keys:
  arrows / hjkl   move between keys
  enter           open the color picker for the selected key
  g               regenerate with a new seed
  p               switch to the next pattern
  s               save as PNG
  q               quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.keyboard = flagOr(cmd, "keyboard", opts.keyboard, c.cfg.Keyboard)
			opts.palette = flagOr(cmd, "palette", opts.palette, c.cfg.Palette)
			opts.pattern = flagOr(cmd, "pattern", opts.pattern, c.cfg.Pattern)
			opts.style = flagOr(cmd, "style", opts.style, c.cfg.Style)
			if !cmd.Flags().Changed("seed") {
				opts.seed = c.cfg.Seed
			}
			if !cmd.Flags().Changed("delay") {
				opts.delay = c.cfg.Delay.Duration
			}
			return c.runEdit(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.keyboard, "keyboard", "k", "", "keyboard model")
	cmd.Flags().StringVarP(&opts.palette, "palette", "p", "", "named palette")
	cmd.Flags().StringVar(&opts.colors, "colors", "", "comma-separated hex colors, overrides --palette")
	cmd.Flags().StringVarP(&opts.pattern, "pattern", "t", "", "initial pattern variant")
	cmd.Flags().StringVar(&opts.style, "style", "", "key style for saved images: simple (default), keycap")
	cmd.Flags().StringVarP(&opts.output, "output", "o", defaultOutputBase+".png", "PNG file written by 's'")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for the first generation (0 picks one)")
	cmd.Flags().DurationVar(&opts.delay, "delay", 0, "minimum generation time, e.g. 1s")

	return cmd
}

func (c *CLI) runEdit(ctx context.Context, opts editOpts) error {
	s, err := c.newSession(sessionOpts{style: opts.style, delay: opts.delay})
	if err != nil {
		return err
	}
	palette, err := c.resolvePalette(opts.palette, opts.colors)
	if err != nil {
		return err
	}
	if _, err := s.Catalog().Lookup(opts.keyboard); err != nil {
		return err
	}

	req := design.Request{
		Keyboard: opts.keyboard,
		Palette:  palette,
		Pattern:  pattern.ParseID(opts.pattern),
		Seed:     opts.seed,
	}
	picker := append(palette.Clone(), c.schemes.Swatches()...)
	m := newEditor(ctx, s, req, dedupe(picker), opts.output)

	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	if em, ok := final.(editorModel); ok && em.saved != "" {
		printSuccess("Saved design")
		printFile(em.saved)
	}
	return nil
}

func dedupe(p colors.Palette) colors.Palette {
	var out colors.Palette
	for _, c := range p {
		if !out.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// =============================================================================
// Editor model
// =============================================================================

type (
	regenerateMsg struct{}
	spinTickMsg   struct{}
	generatedMsg  struct{ res design.Result }
	savedMsg      struct {
		path string
		err  error
	}
)

// editorModel is the bubbletea model of the keyboard editor.
type editorModel struct {
	ctx      context.Context
	session  *design.Session
	req      design.Request
	patterns []pattern.ID
	patIdx   int
	swatches colors.Palette
	output   string

	board    layout.Layout
	hasBoard bool
	row, col int

	picking bool
	pick    int

	generating bool
	frame      int
	status     string
	saved      string

	width, height int
}

func newEditor(ctx context.Context, s *design.Session, req design.Request, swatches colors.Palette, output string) editorModel {
	ids := pattern.New().IDs()
	idx := 0
	for i, id := range ids {
		if id == req.Pattern {
			idx = i
		}
	}
	if req.Pattern == "" && len(ids) > 0 {
		req.Pattern = ids[0]
	}
	return editorModel{
		ctx:      ctx,
		session:  s,
		req:      req,
		patterns: ids,
		patIdx:   idx,
		swatches: swatches,
		output:   output,
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

func (m editorModel) Init() tea.Cmd {
	return func() tea.Msg { return regenerateMsg{} }
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case regenerateMsg:
		return m.startGeneration()
	case spinTickMsg:
		if m.generating {
			m.frame++
			return m, spinTick()
		}
	case generatedMsg:
		m.generating = false
		switch {
		case msg.res.Err != nil:
			m.status = "generation failed: " + errors.UserMessage(msg.res.Err)
		case msg.res.Stale:
		default:
			m.board, m.hasBoard = msg.res.Layout, true
			m.req.Seed = 0
			if k, ok := m.board.KeyAt(m.row, m.col); !ok || k.Filler {
				m.row, m.col = firstTarget(m.board)
			}
			d := msg.res.Design
			m.status = fmt.Sprintf("%s · seed %d", d.Resolved, d.Seed)
		}
	case savedMsg:
		if msg.err != nil {
			m.status = "save failed: " + errors.UserMessage(msg.err)
		} else {
			m.saved = msg.path
			m.status = "saved " + msg.path
		}
	case tea.KeyMsg:
		if m.picking {
			return m.updatePicker(msg)
		}
		return m.updateBoard(msg)
	}
	return m, nil
}

func (m editorModel) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		m.move(0, -1)
	case "right", "l":
		m.move(0, 1)
	case "up", "k":
		m.move(-1, 0)
	case "down", "j":
		m.move(1, 0)
	case "enter", " ":
		if m.hasBoard {
			m.picking = true
			m.pick = max(m.swatchIndex(m.board.Grid.At(m.row, m.col)), 0)
		}
	case "g":
		return m.startGeneration()
	case "p":
		if len(m.patterns) > 0 && !m.generating {
			m.patIdx = (m.patIdx + 1) % len(m.patterns)
			m.req.Pattern = m.patterns[m.patIdx]
		}
		return m.startGeneration()
	case "s":
		if m.hasBoard {
			m.status = "saving..."
			return m, m.save()
		}
	}
	return m, nil
}

func (m editorModel) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.swatches)
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q":
		m.picking = false
	case "up", "k":
		if n > 0 {
			m.pick = (m.pick - 1 + n) % n
		}
	case "down", "j":
		if n > 0 {
			m.pick = (m.pick + 1) % n
		}
	case "enter", " ":
		m.picking = false
		if n == 0 {
			break
		}
		if _, err := m.session.Recolor(m.ctx, m.row, m.col, m.swatches[m.pick]); err != nil {
			m.status = errors.UserMessage(err)
			break
		}
		m.board, _ = m.session.Layout()
	}
	return m, nil
}

// startGeneration asks the session for a new design. A busy session is
// reported in the status line.
func (m editorModel) startGeneration() (tea.Model, tea.Cmd) {
	ch, err := m.session.Start(m.ctx, m.req)
	if err != nil {
		m.status = errors.UserMessage(err)
		return m, nil
	}
	m.generating = true
	m.status = ""
	return m, tea.Batch(waitResult(ch), spinTick())
}

func waitResult(ch <-chan design.Result) tea.Cmd {
	return func() tea.Msg { return generatedMsg{res: <-ch} }
}

func spinTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg { return spinTickMsg{} })
}

func (m editorModel) save() tea.Cmd {
	ctx, s, path := m.ctx, m.session, m.output
	return func() tea.Msg {
		data, err := s.Export(ctx, design.FormatPNG)
		if err == nil {
			err = io.ExportFile(path, data)
		}
		return savedMsg{path: path, err: err}
	}
}

func (m *editorModel) move(dr, dc int) {
	if !m.hasBoard {
		return
	}
	if r, c, ok := neighbor(m.board, m.row, m.col, dr, dc); ok {
		m.row, m.col = r, c
	}
}

func (m editorModel) swatchIndex(c colors.Color) int {
	for i, s := range m.swatches {
		if s == c {
			return i
		}
	}
	return -1
}

// firstTarget returns the position of the first recolorable key.
func firstTarget(l layout.Layout) (int, int) {
	if t := l.Targets(); len(t) > 0 {
		return t[0].Row, t[0].Col
	}
	return 0, 0
}

// neighbor finds the key reached from (row, col) by moving one step.
// Horizontal moves skip fillers within the row. Vertical moves pick the key
// in the next row whose center is closest to the current key's center.
func neighbor(l layout.Layout, row, col, dr, dc int) (int, int, bool) {
	cur, ok := l.KeyAt(row, col)
	if !ok {
		return row, col, false
	}
	if dr == 0 {
		for c := col + dc; ; c += dc {
			k, ok := l.KeyAt(row, c)
			if !ok {
				return row, col, false
			}
			if !k.Filler {
				return row, c, true
			}
		}
	}

	lastRow := 0
	for _, k := range l.Keys {
		lastRow = max(lastRow, k.Row)
	}
	for r := row + dr; r >= 0 && r <= lastRow; r += dr {
		best, bestDist := -1, math.Inf(1)
		for i, k := range l.Keys {
			if k.Row != r || k.Filler {
				continue
			}
			if d := math.Abs(k.CenterX() - cur.CenterX()); d < bestDist {
				best, bestDist = i, d
			}
		}
		if best >= 0 {
			return r, l.Keys[best].Col, true
		}
	}
	return row, col, false
}

// =============================================================================
// View
// =============================================================================

// keyCells maps a key to terminal cells: column, line and width.
func keyCells(l layout.Layout, k layout.Key) (x, y, w int) {
	step := l.Unit + l.Spacing
	x = int(math.Round(k.X / step * cellsPerUnit))
	w = max(1, int(math.Round((k.W+l.Spacing)/step*cellsPerUnit))-1)
	y = boardTop + k.Row*rowStride
	return x, y, w
}

// pickerRect returns where the picker for the selected key is drawn and
// how many swatches fit.
func (m editorModel) pickerRect() (layout.Point, int) {
	visible := min(len(m.swatches), max(m.height-2, 1))
	k, _ := m.board.KeyAt(m.row, m.col)
	x, y, _ := keyCells(m.board, k)
	p := layout.PlacePopup(
		layout.Point{X: float64(x), Y: float64(y + 1)},
		layout.Size{W: pickerWidth, H: float64(visible + 2)},
		layout.Size{W: float64(m.width), H: float64(m.height)},
	)
	return p, visible
}

func (m editorModel) View() string {
	cv := newCanvas(m.width, m.height)

	title := "typetonic · " + m.req.Keyboard + " · " + string(m.req.Pattern)
	cv.text(0, 0, title, string(colorCyan), "", true)
	cv.text(0, 1, "←↑↓→ move  ⏎ color  g regenerate  p pattern  s save  q quit", string(colorDim), "", false)

	statusY := boardTop
	if m.hasBoard {
		for _, k := range m.board.Keys {
			x, y, w := keyCells(m.board, k)
			fg, bg := k.Text.Hex(), k.Fill.Hex()
			if k.Row == m.row && k.Col == m.col {
				fg, bg = bg, fg
			}
			cv.fill(x, y, w, 1, bg)
			if !k.Filler {
				cv.text(x, y, clip(k.Label, w), fg, bg, true)
			}
			statusY = max(statusY, y+rowStride)
		}
	}

	status := m.status
	if m.generating {
		status = spinnerFrames[m.frame%len(spinnerFrames)] + " generating..."
	}
	cv.text(0, statusY, status, string(colorGray), "", false)

	if m.picking {
		m.drawPicker(cv)
	}
	return cv.String()
}

func (m editorModel) drawPicker(cv *canvas) {
	p, visible := m.pickerRect()
	x, y := int(p.X), int(p.Y)
	border := string(colorGray)

	offset := 0
	if m.pick >= visible {
		offset = m.pick - visible + 1
	}

	cv.text(x, y, "┌"+repeat('─', pickerWidth-2)+"┐", border, "", false)
	for i := 0; i < visible; i++ {
		idx := offset + i
		c := m.swatches[idx]
		line := y + 1 + i
		bg := ""
		if idx == m.pick {
			bg = string(colorDim)
		}
		cv.text(x, line, "│ ", border, bg, false)
		cv.fill(x+2, line, 2, 1, c.Hex())
		cv.text(x+4, line, " "+c.Hex()+" ", string(colorWhite), bg, idx == m.pick)
		cv.text(x+pickerWidth-1, line, "│", border, "", false)
	}
	cv.text(x, y+visible+1, "└"+repeat('─', pickerWidth-2)+"┘", border, "", false)
}

// clip centers s in w cells, truncating it when it does not fit.
func clip(s string, w int) string {
	rs := []rune(s)
	if len(rs) > w {
		rs = rs[:w]
	}
	pad := (w - len(rs)) / 2
	return repeat(' ', pad) + string(rs)
}

func repeat(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return string(out)
}
