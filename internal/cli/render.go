package cli

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/typetonic/pkg/colors"
	"github.com/matzehuels/typetonic/pkg/design"
	"github.com/matzehuels/typetonic/pkg/errors"
	"github.com/matzehuels/typetonic/pkg/io"
	"github.com/matzehuels/typetonic/pkg/pattern"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	keyboard string        // keyboard model name
	palette  string        // named palette
	colors   string        // comma-separated hex colors; overrides palette
	pattern  string        // pattern variant
	formats  []string      // output formats: "svg", "png", "json"
	output   string        // output file, base path for several formats, or "-" for stdout
	style    string        // key style: "simple" or "keycap"
	seed     uint64        // seed for random and theme variants; 0 picks one
	sets     []string      // single-key edits as "row,col=#hex"
	grid     string        // JSON grid file to render instead of generating
	delay    time.Duration // minimum generation time
}

// keyEdit is one parsed --set flag.
type keyEdit struct {
	row, col int
	color    colors.Color
}

// renderCommand creates the render command, which generates a design and
// writes it in one or more formats.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Generate a keyboard design and export it",
		Example: `  typetonic render --keyboard "Keychron K8" --palette Ocean --pattern spiral
  typetonic render --colors "#264653,#2a9d8f,#e9c46a" --format svg,png -o board
  typetonic render --seed 7 --pattern splatter --set 2,3=#ff8800 -f png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyRenderDefaults(cmd, &opts, &formatsStr)
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			edits, err := parseEdits(opts.sets)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), &opts, edits)
		},
	}

	cmd.Flags().StringVarP(&opts.keyboard, "keyboard", "k", "", "keyboard model (see 'typetonic list keyboards')")
	cmd.Flags().StringVarP(&opts.palette, "palette", "p", "", "named palette (see 'typetonic list palettes')")
	cmd.Flags().StringVar(&opts.colors, "colors", "", "comma-separated hex colors, overrides --palette")
	cmd.Flags().StringVarP(&opts.pattern, "pattern", "t", "", "pattern variant (see 'typetonic list patterns')")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, base path for several formats, or - for stdout")
	cmd.Flags().StringVar(&opts.style, "style", "", "key style: simple (default), keycap")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for random and theme patterns (0 picks one)")
	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "recolor one key, as row,col=#hex (repeatable)")
	cmd.Flags().StringVar(&opts.grid, "grid", "", "render a JSON color grid instead of generating one")
	cmd.Flags().DurationVar(&opts.delay, "delay", 0, "minimum generation time, e.g. 1s")
	cmd.MarkFlagsMutuallyExclusive("grid", "seed")

	return cmd
}

// applyRenderDefaults fills flags the user did not set from the config.
func (c *CLI) applyRenderDefaults(cmd *cobra.Command, opts *renderOpts, formats *string) {
	opts.keyboard = flagOr(cmd, "keyboard", opts.keyboard, c.cfg.Keyboard)
	opts.palette = flagOr(cmd, "palette", opts.palette, c.cfg.Palette)
	opts.pattern = flagOr(cmd, "pattern", opts.pattern, c.cfg.Pattern)
	opts.style = flagOr(cmd, "style", opts.style, c.cfg.Style)
	*formats = flagOr(cmd, "format", *formats, c.cfg.Format)
	if !cmd.Flags().Changed("seed") {
		opts.seed = c.cfg.Seed
	}
	if !cmd.Flags().Changed("delay") {
		opts.delay = c.cfg.Delay.Duration
	}
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{design.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// validateFormats checks that all requested formats are supported.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if err := errors.ValidateFormat(f, design.Formats); err != nil {
			return err
		}
	}
	return nil
}

// parseEdits parses every --set value.
func parseEdits(sets []string) ([]keyEdit, error) {
	edits := make([]keyEdit, 0, len(sets))
	for _, s := range sets {
		e, err := parseEdit(s)
		if err != nil {
			return nil, err
		}
		edits = append(edits, e)
	}
	return edits, nil
}

// parseEdit parses "row,col=#hex".
func parseEdit(s string) (keyEdit, error) {
	pos, hex, ok := strings.Cut(s, "=")
	if !ok {
		return keyEdit{}, errors.New(errors.ErrCodeInvalidInput, "invalid edit %q: want row,col=#hex", s)
	}
	rs, cs, ok := strings.Cut(pos, ",")
	if !ok {
		return keyEdit{}, errors.New(errors.ErrCodeInvalidInput, "invalid edit %q: want row,col=#hex", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil || row < 0 {
		return keyEdit{}, errors.New(errors.ErrCodeInvalidInput, "invalid row in edit %q", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil || col < 0 {
		return keyEdit{}, errors.New(errors.ErrCodeInvalidInput, "invalid column in edit %q", s)
	}
	c, err := colors.Parse(hex)
	if err != nil {
		return keyEdit{}, err
	}
	return keyEdit{row: row, col: col, color: c}, nil
}

// outputPath returns the file a format is written to. With several formats
// the output flag is a base path and each file gets its own extension.
func outputPath(output, format string, multi bool) string {
	if output == "" {
		return defaultOutputBase + "." + format
	}
	if !multi {
		return output
	}
	return basePath(output) + "." + format
}

// basePath strips a known format extension from output.
func basePath(output string) string {
	ext := filepath.Ext(output)
	if errors.ValidateFormat(strings.TrimPrefix(strings.ToLower(ext), "."), design.Formats) == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender generates (or imports) a design, applies the edits and writes
// every requested format.
func (c *CLI) runRender(ctx context.Context, opts *renderOpts, edits []keyEdit) error {
	logger := loggerFromContext(ctx)
	toStdout := opts.output == "-"
	if toStdout && len(opts.formats) > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "cannot write %d formats to stdout", len(opts.formats))
	}
	if toStdout && opts.formats[0] == design.FormatPNG && isTerminal(os.Stdout) {
		return errors.New(errors.ErrCodeInvalidInput, "refusing to write PNG to a terminal; use --output or redirect stdout")
	}

	s, err := c.newSession(sessionOpts{style: opts.style, delay: opts.delay})
	if err != nil {
		return err
	}

	d, err := c.produce(ctx, s, opts)
	if err != nil {
		return err
	}
	for _, e := range edits {
		if d, err = s.Recolor(ctx, e.row, e.col, e.color); err != nil {
			return err
		}
	}
	logger.Debugf("Applied %d key edits", len(edits))

	if !toStdout {
		if d.Pattern != d.Resolved && d.Pattern != "" {
			printWarning("unknown pattern %q, used %s", d.Pattern, d.Resolved)
		}
		printDesign(d)
	}

	for _, format := range opts.formats {
		data, err := s.Export(ctx, format)
		if err != nil {
			return err
		}
		if toStdout {
			return io.WriteArtifact(os.Stdout, data)
		}
		path := outputPath(opts.output, format, len(opts.formats) > 1)
		if err := io.ExportFile(path, data); err != nil {
			return err
		}
		logger.Infof("Generated %s", path)
		printFile(path)
	}
	if !toStdout && opts.grid == "" {
		printHint("Edit interactively", editHint(opts))
	}
	return nil
}

// editHint returns the edit command that reopens this design.
func editHint(opts *renderOpts) string {
	parts := []string{appName, "edit", "--keyboard", strconv.Quote(opts.keyboard)}
	if opts.colors != "" {
		parts = append(parts, "--colors", strconv.Quote(opts.colors))
	} else {
		parts = append(parts, "--palette", strconv.Quote(opts.palette))
	}
	if opts.pattern != "" {
		parts = append(parts, "--pattern", opts.pattern)
	}
	return strings.Join(parts, " ")
}

// produce imports the grid file if one was given, otherwise generates.
func (c *CLI) produce(ctx context.Context, s *design.Session, opts *renderOpts) (design.Design, error) {
	logger := loggerFromContext(ctx)
	if opts.grid != "" {
		g, err := io.ImportGrid(opts.grid)
		if err != nil {
			return design.Design{}, err
		}
		logger.Infof("Loaded %dx%d grid from %s", g.Rows(), g.Cols(), opts.grid)
		return s.Restore(ctx, opts.keyboard, g)
	}

	palette, err := c.resolvePalette(opts.palette, opts.colors)
	if err != nil {
		return design.Design{}, err
	}
	req := design.Request{
		Keyboard: opts.keyboard,
		Palette:  palette,
		Pattern:  pattern.ParseID(opts.pattern),
		Seed:     opts.seed,
	}

	prog := newProgress(logger)
	spin := newSpinnerWithContext(ctx, "Generating design...")
	spin.Start()
	d, err := s.Generate(ctx, req)
	spin.Stop()
	if err != nil {
		return design.Design{}, err
	}
	prog.done("Generated " + string(d.Resolved) + " design")
	return d, nil
}
