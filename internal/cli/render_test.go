package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/typetonic/pkg/colors"
	"github.com/matzehuels/typetonic/pkg/errors"
	"github.com/matzehuels/typetonic/pkg/keyboard"
	typeio "github.com/matzehuels/typetonic/pkg/io"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "png", []string{"png"}},
		{"multiple formats", "svg,png,json", []string{"svg", "png", "json"}},
		{"spaces and case", " SVG , Json ", []string{"svg", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"valid svg", []string{"svg"}, false},
		{"valid all", []string{"svg", "png", "json"}, false},
		{"pdf unsupported", []string{"pdf"}, true},
		{"mixed valid invalid", []string{"svg", "invalid"}, true},
		{"empty slice", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("error code = %s, want INVALID_FORMAT", errors.GetCode(err))
			}
		})
	}
}

func TestParseEdit(t *testing.T) {
	tests := []struct {
		in      string
		want    keyEdit
		wantErr bool
	}{
		{"2,3=#ff8800", keyEdit{2, 3, colors.MustParse("#ff8800")}, false},
		{" 0 , 12 =fff", keyEdit{0, 12, colors.White}, false},
		{"2,3", keyEdit{}, true},
		{"2=#fff", keyEdit{}, true},
		{"a,3=#fff", keyEdit{}, true},
		{"-1,3=#fff", keyEdit{}, true},
		{"1,1=#ggg", keyEdit{}, true},
	}
	for _, tt := range tests {
		got, err := parseEdit(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseEdit(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseEdit(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		output, format string
		multi          bool
		want           string
	}{
		{"", "svg", false, "keyboard_design.svg"},
		{"", "png", true, "keyboard_design.png"},
		{"board.svg", "svg", false, "board.svg"},
		{"board.svg", "png", true, "board.png"},
		{"out/board", "json", true, "out/board.json"},
		{"board.v2", "svg", true, "board.v2.svg"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.output, tt.format, tt.multi); got != tt.want {
			t.Errorf("outputPath(%q, %q, %v) = %q, want %q", tt.output, tt.format, tt.multi, got, tt.want)
		}
	}
}

func newTestCLI() *CLI {
	return New(io.Discard, log.InfoLevel)
}

func TestRunRender(t *testing.T) {
	dir := t.TempDir()
	c := newTestCLI()
	ctx := withLogger(context.Background(), c.Logger)

	opts := &renderOpts{
		keyboard: keyboard.KeychronK8,
		palette:  "Ocean",
		pattern:  "checkerboard",
		formats:  []string{"svg", "png", "json"},
		output:   filepath.Join(dir, "board.svg"),
		style:    "simple",
		seed:     5,
	}
	edits := []keyEdit{{row: 2, col: 3, color: colors.MustParse("#ff8800")}}
	if err := c.runRender(ctx, opts, edits); err != nil {
		t.Fatalf("runRender() error: %v", err)
	}

	svg, err := os.ReadFile(filepath.Join(dir, "board.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte(`fill="#ff8800"`)) {
		t.Error("svg missing the edited key")
	}
	png, err := os.ReadFile(filepath.Join(dir, "board.png"))
	if err != nil || !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Errorf("png output invalid: %v", err)
	}

	// The JSON export renders again from its grid.
	grid, err := typeio.ImportGrid(filepath.Join(dir, "board.json"))
	if err != nil {
		t.Fatalf("ImportGrid() error: %v", err)
	}
	if got := grid.At(2, 3).Hex(); got != "#ff8800" {
		t.Errorf("grid(2,3) = %s, want #ff8800", got)
	}

	opts = &renderOpts{
		keyboard: keyboard.KeychronK8,
		formats:  []string{"svg"},
		output:   filepath.Join(dir, "restored.svg"),
		grid:     filepath.Join(dir, "board.json"),
	}
	if err := c.runRender(ctx, opts, nil); err != nil {
		t.Fatalf("runRender(grid) error: %v", err)
	}
	restored, _ := os.ReadFile(filepath.Join(dir, "restored.svg"))
	if !bytes.Contains(restored, []byte(`fill="#ff8800"`)) {
		t.Error("restored svg missing the edited key")
	}
}

func TestRunRenderErrors(t *testing.T) {
	dir := t.TempDir()
	c := newTestCLI()
	ctx := context.Background()

	tests := []struct {
		name  string
		opts  renderOpts
		edits []keyEdit
		code  errors.Code
	}{
		{
			name: "unknown keyboard",
			opts: renderOpts{keyboard: "Model M", palette: "Ocean", formats: []string{"svg"}},
			code: errors.ErrCodeLayoutNotFound,
		},
		{
			name: "unknown palette",
			opts: renderOpts{keyboard: keyboard.KeychronK6, palette: "Vaporwave", formats: []string{"svg"}},
			code: errors.ErrCodePaletteNotFound,
		},
		{
			name: "bad colors",
			opts: renderOpts{keyboard: keyboard.KeychronK6, colors: "#12", formats: []string{"svg"}},
			code: errors.ErrCodeInvalidPalette,
		},
		{
			name: "several formats to stdout",
			opts: renderOpts{keyboard: keyboard.KeychronK6, palette: "Ocean", formats: []string{"svg", "png"}, output: "-"},
			code: errors.ErrCodeInvalidInput,
		},
		{
			name:  "edit on filler",
			opts:  renderOpts{keyboard: keyboard.KeychronK8, palette: "Ocean", formats: []string{"svg"}},
			edits: []keyEdit{{row: 0, col: 1, color: colors.White}},
			code:  errors.ErrCodeInvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.opts.output == "" {
				tt.opts.output = filepath.Join(dir, "out.svg")
			}
			err := c.runRender(ctx, &tt.opts, tt.edits)
			if !errors.Is(err, tt.code) {
				t.Errorf("runRender() error = %v, want %s", err, tt.code)
			}
		})
	}
}
