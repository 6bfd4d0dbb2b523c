package sink

import (
	"bytes"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/typetonic/pkg/colors"
	"github.com/matzehuels/typetonic/pkg/errors"
	"github.com/matzehuels/typetonic/pkg/keyboard"
	"github.com/matzehuels/typetonic/pkg/pattern"
	"github.com/matzehuels/typetonic/pkg/render/board/layout"
	"github.com/matzehuels/typetonic/pkg/render/board/styles"
)

func testLayout(t *testing.T) layout.Layout {
	t.Helper()
	kb := &keyboard.Layout{Name: "Mini", Rows: [][]keyboard.KeySpec{
		{{Width: 1, Label: "A"}, {Width: 0.5}, {Width: 1.5, Label: "<&>"}},
		{{Width: 3, Label: "SPACE"}},
	}}
	p := colors.Palette{colors.MustParse("#000000"), colors.MustParse("#ffffff")}
	g, err := pattern.New().Generate(pattern.Checkerboard, p, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	l, err := layout.Build(kb, g)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestRenderSVG(t *testing.T) {
	l := testLayout(t)
	out := string(RenderSVG(l))

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		`fill="#1a1a1a" rx="10" ry="10"`,
		`transform="translate(4.00, 4.00)"`,
		`data-row="0" data-col="0"`,
		`data-row="0" data-col="1" data-filler="true"`,
		`data-row="1" data-col="0"`,
		`fill="#2a2a2a"`,
		`&lt;&amp;&gt;`,
		`'keyclick'`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %s", want)
		}
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("SVG not closed")
	}
	// Two labeled keys on row 0 plus SPACE.
	if n := strings.Count(out, `class="key-label"`); n != 3 {
		t.Errorf("label count = %d, want 3", n)
	}
}

func TestRenderSVGOptions(t *testing.T) {
	l := testLayout(t)
	out := string(RenderSVG(l, WithoutScript(), WithTitle("My <board>"), WithStyle(styles.Keycap{}), WithEmbeddedFont()))

	if strings.Contains(out, "<script") {
		t.Error("script present with WithoutScript")
	}
	if !strings.Contains(out, "<title>My &lt;board&gt;</title>") {
		t.Error("missing escaped title")
	}
	if !strings.Contains(out, `keycap-shadow`) {
		t.Error("keycap defs missing")
	}
	if !strings.Contains(out, "@font-face") {
		t.Error("embedded font missing")
	}
}

func TestRenderSVGReflectsRecolor(t *testing.T) {
	l := testLayout(t)
	out, err := layout.Recolor(l, 1, 0, colors.MustParse("#ABCDEF"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(RenderSVG(out)), `fill="#abcdef"`) {
		t.Error("recolored fill not rendered")
	}
	if strings.Contains(string(RenderSVG(l)), `fill="#abcdef"`) {
		t.Error("original layout picked up the recolor")
	}
}

func TestRenderPNG(t *testing.T) {
	l := testLayout(t)
	tests := []struct {
		name  string
		opts  []PNGOption
		scale float64
	}{
		{"default scale", nil, DefaultScale},
		{"1x keycap", []PNGOption{WithScale(1), WithPNGStyle(styles.Keycap{})}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := RenderPNG(l, tt.opts...)
			if err != nil {
				t.Fatalf("RenderPNG() error: %v", err)
			}
			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("png.Decode() error: %v", err)
			}
			b := img.Bounds()
			wantW, wantH := int(l.Width*tt.scale+0.999), int(l.Height*tt.scale+0.999)
			if b.Dx() != wantW || b.Dy() != wantH {
				t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), wantW, wantH)
			}
		})
	}
}

func TestRenderPNGKeyColor(t *testing.T) {
	l := testLayout(t)
	data, err := RenderPNG(l, WithScale(1))
	if err != nil {
		t.Fatal(err)
	}
	img, _ := png.Decode(bytes.NewReader(data))

	// Corner of SPACE (grid cell 1,0 = checkerboard index 1 = white), away
	// from the outline and the label.
	k, _ := l.KeyAt(1, 0)
	r, g, b, _ := img.At(int(l.Padding+k.X+6), int(l.Padding+k.Y+6)).RGBA()
	if r>>8 != 0xff || g>>8 != 0xff || b>>8 != 0xff {
		t.Errorf("SPACE pixel = %02x%02x%02x, want ffffff", r>>8, g>>8, b>>8)
	}
}

func TestRenderPNGInvalidScale(t *testing.T) {
	l := testLayout(t)
	for _, s := range []float64{0, -1} {
		if _, err := RenderPNG(l, WithScale(s)); !errors.Is(err, errors.ErrCodeExportFailure) {
			t.Errorf("RenderPNG(scale %v) error = %v, want export failure", s, err)
		}
	}
	if _, err := RenderPNG(layout.Layout{}); !errors.Is(err, errors.ErrCodeExportFailure) {
		t.Errorf("RenderPNG(empty) error = %v", err)
	}
}

func TestRenderJSON(t *testing.T) {
	l := testLayout(t)
	data, err := RenderJSON(l, WithJSONStyle("keycap"), WithJSONPattern(pattern.Checkerboard, pattern.Version, 42))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.Keyboard != "Mini" || out.Width != l.Width || out.Height != l.Height {
		t.Errorf("header = %q %vx%v", out.Keyboard, out.Width, out.Height)
	}
	if out.Style != "keycap" || out.Pattern != "checkerboard" || out.Seed != 42 || out.Version != pattern.Version {
		t.Errorf("options = %q %q %d %q", out.Style, out.Pattern, out.Seed, out.Version)
	}
	if len(out.Keys) != 4 {
		t.Fatalf("Keys = %d, want 4", len(out.Keys))
	}
	if !out.Keys[1].Filler || out.Keys[1].Text != "" || out.Keys[1].Fill != "#2a2a2a" {
		t.Errorf("filler key = %+v", out.Keys[1])
	}
	if out.Keys[0].Fill != "#000000" || out.Keys[0].Text != "#ffffff" {
		t.Errorf("key A = %+v", out.Keys[0])
	}
	if !out.Grid.Equal(l.Grid) {
		t.Error("grid did not round-trip")
	}
}
