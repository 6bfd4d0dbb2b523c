package styles

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/typetonic/pkg/colors"
	"github.com/matzehuels/typetonic/pkg/errors"
)

func testKey(label string, w float64) Key {
	return Key{
		ID: "key-0-0", Label: label,
		X: 0, Y: 0, W: w, H: 54, CX: w / 2, CY: 27,
		Radius: 5,
		Fill:   colors.MustParse("#336699"),
		Text:   colors.White,
	}
}

func TestFontSize(t *testing.T) {
	tests := []struct {
		name  string
		label string
		w     float64
		want  float64
	}{
		{"short label", "Q", 54, LabelFontSize},
		{"long label shrinks", "BACKSPACE", 54, 54 * fontWidthRatio / (9 * fontCharWidth)},
		{"floor", "VERYLONGLABELTEXT", 20, fontSizeMin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FontSize(testKey(tt.label, tt.w)); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("FontSize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTruncateLabel(t *testing.T) {
	if got := TruncateLabel(testKey("ESC", 54)); got != "ESC" {
		t.Errorf("TruncateLabel(ESC) = %q", got)
	}
	got := TruncateLabel(testKey("VERYLONGLABELTEXT", 20))
	if !strings.HasSuffix(got, "..") || len(got) >= len("VERYLONGLABELTEXT") {
		t.Errorf("TruncateLabel(long) = %q", got)
	}
	if got := TruncateLabel(testKey("←", 54)); got != "←" {
		t.Errorf("TruncateLabel(arrow) = %q", got)
	}
}

func TestEscapeXML(t *testing.T) {
	if got := EscapeXML(`<&>"`); got != "&lt;&amp;&gt;&#34;" {
		t.Errorf("EscapeXML() = %q", got)
	}
}

func TestSimpleRender(t *testing.T) {
	var buf bytes.Buffer
	k := testKey("A", 54)
	Simple{}.RenderKey(&buf, k)
	Simple{}.RenderLabel(&buf, k)
	out := buf.String()

	for _, want := range []string{`fill="#336699"`, `stroke="#000000"`, `rx="5.0"`, `fill="#ffffff"`, `>A</text>`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}

func TestFillerHasNoLabel(t *testing.T) {
	k := testKey("", 27)
	k.Filler = true
	for _, s := range []Style{Simple{}, Keycap{}} {
		var buf bytes.Buffer
		s.RenderLabel(&buf, k)
		if buf.Len() != 0 {
			t.Errorf("%T rendered a filler label: %s", s, buf.String())
		}
	}
}

func TestKeycapRender(t *testing.T) {
	var buf bytes.Buffer
	k := testKey("A", 54)
	Keycap{}.RenderDefs(&buf)
	Keycap{}.RenderKey(&buf, k)
	out := buf.String()

	if !strings.Contains(out, `id="keycap-shadow"`) {
		t.Error("missing shadow filter")
	}
	if !strings.Contains(out, colors.Darken(k.Fill, keycapSkirtDarken).Hex()) {
		t.Error("missing skirt color")
	}
	if !strings.Contains(out, colors.Lighten(k.Fill, keycapTopLighten).Hex()) {
		t.Error("missing top face color")
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"", "simple", "Keycap"} {
		if _, err := Lookup(name); err != nil {
			t.Errorf("Lookup(%q) error: %v", name, err)
		}
	}
	if _, err := Lookup("handdrawn"); !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("Lookup(unknown) error = %v", err)
	}
}

func TestStylesArePainters(t *testing.T) {
	for _, name := range Names() {
		s, _ := Lookup(name)
		if _, ok := s.(Painter); !ok {
			t.Errorf("%s does not implement Painter", name)
		}
	}
}
