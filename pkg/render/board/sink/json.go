package sink

import (
	"encoding/json"

	"github.com/matzehuels/typetonic/pkg/pattern"
	"github.com/matzehuels/typetonic/pkg/render/board/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style   string
	pattern string
	version string
	seed    uint64
}

// WithJSONStyle records the style name (e.g., "simple", "keycap") in the
// JSON output.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithJSONPattern records the pattern that produced the grid, the engine
// version and the seed, enough to regenerate the same design.
func WithJSONPattern(id pattern.ID, version string, seed uint64) JSONOption {
	return func(r *jsonRenderer) { r.pattern, r.version, r.seed = string(id), version, seed }
}

type jsonOutput struct {
	Keyboard   string       `json:"keyboard"`
	Width      float64      `json:"width"`
	Height     float64      `json:"height"`
	Padding    float64      `json:"padding"`
	Unit       float64      `json:"unit"`
	Spacing    float64      `json:"spacing"`
	Radius     float64      `json:"radius"`
	Background string       `json:"background"`
	Style      string       `json:"style,omitempty"`
	Pattern    string       `json:"pattern,omitempty"`
	Version    string       `json:"engine_version,omitempty"`
	Seed       uint64       `json:"seed,omitempty"`
	Keys       []jsonKey    `json:"keys"`
	Grid       pattern.Grid `json:"grid"`
}

type jsonKey struct {
	Row    int     `json:"row"`
	Col    int     `json:"col"`
	Label  string  `json:"label,omitempty"`
	Units  float64 `json:"units"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Fill   string  `json:"fill"`
	Text   string  `json:"text,omitempty"`
	Filler bool    `json:"filler,omitempty"`
}

// RenderJSON exports the layout geometry and colors as pretty-printed JSON
// for other tools. Key coordinates are relative to the padded origin.
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Keyboard:   l.Keyboard,
		Width:      l.Width,
		Height:     l.Height,
		Padding:    l.Padding,
		Unit:       l.Unit,
		Spacing:    l.Spacing,
		Radius:     l.Radius,
		Background: Background.Hex(),
		Style:      r.style,
		Pattern:    r.pattern,
		Version:    r.version,
		Seed:       r.seed,
		Keys:       make([]jsonKey, 0, len(l.Keys)),
		Grid:       l.Grid,
	}
	for _, k := range l.Keys {
		jk := jsonKey{
			Row: k.Row, Col: k.Col,
			Label: k.Label, Units: k.Units,
			X: k.X, Y: k.Y, Width: k.W, Height: k.H,
			Fill:   k.Fill.Hex(),
			Filler: k.Filler,
		}
		if !k.Filler {
			jk.Text = k.Text.Hex()
		}
		out.Keys = append(out.Keys, jk)
	}
	return json.MarshalIndent(out, "", "  ")
}
