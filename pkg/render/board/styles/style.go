package styles

import (
	"bytes"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/typetonic/pkg/colors"
	"github.com/matzehuels/typetonic/pkg/errors"
)

// Style defines the visual appearance of keys.
// Implementations control how key shapes and labels are drawn.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderKey writes the SVG for a single key shape.
	RenderKey(buf *bytes.Buffer, k Key)
	// RenderLabel writes the SVG for a key's label text.
	RenderLabel(buf *bytes.Buffer, k Key)
}

// Painter is implemented by styles that can also draw onto a raster canvas.
type Painter interface {
	PaintKey(dc *gg.Context, k Key)
	PaintLabel(dc *gg.Context, k Key, face font.Face)
}

// Key contains all data needed to render a single key.
type Key struct {
	ID         string  // Element id, "key-<row>-<col>"
	Row, Col   int     // Grid coordinates
	Label      string  // Display text (empty for fillers)
	X, Y, W, H float64 // Position and dimensions
	CX, CY     float64 // Center coordinates (for text)
	Radius     float64 // Corner radius
	Fill       colors.Color
	Text       colors.Color
	Filler     bool
}

// Style names accepted by [Lookup].
const (
	NameSimple = "simple"
	NameKeycap = "keycap"
)

// Names returns the available style names.
func Names() []string { return []string{NameSimple, NameKeycap} }

// Lookup returns the style registered under name.
func Lookup(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameSimple:
		return Simple{}, nil
	case NameKeycap:
		return Keycap{}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q (supported: %s)", name, strings.Join(Names(), ", "))
}
