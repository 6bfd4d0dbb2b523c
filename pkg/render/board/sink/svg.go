package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/typetonic/pkg/colors"
	"github.com/matzehuels/typetonic/pkg/fonts"
	"github.com/matzehuels/typetonic/pkg/render/board/layout"
	"github.com/matzehuels/typetonic/pkg/render/board/styles"
)

// Background is the canvas fill behind the keys.
var Background = colors.MustParse("#1a1a1a")

// BackgroundRadius is the corner radius of the canvas.
const BackgroundRadius = 10.0

const keyInteractionCSS = `
    .key-group { cursor: pointer; }
    .key-group[data-filler] { cursor: default; }
    .key { transition: stroke-width 0.2s ease; }
    .key-group:not([data-filler]):hover .key { stroke-width: 3; }
    .key-label { pointer-events: none; }`

// The script re-dispatches clicks on non-filler keys as a bubbling
// "keyclick" CustomEvent carrying the grid coordinates and pointer position.
const keyInteractionJS = `
    document.querySelectorAll('.key-group:not([data-filler])').forEach(g => {
      g.addEventListener('click', ev => {
        g.dispatchEvent(new CustomEvent('keyclick', {
          bubbles: true,
          detail: { row: +g.dataset.row, col: +g.dataset.col, x: ev.clientX, y: ev.clientY }
        }));
      });
    });`

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style     styles.Style
	script    bool
	embedFont bool
	title     string
}

func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithoutScript omits the click-to-recolor CSS and JavaScript.
func WithoutScript() SVGOption { return func(r *svgRenderer) { r.script = false } }

// WithEmbeddedFont inlines the label font as a base64 @font-face so the SVG
// looks the same as the PNG on systems without it.
func WithEmbeddedFont() SVGOption { return func(r *svgRenderer) { r.embedFont = true } }

// WithTitle adds a <title> element.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{style: styles.Simple{}, script: true}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width, l.Height)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", styles.EscapeXML(r.title))
	}
	if r.embedFont {
		fmt.Fprintf(&buf, "  <style>@font-face { font-family: '%s'; src: url(data:font/ttf;base64,%s) format('truetype'); }</style>\n",
			fonts.FontFamily, fonts.BoldTTFBase64())
	}
	r.style.RenderDefs(&buf)

	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.2f" height="%.2f" fill="%s" rx="%.0f" ry="%.0f"/>`+"\n",
		l.Width, l.Height, Background.Hex(), BackgroundRadius, BackgroundRadius)
	fmt.Fprintf(&buf, `  <g transform="translate(%.2f, %.2f)">`+"\n", l.Padding, l.Padding)
	for _, k := range buildKeys(l) {
		renderKey(&buf, r.style, k)
	}
	buf.WriteString("  </g>\n")

	if r.script {
		renderKeyInteraction(&buf)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderKey(buf *bytes.Buffer, s styles.Style, k styles.Key) {
	filler := ""
	if k.Filler {
		filler = ` data-filler="true"`
	}
	fmt.Fprintf(buf, `   <g class="key-group" data-row="%d" data-col="%d"%s>`+"\n", k.Row, k.Col, filler)
	s.RenderKey(buf, k)
	s.RenderLabel(buf, k)
	buf.WriteString("   </g>\n")
}

func renderKeyInteraction(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", keyInteractionCSS)
	fmt.Fprintf(buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", keyInteractionJS)
}

func buildKeys(l layout.Layout) []styles.Key {
	keys := make([]styles.Key, 0, len(l.Keys))
	for _, k := range l.Keys {
		keys = append(keys, styles.Key{
			ID:    fmt.Sprintf("key-%d-%d", k.Row, k.Col),
			Row:   k.Row,
			Col:   k.Col,
			Label: k.Label,
			X:     k.X, Y: k.Y,
			W: k.W, H: k.H,
			CX: k.CenterX(), CY: k.CenterY(),
			Radius: l.Radius,
			Fill:   k.Fill,
			Text:   k.Text,
			Filler: k.Filler,
		})
	}
	return keys
}
