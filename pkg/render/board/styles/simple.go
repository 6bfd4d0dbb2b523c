package styles

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/typetonic/pkg/fonts"
)

// Simple draws flat rounded keys with a thin black outline.
type Simple struct{}

func (Simple) RenderDefs(*bytes.Buffer) {}

func (Simple) RenderKey(buf *bytes.Buffer, k Key) {
	fmt.Fprintf(buf, `    <rect id="%s" class="key" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.1f" ry="%.1f" fill="%s" stroke="#000000" stroke-width="1"/>`+"\n",
		k.ID, k.X, k.Y, k.W, k.H, k.Radius, k.Radius, k.Fill.Hex())
}

func (Simple) RenderLabel(buf *bytes.Buffer, k Key) {
	if k.Filler {
		return
	}
	writeLabel(buf, k, k.CX, k.CY)
}

func (Simple) PaintKey(dc *gg.Context, k Key) {
	dc.DrawRoundedRectangle(k.X, k.Y, k.W, k.H, k.Radius)
	dc.SetColor(k.Fill)
	dc.FillPreserve()
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.Stroke()
}

func (Simple) PaintLabel(dc *gg.Context, k Key, face font.Face) {
	if k.Filler {
		return
	}
	paintLabel(dc, k, face, k.CX, k.CY)
}

func writeLabel(buf *bytes.Buffer, k Key, cx, cy float64) {
	fmt.Fprintf(buf, `    <text class="key-label" data-key="%s" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" fill="%s" font-size="%.1f" font-family="%s">%s</text>`+"\n",
		k.ID, cx, cy, k.Text.Hex(), FontSize(k), fonts.FallbackFontFamily, EscapeXML(TruncateLabel(k)))
}

func paintLabel(dc *gg.Context, k Key, face font.Face, cx, cy float64) {
	dc.SetFontFace(face)
	dc.SetColor(k.Text)
	dc.DrawStringAnchored(TruncateLabel(k), cx, cy, 0.5, 0.35)
}
