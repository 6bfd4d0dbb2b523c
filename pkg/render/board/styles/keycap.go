package styles

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/typetonic/pkg/colors"
)

const (
	keycapSkirtDarken = 0.25
	keycapTopLighten  = 0.12
	keycapInsetX      = 5.0
	keycapInsetTop    = 3.0
	keycapInsetBottom = 8.0
)

// Keycap draws two-tone sculpted keycaps: a darker skirt with a lighter,
// inset top face carrying the label.
type Keycap struct{}

func (Keycap) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <filter id="keycap-shadow" x="-10%" y="-10%" width="120%" height="130%">
      <feDropShadow dx="0" dy="1.5" stdDeviation="1" flood-color="#000000" flood-opacity="0.6"/>
    </filter>
  </defs>
`)
}

func (Keycap) RenderKey(buf *bytes.Buffer, k Key) {
	skirt := colors.Darken(k.Fill, keycapSkirtDarken)
	fmt.Fprintf(buf, `    <rect id="%s" class="key" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.1f" ry="%.1f" fill="%s" stroke="#000000" stroke-width="1" filter="url(#keycap-shadow)"/>`+"\n",
		k.ID, k.X, k.Y, k.W, k.H, k.Radius, k.Radius, skirt.Hex())
	if k.Filler {
		return
	}
	x, y, w, h := topFace(k)
	fmt.Fprintf(buf, `    <rect class="key-top" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.1f" ry="%.1f" fill="%s"/>`+"\n",
		x, y, w, h, k.Radius, k.Radius, colors.Lighten(k.Fill, keycapTopLighten).Hex())
}

func (Keycap) RenderLabel(buf *bytes.Buffer, k Key) {
	if k.Filler {
		return
	}
	x, y, w, h := topFace(k)
	writeLabel(buf, k, x+w/2, y+h/2)
}

func (Keycap) PaintKey(dc *gg.Context, k Key) {
	dc.DrawRoundedRectangle(k.X, k.Y, k.W, k.H, k.Radius)
	dc.SetColor(colors.Darken(k.Fill, keycapSkirtDarken))
	dc.FillPreserve()
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.Stroke()
	if k.Filler {
		return
	}
	x, y, w, h := topFace(k)
	dc.DrawRoundedRectangle(x, y, w, h, k.Radius)
	dc.SetColor(colors.Lighten(k.Fill, keycapTopLighten))
	dc.Fill()
}

func (Keycap) PaintLabel(dc *gg.Context, k Key, face font.Face) {
	if k.Filler {
		return
	}
	x, y, w, h := topFace(k)
	paintLabel(dc, k, face, x+w/2, y+h/2)
}

func topFace(k Key) (x, y, w, h float64) {
	return k.X + keycapInsetX, k.Y + keycapInsetTop,
		max(0, k.W-2*keycapInsetX), max(0, k.H-keycapInsetTop-keycapInsetBottom)
}
