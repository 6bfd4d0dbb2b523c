package sink

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/typetonic/pkg/errors"
	"github.com/matzehuels/typetonic/pkg/fonts"
	"github.com/matzehuels/typetonic/pkg/render/board/layout"
	"github.com/matzehuels/typetonic/pkg/render/board/styles"
)

// DefaultScale renders PNGs at 2x for high-DPI displays.
const DefaultScale = 2.0

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	style styles.Style
	scale float64
}

// WithPNGStyle sets the style. Styles that do not implement
// [styles.Painter] are drawn as [styles.Simple].
func WithPNGStyle(s styles.Style) PNGOption {
	return func(r *pngRenderer) { r.style = s }
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes the layout in-process. Labels use the embedded Go
// Bold face; no external tools are required.
func RenderPNG(l layout.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{style: styles.Simple{}, scale: DefaultScale}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 || math.IsNaN(r.scale) || math.IsInf(r.scale, 0) {
		return nil, errors.New(errors.ErrCodeExportFailure, "invalid PNG scale %v", r.scale)
	}
	w := int(math.Ceil(l.Width * r.scale))
	h := int(math.Ceil(l.Height * r.scale))
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeExportFailure, "empty canvas %vx%v", l.Width, l.Height)
	}

	painter, ok := r.style.(styles.Painter)
	if !ok {
		painter = styles.Simple{}
	}

	faces := newFaceCache()
	defer faces.close()

	dc := gg.NewContext(w, h)
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), BackgroundRadius*r.scale)
	dc.SetColor(Background)
	dc.Fill()

	for _, k := range buildKeys(l) {
		sk := scaleKey(k, r.scale, l.Padding)
		painter.PaintKey(dc, sk)
		if k.Filler {
			continue
		}
		face, err := faces.get(styles.FontSize(k) * r.scale)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeExportFailure, err, "load label font")
		}
		sk.Label = styles.TruncateLabel(k)
		painter.PaintLabel(dc, sk, face)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeExportFailure, err, "encode png")
	}
	return buf.Bytes(), nil
}

// scaleKey moves k into canvas pixel space. Geometry is scaled directly
// rather than through the context matrix so glyphs are rasterized at the
// final size instead of being resampled.
func scaleKey(k styles.Key, s, padding float64) styles.Key {
	k.X = (k.X + padding) * s
	k.Y = (k.Y + padding) * s
	k.W *= s
	k.H *= s
	k.CX = (k.CX + padding) * s
	k.CY = (k.CY + padding) * s
	k.Radius *= s
	return k
}

type faceCache map[float64]font.Face

func newFaceCache() faceCache { return make(faceCache) }

func (c faceCache) get(size float64) (font.Face, error) {
	if f, ok := c[size]; ok {
		return f, nil
	}
	f, err := fonts.Face(size)
	if err != nil {
		return nil, err
	}
	c[size] = f
	return f, nil
}

func (c faceCache) close() {
	for _, f := range c {
		_ = f.Close()
	}
}
