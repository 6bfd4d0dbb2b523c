package layout

import "github.com/matzehuels/typetonic/pkg/colors"

// Key is a single positioned key. Row and Col address its grid cell.
type Key struct {
	Row, Col   int
	Label      string
	Units      float64 // width in key units
	X, Y, W, H float64
	Fill       colors.Color
	Text       colors.Color
	Filler     bool
}

// CenterX returns the horizontal center of the key.
func (k Key) CenterX() float64 { return k.X + k.W/2 }

// CenterY returns the vertical center of the key.
func (k Key) CenterY() float64 { return k.Y + k.H/2 }

// Right returns the right edge.
func (k Key) Right() float64 { return k.X + k.W }

// Bottom returns the bottom edge.
func (k Key) Bottom() float64 { return k.Y + k.H }

// Contains reports whether (x, y) lies inside the key.
func (k Key) Contains(x, y float64) bool {
	return x >= k.X && x < k.Right() && y >= k.Y && y < k.Bottom()
}

func (k *Key) paint(c colors.Color) {
	if k.Filler {
		k.Fill = FillerColor
		k.Text = colors.TextColor(FillerColor)
		return
	}
	k.Fill = c
	k.Text = colors.TextColor(c)
}
