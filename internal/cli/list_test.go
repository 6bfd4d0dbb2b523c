package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/typetonic/pkg/colors"
	"github.com/matzehuels/typetonic/pkg/keyboard"
	"github.com/matzehuels/typetonic/pkg/pattern"
)

func TestListTables(t *testing.T) {
	tests := []struct {
		name string
		out  func(*bytes.Buffer) error
		want []string
	}{
		{
			name: "keyboards",
			out:  func(b *bytes.Buffer) error { return writeTable(b, keyboardTable(keyboard.DefaultCatalog())) },
			want: []string{"Keychron K6", "Keychron K8", "6x20"},
		},
		{
			name: "palettes",
			out:  func(b *bytes.Buffer) error { return writeTable(b, paletteTable(colors.DefaultSchemes())) },
			want: []string{"Pastel", "Ocean", "#87ceeb"},
		},
		{
			name: "patterns",
			out:  func(b *bytes.Buffer) error { return writeTable(b, patternTable(pattern.New())) },
			want: []string{"spiral", "geometric", "splatter", "theme", "random"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.out(&buf); err != nil {
				t.Fatal(err)
			}
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("table missing %q:\n%s", w, buf.String())
				}
			}
		})
	}
}
