package keyboard

import (
	"testing"

	"github.com/matzehuels/typetonic/pkg/errors"
)

func TestBuiltinDims(t *testing.T) {
	tests := []struct {
		name     string
		wantRows int
		wantCols int
		rowUnits float64
	}{
		{KeychronK6, 5, 15, 16},
		{KeychronK8, 6, 20, 18.25},
	}

	c := DefaultCatalog()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := c.Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup error: %v", err)
			}
			rows, cols := l.Dims()
			if rows != tt.wantRows || cols != tt.wantCols {
				t.Errorf("Dims() = %dx%d, want %dx%d", rows, cols, tt.wantRows, tt.wantCols)
			}
			if got := l.RowUnits(0); got != tt.rowUnits {
				t.Errorf("RowUnits(0) = %v, want %v", got, tt.rowUnits)
			}
			if err := l.Validate(); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestK6RowsAreEqualWidth(t *testing.T) {
	l, _ := DefaultCatalog().Lookup(KeychronK6)
	for r := range l.Rows {
		if got := l.RowUnits(r); got != 16 {
			t.Errorf("row %d = %vu, want 16u", r, got)
		}
	}
}

func TestK8Fillers(t *testing.T) {
	l, _ := DefaultCatalog().Lookup(KeychronK8)
	if !l.Rows[0][1].IsFiller() {
		t.Error("gap after ESC should be a filler")
	}
	if l.Rows[0][0].IsFiller() {
		t.Error("ESC should not be a filler")
	}
	if l.KeyCount() != 87 {
		t.Errorf("KeyCount() = %d, want 87", l.KeyCount())
	}
}

func TestLookup(t *testing.T) {
	c := DefaultCatalog()

	if _, err := c.Lookup("keychron k6"); err != nil {
		t.Errorf("case-insensitive Lookup error = %v", err)
	}

	_, err := c.Lookup("Model M")
	if !errors.Is(err, errors.ErrCodeLayoutNotFound) {
		t.Fatalf("Lookup unknown error = %v", err)
	}
	if !errors.IsInvalidInput(err) {
		t.Error("missing layout should count as invalid input")
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	c := DefaultCatalog()
	l, _ := c.Lookup(KeychronK6)
	l.Rows[0][0].Label = "changed"

	again, _ := c.Lookup(KeychronK6)
	if again.Rows[0][0].Label != "ESC" {
		t.Error("catalog layout was mutated through a lookup")
	}
}

func TestAdd(t *testing.T) {
	c := NewCatalog()
	macro := Layout{Name: "Macropad", Rows: [][]KeySpec{{{1, "A"}, {1, "B"}}, {{2, "C"}}}}
	if err := c.Add(macro); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if names := c.Names(); len(names) != 1 || names[0] != "Macropad" {
		t.Errorf("Names() = %v", names)
	}

	tests := []struct {
		name   string
		layout Layout
	}{
		{"no name", Layout{Rows: [][]KeySpec{{{1, "A"}}}}},
		{"no rows", Layout{Name: "x"}},
		{"empty row", Layout{Name: "x", Rows: [][]KeySpec{{}}}},
		{"zero width", Layout{Name: "x", Rows: [][]KeySpec{{{0, "A"}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.Add(tt.layout); !errors.IsInvalidInput(err) {
				t.Errorf("Add(%s) error = %v, want invalid input", tt.name, err)
			}
		})
	}
}
