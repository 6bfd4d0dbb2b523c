package errors

import (
	"math"
	"testing"
)

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		wantErr    bool
	}{
		{"one by one", 1, 1, false},
		{"keyboard sized", 6, 20, false},
		{"zero rows", 0, 5, true},
		{"zero cols", 5, 0, true},
		{"negative", -1, 3, true},
		{"at the cell limit", 1 << 10, 1 << 10, false},
		{"over the cell limit", 1<<10 + 1, 1 << 10, true},
		{"product overflows int", math.MaxInt/2 + 1, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.rows, tt.cols)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimensions(%d, %d) error = %v, wantErr %v", tt.rows, tt.cols, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidDimensions) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidDimensions)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	supported := []string{"svg", "png", "json"}

	if err := ValidateFormat("png", supported); err != nil {
		t.Errorf("ValidateFormat(png) error = %v", err)
	}
	err := ValidateFormat("pdf", supported)
	if err == nil {
		t.Fatal("ValidateFormat(pdf) should fail")
	}
	if !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidFormat)
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "keyboard_design.png", false},
		{"nested", "out/k6.svg", false},
		{"absolute", "/tmp/k6.png", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"null byte", "foo\x00.png", true},
		{"control char", "foo\x01.png", true},
		{"directory", "out/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
