package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// MaxCells bounds the number of cells in a grid.
const MaxCells = 1 << 20

// ValidateDimensions checks that a grid request has a positive size of at
// most [MaxCells] cells.
func ValidateDimensions(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return New(ErrCodeInvalidDimensions, "grid must be at least 1x1, got %dx%d", rows, cols)
	}
	if rows > MaxCells/cols {
		return New(ErrCodeInvalidDimensions, "grid %dx%d exceeds %d cells", rows, cols, MaxCells)
	}
	return nil
}

// ValidateFormat checks an output format against the supported set.
func ValidateFormat(format string, supported []string) error {
	for _, f := range supported {
		if f == format {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", format, strings.Join(supported, ", "))
}

// ValidateOutputPath validates a file path used for exports.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must name a file, not a directory
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, string(filepath.Separator)) || strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidPath, "path must name a file, not a directory")
	}

	return nil
}
