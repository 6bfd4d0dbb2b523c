package io

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/typetonic/pkg/errors"
	"github.com/matzehuels/typetonic/pkg/pattern"
)

// ReadGrid decodes a color grid from r.
//
// The input is either a JSON array of rows of hex colors or an object whose
// "grid" field holds such an array. Rows must all have the same length.
// ReadGrid does not close r.
func ReadGrid(r io.Reader) (pattern.Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return pattern.Grid{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read grid")
	}
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '{' {
		var doc struct {
			Grid json.RawMessage `json:"grid"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return pattern.Grid{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode grid document")
		}
		if len(doc.Grid) == 0 {
			return pattern.Grid{}, errors.New(errors.ErrCodeInvalidInput, "document has no grid field")
		}
		data = doc.Grid
	}

	var g pattern.Grid
	if err := json.Unmarshal(data, &g); err != nil {
		if errors.GetCode(err) != "" {
			return pattern.Grid{}, err
		}
		return pattern.Grid{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode grid")
	}
	return g, nil
}

// ImportGrid reads a grid from the JSON file at path.
func ImportGrid(path string) (pattern.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return pattern.Grid{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadGrid(f)
}
