package io

import (
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/typetonic/pkg/errors"
)

// WriteArtifact writes data to w.
func WriteArtifact(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailure, err, "write artifact")
	}
	return nil
}

// ExportFile writes data to path atomically.
func ExportFile(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailure, err, "invalid output path")
	}
	dir := filepath.Dir(path)
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return errors.New(errors.ErrCodeExportFailure, "%s is a directory", path)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeExportFailure, err, "create %s", path)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(errors.ErrCodeExportFailure, err, "write %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailure, err, "write %s", path)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailure, err, "chmod %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailure, err, "rename into %s", path)
	}
	return nil
}
