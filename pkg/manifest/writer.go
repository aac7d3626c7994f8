// Package manifest persists rendered code images into an output directory and
// records a code-to-filename mapping in a manifest.csv file alongside them.
package manifest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the manifest file created inside the output directory.
const FileName = "manifest.csv"

// Error variables for manifest writing
var (
	// ErrCreateOutput is returned when the output directory or manifest file cannot be created.
	ErrCreateOutput = errors.New("cannot create output location")
	// ErrWrite is returned when an image or manifest row cannot be written.
	ErrWrite = errors.New("cannot write output")
	// ErrClosed is returned when the writer is used after Close.
	ErrClosed = errors.New("manifest writer is closed")
)

// header matches the documented manifest columns.
var header = []string{"code", "filename"}

// Writer persists images and manifest rows for a single run. It is not safe
// for concurrent use; the pipeline is strictly sequential.
type Writer struct {
	dir string
	f   *os.File
	csv *csv.Writer
}

// NewWriter creates the output directory if needed, truncates any previous
// manifest, and writes the header row.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Join(ErrCreateOutput, err)
	}
	f, err := os.Create(filepath.Join(dir, FileName))
	if err != nil {
		return nil, errors.Join(ErrCreateOutput, err)
	}
	w := &Writer{dir: dir, f: f, csv: csv.NewWriter(f)}
	if err := w.csv.Write(header); err != nil {
		f.Close()
		return nil, errors.Join(ErrWrite, err)
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		f.Close()
		return nil, errors.Join(ErrWrite, err)
	}
	return w, nil
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// WriteImage writes the rendered PNG for a code into the output directory and
// returns the bare filename used.
func (w *Writer) WriteImage(code string, data []byte) (string, error) {
	name := fmt.Sprintf("%s.png", code)
	if err := os.WriteFile(filepath.Join(w.dir, name), data, 0o644); err != nil {
		return "", errors.Join(ErrWrite, err)
	}
	return name, nil
}

// Add appends a manifest row. Rows are flushed immediately so an aborted run
// leaves only complete rows behind.
func (w *Writer) Add(code, filename string) error {
	if w.csv == nil {
		return ErrClosed
	}
	if err := w.csv.Write([]string{code, filename}); err != nil {
		return errors.Join(ErrWrite, err)
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return errors.Join(ErrWrite, err)
	}
	return nil
}

// Close flushes the manifest and closes the file. Safe to call twice.
func (w *Writer) Close() error {
	if w.csv == nil {
		return nil
	}
	w.csv.Flush()
	flushErr := w.csv.Error()
	closeErr := w.f.Close()
	w.csv = nil
	if flushErr != nil {
		return errors.Join(ErrWrite, flushErr)
	}
	if closeErr != nil {
		return errors.Join(ErrWrite, closeErr)
	}
	return nil
}
