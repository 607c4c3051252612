// Package export serializes a Dataset to CSV, JSON, and column-aligned TXT
// files sharing one base path.
package export

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"fakegen/internal/dataset"
)

// utf8BOM marks the CSV file as UTF-8 so spreadsheet tools decode non-Latin
// scripts correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type target struct {
	format string
	write  func(io.Writer, dataset.Dataset) error
}

var targets = []target{
	{"csv", writeCSV},
	{"json", writeJSON},
	{"txt", writeTXT},
}

// Export writes ds to basePath.csv, basePath.json, and basePath.txt, creating
// the directory component of basePath if it does not exist. Existing files
// are overwritten. Writes are not atomic across formats: files completed
// before a failing step stay on disk.
func Export(ds dataset.Dataset, basePath string) error {
	if dir := filepath.Dir(basePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &StorageError{Path: dir, Err: err}
		}
	}

	for _, t := range targets {
		path := basePath + "." + t.format
		if err := writeFile(path, t, ds); err != nil {
			return err
		}
		log.Info().Str("path", path).Int("records", len(ds)).Msg("File written")
	}
	return nil
}

func writeFile(path string, t target, ds dataset.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return &StorageError{Path: path, Err: err}
	}
	if err := t.write(f, ds); err != nil {
		f.Close()
		return classify(path, t.format, err)
	}
	if err := f.Close(); err != nil {
		return &StorageError{Path: path, Err: err}
	}
	return nil
}

// classify separates filesystem failures from serialization failures so the
// caller can report them distinctly.
func classify(path, format string, err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return &StorageError{Path: path, Err: err}
	}
	return &ExportError{Format: format, Err: err}
}
