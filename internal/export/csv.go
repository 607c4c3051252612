package export

import (
	"encoding/csv"
	"io"

	"fakegen/internal/dataset"
)

// writeCSV emits a UTF-8 BOM, a header row, then one row per record.
func writeCSV(w io.Writer, ds dataset.Dataset) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(dataset.Header); err != nil {
		return err
	}
	for _, rec := range ds {
		if err := cw.Write(rec.Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
