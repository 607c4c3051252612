package export

import (
	"encoding/json"
	"io"

	"fakegen/internal/dataset"
)

// writeJSON emits the dataset as a pretty-printed array of objects. HTML
// escaping is off so text fields keep their native characters instead of
// <-style escapes.
func writeJSON(w io.Writer, ds dataset.Dataset) error {
	if ds == nil {
		ds = dataset.Dataset{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(ds)
}
