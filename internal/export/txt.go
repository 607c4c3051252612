package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"fakegen/internal/dataset"
)

// writeTXT renders the dataset as a column-aligned text block: a header line
// followed by one line per record, no row indices. Widths are computed in
// display cells so non-Latin scripts line up.
func writeTXT(w io.Writer, ds dataset.Dataset) error {
	rows := make([][]string, 0, len(ds)+1)
	rows = append(rows, dataset.Header)
	for _, rec := range ds {
		rows = append(rows, rec.Row())
	}

	widths := make([]int, len(dataset.Header))
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	for _, row := range rows {
		parts := make([]string, len(row))
		for i, cell := range row {
			// The numeric id column is right-aligned, everything else left.
			if i == 0 {
				parts[i] = padLeft(cell, widths[i])
			} else {
				parts[i] = padRight(cell, widths[i])
			}
		}
		line := strings.TrimRight(strings.Join(parts, "  "), " ")
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func padLeft(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}

func padRight(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
