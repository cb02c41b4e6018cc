package exlookup

import (
	"github.com/heynesit/exlookup-go/pkg/exlookup/models"
)

// miss marks a missing cell in test fixtures.
const miss = "\x00"

// makeTable builds a table from column names and row value slices. A miss
// value (or an absent trailing value) becomes the missing marker.
func makeTable(columns []string, rows ...[]string) *models.Table {
	t := models.New(columns)
	for _, r := range rows {
		row := make(models.Row, len(columns))
		for i, c := range columns {
			if i < len(r) && r[i] != miss {
				row[c] = models.String(r[i])
			}
		}
		t.AppendRow(row)
	}
	return t
}

// renderRows renders every row in column order with "NaN" for missing cells,
// which keeps equality assertions on join results readable.
func renderRows(t *models.Table) [][]string {
	out := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rendered := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			rendered[i] = row[c].Render("NaN")
		}
		out = append(out, rendered)
	}
	return out
}
