// Package parser reads spreadsheet sheets into tables.
package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/heynesit/exlookup-go/pkg/exlookup/models"
)

// ExtractTable reads the named sheet into a Table. The first row supplies
// the column names; every following row becomes a data row. All cells are
// read as strings. Empty cells become a present emptyValue when emptyValue
// is non-empty, otherwise the missing marker.
//
// Column names are made unique: an empty header cell is named "Unnamed: N"
// by position, and a repeated name gets a ".1", ".2", ... suffix. Cells to
// the right of the header are dropped; short rows are padded.
func ExtractTable(f *excelize.File, sheetName, emptyValue string) (*models.Table, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return models.New(nil), nil
	}

	columns := headerNames(rows[0])
	t := models.New(columns)

	for _, raw := range rows[1:] {
		row := make(models.Row, len(columns))
		for i, name := range columns {
			switch {
			case i < len(raw) && raw[i] != "":
				row[name] = models.String(raw[i])
			case emptyValue != "":
				row[name] = models.String(emptyValue)
			default:
				row[name] = models.Missing()
			}
		}
		t.AppendRow(row)
	}

	return t, nil
}

// headerNames turns a header row into unique column names.
func headerNames(header []string) []string {
	columns := make([]string, len(header))
	counts := make(map[string]int, len(header))

	for i, name := range header {
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		base := name
		for counts[name] > 0 {
			name = fmt.Sprintf("%s.%d", base, counts[base])
			counts[base]++
		}
		counts[name]++
		columns[i] = name
	}

	return columns
}
