package exlookup

import (
	"github.com/heynesit/exlookup-go/pkg/exlookup/models"
)

// Project restricts the table to the requested columns, in place, keeping
// the table's original left-to-right order. An empty keep set leaves the
// table unchanged. alwaysKeep is retained even when absent from keep, but
// only if the table actually has it; a requested-but-missing alwaysKeep is
// silently ignored, as are requested columns the table does not have.
func Project(t *models.Table, keep []string, alwaysKeep string) {
	if len(keep) == 0 {
		return
	}

	keepSet := make(map[string]bool, len(keep)+1)
	for _, c := range keep {
		keepSet[c] = true
	}
	if alwaysKeep != "" {
		keepSet[alwaysKeep] = true
	}

	columns := make([]string, 0, len(keep)+1)
	for _, c := range t.Columns {
		if keepSet[c] {
			columns = append(columns, c)
		}
	}

	for _, row := range t.Rows {
		for c := range row {
			if !keepSet[c] {
				delete(row, c)
			}
		}
	}
	t.Columns = columns
}
