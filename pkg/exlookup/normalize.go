package exlookup

import (
	"strings"

	"github.com/heynesit/exlookup-go/pkg/exlookup/models"
)

// Normalize strips leading and trailing whitespace from column names and
// from present cell values, in place. Missing cells pass through untouched.
// Row and column counts are preserved, and normalizing twice yields the
// same table as normalizing once.
func Normalize(t *models.Table) {
	renamed := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		renamed[i] = strings.TrimSpace(c)
	}

	for _, row := range t.Rows {
		for i, old := range t.Columns {
			cell := row[old]
			if v, ok := cell.Value(); ok {
				cell = models.String(strings.TrimSpace(v))
			}
			if renamed[i] != old {
				delete(row, old)
			}
			row[renamed[i]] = cell
		}
	}

	t.Columns = renamed
}
