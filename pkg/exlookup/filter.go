package exlookup

import (
	"strings"

	"github.com/heynesit/exlookup-go/pkg/exlookup/models"
)

// FilterSpec names the column a row filter runs against, the text to match,
// and whether a substring match is enough.
type FilterSpec struct {
	Column  string
	Match   string
	Partial bool
}

// Filter removes rows whose cell in spec.Column does not match spec.Match,
// in place, preserving the relative order of the surviving rows. It is a
// no-op unless both spec.Match and spec.Column are set. Missing cells are
// compared through their rendered placeholder form.
func Filter(t *models.Table, spec FilterSpec, placeholder string) error {
	if spec.Match == "" || spec.Column == "" {
		return nil
	}
	if !t.HasColumn(spec.Column) {
		return &MissingColumnError{Column: spec.Column, Columns: t.Columns}
	}

	kept := t.Rows[:0]
	for _, row := range t.Rows {
		cell := row[spec.Column].Render(placeholder)
		if spec.Partial && strings.Contains(cell, spec.Match) ||
			!spec.Partial && cell == spec.Match {
			kept = append(kept, row)
		}
	}
	t.Rows = kept
	return nil
}
