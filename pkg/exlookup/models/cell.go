// Package models defines the tabular data structures used by exlookup.
package models

// Cell is a single table value: either a present string or the missing
// marker. The zero value is missing.
type Cell struct {
	value   string
	present bool
}

// String returns a present cell holding v.
func String(v string) Cell {
	return Cell{value: v, present: true}
}

// Missing returns the missing marker.
func Missing() Cell {
	return Cell{}
}

// Present reports whether the cell holds a value.
func (c Cell) Present() bool {
	return c.present
}

// Value returns the cell's value and whether one is present.
func (c Cell) Value() (string, bool) {
	return c.value, c.present
}

// Render returns the cell's value, or placeholder when the cell is missing.
// This is the single rendering path for filter comparisons and record output.
func (c Cell) Render(placeholder string) string {
	if c.present {
		return c.value
	}
	return placeholder
}
