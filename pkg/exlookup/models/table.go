package models

// Row maps column names to cells.
type Row map[string]Cell

// Table is the in-memory form of one sheet (or one merge result): an ordered
// list of unique column names plus ordered rows. Every row holds a cell for
// every declared column; column order is meaningful for join-key inference.
type Table struct {
	Columns []string
	Rows    []Row
}

// New returns an empty table with the given column order.
func New(columns []string) *Table {
	return &Table{Columns: columns}
}

// HasColumn reports whether name is a declared column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AppendRow adds a row, padding undeclared columns with the missing marker
// so the row-covers-all-columns invariant holds.
func (t *Table) AppendRow(row Row) {
	for _, c := range t.Columns {
		if _, ok := row[c]; !ok {
			row[c] = Missing()
		}
	}
	t.Rows = append(t.Rows, row)
}

// Records renders every row in order, substituting placeholder for missing
// cells. The result is never nil.
func (t *Table) Records(placeholder string) []Record {
	records := make([]Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(Record, len(t.Columns))
		for _, c := range t.Columns {
			rec[c] = row[c].Render(placeholder)
		}
		records = append(records, rec)
	}
	return records
}
