package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeSheet authors a single-sheet workbook in a temp dir and reopens it.
func writeSheet(t *testing.T, rows [][]interface{}) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	f2, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { f2.Close() })
	return f2
}

func TestExtractTable(t *testing.T) {
	f := writeSheet(t, [][]interface{}{
		{"env", "name", "ip"},
		{"deva", "deva-dcb-123t", "1.1.1.1"},
		{"devb", "abc-dcb-223t", "1.2.1.1"},
	})

	tbl, err := ExtractTable(f, "Sheet1", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"env", "name", "ip"}, tbl.Columns)
	require.Len(t, tbl.Rows, 2)

	v, ok := tbl.Rows[0]["ip"].Value()
	assert.True(t, ok)
	assert.Equal(t, "1.1.1.1", v)
	v, ok = tbl.Rows[1]["env"].Value()
	assert.True(t, ok)
	assert.Equal(t, "devb", v)
}

func TestExtractTableEmptyCells(t *testing.T) {
	rows := [][]interface{}{
		{"a", "b"},
		{"1", nil},
		{nil, "2"},
	}

	t.Run("missing mode", func(t *testing.T) {
		f := writeSheet(t, rows)
		tbl, err := ExtractTable(f, "Sheet1", "")
		require.NoError(t, err)

		require.Len(t, tbl.Rows, 2)
		assert.False(t, tbl.Rows[0]["b"].Present())
		assert.False(t, tbl.Rows[1]["a"].Present())
	})

	t.Run("placeholder substitution", func(t *testing.T) {
		f := writeSheet(t, rows)
		tbl, err := ExtractTable(f, "Sheet1", "-")
		require.NoError(t, err)

		require.Len(t, tbl.Rows, 2)
		v, ok := tbl.Rows[0]["b"].Value()
		assert.True(t, ok)
		assert.Equal(t, "-", v)
	})
}

func TestExtractTableHeaderNaming(t *testing.T) {
	f := writeSheet(t, [][]interface{}{
		{"env", nil, "env", "ip"},
		{"deva", "x", "devb", "1.1.1.1"},
	})

	tbl, err := ExtractTable(f, "Sheet1", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"env", "Unnamed: 1", "env.1", "ip"}, tbl.Columns)
	v, _ := tbl.Rows[0]["env.1"].Value()
	assert.Equal(t, "devb", v)
}

func TestExtractTableShortAndLongRows(t *testing.T) {
	f := writeSheet(t, [][]interface{}{
		{"a", "b"},
		{"1"},
		{"2", "3", "dropped"},
	})

	tbl, err := ExtractTable(f, "Sheet1", "")
	require.NoError(t, err)

	require.Len(t, tbl.Rows, 2)
	assert.False(t, tbl.Rows[0]["b"].Present())
	assert.Len(t, tbl.Rows[1], 2)
}

func TestExtractTableSheetNotFound(t *testing.T) {
	f := writeSheet(t, [][]interface{}{{"a"}})

	_, err := ExtractTable(f, "NoSuchSheet", "")
	assert.Error(t, err)
}

func TestHeaderNames(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		want   []string
	}{
		{"plain", []string{"a", "b"}, []string{"a", "b"}},
		{"empty cells", []string{"", "b", ""}, []string{"Unnamed: 0", "b", "Unnamed: 2"}},
		{"duplicates", []string{"a", "a", "a"}, []string{"a", "a.1", "a.2"}},
		{"duplicate of generated name", []string{"a", "a.1", "a"}, []string{"a", "a.1", "a.2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, headerNames(tt.header))
		})
	}
}
