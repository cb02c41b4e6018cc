package exlookup

import (
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/heynesit/exlookup-go/pkg/exlookup/models"
	"github.com/heynesit/exlookup-go/pkg/exlookup/parser"
)

// Lookup reads the requested sheets from the spreadsheet at path, merges
// them, and returns one record per surviving row. Stages run in a fixed
// order: validate options, load and normalize each sheet, merge, project,
// filter, emit.
//
// An empty final result is not an error: Lookup returns an empty, non-nil
// slice and logs a warning. Every failure aborts the remaining stages;
// partial results are never returned alongside an error.
func Lookup(path string, opts Options) ([]models.Record, error) {
	logger := opts.logger()

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("lookup parameters",
		slog.String("file", path),
		slog.Any("sheets", opts.Sheets),
		slog.String("join_type", string(opts.joinType())),
		slog.Any("join_on", opts.JoinOn))

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &SourceReadError{File: path, Err: err}
	}
	defer f.Close()

	tables := make([]*models.Table, 0, len(opts.Sheets))
	for _, sheet := range opts.Sheets {
		t, err := parser.ExtractTable(f, sheet, opts.substitution())
		if err != nil {
			return nil, &SourceReadError{File: path, Sheet: sheet, Err: err}
		}
		if opts.ShouldTrim() {
			Normalize(t)
		}
		logger.Debug("sheet loaded",
			slog.String("sheet", sheet),
			slog.Any("columns", t.Columns),
			slog.Int("rows", len(t.Rows)))
		tables = append(tables, t)
	}

	merged, err := Merge(tables, JoinSpec{Type: opts.joinType(), Keys: opts.JoinOn})
	if err != nil {
		return nil, err
	}
	logger.Debug("tables merged",
		slog.Any("columns", merged.Columns),
		slog.Int("rows", len(merged.Rows)))

	Project(merged, opts.Columns, opts.FilterColumn)

	spec := FilterSpec{
		Column:  opts.FilterColumn,
		Match:   opts.Filter,
		Partial: opts.FilterPartialMatch,
	}
	if err := Filter(merged, spec, opts.placeholder()); err != nil {
		return nil, err
	}

	records := merged.Records(opts.placeholder())
	if len(records) == 0 {
		logger.Warn("no data rows left to return, review filters and source data",
			slog.String("file", path))
	}
	return records, nil
}

// LookupSheet reads a single named sheet. It is shorthand for Lookup with
// opts.Sheets set to just that sheet.
func LookupSheet(path, sheet string, opts Options) ([]models.Record, error) {
	opts.Sheets = []string{sheet}
	return Lookup(path, opts)
}
