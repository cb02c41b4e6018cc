// Package exlookup reads tabular data from spreadsheet sheets, merges the
// sheets with relational join semantics, and returns flat string records.
package exlookup

import (
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
)

// JoinType selects the relational join used when merging sheets.
type JoinType string

const (
	// JoinLeft keeps every left row, padding unmatched right columns.
	JoinLeft JoinType = "left"
	// JoinRight keeps every right row, padding unmatched left columns.
	JoinRight JoinType = "right"
	// JoinOuter keeps rows from both sides.
	JoinOuter JoinType = "outer"
	// JoinInner keeps only rows whose key values match on both sides.
	JoinInner JoinType = "inner"
	// JoinCross produces the Cartesian product; no join keys are used.
	JoinCross JoinType = "cross"
)

// DefaultMissing is the placeholder rendered for missing cells when
// EmptyValue is unset.
const DefaultMissing = "NaN"

// Options configures a lookup.
type Options struct {
	// Sheets lists the sheet names to read, in merge order. The order
	// fixes join-key inference precedence and the left-associative merge
	// order. At least one sheet is required.
	Sheets []string `validate:"min=1,dive,required"`

	// Columns restricts the returned columns. Empty keeps all columns.
	// FilterColumn is always retained, even when omitted here.
	Columns []string

	// FilterColumn is the column FilterText is matched against.
	FilterColumn string

	// Filter is the text to match. Filtering only happens when both
	// Filter and FilterColumn are set.
	Filter string

	// FilterPartialMatch keeps rows containing Filter as a substring
	// instead of requiring an exact match.
	FilterPartialMatch bool

	// JoinType defaults to left.
	JoinType JoinType `validate:"omitempty,oneof=left right outer inner cross"`

	// JoinOn names the join-key columns. Unset infers the columns common
	// to both operands, in the left operand's column order. Mutually
	// exclusive with JoinCross.
	JoinOn []string

	// Trim strips leading and trailing whitespace from column names and
	// cell values. Defaults to true.
	Trim *bool

	// EmptyValue is returned for empty cells. Defaults to "NaN". Any
	// value other than "nan" (case-insensitive) is substituted into
	// empty cells as a literal string at load time; "nan" leaves them as
	// the missing marker.
	EmptyValue string

	// Logger receives diagnostic output. Nil uses slog.Default().
	Logger *slog.Logger `validate:"-"`
}

// DefaultOptions returns the option defaults made explicit.
func DefaultOptions() Options {
	trim := true
	return Options{
		JoinType:   JoinLeft,
		Trim:       &trim,
		EmptyValue: DefaultMissing,
	}
}

var optionsValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the option set. It runs before any file is opened, so an
// invalid combination never costs I/O.
func (o Options) Validate() error {
	if o.joinType() == JoinCross && len(o.JoinOn) > 0 {
		return &ConfigError{Reason: "join type cross and explicit join keys are mutually exclusive"}
	}
	if err := optionsValidator.Struct(o); err != nil {
		return &ConfigError{Reason: err.Error()}
	}
	return nil
}

// ShouldTrim reports whether whitespace trimming is enabled.
func (o Options) ShouldTrim() bool {
	if o.Trim != nil {
		return *o.Trim
	}
	return true
}

// joinType resolves the effective join type.
func (o Options) joinType() JoinType {
	if o.JoinType == "" {
		return JoinLeft
	}
	return o.JoinType
}

// placeholder resolves the string rendered for missing cells.
func (o Options) placeholder() string {
	if o.EmptyValue == "" {
		return DefaultMissing
	}
	return o.EmptyValue
}

// substitution returns the value written into empty source cells at load
// time, or "" when empty cells should stay missing.
func (o Options) substitution() string {
	p := o.placeholder()
	if strings.EqualFold(p, "nan") {
		return ""
	}
	return p
}

// logger resolves the diagnostic logger.
func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
