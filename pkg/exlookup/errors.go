package exlookup

import (
	"fmt"
)

// ConfigError reports an invalid option combination, detected before any
// file I/O.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid options: " + e.Reason
}

// SourceReadError reports a spreadsheet that could not be opened or a sheet
// that could not be read.
type SourceReadError struct {
	File  string
	Sheet string
	Err   error
}

func (e *SourceReadError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("reading sheet %q from %s: %v", e.Sheet, e.File, e.Err)
	}
	return fmt.Sprintf("opening %s: %v", e.File, e.Err)
}

func (e *SourceReadError) Unwrap() error {
	return e.Err
}

// MergeError reports a join that cannot be performed: a requested key is
// absent from an operand, or no common columns exist to infer keys from.
type MergeError struct {
	// Key is the offending join key; empty when no common columns exist.
	Key string
	// Columns lists the columns of the operand that lacks the key.
	Columns []string
}

func (e *MergeError) Error() string {
	if e.Key == "" {
		return "merge: no common columns to join on"
	}
	return fmt.Sprintf("merge: join key %q not found in columns %v", e.Key, e.Columns)
}

// MissingColumnError reports a filter column absent from the table.
type MissingColumnError struct {
	Column  string
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("filter column %q not found in %v", e.Column, e.Columns)
}
