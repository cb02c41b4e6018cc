// Package main provides the CLI entry point for exlookup-go.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heynesit/exlookup-go/pkg/exlookup"
	"github.com/heynesit/exlookup-go/pkg/exlookup/output"
)

var (
	sheets     []string
	cols       []string
	filterText string
	filterCol  string
	partial    bool
	joinType   string
	joinOn     []string
	trim       bool
	emptyValue string
	outputPath string
	pretty     bool
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "exlookup [input.xlsx]",
		Short: "Look up records from spreadsheet sheets",
		Long: `exlookup-go reads one or more sheets from an XLSX file, merges them with
relational join semantics, applies column and row filters, and outputs the
resulting records as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringSliceVarP(&sheets, "sheet", "s", nil, "Sheet name to read (repeatable, merged in order)")
	rootCmd.Flags().StringSliceVar(&cols, "cols", nil, "Columns to return (default: all)")
	rootCmd.Flags().StringVar(&filterText, "filter", "", "Text to filter rows on")
	rootCmd.Flags().StringVar(&filterCol, "filter-col", "", "Column to filter on")
	rootCmd.Flags().BoolVarP(&partial, "partial", "p", false, "Match filter text as a substring")
	rootCmd.Flags().StringVar(&joinType, "join-type", "left", "Join type: left, right, outer, inner, cross")
	rootCmd.Flags().StringSliceVar(&joinOn, "join-on", nil, "Join-key columns (default: inferred common columns)")
	rootCmd.Flags().BoolVar(&trim, "trim", true, "Trim whitespace from column names and values")
	rootCmd.Flags().StringVar(&emptyValue, "empty-value", "NaN", "Value returned for empty cells")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline diagnostics to stderr")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := exlookup.Options{
		Sheets:             sheets,
		Columns:            cols,
		Filter:             filterText,
		FilterColumn:       filterCol,
		FilterPartialMatch: partial,
		JoinType:           exlookup.JoinType(joinType),
		JoinOn:             joinOn,
		Trim:               &trim,
		EmptyValue:         emptyValue,
		Logger:             logger,
	}

	records, err := exlookup.Lookup(inputPath, opts)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	jsonData, err := output.ToJSON(records, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	fmt.Println(string(jsonData))
	return nil
}
