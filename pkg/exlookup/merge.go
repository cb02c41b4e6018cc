package exlookup

import (
	"strconv"
	"strings"

	"github.com/heynesit/exlookup-go/pkg/exlookup/models"
)

// JoinSpec describes how tables are merged: the join type plus optional
// explicit join-key columns. Keys must be empty for cross joins.
type JoinSpec struct {
	Type JoinType
	Keys []string
}

// Merge folds the tables left to right with pairwise joins. A single table
// is returned unchanged (the spec is still checked). When spec.Keys is
// unset, each pairwise join infers its keys from the columns common to both
// operands, in the left operand's column order; when set, the named columns
// are used for every pairwise join and must exist in both operands.
//
// Each pairwise join indexes one side by key, so the cost is linear in the
// operand sizes plus the output size.
func Merge(tables []*models.Table, spec JoinSpec) (*models.Table, error) {
	typ := spec.Type
	if typ == "" {
		typ = JoinLeft
	}
	if typ == JoinCross && len(spec.Keys) > 0 {
		return nil, &ConfigError{Reason: "join type cross and explicit join keys are mutually exclusive"}
	}
	if len(tables) == 0 {
		return nil, &ConfigError{Reason: "no tables to merge"}
	}

	out := tables[0]
	for _, right := range tables[1:] {
		var err error
		out, err = joinPair(out, right, typ, spec.Keys)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// joinPair joins two tables. Output columns are the left columns followed by
// the right non-key columns in their original order; non-key columns present
// on both sides are disambiguated with the _x (left) and _y (right) suffixes.
func joinPair(left, right *models.Table, typ JoinType, explicit []string) (*models.Table, error) {
	var keys []string
	if typ != JoinCross {
		var err error
		keys, err = resolveKeys(left, right, explicit)
		if err != nil {
			return nil, err
		}
	}

	keySet := make(map[string]bool, len(keys))
	for _, k := range keys {
		keySet[k] = true
	}
	leftOut, rightOut, columns := outputNames(left, right, keySet)
	out := models.New(columns)

	combine := func(lrow, rrow models.Row) {
		row := make(models.Row, len(columns))
		if lrow != nil {
			for _, c := range left.Columns {
				row[leftOut[c]] = lrow[c]
			}
		} else {
			// Right-only row: key columns carry the right side's values.
			for _, k := range keys {
				row[k] = rrow[k]
			}
		}
		if rrow != nil {
			for _, c := range right.Columns {
				if keySet[c] {
					continue
				}
				row[rightOut[c]] = rrow[c]
			}
		}
		out.AppendRow(row)
	}

	switch typ {
	case JoinCross:
		for _, lrow := range left.Rows {
			for _, rrow := range right.Rows {
				combine(lrow, rrow)
			}
		}

	case JoinRight:
		idx := indexRows(left, keys)
		for _, rrow := range right.Rows {
			matches := idx[joinKey(rrow, keys)]
			if len(matches) == 0 {
				combine(nil, rrow)
				continue
			}
			for _, li := range matches {
				combine(left.Rows[li], rrow)
			}
		}

	default: // left, inner, outer
		idx := indexRows(right, keys)
		matched := make([]bool, len(right.Rows))
		for _, lrow := range left.Rows {
			matches := idx[joinKey(lrow, keys)]
			if len(matches) == 0 {
				if typ == JoinInner {
					continue
				}
				combine(lrow, nil)
				continue
			}
			for _, ri := range matches {
				matched[ri] = true
				combine(lrow, right.Rows[ri])
			}
		}
		if typ == JoinOuter {
			for ri, rrow := range right.Rows {
				if !matched[ri] {
					combine(nil, rrow)
				}
			}
		}
	}

	return out, nil
}

// resolveKeys picks the effective join keys for one pairwise join.
func resolveKeys(left, right *models.Table, explicit []string) ([]string, error) {
	if len(explicit) > 0 {
		for _, k := range explicit {
			if !left.HasColumn(k) {
				return nil, &MergeError{Key: k, Columns: left.Columns}
			}
			if !right.HasColumn(k) {
				return nil, &MergeError{Key: k, Columns: right.Columns}
			}
		}
		return explicit, nil
	}

	var keys []string
	for _, c := range left.Columns {
		if right.HasColumn(c) {
			keys = append(keys, c)
		}
	}
	if len(keys) == 0 {
		return nil, &MergeError{}
	}
	return keys, nil
}

// outputNames assigns output column names for both operands and returns the
// combined column order.
func outputNames(left, right *models.Table, keySet map[string]bool) (leftOut, rightOut map[string]string, columns []string) {
	inLeft := make(map[string]bool, len(left.Columns))
	for _, c := range left.Columns {
		inLeft[c] = true
	}
	inRight := make(map[string]bool, len(right.Columns))
	for _, c := range right.Columns {
		inRight[c] = true
	}

	leftOut = make(map[string]string, len(left.Columns))
	for _, c := range left.Columns {
		name := c
		if !keySet[c] && inRight[c] {
			name = c + "_x"
		}
		leftOut[c] = name
		columns = append(columns, name)
	}

	rightOut = make(map[string]string, len(right.Columns))
	for _, c := range right.Columns {
		if keySet[c] {
			continue
		}
		name := c
		if inLeft[c] {
			name = c + "_y"
		}
		rightOut[c] = name
		columns = append(columns, name)
	}

	return leftOut, rightOut, columns
}

// indexRows builds a key -> row index lookup preserving row order per key.
func indexRows(t *models.Table, keys []string) map[string][]int {
	idx := make(map[string][]int, len(t.Rows))
	for i, row := range t.Rows {
		k := joinKey(row, keys)
		idx[k] = append(idx[k], i)
	}
	return idx
}

// joinKey encodes a row's key cells. Present values are quoted so they can
// never collide with the bare missing token; missing key cells compare equal
// to each other.
func joinKey(row models.Row, keys []string) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		if v, ok := row[k].Value(); ok {
			parts[i] = strconv.Quote(v)
		} else {
			parts[i] = "?"
		}
	}
	return strings.Join(parts, ",")
}
