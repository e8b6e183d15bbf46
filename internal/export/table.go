// Package export renders the rows loaded in a view as spreadsheet or PDF downloads.
package export

import (
	"cmp"
	"slices"
)

// Table is a rendered grid of strings with a header row.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// Column extracts one cell from a row.
type Column[T any] struct {
	Title string
	Value func(T) string
}

// Build renders rows through columns.
func Build[T any](title string, columns []Column[T], rows []T) Table {
	t := Table{Title: title, Columns: make([]string, len(columns)), Rows: make([][]string, 0, len(rows))}
	for i, c := range columns {
		t.Columns[i] = c.Title
	}
	for _, r := range rows {
		line := make([]string, len(columns))
		for i, c := range columns {
			line[i] = c.Value(r)
		}
		t.Rows = append(t.Rows, line)
	}
	return t
}

// Count is one bucket of a summary.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// CountBy groups rows by key, largest bucket first, ties by key. Empty keys count as "unknown".
func CountBy[T any](rows []T, key func(T) string) []Count {
	counts := map[string]int{}
	for _, r := range rows {
		k := key(r)
		if k == "" {
			k = "unknown"
		}
		counts[k]++
	}
	out := make([]Count, 0, len(counts))
	for k, n := range counts {
		out = append(out, Count{Key: k, Count: n})
	}
	slices.SortFunc(out, func(a, b Count) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return out
}
