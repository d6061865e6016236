// Package table holds ordered, named numeric columns parsed from CSV.
// Missing cells are NaN, matching the rescale package convention.
package table

import (
	"fmt"

	"github.com/datakit-labs/tidescale/internal/rescale"
)

type Column struct {
	Name   string
	Values []float64
}

// Table is a set of equal-length columns in file order.
type Table struct {
	Columns []Column
}

// ColumnSummary pairs a column name with its summary statistics.
type ColumnSummary struct {
	Name string
	rescale.Summary
}

func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

func (t *Table) NumCols() int {
	return len(t.Columns)
}

// Column returns the named column, or false when it does not exist.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// Apply rewrites the named columns through fn. With no names it rewrites
// every column. fn must return a slice of the same length.
func (t *Table) Apply(fn func([]float64) []float64, names ...string) error {
	if len(names) == 0 {
		for i := range t.Columns {
			names = append(names, t.Columns[i].Name)
		}
	}

	for _, name := range names {
		col, ok := t.Column(name)
		if !ok {
			return fmt.Errorf("apply: no column named %q", name)
		}

		out := fn(col.Values)
		if len(out) != len(col.Values) {
			return fmt.Errorf("apply: column %q: transform returned %d values, want %d",
				name, len(out), len(col.Values))
		}
		col.Values = out
	}

	return nil
}

// Summaries computes per-column summary statistics in column order.
func (t *Table) Summaries() []ColumnSummary {
	summaries := make([]ColumnSummary, 0, len(t.Columns))
	for i := range t.Columns {
		summaries = append(summaries, ColumnSummary{
			Name:    t.Columns[i].Name,
			Summary: rescale.Summarize(t.Columns[i].Values),
		})
	}
	return summaries
}
