// Package report aggregates evaluation results into tables and exports
// them to a workbook or the console.
package report

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"gonum.org/v1/gonum/stat"
)

// DefaultSummaryLabel marks the appended average row.
const DefaultSummaryLabel = "Overall Average"

// Table is an ordered set of named columns with heterogeneous cell values.
// Cells are ints, float64s or strings.
type Table struct {
	Columns []string
	Rows    [][]any
}

// NewTable creates an empty table with the given column names.
func NewTable(columns ...string) *Table {
	return &Table{Columns: columns}
}

// Append adds one row. The caller supplies exactly one cell per column.
func (t *Table) Append(cells ...any) {
	t.Rows = append(t.Rows, cells)
}

// Summarize appends one row holding the column-wise arithmetic mean of
// every numeric column. The first column receives the label instead of a
// mean; columns containing any non-numeric cell are left empty.
func (t *Table) Summarize(label string) {
	if label == "" {
		label = DefaultSummaryLabel
	}
	row := make([]any, len(t.Columns))
	for c := range t.Columns {
		if c == 0 {
			row[c] = label
			continue
		}
		values := t.numericColumn(c)
		if values == nil {
			row[c] = ""
			continue
		}
		row[c] = stat.Mean(values, nil)
	}
	t.Rows = append(t.Rows, row)
}

// numericColumn returns column c as float64s, or nil when the table is
// empty or any cell in the column is not a number.
func (t *Table) numericColumn(c int) []float64 {
	if len(t.Rows) == 0 {
		return nil
	}
	values := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		switch v := row[c].(type) {
		case int:
			values = append(values, float64(v))
		case float64:
			values = append(values, v)
		default:
			return nil
		}
	}
	return values
}

// Render formats the table for console output.
func (t *Table) Render() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(t.Columns))
	for i, name := range t.Columns {
		header[i] = name
	}
	tw.AppendHeader(header)

	for _, cells := range t.Rows {
		row := make(table.Row, len(cells))
		for i, cell := range cells {
			if f, ok := cell.(float64); ok {
				row[i] = strconv.FormatFloat(f, 'f', 4, 64)
			} else {
				row[i] = cell
			}
		}
		tw.AppendRow(row)
	}
	return tw.Render()
}
