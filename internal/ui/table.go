package ui

import "strings"

// Table renders rows with simple spacing alignment, no borders. Used for the
// schema and profile listings.
type Table struct {
	rows      [][]string
	colWidths []int
}

// NewTable creates a table with the given number of columns.
func NewTable(cols int) *Table {
	return &Table{colWidths: make([]int, cols)}
}

// AddRow appends a row; extra cells beyond the column count are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.colWidths))
	for i := 0; i < len(t.colWidths) && i < len(cells); i++ {
		row[i] = cells[i]
		if len(cells[i]) > t.colWidths[i] {
			t.colWidths[i] = len(cells[i])
		}
	}
	t.rows = append(t.rows, row)
}

// String renders the table, left-aligned with two spaces between columns.
func (t *Table) String() string {
	var b strings.Builder
	for _, row := range t.rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			if i < len(row)-1 {
				b.WriteString(cell)
				b.WriteString(strings.Repeat(" ", t.colWidths[i]-len(cell)))
			} else {
				b.WriteString(cell)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
