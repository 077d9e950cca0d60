package dataset

import (
	"fmt"
	"strings"
)

// Column is a named, ordered sequence of cell values.
type Column struct {
	Name  string
	Cells []string
}

// Dataset is a rectangular table of named columns, all of equal length. The row and
// column counts are fixed at construction - rows are derived positionally, i.e. row i
// is the i-th cell of each column, in column order.
type Dataset struct {
	columns []Column
	rows    int
}

func New(columns ...Column) (*Dataset, error) {
	rows := 0
	if len(columns) > 0 {
		rows = len(columns[0].Cells)
	}

	index := map[string]bool{}
	for _, column := range columns {
		k := normalise(column.Name)
		if index[k] {
			return nil, fmt.Errorf("duplicate column name '%s'", column.Name)
		}

		index[k] = true

		if len(column.Cells) != rows {
			return nil, fmt.Errorf("column '%s' has %v rows, expected %v", column.Name, len(column.Cells), rows)
		}
	}

	return &Dataset{
		columns: columns,
		rows:    rows,
	}, nil
}

// Sample returns the fixed 3x3 example dataset - three columns 'a', 'b' and 'c' with
// rows (1,2,3), (1,2,3) and (1,2,3).
func Sample() *Dataset {
	dataset, _ := New(
		Column{Name: "a", Cells: []string{"1", "1", "1"}},
		Column{Name: "b", Cells: []string{"2", "2", "2"}},
		Column{Name: "c", Cells: []string{"3", "3", "3"}})

	return dataset
}

func (d *Dataset) Headers() []string {
	headers := make([]string, len(d.columns))
	for i, column := range d.columns {
		headers[i] = column.Name
	}

	return headers
}

// Rows returns the dataset as rows, derived positionally from the columns.
func (d *Dataset) Rows() [][]string {
	rows := make([][]string, d.rows)
	for i := range rows {
		row := make([]string, len(d.columns))
		for j, column := range d.columns {
			row[j] = column.Cells[i]
		}

		rows[i] = row
	}

	return rows
}

func (d *Dataset) RowCount() int {
	return d.rows
}

func (d *Dataset) ColumnCount() int {
	return len(d.columns)
}

func normalise(v string) string {
	return strings.ToLower(strings.ReplaceAll(v, " ", ""))
}
