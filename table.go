package main

import "fmt"

// DataTable is the in-memory dataset: named columns over rows of raw CSV cells.
// It is immutable after load; filtering produces Views (index lists) on top of it.
type DataTable struct {
	Headers []string
	Rows    [][]string
}

func NewDataTable(headers []string) *DataTable {
	return &DataTable{Headers: headers}
}

func (t *DataTable) NumRows() int {
	return len(t.Rows)
}

func (t *DataTable) AddRow(row []string) error {
	if len(row) != len(t.Headers) {
		return fmt.Errorf("row length %d does not match columns length %d", len(row), len(t.Headers))
	}
	t.Rows = append(t.Rows, row)
	return nil
}

// ColumnIndex returns the position of a named column, -1 if absent.
func (t *DataTable) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Column returns all cell values of a named column in row order.
func (t *DataTable) Column(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values
}

// View is a row selection over a DataTable. Cell data is never copied,
// a view only holds indices into the parent table.
type View struct {
	Table *DataTable
	rows  []int
}

// FullView returns a view over every row of the table.
func FullView(t *DataTable) View {
	rows := make([]int, len(t.Rows))
	for i := range rows {
		rows[i] = i
	}
	return View{Table: t, rows: rows}
}

// SelectView returns a view over the given row indices.
func SelectView(t *DataTable, rows []int) View {
	return View{Table: t, rows: rows}
}

func (v View) Len() int {
	return len(v.rows)
}

// Row returns the underlying table row for view position i.
func (v View) Row(i int) []string {
	return v.Table.Rows[v.rows[i]]
}

// Cell returns the value at view position i for the given column index.
func (v View) Cell(i, col int) string {
	return v.Table.Rows[v.rows[i]][col]
}

// Column returns the column values visible through the view.
func (v View) Column(name string) []string {
	idx := v.Table.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	values := make([]string, len(v.rows))
	for i, r := range v.rows {
		values[i] = v.Table.Rows[r][idx]
	}
	return values
}
