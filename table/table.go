// Package table provides the indexed tabular output of the histogram
// splitter: one row per split-axis bin, carrying the bin value in the index
// column and the reduced histogram in the payload column.
package table

import "github.com/histkit/histkit/hist"

// Row is one record of a Table.
type Row struct {
	// Index is the split-axis bin value the row is indexed by.
	Index hist.BinValue

	// Hist is the reduced histogram for that bin.
	Hist *hist.Container
}

// Table is an ordered, indexed collection of rows. Row order equals the
// natural bin order of the source axis. Tables are built once and never
// mutated afterward.
type Table struct {
	indexCol string
	histCol  string
	rows     []Row
}

// New builds a table from ordered rows. indexCol and histCol name the index
// and payload fields for consumers and serializers; they do not affect row
// content. The rows slice is owned by the table after the call.
func New(indexCol, histCol string, rows []Row) *Table {
	return &Table{indexCol: indexCol, histCol: histCol, rows: rows}
}

// IndexCol returns the index field name.
func (t *Table) IndexCol() string {
	return t.indexCol
}

// HistCol returns the payload field name.
func (t *Table) HistCol() string {
	return t.histCol
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the i-th row.
func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// Rows returns the ordered rows. The slice is shared; callers must not
// modify it.
func (t *Table) Rows() []Row {
	return t.rows
}

// Index returns the ordered index column.
func (t *Table) Index() []hist.BinValue {
	index := make([]hist.BinValue, len(t.rows))
	for i, r := range t.rows {
		index[i] = r.Index
	}

	return index
}
