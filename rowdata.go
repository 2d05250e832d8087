// rowdata.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file defines RowData: the per-column cross-constraint pairs
// (legal label set, connected flag) that the board engine derives
// for every row/column and feeds to the row matcher. Grounded on
// original_source/lib/src/wordlist.rs's `RowData` type alias.

package skrafl

// RowCell is one column's cross-constraint: the set of labels that
// would form a legal crossing word there, and whether placing a
// letter there touches an existing tile in the crossing direction.
type RowCell struct {
	Legal     LabelSet
	Connected bool
}

// RowData is an ordered sequence of RowCell, one per column of a row
// (plus, once WithSentinel is applied, one trailing sentinel entry).
type RowData struct {
	cells []RowCell
}

// NewRowData wraps a slice of RowCell as RowData.
func NewRowData(cells []RowCell) RowData {
	return RowData{cells: append([]RowCell(nil), cells...)}
}

// Len returns the number of entries.
func (rd RowData) Len() int { return len(rd.cells) }

// At returns the entry at column i.
func (rd RowData) At(i int) RowCell { return rd.cells[i] }

// WithSentinel returns a copy with one permissive-free sentinel
// entry appended (empty legal set, not connected), matching the
// row's own right-edge sentinel cell.
func (rd RowData) WithSentinel() RowData {
	next := make([]RowCell, len(rd.cells), len(rd.cells)+1)
	copy(next, rd.cells)
	return RowData{cells: append(next, RowCell{})}
}
