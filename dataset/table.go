// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset provides the immutable character table, its loader
// from delimited text, and index views for filtering and sorting it.
package dataset

import "slices"

// Table is an ordered, immutable collection of [Row]s, in the order
// they appear in the source data. All accessors return copies.
// Use [Table.View] to filter and sort without modifying the table.
type Table struct {

	// Source is the file the table was read from, if any.
	Source string

	rows     []Row
	warnings []CoercionWarning
	dropped  int
}

// NewTable returns a new table with a copy of the given rows.
func NewTable(rows ...Row) *Table {
	return &Table{rows: slices.Clone(rows)}
}

// NumRows returns the number of rows.
func (dt *Table) NumRows() int {
	return len(dt.rows)
}

// Row returns a copy of the row at the given index.
func (dt *Table) Row(i int) Row {
	return dt.rows[i]
}

// Rows returns a copy of all rows.
func (dt *Table) Rows() []Row {
	return slices.Clone(dt.rows)
}

// Warnings returns the numeric values that could not be parsed
// when the table was loaded.
func (dt *Table) Warnings() []CoercionWarning {
	return slices.Clone(dt.warnings)
}

// Dropped returns the number of source rows that were dropped
// when the table was loaded because they lacked a name or popularity.
func (dt *Table) Dropped() int {
	return dt.dropped
}

// View returns a new sequential [View] of all rows of the table.
func (dt *Table) View() *View {
	ix := make([]int, len(dt.rows))
	for i := range ix {
		ix[i] = i
	}
	return &View{Table: dt, Indexes: ix}
}

// View is a list of row indexes into a [Table], in view order.
// Filter, sort and head operations change only the indexes,
// never the table.
type View struct {
	Table   *Table
	Indexes []int
}

// NumRows returns the number of rows in the view.
func (ix *View) NumRows() int {
	return len(ix.Indexes)
}

// Row returns a copy of the row at the given view index.
func (ix *View) Row(i int) Row {
	return ix.Table.Row(ix.Indexes[i])
}

// Rows returns copies of the rows in view order.
func (ix *View) Rows() []Row {
	rs := make([]Row, len(ix.Indexes))
	for i := range ix.Indexes {
		rs[i] = ix.Row(i)
	}
	return rs
}

// Clone returns a copy of the view with its own indexes.
func (ix *View) Clone() *View {
	return &View{Table: ix.Table, Indexes: slices.Clone(ix.Indexes)}
}

// Filter removes the rows for which the given function returns false,
// keeping the order of the others. It returns the view for chaining.
func (ix *View) Filter(filterer func(r Row) bool) *View {
	ix.Indexes = slices.DeleteFunc(ix.Indexes, func(ri int) bool {
		return !filterer(ix.Table.rows[ri])
	})
	return ix
}

// SortStableFunc stably sorts the view using the given compare function,
// which should return a negative number when a < b, a positive
// number when a > b and zero when a == b.
// It is *essential* that it always returns 0 when the two are equal
// for the stable function to actually work.
func (ix *View) SortStableFunc(cmp func(a, b Row) int) *View {
	slices.SortStableFunc(ix.Indexes, func(a, b int) int {
		return cmp(ix.Table.rows[a], ix.Table.rows[b])
	})
	return ix
}

// Head keeps only the first n rows of the view, or all of them
// if there are fewer than n.
func (ix *View) Head(n int) *View {
	if n < len(ix.Indexes) {
		ix.Indexes = ix.Indexes[:max(n, 0)]
	}
	return ix
}

// Floats returns the present values of the given field in view order,
// skipping missing ones.
func (ix *View) Floats(field func(r Row) Float) []float64 {
	vs := make([]float64, 0, len(ix.Indexes))
	for _, ri := range ix.Indexes {
		if v, ok := field(ix.Table.rows[ri]).Get(); ok {
			vs = append(vs, v)
		}
	}
	return vs
}
