// Package dataset groups table records read from a fixture document into
// rectangular tables.
//
// The reader produces one Entry per XML record. Aggregate stores those entries
// in a single arena owned by the resulting Set; each Table only keeps indices
// into that arena, so the tables never outlive or copy the records they
// describe.
package dataset

import "slices"

// Entry is one table record: the table name and its cell values.
//
// Cells keep the order in which they first appeared in the record, which is
// what drives the column order of the table the entry joins.
type Entry struct {
	// Name is the table the record belongs to.
	Name string
	// Offset is the byte position of the record's start tag in the input.
	Offset int64

	names  []string
	values map[string]string
}

// NewEntry creates an entry for the table name found at offset.
func NewEntry(name string, offset int64) Entry {
	return Entry{
		Name:   name,
		Offset: offset,
		values: make(map[string]string),
	}
}

// Set stores the value of a cell. When the cell already exists its value is
// overwritten, its position is kept, and Set reports true.
func (e *Entry) Set(cell, value string) (replaced bool) {
	if e.values == nil {
		e.values = make(map[string]string)
	}
	if _, ok := e.values[cell]; ok {
		e.values[cell] = value
		return true
	}
	e.names = append(e.names, cell)
	e.values[cell] = value
	return false
}

// Value returns the value of a cell and whether the entry has it.
func (e Entry) Value(cell string) (string, bool) {
	v, ok := e.values[cell]
	return v, ok
}

// Cells returns the cell names in first-seen order.
func (e Entry) Cells() []string {
	return slices.Clone(e.names)
}

// Len returns the number of distinct cells.
func (e Entry) Len() int {
	return len(e.names)
}
