package dataset

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// DefaultKeyColumn is the column every table must carry and that always comes
// first. The fixture loader treats the first value of a row as its identity,
// so it must never be empty.
const DefaultKeyColumn = "uid"

// ErrMissingKeyColumn is returned when a table has no key column after one of
// its records was added.
var ErrMissingKeyColumn = errors.New("missing key column")

// KeyColumnError identifies the record that left its table without a key
// column.
type KeyColumnError struct {
	Table  string
	Key    string
	Offset int64
}

// Error formats the error with the table and record position.
func (e *KeyColumnError) Error() string {
	return fmt.Sprintf("table %q has no %q column after the record at position %d", e.Table, e.Key, e.Offset)
}

// Unwrap exposes ErrMissingKeyColumn.
func (e *KeyColumnError) Unwrap() error {
	return ErrMissingKeyColumn
}

// Table is the aggregation of all records sharing a table name.
type Table struct {
	// Name is the table name.
	Name string
	// Columns holds the distinct cell names of all rows, in first-seen order,
	// with the key column at index 0.
	Columns []string
	// Rows holds indices into the owning Set's entries, in document order.
	Rows []int

	known map[string]struct{}
}

func newTable(name string) *Table {
	return &Table{
		Name:  name,
		known: make(map[string]struct{}),
	}
}

// add unions the entry's cells into the columns, moves the key column to the
// front and records the entry index.
//
// The key lookup runs against the accumulated columns, not the entry's own
// cells: a record without a key is accepted once an earlier record of the
// same table supplied one.
func (t *Table) add(entry Entry, index int, key string) error {
	for _, cell := range entry.names {
		if _, ok := t.known[cell]; ok {
			continue
		}
		t.known[cell] = struct{}{}
		t.Columns = append(t.Columns, cell)
	}

	position := 0
	if len(t.Columns) == 0 || t.Columns[0] != key {
		position = lo.IndexOf(t.Columns, key)
	}
	if position < 0 {
		return &KeyColumnError{Table: t.Name, Key: key, Offset: entry.Offset}
	}
	if position != 0 {
		t.Columns[0], t.Columns[position] = t.Columns[position], t.Columns[0]
	}

	t.Rows = append(t.Rows, index)
	return nil
}
