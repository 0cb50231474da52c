package dataset

import (
	"github.com/samber/lo"
)

// Set is the result of aggregating a document: the entry arena and the tables
// built on it.
type Set struct {
	key        string
	entries    []Entry
	tables     []*Table
	byName     map[string]*Table
	maxColumns int
}

// Option configures Aggregate.
type Option func(*Set)

// WithKeyColumn overrides the column forced to the front of every table.
// An empty name keeps DefaultKeyColumn.
func WithKeyColumn(name string) Option {
	return func(s *Set) {
		if name != "" {
			s.key = name
		}
	}
}

// Aggregate groups entries by table name.
//
// Grouping is by name identity, not by contiguity: a table that shows up
// again later in the document joins the group created by its first
// occurrence. Tables are kept in order of first appearance so the output is
// stable across runs. The entries slice is owned by the returned Set.
func Aggregate(entries []Entry, opts ...Option) (*Set, error) {
	s := &Set{
		key:     DefaultKeyColumn,
		entries: entries,
		byName:  make(map[string]*Table),
	}
	for _, opt := range opts {
		opt(s)
	}

	for i, entry := range s.entries {
		table, ok := s.byName[entry.Name]
		if !ok {
			table = newTable(entry.Name)
			s.byName[entry.Name] = table
			s.tables = append(s.tables, table)
		}
		if err := table.add(entry, i, s.key); err != nil {
			return nil, err
		}
	}

	s.maxColumns = lo.Max(lo.Map(s.tables, func(t *Table, _ int) int {
		return len(t.Columns)
	}))
	return s, nil
}

// KeyColumn returns the column forced to index 0.
func (s *Set) KeyColumn() string {
	return s.key
}

// Len returns the number of tables.
func (s *Set) Len() int {
	return len(s.tables)
}

// Tables returns the tables in order of first appearance.
func (s *Set) Tables() []*Table {
	return s.tables
}

// Table looks up a table by name.
func (s *Set) Table(name string) (*Table, bool) {
	t, ok := s.byName[name]
	return t, ok
}

// Entries returns the entry arena in document order.
func (s *Set) Entries() []Entry {
	return s.entries
}

// MaxColumns returns the largest column count of any table.
// It is computed once, when the set is built.
func (s *Set) MaxColumns() int {
	return s.maxColumns
}

// Values returns row i of table t aligned to t.Columns. Cells the record does
// not carry are returned as empty strings.
func (s *Set) Values(t *Table, i int) []string {
	entry := s.entries[t.Rows[i]]
	return lo.Map(t.Columns, func(column string, _ int) string {
		v, _ := entry.Value(column)
		return v
	})
}
