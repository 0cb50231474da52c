package reader

import (
	"fmt"
	"io"

	"github.com/vegasq/dataset2csv/internal/dataset"
	"github.com/vegasq/dataset2csv/internal/diag"
)

// RootElement is the name of the element wrapping all table records.
const RootElement = "dataset"

// State is the position of the reader in the document grammar.
type State uint8

const (
	// AwaitingRoot skips the prolog until <dataset> starts.
	AwaitingRoot State = iota
	// InDataset reads table records until </dataset>.
	InDataset
	// InEntry reads the cells of one table record.
	InEntry
	// InCell reads the optional text of one cell.
	InCell
	// Done is reached after </dataset>.
	Done
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case AwaitingRoot:
		return "AwaitingRoot"
	case InDataset:
		return "InDataset"
	case InEntry:
		return "InEntry"
	case InCell:
		return "InCell"
	case Done:
		return "Done"
	default:
		return "Unknown"
	}
}

// Reader turns a dataset document into table entries.
type Reader struct {
	src   *EventSource
	log   *diag.Logger
	state State

	entries []dataset.Entry
	entry   dataset.Entry

	cell       string
	cellOffset int64
	value      string
	hasValue   bool
}

// Option configures a Reader.
type Option func(*Reader)

// WithLogger sets the logger receiving duplicate cell warnings.
func WithLogger(log *diag.Logger) Option {
	return func(r *Reader) {
		r.log = log
	}
}

// NewReader creates a reader for the XML document in r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	reader := &Reader{src: NewEventSource(r)}
	for _, opt := range opts {
		opt(reader)
	}
	return reader
}

// State reports the current grammar state.
func (r *Reader) State() State {
	return r.state
}

// ReadAll consumes the document up to </dataset> and returns its records in
// document order. Content after the root element is not read.
//
// Every failure is fatal. Errors raised inside a record are wrapped with the
// position of the record, and of the cell when one is open.
func (r *Reader) ReadAll() ([]dataset.Entry, error) {
	for r.state != Done {
		ev, err := r.src.Next()
		if err == nil {
			err = r.step(ev)
		}
		if err != nil {
			if r.state == InCell {
				err = fmt.Errorf("could not read cell <%s> at position %d: %w", r.cell, r.cellOffset, err)
			}
			if r.state == InEntry || r.state == InCell {
				return nil, fmt.Errorf("could not read table <%s> at position %d: %w", r.entry.Name, r.entry.Offset, err)
			}
			return nil, err
		}
	}
	return r.entries, nil
}

func (r *Reader) step(ev Event) error {
	switch r.state {
	case AwaitingRoot:
		return r.awaitingRoot(ev)
	case InDataset:
		return r.inDataset(ev)
	case InEntry:
		return r.inEntry(ev)
	case InCell:
		return r.inCell(ev)
	default:
		return unexpected(r.state, ev, "nothing after </"+RootElement+">")
	}
}

func (r *Reader) awaitingRoot(ev Event) error {
	const expected = "the start of a <" + RootElement + "> element"

	switch ev.Kind {
	case KindDeclaration, KindComment, KindText:
		return nil
	case KindStartTag:
		if ev.Name == RootElement {
			r.state = InDataset
			return nil
		}
	case KindEmptyTag:
		if ev.Name == RootElement {
			r.state = Done
			return nil
		}
	}
	return unexpected(r.state, ev, expected)
}

func (r *Reader) inDataset(ev Event) error {
	switch ev.Kind {
	case KindText, KindComment:
		return nil
	case KindStartTag:
		r.entry = dataset.NewEntry(ev.Name, ev.Offset)
		r.state = InEntry
		return nil
	case KindEndTag:
		if ev.Name == RootElement {
			r.state = Done
			return nil
		}
	}
	return unexpected(r.state, ev, "ending tag </"+RootElement+"> or the start of a table element")
}

func (r *Reader) inEntry(ev Event) error {
	switch ev.Kind {
	case KindText, KindComment:
		return nil
	case KindEmptyTag:
		r.setCell(ev.Name, "", ev.Offset)
		return nil
	case KindStartTag:
		r.cell = ev.Name
		r.cellOffset = ev.Offset
		r.value = ""
		r.hasValue = false
		r.state = InCell
		return nil
	case KindEndTag:
		if ev.Name == r.entry.Name {
			r.entries = append(r.entries, r.entry)
			r.entry = dataset.Entry{}
			r.state = InDataset
			return nil
		}
	}
	return unexpected(r.state, ev, "ending tag </"+r.entry.Name+"> or the start of a cell element")
}

func (r *Reader) inCell(ev Event) error {
	switch ev.Kind {
	case KindText:
		if !r.hasValue {
			r.value = ev.Text
			r.hasValue = true
			return nil
		}
	case KindEndTag:
		if ev.Name == r.cell {
			r.setCell(r.cell, r.value, r.cellOffset)
			r.state = InEntry
			return nil
		}
	}
	if r.hasValue {
		return unexpected(r.state, ev, "</"+r.cell+">")
	}
	return unexpected(r.state, ev, "the text of <"+r.cell+"> or </"+r.cell+">")
}

func (r *Reader) setCell(name, value string, offset int64) {
	if r.entry.Set(name, value) {
		r.log.Warnf("Duplicated cell %s in table %s at position %d", name, r.entry.Name, offset)
	}
}
