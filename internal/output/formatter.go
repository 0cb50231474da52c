package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/vegasq/dataset2csv/internal/dataset"
)

// ErrUnsupportedFormat is returned for unknown format names.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to write an aggregated table set in the
// target format and SetOutput to change the output destination.
type Formatter interface {
	// Format writes every table of the set
	Format(set *dataset.Set) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Format names an output format.
type Format string

const (
	CSV     Format = "csv"
	JSONL   Format = "jsonl"
	YAML    Format = "yaml"
	Table   Format = "table"
	Parquet Format = "parquet"
)

var formats = []Format{CSV, JSONL, YAML, Table, Parquet}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Binary reports whether the format produces a file that cannot be appended
// to.
func (f Format) Binary() bool { return f == Parquet }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Options tunes formatter construction.
type Options struct {
	// Delimiter is the CSV field separator. Zero means comma.
	Delimiter rune
}

// New creates the formatter for f writing to w.
func New(f Format, w io.Writer, opts Options) (Formatter, error) {
	switch f {
	case CSV:
		c := NewCSVFormatter(w)
		c.SetDelimiter(opts.Delimiter)
		return c, nil
	case JSONL:
		return NewJSONFormatter(w), nil
	case YAML:
		return NewYAMLFormatter(w), nil
	case Table:
		return NewTableFormatter(w), nil
	case Parquet:
		return NewParquetFormatter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
