// Package convert runs the whole fixture conversion: read the XML dataset,
// aggregate its records into tables and hand them to a formatter.
package convert

import (
	"fmt"
	"io"

	"github.com/vegasq/dataset2csv/internal/dataset"
	"github.com/vegasq/dataset2csv/internal/diag"
	"github.com/vegasq/dataset2csv/internal/output"
	"github.com/vegasq/dataset2csv/internal/reader"
)

// Options configures a conversion.
type Options struct {
	// KeyColumn is forced to the front of every table. Empty means
	// dataset.DefaultKeyColumn.
	KeyColumn string
	// Logger receives non-fatal diagnostics. Nil discards them.
	Logger *diag.Logger
}

// Result summarizes a finished conversion.
type Result struct {
	Tables  int
	Records int
	// Written is false when the document was degenerate and nothing was
	// handed to the formatter.
	Written bool
}

// Convert reads the document from src and writes it through formatter.
//
// A document without records, or whose tables have no columns at all, is not
// an error: a warning is logged and the formatter is not called.
func Convert(src io.Reader, formatter output.Formatter, opts Options) (Result, error) {
	log := opts.Logger

	entries, err := reader.NewReader(src, reader.WithLogger(log)).ReadAll()
	if err != nil {
		return Result{}, err
	}

	set, err := dataset.Aggregate(entries, dataset.WithKeyColumn(opts.KeyColumn))
	if err != nil {
		return Result{}, err
	}

	result := Result{Tables: set.Len(), Records: len(set.Entries())}
	switch {
	case set.Len() == 0:
		log.Warnf("<%s> element is empty. Nothing will be written.", reader.RootElement)
		return result, nil
	case set.MaxColumns() == 0:
		// Unreachable while Aggregate requires a key column in every table.
		// Kept so a relaxed key check still degrades to a warning.
		log.Warnf("No columns used in any element. Nothing will be written.")
		return result, nil
	}

	if err := formatter.Format(set); err != nil {
		return result, fmt.Errorf("failed to write output: %w", err)
	}
	result.Written = true
	return result, nil
}
