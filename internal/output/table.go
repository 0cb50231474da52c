package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/dataset2csv/internal/dataset"
)

// TableFormatter renders each table as an ASCII grid for reading in a
// terminal. It is a preview format: values are printed as they are, without
// the CSV fixture layout.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format writes a title line and a grid per table, separated by blank lines.
func (t *TableFormatter) Format(set *dataset.Set) error {
	// tablewriter drops write errors, so they are captured here.
	w := &stickyWriter{w: t.writer}

	for n, table := range set.Tables() {
		if n > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d rows)\n", table.Name, len(table.Rows))

		grid := tablewriter.NewWriter(w)
		grid.SetAutoFormatHeaders(false)
		grid.SetAutoWrapText(false)
		grid.SetHeader(table.Columns)
		for i := range table.Rows {
			grid.Append(set.Values(table, i))
		}
		grid.Render()

		if w.err != nil {
			return fmt.Errorf("failed to write table %s: %w", table.Name, w.err)
		}
	}
	return nil
}

// stickyWriter remembers the first write error and drops everything after it.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	s.err = err
	return n, err
}
