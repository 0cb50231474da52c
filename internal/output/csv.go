package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/vegasq/dataset2csv/internal/dataset"
)

// CSVFormatter writes tables in the TYPO3 testing framework CSV fixture
// layout.
//
// Every table becomes a name row, a column header row and one row per record.
// The first field of the name row holds the table name; header and data rows
// leave it empty. All rows share one width, one more than the widest table:
//
//	tt_content,,,
//	,uid,title,hidden
//	,1,Hi,
//	,2,Bye,1
type CSVFormatter struct {
	writer io.Writer
	comma  rune
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w, comma: ','}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// SetDelimiter changes the field separator. Zero restores the comma.
func (c *CSVFormatter) SetDelimiter(r rune) {
	if r == 0 {
		r = ','
	}
	c.comma = r
}

// ValidDelimiter reports whether r can separate CSV fields.
func ValidDelimiter(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}

// Format writes every table of the set as CSV
func (c *CSVFormatter) Format(set *dataset.Set) error {
	csvWriter := csv.NewWriter(c.writer)
	csvWriter.Comma = c.comma

	record := make([]string, set.MaxColumns()+1)

	for _, table := range set.Tables() {
		clear(record)
		record[0] = table.Name
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("failed to write csv table name row: %w", err)
		}

		clear(record)
		copy(record[1:], table.Columns)
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("failed to write csv column header row: %w", err)
		}

		for i := range table.Rows {
			clear(record)
			copy(record[1:], set.Values(table, i))
			if err := csvWriter.Write(record); err != nil {
				return fmt.Errorf("failed to write csv data row: %w", err)
			}
		}
	}

	// Flush and check for errors
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}
