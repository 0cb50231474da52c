package output

import (
	"fmt"
	"io"

	"github.com/segmentio/parquet-go"

	"github.com/vegasq/dataset2csv/internal/dataset"
)

// Cell is one row of the parquet output: a single value of the rectangular
// table, addressed by table name, row number and column.
//
// Tables have unrelated schemas, so they share one file in this long layout
// rather than one parquet schema each. Position is the column index, which
// keeps the key column at 0 like the CSV header.
type Cell struct {
	Table    string `parquet:"table"`
	Row      int64  `parquet:"row"`
	Position int32  `parquet:"position"`
	Column   string `parquet:"column"`
	Value    string `parquet:"value"`
}

// ParquetFormatter writes every cell of every table into one parquet file.
type ParquetFormatter struct {
	writer io.Writer
}

// NewParquetFormatter creates a new parquet formatter
func NewParquetFormatter(w io.Writer) *ParquetFormatter {
	return &ParquetFormatter{writer: w}
}

// SetOutput sets the output writer
func (p *ParquetFormatter) SetOutput(w io.Writer) {
	p.writer = w
}

// Format writes the set, one batch of rows per table.
func (p *ParquetFormatter) Format(set *dataset.Set) error {
	writer := parquet.NewGenericWriter[Cell](p.writer)

	for _, table := range set.Tables() {
		cells := make([]Cell, 0, len(table.Rows)*len(table.Columns))
		for i := range table.Rows {
			for c, value := range set.Values(table, i) {
				cells = append(cells, Cell{
					Table:    table.Name,
					Row:      int64(i),
					Position: int32(c),
					Column:   table.Columns[c],
					Value:    value,
				})
			}
		}
		if _, err := writer.Write(cells); err != nil {
			return fmt.Errorf("failed to write parquet rows for table %s: %w", table.Name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}
