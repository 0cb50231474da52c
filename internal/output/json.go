package output

import (
	"encoding/json"
	"io"

	"github.com/vegasq/dataset2csv/internal/dataset"
)

// JSONFormatter outputs records as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// jsonRecord is one output line. Cells holds every column of the record's
// table; cells the record does not carry are empty strings.
type jsonRecord struct {
	Table string            `json:"table"`
	Row   int               `json:"row"`
	Cells map[string]string `json:"cells"`
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes records as JSON Lines (one JSON object per line), table by
// table.
func (j *JSONFormatter) Format(set *dataset.Set) error {
	encoder := json.NewEncoder(j.writer)
	encoder.SetEscapeHTML(false)
	for _, table := range set.Tables() {
		for i := range table.Rows {
			values := set.Values(table, i)
			cells := make(map[string]string, len(values))
			for c, column := range table.Columns {
				cells[column] = values[c]
			}
			if err := encoder.Encode(jsonRecord{Table: table.Name, Row: i, Cells: cells}); err != nil {
				return err
			}
		}
	}
	return nil
}
