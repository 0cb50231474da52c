package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vegasq/dataset2csv/internal/dataset"
)

// YAMLFormatter writes one YAML document per table.
type YAMLFormatter struct {
	writer io.Writer
}

type yamlTable struct {
	Table   string     `yaml:"table"`
	Columns []string   `yaml:"columns,flow"`
	Rows    [][]string `yaml:"rows"`
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// SetOutput sets the output writer
func (y *YAMLFormatter) SetOutput(w io.Writer) {
	y.writer = w
}

// Format writes a stream of table documents. Rows are aligned to columns.
func (y *YAMLFormatter) Format(set *dataset.Set) error {
	enc := yaml.NewEncoder(y.writer)
	enc.SetIndent(2)
	for _, table := range set.Tables() {
		doc := yamlTable{
			Table:   table.Name,
			Columns: table.Columns,
			Rows:    make([][]string, len(table.Rows)),
		}
		for i := range table.Rows {
			doc.Rows[i] = set.Values(table, i)
		}
		if err := enc.Encode(doc); err != nil {
			return err
		}
	}
	return enc.Close()
}
