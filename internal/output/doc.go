// Package output provides formatters for writing aggregated dataset tables.
//
// Currently supported formats:
//   - CSV: the TYPO3 testing framework fixture layout (default)
//   - JSON Lines: one JSON object per record
//   - YAML: one document per table
//   - Table: an ASCII grid per table, for terminals
//   - Parquet: one file holding every cell in long layout
//
// Example usage:
//
//	formatter, err := output.New(output.CSV, os.Stdout, output.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(set); err != nil {
//	    log.Fatal(err)
//	}
package output
