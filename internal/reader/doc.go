// Package reader reads TYPO3 style XML fixture documents into table entries.
//
// The accepted grammar is deliberately narrow:
//
//	<?xml version="1.0" encoding="utf-8"?>
//	<dataset>
//	    <pages>
//	        <uid>1</uid>
//	        <title>Home</title>
//	        <hidden />
//	    </pages>
//	</dataset>
//
// One root element named dataset contains table records (the element name is
// the table name), and each record contains cells (the element name is the
// column name) holding optional text. Attributes are ignored; nested cells,
// namespaces and multiple roots are not supported.
//
// Text outside a cell is skipped wherever it appears, whitespace or not. A
// self-closing <dataset/> is read as a document without records. A CDATA
// section is cell text like any other, so <b><![CDATA[a,b]]></b> has the
// value "a,b"; mixing it with plain text in one cell is an error.
//
// # Basic Usage
//
//	entries, err := reader.NewReader(os.Stdin).ReadAll()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// Every grammar violation is a *SyntaxError carrying the byte offset of the
// offending token, the reader State and a description of what was expected.
// Use errors.Is with ErrUnexpectedToken or ErrEmptyInput to classify them.
// Duplicate cells inside one record are not errors: the last value wins and
// a warning goes to the logger passed with WithLogger.
package reader
