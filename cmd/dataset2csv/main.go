// Command dataset2csv converts XML fixtures of the TYPO3 testing framework
// into CSV fixtures.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/vegasq/dataset2csv/internal/convert"
	"github.com/vegasq/dataset2csv/internal/dataset"
	"github.com/vegasq/dataset2csv/internal/diag"
	"github.com/vegasq/dataset2csv/internal/output"
)

var version = "dev"

// config holds the parsed command line.
type config struct {
	inputFile  string
	outputFile string
	format     output.Format
	keyColumn  string
	delimiter  rune
	quiet      bool
}

func main() {
	os.Exit(runWithArgs(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// runWithArgs runs the command and returns the process exit status:
// 0 on success, 1 on conversion or I/O failure, 2 on invalid usage.
func runWithArgs(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, status, ok := parseArgs(args, stdout, stderr)
	if !ok {
		return status
	}

	src := stdin
	if cfg.inputFile != "" {
		f, err := os.Open(cfg.inputFile)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Fprintf(stderr, "Error: file '%s' not found\n", cfg.inputFile)
				fmt.Fprintf(stderr, "Please check the file path and try again.\n")
			} else {
				fmt.Fprintf(stderr, "Error: failed to open input file %s: %v\n", cfg.inputFile, err)
			}
			return 1
		}
		defer f.Close()
		src = f
	}

	dst := stdout
	var outFile *os.File
	if cfg.outputFile != "" {
		f, err := openOutput(cfg.outputFile, cfg.format)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		outFile = f
		dst = f
	}

	buffered := bufio.NewWriter(dst)
	formatter, err := output.New(cfg.format, buffered, output.Options{Delimiter: cfg.delimiter})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	log := diag.New(stderr)
	if cfg.quiet {
		log.SetOutput(io.Discard)
	}

	_, convErr := convert.Convert(bufio.NewReader(src), formatter, convert.Options{
		KeyColumn: cfg.keyColumn,
		Logger:    log,
	})
	if convErr == nil {
		if err := buffered.Flush(); err != nil {
			convErr = fmt.Errorf("failed to flush output: %w", err)
		}
	}
	if outFile != nil {
		if err := outFile.Close(); err != nil && convErr == nil {
			convErr = fmt.Errorf("failed to close output file %s: %w", cfg.outputFile, err)
		}
	}
	if convErr != nil {
		fmt.Fprintf(stderr, "Error: %v\n", convErr)
		return 1
	}
	return 0
}

// parseArgs parses and validates the command line. When ok is false the
// caller exits with status.
func parseArgs(args []string, stdout, stderr io.Writer) (cfg config, status int, ok bool) {
	fs := flag.NewFlagSet("dataset2csv", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		formatName  string
		delimiter   string
		showVersion bool
	)
	fs.StringVar(&cfg.inputFile, "input-file", "", "File name of the file to read from (default: stdin)")
	fs.StringVar(&cfg.inputFile, "i", "", "Shorthand for -input-file")
	fs.StringVar(&cfg.outputFile, "output-file", "", "File name of the file to write the output to, appended to if it exists (default: stdout)")
	fs.StringVar(&cfg.outputFile, "o", "", "Shorthand for -output-file")
	fs.StringVar(&formatName, "format", string(output.CSV), "Output format: "+formatList())
	fs.StringVar(&formatName, "f", string(output.CSV), "Shorthand for -format")
	fs.StringVar(&cfg.keyColumn, "key", dataset.DefaultKeyColumn, "Column that must exist in every table and is written first")
	fs.StringVar(&delimiter, "delimiter", ",", "CSV field delimiter")
	fs.StringVar(&delimiter, "d", ",", "Shorthand for -delimiter")
	fs.BoolVar(&cfg.quiet, "quiet", false, "Suppress warnings")
	fs.BoolVar(&cfg.quiet, "q", false, "Shorthand for -quiet")
	fs.BoolVar(&showVersion, "version", false, "Print the version and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [options]\n\n", fs.Name())
		fmt.Fprintf(stderr, "Converts a XML fixture of typo3/testing-framework into a CSV fixture.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  %s -i pages.xml -o pages.csv\n", fs.Name())
		fmt.Fprintf(stderr, "  %s < pages.xml > pages.csv\n", fs.Name())
		fmt.Fprintf(stderr, "  %s -f table -i pages.xml\n", fs.Name())
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, 0, false
		}
		return cfg, 2, false
	}

	if showVersion {
		fmt.Fprintf(stdout, "dataset2csv %s\n", version)
		return cfg, 0, false
	}

	usageError := func(format string, a ...any) (config, int, bool) {
		fmt.Fprintf(stderr, "Error: "+format+"\n\n", a...)
		fs.Usage()
		return cfg, 2, false
	}

	if fs.NArg() > 0 {
		return usageError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	format, err := output.ParseFormat(formatName)
	if err != nil {
		return usageError("%v (supported formats: %s)", err, formatList())
	}
	cfg.format = format

	if strings.TrimSpace(cfg.keyColumn) == "" {
		return usageError("-key must not be empty")
	}

	if utf8.RuneCountInString(delimiter) != 1 {
		return usageError("-delimiter must be a single character, got %q", delimiter)
	}
	cfg.delimiter, _ = utf8.DecodeRuneInString(delimiter)
	if !output.ValidDelimiter(cfg.delimiter) {
		return usageError("invalid -delimiter %q", delimiter)
	}

	return cfg, 0, true
}

// openOutput opens the output file. Text formats are appended to an existing
// file; parquet files cannot be appended to and are truncated instead.
func openOutput(path string, format output.Format) (*os.File, error) {
	mode := os.O_WRONLY | os.O_CREATE | os.O_APPEND
	if format.Binary() {
		mode = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, mode, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file %s: %w", path, err)
	}
	return f, nil
}

func formatList() string {
	names := make([]string, 0, len(output.Formats()))
	for _, f := range output.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
