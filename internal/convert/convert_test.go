package convert

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/dataset2csv/internal/dataset"
	"github.com/vegasq/dataset2csv/internal/diag"
	"github.com/vegasq/dataset2csv/internal/output"
	"github.com/vegasq/dataset2csv/internal/reader"
)

const contentFixture = `<dataset>` +
	`<tt_content><uid>1</uid><title>Hi</title></tt_content>` +
	`<tt_content><uid>2</uid><title>Bye</title><hidden>1</hidden></tt_content>` +
	`</dataset>`

func run(t *testing.T, input string, opts Options) (string, string, Result, error) {
	t.Helper()
	var out, warnings bytes.Buffer
	if opts.Logger == nil {
		opts.Logger = diag.New(&warnings)
	}
	result, err := Convert(strings.NewReader(input), output.NewCSVFormatter(&out), opts)
	return out.String(), warnings.String(), result, err
}

func TestConvert(t *testing.T) {
	out, warnings, result, err := run(t, contentFixture, Options{})
	require.NoError(t, err)

	assert.Equal(t, "tt_content,,,\n,uid,title,hidden\n,1,Hi,\n,2,Bye,1\n", out)
	assert.Empty(t, warnings)
	assert.Equal(t, Result{Tables: 1, Records: 2, Written: true}, result)
}

func TestConvert_EmptyDataset(t *testing.T) {
	out, warnings, result, err := run(t, `<dataset></dataset>`, Options{})
	require.NoError(t, err)

	assert.Empty(t, out)
	assert.Equal(t, "Warning: <dataset> element is empty. Nothing will be written.\n", warnings)
	assert.False(t, result.Written)
}

func TestConvert_MissingKeyColumn(t *testing.T) {
	out, _, _, err := run(t, `<dataset><pages><title>x</title></pages></dataset>`, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrMissingKeyColumn)
	assert.Empty(t, out)
}

func TestConvert_KeyColumnOption(t *testing.T) {
	input := `<dataset><sys_file><name>a</name><identifier>/a</identifier></sys_file></dataset>`
	out, _, _, err := run(t, input, Options{KeyColumn: "identifier"})
	require.NoError(t, err)
	assert.Equal(t, "sys_file,,\n,identifier,name\n,/a,a\n", out)
}

func TestConvert_MalformedInput(t *testing.T) {
	_, _, _, err := run(t, `<dataset><pages><uid>1</pid></pages></dataset>`, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, reader.ErrUnexpectedToken)

	var syntaxErr *reader.SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, int64(22), syntaxErr.Offset)
}

func TestConvert_DuplicateCellWarning(t *testing.T) {
	input := `<dataset><pages><uid>1</uid><uid>2</uid></pages></dataset>`
	out, warnings, _, err := run(t, input, Options{})
	require.NoError(t, err)
	assert.Equal(t, "pages,\n,uid\n,2\n", out)
	assert.Contains(t, warnings, "Duplicated cell uid in table pages")
}

func TestConvert_NilLogger(t *testing.T) {
	var out bytes.Buffer
	_, err := Convert(strings.NewReader(`<dataset/>`), output.NewCSVFormatter(&out), Options{})
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

type brokenFormatter struct{}

var errFormat = errors.New("boom")

func (brokenFormatter) Format(*dataset.Set) error { return errFormat }
func (brokenFormatter) SetOutput(io.Writer) {}

func TestConvert_FormatterError(t *testing.T) {
	_, err := Convert(strings.NewReader(contentFixture), brokenFormatter{}, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errFormat)
	assert.Contains(t, err.Error(), "failed to write output")
}
