package reader

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, input string) []Event {
	t.Helper()
	src := NewEventSource(strings.NewReader(input))
	var events []Event
	for {
		ev, err := src.Next()
		require.NoError(t, err)
		events = append(events, ev)
		if ev.Kind == KindEOF {
			return events
		}
	}
}

func kinds(events []Event) []Kind {
	out := make([]Kind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func TestEventSource_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Kind
	}{
		{
			name:  "empty input",
			input: "",
			want:  []Kind{KindEOF},
		},
		{
			name:  "declaration and comment",
			input: `<?xml version="1.0" encoding="utf-8"?><!-- c --><a></a>`,
			want:  []Kind{KindDeclaration, KindComment, KindStartTag, KindEndTag, KindEOF},
		},
		{
			name:  "self-closing element",
			input: `<a><b/></a>`,
			want:  []Kind{KindStartTag, KindEmptyTag, KindEndTag, KindEOF},
		},
		{
			name:  "self-closing element with space",
			input: `<a><b /></a>`,
			want:  []Kind{KindStartTag, KindEmptyTag, KindEndTag, KindEOF},
		},
		{
			name:  "explicitly closed empty element stays a pair",
			input: `<a><b></b></a>`,
			want:  []Kind{KindStartTag, KindStartTag, KindEndTag, KindEndTag, KindEOF},
		},
		{
			name:  "text",
			input: "<a>\n  <b>x</b>\n</a>",
			want:  []Kind{KindStartTag, KindText, KindStartTag, KindText, KindEndTag, KindText, KindEndTag, KindEOF},
		},
		{
			name:  "doctype directive",
			input: `<!DOCTYPE dataset><a/>`,
			want:  []Kind{KindDeclaration, KindEmptyTag, KindEOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kinds(collect(t, tt.input)))
		})
	}
}

func TestEventSource_UnescapesText(t *testing.T) {
	events := collect(t, `<a>Tom &amp; &quot;Jerry&quot; &#38; <![CDATA[<raw>]]></a>`)
	require.Len(t, events, 5)
	assert.Equal(t, `Tom & "Jerry" & `, events[1].Text)
	assert.Equal(t, `<raw>`, events[2].Text)
}

func TestEventSource_Offsets(t *testing.T) {
	input := `<a><b>x</b><c/></a>`
	events := collect(t, input)
	require.Equal(t, []Kind{KindStartTag, KindStartTag, KindText, KindEndTag, KindEmptyTag, KindEndTag, KindEOF}, kinds(events))

	assert.Equal(t, int64(0), events[0].Offset)
	assert.Equal(t, int64(3), events[1].Offset)
	assert.Equal(t, int64(6), events[2].Offset)
	assert.Equal(t, int64(7), events[3].Offset)
	assert.Equal(t, int64(11), events[4].Offset)
	assert.Equal(t, int64(15), events[5].Offset)
	assert.Equal(t, int64(len(input)), events[6].Offset)
}

func TestEventSource_NamespacePrefixIsKept(t *testing.T) {
	events := collect(t, `<x:a></x:a>`)
	assert.Equal(t, "x:a", events[0].Name)
	assert.Equal(t, "x:a", events[1].Name)
}

func TestEventSource_SyntaxError(t *testing.T) {
	src := NewEventSource(strings.NewReader(`<a>&bogus;</a>`))

	ev, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, KindStartTag, ev.Kind)

	_, err = src.Next()
	require.Error(t, err)
	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Contains(t, err.Error(), "malformed xml at position")
}

func TestEventSource_ErrorAfterStartTagIsDeferred(t *testing.T) {
	src := NewEventSource(strings.NewReader("<a>\xff</a>"))

	ev, err := src.Next()
	require.NoError(t, err, "the start tag is delivered before the failure")
	assert.Equal(t, "a", ev.Name)

	_, err = src.Next()
	assert.Error(t, err)
	_, err = src.Next()
	assert.Error(t, err, "the failure is sticky")
}

func TestEvent_String(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Event{Kind: KindEOF}, "end of input"},
		{Event{Kind: KindStartTag, Name: "pages"}, "<pages>"},
		{Event{Kind: KindEndTag, Name: "pages"}, "</pages>"},
		{Event{Kind: KindEmptyTag, Name: "hidden"}, "<hidden/>"},
		{Event{Kind: KindText, Text: "hi"}, `text "hi"`},
		{Event{Kind: KindText, Text: strings.Repeat("x", 50)}, `text "` + strings.Repeat("x", 40) + `..."`},
		{Event{Kind: KindComment}, "comment"},
		{Event{Kind: KindDeclaration}, "declaration"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.ev.String())
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "EmptyTag", KindEmptyTag.String())
	assert.Equal(t, "Unknown", Kind(200).String())
}
