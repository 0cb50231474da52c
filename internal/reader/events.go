package reader

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// Kind identifies the syntactic kind of an Event.
type Kind uint8

const (
	KindEOF Kind = iota
	KindStartTag
	KindEndTag
	KindEmptyTag
	KindText
	KindComment
	KindDeclaration
)

// String returns a stable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "EOF"
	case KindStartTag:
		return "StartTag"
	case KindEndTag:
		return "EndTag"
	case KindEmptyTag:
		return "EmptyTag"
	case KindText:
		return "Text"
	case KindComment:
		return "Comment"
	case KindDeclaration:
		return "Declaration"
	default:
		return "Unknown"
	}
}

// Event is one XML token together with the byte offset it starts at.
type Event struct {
	Kind   Kind
	Name   string // tag name for start, end and empty tags
	Text   string // unescaped content for text, body for comments
	Offset int64
}

// String describes the event for diagnostics.
func (e Event) String() string {
	switch e.Kind {
	case KindEOF:
		return "end of input"
	case KindStartTag:
		return "<" + e.Name + ">"
	case KindEndTag:
		return "</" + e.Name + ">"
	case KindEmptyTag:
		return "<" + e.Name + "/>"
	case KindText:
		return fmt.Sprintf("text %q", abbreviate(e.Text, 40))
	case KindComment:
		return "comment"
	case KindDeclaration:
		return "declaration"
	default:
		return "unknown token"
	}
}

func abbreviate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// EventSource is a lazy, non-restartable sequence of Events read from an
// XML byte stream.
//
// It sits on encoding/xml's raw tokenizer, so start and end tags are not
// matched and namespace prefixes are not resolved; the caller's grammar does
// the matching. A self-closing element is reported as one KindEmptyTag event
// instead of a start/end pair.
type EventSource struct {
	dec     *xml.Decoder
	pending *Event
	err     error
}

// NewEventSource creates an event source reading from r.
func NewEventSource(r io.Reader) *EventSource {
	dec := xml.NewDecoder(r)
	dec.Strict = true
	return &EventSource{dec: dec}
}

// Offset returns the input offset of the tokenizer, in bytes.
func (s *EventSource) Offset() int64 {
	return s.dec.InputOffset()
}

// Next returns the next event. At the end of input it returns a KindEOF
// event and a nil error, repeatedly. Tokenizer failures are returned as
// *SyntaxError.
func (s *EventSource) Next() (Event, error) {
	if s.pending != nil {
		ev := *s.pending
		s.pending = nil
		return ev, nil
	}
	if s.err != nil {
		return Event{Offset: s.dec.InputOffset()}, s.err
	}

	ev, err := s.read()
	if err != nil || ev.Kind != KindStartTag {
		return ev, err
	}

	// encoding/xml splits <name/> into a start element and a synthesized end
	// element without consuming input in between.
	next, err := s.read()
	if err != nil {
		// Deliver the start tag now and the failure on the following call.
		s.err = err
		return ev, nil
	}
	if next.Kind == KindEndTag && next.Name == ev.Name && next.Offset == s.dec.InputOffset() {
		ev.Kind = KindEmptyTag
		return ev, nil
	}
	s.pending = &next
	return ev, nil
}

func (s *EventSource) read() (Event, error) {
	offset := s.dec.InputOffset()
	tok, err := s.dec.RawToken()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Event{Kind: KindEOF, Offset: offset}, nil
		}
		return Event{Offset: offset}, &SyntaxError{Offset: s.dec.InputOffset(), Err: err}
	}

	switch t := tok.(type) {
	case xml.StartElement:
		return Event{Kind: KindStartTag, Name: qualifiedName(t.Name), Offset: offset}, nil
	case xml.EndElement:
		return Event{Kind: KindEndTag, Name: qualifiedName(t.Name), Offset: offset}, nil
	case xml.CharData:
		return Event{Kind: KindText, Text: string(t), Offset: offset}, nil
	case xml.Comment:
		return Event{Kind: KindComment, Text: string(t), Offset: offset}, nil
	case xml.ProcInst, xml.Directive:
		return Event{Kind: KindDeclaration, Offset: offset}, nil
	default:
		return Event{Offset: offset}, &SyntaxError{Offset: offset, Err: fmt.Errorf("unsupported token %T", tok)}
	}
}

func qualifiedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}
