package messageformat

import (
	"strconv"
	"strings"
)

// ElementKind discriminates the closed set of message element variants.
// Rendering switches on the kind; adding a variant is a compile-time change.
type ElementKind int

const (
	KindLiteral ElementKind = iota
	KindArgument
	KindNumber
	KindDate
	KindTime
	KindDateTime
	KindPlural
	KindSelectOrdinal
	KindSelect
	KindList
	KindTag
	KindCustom
	KindRelativeTime
	KindDateRange

	// kindPound marks an unescaped '#' in the direct literal text of a
	// plural/selectordinal case. It renders as the effective number.
	kindPound
)

var elementKindNames = map[ElementKind]string{
	KindLiteral:       "literal",
	KindArgument:      "argument",
	KindNumber:        "number",
	KindDate:          "date",
	KindTime:          "time",
	KindDateTime:      "datetime",
	KindPlural:        "plural",
	KindSelectOrdinal: "selectordinal",
	KindSelect:        "select",
	KindList:          "list",
	KindTag:           "tag",
	KindCustom:        "custom",
	KindRelativeTime:  "relativetime",
	KindDateRange:     "daterange",
	kindPound:         "#",
}

func (k ElementKind) String() string {
	if name, ok := elementKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MessageElement is one node of a compiled pattern. Which payload fields are
// meaningful depends on Kind; elements are immutable once constructed.
type MessageElement struct {
	Kind ElementKind
	Span SourceSpan

	Text   string         // Literal text
	Var    string         // placeholder variable name
	Style  string         // number/date/time style or skeleton
	Width  string         // list width (wide, short, narrow)
	Unit   string         // relative-time unit (day, hour, ...)
	Name   string         // tag name or custom formatter name
	Args   string         // raw argument text for Custom
	Offset float64        // plural/selectordinal offset
	Cases  []Case         // plural/selectordinal/select branches
	Body   *ParsedMessage // tag body
}

// Case is a single branch of a plural, selectordinal or select construct.
type Case struct {
	Key     string
	Content *ParsedMessage
	// Exact is set when Key has the =N form; such cases win over category
	// matching when the raw argument equals N.
	Exact *float64
}

func newCase(key string, content *ParsedMessage) Case {
	c := Case{Key: key, Content: content}
	if strings.HasPrefix(key, "=") {
		if n, err := strconv.ParseFloat(key[1:], 64); err == nil {
			c.Exact = &n
		}
	}
	return c
}

// ParsedMessage is an ordered, immutable sequence of elements plus the source
// text it was compiled from. It is safe to share across goroutines and reuse
// for any number of render calls.
type ParsedMessage struct {
	elements []MessageElement
	source   string
}

func newParsedMessage(elements []MessageElement, source string) *ParsedMessage {
	return &ParsedMessage{elements: elements, source: source}
}

// Elements returns a copy of the element sequence.
func (m *ParsedMessage) Elements() []MessageElement {
	if m == nil || len(m.elements) == 0 {
		return nil
	}
	out := make([]MessageElement, len(m.elements))
	copy(out, m.elements)
	return out
}

// Source returns the pattern text slice the message was compiled from.
func (m *ParsedMessage) Source() string {
	if m == nil {
		return ""
	}
	return m.source
}

// Len returns the number of top-level elements.
func (m *ParsedMessage) Len() int {
	if m == nil {
		return 0
	}
	return len(m.elements)
}
