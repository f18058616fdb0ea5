package messageformat

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type compileConfig struct {
	ignoreTags bool
}

// CompileOption adjusts compiler behavior.
type CompileOption func(*compileConfig)

// WithoutTags disables rich-text tag parsing; '<' becomes plain literal text.
func WithoutTags() CompileOption {
	return func(cc *compileConfig) {
		cc.ignoreTags = true
	}
}

// Compile parses a pattern string into an immutable ParsedMessage.
// Malformed input fails with a *SyntaxError carrying the source position.
func Compile(pattern string, opts ...CompileOption) (*ParsedMessage, error) {
	cfg := compileConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	p := &parser{
		src:        []rune(pattern),
		line:       1,
		col:        1,
		ignoreTags: cfg.ignoreTags,
	}

	elements, err := p.parseMessage(parseCtx{})
	if err != nil {
		return nil, err
	}
	return newParsedMessage(elements, pattern), nil
}

// MustCompile is like Compile but panics on error. Intended for patterns
// known valid at program start.
func MustCompile(pattern string, opts ...CompileOption) *ParsedMessage {
	msg, err := Compile(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return msg
}

// parseCtx describes the enclosing construct of a sub-message parse.
type parseCtx struct {
	// stopAtBrace stops before an unmatched '}' so the enclosing case or
	// placeholder can consume it. At top level '}' is plain literal text.
	stopAtBrace bool
	// closeTag stops before the matching </name> sequence.
	closeTag string
	// pound compiles unescaped '#' into pound elements (plural case text).
	pound bool
}

// parser is the mutable cursor threaded through a single Compile call.
// It is never shared.
type parser struct {
	src        []rune
	pos        int
	line       int
	col        int
	ignoreTags bool
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) peekAt(offset int) rune {
	if p.pos+offset >= len(p.src) {
		return 0
	}
	return p.src[p.pos+offset]
}

func (p *parser) advance() rune {
	r := p.src[p.pos]
	p.pos++
	if r == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	return r
}

func (p *parser) skipWhitespace() {
	for !p.eof() && unicode.IsSpace(p.peek()) {
		p.advance()
	}
}

type cursorMark struct {
	pos, line, col int
}

func (p *parser) mark() cursorMark {
	return cursorMark{p.pos, p.line, p.col}
}

func (p *parser) restore(m cursorMark) {
	p.pos, p.line, p.col = m.pos, m.line, m.col
}

func (p *parser) errorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Line: p.line, Column: p.col, Message: fmt.Sprintf(format, args...)}
}

func (p *parser) errorAt(m cursorMark, format string, args ...any) *SyntaxError {
	return &SyntaxError{Line: m.line, Column: m.col, Message: fmt.Sprintf(format, args...)}
}

func (p *parser) spanFrom(m cursorMark) SourceSpan {
	return SourceSpan{Start: m.pos, End: p.pos, Line: m.line, Column: m.col}
}

func (p *parser) slice(from, to int) string {
	return string(p.src[from:to])
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-'
}

// parseIdentifier consumes a run of letters, digits, '_' and '-'.
func (p *parser) parseIdentifier() string {
	start := p.pos
	for !p.eof() && isIdentRune(p.peek()) {
		p.advance()
	}
	return p.slice(start, p.pos)
}

// parseCaseKey consumes an identifier or the =N exact-match form.
func (p *parser) parseCaseKey() string {
	start := p.pos
	if p.peek() == '=' {
		p.advance()
		if p.peek() == '-' {
			p.advance()
		}
		for !p.eof() && (unicode.IsDigit(p.peek()) || p.peek() == '.') {
			p.advance()
		}
		return p.slice(start, p.pos)
	}
	return p.parseIdentifier()
}

// tagStartAhead reports whether the cursor sits on a tag-start or tag-close
// sequence: '<' followed by a letter, or '</' followed by a letter.
func (p *parser) tagStartAhead() bool {
	if p.ignoreTags || p.peek() != '<' {
		return false
	}
	next := p.peekAt(1)
	if next == '/' {
		return unicode.IsLetter(p.peekAt(2))
	}
	return unicode.IsLetter(next)
}

// closeTagAhead reports whether the cursor sits on the exact </name>
// sequence, compared rune by rune without rescanning the tail.
func (p *parser) closeTagAhead(name string) bool {
	if name == "" || p.peek() != '<' || p.peekAt(1) != '/' {
		return false
	}
	offset := 2
	for _, r := range name {
		if p.peekAt(offset) != r {
			return false
		}
		offset++
	}
	return p.peekAt(offset) == '>'
}

// parseMessage parses elements until end of input or the terminator the
// context describes ('}' for nested sub-messages, </name> for tag bodies).
// Terminators are left unconsumed for the caller.
func (p *parser) parseMessage(ctx parseCtx) ([]MessageElement, error) {
	var elements []MessageElement

	for !p.eof() {
		r := p.peek()

		if ctx.stopAtBrace && r == '}' {
			break
		}
		if ctx.closeTag != "" && p.closeTagAhead(ctx.closeTag) {
			break
		}

		switch {
		case r == '{':
			element, err := p.parsePlaceholder(ctx)
			if err != nil {
				return nil, err
			}
			elements = append(elements, element)

		case ctx.pound && r == '#':
			m := p.mark()
			p.advance()
			elements = append(elements, MessageElement{Kind: kindPound, Span: p.spanFrom(m)})

		case p.tagStartAhead():
			element, err := p.parseTag(ctx)
			if err != nil {
				return nil, err
			}
			elements = append(elements, element)

		default:
			element := p.parseLiteral(ctx)
			if element.Text != "" {
				elements = append(elements, element)
			}
		}
	}

	return elements, nil
}

// parseLiteral accumulates plain text, applying the quote-escape rules:
// '' emits a literal quote, and a quote before one of { } # starts a
// verbatim run that lasts until the next unescaped quote or end of input.
func (p *parser) parseLiteral(ctx parseCtx) MessageElement {
	m := p.mark()
	var b strings.Builder

	for !p.eof() {
		r := p.peek()

		if r == '{' {
			break
		}
		if ctx.stopAtBrace && r == '}' {
			break
		}
		if ctx.pound && r == '#' {
			break
		}
		if p.tagStartAhead() {
			break
		}

		if r == '\'' {
			next := p.peekAt(1)
			switch {
			case next == '\'':
				p.advance()
				p.advance()
				b.WriteRune('\'')
			case next == '{' || next == '}' || next == '#':
				p.advance() // opening quote
				for !p.eof() {
					c := p.advance()
					if c == '\'' {
						if p.peek() == '\'' {
							p.advance()
							b.WriteRune('\'')
							continue
						}
						break
					}
					b.WriteRune(c)
				}
			default:
				p.advance()
				b.WriteRune('\'')
			}
			continue
		}

		b.WriteRune(p.advance())
	}

	return MessageElement{Kind: KindLiteral, Span: p.spanFrom(m), Text: b.String()}
}

// parsePlaceholder parses { name [, formatter [, args]] } with the cursor on
// the opening brace.
func (p *parser) parsePlaceholder(ctx parseCtx) (MessageElement, error) {
	open := p.mark()
	p.advance() // '{'
	p.skipWhitespace()

	name := p.parseIdentifier()
	if name == "" {
		return MessageElement{}, p.errorf("expected argument name in placeholder")
	}
	p.skipWhitespace()

	if p.peek() == '}' {
		p.advance()
		return MessageElement{Kind: KindArgument, Span: p.spanFrom(open), Var: name}, nil
	}

	if p.eof() {
		return MessageElement{}, p.errorf("unterminated placeholder for %q", name)
	}
	if p.peek() != ',' {
		return MessageElement{}, p.errorf("expected ',' or '}' in placeholder for %q", name)
	}
	p.advance() // ','
	p.skipWhitespace()

	formatter := p.parseIdentifier()
	if formatter == "" {
		return MessageElement{}, p.errorf("expected formatter name in placeholder for %q", name)
	}
	p.skipWhitespace()

	switch formatter {
	case "plural":
		return p.parseBranching(ctx, open, name, KindPlural)
	case "selectordinal":
		return p.parseBranching(ctx, open, name, KindSelectOrdinal)
	case "select":
		return p.parseBranching(ctx, open, name, KindSelect)
	}

	var rawArgs string
	switch p.peek() {
	case '}':
		p.advance()
	case ',':
		p.advance()
		args, err := p.scanRawArgs(name)
		if err != nil {
			return MessageElement{}, err
		}
		rawArgs = args
	default:
		if p.eof() {
			return MessageElement{}, p.errorf("unterminated placeholder for %q", name)
		}
		return MessageElement{}, p.errorf("expected ',' or '}' after formatter %q", formatter)
	}

	return p.dispatchFormatter(open, name, formatter, rawArgs)
}

// scanRawArgs collects raw argument text up to the matching outer '}',
// tracking nested braces and honoring quote escaping. The closing brace is
// consumed; the returned text is verbatim.
func (p *parser) scanRawArgs(name string) (string, error) {
	start := p.pos
	depth := 0

	for !p.eof() {
		r := p.peek()

		if r == '\'' {
			next := p.peekAt(1)
			if next == '\'' {
				p.advance()
				p.advance()
				continue
			}
			if next == '{' || next == '}' || next == '#' {
				p.advance()
				for !p.eof() {
					c := p.advance()
					if c == '\'' {
						if p.peek() == '\'' {
							p.advance()
							continue
						}
						break
					}
				}
				continue
			}
			p.advance()
			continue
		}

		switch r {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				args := p.slice(start, p.pos)
				p.advance()
				return args, nil
			}
			depth--
		}
		p.advance()
	}

	return "", p.errorf("unterminated placeholder for %q", name)
}

// dispatchFormatter maps a formatter name onto the element variant. Names
// outside the built-in set become Custom elements.
func (p *parser) dispatchFormatter(open cursorMark, name, formatter, rawArgs string) (MessageElement, error) {
	span := p.spanFrom(open)
	style := strings.TrimSpace(rawArgs)

	switch formatter {
	case "number":
		return MessageElement{Kind: KindNumber, Span: span, Var: name, Style: style}, nil
	case "date":
		return MessageElement{Kind: KindDate, Span: span, Var: name, Style: style}, nil
	case "time":
		return MessageElement{Kind: KindTime, Span: span, Var: name, Style: style}, nil
	case "datetime":
		return MessageElement{Kind: KindDateTime, Span: span, Var: name, Style: style}, nil
	case "daterange":
		return MessageElement{Kind: KindDateRange, Span: span, Var: name, Style: style}, nil
	case "list":
		element := MessageElement{Kind: KindList, Span: span, Var: name, Style: "and", Width: "wide"}
		fields := strings.Fields(style)
		if len(fields) > 0 {
			element.Style = fields[0]
		}
		if len(fields) > 1 {
			element.Width = fields[1]
		}
		return element, nil
	case "relativetime":
		element := MessageElement{Kind: KindRelativeTime, Span: span, Var: name, Style: "long"}
		fields := strings.Fields(style)
		if len(fields) > 0 {
			element.Unit = fields[0]
		}
		if len(fields) > 1 {
			element.Style = fields[1]
		}
		return element, nil
	default:
		return MessageElement{Kind: KindCustom, Span: span, Var: name, Name: formatter, Args: rawArgs}, nil
	}
}

// parseBranching parses the argument grammar shared by plural, selectordinal
// and select: an optional offset (plural kinds only) followed by one or more
// key { content } blocks, ending at the placeholder's closing brace.
func (p *parser) parseBranching(ctx parseCtx, open cursorMark, name string, kind ElementKind) (MessageElement, error) {
	if p.peek() != ',' {
		if p.eof() {
			return MessageElement{}, p.errorf("unterminated placeholder for %q", name)
		}
		return MessageElement{}, p.errorf("expected ',' before %s cases for %q", kind, name)
	}
	p.advance()
	p.skipWhitespace()

	element := MessageElement{Kind: kind, Var: name}
	pound := kind == KindPlural || kind == KindSelectOrdinal

	if pound {
		offset, err := p.parseOffset()
		if err != nil {
			return MessageElement{}, err
		}
		element.Offset = offset
	}

	for {
		p.skipWhitespace()
		if p.eof() {
			return MessageElement{}, p.errorf("unterminated %s for %q", kind, name)
		}
		if p.peek() == '}' {
			break
		}

		keyMark := p.mark()
		key := p.parseCaseKey()
		if key == "" {
			return MessageElement{}, p.errorf("expected case key in %s for %q", kind, name)
		}
		p.skipWhitespace()

		if p.peek() != '{' {
			if p.eof() {
				return MessageElement{}, p.errorf("unterminated %s for %q", kind, name)
			}
			return MessageElement{}, p.errorAt(keyMark, "expected '{' after case key %q", key)
		}
		p.advance() // '{'

		contentStart := p.pos
		content, err := p.parseMessage(parseCtx{stopAtBrace: true, pound: pound})
		if err != nil {
			return MessageElement{}, err
		}
		if p.eof() {
			return MessageElement{}, p.errorAt(keyMark, "unterminated case %q", key)
		}
		contentSource := p.slice(contentStart, p.pos)
		p.advance() // '}'

		element.Cases = append(element.Cases, newCase(key, newParsedMessage(content, contentSource)))
	}

	if len(element.Cases) == 0 {
		return MessageElement{}, p.errorAt(open, "%s for %q has no cases", kind, name)
	}

	p.advance() // outer '}'
	element.Span = p.spanFrom(open)
	return element, nil
}

// parseOffset consumes an optional offset:<number> clause. A bare "offset"
// identifier without a colon is treated as a case key and left in place.
func (p *parser) parseOffset() (float64, error) {
	m := p.mark()
	if p.parseIdentifier() != "offset" {
		p.restore(m)
		return 0, nil
	}
	p.skipWhitespace()
	if p.peek() != ':' {
		p.restore(m)
		return 0, nil
	}
	p.advance() // ':'
	p.skipWhitespace()

	numMark := p.mark()
	if p.peek() == '-' {
		p.advance()
	}
	for !p.eof() && (unicode.IsDigit(p.peek()) || p.peek() == '.') {
		p.advance()
	}
	text := p.slice(numMark.pos, p.pos)
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, p.errorAt(numMark, "invalid offset %q", text)
	}
	return value, nil
}

// parseTag parses <name>content</name> with the cursor on '<'. Nested
// placeholders and tags are allowed inside; reaching end of input before the
// closing sequence is fatal and reports the opening tag's position.
func (p *parser) parseTag(ctx parseCtx) (MessageElement, error) {
	open := p.mark()
	if p.peekAt(1) == '/' {
		return MessageElement{}, p.errorf("unexpected closing tag")
	}
	p.advance() // '<'

	name := p.parseIdentifier()
	if name == "" {
		return MessageElement{}, p.errorf("expected tag name")
	}
	if p.peek() != '>' {
		return MessageElement{}, p.errorf("expected '>' after tag name %q", name)
	}
	p.advance() // '>'

	bodyStart := p.pos
	body, err := p.parseMessage(parseCtx{stopAtBrace: false, closeTag: name, pound: ctx.pound})
	if err != nil {
		return MessageElement{}, err
	}
	if !p.closeTagAhead(name) {
		return MessageElement{}, p.errorAt(open, "unclosed tag <%s>", name)
	}
	bodySource := p.slice(bodyStart, p.pos)

	// consume </name>
	for i := 0; i < utf8.RuneCountInString(name)+3; i++ {
		p.advance()
	}

	return MessageElement{
		Kind: KindTag,
		Span: p.spanFrom(open),
		Name: name,
		Body: newParsedMessage(body, bodySource),
	}, nil
}
