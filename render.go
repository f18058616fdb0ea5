package messageformat

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RenderContext carries the per-call rendering inputs. It is cheap to build,
// lives for a single render call and is never retained by the engine.
type RenderContext struct {
	// Locale is the target locale identifier, e.g. "en" or "es-MX".
	Locale string
	// Args maps variable names to runtime values of arbitrary shape.
	Args map[string]any
	// Services resolves plural categories and locale formatting. May be nil,
	// in which case numbers render invariantly and categories are "other".
	Services LocaleServices
	// Formatters holds custom formatters and tag handlers. May be nil.
	Formatters *Registry
}

// DateRange is the argument shape for daterange placeholders.
type DateRange struct {
	From time.Time
	To   time.Time
}

var builderPool = sync.Pool{
	New: func() any { return &strings.Builder{} },
}

// Render walks the compiled message and produces the output string. The
// message is never mutated; the same ParsedMessage may be rendered
// concurrently with different contexts.
func Render(msg *ParsedMessage, ctx *RenderContext) (string, error) {
	if msg == nil {
		return "", ErrNilMessage
	}
	if ctx == nil {
		ctx = &RenderContext{}
	}

	b := builderPool.Get().(*strings.Builder)
	defer func() {
		b.Reset()
		builderPool.Put(b)
	}()

	st := renderState{ctx: ctx, out: b}
	if err := st.renderMessage(msg); err != nil {
		return "", err
	}
	return b.String(), nil
}

// renderState is the call-local walk state: the output sink and the stack of
// effective plural values feeding '#' substitution.
type renderState struct {
	ctx   *RenderContext
	out   *strings.Builder
	pound []string
}

func (st *renderState) renderMessage(msg *ParsedMessage) error {
	for i := range msg.elements {
		if err := st.renderElement(&msg.elements[i]); err != nil {
			return err
		}
	}
	return nil
}

func (st *renderState) renderElement(el *MessageElement) error {
	switch el.Kind {
	case KindLiteral:
		st.out.WriteString(el.Text)
		return nil

	case kindPound:
		if n := len(st.pound); n > 0 {
			st.out.WriteString(st.pound[n-1])
		} else {
			st.out.WriteByte('#')
		}
		return nil

	case KindArgument:
		value, ok := st.lookup(el.Var)
		if !ok || value == nil {
			return nil
		}
		st.out.WriteString(stringify(value))
		return nil

	case KindPlural:
		return st.renderBranching(el, false)

	case KindSelectOrdinal:
		return st.renderBranching(el, true)

	case KindSelect:
		return st.renderSelect(el)

	case KindTag:
		return st.renderTag(el)

	case KindCustom:
		return st.renderCustom(el)

	case KindNumber:
		value, _ := st.numericArg(el.Var)
		if st.ctx.Services == nil {
			st.out.WriteString(formatInvariant(value))
			return nil
		}
		st.out.WriteString(st.ctx.Services.FormatNumber(st.ctx.Locale, value, el.Style))
		return nil

	case KindDate:
		if t, ok := st.timeArg(el.Var); ok && st.ctx.Services != nil {
			st.out.WriteString(st.ctx.Services.FormatDate(st.ctx.Locale, t, el.Style))
		}
		return nil

	case KindTime:
		if t, ok := st.timeArg(el.Var); ok && st.ctx.Services != nil {
			st.out.WriteString(st.ctx.Services.FormatTime(st.ctx.Locale, t, el.Style))
		}
		return nil

	case KindDateTime:
		if t, ok := st.timeArg(el.Var); ok && st.ctx.Services != nil {
			st.out.WriteString(st.ctx.Services.FormatDateTime(st.ctx.Locale, t, el.Style))
		}
		return nil

	case KindList:
		items, ok := st.listArg(el.Var)
		if !ok {
			return nil
		}
		if st.ctx.Services == nil {
			st.out.WriteString(strings.Join(items, ", "))
			return nil
		}
		st.out.WriteString(st.ctx.Services.FormatList(st.ctx.Locale, items, el.Style, el.Width))
		return nil

	case KindRelativeTime:
		value, _ := st.numericArg(el.Var)
		if st.ctx.Services == nil {
			st.out.WriteString(formatInvariant(value))
			return nil
		}
		st.out.WriteString(st.ctx.Services.FormatRelativeTime(st.ctx.Locale, value, el.Unit, el.Style))
		return nil

	case KindDateRange:
		value, ok := st.lookup(el.Var)
		if !ok || st.ctx.Services == nil {
			return nil
		}
		if r, ok := value.(DateRange); ok {
			st.out.WriteString(st.ctx.Services.FormatDateRange(st.ctx.Locale, r.From, r.To, el.Style))
		}
		return nil

	default:
		return fmt.Errorf("messageformat: unhandled element kind %v", el.Kind)
	}
}

// renderBranching handles plural and selectordinal. Exact-match cases win
// over category matching; a missing "other" branch is fatal.
func (st *renderState) renderBranching(el *MessageElement, ordinal bool) error {
	raw, rawText := st.numericArgText(el.Var)
	effective := raw - el.Offset

	var op Operands
	if el.Offset == 0 && rawText != "" {
		if parsed, err := OperandsForString(rawText); err == nil {
			op = parsed
		} else {
			op = OperandsForNumber(effective)
		}
	} else {
		op = OperandsForNumber(effective)
	}

	category := PluralOther
	if st.ctx.Services != nil {
		if ordinal {
			category = st.ctx.Services.OrdinalCategory(st.ctx.Locale, op)
		} else {
			category = st.ctx.Services.PluralCategory(st.ctx.Locale, op)
		}
	}

	selected := selectCase(el.Cases, raw, category)
	if selected == nil {
		return fmt.Errorf("%w: %s for %q", ErrMissingOtherCase, el.Kind, el.Var)
	}

	st.pound = append(st.pound, formatInvariant(effective))
	err := st.renderMessage(selected.Content)
	st.pound = st.pound[:len(st.pound)-1]
	return err
}

func selectCase(cases []Case, raw float64, category PluralCategory) *Case {
	for i := range cases {
		if cases[i].Exact != nil && *cases[i].Exact == raw {
			return &cases[i]
		}
	}
	for i := range cases {
		if cases[i].Key == string(category) {
			return &cases[i]
		}
	}
	for i := range cases {
		if cases[i].Key == "other" {
			return &cases[i]
		}
	}
	return nil
}

func (st *renderState) renderSelect(el *MessageElement) error {
	value, ok := st.lookup(el.Var)

	key := "null"
	if ok && value != nil {
		switch v := value.(type) {
		case bool:
			key = strconv.FormatBool(v)
		default:
			key = stringify(value)
		}
	}

	for i := range el.Cases {
		if el.Cases[i].Key == key {
			return st.renderMessage(el.Cases[i].Content)
		}
	}
	for i := range el.Cases {
		if el.Cases[i].Key == "other" {
			return st.renderMessage(el.Cases[i].Content)
		}
	}
	return fmt.Errorf("%w: select for %q", ErrMissingOtherCase, el.Var)
}

// renderTag renders the body first, then hands it to the registered handler.
// Without a handler the body is emitted unwrapped.
func (st *renderState) renderTag(el *MessageElement) error {
	body, err := st.renderToString(el.Body)
	if err != nil {
		return err
	}

	if handler, ok := st.ctx.Formatters.Tag(el.Name); ok {
		wrapped, err := handler(body)
		if err != nil {
			return err
		}
		st.out.WriteString(wrapped)
		return nil
	}

	st.out.WriteString(body)
	return nil
}

func (st *renderState) renderCustom(el *MessageElement) error {
	value, _ := st.lookup(el.Var)

	if fn, ok := st.ctx.Formatters.Formatter(el.Name, st.ctx.Locale); ok {
		out, err := fn(value, strings.TrimSpace(el.Args), st.ctx.Locale, st.ctx.Services)
		if err != nil {
			return err
		}
		st.out.WriteString(out)
		return nil
	}

	if value == nil {
		return nil
	}
	st.out.WriteString(stringify(value))
	return nil
}

// renderToString renders a sub-message into a pooled scratch builder.
func (st *renderState) renderToString(msg *ParsedMessage) (string, error) {
	b := builderPool.Get().(*strings.Builder)
	defer func() {
		b.Reset()
		builderPool.Put(b)
	}()

	sub := renderState{ctx: st.ctx, out: b, pound: st.pound}
	if err := sub.renderMessage(msg); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (st *renderState) lookup(name string) (any, bool) {
	if st.ctx.Args == nil {
		return nil, false
	}
	value, ok := st.ctx.Args[name]
	return value, ok
}

// numericArg reads the variable as a number; absent, nil or non-numeric
// values default to zero.
func (st *renderState) numericArg(name string) (float64, bool) {
	value, ok := st.lookup(name)
	if !ok || value == nil {
		return 0, false
	}
	n, ok := numericValue(value)
	return n, ok
}

// numericArgText additionally returns the decimal text of a string argument,
// which preserves visible fraction digits for operand derivation.
func (st *renderState) numericArgText(name string) (float64, string) {
	value, ok := st.lookup(name)
	if !ok || value == nil {
		return 0, ""
	}
	if s, ok := value.(string); ok {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return n, s
		}
		return 0, ""
	}
	n, _ := numericValue(value)
	return n, ""
}

func (st *renderState) timeArg(name string) (time.Time, bool) {
	value, ok := st.lookup(name)
	if !ok || value == nil {
		return time.Time{}, false
	}
	switch v := value.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	default:
		return time.Time{}, false
	}
}

func (st *renderState) listArg(name string) ([]string, bool) {
	value, ok := st.lookup(name)
	if !ok || value == nil {
		return nil, false
	}
	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, stringify(item))
		}
		return items, true
	default:
		return nil, false
	}
}

func numericValue(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		n, err := strconv.ParseFloat(v, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// formatInvariant renders a number without locale influence, as used for '#'
// substitution and service-less fallbacks.
func formatInvariant(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return formatInvariant(v)
	case float32:
		return formatInvariant(float64(v))
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
