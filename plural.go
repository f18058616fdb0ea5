package messageformat

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PluralCategory is one of the six CLDR plural categories.
type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

// Operands are the CLDR numeric facets of a formatted value, as defined in
// TR35. They are derived from the decimal textual representation of the
// number, so a value formatted as "1.0" has V=1 even though it is integral.
type Operands struct {
	N float64 // absolute value of the source number
	I int64   // integer digits of N
	V int     // count of visible fraction digits, with trailing zeros
	W int     // count of visible fraction digits, without trailing zeros
	F int64   // visible fraction digits as an integer, with trailing zeros
	T int64   // visible fraction digits as an integer, without trailing zeros
	C int     // compact decimal exponent (the 'c'/'e' operand)
}

// OperandsForInt derives operands for an integer value.
func OperandsForInt(n int64) Operands {
	if n < 0 {
		n = -n
	}
	return Operands{N: float64(n), I: n}
}

// OperandsForNumber derives operands from the shortest decimal representation
// of a float. Callers that know the exact formatted text should use
// OperandsForString instead.
func OperandsForNumber(value float64) Operands {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Operands{}
	}
	op, err := OperandsForString(strconv.FormatFloat(value, 'f', -1, 64))
	if err != nil {
		return Operands{N: math.Abs(value), I: int64(math.Abs(value))}
	}
	return op
}

// OperandsForString derives operands from decimal text such as "1", "-2.50"
// or compact notation "1.2c6".
func OperandsForString(text string) (Operands, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "-")
	if text == "" {
		return Operands{}, fmt.Errorf("messageformat: empty numeric text")
	}

	exponent := 0
	if idx := strings.IndexAny(text, "ce"); idx >= 0 {
		exp, err := strconv.Atoi(text[idx+1:])
		if err != nil || exp < 0 {
			return Operands{}, fmt.Errorf("messageformat: invalid exponent in %q", text)
		}
		exponent = exp
		text = text[:idx]
	}

	intPart := text
	fracPart := ""
	if idx := strings.IndexByte(text, '.'); idx >= 0 {
		intPart, fracPart = text[:idx], text[idx+1:]
	}
	if intPart == "" {
		intPart = "0"
	}

	// A compact exponent shifts digits from the fraction into the integer.
	for i := 0; i < exponent; i++ {
		if len(fracPart) > 0 {
			intPart += fracPart[:1]
			fracPart = fracPart[1:]
		} else {
			intPart += "0"
		}
	}

	i, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Operands{}, fmt.Errorf("messageformat: invalid number %q", text)
	}

	var op Operands
	op.I = i
	op.C = exponent
	op.V = len(fracPart)
	if op.V > 0 {
		f, err := strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return Operands{}, fmt.Errorf("messageformat: invalid fraction in %q", text)
		}
		op.F = f
	}
	trimmed := strings.TrimRight(fracPart, "0")
	op.W = len(trimmed)
	if op.W > 0 {
		t, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return Operands{}, fmt.Errorf("messageformat: invalid fraction in %q", text)
		}
		op.T = t
	}

	digits := intPart
	if fracPart != "" {
		digits = intPart + "." + fracPart
	}
	n, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return Operands{}, fmt.Errorf("messageformat: invalid number %q", text)
	}
	op.N = n
	return op, nil
}

// isIntegerValued reports whether N carries no visible nonzero fraction.
func (op Operands) isIntegerValued() bool {
	return op.T == 0
}

// Range is an inclusive integer range in a rule's range list. A bare integer
// is represented as Lo == Hi.
type Range struct {
	Lo int64
	Hi int64
}

// Relation is a single comparison in a plural rule: an operand, an optional
// modulus, and a range list the (possibly reduced) value must fall in.
type Relation struct {
	Operand byte
	Modulus int64
	Negated bool
	Ranges  []Range
}

func (r Relation) holds(op Operands) bool {
	value, integer := r.operandValue(op)

	matched := false
	if integer {
		if r.Modulus > 0 {
			value %= r.Modulus
		}
		for _, rng := range r.Ranges {
			if value >= rng.Lo && value <= rng.Hi {
				matched = true
				break
			}
		}
	}

	if r.Negated {
		return !matched
	}
	return matched
}

// operandValue extracts the integer value of the operand. For 'n' the second
// return is false when the number has a visible fraction; such values never
// match an integer range list.
func (r Relation) operandValue(op Operands) (int64, bool) {
	switch r.Operand {
	case 'n':
		return op.I, op.isIntegerValued()
	case 'i':
		return op.I, true
	case 'v':
		return int64(op.V), true
	case 'w':
		return int64(op.W), true
	case 'f':
		return op.F, true
	case 't':
		return op.T, true
	case 'e', 'c':
		return int64(op.C), true
	default:
		return 0, false
	}
}

// Condition is a parsed plural rule: an OR of AND groups of relations.
// The zero Condition is always true (the implicit "other" rule).
type Condition struct {
	orTerms [][]Relation
}

// Evaluate reports whether the condition holds for the operands.
func (c Condition) Evaluate(op Operands) bool {
	if len(c.orTerms) == 0 {
		return true
	}
	for _, group := range c.orTerms {
		all := true
		for _, rel := range group {
			if !rel.holds(op) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

// ParseRule parses CLDR plural-rule text such as
// "v = 0 and i % 10 = 2..4 and i % 100 != 12..14" into a Condition.
// Sample clauses after '@' are recognized and skipped. Text that is empty
// after sample stripping yields the always-true condition.
func ParseRule(text string) (Condition, error) {
	raw := text
	if idx := strings.IndexByte(text, '@'); idx >= 0 {
		text = text[:idx]
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Condition{}, nil
	}

	tokens, err := lexRule(raw, text)
	if err != nil {
		return Condition{}, err
	}

	rp := &ruleParser{rule: raw, tokens: tokens}
	cond, err := rp.parseCondition()
	if err != nil {
		return Condition{}, err
	}
	if !rp.eof() {
		return Condition{}, &RuleError{Rule: raw, Message: fmt.Sprintf("unexpected token %q", rp.peek())}
	}
	return cond, nil
}

func lexRule(rule, text string) ([]string, error) {
	var tokens []string
	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n':
			i++
		case c >= 'a' && c <= 'z':
			start := i
			for i < len(text) && text[i] >= 'a' && text[i] <= 'z' {
				i++
			}
			tokens = append(tokens, text[start:i])
		case c >= '0' && c <= '9':
			start := i
			for i < len(text) && text[i] >= '0' && text[i] <= '9' {
				i++
			}
			tokens = append(tokens, text[start:i])
		case c == '%':
			tokens = append(tokens, "%")
			i++
		case c == '=':
			tokens = append(tokens, "=")
			i++
		case c == '!':
			if i+1 >= len(text) || text[i+1] != '=' {
				return nil, &RuleError{Rule: rule, Message: "expected '=' after '!'"}
			}
			tokens = append(tokens, "!=")
			i += 2
		case c == ',':
			tokens = append(tokens, ",")
			i++
		case c == '.':
			if i+1 >= len(text) || text[i+1] != '.' {
				return nil, &RuleError{Rule: rule, Message: "expected '..' in range"}
			}
			tokens = append(tokens, "..")
			i += 2
		default:
			return nil, &RuleError{Rule: rule, Message: fmt.Sprintf("unexpected character %q", c)}
		}
	}
	return tokens, nil
}

type ruleParser struct {
	rule   string
	tokens []string
	pos    int
}

func (rp *ruleParser) eof() bool {
	return rp.pos >= len(rp.tokens)
}

func (rp *ruleParser) peek() string {
	if rp.eof() {
		return ""
	}
	return rp.tokens[rp.pos]
}

func (rp *ruleParser) next() string {
	tok := rp.peek()
	rp.pos++
	return tok
}

func (rp *ruleParser) errorf(format string, args ...any) error {
	return &RuleError{Rule: rp.rule, Message: fmt.Sprintf(format, args...)}
}

func (rp *ruleParser) parseCondition() (Condition, error) {
	var cond Condition
	for {
		group, err := rp.parseAndExpr()
		if err != nil {
			return Condition{}, err
		}
		cond.orTerms = append(cond.orTerms, group)
		if rp.peek() != "or" {
			return cond, nil
		}
		rp.next()
	}
}

func (rp *ruleParser) parseAndExpr() ([]Relation, error) {
	var group []Relation
	for {
		rel, err := rp.parseRelation()
		if err != nil {
			return nil, err
		}
		group = append(group, rel)
		if rp.peek() != "and" {
			return group, nil
		}
		rp.next()
	}
}

func (rp *ruleParser) parseRelation() (Relation, error) {
	operand := rp.next()
	if len(operand) != 1 || !strings.ContainsAny(operand, "nivwftec") {
		return Relation{}, rp.errorf("expected operand, got %q", operand)
	}

	rel := Relation{Operand: operand[0]}

	// "mod" is the operator spelling used by the older CLDR rule syntax.
	if rp.peek() == "%" || rp.peek() == "mod" {
		rp.next()
		mod, err := rp.parseInteger()
		if err != nil {
			return Relation{}, err
		}
		if mod <= 0 {
			return Relation{}, rp.errorf("modulus must be positive, got %d", mod)
		}
		rel.Modulus = mod
	}

	switch rp.next() {
	case "=":
	case "!=":
		rel.Negated = true
	default:
		return Relation{}, rp.errorf("expected '=' or '!=' after operand %q", operand)
	}

	for {
		rng, err := rp.parseRange()
		if err != nil {
			return Relation{}, err
		}
		rel.Ranges = append(rel.Ranges, rng)
		if rp.peek() != "," {
			return rel, nil
		}
		rp.next()
	}
}

func (rp *ruleParser) parseRange() (Range, error) {
	lo, err := rp.parseInteger()
	if err != nil {
		return Range{}, err
	}
	if rp.peek() != ".." {
		return Range{Lo: lo, Hi: lo}, nil
	}
	rp.next()
	hi, err := rp.parseInteger()
	if err != nil {
		return Range{}, err
	}
	if hi < lo {
		return Range{}, rp.errorf("range %d..%d is inverted", lo, hi)
	}
	return Range{Lo: lo, Hi: hi}, nil
}

func (rp *ruleParser) parseInteger() (int64, error) {
	tok := rp.next()
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, rp.errorf("expected integer, got %q", tok)
	}
	return n, nil
}

// CategoryRule pairs a plural category with its raw CLDR rule text.
type CategoryRule struct {
	Category PluralCategory
	Rule     string
}

type compiledRule struct {
	category  PluralCategory
	condition Condition
}

// RuleSet is an ordered, immutable set of compiled plural rules for one
// locale and one rule kind (cardinal or ordinal). Rules are evaluated in
// declaration order; "other" is implicit and always matches last.
type RuleSet struct {
	locale string
	rules  []compiledRule
}

// NewRuleSet compiles the given rules in order. An explicit "other" rule is
// accepted and kept, though it never needs to match.
func NewRuleSet(locale string, rules []CategoryRule) (*RuleSet, error) {
	rs := &RuleSet{locale: locale}
	for _, rule := range rules {
		if rule.Category == "" {
			return nil, fmt.Errorf("messageformat: rule set %q: empty category", locale)
		}
		cond, err := ParseRule(rule.Rule)
		if err != nil {
			return nil, fmt.Errorf("messageformat: rule set %q category %q: %w", locale, rule.Category, err)
		}
		rs.rules = append(rs.rules, compiledRule{category: rule.Category, condition: cond})
	}
	return rs, nil
}

// Locale returns the locale the rule set was built for.
func (rs *RuleSet) Locale() string {
	if rs == nil {
		return ""
	}
	return rs.locale
}

// Category returns the first category whose condition holds for the
// operands, defaulting to "other".
func (rs *RuleSet) Category(op Operands) PluralCategory {
	if rs == nil {
		return PluralOther
	}
	for _, rule := range rs.rules {
		if rule.condition.Evaluate(op) {
			return rule.category
		}
	}
	return PluralOther
}

// Categories lists the categories in declaration order, including the
// implicit "other".
func (rs *RuleSet) Categories() []PluralCategory {
	if rs == nil {
		return []PluralCategory{PluralOther}
	}
	out := make([]PluralCategory, 0, len(rs.rules)+1)
	seen := make(map[PluralCategory]struct{}, len(rs.rules)+1)
	for _, rule := range rs.rules {
		if _, ok := seen[rule.category]; ok {
			continue
		}
		seen[rule.category] = struct{}{}
		out = append(out, rule.category)
	}
	if _, ok := seen[PluralOther]; !ok {
		out = append(out, PluralOther)
	}
	return out
}
