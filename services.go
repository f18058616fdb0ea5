package messageformat

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// LocaleServices is the boundary to locale data: plural/ordinal category
// resolution and the number/date/list/relative-time formatting the renderer
// delegates to. Implementations must be safe for concurrent use.
type LocaleServices interface {
	PluralCategory(locale string, op Operands) PluralCategory
	OrdinalCategory(locale string, op Operands) PluralCategory

	FormatNumber(locale string, value float64, style string) string
	FormatDate(locale string, t time.Time, style string) string
	FormatTime(locale string, t time.Time, style string) string
	FormatDateTime(locale string, t time.Time, style string) string
	FormatList(locale string, items []string, style, width string) string
	FormatRelativeTime(locale string, value float64, unit, style string) string
	FormatDateRange(locale string, from, to time.Time, style string) string
}

type servicesConfig struct {
	resolver      FallbackResolver
	defaultLocale string
	cardinal      map[string]*RuleSet
	ordinal       map[string]*RuleSet
}

// ServicesOption adjusts the default LocaleServices.
type ServicesOption func(*servicesConfig)

func WithServicesResolver(resolver FallbackResolver) ServicesOption {
	return func(sc *servicesConfig) {
		sc.resolver = resolver
	}
}

func WithServicesDefaultLocale(locale string) ServicesOption {
	return func(sc *servicesConfig) {
		sc.defaultLocale = normalizeLocale(locale)
	}
}

// WithCardinalRules adds or replaces the cardinal rule set for its locale.
func WithCardinalRules(rules *RuleSet) ServicesOption {
	return func(sc *servicesConfig) {
		if rules == nil || rules.Locale() == "" {
			return
		}
		if sc.cardinal == nil {
			sc.cardinal = make(map[string]*RuleSet)
		}
		sc.cardinal[normalizeLocale(rules.Locale())] = rules
	}
}

// WithOrdinalRules adds or replaces the ordinal rule set for its locale.
func WithOrdinalRules(rules *RuleSet) ServicesOption {
	return func(sc *servicesConfig) {
		if rules == nil || rules.Locale() == "" {
			return
		}
		if sc.ordinal == nil {
			sc.ordinal = make(map[string]*RuleSet)
		}
		sc.ordinal[normalizeLocale(rules.Locale())] = rules
	}
}

// localeServices is the default implementation, backed by the built-in rule
// data and golang.org/x/text formatting.
type localeServices struct {
	mu            sync.RWMutex
	printers      map[string]*message.Printer
	cardinal      map[string]*RuleSet
	ordinal       map[string]*RuleSet
	resolver      FallbackResolver
	defaultLocale string
}

// NewLocaleServices builds the default locale services. The built-in plural
// and ordinal rule sets are always present; options layer extra rule sets, a
// fallback resolver and the terminal fallback locale (defaults to "en") on
// top.
func NewLocaleServices(opts ...ServicesOption) LocaleServices {
	cfg := servicesConfig{defaultLocale: "en"}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	builtinCard, builtinOrd := builtinRuleSets()

	cardinal := make(map[string]*RuleSet, len(builtinCard)+len(cfg.cardinal))
	ordinal := make(map[string]*RuleSet, len(builtinOrd)+len(cfg.ordinal))
	for locale, rs := range builtinCard {
		cardinal[locale] = rs
	}
	for locale, rs := range builtinOrd {
		ordinal[locale] = rs
	}
	for locale, rs := range cfg.cardinal {
		cardinal[locale] = rs
	}
	for locale, rs := range cfg.ordinal {
		ordinal[locale] = rs
	}

	return &localeServices{
		printers:      make(map[string]*message.Printer),
		cardinal:      cardinal,
		ordinal:       ordinal,
		resolver:      cfg.resolver,
		defaultLocale: cfg.defaultLocale,
	}
}

// candidateLocales returns the lookup chain: the locale itself, its parents,
// any resolver-configured fallbacks with their parents, then the default.
func (s *localeServices) candidateLocales(locale string) []string {
	seen := make(map[string]struct{}, 6)
	candidates := make([]string, 0, 6)

	appendLocale := func(value string) {
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		candidates = append(candidates, value)
	}

	normalized := normalizeLocale(locale)
	appendLocale(normalized)
	for _, parent := range localeParentChain(normalized) {
		appendLocale(parent)
	}
	if s.resolver != nil {
		for _, fallback := range s.resolver.Resolve(normalized) {
			appendLocale(normalizeLocale(fallback))
			for _, parent := range localeParentChain(fallback) {
				appendLocale(parent)
			}
		}
	}
	appendLocale(s.defaultLocale)

	return candidates
}

func (s *localeServices) PluralCategory(locale string, op Operands) PluralCategory {
	for _, candidate := range s.candidateLocales(locale) {
		if rs, ok := s.cardinal[candidate]; ok {
			return rs.Category(op)
		}
	}
	return PluralOther
}

func (s *localeServices) OrdinalCategory(locale string, op Operands) PluralCategory {
	for _, candidate := range s.candidateLocales(locale) {
		if rs, ok := s.ordinal[candidate]; ok {
			return rs.Category(op)
		}
	}
	return PluralOther
}

func (s *localeServices) printer(locale string) *message.Printer {
	key := normalizeLocale(locale)

	s.mu.RLock()
	if p, ok := s.printers[key]; ok {
		s.mu.RUnlock()
		return p
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.printers[key]; ok {
		return p
	}
	p := message.NewPrinter(language.Make(key))
	s.printers[key] = p
	return p
}

func (s *localeServices) FormatNumber(locale string, value float64, style string) string {
	style = strings.TrimPrefix(strings.TrimSpace(style), "::")
	printer := s.printer(locale)

	switch {
	case style == "" || style == "decimal":
		return printer.Sprintf("%v", number.Decimal(value))
	case style == "integer":
		return printer.Sprintf("%v", number.Decimal(value,
			number.MaxFractionDigits(0)))
	case style == "percent":
		return printer.Sprintf("%v", number.Percent(value))
	case strings.HasPrefix(style, "currency/"):
		return s.formatCurrency(locale, value, strings.TrimPrefix(style, "currency/"))
	default:
		return printer.Sprintf("%v", number.Decimal(value))
	}
}

func (s *localeServices) formatCurrency(locale string, amount float64, code string) string {
	printer := s.printer(locale)
	formatted := printer.Sprintf("%v", number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))

	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return strings.ToUpper(strings.TrimSpace(code)) + " " + formatted
	}

	full := printer.Sprintf("%v", currency.Symbol(unit.Amount(amount)))
	symbol := strings.TrimSpace(strings.ReplaceAll(full, formatted, ""))
	if symbol == "" {
		symbol = unit.String()
	}
	return symbol + " " + formatted
}

func (s *localeServices) FormatDate(locale string, t time.Time, style string) string {
	layout := s.lookupPattern(locale, dateLayouts, style, "medium")
	return t.Format(layout)
}

func (s *localeServices) FormatTime(locale string, t time.Time, style string) string {
	layout := s.lookupPattern(locale, timeLayouts, style, "short")
	return t.Format(layout)
}

func (s *localeServices) FormatDateTime(locale string, t time.Time, style string) string {
	joiner := s.lookupPattern(locale, dateTimeJoiners, style, "medium")
	date := s.FormatDate(locale, t, style)
	clock := s.FormatTime(locale, t, style)
	return strings.ReplaceAll(strings.ReplaceAll(joiner, "{date}", date), "{time}", clock)
}

func (s *localeServices) FormatDateRange(locale string, from, to time.Time, style string) string {
	if from.Year() == to.Year() && from.YearDay() == to.YearDay() {
		return s.FormatDate(locale, from, style)
	}
	return s.FormatDate(locale, from, style) + " – " + s.FormatDate(locale, to, style)
}

func (s *localeServices) FormatList(locale string, items []string, style, width string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}

	patterns := s.listPatterns(locale, style, width)
	if len(items) == 2 {
		return applyListPattern(patterns.Two, items[0], items[1])
	}

	// Compose right to left: end pattern first, then middles, then start.
	out := applyListPattern(patterns.End, items[len(items)-2], items[len(items)-1])
	for i := len(items) - 3; i > 0; i-- {
		out = applyListPattern(patterns.Middle, items[i], out)
	}
	return applyListPattern(patterns.Start, items[0], out)
}

func (s *localeServices) listPatterns(locale, style, width string) listPatternSet {
	key := style
	if width != "" && width != "wide" {
		key = style + "-" + width
	}
	for _, candidate := range s.candidateLocales(locale) {
		if byStyle, ok := listPatternData[candidate]; ok {
			if patterns, ok := byStyle[key]; ok {
				return patterns
			}
			if patterns, ok := byStyle[style]; ok {
				return patterns
			}
		}
	}
	return defaultListPatterns
}

func applyListPattern(pattern, first, second string) string {
	out := strings.ReplaceAll(pattern, "{0}", first)
	return strings.ReplaceAll(out, "{1}", second)
}

func (s *localeServices) FormatRelativeTime(locale string, value float64, unit, style string) string {
	op := OperandsForNumber(value)
	category := s.PluralCategory(locale, op)

	phrases := s.relativePhrases(locale, unit)
	direction := phrases.Future
	magnitude := value
	if value < 0 {
		direction = phrases.Past
		magnitude = -value
	}

	unitName := phrases.Units[category]
	if unitName == "" {
		unitName = phrases.Units[PluralOther]
	}
	amount := s.FormatNumber(locale, magnitude, "")
	out := strings.ReplaceAll(direction, "{0}", amount)
	return strings.ReplaceAll(out, "{unit}", unitName)
}

func (s *localeServices) relativePhrases(locale, unit string) relativePhraseSet {
	for _, candidate := range s.candidateLocales(locale) {
		if byUnit, ok := relativeTimeData[candidate]; ok {
			if phrases, ok := byUnit[unit]; ok {
				return phrases
			}
		}
	}
	return relativePhraseSet{
		Future: "in {0} {unit}",
		Past:   "{0} {unit} ago",
		Units:  map[PluralCategory]string{PluralOther: unit},
	}
}

// lookupPattern walks the candidate chain through a per-locale style table.
func (s *localeServices) lookupPattern(locale string, table map[string]map[string]string, style, fallbackStyle string) string {
	if style == "" {
		style = fallbackStyle
	}
	for _, candidate := range s.candidateLocales(locale) {
		if byStyle, ok := table[candidate]; ok {
			if pattern, ok := byStyle[style]; ok {
				return pattern
			}
			if pattern, ok := byStyle[fallbackStyle]; ok {
				return pattern
			}
		}
	}
	if byStyle, ok := table["en"]; ok {
		if pattern, ok := byStyle[style]; ok {
			return pattern
		}
		return byStyle[fallbackStyle]
	}
	return time.RFC3339
}
