package messageformat

import (
	"strings"
	"testing"
	"time"
)

func TestServicesPluralCategory(t *testing.T) {
	services := NewLocaleServices()

	tests := []struct {
		locale string
		value  int64
		want   PluralCategory
	}{
		{"en", 1, PluralOne},
		{"en", 2, PluralOther},
		{"es", 1, PluralOne},
		{"es-MX", 1, PluralOne},
		{"ru", 3, PluralFew},
		{"ar", 0, PluralZero},
		{"ja", 1, PluralOther},
		{"zz", 1, PluralOne}, // unknown locale falls back to the default
	}

	for _, tc := range tests {
		got := services.PluralCategory(tc.locale, OperandsForInt(tc.value))
		if got != tc.want {
			t.Fatalf("PluralCategory(%q, %d) = %q, want %q", tc.locale, tc.value, got, tc.want)
		}
	}
}

func TestServicesOrdinalCategory(t *testing.T) {
	services := NewLocaleServices()

	if got := services.OrdinalCategory("fr", OperandsForInt(1)); got != PluralOne {
		t.Fatalf("fr ordinal 1 = %q", got)
	}
	if got := services.OrdinalCategory("fr", OperandsForInt(2)); got != PluralOther {
		t.Fatalf("fr ordinal 2 = %q", got)
	}
	if got := services.OrdinalCategory("cy", OperandsForInt(4)); got != PluralFew {
		t.Fatalf("cy ordinal 4 = %q", got)
	}
}

func TestServicesResolverFallback(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("xx", "ar")

	services := NewLocaleServices(WithServicesResolver(resolver))

	if got := services.PluralCategory("xx", OperandsForInt(3)); got != PluralFew {
		t.Fatalf("category via resolver = %q", got)
	}
}

func TestServicesCustomRules(t *testing.T) {
	rs, err := NewRuleSet("xx", []CategoryRule{{PluralOne, "n = 1..3"}})
	if err != nil {
		t.Fatalf("NewRuleSet: %v", err)
	}
	services := NewLocaleServices(WithCardinalRules(rs))

	if got := services.PluralCategory("xx", OperandsForInt(2)); got != PluralOne {
		t.Fatalf("custom rule category = %q", got)
	}
	if got := services.PluralCategory("xx", OperandsForInt(4)); got != PluralOther {
		t.Fatalf("custom rule category = %q", got)
	}
}

func TestServicesFormatNumber(t *testing.T) {
	services := NewLocaleServices()

	tests := []struct {
		locale string
		value  float64
		style  string
		want   string
	}{
		{"en", 1234.5, "", "1,234.5"},
		{"en", 1234.5, "decimal", "1,234.5"},
		{"en", 1234.7, "integer", "1,235"},
		{"en", 0.5, "percent", "50%"},
		{"de", 1234.5, "", "1.234,5"},
		{"en", 42, "::decimal", "42"},
	}

	for _, tc := range tests {
		got := services.FormatNumber(tc.locale, tc.value, tc.style)
		if got != tc.want {
			t.Fatalf("FormatNumber(%q, %v, %q) = %q, want %q", tc.locale, tc.value, tc.style, got, tc.want)
		}
	}
}

func TestServicesFormatCurrency(t *testing.T) {
	services := NewLocaleServices()

	got := services.FormatNumber("en", 1234.5, "currency/USD")
	if !strings.Contains(got, "1,234.50") {
		t.Fatalf("FormatNumber currency = %q", got)
	}

	got = services.FormatNumber("en", 10, "currency/NOPE")
	if !strings.Contains(got, "NOPE") || !strings.Contains(got, "10.00") {
		t.Fatalf("FormatNumber bad currency = %q", got)
	}
}

func TestServicesFormatDate(t *testing.T) {
	services := NewLocaleServices()
	when := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		locale string
		style  string
		want   string
	}{
		{"en", "short", "3/5/24"},
		{"en", "medium", "Mar 5, 2024"},
		{"en", "long", "March 5, 2024"},
		{"en", "full", "Tuesday, March 5, 2024"},
		{"es-MX", "short", "5/3/24"}, // parent chain reaches es
		{"en", "", "Mar 5, 2024"},
	}

	for _, tc := range tests {
		got := services.FormatDate(tc.locale, when, tc.style)
		if got != tc.want {
			t.Fatalf("FormatDate(%q, %q) = %q, want %q", tc.locale, tc.style, got, tc.want)
		}
	}
}

func TestServicesFormatTime(t *testing.T) {
	services := NewLocaleServices()
	when := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

	if got := services.FormatTime("en", when, "short"); got != "2:30 PM" {
		t.Fatalf("FormatTime en short = %q", got)
	}
	if got := services.FormatTime("de", when, "short"); got != "14:30" {
		t.Fatalf("FormatTime de short = %q", got)
	}
}

func TestServicesFormatDateTime(t *testing.T) {
	services := NewLocaleServices()
	when := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

	got := services.FormatDateTime("en", when, "long")
	if got != "March 5, 2024 at 2:30:00 PM UTC" {
		t.Fatalf("FormatDateTime = %q", got)
	}
}

func TestServicesFormatDateRange(t *testing.T) {
	services := NewLocaleServices()
	from := time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 8, 17, 0, 0, 0, time.UTC)

	got := services.FormatDateRange("en", from, to, "medium")
	if got != "Mar 5, 2024 – Mar 8, 2024" {
		t.Fatalf("FormatDateRange = %q", got)
	}

	// Same-day ranges collapse to a single date.
	sameDay := time.Date(2024, time.March, 5, 17, 0, 0, 0, time.UTC)
	got = services.FormatDateRange("en", from, sameDay, "medium")
	if got != "Mar 5, 2024" {
		t.Fatalf("same-day FormatDateRange = %q", got)
	}
}

func TestServicesFormatList(t *testing.T) {
	services := NewLocaleServices()

	tests := []struct {
		items []string
		style string
		want  string
	}{
		{nil, "and", ""},
		{[]string{"a"}, "and", "a"},
		{[]string{"a", "b"}, "and", "a and b"},
		{[]string{"a", "b", "c"}, "and", "a, b, and c"},
		{[]string{"a", "b", "c", "d"}, "and", "a, b, c, and d"},
		{[]string{"a", "b", "c"}, "or", "a, b, or c"},
	}

	for _, tc := range tests {
		got := services.FormatList("en", tc.items, tc.style, "wide")
		if got != tc.want {
			t.Fatalf("FormatList(%v, %q) = %q, want %q", tc.items, tc.style, got, tc.want)
		}
	}

	if got := services.FormatList("es", []string{"uno", "dos"}, "and", "wide"); got != "uno y dos" {
		t.Fatalf("es FormatList = %q", got)
	}
}

func TestServicesFormatRelativeTime(t *testing.T) {
	services := NewLocaleServices()

	tests := []struct {
		value float64
		unit  string
		want  string
	}{
		{3, "day", "in 3 days"},
		{1, "day", "in 1 day"},
		{-1, "day", "1 day ago"},
		{-5, "hour", "5 hours ago"},
	}

	for _, tc := range tests {
		got := services.FormatRelativeTime("en", tc.value, tc.unit, "long")
		if got != tc.want {
			t.Fatalf("FormatRelativeTime(%v, %q) = %q, want %q", tc.value, tc.unit, got, tc.want)
		}
	}

	if got := services.FormatRelativeTime("es", -1, "day", "long"); got != "hace 1 día" {
		t.Fatalf("es FormatRelativeTime = %q", got)
	}
}

func TestServicesRelativeTimeUnknownUnit(t *testing.T) {
	services := NewLocaleServices()
	if got := services.FormatRelativeTime("en", 2, "fortnight", "long"); got != "in 2 fortnight" {
		t.Fatalf("generic fallback = %q", got)
	}
}
