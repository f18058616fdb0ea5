package messageformat

import (
	"errors"
	"testing"
)

func TestOperandsForString(t *testing.T) {
	tests := []struct {
		text string
		want Operands
	}{
		{"1", Operands{N: 1, I: 1}},
		{"-1", Operands{N: 1, I: 1}},
		{"1.0", Operands{N: 1, I: 1, V: 1}},
		{"1.00", Operands{N: 1, I: 1, V: 2}},
		{"1.3", Operands{N: 1.3, I: 1, V: 1, W: 1, F: 3, T: 3}},
		{"1.30", Operands{N: 1.3, I: 1, V: 2, W: 1, F: 30, T: 3}},
		{"1.03", Operands{N: 1.03, I: 1, V: 2, W: 2, F: 3, T: 3}},
		{"2.50", Operands{N: 2.5, I: 2, V: 2, W: 1, F: 50, T: 5}},
		{"1.2c6", Operands{N: 1200000, I: 1200000, C: 6}},
		{"1.2e3", Operands{N: 1200, I: 1200, C: 3}},
		{".5", Operands{N: 0.5, V: 1, W: 1, F: 5, T: 5}},
	}

	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			got, err := OperandsForString(tc.text)
			if err != nil {
				t.Fatalf("OperandsForString(%q): %v", tc.text, err)
			}
			if got != tc.want {
				t.Fatalf("operands = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestOperandsForStringErrors(t *testing.T) {
	for _, text := range []string{"", "abc", "1.2c-3", "1..2"} {
		if _, err := OperandsForString(text); err == nil {
			t.Fatalf("OperandsForString(%q) succeeded, want error", text)
		}
	}
}

func TestOperandsForNumber(t *testing.T) {
	op := OperandsForNumber(1.5)
	if op.I != 1 || op.V != 1 || op.F != 5 {
		t.Fatalf("operands = %+v", op)
	}

	// The shortest representation of 1.0 is "1", so it carries no fraction.
	op = OperandsForNumber(1.0)
	if op.I != 1 || op.V != 0 {
		t.Fatalf("operands = %+v", op)
	}

	op = OperandsForInt(-7)
	if op.N != 7 || op.I != 7 {
		t.Fatalf("operands = %+v", op)
	}
}

func TestParseRuleEvaluate(t *testing.T) {
	tests := []struct {
		rule  string
		text  string
		match bool
	}{
		{"i = 1 and v = 0", "1", true},
		{"i = 1 and v = 0", "1.0", false},
		{"i = 1 and v = 0", "2", false},
		{"n = 1", "1", true},
		{"n = 1", "1.0", true},
		{"n = 1", "1.5", false},
		{"n % 10 = 1 and n % 100 != 11", "21", true},
		{"n % 10 = 1 and n % 100 != 11", "11", false},
		{"v = 0 and i % 10 = 2..4 and i % 100 != 12..14", "23", true},
		{"v = 0 and i % 10 = 2..4 and i % 100 != 12..14", "13", false},
		{"n = 0 or n = 5", "5", true},
		{"n = 0 or n = 5", "3", false},
		{"i = 0,1", "0", true},
		{"i = 0,1", "1", true},
		{"i = 0,1", "2", false},
		{"n mod 10 = 1", "31", true},
		{"v != 0", "1.5", true},
		{"v != 0", "2", false},
		{"e != 0..5", "1.2c6", true},
		{"e != 0..5", "1", false},
		{"i = 1 and v = 0 @integer 1", "1", true},
	}

	for _, tc := range tests {
		t.Run(tc.rule+"/"+tc.text, func(t *testing.T) {
			cond, err := ParseRule(tc.rule)
			if err != nil {
				t.Fatalf("ParseRule(%q): %v", tc.rule, err)
			}
			op, err := OperandsForString(tc.text)
			if err != nil {
				t.Fatalf("OperandsForString(%q): %v", tc.text, err)
			}
			if got := cond.Evaluate(op); got != tc.match {
				t.Fatalf("Evaluate(%q, %q) = %v, want %v", tc.rule, tc.text, got, tc.match)
			}
		})
	}
}

func TestParseRuleEmptyAlwaysTrue(t *testing.T) {
	for _, text := range []string{"", "   ", "@integer 0~15, 100", "@decimal 1.1"} {
		cond, err := ParseRule(text)
		if err != nil {
			t.Fatalf("ParseRule(%q): %v", text, err)
		}
		if !cond.Evaluate(OperandsForInt(42)) {
			t.Fatalf("ParseRule(%q) should be always true", text)
		}
	}
}

func TestParseRuleErrors(t *testing.T) {
	tests := []string{
		"x = 1",
		"n == 1",
		"n = 5..2",
		"n % 0 = 1",
		"n ! 1",
		"n = 1 extra",
		"n =",
	}

	for _, rule := range tests {
		t.Run(rule, func(t *testing.T) {
			_, err := ParseRule(rule)
			if err == nil {
				t.Fatalf("ParseRule(%q) succeeded, want error", rule)
			}
			var ruleErr *RuleError
			if !errors.As(err, &ruleErr) {
				t.Fatalf("error type = %T", err)
			}
		})
	}
}

func TestRuleSetEnglish(t *testing.T) {
	rs, err := NewRuleSet("en", []CategoryRule{
		{PluralOne, "i = 1 and v = 0"},
	})
	if err != nil {
		t.Fatalf("NewRuleSet: %v", err)
	}

	tests := []struct {
		text string
		want PluralCategory
	}{
		{"0", PluralOther},
		{"1", PluralOne},
		{"1.0", PluralOther},
		{"1.5", PluralOther},
		{"2", PluralOther},
		{"21", PluralOther},
	}

	for _, tc := range tests {
		op, err := OperandsForString(tc.text)
		if err != nil {
			t.Fatalf("OperandsForString(%q): %v", tc.text, err)
		}
		if got := rs.Category(op); got != tc.want {
			t.Fatalf("Category(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestRuleSetArabic(t *testing.T) {
	card, _ := builtinRuleSets()
	rs, ok := card["ar"]
	if !ok {
		t.Fatal("missing built-in arabic rules")
	}

	tests := []struct {
		value int64
		want  PluralCategory
	}{
		{0, PluralZero},
		{1, PluralOne},
		{2, PluralTwo},
		{3, PluralFew},
		{10, PluralFew},
		{103, PluralFew},
		{11, PluralMany},
		{99, PluralMany},
		{111, PluralMany},
		{100, PluralOther},
		{102, PluralOther},
	}

	for _, tc := range tests {
		if got := rs.Category(OperandsForInt(tc.value)); got != tc.want {
			t.Fatalf("Category(%d) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestRuleSetRussian(t *testing.T) {
	card, _ := builtinRuleSets()
	rs := card["ru"]

	tests := []struct {
		value int64
		want  PluralCategory
	}{
		{1, PluralOne},
		{21, PluralOne},
		{2, PluralFew},
		{24, PluralFew},
		{5, PluralMany},
		{11, PluralMany},
		{12, PluralMany},
		{100, PluralMany},
	}

	for _, tc := range tests {
		if got := rs.Category(OperandsForInt(tc.value)); got != tc.want {
			t.Fatalf("Category(%d) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestRuleSetEnglishOrdinal(t *testing.T) {
	_, ord := builtinRuleSets()
	rs := ord["en"]

	tests := []struct {
		value int64
		want  PluralCategory
	}{
		{1, PluralOne},
		{21, PluralOne},
		{2, PluralTwo},
		{3, PluralFew},
		{4, PluralOther},
		{11, PluralOther},
		{12, PluralOther},
		{13, PluralOther},
		{101, PluralOne},
	}

	for _, tc := range tests {
		if got := rs.Category(OperandsForInt(tc.value)); got != tc.want {
			t.Fatalf("ordinal Category(%d) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestRuleSetNilAndEmpty(t *testing.T) {
	var rs *RuleSet
	if got := rs.Category(OperandsForInt(5)); got != PluralOther {
		t.Fatalf("nil Category = %q", got)
	}

	empty, err := NewRuleSet("ja", nil)
	if err != nil {
		t.Fatalf("NewRuleSet: %v", err)
	}
	if got := empty.Category(OperandsForInt(5)); got != PluralOther {
		t.Fatalf("empty Category = %q", got)
	}
}

func TestRuleSetCategories(t *testing.T) {
	card, _ := builtinRuleSets()
	got := card["cy"].Categories()
	want := []PluralCategory{PluralZero, PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther}
	if len(got) != len(want) {
		t.Fatalf("categories = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("categories[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewRuleSetRejectsBadRule(t *testing.T) {
	_, err := NewRuleSet("xx", []CategoryRule{{PluralOne, "bogus rule text"}})
	if err == nil {
		t.Fatal("expected error")
	}
}
