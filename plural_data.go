package messageformat

import (
	"fmt"
	"sync"
)

// localeRules carries the raw CLDR rule text for one locale. The text is the
// same as shipped in CLDR's plurals.json / ordinals.json, samples included
// where they help document the rule.
type localeRules struct {
	cardinal []CategoryRule
	ordinal  []CategoryRule
}

var builtinPluralRules = map[string]localeRules{
	"en": {
		cardinal: []CategoryRule{
			{PluralOne, "i = 1 and v = 0 @integer 1"},
		},
		ordinal: []CategoryRule{
			{PluralOne, "n % 10 = 1 and n % 100 != 11 @integer 1, 21, 31, 41, 51, 61, 81, 101, 1001"},
			{PluralTwo, "n % 10 = 2 and n % 100 != 12 @integer 2, 22, 32, 42, 52, 62, 82, 102, 1002"},
			{PluralFew, "n % 10 = 3 and n % 100 != 13 @integer 3, 23, 33, 43, 53, 63, 83, 103, 1003"},
		},
	},
	"es": {
		cardinal: []CategoryRule{
			{PluralOne, "n = 1"},
			{PluralMany, "e = 0 and i != 0 and i % 1000000 = 0 and v = 0 or e != 0..5"},
		},
	},
	"fr": {
		cardinal: []CategoryRule{
			{PluralOne, "i = 0,1"},
			{PluralMany, "e = 0 and i != 0 and i % 1000000 = 0 and v = 0 or e != 0..5"},
		},
		ordinal: []CategoryRule{
			{PluralOne, "n = 1"},
		},
	},
	"pt": {
		cardinal: []CategoryRule{
			{PluralOne, "i = 0..1"},
			{PluralMany, "e = 0 and i != 0 and i % 1000000 = 0 and v = 0 or e != 0..5"},
		},
	},
	"it": {
		cardinal: []CategoryRule{
			{PluralOne, "i = 1 and v = 0"},
			{PluralMany, "e = 0 and i != 0 and i % 1000000 = 0 and v = 0 or e != 0..5"},
		},
		ordinal: []CategoryRule{
			{PluralMany, "n = 11,8,80,800"},
		},
	},
	"de": {
		cardinal: []CategoryRule{
			{PluralOne, "i = 1 and v = 0"},
		},
	},
	"nl": {
		cardinal: []CategoryRule{
			{PluralOne, "i = 1 and v = 0"},
		},
	},
	"ru": {
		cardinal: []CategoryRule{
			{PluralOne, "v = 0 and i % 10 = 1 and i % 100 != 11"},
			{PluralFew, "v = 0 and i % 10 = 2..4 and i % 100 != 12..14"},
			{PluralMany, "v = 0 and i % 10 = 0 or v = 0 and i % 10 = 5..9 or v = 0 and i % 100 = 11..14"},
		},
	},
	"uk": {
		cardinal: []CategoryRule{
			{PluralOne, "v = 0 and i % 10 = 1 and i % 100 != 11"},
			{PluralFew, "v = 0 and i % 10 = 2..4 and i % 100 != 12..14"},
			{PluralMany, "v = 0 and i % 10 = 0 or v = 0 and i % 10 = 5..9 or v = 0 and i % 100 = 11..14"},
		},
	},
	"pl": {
		cardinal: []CategoryRule{
			{PluralOne, "i = 1 and v = 0"},
			{PluralFew, "v = 0 and i % 10 = 2..4 and i % 100 != 12..14"},
			{PluralMany, "v = 0 and i != 1 and i % 10 = 0..1 or v = 0 and i % 10 = 5..9 or v = 0 and i % 100 = 12..14"},
		},
	},
	"cs": {
		cardinal: []CategoryRule{
			{PluralOne, "i = 1 and v = 0"},
			{PluralFew, "i = 2..4 and v = 0"},
			{PluralMany, "v != 0"},
		},
	},
	"sk": {
		cardinal: []CategoryRule{
			{PluralOne, "i = 1 and v = 0"},
			{PluralFew, "i = 2..4 and v = 0"},
			{PluralMany, "v != 0"},
		},
	},
	"ar": {
		cardinal: []CategoryRule{
			{PluralZero, "n = 0"},
			{PluralOne, "n = 1"},
			{PluralTwo, "n = 2"},
			{PluralFew, "n % 100 = 3..10"},
			{PluralMany, "n % 100 = 11..99"},
		},
	},
	"he": {
		cardinal: []CategoryRule{
			{PluralOne, "i = 1 and v = 0"},
			{PluralTwo, "i = 2 and v = 0"},
			{PluralMany, "v = 0 and n != 0..10 and n % 10 = 0"},
		},
	},
	"ja": {},
	"zh": {},
	"ko": {},
	"lv": {
		cardinal: []CategoryRule{
			{PluralZero, "n % 10 = 0 or n % 100 = 11..19 or v = 2 and f % 100 = 11..19"},
			{PluralOne, "n % 10 = 1 and n % 100 != 11 or v = 2 and f % 10 = 1 and f % 100 != 11 or v != 2 and f % 10 = 1"},
		},
	},
	"lt": {
		cardinal: []CategoryRule{
			{PluralOne, "n % 10 = 1 and n % 100 != 11..19"},
			{PluralFew, "n % 10 = 2..9 and n % 100 != 11..19"},
			{PluralMany, "f != 0"},
		},
	},
	"cy": {
		cardinal: []CategoryRule{
			{PluralZero, "n = 0"},
			{PluralOne, "n = 1"},
			{PluralTwo, "n = 2"},
			{PluralFew, "n = 3"},
			{PluralMany, "n = 6"},
		},
		ordinal: []CategoryRule{
			{PluralZero, "n = 0,7,8,9"},
			{PluralOne, "n = 1"},
			{PluralTwo, "n = 2"},
			{PluralFew, "n = 3,4"},
			{PluralMany, "n = 5,6"},
		},
	},
	"ga": {
		cardinal: []CategoryRule{
			{PluralOne, "n = 1"},
			{PluralTwo, "n = 2"},
			{PluralFew, "n = 3..6"},
			{PluralMany, "n = 7..10"},
		},
	},
	"ro": {
		cardinal: []CategoryRule{
			{PluralOne, "i = 1 and v = 0"},
			{PluralFew, "v != 0 or n = 0 or n % 100 = 2..19"},
		},
	},
	"tr": {
		cardinal: []CategoryRule{
			{PluralOne, "n = 1"},
		},
	},
}

var (
	builtinRuleSetsOnce sync.Once
	builtinCardinal     map[string]*RuleSet
	builtinOrdinal      map[string]*RuleSet
)

// builtinRuleSets compiles the shipped rule text once. The data is part of
// the module, so a parse failure is a programming error.
func builtinRuleSets() (cardinal, ordinal map[string]*RuleSet) {
	builtinRuleSetsOnce.Do(func() {
		builtinCardinal = make(map[string]*RuleSet, len(builtinPluralRules))
		builtinOrdinal = make(map[string]*RuleSet, len(builtinPluralRules))
		for locale, rules := range builtinPluralRules {
			card, err := NewRuleSet(locale, rules.cardinal)
			if err != nil {
				panic(fmt.Sprintf("messageformat: built-in cardinal rules for %q: %v", locale, err))
			}
			ord, err := NewRuleSet(locale, rules.ordinal)
			if err != nil {
				panic(fmt.Sprintf("messageformat: built-in ordinal rules for %q: %v", locale, err))
			}
			builtinCardinal[locale] = card
			builtinOrdinal[locale] = ord
		}
	})
	return builtinCardinal, builtinOrdinal
}
