package messageformat

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadPluralRules reads plural rule files and compiles them into cardinal and
// ordinal rule sets keyed by normalized locale. JSON files use the CLDR
// supplemental layout; YAML files use a locale -> {cardinal, ordinal} map.
// Later files override earlier ones per locale.
func LoadPluralRules(paths ...string) (map[string]*RuleSet, map[string]*RuleSet, error) {
	cardinal := make(map[string]*RuleSet)
	ordinal := make(map[string]*RuleSet)

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("messageformat: read plural rules %s: %w", path, err)
		}

		card, ord, err := decodePluralRuleFile(path, data)
		if err != nil {
			return nil, nil, fmt.Errorf("messageformat: decode plural rules %s: %w", path, err)
		}
		for locale, rs := range card {
			cardinal[locale] = rs
		}
		for locale, rs := range ord {
			ordinal[locale] = rs
		}
	}

	return cardinal, ordinal, nil
}

func decodePluralRuleFile(path string, data []byte) (map[string]*RuleSet, map[string]*RuleSet, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		return decodeCLDRRules(data)
	case ".yaml", ".yml":
		return decodeYAMLRules(data)
	default:
		return nil, nil, fmt.Errorf("unsupported extension %s", ext)
	}
}

// cldrSupplementalFile mirrors the CLDR plurals.json / ordinals.json layout:
// supplemental.plurals-type-cardinal.<locale>.pluralRule-count-<category>.
type cldrSupplementalFile struct {
	Supplemental struct {
		Cardinal map[string]map[string]string `json:"plurals-type-cardinal"`
		Ordinal  map[string]map[string]string `json:"plurals-type-ordinal"`
	} `json:"supplemental"`
}

func decodeCLDRRules(data []byte) (map[string]*RuleSet, map[string]*RuleSet, error) {
	var file cldrSupplementalFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, nil, err
	}
	if len(file.Supplemental.Cardinal) == 0 && len(file.Supplemental.Ordinal) == 0 {
		return nil, nil, fmt.Errorf("no plural rule data found")
	}

	cardinal, err := compileCLDRLocales(file.Supplemental.Cardinal)
	if err != nil {
		return nil, nil, err
	}
	ordinal, err := compileCLDRLocales(file.Supplemental.Ordinal)
	if err != nil {
		return nil, nil, err
	}
	return cardinal, ordinal, nil
}

func compileCLDRLocales(raw map[string]map[string]string) (map[string]*RuleSet, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	out := make(map[string]*RuleSet, len(raw))
	for locale, byCount := range raw {
		rules := make([]CategoryRule, 0, len(byCount))
		for key, text := range byCount {
			category, err := parsePluralCategory(strings.TrimPrefix(key, "pluralRule-count-"))
			if err != nil {
				return nil, fmt.Errorf("%s: %w", locale, err)
			}
			rules = append(rules, CategoryRule{Category: category, Rule: text})
		}
		sortCategoryRules(rules)

		rs, err := NewRuleSet(normalizeLocale(locale), rules)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", locale, err)
		}
		out[normalizeLocale(locale)] = rs
	}
	return out, nil
}

type yamlLocaleRules struct {
	Cardinal map[string]string `yaml:"cardinal"`
	Ordinal  map[string]string `yaml:"ordinal"`
}

func decodeYAMLRules(data []byte) (map[string]*RuleSet, map[string]*RuleSet, error) {
	var raw map[string]yamlLocaleRules
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("yaml parse error: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil, fmt.Errorf("empty plural rules yaml")
	}

	cardinal := make(map[string]*RuleSet)
	ordinal := make(map[string]*RuleSet)

	for locale, entry := range raw {
		if locale == "" {
			return nil, nil, fmt.Errorf("empty locale")
		}
		if len(entry.Cardinal) > 0 {
			rs, err := compileRuleMap(locale, entry.Cardinal)
			if err != nil {
				return nil, nil, err
			}
			cardinal[normalizeLocale(locale)] = rs
		}
		if len(entry.Ordinal) > 0 {
			rs, err := compileRuleMap(locale, entry.Ordinal)
			if err != nil {
				return nil, nil, err
			}
			ordinal[normalizeLocale(locale)] = rs
		}
	}

	return cardinal, ordinal, nil
}

func compileRuleMap(locale string, byCategory map[string]string) (*RuleSet, error) {
	rules := make([]CategoryRule, 0, len(byCategory))
	for key, text := range byCategory {
		category, err := parsePluralCategory(key)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", locale, err)
		}
		rules = append(rules, CategoryRule{Category: category, Rule: text})
	}
	sortCategoryRules(rules)

	rs, err := NewRuleSet(normalizeLocale(locale), rules)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", locale, err)
	}
	return rs, nil
}

// sortCategoryRules orders rules in the canonical CLDR category order so
// first-match evaluation is deterministic regardless of map iteration.
func sortCategoryRules(rules []CategoryRule) {
	sort.SliceStable(rules, func(i, j int) bool {
		return pluralCategoryOrder(rules[i].Category) < pluralCategoryOrder(rules[j].Category)
	})
}

func parsePluralCategory(raw string) (PluralCategory, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "zero":
		return PluralZero, nil
	case "one":
		return PluralOne, nil
	case "two":
		return PluralTwo, nil
	case "few":
		return PluralFew, nil
	case "many":
		return PluralMany, nil
	case "other":
		return PluralOther, nil
	default:
		return "", fmt.Errorf("unknown plural category %q", raw)
	}
}

func pluralCategoryOrder(category PluralCategory) int {
	switch category {
	case PluralZero:
		return 0
	case PluralOne:
		return 1
	case PluralTwo:
		return 2
	case PluralFew:
		return 3
	case PluralMany:
		return 4
	case PluralOther:
		return 5
	default:
		return 99
	}
}
