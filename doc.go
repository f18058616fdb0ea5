// Package messageformat compiles ICU MessageFormat pattern strings into
// immutable syntax trees and renders them against runtime arguments and a
// target locale.
//
// A pattern is compiled once with Compile and the resulting ParsedMessage can
// be shared across goroutines and render calls. Rendering walks the tree with
// a per-call RenderContext that carries the locale, the argument map, the
// locale services handle and the extensibility registries:
//
//	msg, err := messageformat.Compile("{n, plural, one {# item} other {# items}}")
//	out, err := messageformat.Render(msg, &messageformat.RenderContext{
//		Locale:   "en",
//		Args:     map[string]any{"n": 3},
//		Services: messageformat.NewLocaleServices(),
//	})
//
// Plural and selectordinal branches are chosen by the CLDR plural-rule engine
// (ParseRule, Condition, RuleSet), which interprets rule text such as
// "v = 0 and i % 10 = 1 and i % 100 != 11" against the numeric operands of
// the value being formatted.
package messageformat
