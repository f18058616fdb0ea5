package messageformat

import "testing"

func TestRegistryFormatterLookup(t *testing.T) {
	registry := NewRegistry()

	if _, ok := registry.Formatter("missing", "en"); ok {
		t.Fatal("unexpected formatter")
	}

	registry.RegisterFormatter("shout", func(value any, style, locale string, services LocaleServices) (string, error) {
		return "default", nil
	})

	fn, ok := registry.Formatter("shout", "en")
	if !ok {
		t.Fatal("formatter not found")
	}
	out, err := fn(nil, "", "en", nil)
	if err != nil || out != "default" {
		t.Fatalf("fn = %q, %v", out, err)
	}
}

func TestRegistryLocaleOverride(t *testing.T) {
	registry := NewRegistry()
	registry.RegisterFormatter("shout", func(value any, style, locale string, services LocaleServices) (string, error) {
		return "default", nil
	})
	registry.RegisterLocaleFormatter("es_MX", "shout", func(value any, style, locale string, services LocaleServices) (string, error) {
		return "override", nil
	})

	// Locale keys are normalized, so underscore and hyphen forms match.
	fn, ok := registry.Formatter("shout", "es-MX")
	if !ok {
		t.Fatal("formatter not found")
	}
	out, _ := fn(nil, "", "es-MX", nil)
	if out != "override" {
		t.Fatalf("out = %q", out)
	}

	fn, _ = registry.Formatter("shout", "fr")
	out, _ = fn(nil, "", "fr", nil)
	if out != "default" {
		t.Fatalf("out = %q", out)
	}
}

func TestRegistryTags(t *testing.T) {
	registry := NewRegistry()

	if _, ok := registry.Tag("b"); ok {
		t.Fatal("unexpected tag handler")
	}

	registry.RegisterTag("b", func(body string) (string, error) {
		return "<b>" + body + "</b>", nil
	})

	handler, ok := registry.Tag("b")
	if !ok {
		t.Fatal("tag handler not found")
	}
	out, err := handler("x")
	if err != nil || out != "<b>x</b>" {
		t.Fatalf("handler = %q, %v", out, err)
	}
}

func TestRegistryNilSafe(t *testing.T) {
	var registry *Registry

	registry.RegisterFormatter("x", func(value any, style, locale string, services LocaleServices) (string, error) {
		return "", nil
	})
	registry.RegisterTag("x", func(body string) (string, error) { return "", nil })

	if _, ok := registry.Formatter("x", "en"); ok {
		t.Fatal("nil registry returned a formatter")
	}
	if _, ok := registry.Tag("x"); ok {
		t.Fatal("nil registry returned a tag handler")
	}
}

func TestRegistryIgnoresEmptyRegistrations(t *testing.T) {
	registry := NewRegistry()
	registry.RegisterFormatter("", func(value any, style, locale string, services LocaleServices) (string, error) {
		return "", nil
	})
	registry.RegisterFormatter("x", nil)

	if _, ok := registry.Formatter("", "en"); ok {
		t.Fatal("empty name registered")
	}
	if _, ok := registry.Formatter("x", "en"); ok {
		t.Fatal("nil formatter registered")
	}
}
