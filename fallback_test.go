package messageformat

import "testing"

func TestStaticFallbackResolver(t *testing.T) {
	resolver := NewStaticFallbackResolver()

	if chain := resolver.Resolve("es"); chain != nil {
		t.Fatalf("Resolve before Set = %v", chain)
	}

	resolver.Set("es-MX", "es", "en")
	chain := resolver.Resolve("es-MX")
	if len(chain) != 2 || chain[0] != "es" || chain[1] != "en" {
		t.Fatalf("chain = %v", chain)
	}

	// Returned chains are copies; mutating one must not affect the resolver.
	chain[0] = "zz"
	if again := resolver.Resolve("es-MX"); again[0] != "es" {
		t.Fatalf("chain mutated to %v", again)
	}
}

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"es_MX", "es-MX"},
		{" en ", "en"},
		{"pt-BR", "pt-BR"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := normalizeLocale(tc.in); got != tc.want {
			t.Fatalf("normalizeLocale(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLocaleParentChain(t *testing.T) {
	chain := localeParentChain("es-MX")
	if len(chain) == 0 {
		t.Fatal("expected a parent chain")
	}
	found := false
	for _, locale := range chain {
		if locale == "es" {
			found = true
		}
	}
	if !found {
		t.Fatalf("chain %v does not contain es", chain)
	}

	if chain := localeParentChain(""); chain != nil {
		t.Fatalf("empty locale chain = %v", chain)
	}
}
