package messageformat

import "sync"

// FallbackResolver resolves the fallback locale chain for a locale.
type FallbackResolver interface {
	Resolve(locale string) []string
}

// StaticFallbackResolver maps locales to explicit fallback chains.
type StaticFallbackResolver struct {
	mu     sync.RWMutex
	chains map[string][]string
}

func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[string][]string)}
}

// Set replaces the fallback chain for locale.
func (s *StaticFallbackResolver) Set(locale string, fallbacks ...string) {
	if s == nil || locale == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chains == nil {
		s.chains = make(map[string][]string)
	}
	s.chains[normalizeLocale(locale)] = append([]string(nil), fallbacks...)
}

// Resolve returns a copy of the configured chain, or nil.
func (s *StaticFallbackResolver) Resolve(locale string) []string {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	chain, ok := s.chains[normalizeLocale(locale)]
	if !ok || len(chain) == 0 {
		return nil
	}
	out := make([]string, len(chain))
	copy(out, chain)
	return out
}
