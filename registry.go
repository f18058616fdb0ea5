package messageformat

import "sync"

// FormatterFunc renders the value of a Custom element. It receives the raw
// argument value, the trimmed style text, the render locale and the locale
// services handle. A returned error aborts the render call.
type FormatterFunc func(value any, style, locale string, services LocaleServices) (string, error)

// TagHandler wraps the already-rendered body of a Tag element.
// A returned error aborts the render call.
type TagHandler func(body string) (string, error)

// Registry holds the caller-supplied custom formatters and tag handlers.
// A nil *Registry is valid and empty.
type Registry struct {
	mu         sync.RWMutex
	formatters map[string]FormatterFunc
	overrides  map[string]map[string]FormatterFunc
	tags       map[string]TagHandler
}

func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]FormatterFunc),
		overrides:  make(map[string]map[string]FormatterFunc),
		tags:       make(map[string]TagHandler),
	}
}

// RegisterFormatter sets or replaces the default implementation for name.
func (r *Registry) RegisterFormatter(name string, fn FormatterFunc) {
	if r == nil || name == "" || fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.formatters == nil {
		r.formatters = make(map[string]FormatterFunc)
	}
	r.formatters[name] = fn
}

// RegisterLocaleFormatter registers a locale-specific override for name.
func (r *Registry) RegisterLocaleFormatter(locale, name string, fn FormatterFunc) {
	if r == nil || locale == "" || name == "" || fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.overrides == nil {
		r.overrides = make(map[string]map[string]FormatterFunc)
	}
	helpers := r.overrides[normalizeLocale(locale)]
	if helpers == nil {
		helpers = make(map[string]FormatterFunc)
		r.overrides[normalizeLocale(locale)] = helpers
	}
	helpers[name] = fn
}

// Formatter returns the implementation for name, preferring a locale
// override over the default.
func (r *Registry) Formatter(name, locale string) (FormatterFunc, bool) {
	if r == nil || name == "" {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.overrides != nil {
		if helpers, ok := r.overrides[normalizeLocale(locale)]; ok {
			if fn, ok := helpers[name]; ok {
				return fn, true
			}
		}
	}
	if r.formatters != nil {
		if fn, ok := r.formatters[name]; ok {
			return fn, true
		}
	}
	return nil, false
}

// RegisterTag sets or replaces the handler for tag name.
func (r *Registry) RegisterTag(name string, fn TagHandler) {
	if r == nil || name == "" || fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tags == nil {
		r.tags = make(map[string]TagHandler)
	}
	r.tags[name] = fn
}

// Tag returns the handler registered for name.
func (r *Registry) Tag(name string) (TagHandler, bool) {
	if r == nil || name == "" {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.tags[name]
	return fn, ok
}
