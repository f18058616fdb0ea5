package messageformat

// MessageFormat bundles a compiled-message store, locale services and a
// formatter registry behind a small formatting facade. Safe for concurrent
// use once built.
type MessageFormat struct {
	store         *MessageStore
	services      LocaleServices
	formatters    *Registry
	defaultLocale string
	compileOpts   []CompileOption
}

// Option configures a MessageFormat.
type Option func(*MessageFormat)

// WithServices replaces the default locale services.
func WithServices(services LocaleServices) Option {
	return func(mf *MessageFormat) {
		if services != nil {
			mf.services = services
		}
	}
}

// WithFormatters replaces the formatter and tag registry.
func WithFormatters(registry *Registry) Option {
	return func(mf *MessageFormat) {
		if registry != nil {
			mf.formatters = registry
		}
	}
}

// WithDefaultLocale sets the locale used when Format receives an empty one.
func WithDefaultLocale(locale string) Option {
	return func(mf *MessageFormat) {
		if locale != "" {
			mf.defaultLocale = normalizeLocale(locale)
		}
	}
}

// WithStore replaces the pattern cache, e.g. to share one across engines.
func WithStore(store *MessageStore) Option {
	return func(mf *MessageFormat) {
		if store != nil {
			mf.store = store
		}
	}
}

// WithCompileOptions sets the options applied when the engine compiles
// patterns. Ignored when WithStore supplies a prebuilt store.
func WithCompileOptions(opts ...CompileOption) Option {
	return func(mf *MessageFormat) {
		mf.compileOpts = opts
	}
}

// New builds an engine with built-in locale services, an empty registry and a
// fresh pattern cache unless options say otherwise.
func New(opts ...Option) *MessageFormat {
	mf := &MessageFormat{
		defaultLocale: "en",
		formatters:    NewRegistry(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(mf)
	}
	if mf.services == nil {
		mf.services = NewLocaleServices()
	}
	if mf.store == nil {
		mf.store = NewMessageStore(mf.compileOpts...)
	}
	return mf
}

// Formatters exposes the registry for custom formatter and tag registration.
func (mf *MessageFormat) Formatters() *Registry {
	return mf.formatters
}

// Store exposes the compiled-message cache.
func (mf *MessageFormat) Store() *MessageStore {
	return mf.store
}

// Compile parses pattern through the engine's cache.
func (mf *MessageFormat) Compile(pattern string) (*ParsedMessage, error) {
	return mf.store.Get(pattern)
}

// Format compiles pattern (using the cache) and renders it for locale with
// the given arguments.
func (mf *MessageFormat) Format(locale, pattern string, args map[string]any) (string, error) {
	msg, err := mf.store.Get(pattern)
	if err != nil {
		return "", err
	}
	return mf.FormatMessage(locale, msg, args)
}

// FormatMessage renders an already compiled message.
func (mf *MessageFormat) FormatMessage(locale string, msg *ParsedMessage, args map[string]any) (string, error) {
	if locale == "" {
		locale = mf.defaultLocale
	}
	return Render(msg, &RenderContext{
		Locale:     locale,
		Args:       args,
		Services:   mf.services,
		Formatters: mf.formatters,
	})
}
