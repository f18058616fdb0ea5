package messageformat

import "sync"

// MessageStore caches compiled messages keyed by their source pattern, so hot
// patterns are parsed once and rendered many times. Safe for concurrent use.
type MessageStore struct {
	mu       sync.RWMutex
	messages map[string]*ParsedMessage
	opts     []CompileOption
}

// NewMessageStore builds an empty store. The compile options apply to every
// pattern the store compiles.
func NewMessageStore(opts ...CompileOption) *MessageStore {
	return &MessageStore{
		messages: make(map[string]*ParsedMessage),
		opts:     opts,
	}
}

// Get returns the compiled form of pattern, compiling and caching on first
// use. Compilation errors are not cached; a failing pattern is retried on the
// next call.
func (s *MessageStore) Get(pattern string) (*ParsedMessage, error) {
	if s == nil {
		return Compile(pattern)
	}

	s.mu.RLock()
	if msg, ok := s.messages[pattern]; ok {
		s.mu.RUnlock()
		return msg, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if msg, ok := s.messages[pattern]; ok {
		return msg, nil
	}

	msg, err := Compile(pattern, s.opts...)
	if err != nil {
		return nil, err
	}
	if s.messages == nil {
		s.messages = make(map[string]*ParsedMessage)
	}
	s.messages[pattern] = msg
	return msg, nil
}

// Preload compiles the given patterns eagerly, stopping at the first error.
func (s *MessageStore) Preload(patterns ...string) error {
	for _, pattern := range patterns {
		if _, err := s.Get(pattern); err != nil {
			return err
		}
	}
	return nil
}

// Len reports the number of cached messages.
func (s *MessageStore) Len() int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// Purge drops every cached message.
func (s *MessageStore) Purge() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = make(map[string]*ParsedMessage)
}
