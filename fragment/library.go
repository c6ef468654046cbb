package fragment

import "sort"

// DefaultDestination is the fallback key consulted when a destination has
// no extended fragment of its own.
const DefaultDestination = "default"

// Fragment is an immutable named block of structured text.
type Fragment struct {
	// Key is the destination or category name the fragment is filed under.
	// The core fragment uses the key "core".
	Key string

	// Text is the fragment body. Opaque to the assembler beyond gross
	// structural markers (headings, paragraph breaks).
	Text string
}

// CoreKey is the key of the core fragment.
const CoreKey = "core"

// Library holds the fragment pools. It is populated once at construction
// and read-only thereafter, so it is safe to share across assemblies
// without locking.
type Library struct {
	core     Fragment
	extended map[string]Fragment
	examples map[string]Fragment
}

// NewLibrary builds a library from raw fragment text. The core text is
// required by contract; extended and examples maps may be nil or empty.
func NewLibrary(core string, extended, examples map[string]string) *Library {
	lib := &Library{
		core:     Fragment{Key: CoreKey, Text: core},
		extended: make(map[string]Fragment, len(extended)),
		examples: make(map[string]Fragment, len(examples)),
	}
	for key, text := range extended {
		lib.extended[key] = Fragment{Key: key, Text: text}
	}
	for key, text := range examples {
		lib.examples[key] = Fragment{Key: key, Text: text}
	}
	return lib
}

// Core returns the core fragment. It is always present.
func (l *Library) Core() Fragment {
	return l.core
}

// Extended returns the extended fragment for a destination. If the
// destination has none, the DefaultDestination fragment is returned
// instead; if that is also absent, ok is false.
func (l *Library) Extended(destination string) (Fragment, bool) {
	if frag, ok := l.extended[destination]; ok {
		return frag, true
	}
	if frag, ok := l.extended[DefaultDestination]; ok {
		return frag, true
	}
	return Fragment{}, false
}

// Example returns the examples fragment for a category. There is no
// fallback chain: an unknown category is simply absent.
func (l *Library) Example(category string) (Fragment, bool) {
	frag, ok := l.examples[category]
	return frag, ok
}

// Destinations returns the destination keys with extended fragments,
// sorted alphabetically for consistent ordering.
func (l *Library) Destinations() []string {
	keys := make([]string, 0, len(l.extended))
	for key := range l.extended {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Categories returns the category keys with example fragments, sorted
// alphabetically for consistent ordering.
func (l *Library) Categories() []string {
	keys := make([]string, 0, len(l.examples))
	for key := range l.examples {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
