package profile

import (
	"fmt"
	"sort"
)

// DefaultKey is the reserved destination name whose profile backs all
// unknown destinations.
const DefaultKey = "default"

// Registry maps destination names to profiles. It is built once at
// startup and read-only thereafter; pass it by reference into the
// assembler rather than through ambient globals so tests can inject
// synthetic tables.
type Registry struct {
	profiles map[string]Profile
}

// NewRegistry builds a registry from the given profiles. One of them must
// carry the reserved "default" destination; duplicates are rejected.
func NewRegistry(profiles ...Profile) (*Registry, error) {
	table := make(map[string]Profile, len(profiles))
	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := table[p.Destination]; exists {
			return nil, fmt.Errorf("profile %q already registered", p.Destination)
		}
		table[p.Destination] = p
	}
	if _, ok := table[DefaultKey]; !ok {
		return nil, fmt.Errorf("registry requires a %q profile", DefaultKey)
	}
	return &Registry{profiles: table}, nil
}

// MustNewRegistry builds a registry, panicking on error. Use only for
// static tables whose validity is guaranteed.
func MustNewRegistry(profiles ...Profile) *Registry {
	reg, err := NewRegistry(profiles...)
	if err != nil {
		panic(fmt.Sprintf("profile.MustNewRegistry: %v", err))
	}
	return reg
}

// Resolve returns the profile for a destination, falling back to the
// default profile for unknown names. Resolution never fails.
func (r *Registry) Resolve(destination string) Profile {
	if p, ok := r.profiles[destination]; ok {
		return p
	}
	return r.profiles[DefaultKey]
}

// Lookup returns the profile for a destination without the default
// fallback.
func (r *Registry) Lookup(destination string) (Profile, bool) {
	p, ok := r.profiles[destination]
	return p, ok
}

// Default returns the reserved default profile.
func (r *Registry) Default() Profile {
	return r.profiles[DefaultKey]
}

// Available returns the registered destination names, sorted
// alphabetically for consistent ordering.
func (r *Registry) Available() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a destination has its own profile.
func (r *Registry) IsRegistered(destination string) bool {
	_, ok := r.profiles[destination]
	return ok
}

// DefaultRegistry returns the built-in destination table.
//
// Ceilings reflect what each destination tolerates in practice: Claude
// reads long context well, IDE rule files degrade sooner, and Windsurf
// enforces a hard cap on its rules file.
func DefaultRegistry() *Registry {
	return MustNewRegistry(
		Profile{
			Destination:     DefaultKey,
			Ceiling:         10000,
			Format:          FormatMarkdown,
			SupportsSymbols: true,
			Transform:       TransformGeneric,
		},
		Profile{
			Destination:     "claude",
			Ceiling:         40000,
			Format:          FormatMarkdown,
			SupportsSymbols: true,
			Transform:       TransformDetailed,
		},
		Profile{
			Destination:     "cursor",
			Ceiling:         24000,
			Format:          FormatMarkdown,
			SupportsSymbols: true,
			Transform:       TransformIDE,
		},
		Profile{
			Destination:     "copilot",
			Ceiling:         8000,
			LineLimit:       400,
			Format:          FormatPlain,
			SupportsSymbols: false,
			Transform:       TransformMinimal,
		},
		Profile{
			Destination:     "windsurf",
			Ceiling:         6000,
			LineLimit:       300,
			Format:          FormatStructured,
			SupportsSymbols: true,
			Transform:       TransformCompact,
		},
	)
}
