package fragment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLibrary() *Library {
	return NewLibrary(
		"# Core\n\nAlways included.",
		map[string]string{
			"claude":  "Claude extended guidance.",
			"default": "Generic extended guidance.",
		},
		map[string]string{
			"go": "Go examples.",
		},
	)
}

func TestLibrary_Core(t *testing.T) {
	lib := newTestLibrary()

	core := lib.Core()
	assert.Equal(t, CoreKey, core.Key)
	assert.Contains(t, core.Text, "Always included.")
}

func TestLibrary_Extended(t *testing.T) {
	lib := newTestLibrary()

	// Direct hit.
	frag, ok := lib.Extended("claude")
	require.True(t, ok)
	assert.Equal(t, "claude", frag.Key)
	assert.Equal(t, "Claude extended guidance.", frag.Text)

	// Unknown destination falls back to default.
	frag, ok = lib.Extended("cursor")
	require.True(t, ok)
	assert.Equal(t, DefaultDestination, frag.Key)
	assert.Equal(t, "Generic extended guidance.", frag.Text)
}

func TestLibrary_Extended_NoFallback(t *testing.T) {
	lib := NewLibrary("core", map[string]string{"claude": "x"}, nil)

	// No default fragment registered: unknown destination is absent.
	_, ok := lib.Extended("cursor")
	assert.False(t, ok)

	// Known destination still resolves.
	_, ok = lib.Extended("claude")
	assert.True(t, ok)
}

func TestLibrary_Example(t *testing.T) {
	lib := newTestLibrary()

	frag, ok := lib.Example("go")
	require.True(t, ok)
	assert.Equal(t, "Go examples.", frag.Text)

	// No fallback chain for examples.
	_, ok = lib.Example("cobol")
	assert.False(t, ok)
	_, ok = lib.Example("")
	assert.False(t, ok)
}

func TestLibrary_Listings(t *testing.T) {
	lib := newTestLibrary()

	assert.Equal(t, []string{"claude", "default"}, lib.Destinations())
	assert.Equal(t, []string{"go"}, lib.Categories())
}

func TestNewLibrary_NilPools(t *testing.T) {
	lib := NewLibrary("core only", nil, nil)

	assert.Equal(t, "core only", lib.Core().Text)
	_, ok := lib.Extended("anything")
	assert.False(t, ok)
	_, ok = lib.Example("anything")
	assert.False(t, ok)
	assert.Empty(t, lib.Destinations())
	assert.Empty(t, lib.Categories())
}
