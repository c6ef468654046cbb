package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/rulekit/fragment"
	"github.com/randalmurphal/rulekit/profile"
)

func TestDefaultLibrary_CoreStructure(t *testing.T) {
	lib := DefaultLibrary()
	core := lib.Core().Text

	require.NotEmpty(t, core)
	// The truncator and transformer pattern-match these markers; the
	// built-in prose must carry them.
	assert.True(t, strings.HasPrefix(core, "# "))
	assert.Contains(t, core, "## Core Principles")
	assert.Contains(t, core, "## Implementation Guidelines")
	assert.Contains(t, core, "\n\n## Usage Instructions\n")
	assert.Contains(t, core, "\n\n\n")
}

func TestDefaultLibrary_CoversKnownDestinations(t *testing.T) {
	lib := DefaultLibrary()

	for _, dest := range profile.DefaultRegistry().Available() {
		frag, ok := lib.Extended(dest)
		require.True(t, ok, "destination %s has no extended fragment", dest)
		assert.NotEmpty(t, frag.Text, dest)
	}

	// Unknown destinations fall back to the default fragment.
	frag, ok := lib.Extended("zed")
	require.True(t, ok)
	assert.Equal(t, fragment.DefaultDestination, frag.Key)
}

func TestDefaultLibrary_Categories(t *testing.T) {
	lib := DefaultLibrary()

	assert.Equal(t, []string{"go", "javascript", "python", "rust"}, lib.Categories())
	_, ok := lib.Example("fortran")
	assert.False(t, ok)
}

func TestDefaultLibrary_Placeholders(t *testing.T) {
	lib := DefaultLibrary()
	names := fragment.Placeholders(lib.Core().Text)

	assert.Contains(t, names, "project")
	assert.Contains(t, names, "destination")
}
