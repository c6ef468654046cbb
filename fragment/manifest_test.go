package fragment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifest(t *testing.T) {
	data := []byte(`core: |
  # Project Rules

  Core guidance here.
extended:
  claude: |
    Claude-specific additions.
  default: |
    Generic additions.
examples:
  go: |
    Worked Go example.
`)

	m, err := ParseManifest(data)
	require.NoError(t, err)

	assert.Contains(t, m.Core, "# Project Rules")
	assert.Contains(t, m.Extended["claude"], "Claude-specific")
	assert.Contains(t, m.Examples["go"], "Worked Go example")

	lib := m.Library()
	frag, ok := lib.Extended("windsurf")
	require.True(t, ok, "unknown destination should fall back to default")
	assert.Contains(t, frag.Text, "Generic additions")
}

func TestParseManifest_MissingCore(t *testing.T) {
	data := []byte(`extended:
  claude: some text
`)

	_, err := ParseManifest(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoCore)
}

func TestParseManifest_InvalidYAML(t *testing.T) {
	_, err := ParseManifest([]byte("core: [unclosed"))
	assert.Error(t, err)
}

func TestLoadManifest(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "rulekit.yaml")

	content := `core: |
  Core text.
examples:
  python: |
    Python example.
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	m, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Contains(t, m.Core, "Core text.")

	lib := m.Library()
	_, ok := lib.Example("python")
	assert.True(t, ok)
}

func TestLoadManifest_Missing(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
