package fragment

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoCore is returned when a manifest declares no core fragment.
var ErrNoCore = errors.New("manifest has no core fragment")

// Manifest is the on-disk form of a fragment library. The file is YAML:
//
//	core: |
//	  # Project Rules
//	  ...
//	extended:
//	  claude: |
//	    ...
//	  default: |
//	    ...
//	examples:
//	  go: |
//	    ...
type Manifest struct {
	Core     string            `yaml:"core"`
	Extended map[string]string `yaml:"extended,omitempty"`
	Examples map[string]string `yaml:"examples,omitempty"`
}

// ParseManifest parses manifest YAML. The core fragment is required; the
// other pools may be absent.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse fragment manifest: %w", err)
	}
	if m.Core == "" {
		return nil, ErrNoCore
	}
	return &m, nil
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fragment manifest: %w", err)
	}
	return ParseManifest(data)
}

// Library builds an immutable Library from the manifest.
func (m *Manifest) Library() *Library {
	return NewLibrary(m.Core, m.Extended, m.Examples)
}
