package profile

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk overrides document for the profile table. The
// file is TOML; every field is optional and unset fields keep the
// registry's value:
//
//	[profiles.claude]
//	ceiling = 32000
//
//	[profiles.copilot]
//	line_limit = 200
//	symbols = false
type Config struct {
	Profiles map[string]Overrides `toml:"profiles" json:"profiles"`
}

// Overrides adjusts one destination's profile. Pointer fields distinguish
// "unset" from zero values.
type Overrides struct {
	Ceiling   *int    `toml:"ceiling" json:"ceiling,omitempty" jsonschema:"minimum=0,description=Maximum character count for the destination's output"`
	LineLimit *int    `toml:"line_limit" json:"line_limit,omitempty" jsonschema:"minimum=0,description=Maximum line count; 0 disables the line limit"`
	Format    *string `toml:"format" json:"format,omitempty" jsonschema:"enum=markdown,enum=plain,enum=structured"`
	Symbols   *bool   `toml:"symbols" json:"symbols,omitempty" jsonschema:"description=Whether the destination renders symbol glyphs"`
	Transform *string `toml:"transform" json:"transform,omitempty" jsonschema:"enum=generic,enum=detailed,enum=ide,enum=minimal,enum=compact"`
}

// LoadConfig reads and parses a TOML overrides file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses TOML overrides.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse profile config: %w", err)
	}
	return &cfg, nil
}

// WithOverrides returns a new registry with cfg applied on top of r.
// Overrides for destinations the registry does not know create new
// profiles based on the default profile. The receiver is not modified.
func (r *Registry) WithOverrides(cfg *Config) (*Registry, error) {
	if cfg == nil || len(cfg.Profiles) == 0 {
		return r, nil
	}

	merged := make(map[string]Profile, len(r.profiles))
	for name, p := range r.profiles {
		merged[name] = p
	}

	for name, o := range cfg.Profiles {
		base, ok := merged[name]
		if !ok {
			base = r.Default()
			base.Destination = name
		}
		if o.Ceiling != nil {
			base.Ceiling = *o.Ceiling
		}
		if o.LineLimit != nil {
			base.LineLimit = *o.LineLimit
		}
		if o.Format != nil {
			base.Format = Format(*o.Format)
		}
		if o.Symbols != nil {
			base.SupportsSymbols = *o.Symbols
		}
		if o.Transform != nil {
			base.Transform = Transform(*o.Transform)
		}
		if err := base.Validate(); err != nil {
			return nil, fmt.Errorf("apply overrides: %w", err)
		}
		merged[name] = base
	}

	out := make([]Profile, 0, len(merged))
	for _, p := range merged {
		out = append(out, p)
	}
	return NewRegistry(out...)
}
