// Package profile defines destination profiles and their registry.
//
// A Profile is the static configuration record for one destination: the
// character ceiling, an optional line limit, the format style, whether the
// destination renders symbol glyphs, and which transform kind applies. The
// Registry maps destination names to profiles and falls back to the
// reserved "default" profile for unknown names — resolution never fails.
//
// # Usage
//
// The built-in table covers claude, cursor, copilot, windsurf and default:
//
//	reg := profile.DefaultRegistry()
//	prof := reg.Resolve("claude")    // claude profile
//	prof = reg.Resolve("unknown")    // default profile
//
// Registries are plain values built once at startup and injected where
// needed; tests construct synthetic ones:
//
//	reg, err := profile.NewRegistry(
//	    profile.Profile{Destination: "default", Ceiling: 100, Format: profile.FormatMarkdown},
//	    profile.Profile{Destination: "tiny", Ceiling: 50, Format: profile.FormatPlain},
//	)
//
// # Overrides
//
// Ceilings and flags can be adjusted per install with a TOML file:
//
//	[profiles.claude]
//	ceiling = 32000
//
//	cfg, err := profile.LoadConfig("rulekit.toml")
//	reg = reg.WithOverrides(cfg)
//
// ConfigSchema exposes a JSON schema for the overrides document so editors
// can validate it.
package profile
