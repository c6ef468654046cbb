// Package content holds the built-in fragment library.
//
// The prose here is opaque to the rest of rulekit: the assembler and
// transformer only ever pattern-match gross structure (headings,
// paragraph breaks, a few literal section titles). Installs that want
// their own prose load a YAML manifest with fragment.LoadManifest
// instead of using DefaultLibrary.
package content
