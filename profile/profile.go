package profile

import "fmt"

// Format identifies the formatting convention a destination expects.
type Format string

const (
	// FormatMarkdown is full markdown with nested headings and emphasis.
	FormatMarkdown Format = "markdown"

	// FormatPlain is flat text: shallow headings, no decorative markup.
	FormatPlain Format = "plain"

	// FormatStructured is markdown tuned for structured reasoning output.
	FormatStructured Format = "structured"
)

// Transform identifies the named rewrite procedure for a destination.
// The transform pipeline maps each kind to a fixed set of steps.
type Transform string

const (
	// TransformGeneric applies only the preamble injection.
	TransformGeneric Transform = "generic"

	// TransformDetailed favors exhaustive detail: preamble, marker
	// annotations, and an unconditional worked-example appendix.
	TransformDetailed Transform = "detailed"

	// TransformIDE targets IDE rule files: preamble plus specialized
	// guidance ahead of the Implementation Guidelines section.
	TransformIDE Transform = "ide"

	// TransformMinimal targets flat-text consumers: preamble, symbol
	// removal, and structural simplification.
	TransformMinimal Transform = "minimal"

	// TransformCompact targets tightly-capped destinations: preamble and
	// structural simplification, symbols kept.
	TransformCompact Transform = "compact"
)

// Profile is the static configuration record for one destination.
// Profiles are established at startup and read-only thereafter.
type Profile struct {
	// Destination is the registry key, e.g. "claude".
	Destination string

	// Ceiling is the maximum character count for the destination's
	// output. Always >= 0.
	Ceiling int

	// LineLimit is the maximum line count; 0 means no line limit.
	LineLimit int

	// Format is the destination's formatting convention.
	Format Format

	// SupportsSymbols reports whether the destination renders symbol
	// glyphs. When false, the transform pipeline strips them.
	SupportsSymbols bool

	// Transform names the rewrite procedure applied after assembly.
	Transform Transform
}

// Validate checks the profile's field domains.
func (p Profile) Validate() error {
	if p.Destination == "" {
		return fmt.Errorf("profile destination is required")
	}
	if p.Ceiling < 0 {
		return fmt.Errorf("profile %q: ceiling must be >= 0, got %d", p.Destination, p.Ceiling)
	}
	if p.LineLimit < 0 {
		return fmt.Errorf("profile %q: line_limit must be >= 0, got %d", p.Destination, p.LineLimit)
	}
	switch p.Format {
	case FormatMarkdown, FormatPlain, FormatStructured:
	default:
		return fmt.Errorf("profile %q: unknown format %q", p.Destination, p.Format)
	}
	switch p.Transform {
	case TransformGeneric, TransformDetailed, TransformIDE, TransformMinimal, TransformCompact:
	default:
		return fmt.Errorf("profile %q: unknown transform %q", p.Destination, p.Transform)
	}
	return nil
}
