package assemble

import (
	"fmt"

	"github.com/randalmurphal/rulekit/fragment"
	"github.com/randalmurphal/rulekit/profile"
	"github.com/randalmurphal/rulekit/transform"
	"github.com/randalmurphal/rulekit/truncate"
)

// Generator runs the full flow for one destination document: profile
// resolution, assembly, the transform pipeline, and ceiling enforcement.
// Construct once and reuse; it only reads immutable configuration.
type Generator struct {
	assembler *Assembler
	registry  *profile.Registry
	transOpts []transform.Option
}

// NewGenerator creates a generator over a fragment library and profile
// registry. Transform options (custom preambles, appendix blocks) are
// passed through to every pipeline.
func NewGenerator(library *fragment.Library, registry *profile.Registry, opts ...transform.Option) *Generator {
	return &Generator{
		assembler: NewAssembler(library),
		registry:  registry,
		transOpts: opts,
	}
}

// Generate produces the final document for a request. It never fails:
// every degradation is a fallback plus, where content was lost, a
// warning.
func (g *Generator) Generate(req Request) Result {
	prof := g.registry.Resolve(req.Destination)

	result := g.assembler.Assemble(req, prof)

	pipe := transform.For(prof, g.transOpts...)
	document := pipe.Apply(result.Document)

	// The transform pipeline may push the document past the ceiling
	// (the appendix step ignores the budget); the truncator is the
	// safety net that makes the ceiling hard.
	document, charTruncated, lineTruncated := truncate.Shrink(document, prof.Ceiling, prof.LineLimit)
	if charTruncated {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("truncated to %d characters", prof.Ceiling))
	}
	if lineTruncated {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("truncated to %d lines", prof.LineLimit))
	}

	result.Document = document
	return result
}

// Library returns the generator's fragment library.
func (g *Generator) Library() *fragment.Library {
	return g.assembler.library
}

// Registry returns the generator's profile registry.
func (g *Generator) Registry() *profile.Registry {
	return g.registry
}
