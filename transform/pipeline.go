package transform

import (
	"github.com/randalmurphal/rulekit/profile"
)

// Default text blocks injected by the pipeline. Overridable per pipeline
// with options so the content layer can supply richer prose.
const (
	// GenericPreamble is used for default/unknown transform kinds.
	GenericPreamble = "> These instructions were generated for this repository. Follow the sections below in order of appearance."

	// DetailedPreamble targets destinations that reason over long,
	// explicit context.
	DetailedPreamble = "> Read this file fully before making changes. Work through objectives step by step and restate each one before acting on it."

	// IDEPreamble targets rule files read by IDE assistants.
	IDEPreamble = "> These rules apply to every file in this workspace. Prefer small, reviewable edits."

	// MinimalPreamble targets flat-text destinations.
	MinimalPreamble = "> Generated instructions. Keep responses short and follow the rules below."

	// CompactPreamble targets tightly-capped destinations.
	CompactPreamble = "> Compact rules file. Every section below is binding."

	// ImplementationGuidance is inserted ahead of the Implementation
	// Guidelines section for IDE destinations.
	ImplementationGuidance = "When the guidelines below conflict with an explicit user request, the user request wins. Apply the guidelines to generated code as well as edits."

	// MarkerAnnotation is appended after each objective marker for
	// detailed destinations.
	MarkerAnnotation = " (restate this objective in your own words before starting)"
)

// defaultAppendix is the worked example appended for detailed
// destinations when the content layer supplies none.
var defaultAppendix = []string{
	"## Worked Example\n\n" +
		"Request: \"add input validation to the signup handler\"\n\n" +
		"1. Locate the handler and its existing tests.\n" +
		"2. Write a failing test for the invalid input.\n" +
		"3. Implement the narrowest validation that passes.\n" +
		"4. Run the full test suite before finishing.",
}

// Pipeline is an ordered sequence of rewrite steps for one profile.
type Pipeline struct {
	steps []Step
}

// Option adjusts the text blocks a pipeline injects.
type Option func(*options)

type options struct {
	preamble   string
	guidance   string
	annotation string
	appendix   []string
}

// WithPreamble overrides the preamble block.
func WithPreamble(preamble string) Option {
	return func(o *options) { o.preamble = preamble }
}

// WithGuidance overrides the Implementation Guidelines guidance block.
func WithGuidance(guidance string) Option {
	return func(o *options) { o.guidance = guidance }
}

// WithAnnotation overrides the objective marker annotation.
func WithAnnotation(annotation string) Option {
	return func(o *options) { o.annotation = annotation }
}

// WithAppendix overrides the worked-example appendix blocks.
func WithAppendix(blocks []string) Option {
	return func(o *options) { o.appendix = blocks }
}

// For builds the pipeline for a profile. Step selection follows the
// profile's transform kind and symbol support; step order is fixed.
func For(prof profile.Profile, opts ...Option) *Pipeline {
	o := options{
		preamble:   preambleFor(prof.Transform),
		guidance:   ImplementationGuidance,
		annotation: MarkerAnnotation,
		appendix:   defaultAppendix,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var steps []Step
	steps = append(steps, InjectPreamble(o.preamble))
	if prof.Transform == profile.TransformIDE {
		steps = append(steps, InsertGuidance(o.guidance))
	}
	if prof.Transform == profile.TransformDetailed {
		steps = append(steps, AnnotateMarkers(ObjectiveMarker, o.annotation))
		steps = append(steps, AppendExamples(o.appendix))
	}
	if !prof.SupportsSymbols {
		steps = append(steps, RemoveSymbols())
	}
	if prof.Transform == profile.TransformMinimal || prof.Transform == profile.TransformCompact {
		steps = append(steps, Simplify())
	}

	return &Pipeline{steps: steps}
}

// Apply runs the pipeline over the document.
func (p *Pipeline) Apply(doc string) string {
	for _, step := range p.steps {
		doc = step(doc)
	}
	return doc
}

// Len returns the number of enabled steps.
func (p *Pipeline) Len() int {
	return len(p.steps)
}

// preambleFor maps a transform kind to its default preamble. Unknown
// kinds get the generic preamble, matching the default profile's
// behavior for unknown destinations.
func preambleFor(kind profile.Transform) string {
	switch kind {
	case profile.TransformDetailed:
		return DetailedPreamble
	case profile.TransformIDE:
		return IDEPreamble
	case profile.TransformMinimal:
		return MinimalPreamble
	case profile.TransformCompact:
		return CompactPreamble
	default:
		return GenericPreamble
	}
}
