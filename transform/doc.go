// Package transform rewrites assembled documents for their destination.
//
// A Pipeline is an ordered list of pure text -> text steps. Which steps
// run is decided by the destination profile's transform kind and symbol
// support; the order is fixed regardless:
//
//  1. preamble injection after the document's structural header
//  2. guidance insertion before the Implementation Guidelines section (ide)
//  3. instructional annotation after each objective marker (detailed)
//  4. worked-example appendix, unconditional (detailed)
//  5. symbol glyph removal (profiles without symbol support)
//  6. structural simplification: heading demotion, bold -> trailing
//     colon, checkboxes -> plain bullets (minimal, compact)
//
// The appendix step deliberately ignores the size budget: the truncation
// pass downstream is the safety net, not the assembler's cost tracking.
//
// # Usage
//
//	pipe := transform.For(prof)
//	doc = pipe.Apply(doc)
//
// Individual steps are exported for testing and composition:
//
//	step := transform.Simplify()
//	out := step("### Deep Heading")  // "## Deep Heading"
package transform
