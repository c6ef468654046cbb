// Package assemble builds destination documents from fragment pools.
//
// The Assembler implements the budget-constrained inclusion algorithm:
// the core fragment is always included, the extended fragment is added
// while cumulative estimated cost stays under 70% of the destination's
// ceiling, and the examples fragment under 90%. Inclusion is one-shot
// per pool with no backtracking, and thresholds are checked against the
// cumulative cost, so insertion order (extended before examples) is part
// of the contract.
//
// The Generator wraps the full flow: resolve the profile, assemble,
// apply the profile's transform pipeline, then enforce the hard ceiling
// with the truncator. Warnings (e.g. "truncated to 8000 characters") are
// returned as data, never logged.
//
// # Usage
//
//	gen := assemble.NewGenerator(content.DefaultLibrary(), profile.DefaultRegistry())
//	result := gen.Generate(assemble.Request{
//	    Destination: "claude",
//	    Category:    "go",
//	    Directives:  []string{"Always run make lint before committing."},
//	})
//
// Result.AppliedSteps records which inclusion decisions succeeded, in
// order; "core" is always first. Nothing in this package returns an
// error: unknown destinations resolve to the default profile and missing
// fragments are silently omitted.
package assemble
