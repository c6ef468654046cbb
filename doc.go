// Package rulekit assembles instruction documents for AI coding assistants.
//
// rulekit builds a single rules document (CLAUDE.md, .cursorrules,
// copilot-instructions.md, .windsurfrules) from a library of reusable text
// fragments, keeps the result under a per-destination size budget, and
// adapts formatting conventions to each destination. Each subpackage can be
// used independently:
//
//   - fragment: Named fragment pools with destination/category lookup
//   - profile: Destination profiles (ceilings, format flags, transform kind)
//   - assemble: Budget-aware assembly and the end-to-end generator
//   - transform: Profile-driven structural rewrite pipeline
//   - truncate: Header/footer-preserving truncation to a character ceiling
//   - tokens: Token estimation and headroom budgeting
//   - content: Built-in fragment library
//   - detect: Example-category detection from project manifests
//
// # Quick Start
//
// Generate a document for a destination:
//
//	import (
//	    "github.com/randalmurphal/rulekit/assemble"
//	    "github.com/randalmurphal/rulekit/content"
//	    "github.com/randalmurphal/rulekit/profile"
//	)
//
//	gen := assemble.NewGenerator(content.DefaultLibrary(), profile.DefaultRegistry())
//	result := gen.Generate(assemble.Request{
//	    Destination: "claude",
//	    Category:    "go",
//	})
//	// result.Document, result.AppliedSteps, result.Warnings
//
// Token estimation:
//
//	import "github.com/randalmurphal/rulekit/tokens"
//	cost := tokens.Estimate("some block of text")
//
// # Design Philosophy
//
// rulekit follows these principles:
//
//   - Assembly never fails: unknown destinations fall back to the default
//     profile, missing fragments are silently omitted, and overflow is
//     resolved by truncation plus a returned warning
//   - Shared configuration (fragment library, profile registry) is built
//     once and read-only thereafter; every generation owns its own output
//   - Interfaces for extensibility, concrete types for simplicity
package rulekit
