package assemble

import (
	"os"
	"strings"

	"github.com/randalmurphal/rulekit/fragment"
)

// Request holds the inputs for one assembly. Created per invocation and
// never shared across calls.
type Request struct {
	// Destination selects the profile and the extended fragment.
	// Unrecognized values resolve to the default profile.
	Destination string

	// Complexity is an informational signal from the caller (e.g.
	// "simple", "standard", "advanced"). Passed through to fragment
	// placeholders, never interpreted here.
	Complexity string

	// Locale is the natural-language locale, informational only.
	Locale string

	// Project is the project name, available to fragment placeholders.
	Project string

	// Category selects the examples fragment. Derived externally (e.g.
	// from project manifests); empty means no examples block.
	Category string

	// Directives are caller-supplied extra instruction lines, appended
	// to the document verbatim and unconditionally.
	Directives []string
}

// LoadFromEnv populates request fields from environment variables.
// Variables use the RULEKIT_ prefix and take precedence over existing
// values:
//
//   - RULEKIT_DESTINATION
//   - RULEKIT_COMPLEXITY
//   - RULEKIT_LOCALE
//   - RULEKIT_PROJECT
//   - RULEKIT_CATEGORY
func (r *Request) LoadFromEnv() {
	if v := os.Getenv("RULEKIT_DESTINATION"); v != "" {
		r.Destination = v
	}
	if v := os.Getenv("RULEKIT_COMPLEXITY"); v != "" {
		r.Complexity = v
	}
	if v := os.Getenv("RULEKIT_LOCALE"); v != "" {
		r.Locale = v
	}
	if v := os.Getenv("RULEKIT_PROJECT"); v != "" {
		r.Project = v
	}
	if v := os.Getenv("RULEKIT_CATEGORY"); v != "" {
		r.Category = v
	}
}

// RequestFromEnv creates a Request from environment variables.
func RequestFromEnv() Request {
	var r Request
	r.LoadFromEnv()
	return r
}

// renderContext exposes the request's informational fields to fragment
// placeholders. Empty fields are omitted so their placeholders stay
// visible rather than collapsing to nothing.
func (r Request) renderContext() fragment.Context {
	ctx := fragment.Context{}
	set := func(key, value string) {
		if value != "" {
			ctx[key] = value
		}
	}
	set("destination", r.Destination)
	set("complexity", r.Complexity)
	set("locale", r.Locale)
	set("project", r.Project)
	set("category", r.Category)
	return ctx
}

// directivesBlock formats the caller directives as a document section.
func directivesBlock(directives []string) string {
	var sb strings.Builder
	sb.WriteString("## Additional Directives\n")
	for _, d := range directives {
		sb.WriteString("\n- ")
		sb.WriteString(strings.TrimSpace(d))
	}
	return sb.String()
}

// Result is the produced document plus the record of what happened.
// Owned exclusively by the call that created it.
type Result struct {
	// Document is the final text. Callers treat it as opaque.
	Document string

	// AppliedSteps lists the inclusion decisions that succeeded, in
	// order. "core" is always first.
	AppliedSteps []string

	// Warnings describes degradations (e.g. truncation). Returned as
	// data; the caller decides whether to display them.
	Warnings []string
}
