package assemble

import (
	"github.com/randalmurphal/rulekit/fragment"
	"github.com/randalmurphal/rulekit/profile"
	"github.com/randalmurphal/rulekit/tokens"
)

// Applied-step labels, in the only order they can appear.
const (
	StepCore       = "core"
	StepExtended   = "extended"
	StepExamples   = "examples"
	StepDirectives = "directives"
)

// Separator joins assembled blocks. Block costs are estimated without
// it; the headroom margins absorb the difference.
const Separator = "\n\n"

// Assembler performs budget-constrained assembly against one fragment
// library. Safe for concurrent use: it only reads the immutable library.
type Assembler struct {
	library *fragment.Library
	counter tokens.Counter
}

// NewAssembler creates an assembler over the given library.
func NewAssembler(library *fragment.Library) *Assembler {
	return &Assembler{
		library: library,
		counter: tokens.NewEstimatingCounter(),
	}
}

// WithCounter sets a custom cost estimator.
func (a *Assembler) WithCounter(counter tokens.Counter) *Assembler {
	a.counter = counter
	return a
}

// Assemble produces the pre-transform document for a request under the
// given profile's ceiling. Inclusion is one-shot per pool: a failed
// threshold check permanently skips that pool for this request, and no
// smaller substitute is attempted.
func (a *Assembler) Assemble(req Request, prof profile.Profile) Result {
	ctx := req.renderContext()
	budget := tokens.NewBudget(prof.Ceiling)

	document := fragment.Render(a.library.Core().Text, ctx)
	cost := a.counter.Count(document)
	steps := []string{StepCore}

	if ext, ok := a.library.Extended(req.Destination); ok {
		text := fragment.Render(ext.Text, ctx)
		if extCost := a.counter.Count(text); budget.FitsExtended(cost + extCost) {
			document += Separator + text
			cost += extCost
			steps = append(steps, StepExtended)
		}
	}

	if ex, ok := a.library.Example(req.Category); ok {
		text := fragment.Render(ex.Text, ctx)
		if exCost := a.counter.Count(text); budget.FitsExamples(cost + exCost) {
			document += Separator + text
			cost += exCost
			steps = append(steps, StepExamples)
		}
	}

	// Caller directives are appended unconditionally: caller-supplied
	// content is never dropped by a threshold.
	if len(req.Directives) > 0 {
		document += Separator + directivesBlock(req.Directives)
		steps = append(steps, StepDirectives)
	}

	return Result{
		Document:     document,
		AppliedSteps: steps,
		Warnings:     []string{},
	}
}
