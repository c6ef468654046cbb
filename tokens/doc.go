// Package tokens provides token estimation and headroom budgeting for
// assembled documents.
//
// Token estimation is based on the rule-of-thumb that approximately 4
// characters equals 1 token for English text, rounded up. This provides a
// fast estimate without requiring a model-specific tokenizer; the headroom
// margins in Budget exist precisely because the estimate is coarse.
//
// # Counter
//
// The Counter interface provides token counting methods:
//
//	counter := tokens.NewEstimatingCounter()
//	cost := counter.Count("Hello, world!")      // ceil(13/4) = 4
//	fits := counter.FitsInLimit("text", 1000)   // true if <= 1000 tokens
//
// For one-off estimation, use the convenience function:
//
//	cost := tokens.Estimate("Hello, world!")
//
// # Budget
//
// Budget checks cumulative assembly cost against shares of a destination's
// character ceiling. The extended block may be added while cumulative cost
// stays under 70% of the ceiling, the examples block under 90%:
//
//	budget := tokens.NewBudget(8000)
//	budget.FitsExtended(cost + extCost)   // cost+extCost < 0.7*8000
//	budget.FitsExamples(cost + exCost)    // cost+exCost  < 0.9*8000
//
// The margins reserve room for structural insertions made downstream of
// assembly, which the assembler's own cost tracking does not see.
package tokens
