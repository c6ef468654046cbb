package tokens

// ExtendedHeadroom is the share of the ceiling the cumulative cost must
// stay under for the extended block to be included. The remaining 30%
// is reserved for the examples block and for structural insertions made
// after assembly, which the assembler's cost tracking does not see.
const ExtendedHeadroom = 0.7

// ExamplesHeadroom is the share of the ceiling the cumulative cost must
// stay under for the examples block to be included.
const ExamplesHeadroom = 0.9

// Budget checks cumulative assembly cost against shares of a
// destination's character ceiling.
//
// The ceiling is a character count while costs are token estimates; the
// comparison is deliberately loose. The headroom constants absorb the
// slack, and a hard truncation pass downstream enforces the real limit.
type Budget struct {
	// Ceiling is the destination's maximum character count.
	Ceiling int
}

// NewBudget creates a budget for the given character ceiling.
// Negative ceilings are treated as zero.
func NewBudget(ceiling int) *Budget {
	if ceiling < 0 {
		ceiling = 0
	}
	return &Budget{Ceiling: ceiling}
}

// FitsExtended returns true if the cumulative cost leaves the extended
// block under the 70% headroom line.
func (b *Budget) FitsExtended(cumulative int) bool {
	return float64(cumulative) < ExtendedHeadroom*float64(b.Ceiling)
}

// FitsExamples returns true if the cumulative cost leaves the examples
// block under the 90% headroom line.
func (b *Budget) FitsExamples(cumulative int) bool {
	return float64(cumulative) < ExamplesHeadroom*float64(b.Ceiling)
}
