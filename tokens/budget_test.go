package tokens

import "testing"

func TestNewBudget(t *testing.T) {
	b := NewBudget(8000)
	if b.Ceiling != 8000 {
		t.Errorf("expected Ceiling 8000, got %d", b.Ceiling)
	}

	b = NewBudget(-5)
	if b.Ceiling != 0 {
		t.Errorf("expected negative ceiling clamped to 0, got %d", b.Ceiling)
	}
}

func TestBudget_FitsExtended(t *testing.T) {
	tests := []struct {
		name       string
		ceiling    int
		cumulative int
		expected   bool
	}{
		{
			name:       "well under headroom",
			ceiling:    100,
			cumulative: 30,
			expected:   true,
		},
		{
			name:       "just under headroom",
			ceiling:    100,
			cumulative: 69,
			expected:   true,
		},
		{
			name:       "exactly at headroom is excluded",
			ceiling:    100,
			cumulative: 70,
			expected:   false,
		},
		{
			name:       "over headroom",
			ceiling:    50,
			cumulative: 60,
			expected:   false,
		},
		{
			name:       "zero ceiling rejects everything",
			ceiling:    0,
			cumulative: 1,
			expected:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBudget(tt.ceiling)
			if got := b.FitsExtended(tt.cumulative); got != tt.expected {
				t.Errorf("FitsExtended(%d) with ceiling %d = %v, want %v",
					tt.cumulative, tt.ceiling, got, tt.expected)
			}
		})
	}
}

func TestBudget_FitsExamples(t *testing.T) {
	tests := []struct {
		name       string
		ceiling    int
		cumulative int
		expected   bool
	}{
		{
			name:       "under headroom",
			ceiling:    100,
			cumulative: 80,
			expected:   true,
		},
		{
			name:       "exactly at headroom is excluded",
			ceiling:    100,
			cumulative: 90,
			expected:   false,
		},
		{
			name:       "between extended and examples lines",
			ceiling:    100,
			cumulative: 75,
			expected:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBudget(tt.ceiling)
			if got := b.FitsExamples(tt.cumulative); got != tt.expected {
				t.Errorf("FitsExamples(%d) with ceiling %d = %v, want %v",
					tt.cumulative, tt.ceiling, got, tt.expected)
			}
		})
	}
}

func TestHeadroomConstants(t *testing.T) {
	// The scenario arithmetic in the assembler tests depends on these
	// exact values; changing them is a behavior change, not a tune-up.
	if ExtendedHeadroom != 0.7 {
		t.Errorf("ExtendedHeadroom = %v, want 0.7", ExtendedHeadroom)
	}
	if ExamplesHeadroom != 0.9 {
		t.Errorf("ExamplesHeadroom = %v, want 0.9", ExamplesHeadroom)
	}
}
