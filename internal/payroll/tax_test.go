package payroll

import (
	"math"
	"testing"

	"grana/internal/core"
)

func TestPensionContribution(t *testing.T) {
	table := DefaultTables().Contribution

	tests := []struct {
		name  string
		gross float64
		want  float64
	}{
		{"zero salary", 0, 0},
		{"first bracket only", 1000, core.Round2(1000 * 0.075)},
		{"exactly the first threshold", 1518.00, core.Round2(1518.00 * 0.075)},
		{
			name:  "second bracket",
			gross: 2000,
			want:  core.Round2(1518.00*0.075 + (2000-1518.00)*0.09),
		},
		{
			name:  "third bracket",
			gross: 3500,
			want:  core.Round2(1518.00*0.075 + (2793.88-1518.00)*0.09 + (3500-2793.88)*0.12),
		},
		{
			name:  "fourth bracket",
			gross: 5000,
			want: core.Round2(1518.00*0.075 + (2793.88-1518.00)*0.09 +
				(4190.83-2793.88)*0.12 + (5000-4190.83)*0.14),
		},
		{"just above the ceiling threshold", 8157.42, 951.63},
		{"far above the ceiling threshold", 25000, 951.63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.PensionContribution(tt.gross); got != tt.want {
				t.Errorf("PensionContribution(%v) = %v, want %v", tt.gross, got, tt.want)
			}
		})
	}
}

// Each bracket edge must evaluate to the same contribution from both
// sides, up to the half-cent the 2-decimal rounding allows.
func TestPensionContribution_ContinuousAtBracketEdges(t *testing.T) {
	table := DefaultTables().Contribution

	for _, edge := range []float64{1518.00, 2793.88, 4190.83} {
		below := table.PensionContribution(edge)
		above := table.PensionContribution(edge + 0.01)
		if diff := math.Abs(above - below); diff > 0.02 {
			t.Errorf("discontinuity at %v: below=%v above=%v (diff %v)", edge, below, above, diff)
		}
	}
}

func TestIncomeTax(t *testing.T) {
	table := DefaultTables().IncomeTax

	tests := []struct {
		name       string
		gross      float64
		pension    float64
		dependents int
		want       float64
	}{
		{"base at the exempt threshold", 2259.20, 0, 0, 0},
		{"base below the exempt threshold", 2000, 100, 0, 0},
		{
			// base = 2500, second bracket: 2500*0.075 - 169.44 = 18.06
			name:  "second bracket",
			gross: 2500, want: 18.06,
		},
		{
			// base = 3000: 3000*0.15 - 381.44 = 68.56
			name:  "third bracket",
			gross: 3000, want: 68.56,
		},
		{
			// base = 4000: 4000*0.225 - 662.77 = 237.23
			name:  "fourth bracket",
			gross: 4000, want: 237.23,
		},
		{
			// base = 10000: 10000*0.275 - 896.00 = 1854.00
			name:  "top open-ended bracket",
			gross: 10000, want: 1854.00,
		},
		{
			// base = 3000 - 2*189.59 = 2620.82: 2620.82*0.075 - 169.44 = 27.1215 → 27.12
			name:  "dependents reduce the taxable base",
			gross: 3000, dependents: 2, want: 27.12,
		},
		{
			// base = 2300: 2300*0.075 - 169.44 = 3.06; with pension 100 the
			// base drops to 2200 which is exempt.
			name:  "pension deduction pushes base under the threshold",
			gross: 2300, pension: 100, want: 0,
		},
		{
			// base = 2259.21, a hair into the second bracket:
			// 2259.21*0.075 - 169.44 ≈ 0.0008 → rounds to zero, so the
			// exempt edge is continuous.
			name:  "second bracket is continuous with the exempt edge",
			gross: 2259.21, want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.IncomeTax(tt.gross, tt.pension, tt.dependents)
			if got != tt.want {
				t.Errorf("IncomeTax(%v, %v, %d) = %v, want %v",
					tt.gross, tt.pension, tt.dependents, got, tt.want)
			}
		})
	}
}
