// Package payroll implements the Brazilian CLT net-salary calculation:
// progressive INSS contribution, subtractive IRRF withholding and the
// gross-to-net breakdown with overtime, DSR and FGTS.
package payroll

import "grana/internal/core"

// ContributionBracket is one marginal tier of the pension (INSS) table.
type ContributionBracket struct {
	UpTo float64
	Rate float64
}

// ContributionTable is the progressive pension contribution policy.
// Brackets must be ordered by ascending threshold. Ceiling is the fixed
// contribution charged on any salary above the last threshold; it is
// published alongside the table rather than recomputed marginally.
type ContributionTable struct {
	Brackets []ContributionBracket
	Ceiling  float64
}

// TaxBracket is one tier of the income tax (IRRF) table. Unlike the
// contribution table the matching bracket applies alone, via the
// subtractive formula base×Rate − Deduction.
type TaxBracket struct {
	UpTo      float64
	Rate      float64
	Deduction float64
}

// IncomeTaxTable is the withholding policy: ordered brackets (the last
// one open-ended with UpTo = 0) plus the per-dependent base deduction.
type IncomeTaxTable struct {
	Brackets     []TaxBracket
	PerDependent float64
}

// Tables bundles the two policies in force. Bracket boundaries change
// yearly, so they are data, not code.
type Tables struct {
	Contribution ContributionTable
	IncomeTax    IncomeTaxTable
}

// DefaultTables returns the 2025 INSS and IRRF tables.
func DefaultTables() Tables {
	return Tables{
		Contribution: ContributionTable{
			Brackets: []ContributionBracket{
				{UpTo: 1518.00, Rate: 0.075},
				{UpTo: 2793.88, Rate: 0.09},
				{UpTo: 4190.83, Rate: 0.12},
				{UpTo: 8157.41, Rate: 0.14},
			},
			Ceiling: 951.63,
		},
		IncomeTax: IncomeTaxTable{
			Brackets: []TaxBracket{
				{UpTo: 2259.20, Rate: 0, Deduction: 0},
				{UpTo: 2826.65, Rate: 0.075, Deduction: 169.44},
				{UpTo: 3751.05, Rate: 0.15, Deduction: 381.44},
				{UpTo: 4664.68, Rate: 0.225, Deduction: 662.77},
				{UpTo: 0, Rate: 0.275, Deduction: 896.00},
			},
			PerDependent: 189.59,
		},
	}
}

// PensionContribution computes the progressive contribution on a gross
// salary: each lower bracket contributes its fully-taxed portion, the
// matching bracket taxes only the remainder. Salaries above the top
// threshold pay exactly the table's ceiling value. Rounded to 2 decimals.
func (t ContributionTable) PensionContribution(gross float64) float64 {
	if gross <= 0 {
		return 0
	}
	var contribution float64
	lower := 0.0
	for _, bracket := range t.Brackets {
		if gross <= bracket.UpTo {
			contribution += (gross - lower) * bracket.Rate
			return core.Round2(contribution)
		}
		contribution += (bracket.UpTo - lower) * bracket.Rate
		lower = bracket.UpTo
	}
	return t.Ceiling
}

// IncomeTax computes the withheld income tax for a gross salary given the
// already-computed pension contribution and the number of dependents.
//
// The taxable base is gross − pension − dependents×PerDependent; the first
// bracket whose upper bound covers the base applies alone with the
// subtractive formula. The lowest bracket and any negative result yield
// zero. Rounded to 2 decimals.
func (t IncomeTaxTable) IncomeTax(gross, pension float64, dependents int) float64 {
	base := gross - pension - float64(dependents)*t.PerDependent
	for _, bracket := range t.Brackets {
		if bracket.UpTo == 0 || base <= bracket.UpTo {
			tax := base*bracket.Rate - bracket.Deduction
			if tax <= 0 {
				return 0
			}
			return core.Round2(tax)
		}
	}
	return 0
}
