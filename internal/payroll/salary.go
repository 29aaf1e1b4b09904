package payroll

import "grana/internal/core"

// FGTSRate is the employer severance-fund deposit rate on gross pay.
const FGTSRate = 0.08

// Input carries the user-entered calculator fields. Amounts arrive
// already parsed; Workload is the monthly contracted hours (220 for a
// standard 44-hour week).
type Input struct {
	BaseSalary float64 `json:"baseSalary"`
	Workload   float64 `json:"workload"`
	Dependents int     `json:"dependents"`
}

// Breakdown itemizes every line of the gross-to-net computation. Nothing
// is hidden from the caller: the calculator screen shows each component.
type Breakdown struct {
	BaseSalary      float64 `json:"baseSalary"`
	NormalHourValue float64 `json:"normalHourValue"`
	OvertimePay50   float64 `json:"overtimePay50"`
	OvertimePay100  float64 `json:"overtimePay100"`
	DSR             float64 `json:"dsr"`
	CustomProventos float64 `json:"customProventos"`
	GrossTotal      float64 `json:"grossTotal"`
	Pension         float64 `json:"pension"`
	IncomeTax       float64 `json:"incomeTax"`
	CustomDiscounts float64 `json:"customDiscounts"`
	TotalDiscounts  float64 `json:"totalDiscounts"`
	NetSalary       float64 `json:"netSalary"`
	FGTS            float64 `json:"fgts"`
}

// ComputeNetSalary composes period totals (for the overtime minutes),
// settings (for the custom bonus/discount lists) and calculator input
// into a full salary breakdown.
//
// Every ratio falls back to zero instead of producing NaN or Inf: a zero
// workload or base salary simply yields a zero hour value. Overtime is
// paid at 1.5× on normal days and 2.0× on holidays; DSR is one sixth of
// the overtime pay, the paid weekly rest attributable to extra hours.
func ComputeNetSalary(totals core.Totals, settings core.Settings, input Input, tables Tables) Breakdown {
	hourValue := 0.0
	if input.BaseSalary > 0 && input.Workload > 0 {
		hourValue = input.BaseSalary / input.Workload
	}

	hours50 := float64(totals.TotalOvertime50) / 60
	hours100 := float64(totals.TotalOvertime100) / 60
	overtime50 := hours50 * hourValue * 1.5
	overtime100 := hours100 * hourValue * 2.0
	dsr := (overtime50 + overtime100) / 6

	var proventos, discounts float64
	for _, item := range settings.CustomProventos {
		proventos += item.Value
	}
	for _, item := range settings.CustomDiscounts {
		discounts += item.Value
	}

	gross := input.BaseSalary + overtime50 + overtime100 + dsr + proventos
	pension := tables.Contribution.PensionContribution(gross)
	incomeTax := tables.IncomeTax.IncomeTax(gross, pension, input.Dependents)
	totalDiscounts := pension + incomeTax + discounts

	return Breakdown{
		BaseSalary:      input.BaseSalary,
		NormalHourValue: hourValue,
		OvertimePay50:   overtime50,
		OvertimePay100:  overtime100,
		DSR:             dsr,
		CustomProventos: proventos,
		GrossTotal:      gross,
		Pension:         pension,
		IncomeTax:       incomeTax,
		CustomDiscounts: discounts,
		TotalDiscounts:  totalDiscounts,
		NetSalary:       gross - totalDiscounts,
		FGTS:            gross * FGTSRate,
	}
}
