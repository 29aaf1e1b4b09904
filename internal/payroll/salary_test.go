package payroll

import (
	"math"
	"testing"

	"grana/internal/core"
)

func withinCent(got, want float64) bool {
	return math.Abs(got-want) < 0.005
}

func TestComputeNetSalary(t *testing.T) {
	tables := DefaultTables()

	t.Run("base salary with ten hours of 50% overtime", func(t *testing.T) {
		totals := core.Totals{TotalOvertime50: 600} // 10h
		settings := core.Settings{}
		input := Input{BaseSalary: 3000, Workload: 220}

		got := ComputeNetSalary(totals, settings, input, tables)

		hourValue := 3000.0 / 220
		if !withinCent(got.NormalHourValue, hourValue) {
			t.Errorf("NormalHourValue = %v, want %v", got.NormalHourValue, hourValue)
		}
		wantOT50 := 10 * hourValue * 1.5 // ≈ 204.55
		if !withinCent(got.OvertimePay50, wantOT50) {
			t.Errorf("OvertimePay50 = %v, want %v", got.OvertimePay50, wantOT50)
		}
		if got.OvertimePay100 != 0 {
			t.Errorf("OvertimePay100 = %v, want 0", got.OvertimePay100)
		}
		wantDSR := wantOT50 / 6 // ≈ 34.09
		if !withinCent(got.DSR, wantDSR) {
			t.Errorf("DSR = %v, want %v", got.DSR, wantDSR)
		}
		wantGross := 3000 + wantOT50 + wantDSR // ≈ 3238.64
		if !withinCent(got.GrossTotal, wantGross) {
			t.Errorf("GrossTotal = %v, want %v", got.GrossTotal, wantGross)
		}
		wantPension := tables.Contribution.PensionContribution(wantGross)
		if !withinCent(got.Pension, wantPension) {
			t.Errorf("Pension = %v, want %v", got.Pension, wantPension)
		}
		wantTax := tables.IncomeTax.IncomeTax(wantGross, wantPension, 0)
		if !withinCent(got.IncomeTax, wantTax) {
			t.Errorf("IncomeTax = %v, want %v", got.IncomeTax, wantTax)
		}
		if !withinCent(got.NetSalary, wantGross-wantPension-wantTax) {
			t.Errorf("NetSalary = %v, want %v", got.NetSalary, wantGross-wantPension-wantTax)
		}
		if !withinCent(got.FGTS, wantGross*0.08) {
			t.Errorf("FGTS = %v, want %v", got.FGTS, wantGross*0.08)
		}
	})

	t.Run("holiday overtime pays double", func(t *testing.T) {
		totals := core.Totals{TotalOvertime100: 120} // 2h on a holiday
		input := Input{BaseSalary: 2200, Workload: 220}

		got := ComputeNetSalary(totals, core.Settings{}, input, tables)

		wantOT100 := 2 * 10.0 * 2.0 // hour value 10, 2.0 multiplier
		if !withinCent(got.OvertimePay100, wantOT100) {
			t.Errorf("OvertimePay100 = %v, want %v", got.OvertimePay100, wantOT100)
		}
		if got.OvertimePay50 != 0 {
			t.Errorf("OvertimePay50 = %v, want 0", got.OvertimePay50)
		}
	})

	t.Run("custom proventos and discounts flow into gross and net", func(t *testing.T) {
		settings := core.Settings{
			CustomProventos: []core.LineItem{{Name: "Vale alimentação", Value: 400}},
			CustomDiscounts: []core.LineItem{{Name: "Plano de saúde", Value: 150}},
		}
		input := Input{BaseSalary: 2000, Workload: 220}

		got := ComputeNetSalary(core.Totals{}, settings, input, tables)

		if !withinCent(got.GrossTotal, 2400) {
			t.Errorf("GrossTotal = %v, want 2400", got.GrossTotal)
		}
		if !withinCent(got.CustomDiscounts, 150) {
			t.Errorf("CustomDiscounts = %v, want 150", got.CustomDiscounts)
		}
		wantNet := 2400 - got.Pension - got.IncomeTax - 150
		if !withinCent(got.NetSalary, wantNet) {
			t.Errorf("NetSalary = %v, want %v", got.NetSalary, wantNet)
		}
	})

	t.Run("zero workload falls back to zero instead of dividing", func(t *testing.T) {
		totals := core.Totals{TotalOvertime50: 600}
		input := Input{BaseSalary: 3000, Workload: 0}

		got := ComputeNetSalary(totals, core.Settings{}, input, tables)

		if got.NormalHourValue != 0 || got.OvertimePay50 != 0 || got.DSR != 0 {
			t.Errorf("expected zero hour value and overtime pay, got %+v", got)
		}
		if !withinCent(got.GrossTotal, 3000) {
			t.Errorf("GrossTotal = %v, want 3000", got.GrossTotal)
		}
	})

	t.Run("zero base salary yields zero gross", func(t *testing.T) {
		got := ComputeNetSalary(core.Totals{TotalOvertime50: 60}, core.Settings{}, Input{Workload: 220}, tables)

		if got.GrossTotal != 0 || got.Pension != 0 || got.IncomeTax != 0 || got.NetSalary != 0 || got.FGTS != 0 {
			t.Errorf("expected an all-zero breakdown, got %+v", got)
		}
	})
}
