package core

// RecordSet carries the fully-materialized records a totals computation
// works on. Callers load these from storage (and splice in any expanded
// recurring records) before aggregating; ComputeTotals never mutates them.
type RecordSet struct {
	Incomes     []Income
	Expenses    []Expense
	Investments []Investment
	TimeEntries []TimeEntry
}

// Totals is the aggregate produced for one financial/overtime period pair.
// All amounts are plain numbers; formatting belongs to the caller.
type Totals struct {
	TotalIncome    float64 `json:"totalIncome"`
	FixedIncome    float64 `json:"fixedIncome"`
	VariableIncome float64 `json:"variableIncome"`
	ExtraIncome    float64 `json:"extraIncome"`

	TotalExpenses   float64            `json:"totalExpenses"`
	PendingExpenses float64            `json:"pendingExpenses"`
	ByCategory      map[string]float64 `json:"expensesByCategory"`

	TotalInvestedThisPeriod float64 `json:"totalInvestedThisPeriod"`
	TotalInvested           float64 `json:"totalInvested"`
	ExpectedReturn          float64 `json:"expectedReturn"`
	MonthlyReturn           float64 `json:"monthlyReturn"`

	AvailableBalance float64 `json:"availableBalance"`
	MonthSavings     float64 `json:"monthSavings"`

	TotalWorkedMinutes int `json:"totalWorkedMinutes"`
	TotalOvertime50    int `json:"totalOvertime50"`
	TotalOvertime100   int `json:"totalOvertime100"`
}

// ComputeTotals aggregates the record set into period totals.
//
// Incomes, expenses and the "invested this period" sum are filtered into
// the financial period; time entries into the overtime period. Investment
// balance and expected return are lifetime-scoped on purpose: the
// emergency-reserve goal tracks everything ever invested, not one cycle.
//
// The function is pure: same inputs, same output, no side effects, which
// is what makes the dashboard trivially cacheable.
func ComputeTotals(records RecordSet, settings Settings, financial, overtime Period) Totals {
	totals := Totals{
		ByCategory: make(map[string]float64, len(settings.ExpenseCategories)),
	}
	for key := range settings.ExpenseCategories {
		totals.ByCategory[key] = 0
	}

	for _, income := range records.Incomes {
		if !financial.Contains(income.Date) {
			continue
		}
		totals.TotalIncome += income.Amount
		switch income.Type {
		case IncomeFixed:
			totals.FixedIncome += income.Amount
		case IncomeVariable:
			totals.VariableIncome += income.Amount
		case IncomeExtra:
			totals.ExtraIncome += income.Amount
		}
	}

	for _, expense := range records.Expenses {
		if !financial.Contains(expense.Date) {
			continue
		}
		totals.TotalExpenses += expense.Amount
		if !expense.IsPaid {
			totals.PendingExpenses += expense.Amount
		}
		key := expense.Category
		if _, known := settings.ExpenseCategories[key]; !known {
			key = "other"
		}
		totals.ByCategory[key] += expense.Amount
	}

	for _, inv := range records.Investments {
		if financial.Contains(inv.Date) {
			totals.TotalInvestedThisPeriod += inv.Amount
		}
		totals.TotalInvested += inv.Amount
		totals.ExpectedReturn += inv.Amount * inv.Yield / 100
	}
	totals.MonthlyReturn = totals.ExpectedReturn / 12

	totals.AvailableBalance = totals.TotalIncome - totals.TotalExpenses
	if totals.AvailableBalance > 0 {
		totals.MonthSavings = totals.AvailableBalance
	}

	for _, entry := range records.TimeEntries {
		if !overtime.Contains(entry.Date) {
			continue
		}
		hours := ComputeWorkHours(entry)
		totals.TotalWorkedMinutes += hours.WorkedMinutes
		if hours.Holiday {
			totals.TotalOvertime100 += hours.OvertimeMinutes
		} else {
			totals.TotalOvertime50 += hours.OvertimeMinutes
		}
	}

	return totals
}
