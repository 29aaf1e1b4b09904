package core

import "fmt"

// SplitInstallments turns a purchase into n monthly expense records.
//
// Every installment carries the entered per-installment amount and the
// shared group ID, with the description suffixed "(i/n)". Dates advance
// one calendar month at a time from the original date, clamping a 29/30/31
// day to the last valid day of each target month independently, so
// Jan 31 → Feb 28 → Mar 31 (the March installment is not dragged to the
// 28th by February).
//
// With n <= 1 the expense is returned untouched as a single-element slice.
func SplitInstallments(expense Expense, n int, groupID string) []Expense {
	if n <= 1 {
		return []Expense{expense}
	}
	installments := make([]Expense, 0, n)
	for i := 0; i < n; i++ {
		inst := expense
		inst.Description = fmt.Sprintf("%s (%d/%d)", expense.Description, i+1, n)
		inst.InstallmentGroupID = groupID
		inst.Date = AddMonthsClamped(expense.Date, i)
		installments = append(installments, inst)
	}
	return installments
}
