package core

// occurrenceIn finds the date a monthly day-of-month template falls on
// inside an inclusive period. Financial periods span at most two calendar
// months, so the occurrence is either dayOfMonth of the start month or of
// the end month. Returns false when neither lands inside the period.
func occurrenceIn(period Period, dayOfMonth int) (Date, bool) {
	candidate := NewDate(period.Start.Year(), period.Start.Month(), dayOfMonth)
	if period.Contains(candidate) {
		return candidate, true
	}
	candidate = NewDate(period.End.Year(), period.End.Month(), dayOfMonth)
	if period.Contains(candidate) {
		return candidate, true
	}
	return Date{}, false
}

// activeIn reports whether a template created at createdAt applies to the
// period: a template never materializes into cycles that ended before its
// creation month began.
func activeIn(period Period, createdAt Date) bool {
	creationMonth := NewDate(createdAt.Year(), createdAt.Month(), 1)
	return period.End.OnOrAfter(creationMonth)
}

// ExpandRecurringIncomes synthesizes one transient income per template
// whose day of month falls inside the financial period. The result is
// marked IsRecurring and carries the template's ID for display; it is
// merged with persisted records before aggregation, never stored, and the
// templates themselves are not modified.
func ExpandRecurringIncomes(templates []RecurringIncome, period Period) []Income {
	var expanded []Income
	for _, tpl := range templates {
		if !activeIn(period, tpl.CreatedAt) {
			continue
		}
		date, ok := occurrenceIn(period, tpl.DayOfMonth)
		if !ok {
			continue
		}
		expanded = append(expanded, Income{
			ID:          tpl.ID,
			Source:      tpl.Source,
			Amount:      tpl.Amount,
			Type:        tpl.Type,
			Date:        date,
			IsRecurring: true,
		})
	}
	return expanded
}

// ExpandRecurringExpenses is the expense counterpart of
// ExpandRecurringIncomes. Synthesized expenses start out unpaid.
func ExpandRecurringExpenses(templates []RecurringExpense, period Period) []Expense {
	var expanded []Expense
	for _, tpl := range templates {
		if !activeIn(period, tpl.CreatedAt) {
			continue
		}
		date, ok := occurrenceIn(period, tpl.DayOfMonth)
		if !ok {
			continue
		}
		expanded = append(expanded, Expense{
			ID:          tpl.ID,
			Description: tpl.Description,
			Amount:      tpl.Amount,
			Category:    tpl.Category,
			Payment:     tpl.Payment,
			Date:        date,
			IsRecurring: true,
		})
	}
	return expanded
}
