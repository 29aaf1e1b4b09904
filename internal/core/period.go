package core

// Period is an inclusive date range. Start is always on or before End;
// record inclusion uses inclusive comparison on both bounds.
type Period struct {
	Start Date `json:"startDate"`
	End   Date `json:"endDate"`
}

// Contains reports whether d falls inside the period, bounds included.
func (p Period) Contains(d Date) bool {
	return d.OnOrAfter(p.Start) && d.OnOrBefore(p.End)
}

// FinancialPeriod resolves the date range used to filter income, expense
// and investment records for a given year/month selection.
//
// With startDay == 1 the period is simply the calendar month. Any other
// cut-off produces a cycle from startDay of the previous month through
// startDay-1 of the selected month (e.g. the 24th through the following
// 23rd). NewDate normalizes month underflow, so January resolves its
// previous month into December of the prior year.
//
// startDay is not validated here; the settings layer constrains it to 1–28.
func FinancialPeriod(year, month, startDay int) Period {
	if startDay == 1 {
		return Period{
			Start: NewDate(year, month, 1),
			End:   NewDate(year, month+1, 0),
		}
	}
	return Period{
		Start: NewDate(year, month-1, startDay),
		End:   NewDate(year, month, startDay-1),
	}
}

// OvertimePeriod resolves the independently configured range used to
// apportion worked-hours records: startDay of the previous month through
// endDay of the selected month.
//
// Unlike FinancialPeriod there is no calendar-month special case when
// startDay == 1; the two resolvers are deliberately asymmetric so the
// overtime window stays configurable on both ends.
func OvertimePeriod(year, month, startDay, endDay int) Period {
	return Period{
		Start: NewDate(year, month-1, startDay),
		End:   NewDate(year, month, endDay),
	}
}
