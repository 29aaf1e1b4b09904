package sheets

import "context"

// PeriodSummary is one exported row: the headline totals of a reference
// month.
type PeriodSummary struct {
	Year            int
	Month           int
	PeriodStart     string
	PeriodEnd       string
	TotalIncome     float64
	TotalExpenses   float64
	MonthSavings    float64
	TotalInvested   float64
	OvertimeMinutes int
}

// SummaryWriter is the outbound port for period summary export.
type SummaryWriter interface {
	AppendSummary(ctx context.Context, s PeriodSummary) (rowRef string, err error)
}
