package services

import (
	"context"
	"fmt"

	"grana/internal/payroll"
)

// SalaryService computes the monthly pay breakdown from the overtime
// period's tracked hours and the user's salary settings.
type SalaryService struct {
	dashboards *DashboardService
	tables     payroll.Tables
}

func NewSalaryService(dashboards *DashboardService) *SalaryService {
	return &SalaryService{
		dashboards: dashboards,
		tables:     payroll.DefaultTables(),
	}
}

func (s *SalaryService) Compute(ctx context.Context, year, month int, input payroll.Input) (payroll.Breakdown, error) {
	d, err := s.dashboards.Load(ctx, year, month)
	if err != nil {
		return payroll.Breakdown{}, fmt.Errorf("load dashboard: %w", err)
	}

	settings, err := s.dashboards.storage.GetSettings(ctx)
	if err != nil {
		return payroll.Breakdown{}, fmt.Errorf("load settings: %w", err)
	}

	return payroll.ComputeNetSalary(d.Totals, settings, input, s.tables), nil
}
