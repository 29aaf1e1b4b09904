package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"grana/internal/cache"
	"grana/internal/core"
	"grana/internal/storage"
)

// Dashboard is the full snapshot for one reference month: both period
// windows, every record falling inside them (persisted plus expanded
// recurring) and the derived totals.
type Dashboard struct {
	Year            int              `json:"year"`
	Month           int              `json:"month"`
	FinancialPeriod core.Period      `json:"financialPeriod"`
	OvertimePeriod  core.Period      `json:"overtimePeriod"`
	Incomes         []core.Income    `json:"incomes"`
	Expenses        []core.Expense   `json:"expenses"`
	Investments     []core.Investment `json:"investments"`
	TimeEntries     []core.TimeEntry `json:"timeEntries"`
	Totals          core.Totals      `json:"totals"`
}

// DashboardService assembles period snapshots. Results are cached per
// "year-month" key; record writes invalidate through InvalidateAll.
type DashboardService struct {
	storage *storage.SQLiteRepository
	cache   *cache.LRUCache[Dashboard]
}

func NewDashboardService(repo *storage.SQLiteRepository) *DashboardService {
	return &DashboardService{
		storage: repo,
		cache:   cache.NewLRUCache[Dashboard](24, 5*time.Minute),
	}
}

// Load builds the dashboard for the given reference month.
func (s *DashboardService) Load(ctx context.Context, year, month int) (Dashboard, error) {
	key := fmt.Sprintf("%04d-%02d", year, month)
	if d, ok := s.cache.Get(key); ok {
		slog.DebugContext(ctx, "Dashboard cache hit", "key", key)
		return d, nil
	}

	settings, err := s.storage.GetSettings(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("load settings: %w", err)
	}

	financial := core.FinancialPeriod(year, month, settings.PayPeriodStartDay)
	overtime := core.OvertimePeriod(year, month, settings.OvertimeStartDay, settings.OvertimeEndDay)

	var (
		incomes           []core.Income
		expenses          []core.Expense
		investments       []core.Investment
		timeEntries       []core.TimeEntry
		recurringIncomes  []core.RecurringIncome
		recurringExpenses []core.RecurringExpense
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		incomes, err = s.storage.ListIncomes(gctx, financial)
		return err
	})
	g.Go(func() (err error) {
		expenses, err = s.storage.ListExpenses(gctx, financial)
		return err
	})
	g.Go(func() (err error) {
		investments, err = s.storage.ListAllInvestments(gctx)
		return err
	})
	g.Go(func() (err error) {
		timeEntries, err = s.storage.ListTimeEntries(gctx, overtime)
		return err
	})
	g.Go(func() (err error) {
		recurringIncomes, err = s.storage.ListRecurringIncomes(gctx)
		return err
	})
	g.Go(func() (err error) {
		recurringExpenses, err = s.storage.ListRecurringExpenses(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, fmt.Errorf("load period data: %w", err)
	}

	incomes = append(incomes, core.ExpandRecurringIncomes(recurringIncomes, financial)...)
	expenses = append(expenses, core.ExpandRecurringExpenses(recurringExpenses, financial)...)

	records := core.RecordSet{
		Incomes:     incomes,
		Expenses:    expenses,
		Investments: investments,
		TimeEntries: timeEntries,
	}

	d := Dashboard{
		Year:            year,
		Month:           month,
		FinancialPeriod: financial,
		OvertimePeriod:  overtime,
		Incomes:         incomes,
		Expenses:        expenses,
		Investments:     investments,
		TimeEntries:     timeEntries,
		Totals:          core.ComputeTotals(records, settings, financial, overtime),
	}

	s.cache.Set(key, d)
	return d, nil
}

// InvalidateAll drops every cached snapshot. Any record write can move
// totals in neighbouring periods, so scoped invalidation is not worth the
// bookkeeping.
func (s *DashboardService) InvalidateAll() {
	s.cache.Clear()
}
