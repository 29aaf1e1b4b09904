// Package worker keeps the system goals current and exports period
// summaries. It reacts to record change messages and also runs on a timer
// as a backstop for lost messages.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"grana/internal/amqp"
	"grana/internal/services"
	"grana/internal/sheets"
)

type RefreshWorker struct {
	dashboards *services.DashboardService
	goals      *services.GoalService
	summaries  sheets.SummaryWriter

	// lastExported guards against re-appending the same month on every
	// refresh; only a change in headline totals produces a new row.
	lastExported map[string]sheets.PeriodSummary
}

func NewRefreshWorker(dashboards *services.DashboardService, goals *services.GoalService, summaries sheets.SummaryWriter) *RefreshWorker {
	return &RefreshWorker{
		dashboards:   dashboards,
		goals:        goals,
		summaries:    summaries,
		lastExported: make(map[string]sheets.PeriodSummary),
	}
}

// HandleRecordChange refreshes goals for the current month whenever any
// record changes. The message tells us something moved; the refresh reloads
// everything it needs, so the payload is only logged.
func (w *RefreshWorker) HandleRecordChange(ctx context.Context, msg *amqp.RecordChangeMessage) error {
	slog.InfoContext(ctx, "Processing record change",
		"kind", msg.Kind,
		"action", msg.Action,
		"id", msg.ID)

	w.dashboards.InvalidateAll()
	return w.Refresh(ctx)
}

// Refresh recomputes the system goals for the current month and exports a
// summary row if the totals moved.
func (w *RefreshWorker) Refresh(ctx context.Context) error {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if err := w.goals.RefreshSystemGoals(ctx, year, month); err != nil {
		return fmt.Errorf("refresh system goals: %w", err)
	}

	if w.summaries == nil {
		return nil
	}
	return w.exportSummary(ctx, year, month)
}

func (w *RefreshWorker) exportSummary(ctx context.Context, year, month int) error {
	d, err := w.dashboards.Load(ctx, year, month)
	if err != nil {
		return fmt.Errorf("load dashboard: %w", err)
	}

	summary := sheets.PeriodSummary{
		Year:            year,
		Month:           month,
		PeriodStart:     d.FinancialPeriod.Start.String(),
		PeriodEnd:       d.FinancialPeriod.End.String(),
		TotalIncome:     d.Totals.TotalIncome,
		TotalExpenses:   d.Totals.TotalExpenses,
		MonthSavings:    d.Totals.MonthSavings,
		TotalInvested:   d.Totals.TotalInvested,
		OvertimeMinutes: d.Totals.TotalOvertime50 + d.Totals.TotalOvertime100,
	}

	key := fmt.Sprintf("%04d-%02d", year, month)
	if last, ok := w.lastExported[key]; ok && last == summary {
		return nil
	}

	ref, err := w.summaries.AppendSummary(ctx, summary)
	if err != nil {
		return fmt.Errorf("append summary: %w", err)
	}
	w.lastExported[key] = summary

	slog.InfoContext(ctx, "Exported period summary", "key", key, "row_ref", ref)
	return nil
}

// Run blocks, refreshing on every tick until the context is done. Used as
// the fallback loop when AMQP is not configured, and alongside the consumer
// otherwise.
func (w *RefreshWorker) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if err := w.Refresh(ctx); err != nil {
		slog.ErrorContext(ctx, "Initial refresh failed", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.Refresh(ctx); err != nil {
				slog.ErrorContext(ctx, "Periodic refresh failed", "error", err)
			}
		}
	}
}
