package services

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"grana/internal/core"
	"grana/internal/storage"
)

type fakePublisher struct {
	mu     sync.Mutex
	events []string
}

func (f *fakePublisher) PublishRecordChange(_ context.Context, kind, action string, _ int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, kind+":"+action)
	return nil
}

func newTestServices(t *testing.T) (*RecordService, *GoalService, *DashboardService, *fakePublisher) {
	t.Helper()
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository() error = %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	pub := &fakePublisher{}
	dashboards := NewDashboardService(repo)
	records := NewRecordService(repo, pub, dashboards)
	goals := NewGoalService(repo, pub, dashboards)
	return records, goals, dashboards, pub
}

func date(t *testing.T, s string) core.Date {
	t.Helper()
	d, err := core.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q) error = %v", s, err)
	}
	return d
}

func TestCreateExpense_SingleAndInstallments(t *testing.T) {
	records, _, _, pub := newTestServices(t)
	ctx := context.Background()

	created, err := records.CreateExpense(ctx, core.Expense{
		Description: "Mercado",
		Amount:      250,
		Category:    "food",
		Payment:     core.PaymentDebit,
		Date:        date(t, "2025-03-02"),
	}, 1)
	if err != nil {
		t.Fatalf("CreateExpense() error = %v", err)
	}
	if len(created) != 1 || created[0].InstallmentGroupID != "" {
		t.Errorf("single expense = %+v, want one record without group id", created)
	}

	split, err := records.CreateExpense(ctx, core.Expense{
		Description: "Sofá",
		Amount:      300,
		Category:    "housing",
		Payment:     core.PaymentCredit,
		Date:        date(t, "2025-01-31"),
	}, 3)
	if err != nil {
		t.Fatalf("CreateExpense() installments error = %v", err)
	}
	if len(split) != 3 {
		t.Fatalf("CreateExpense() returned %d expenses, want 3", len(split))
	}
	if split[0].Description != "Sofá (1/3)" || split[2].Description != "Sofá (3/3)" {
		t.Errorf("installment descriptions = %q, %q", split[0].Description, split[2].Description)
	}
	if split[0].InstallmentGroupID == "" || split[0].InstallmentGroupID != split[2].InstallmentGroupID {
		t.Error("installments should share a non-empty group id")
	}
	// Jan 31 clamps to Feb 28 then moves to Mar 31.
	if split[1].Date.String() != "2025-02-28" || split[2].Date.String() != "2025-03-31" {
		t.Errorf("installment dates = %v, %v", split[1].Date, split[2].Date)
	}

	if len(pub.events) != 4 {
		t.Errorf("published %d events, want 4", len(pub.events))
	}
}

func TestCreateExpense_RejectsBadInstallmentCount(t *testing.T) {
	records, _, _, _ := newTestServices(t)

	_, err := records.CreateExpense(context.Background(), core.Expense{
		Description: "x", Amount: 10, Category: "other",
		Payment: core.PaymentPix, Date: date(t, "2025-03-02"),
	}, 49)
	if !errors.Is(err, core.ErrInvalidInstallment) {
		t.Errorf("CreateExpense(49 installments) error = %v, want ErrInvalidInstallment", err)
	}
}

func TestDeleteExpense_FutureScope(t *testing.T) {
	records, _, dashboards, _ := newTestServices(t)
	ctx := context.Background()

	split, err := records.CreateExpense(ctx, core.Expense{
		Description: "Celular",
		Amount:      200,
		Category:    "other",
		Payment:     core.PaymentCredit,
		Date:        date(t, "2025-01-10"),
	}, 4)
	if err != nil {
		t.Fatalf("CreateExpense() error = %v", err)
	}

	// Delete from the third installment on.
	if err := records.DeleteExpense(ctx, split[2].ID, ScopeFuture); err != nil {
		t.Fatalf("DeleteExpense() error = %v", err)
	}

	d, err := dashboards.Load(ctx, 2025, 2)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(d.Expenses) != 1 || d.Expenses[0].Description != "Celular (2/4)" {
		t.Errorf("February expenses = %+v, want only the second installment", d.Expenses)
	}

	d, err = dashboards.Load(ctx, 2025, 3)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(d.Expenses) != 0 {
		t.Errorf("March expenses = %+v, want none after cascade", d.Expenses)
	}
}

func TestUpdateExpense_FutureScopeKeepsDescriptions(t *testing.T) {
	records, _, _, _ := newTestServices(t)
	ctx := context.Background()

	split, err := records.CreateExpense(ctx, core.Expense{
		Description: "Curso",
		Amount:      100,
		Category:    "education",
		Payment:     core.PaymentCredit,
		Date:        date(t, "2025-01-05"),
	}, 3)
	if err != nil {
		t.Fatalf("CreateExpense() error = %v", err)
	}

	edited := split[1]
	edited.Amount = 120
	if err := records.UpdateExpense(ctx, edited, ScopeFuture); err != nil {
		t.Fatalf("UpdateExpense() error = %v", err)
	}

	tail, err := records.storage.ListInstallmentsFrom(ctx, split[0].InstallmentGroupID, split[0].Date)
	if err != nil {
		t.Fatalf("ListInstallmentsFrom() error = %v", err)
	}
	if tail[0].Amount != 100 {
		t.Errorf("first installment amount = %v, want untouched 100", tail[0].Amount)
	}
	if tail[1].Amount != 120 || tail[2].Amount != 120 {
		t.Errorf("future amounts = %v, %v, want 120", tail[1].Amount, tail[2].Amount)
	}
	if tail[2].Description != "Curso (3/3)" {
		t.Errorf("future description = %q, want numbering preserved", tail[2].Description)
	}
}

func TestDashboardIncludesRecurringExpansion(t *testing.T) {
	records, _, dashboards, _ := newTestServices(t)
	ctx := context.Background()

	if _, err := records.CreateRecurringExpense(ctx, core.RecurringExpense{
		Description: "Internet",
		Amount:      99.9,
		Category:    "housing",
		Payment:     core.PaymentDebit,
		DayOfMonth:  10,
		CreatedAt:   date(t, "2025-01-15"),
	}); err != nil {
		t.Fatalf("CreateRecurringExpense() error = %v", err)
	}

	d, err := dashboards.Load(ctx, 2025, 3)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(d.Expenses) != 1 {
		t.Fatalf("Load() expenses = %d, want 1 expanded recurring", len(d.Expenses))
	}
	if !d.Expenses[0].IsRecurring || d.Expenses[0].Date.String() != "2025-03-10" {
		t.Errorf("expanded expense = %+v", d.Expenses[0])
	}
	if d.Totals.TotalExpenses != 99.9 {
		t.Errorf("TotalExpenses = %v, want 99.9", d.Totals.TotalExpenses)
	}
}

func TestDashboardCacheInvalidatedByWrites(t *testing.T) {
	records, _, dashboards, _ := newTestServices(t)
	ctx := context.Background()

	d, err := dashboards.Load(ctx, 2025, 3)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if d.Totals.TotalIncome != 0 {
		t.Fatalf("TotalIncome = %v, want 0", d.Totals.TotalIncome)
	}

	if _, err := records.CreateIncome(ctx, core.Income{
		Source: "Salário", Amount: 3000, Type: core.IncomeFixed, Date: date(t, "2025-03-05"),
	}); err != nil {
		t.Fatalf("CreateIncome() error = %v", err)
	}

	d, err = dashboards.Load(ctx, 2025, 3)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if d.Totals.TotalIncome != 3000 {
		t.Errorf("TotalIncome after write = %v, want 3000 (stale cache?)", d.Totals.TotalIncome)
	}
}
