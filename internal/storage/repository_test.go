package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"grana/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository() error = %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func date(t *testing.T, s string) core.Date {
	t.Helper()
	d, err := core.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q) error = %v", s, err)
	}
	return d
}

func TestIncomeRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	in, err := repo.CreateIncome(ctx, core.Income{
		Source: "Salário",
		Amount: 3000,
		Type:   core.IncomeFixed,
		Date:   date(t, "2025-03-05"),
	})
	if err != nil {
		t.Fatalf("CreateIncome() error = %v", err)
	}
	if in.ID == 0 {
		t.Fatal("CreateIncome() returned zero ID")
	}

	period := core.Period{Start: date(t, "2025-03-01"), End: date(t, "2025-03-31")}
	incomes, err := repo.ListIncomes(ctx, period)
	if err != nil {
		t.Fatalf("ListIncomes() error = %v", err)
	}
	if len(incomes) != 1 {
		t.Fatalf("ListIncomes() returned %d incomes, want 1", len(incomes))
	}
	if incomes[0].Source != "Salário" || incomes[0].Amount != 3000 || incomes[0].Type != core.IncomeFixed {
		t.Errorf("ListIncomes()[0] = %+v", incomes[0])
	}

	outside := core.Period{Start: date(t, "2025-04-01"), End: date(t, "2025-04-30")}
	incomes, err = repo.ListIncomes(ctx, outside)
	if err != nil {
		t.Fatalf("ListIncomes() error = %v", err)
	}
	if len(incomes) != 0 {
		t.Errorf("ListIncomes() outside period returned %d incomes, want 0", len(incomes))
	}

	if err := repo.DeleteIncome(ctx, in.ID); err != nil {
		t.Fatalf("DeleteIncome() error = %v", err)
	}
	if err := repo.DeleteIncome(ctx, in.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteIncome() twice error = %v, want ErrNotFound", err)
	}
}

func TestPeriodBoundariesAreInclusive(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, day := range []string{"2025-02-23", "2025-02-24", "2025-03-23", "2025-03-24"} {
		if _, err := repo.CreateExpense(ctx, core.Expense{
			Description: "almoço " + day,
			Amount:      25,
			Category:    "food",
			Payment:     core.PaymentPix,
			Date:        date(t, day),
		}); err != nil {
			t.Fatalf("CreateExpense(%s) error = %v", day, err)
		}
	}

	period := core.Period{Start: date(t, "2025-02-24"), End: date(t, "2025-03-23")}
	expenses, err := repo.ListExpenses(ctx, period)
	if err != nil {
		t.Fatalf("ListExpenses() error = %v", err)
	}
	if len(expenses) != 2 {
		t.Fatalf("ListExpenses() returned %d expenses, want 2 (both edges inclusive)", len(expenses))
	}
	if expenses[0].Date.String() != "2025-02-24" || expenses[1].Date.String() != "2025-03-23" {
		t.Errorf("ListExpenses() dates = %v, %v", expenses[0].Date, expenses[1].Date)
	}
}

func TestInstallmentCascadeDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := core.Expense{
		Description: "Notebook",
		Amount:      500,
		Category:    "other",
		Payment:     core.PaymentCredit,
		Date:        date(t, "2025-01-15"),
	}
	split := core.SplitInstallments(base, 4, "grp-1")
	created, err := repo.CreateExpenses(ctx, split)
	if err != nil {
		t.Fatalf("CreateExpenses() error = %v", err)
	}
	if len(created) != 4 {
		t.Fatalf("CreateExpenses() returned %d expenses, want 4", len(created))
	}

	// Delete from the second installment on; the first one stays.
	n, err := repo.DeleteInstallmentsFrom(ctx, "grp-1", created[1].Date)
	if err != nil {
		t.Fatalf("DeleteInstallmentsFrom() error = %v", err)
	}
	if n != 3 {
		t.Errorf("DeleteInstallmentsFrom() removed %d rows, want 3", n)
	}

	all := core.Period{Start: date(t, "2025-01-01"), End: date(t, "2025-12-31")}
	remaining, err := repo.ListExpenses(ctx, all)
	if err != nil {
		t.Fatalf("ListExpenses() error = %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("ListExpenses() returned %d expenses, want 1", len(remaining))
	}
	if remaining[0].Description != "Notebook (1/4)" {
		t.Errorf("surviving installment = %q, want %q", remaining[0].Description, "Notebook (1/4)")
	}
}

func TestSetExpensePaid(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	e, err := repo.CreateExpense(ctx, core.Expense{
		Description: "Aluguel",
		Amount:      1200,
		Category:    "housing",
		Payment:     core.PaymentTransfer,
		Date:        date(t, "2025-03-01"),
	})
	if err != nil {
		t.Fatalf("CreateExpense() error = %v", err)
	}
	if e.IsPaid {
		t.Fatal("new expense should start unpaid")
	}

	if err := repo.SetExpensePaid(ctx, e.ID, true); err != nil {
		t.Fatalf("SetExpensePaid() error = %v", err)
	}
	got, err := repo.GetExpense(ctx, e.ID)
	if err != nil {
		t.Fatalf("GetExpense() error = %v", err)
	}
	if !got.IsPaid {
		t.Error("expense should be paid after SetExpensePaid")
	}
}

func TestUpsertTimeEntryReplacesSameDay(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	day := date(t, "2025-03-10")
	if _, err := repo.UpsertTimeEntry(ctx, core.TimeEntry{
		Date: day, Entry: "08:00", Exit: "17:00",
	}); err != nil {
		t.Fatalf("UpsertTimeEntry() error = %v", err)
	}
	if _, err := repo.UpsertTimeEntry(ctx, core.TimeEntry{
		Date: day, Entry: "09:00", Exit: "19:00", BreakStart: "12:00", BreakEnd: "13:00",
	}); err != nil {
		t.Fatalf("UpsertTimeEntry() second call error = %v", err)
	}

	period := core.Period{Start: day, End: day}
	entries, err := repo.ListTimeEntries(ctx, period)
	if err != nil {
		t.Fatalf("ListTimeEntries() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("ListTimeEntries() returned %d entries, want 1", len(entries))
	}
	if entries[0].Entry != "09:00" || entries[0].BreakStart != "12:00" {
		t.Errorf("ListTimeEntries()[0] = %+v, want replaced values", entries[0])
	}
}

func TestGoalsAndContributions(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	g, err := repo.CreateGoal(ctx, core.Goal{Name: "Viagem", Target: 5000})
	if err != nil {
		t.Fatalf("CreateGoal() error = %v", err)
	}

	for _, amount := range []float64{100, 250.5} {
		if _, err := repo.CreateContribution(ctx, core.Contribution{
			GoalID: g.ID, Amount: amount, Date: date(t, "2025-03-01"),
		}); err != nil {
			t.Fatalf("CreateContribution() error = %v", err)
		}
	}

	total, err := repo.SumContributions(ctx, g.ID)
	if err != nil {
		t.Fatalf("SumContributions() error = %v", err)
	}
	if total != 350.5 {
		t.Errorf("SumContributions() = %v, want 350.5", total)
	}

	// Deleting the goal cascades to its contributions.
	if err := repo.DeleteGoal(ctx, g.ID); err != nil {
		t.Fatalf("DeleteGoal() error = %v", err)
	}
	contributions, err := repo.ListContributions(ctx, g.ID)
	if err != nil {
		t.Fatalf("ListContributions() error = %v", err)
	}
	if len(contributions) != 0 {
		t.Errorf("ListContributions() after goal delete returned %d, want 0", len(contributions))
	}
}

func TestGoalDeadlineRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	deadline := date(t, "2025-12-31")
	g, err := repo.CreateGoal(ctx, core.Goal{Name: "Carro", Target: 20000, Deadline: &deadline})
	if err != nil {
		t.Fatalf("CreateGoal() error = %v", err)
	}

	got, err := repo.GetGoal(ctx, g.ID)
	if err != nil {
		t.Fatalf("GetGoal() error = %v", err)
	}
	if got.Deadline == nil || got.Deadline.String() != "2025-12-31" {
		t.Errorf("GetGoal() deadline = %v, want 2025-12-31", got.Deadline)
	}

	noDeadline, err := repo.CreateGoal(ctx, core.Goal{Name: "Reserva", Target: 10000})
	if err != nil {
		t.Fatalf("CreateGoal() error = %v", err)
	}
	got, err = repo.GetGoal(ctx, noDeadline.ID)
	if err != nil {
		t.Fatalf("GetGoal() error = %v", err)
	}
	if got.Deadline != nil {
		t.Errorf("GetGoal() deadline = %v, want nil", got.Deadline)
	}
}

func TestRecurringTemplates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tpl, err := repo.CreateRecurringExpense(ctx, core.RecurringExpense{
		Description: "Internet",
		Amount:      99.9,
		Category:    "housing",
		Payment:     core.PaymentDebit,
		DayOfMonth:  10,
		CreatedAt:   date(t, "2025-01-15"),
	})
	if err != nil {
		t.Fatalf("CreateRecurringExpense() error = %v", err)
	}

	templates, err := repo.ListRecurringExpenses(ctx)
	if err != nil {
		t.Fatalf("ListRecurringExpenses() error = %v", err)
	}
	if len(templates) != 1 {
		t.Fatalf("ListRecurringExpenses() returned %d, want 1", len(templates))
	}
	if templates[0].DayOfMonth != 10 || templates[0].CreatedAt.String() != "2025-01-15" {
		t.Errorf("ListRecurringExpenses()[0] = %+v", templates[0])
	}

	if err := repo.DeleteRecurringExpense(ctx, tpl.ID); err != nil {
		t.Fatalf("DeleteRecurringExpense() error = %v", err)
	}
}

func TestSettingsDefaultsAndRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	s, err := repo.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if s.PayPeriodStartDay != 1 || s.OvertimeStartDay != 24 {
		t.Errorf("GetSettings() defaults = %+v", s)
	}

	s.PayPeriodStartDay = 24
	s.CustomDiscounts = []core.LineItem{{Name: "Plano de saúde", Value: 150}}
	if err := repo.SaveSettings(ctx, s); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	got, err := repo.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if got.PayPeriodStartDay != 24 {
		t.Errorf("GetSettings() PayPeriodStartDay = %d, want 24", got.PayPeriodStartDay)
	}
	if len(got.CustomDiscounts) != 1 || got.CustomDiscounts[0].Value != 150 {
		t.Errorf("GetSettings() CustomDiscounts = %+v", got.CustomDiscounts)
	}
}
