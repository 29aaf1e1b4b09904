package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"grana/internal/amqp"
	"grana/internal/core"
	"grana/internal/storage"
)

// Cascade scopes for editing or deleting an installment expense.
const (
	ScopeOne    = "one"
	ScopeFuture = "future"
)

// ChangePublisher notifies interested consumers that a record changed.
type ChangePublisher interface {
	PublishRecordChange(ctx context.Context, kind, action string, id int64) error
}

// RecordService orchestrates record writes across SQLite, the dashboard
// cache and AMQP.
type RecordService struct {
	storage    *storage.SQLiteRepository
	publisher  ChangePublisher
	dashboards *DashboardService
}

func NewRecordService(repo *storage.SQLiteRepository, publisher ChangePublisher, dashboards *DashboardService) *RecordService {
	return &RecordService{
		storage:    repo,
		publisher:  publisher,
		dashboards: dashboards,
	}
}

// --- incomes ---

func (s *RecordService) CreateIncome(ctx context.Context, in core.Income) (core.Income, error) {
	if err := in.Validate(); err != nil {
		return core.Income{}, err
	}
	created, err := s.storage.CreateIncome(ctx, in)
	if err != nil {
		return core.Income{}, err
	}
	s.recordChanged(ctx, amqp.KindIncome, amqp.ActionCreated, created.ID)
	return created, nil
}

func (s *RecordService) UpdateIncome(ctx context.Context, in core.Income) error {
	if err := in.Validate(); err != nil {
		return err
	}
	if err := s.storage.UpdateIncome(ctx, in); err != nil {
		return err
	}
	s.recordChanged(ctx, amqp.KindIncome, amqp.ActionUpdated, in.ID)
	return nil
}

func (s *RecordService) DeleteIncome(ctx context.Context, id int64) error {
	if err := s.storage.DeleteIncome(ctx, id); err != nil {
		return err
	}
	s.recordChanged(ctx, amqp.KindIncome, amqp.ActionDeleted, id)
	return nil
}

// --- expenses ---

// CreateExpense validates and stores an expense. With installments > 1 the
// amount is treated as per-installment and one expense per month is
// created, all sharing a fresh group id.
func (s *RecordService) CreateExpense(ctx context.Context, e core.Expense, installments int) ([]core.Expense, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if installments < 1 || installments > 48 {
		return nil, core.ErrInvalidInstallment
	}

	if installments == 1 {
		created, err := s.storage.CreateExpense(ctx, e)
		if err != nil {
			return nil, err
		}
		s.recordChanged(ctx, amqp.KindExpense, amqp.ActionCreated, created.ID)
		return []core.Expense{created}, nil
	}

	split := core.SplitInstallments(e, installments, uuid.NewString())
	created, err := s.storage.CreateExpenses(ctx, split)
	if err != nil {
		return nil, err
	}
	for _, c := range created {
		s.recordChanged(ctx, amqp.KindExpense, amqp.ActionCreated, c.ID)
	}
	return created, nil
}

func (s *RecordService) GetExpense(ctx context.Context, id int64) (core.Expense, error) {
	return s.storage.GetExpense(ctx, id)
}

// UpdateExpense applies the edit to one expense, or with ScopeFuture to
// every expense of the same installment group dated on or after it. Future
// siblings take the new amount, category and payment method but keep their
// own dates and numbered descriptions.
func (s *RecordService) UpdateExpense(ctx context.Context, e core.Expense, scope string) error {
	if err := e.Validate(); err != nil {
		return err
	}

	if scope != ScopeFuture || e.InstallmentGroupID == "" {
		if err := s.storage.UpdateExpense(ctx, e); err != nil {
			return err
		}
		s.recordChanged(ctx, amqp.KindExpense, amqp.ActionUpdated, e.ID)
		return nil
	}

	siblings, err := s.storage.ListInstallmentsFrom(ctx, e.InstallmentGroupID, e.Date)
	if err != nil {
		return err
	}
	for _, sib := range siblings {
		if sib.ID == e.ID {
			sib = e
		} else {
			sib.Amount = e.Amount
			sib.Category = e.Category
			sib.Payment = e.Payment
		}
		if err := s.storage.UpdateExpense(ctx, sib); err != nil {
			return err
		}
		s.recordChanged(ctx, amqp.KindExpense, amqp.ActionUpdated, sib.ID)
	}
	return nil
}

// DeleteExpense removes one expense, or with ScopeFuture the whole tail of
// its installment group from the expense's date on.
func (s *RecordService) DeleteExpense(ctx context.Context, id int64, scope string) error {
	e, err := s.storage.GetExpense(ctx, id)
	if err != nil {
		return err
	}

	if scope == ScopeFuture && e.InstallmentGroupID != "" {
		n, err := s.storage.DeleteInstallmentsFrom(ctx, e.InstallmentGroupID, e.Date)
		if err != nil {
			return err
		}
		slog.InfoContext(ctx, "Deleted installment tail", "group_id", e.InstallmentGroupID, "count", n)
		s.recordChanged(ctx, amqp.KindExpense, amqp.ActionDeleted, id)
		return nil
	}

	if err := s.storage.DeleteExpense(ctx, id); err != nil {
		return err
	}
	s.recordChanged(ctx, amqp.KindExpense, amqp.ActionDeleted, id)
	return nil
}

func (s *RecordService) SetExpensePaid(ctx context.Context, id int64, paid bool) error {
	if err := s.storage.SetExpensePaid(ctx, id, paid); err != nil {
		return err
	}
	s.recordChanged(ctx, amqp.KindExpense, amqp.ActionUpdated, id)
	return nil
}

// --- investments ---

func (s *RecordService) CreateInvestment(ctx context.Context, v core.Investment) (core.Investment, error) {
	if err := v.Validate(); err != nil {
		return core.Investment{}, err
	}
	created, err := s.storage.CreateInvestment(ctx, v)
	if err != nil {
		return core.Investment{}, err
	}
	s.recordChanged(ctx, amqp.KindInvestment, amqp.ActionCreated, created.ID)
	return created, nil
}

func (s *RecordService) UpdateInvestment(ctx context.Context, v core.Investment) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if err := s.storage.UpdateInvestment(ctx, v); err != nil {
		return err
	}
	s.recordChanged(ctx, amqp.KindInvestment, amqp.ActionUpdated, v.ID)
	return nil
}

func (s *RecordService) DeleteInvestment(ctx context.Context, id int64) error {
	if err := s.storage.DeleteInvestment(ctx, id); err != nil {
		return err
	}
	s.recordChanged(ctx, amqp.KindInvestment, amqp.ActionDeleted, id)
	return nil
}

// --- time entries ---

func (s *RecordService) SaveTimeEntry(ctx context.Context, t core.TimeEntry) (core.TimeEntry, error) {
	if err := t.Validate(); err != nil {
		return core.TimeEntry{}, err
	}
	saved, err := s.storage.UpsertTimeEntry(ctx, t)
	if err != nil {
		return core.TimeEntry{}, err
	}
	s.recordChanged(ctx, amqp.KindTimeEntry, amqp.ActionUpdated, saved.ID)
	return saved, nil
}

func (s *RecordService) DeleteTimeEntry(ctx context.Context, id int64) error {
	if err := s.storage.DeleteTimeEntry(ctx, id); err != nil {
		return err
	}
	s.recordChanged(ctx, amqp.KindTimeEntry, amqp.ActionDeleted, id)
	return nil
}

// --- recurring templates ---

func (s *RecordService) CreateRecurringIncome(ctx context.Context, t core.RecurringIncome) (core.RecurringIncome, error) {
	if err := t.Validate(); err != nil {
		return core.RecurringIncome{}, err
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = core.Today()
	}
	created, err := s.storage.CreateRecurringIncome(ctx, t)
	if err != nil {
		return core.RecurringIncome{}, err
	}
	s.recordChanged(ctx, amqp.KindIncome, amqp.ActionCreated, created.ID)
	return created, nil
}

func (s *RecordService) DeleteRecurringIncome(ctx context.Context, id int64) error {
	if err := s.storage.DeleteRecurringIncome(ctx, id); err != nil {
		return err
	}
	s.recordChanged(ctx, amqp.KindIncome, amqp.ActionDeleted, id)
	return nil
}

func (s *RecordService) CreateRecurringExpense(ctx context.Context, t core.RecurringExpense) (core.RecurringExpense, error) {
	if err := t.Validate(); err != nil {
		return core.RecurringExpense{}, err
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = core.Today()
	}
	created, err := s.storage.CreateRecurringExpense(ctx, t)
	if err != nil {
		return core.RecurringExpense{}, err
	}
	s.recordChanged(ctx, amqp.KindExpense, amqp.ActionCreated, created.ID)
	return created, nil
}

func (s *RecordService) DeleteRecurringExpense(ctx context.Context, id int64) error {
	if err := s.storage.DeleteRecurringExpense(ctx, id); err != nil {
		return err
	}
	s.recordChanged(ctx, amqp.KindExpense, amqp.ActionDeleted, id)
	return nil
}

// --- settings ---

func (s *RecordService) GetSettings(ctx context.Context) (core.Settings, error) {
	return s.storage.GetSettings(ctx)
}

func (s *RecordService) SaveSettings(ctx context.Context, settings core.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.storage.SaveSettings(ctx, settings); err != nil {
		return err
	}
	s.recordChanged(ctx, amqp.KindSettings, amqp.ActionUpdated, 0)
	return nil
}

// recordChanged invalidates the dashboard cache and publishes the change.
// Publish failures are logged, never surfaced; the write already landed.
func (s *RecordService) recordChanged(ctx context.Context, kind, action string, id int64) {
	if s.dashboards != nil {
		s.dashboards.InvalidateAll()
	}
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishRecordChange(ctx, kind, action, id); err != nil {
		slog.ErrorContext(ctx, "Failed to publish record change",
			"kind", kind, "action", action, "id", id, "error", err)
	}
}
