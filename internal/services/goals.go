package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"grana/internal/amqp"
	"grana/internal/core"
	"grana/internal/storage"
)

// ErrSystemGoal is returned when a caller tries to delete or contribute to
// one of the managed goals.
var ErrSystemGoal = errors.New("system goals are managed automatically")

// Default targets the managed goals are seeded with; the user can change
// them later.
const (
	defaultMonthlySavingsTarget   = 1000
	defaultEmergencyReserveTarget = 10000
)

// GoalService owns goals and contributions. The two system goals derive
// their current value from period totals; user goals accumulate
// contributions.
type GoalService struct {
	storage    *storage.SQLiteRepository
	publisher  ChangePublisher
	dashboards *DashboardService
}

func NewGoalService(repo *storage.SQLiteRepository, publisher ChangePublisher, dashboards *DashboardService) *GoalService {
	return &GoalService{
		storage:    repo,
		publisher:  publisher,
		dashboards: dashboards,
	}
}

// EnsureSystemGoals seeds the managed goals if they do not exist yet.
func (s *GoalService) EnsureSystemGoals(ctx context.Context) error {
	for name, target := range map[string]float64{
		core.GoalMonthlySavings:   defaultMonthlySavingsTarget,
		core.GoalEmergencyReserve: defaultEmergencyReserveTarget,
	} {
		_, err := s.storage.GetGoalByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("look up goal %q: %w", name, err)
		}
		if _, err := s.storage.CreateGoal(ctx, core.Goal{Name: name, Target: target}); err != nil {
			return fmt.Errorf("seed goal %q: %w", name, err)
		}
		slog.InfoContext(ctx, "Seeded system goal", "name", name, "target", target)
	}
	return nil
}

// RefreshSystemGoals recomputes the managed goals' current values from the
// given reference month: monthly savings from the period balance, the
// emergency reserve from the lifetime invested total.
func (s *GoalService) RefreshSystemGoals(ctx context.Context, year, month int) error {
	if err := s.EnsureSystemGoals(ctx); err != nil {
		return err
	}

	d, err := s.dashboards.Load(ctx, year, month)
	if err != nil {
		return fmt.Errorf("load dashboard: %w", err)
	}

	for name, current := range map[string]float64{
		core.GoalMonthlySavings:   d.Totals.MonthSavings,
		core.GoalEmergencyReserve: d.Totals.TotalInvested,
	} {
		g, err := s.storage.GetGoalByName(ctx, name)
		if err != nil {
			return fmt.Errorf("look up goal %q: %w", name, err)
		}
		if g.Current == current {
			continue
		}
		g.Current = current
		if err := s.storage.UpdateGoal(ctx, g); err != nil {
			return fmt.Errorf("update goal %q: %w", name, err)
		}
		slog.InfoContext(ctx, "Refreshed system goal", "name", name, "current", current)
	}
	return nil
}

// ListGoals returns every goal, seeding the two managed goals on first
// use so the list is never missing them.
func (s *GoalService) ListGoals(ctx context.Context) ([]core.Goal, error) {
	if err := s.EnsureSystemGoals(ctx); err != nil {
		return nil, err
	}
	return s.storage.ListGoals(ctx)
}

func (s *GoalService) CreateGoal(ctx context.Context, g core.Goal) (core.Goal, error) {
	if err := g.Validate(); err != nil {
		return core.Goal{}, err
	}
	if g.IsSystemGoal() {
		return core.Goal{}, ErrSystemGoal
	}
	created, err := s.storage.CreateGoal(ctx, g)
	if err != nil {
		return core.Goal{}, err
	}
	s.goalChanged(ctx, amqp.ActionCreated, created.ID)
	return created, nil
}

// UpdateGoal changes name, target or deadline. System goals accept target
// and deadline edits but keep their name and derived current value.
func (s *GoalService) UpdateGoal(ctx context.Context, g core.Goal) error {
	if err := g.Validate(); err != nil {
		return err
	}
	existing, err := s.storage.GetGoal(ctx, g.ID)
	if err != nil {
		return err
	}
	if existing.IsSystemGoal() {
		g.Name = existing.Name
		g.Current = existing.Current
	}
	if err := s.storage.UpdateGoal(ctx, g); err != nil {
		return err
	}
	s.goalChanged(ctx, amqp.ActionUpdated, g.ID)
	return nil
}

func (s *GoalService) DeleteGoal(ctx context.Context, id int64) error {
	g, err := s.storage.GetGoal(ctx, id)
	if err != nil {
		return err
	}
	if g.IsSystemGoal() {
		return ErrSystemGoal
	}
	if err := s.storage.DeleteGoal(ctx, id); err != nil {
		return err
	}
	s.goalChanged(ctx, amqp.ActionDeleted, id)
	return nil
}

// AddContribution records a payment toward a user goal and bumps the
// goal's current value to the new contribution sum.
func (s *GoalService) AddContribution(ctx context.Context, c core.Contribution) (core.Contribution, error) {
	if err := c.Validate(); err != nil {
		return core.Contribution{}, err
	}
	g, err := s.storage.GetGoal(ctx, c.GoalID)
	if err != nil {
		return core.Contribution{}, err
	}
	if g.IsSystemGoal() {
		return core.Contribution{}, ErrSystemGoal
	}

	created, err := s.storage.CreateContribution(ctx, c)
	if err != nil {
		return core.Contribution{}, err
	}

	total, err := s.storage.SumContributions(ctx, g.ID)
	if err != nil {
		return core.Contribution{}, err
	}
	g.Current = total
	if err := s.storage.UpdateGoal(ctx, g); err != nil {
		return core.Contribution{}, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishRecordChange(ctx, amqp.KindContribution, amqp.ActionCreated, created.ID); err != nil {
			slog.ErrorContext(ctx, "Failed to publish contribution change", "id", created.ID, "error", err)
		}
	}
	return created, nil
}

func (s *GoalService) ListContributions(ctx context.Context, goalID int64) ([]core.Contribution, error) {
	return s.storage.ListContributions(ctx, goalID)
}

func (s *GoalService) goalChanged(ctx context.Context, action string, id int64) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishRecordChange(ctx, amqp.KindGoal, action, id); err != nil {
		slog.ErrorContext(ctx, "Failed to publish goal change", "action", action, "id", id, "error", err)
	}
}
