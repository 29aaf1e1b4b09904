package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"grana/internal/core"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a record id does not exist.
var ErrNotFound = errors.New("record not found")

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// --- incomes ---

func (r *SQLiteRepository) CreateIncome(ctx context.Context, in core.Income) (core.Income, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO incomes (source, amount, type, date) VALUES (?, ?, ?, ?)`,
		in.Source, in.Amount, string(in.Type), in.Date.String())
	if err != nil {
		return core.Income{}, fmt.Errorf("create income: %w", err)
	}
	in.ID, _ = res.LastInsertId()

	slog.InfoContext(ctx, "Income saved", "id", in.ID, "source", in.Source, "amount", in.Amount)
	return in, nil
}

func (r *SQLiteRepository) ListIncomes(ctx context.Context, p core.Period) ([]core.Income, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, source, amount, type, date FROM incomes
		 WHERE date >= ? AND date <= ? ORDER BY date, id`,
		p.Start.String(), p.End.String())
	if err != nil {
		return nil, fmt.Errorf("list incomes: %w", err)
	}
	defer rows.Close()

	var incomes []core.Income
	for rows.Next() {
		var in core.Income
		var typ, date string
		if err := rows.Scan(&in.ID, &in.Source, &in.Amount, &typ, &date); err != nil {
			return nil, fmt.Errorf("scan income: %w", err)
		}
		in.Type = core.IncomeType(typ)
		if in.Date, err = core.ParseDate(date); err != nil {
			return nil, fmt.Errorf("parse income date: %w", err)
		}
		incomes = append(incomes, in)
	}
	return incomes, rows.Err()
}

func (r *SQLiteRepository) UpdateIncome(ctx context.Context, in core.Income) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE incomes SET source = ?, amount = ?, type = ?, date = ? WHERE id = ?`,
		in.Source, in.Amount, string(in.Type), in.Date.String(), in.ID)
	if err != nil {
		return fmt.Errorf("update income: %w", err)
	}
	return requireAffected(res)
}

func (r *SQLiteRepository) DeleteIncome(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM incomes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete income: %w", err)
	}
	return requireAffected(res)
}

// --- expenses ---

func (r *SQLiteRepository) GetExpense(ctx context.Context, id int64) (core.Expense, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, description, amount, category, payment, date, is_paid, installment_group_id
		 FROM expenses WHERE id = ?`, id)
	e, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Expense{}, ErrNotFound
	}
	return e, err
}

func (r *SQLiteRepository) CreateExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (description, amount, category, payment, date, is_paid, installment_group_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Description, e.Amount, e.Category, string(e.Payment), e.Date.String(),
		boolToInt(e.IsPaid), e.InstallmentGroupID)
	if err != nil {
		return core.Expense{}, fmt.Errorf("create expense: %w", err)
	}
	e.ID, _ = res.LastInsertId()

	slog.InfoContext(ctx, "Expense saved", "id", e.ID, "description", e.Description, "amount", e.Amount)
	return e, nil
}

// CreateExpenses inserts all expenses in one transaction; installment
// splits must land together or not at all.
func (r *SQLiteRepository) CreateExpenses(ctx context.Context, expenses []core.Expense) ([]core.Expense, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	created := make([]core.Expense, 0, len(expenses))
	for _, e := range expenses {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO expenses (description, amount, category, payment, date, is_paid, installment_group_id)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			e.Description, e.Amount, e.Category, string(e.Payment), e.Date.String(),
			boolToInt(e.IsPaid), e.InstallmentGroupID)
		if err != nil {
			return nil, fmt.Errorf("create expense: %w", err)
		}
		e.ID, _ = res.LastInsertId()
		created = append(created, e)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return created, nil
}

func (r *SQLiteRepository) ListExpenses(ctx context.Context, p core.Period) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, description, amount, category, payment, date, is_paid, installment_group_id
		 FROM expenses WHERE date >= ? AND date <= ? ORDER BY date, id`,
		p.Start.String(), p.End.String())
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []core.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (r *SQLiteRepository) UpdateExpense(ctx context.Context, e core.Expense) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET description = ?, amount = ?, category = ?, payment = ?, date = ?, is_paid = ?
		 WHERE id = ?`,
		e.Description, e.Amount, e.Category, string(e.Payment), e.Date.String(),
		boolToInt(e.IsPaid), e.ID)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return requireAffected(res)
}

func (r *SQLiteRepository) SetExpensePaid(ctx context.Context, id int64, paid bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET is_paid = ? WHERE id = ?`, boolToInt(paid), id)
	if err != nil {
		return fmt.Errorf("set expense paid: %w", err)
	}
	return requireAffected(res)
}

func (r *SQLiteRepository) DeleteExpense(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return requireAffected(res)
}

// DeleteInstallmentsFrom removes every expense of a group dated on or after
// the given date. Earlier, already-consumed installments survive.
func (r *SQLiteRepository) DeleteInstallmentsFrom(ctx context.Context, groupID string, from core.Date) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM expenses WHERE installment_group_id = ? AND date >= ?`,
		groupID, from.String())
	if err != nil {
		return 0, fmt.Errorf("delete installments: %w", err)
	}
	n, _ := res.RowsAffected()

	slog.InfoContext(ctx, "Installments deleted", "group_id", groupID, "from", from.String(), "count", n)
	return n, nil
}

// ListInstallmentsFrom returns the expenses of a group dated on or after the
// given date, ordered by date.
func (r *SQLiteRepository) ListInstallmentsFrom(ctx context.Context, groupID string, from core.Date) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, description, amount, category, payment, date, is_paid, installment_group_id
		 FROM expenses WHERE installment_group_id = ? AND date >= ? ORDER BY date, id`,
		groupID, from.String())
	if err != nil {
		return nil, fmt.Errorf("list installments: %w", err)
	}
	defer rows.Close()

	var expenses []core.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// --- investments ---

func (r *SQLiteRepository) CreateInvestment(ctx context.Context, v core.Investment) (core.Investment, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO investments (description, amount, type, yield, date) VALUES (?, ?, ?, ?, ?)`,
		v.Description, v.Amount, string(v.Type), v.Yield, v.Date.String())
	if err != nil {
		return core.Investment{}, fmt.Errorf("create investment: %w", err)
	}
	v.ID, _ = res.LastInsertId()
	return v, nil
}

// ListAllInvestments returns every investment ever recorded. Balances and
// expected returns are lifetime figures, not period ones.
func (r *SQLiteRepository) ListAllInvestments(ctx context.Context) ([]core.Investment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, description, amount, type, yield, date FROM investments ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	defer rows.Close()

	var investments []core.Investment
	for rows.Next() {
		var v core.Investment
		var typ, date string
		if err := rows.Scan(&v.ID, &v.Description, &v.Amount, &typ, &v.Yield, &date); err != nil {
			return nil, fmt.Errorf("scan investment: %w", err)
		}
		v.Type = core.InvestmentType(typ)
		if v.Date, err = core.ParseDate(date); err != nil {
			return nil, fmt.Errorf("parse investment date: %w", err)
		}
		investments = append(investments, v)
	}
	return investments, rows.Err()
}

func (r *SQLiteRepository) UpdateInvestment(ctx context.Context, v core.Investment) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE investments SET description = ?, amount = ?, type = ?, yield = ?, date = ? WHERE id = ?`,
		v.Description, v.Amount, string(v.Type), v.Yield, v.Date.String(), v.ID)
	if err != nil {
		return fmt.Errorf("update investment: %w", err)
	}
	return requireAffected(res)
}

func (r *SQLiteRepository) DeleteInvestment(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM investments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete investment: %w", err)
	}
	return requireAffected(res)
}

// --- time entries ---

// UpsertTimeEntry replaces any existing entry for the same date; one row
// per workday.
func (r *SQLiteRepository) UpsertTimeEntry(ctx context.Context, t core.TimeEntry) (core.TimeEntry, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO time_entries (date, entry, exit, break_start, break_end, is_holiday)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET
		   entry = excluded.entry, exit = excluded.exit,
		   break_start = excluded.break_start, break_end = excluded.break_end,
		   is_holiday = excluded.is_holiday`,
		t.Date.String(), t.Entry, t.Exit, t.BreakStart, t.BreakEnd, boolToInt(t.IsHoliday))
	if err != nil {
		return core.TimeEntry{}, fmt.Errorf("upsert time entry: %w", err)
	}
	if id, _ := res.LastInsertId(); id != 0 {
		t.ID = id
	}
	return t, nil
}

func (r *SQLiteRepository) ListTimeEntries(ctx context.Context, p core.Period) ([]core.TimeEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, entry, exit, break_start, break_end, is_holiday
		 FROM time_entries WHERE date >= ? AND date <= ? ORDER BY date`,
		p.Start.String(), p.End.String())
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	defer rows.Close()

	var entries []core.TimeEntry
	for rows.Next() {
		var t core.TimeEntry
		var date string
		var holiday int
		if err := rows.Scan(&t.ID, &date, &t.Entry, &t.Exit, &t.BreakStart, &t.BreakEnd, &holiday); err != nil {
			return nil, fmt.Errorf("scan time entry: %w", err)
		}
		if t.Date, err = core.ParseDate(date); err != nil {
			return nil, fmt.Errorf("parse time entry date: %w", err)
		}
		t.IsHoliday = holiday != 0
		entries = append(entries, t)
	}
	return entries, rows.Err()
}

func (r *SQLiteRepository) DeleteTimeEntry(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM time_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete time entry: %w", err)
	}
	return requireAffected(res)
}

// --- goals and contributions ---

func (r *SQLiteRepository) CreateGoal(ctx context.Context, g core.Goal) (core.Goal, error) {
	var deadline any
	if g.Deadline != nil {
		deadline = g.Deadline.String()
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO goals (name, target, current, deadline) VALUES (?, ?, ?, ?)`,
		g.Name, g.Target, g.Current, deadline)
	if err != nil {
		return core.Goal{}, fmt.Errorf("create goal: %w", err)
	}
	g.ID, _ = res.LastInsertId()
	return g, nil
}

func (r *SQLiteRepository) ListGoals(ctx context.Context) ([]core.Goal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, target, current, deadline FROM goals ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var goals []core.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (r *SQLiteRepository) GetGoal(ctx context.Context, id int64) (core.Goal, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, target, current, deadline FROM goals WHERE id = ?`, id)
	g, err := scanGoal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Goal{}, ErrNotFound
	}
	return g, err
}

func (r *SQLiteRepository) GetGoalByName(ctx context.Context, name string) (core.Goal, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, target, current, deadline FROM goals WHERE name = ?`, name)
	g, err := scanGoal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Goal{}, ErrNotFound
	}
	return g, err
}

func (r *SQLiteRepository) UpdateGoal(ctx context.Context, g core.Goal) error {
	var deadline any
	if g.Deadline != nil {
		deadline = g.Deadline.String()
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE goals SET name = ?, target = ?, current = ?, deadline = ? WHERE id = ?`,
		g.Name, g.Target, g.Current, deadline, g.ID)
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	return requireAffected(res)
}

func (r *SQLiteRepository) DeleteGoal(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	return requireAffected(res)
}

func (r *SQLiteRepository) CreateContribution(ctx context.Context, c core.Contribution) (core.Contribution, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO contributions (goal_id, amount, date) VALUES (?, ?, ?)`,
		c.GoalID, c.Amount, c.Date.String())
	if err != nil {
		return core.Contribution{}, fmt.Errorf("create contribution: %w", err)
	}
	c.ID, _ = res.LastInsertId()
	return c, nil
}

func (r *SQLiteRepository) ListContributions(ctx context.Context, goalID int64) ([]core.Contribution, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, goal_id, amount, date FROM contributions WHERE goal_id = ? ORDER BY date, id`,
		goalID)
	if err != nil {
		return nil, fmt.Errorf("list contributions: %w", err)
	}
	defer rows.Close()

	var contributions []core.Contribution
	for rows.Next() {
		var c core.Contribution
		var date string
		if err := rows.Scan(&c.ID, &c.GoalID, &c.Amount, &date); err != nil {
			return nil, fmt.Errorf("scan contribution: %w", err)
		}
		if c.Date, err = core.ParseDate(date); err != nil {
			return nil, fmt.Errorf("parse contribution date: %w", err)
		}
		contributions = append(contributions, c)
	}
	return contributions, rows.Err()
}

func (r *SQLiteRepository) SumContributions(ctx context.Context, goalID int64) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM contributions WHERE goal_id = ?`, goalID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum contributions: %w", err)
	}
	return total, nil
}

// --- recurring templates ---

func (r *SQLiteRepository) CreateRecurringIncome(ctx context.Context, t core.RecurringIncome) (core.RecurringIncome, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO recurring_incomes (source, amount, type, day_of_month, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		t.Source, t.Amount, string(t.Type), t.DayOfMonth, t.CreatedAt.String())
	if err != nil {
		return core.RecurringIncome{}, fmt.Errorf("create recurring income: %w", err)
	}
	t.ID, _ = res.LastInsertId()
	return t, nil
}

func (r *SQLiteRepository) ListRecurringIncomes(ctx context.Context) ([]core.RecurringIncome, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, source, amount, type, day_of_month, created_at FROM recurring_incomes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list recurring incomes: %w", err)
	}
	defer rows.Close()

	var templates []core.RecurringIncome
	for rows.Next() {
		var t core.RecurringIncome
		var typ, created string
		if err := rows.Scan(&t.ID, &t.Source, &t.Amount, &typ, &t.DayOfMonth, &created); err != nil {
			return nil, fmt.Errorf("scan recurring income: %w", err)
		}
		t.Type = core.IncomeType(typ)
		if t.CreatedAt, err = core.ParseDate(created); err != nil {
			return nil, fmt.Errorf("parse recurring income created_at: %w", err)
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (r *SQLiteRepository) DeleteRecurringIncome(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM recurring_incomes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete recurring income: %w", err)
	}
	return requireAffected(res)
}

func (r *SQLiteRepository) CreateRecurringExpense(ctx context.Context, t core.RecurringExpense) (core.RecurringExpense, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO recurring_expenses (description, amount, category, payment, day_of_month, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.Description, t.Amount, t.Category, string(t.Payment), t.DayOfMonth, t.CreatedAt.String())
	if err != nil {
		return core.RecurringExpense{}, fmt.Errorf("create recurring expense: %w", err)
	}
	t.ID, _ = res.LastInsertId()
	return t, nil
}

func (r *SQLiteRepository) ListRecurringExpenses(ctx context.Context) ([]core.RecurringExpense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, description, amount, category, payment, day_of_month, created_at
		 FROM recurring_expenses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list recurring expenses: %w", err)
	}
	defer rows.Close()

	var templates []core.RecurringExpense
	for rows.Next() {
		var t core.RecurringExpense
		var payment, created string
		if err := rows.Scan(&t.ID, &t.Description, &t.Amount, &t.Category, &payment, &t.DayOfMonth, &created); err != nil {
			return nil, fmt.Errorf("scan recurring expense: %w", err)
		}
		t.Payment = core.PaymentMethod(payment)
		if t.CreatedAt, err = core.ParseDate(created); err != nil {
			return nil, fmt.Errorf("parse recurring expense created_at: %w", err)
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (r *SQLiteRepository) DeleteRecurringExpense(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM recurring_expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete recurring expense: %w", err)
	}
	return requireAffected(res)
}

// --- settings ---

// GetSettings returns the stored settings, or the defaults when nothing has
// been saved yet.
func (r *SQLiteRepository) GetSettings(ctx context.Context) (core.Settings, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM settings WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return core.DefaultSettings(), nil
	}
	if err != nil {
		return core.Settings{}, fmt.Errorf("get settings: %w", err)
	}

	var s core.Settings
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return core.Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return s, nil
}

func (r *SQLiteRepository) SaveSettings(ctx context.Context, s core.Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO settings (id, data, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		string(data))
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	slog.InfoContext(ctx, "Settings saved")
	return nil
}

// --- helpers ---

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (core.Expense, error) {
	var e core.Expense
	var payment, date string
	var paid int
	if err := row.Scan(&e.ID, &e.Description, &e.Amount, &e.Category, &payment, &date, &paid, &e.InstallmentGroupID); err != nil {
		return core.Expense{}, err
	}
	e.Payment = core.PaymentMethod(payment)
	e.IsPaid = paid != 0
	var err error
	if e.Date, err = core.ParseDate(date); err != nil {
		return core.Expense{}, fmt.Errorf("parse expense date: %w", err)
	}
	return e, nil
}

func scanGoal(row rowScanner) (core.Goal, error) {
	var g core.Goal
	var deadline sql.NullString
	if err := row.Scan(&g.ID, &g.Name, &g.Target, &g.Current, &deadline); err != nil {
		return core.Goal{}, err
	}
	if deadline.Valid && deadline.String != "" {
		d, err := core.ParseDate(deadline.String)
		if err != nil {
			return core.Goal{}, fmt.Errorf("parse goal deadline: %w", err)
		}
		g.Deadline = &d
	}
	return g, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
