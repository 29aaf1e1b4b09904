package core

import (
	"errors"
	"strings"
)

const (
	IncomeFixed    IncomeType = "fixed"
	IncomeVariable IncomeType = "variable"
	IncomeExtra    IncomeType = "extra"
)

const (
	PaymentCredit   PaymentMethod = "credit"
	PaymentDebit    PaymentMethod = "debit"
	PaymentPix      PaymentMethod = "pix"
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
)

const (
	InvestmentSavings  InvestmentType = "savings"
	InvestmentCDB      InvestmentType = "cdb"
	InvestmentLCI      InvestmentType = "lci-lca"
	InvestmentFunds    InvestmentType = "funds"
	InvestmentStocks   InvestmentType = "stocks"
	InvestmentFIIs     InvestmentType = "fiis"
	InvestmentTreasury InvestmentType = "treasury"
)

// System-managed goals, matched by name. They recompute their current
// value on every refresh and cannot be deleted.
const (
	GoalMonthlySavings   = "Economia Mensal"
	GoalEmergencyReserve = "Reserva de Emergência"
)

type (
	IncomeType     string
	PaymentMethod  string
	InvestmentType string

	// Income is a single income record inside some financial period.
	// IsRecurring marks transient records expanded from a RecurringIncome
	// template for the current period; those are never persisted.
	Income struct {
		ID          int64      `json:"id"`
		Source      string     `json:"source"`
		Amount      float64    `json:"amount"`
		Type        IncomeType `json:"type"`
		Date        Date       `json:"date"`
		IsRecurring bool       `json:"isRecurring,omitempty"`
	}

	// Expense is a single expense record. Installment purchases produce
	// several expenses sharing InstallmentGroupID, one per month.
	Expense struct {
		ID                 int64         `json:"id"`
		Description        string        `json:"description"`
		Amount             float64       `json:"amount"`
		Category           string        `json:"category"`
		Payment            PaymentMethod `json:"payment"`
		Date               Date          `json:"date"`
		IsPaid             bool          `json:"isPaid"`
		InstallmentGroupID string        `json:"installmentGroupId,omitempty"`
		IsRecurring        bool          `json:"isRecurring,omitempty"`
	}

	// Investment is lifetime-scoped: balances and expected returns are
	// computed over all investments, only "invested this period" filters
	// by date. Yield is an annual percentage.
	Investment struct {
		ID          int64          `json:"id"`
		Description string         `json:"description"`
		Amount      float64        `json:"amount"`
		Type        InvestmentType `json:"type"`
		Yield       float64        `json:"yield"`
		Date        Date           `json:"date"`
	}

	// TimeEntry is one workday's attendance. Times are "HH:MM" wall-clock
	// strings; empty strings mean the field was not filled in.
	TimeEntry struct {
		ID         int64  `json:"id"`
		Date       Date   `json:"date"`
		Entry      string `json:"entry"`
		Exit       string `json:"exit"`
		BreakStart string `json:"breakStart"`
		BreakEnd   string `json:"breakEnd"`
		IsHoliday  bool   `json:"isHoliday"`
	}

	Goal struct {
		ID       int64   `json:"id"`
		Name     string  `json:"name"`
		Target   float64 `json:"target"`
		Current  float64 `json:"current"`
		Deadline *Date   `json:"deadline,omitempty"`
	}

	// Contribution is a payment toward a user-created goal.
	Contribution struct {
		ID     int64   `json:"id"`
		GoalID int64   `json:"goalId"`
		Amount float64 `json:"amount"`
		Date   Date    `json:"date"`
	}

	// RecurringIncome is a template expanded into a transient Income for
	// each financial period whose range covers its day of month, starting
	// from the template's creation month.
	RecurringIncome struct {
		ID         int64      `json:"id"`
		Source     string     `json:"source"`
		Amount     float64    `json:"amount"`
		Type       IncomeType `json:"type"`
		DayOfMonth int        `json:"dayOfMonth"`
		CreatedAt  Date       `json:"createdAt"`
	}

	RecurringExpense struct {
		ID          int64         `json:"id"`
		Description string        `json:"description"`
		Amount      float64       `json:"amount"`
		Category    string        `json:"category"`
		Payment     PaymentMethod `json:"payment"`
		DayOfMonth  int           `json:"dayOfMonth"`
		CreatedAt   Date          `json:"createdAt"`
	}

	// LineItem is a named amount used for the salary calculator's custom
	// bonus (provento) and discount lists.
	LineItem struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	}

	// Settings holds the user-configurable knobs. ExpenseCategories maps a
	// stable category key to its display label; CategoryOrder preserves the
	// configured ordering for reports.
	Settings struct {
		PayPeriodStartDay int               `json:"payPeriodStartDay"`
		OvertimeStartDay  int               `json:"overtimeStartDay"`
		OvertimeEndDay    int               `json:"overtimeEndDay"`
		ExpenseCategories map[string]string `json:"expenseCategories"`
		CategoryOrder     []string          `json:"categoryOrder"`
		CustomProventos   []LineItem        `json:"customProventos"`
		CustomDiscounts   []LineItem        `json:"customDiscounts"`
	}
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrEmptyDescription   = errors.New("empty description")
	ErrEmptySource        = errors.New("empty source")
	ErrInvalidIncomeType  = errors.New("invalid income type")
	ErrInvalidPayment     = errors.New("invalid payment method")
	ErrInvalidInvestment  = errors.New("invalid investment type")
	ErrInvalidDayOfMonth  = errors.New("day of month must be between 1 and 28")
	ErrInvalidCutoffDay   = errors.New("cut-off day must be between 1 and 28")
	ErrInvalidGoalTarget  = errors.New("goal target must be positive")
	ErrEmptyGoalName      = errors.New("empty goal name")
	ErrMissingTimes       = errors.New("date, entry and exit are required")
	ErrUnknownCategory    = errors.New("unknown expense category")
	ErrInvalidInstallment = errors.New("installments must be between 1 and 48")
)

func (t IncomeType) Validate() error {
	switch t {
	case IncomeFixed, IncomeVariable, IncomeExtra:
		return nil
	}
	return ErrInvalidIncomeType
}

func (p PaymentMethod) Validate() error {
	switch p {
	case PaymentCredit, PaymentDebit, PaymentPix, PaymentCash, PaymentTransfer:
		return nil
	}
	return ErrInvalidPayment
}

func (t InvestmentType) Validate() error {
	switch t {
	case InvestmentSavings, InvestmentCDB, InvestmentLCI, InvestmentFunds,
		InvestmentStocks, InvestmentFIIs, InvestmentTreasury:
		return nil
	}
	return ErrInvalidInvestment
}

func (i Income) Validate() error {
	if err := i.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(i.Source) == "" {
		return ErrEmptySource
	}
	if i.Amount <= 0 {
		return ErrInvalidAmount
	}
	return i.Type.Validate()
}

func (e Expense) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Description) == "" {
		return ErrEmptyDescription
	}
	if len(e.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if e.Amount <= 0 {
		return ErrInvalidAmount
	}
	return e.Payment.Validate()
}

func (v Investment) Validate() error {
	if err := v.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(v.Description) == "" {
		return ErrEmptyDescription
	}
	if v.Amount <= 0 {
		return ErrInvalidAmount
	}
	if v.Yield < 0 {
		return errors.New("yield cannot be negative")
	}
	return v.Type.Validate()
}

func (t TimeEntry) Validate() error {
	if t.Date.IsZero() || t.Entry == "" || t.Exit == "" {
		return ErrMissingTimes
	}
	return nil
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrEmptyGoalName
	}
	if g.Target <= 0 {
		return ErrInvalidGoalTarget
	}
	return nil
}

// IsSystemGoal reports whether the goal is one of the two managed goals
// whose current value is derived rather than contributed.
func (g Goal) IsSystemGoal() bool {
	return g.Name == GoalMonthlySavings || g.Name == GoalEmergencyReserve
}

func (c Contribution) Validate() error {
	if c.GoalID == 0 {
		return errors.New("missing goal id")
	}
	if c.Amount <= 0 {
		return ErrInvalidAmount
	}
	return c.Date.Validate()
}

func (r RecurringIncome) Validate() error {
	if strings.TrimSpace(r.Source) == "" {
		return ErrEmptySource
	}
	if r.Amount <= 0 {
		return ErrInvalidAmount
	}
	if r.DayOfMonth < 1 || r.DayOfMonth > 28 {
		return ErrInvalidDayOfMonth
	}
	return r.Type.Validate()
}

func (r RecurringExpense) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return ErrEmptyDescription
	}
	if r.Amount <= 0 {
		return ErrInvalidAmount
	}
	if r.DayOfMonth < 1 || r.DayOfMonth > 28 {
		return ErrInvalidDayOfMonth
	}
	return r.Payment.Validate()
}

// DefaultSettings mirrors the categories and cut-off days a fresh account
// starts with.
func DefaultSettings() Settings {
	return Settings{
		PayPeriodStartDay: 1,
		OvertimeStartDay:  24,
		OvertimeEndDay:    23,
		ExpenseCategories: map[string]string{
			"housing":       "Moradia",
			"food":          "Alimentação",
			"transport":     "Transporte",
			"health":        "Saúde",
			"education":     "Educação",
			"entertainment": "Lazer",
			"other":         "Outros",
		},
		CategoryOrder: []string{
			"housing", "food", "transport", "health", "education", "entertainment", "other",
		},
	}
}

// Validate enforces the settings-boundary constraints: the period resolver
// itself accepts any integer, so out-of-range cut-off days must be rejected
// here before they ever reach it.
func (s Settings) Validate() error {
	for _, day := range []int{s.PayPeriodStartDay, s.OvertimeStartDay, s.OvertimeEndDay} {
		if day < 1 || day > 28 {
			return ErrInvalidCutoffDay
		}
	}
	if len(s.ExpenseCategories) == 0 {
		return errors.New("at least one expense category is required")
	}
	for _, key := range s.CategoryOrder {
		if _, ok := s.ExpenseCategories[key]; !ok {
			return ErrUnknownCategory
		}
	}
	for _, item := range append(append([]LineItem{}, s.CustomProventos...), s.CustomDiscounts...) {
		if strings.TrimSpace(item.Name) == "" {
			return errors.New("custom item name cannot be empty")
		}
		if item.Value <= 0 {
			return ErrInvalidAmount
		}
	}
	return nil
}
