package http

import (
	"net/http"

	"grana/internal/core"
	"grana/internal/services"
)

// Money fields arrive as strings ("1.234,56" or "1234.56") and are parsed
// at this boundary; everything past it works with float64.

type incomeRequest struct {
	Source string `json:"source"`
	Amount string `json:"amount"`
	Type   string `json:"type"`
	Date   string `json:"date"`
}

func (s *Server) decodeIncome(r *http.Request) (core.Income, error) {
	var req incomeRequest
	if err := decodeJSON(r, &req); err != nil {
		return core.Income{}, err
	}
	amount, err := parseAmountField(req.Amount)
	if err != nil {
		return core.Income{}, err
	}
	date, err := core.ParseDate(req.Date)
	if err != nil {
		return core.Income{}, err
	}
	return core.Income{
		Source: sanitizeInput(req.Source),
		Amount: amount,
		Type:   core.IncomeType(req.Type),
		Date:   date,
	}, nil
}

func (s *Server) handleCreateIncome(w http.ResponseWriter, r *http.Request) {
	in, err := s.decodeIncome(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	created, err := s.records.CreateIncome(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateIncome(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	in, err := s.decodeIncome(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	in.ID = id
	if err := s.records.UpdateIncome(r.Context(), in); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, in)
}

func (s *Server) handleDeleteIncome(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	if err := s.records.DeleteIncome(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type expenseRequest struct {
	Description  string `json:"description"`
	Amount       string `json:"amount"`
	Category     string `json:"category"`
	Payment      string `json:"payment"`
	Date         string `json:"date"`
	IsPaid       bool   `json:"isPaid"`
	Installments int    `json:"installments"`
	Scope        string `json:"scope"`
}

func (s *Server) decodeExpense(r *http.Request) (core.Expense, expenseRequest, error) {
	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		return core.Expense{}, req, err
	}
	amount, err := parseAmountField(req.Amount)
	if err != nil {
		return core.Expense{}, req, err
	}
	date, err := core.ParseDate(req.Date)
	if err != nil {
		return core.Expense{}, req, err
	}
	return core.Expense{
		Description: sanitizeInput(req.Description),
		Amount:      amount,
		Category:    sanitizeInput(req.Category),
		Payment:     core.PaymentMethod(req.Payment),
		Date:        date,
		IsPaid:      req.IsPaid,
	}, req, nil
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	e, req, err := s.decodeExpense(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	installments := req.Installments
	if installments == 0 {
		installments = 1
	}
	created, err := s.records.CreateExpense(r.Context(), e, installments)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	e, req, err := s.decodeExpense(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	existing, err := s.records.GetExpense(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	e.ID = id
	e.InstallmentGroupID = existing.InstallmentGroupID

	scope := req.Scope
	if scope == "" {
		scope = services.ScopeOne
	}
	if err := s.records.UpdateExpense(r.Context(), e, scope); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	scope := r.URL.Query().Get("scope")
	if scope == "" {
		scope = services.ScopeOne
	}
	if scope != services.ScopeOne && scope != services.ScopeFuture {
		badRequest(w, "invalid scope, must be 'one' or 'future'")
		return
	}
	if err := s.records.DeleteExpense(r.Context(), id, scope); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetExpensePaid(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	var req struct {
		IsPaid bool `json:"isPaid"`
	}
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := s.records.SetExpensePaid(r.Context(), id, req.IsPaid); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type investmentRequest struct {
	Description string  `json:"description"`
	Amount      string  `json:"amount"`
	Type        string  `json:"type"`
	Yield       float64 `json:"yield"`
	Date        string  `json:"date"`
}

func (s *Server) decodeInvestment(r *http.Request) (core.Investment, error) {
	var req investmentRequest
	if err := decodeJSON(r, &req); err != nil {
		return core.Investment{}, err
	}
	amount, err := parseAmountField(req.Amount)
	if err != nil {
		return core.Investment{}, err
	}
	date, err := core.ParseDate(req.Date)
	if err != nil {
		return core.Investment{}, err
	}
	return core.Investment{
		Description: sanitizeInput(req.Description),
		Amount:      amount,
		Type:        core.InvestmentType(req.Type),
		Yield:       req.Yield,
		Date:        date,
	}, nil
}

func (s *Server) handleCreateInvestment(w http.ResponseWriter, r *http.Request) {
	v, err := s.decodeInvestment(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	created, err := s.records.CreateInvestment(r.Context(), v)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateInvestment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	v, err := s.decodeInvestment(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	v.ID = id
	if err := s.records.UpdateInvestment(r.Context(), v); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleDeleteInvestment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	if err := s.records.DeleteInvestment(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type timeEntryRequest struct {
	Date       string `json:"date"`
	Entry      string `json:"entry"`
	Exit       string `json:"exit"`
	BreakStart string `json:"breakStart"`
	BreakEnd   string `json:"breakEnd"`
	IsHoliday  bool   `json:"isHoliday"`
}

func (s *Server) handleSaveTimeEntry(w http.ResponseWriter, r *http.Request) {
	var req timeEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	date, err := core.ParseDate(req.Date)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	saved, err := s.records.SaveTimeEntry(r.Context(), core.TimeEntry{
		Date:       date,
		Entry:      req.Entry,
		Exit:       req.Exit,
		BreakStart: req.BreakStart,
		BreakEnd:   req.BreakEnd,
		IsHoliday:  req.IsHoliday,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleDeleteTimeEntry(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	if err := s.records.DeleteTimeEntry(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
