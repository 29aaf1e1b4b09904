package http

import (
	"net/http"

	"grana/internal/core"
)

type goalRequest struct {
	Name     string `json:"name"`
	Target   string `json:"target"`
	Deadline string `json:"deadline"`
}

func (s *Server) decodeGoal(r *http.Request) (core.Goal, error) {
	var req goalRequest
	if err := decodeJSON(r, &req); err != nil {
		return core.Goal{}, err
	}
	target, err := parseAmountField(req.Target)
	if err != nil {
		return core.Goal{}, err
	}
	g := core.Goal{
		Name:   sanitizeInput(req.Name),
		Target: target,
	}
	if req.Deadline != "" {
		deadline, err := core.ParseDate(req.Deadline)
		if err != nil {
			return core.Goal{}, err
		}
		g.Deadline = &deadline
	}
	return g, nil
}

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := s.goals.ListGoals(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	g, err := s.decodeGoal(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	created, err := s.goals.CreateGoal(r.Context(), g)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	g, err := s.decodeGoal(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	g.ID = id
	if err := s.goals.UpdateGoal(r.Context(), g); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	if err := s.goals.DeleteGoal(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListContributions(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	contributions, err := s.goals.ListContributions(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contributions)
}

type contributionRequest struct {
	Amount string `json:"amount"`
	Date   string `json:"date"`
}

func (s *Server) handleAddContribution(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	var req contributionRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	amount, err := parseAmountField(req.Amount)
	if err != nil {
		badRequest(w, "invalid amount")
		return
	}
	date := core.Today()
	if req.Date != "" {
		date, err = core.ParseDate(req.Date)
		if err != nil {
			badRequest(w, err.Error())
			return
		}
	}
	created, err := s.goals.AddContribution(r.Context(), core.Contribution{
		GoalID: id,
		Amount: amount,
		Date:   date,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

type recurringIncomeRequest struct {
	Source     string `json:"source"`
	Amount     string `json:"amount"`
	Type       string `json:"type"`
	DayOfMonth int    `json:"dayOfMonth"`
}

func (s *Server) handleCreateRecurringIncome(w http.ResponseWriter, r *http.Request) {
	var req recurringIncomeRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	amount, err := parseAmountField(req.Amount)
	if err != nil {
		badRequest(w, "invalid amount")
		return
	}
	created, err := s.records.CreateRecurringIncome(r.Context(), core.RecurringIncome{
		Source:     sanitizeInput(req.Source),
		Amount:     amount,
		Type:       core.IncomeType(req.Type),
		DayOfMonth: req.DayOfMonth,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteRecurringIncome(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	if err := s.records.DeleteRecurringIncome(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type recurringExpenseRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Payment     string `json:"payment"`
	DayOfMonth  int    `json:"dayOfMonth"`
}

func (s *Server) handleCreateRecurringExpense(w http.ResponseWriter, r *http.Request) {
	var req recurringExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	amount, err := parseAmountField(req.Amount)
	if err != nil {
		badRequest(w, "invalid amount")
		return
	}
	created, err := s.records.CreateRecurringExpense(r.Context(), core.RecurringExpense{
		Description: sanitizeInput(req.Description),
		Amount:      amount,
		Category:    sanitizeInput(req.Category),
		Payment:     core.PaymentMethod(req.Payment),
		DayOfMonth:  req.DayOfMonth,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteRecurringExpense(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	if err := s.records.DeleteRecurringExpense(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.records.GetSettings(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	var settings core.Settings
	if err := decodeJSON(r, &settings); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := s.records.SaveSettings(r.Context(), settings); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
