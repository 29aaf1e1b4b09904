package http

import (
	"net/http"

	"grana/internal/payroll"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	d, err := s.dashboards.Load(r.Context(), year, month)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

type salaryRequest struct {
	BaseSalary string `json:"baseSalary"`
	Workload   string `json:"workload"`
	Dependents int    `json:"dependents"`
}

// handleSalary computes the pay breakdown for the reference month given by
// the year/month query parameters. Numeric fields arrive as strings so the
// client can send Brazilian decimals.
func (s *Server) handleSalary(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var req salaryRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	baseSalary, err := parseAmountField(req.BaseSalary)
	if err != nil {
		badRequest(w, "invalid baseSalary")
		return
	}
	workload, err := parseAmountField(req.Workload)
	if err != nil {
		badRequest(w, "invalid workload")
		return
	}
	if req.Dependents < 0 {
		badRequest(w, "dependents cannot be negative")
		return
	}

	breakdown, err := s.salary.Compute(r.Context(), year, month, payroll.Input{
		BaseSalary: baseSalary,
		Workload:   workload,
		Dependents: req.Dependents,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, breakdown)
}
