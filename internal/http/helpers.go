package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"grana/internal/core"
	"grana/internal/services"
	"grana/internal/storage"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError maps domain errors onto HTTP status codes: missing records to
// 404, protected goals to 409, validation failures to 422, everything else
// to 500 with the detail kept out of the response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, services.ErrSystemGoal):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case isValidationError(err):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	default:
		slog.ErrorContext(r.Context(), "Request failed",
			"method", r.Method, "url", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func isValidationError(err error) bool {
	for _, sentinel := range []error{
		core.ErrInvalidAmount,
		core.ErrEmptyDescription,
		core.ErrEmptySource,
		core.ErrInvalidIncomeType,
		core.ErrInvalidPayment,
		core.ErrInvalidInvestment,
		core.ErrInvalidDayOfMonth,
		core.ErrInvalidCutoffDay,
		core.ErrInvalidGoalTarget,
		core.ErrEmptyGoalName,
		core.ErrMissingTimes,
		core.ErrUnknownCategory,
		core.ErrInvalidInstallment,
		core.ErrInvalidDate,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

// parseYearMonth reads the year/month query parameters, defaulting to the
// current month.
func parseYearMonth(r *http.Request) (int, int, error) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if v := strings.TrimSpace(r.URL.Query().Get("year")); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 1970 || y > 9999 {
			return 0, 0, errors.New("invalid year parameter")
		}
		year = y
	}
	if v := strings.TrimSpace(r.URL.Query().Get("month")); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, errors.New("invalid month parameter")
		}
		month = m
	}
	return year, month, nil
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// parseAmountField parses a money field that may arrive in Brazilian
// format ("1.234,56") or plain decimal.
func parseAmountField(s string) (float64, error) {
	return core.ParseAmount(s)
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
