// Package http exposes the JSON API: dashboards, salary calculation and
// CRUD for every record kind.
package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"grana/internal/services"
)

type Server struct {
	http.Server
	records    *services.RecordService
	dashboards *services.DashboardService
	goals      *services.GoalService
	salary     *services.SalaryService

	rateLimiter  *rateLimiter
	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run
// http.Server.
func NewServer(addr string, records *services.RecordService, dashboards *services.DashboardService, goals *services.GoalService, salary *services.SalaryService) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
		records:     records,
		dashboards:  dashboards,
		goals:       goals,
		salary:      salary,
		rateLimiter: newRateLimiter(),
	}

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	mux.HandleFunc("GET /api/dashboard", s.wrap(s.handleDashboard))
	mux.HandleFunc("POST /api/salary", s.wrap(s.handleSalary))

	mux.HandleFunc("POST /api/incomes", s.wrap(s.handleCreateIncome))
	mux.HandleFunc("PUT /api/incomes/{id}", s.wrap(s.handleUpdateIncome))
	mux.HandleFunc("DELETE /api/incomes/{id}", s.wrap(s.handleDeleteIncome))

	mux.HandleFunc("POST /api/expenses", s.wrap(s.handleCreateExpense))
	mux.HandleFunc("PUT /api/expenses/{id}", s.wrap(s.handleUpdateExpense))
	mux.HandleFunc("DELETE /api/expenses/{id}", s.wrap(s.handleDeleteExpense))
	mux.HandleFunc("POST /api/expenses/{id}/paid", s.wrap(s.handleSetExpensePaid))

	mux.HandleFunc("POST /api/investments", s.wrap(s.handleCreateInvestment))
	mux.HandleFunc("PUT /api/investments/{id}", s.wrap(s.handleUpdateInvestment))
	mux.HandleFunc("DELETE /api/investments/{id}", s.wrap(s.handleDeleteInvestment))

	mux.HandleFunc("POST /api/time-entries", s.wrap(s.handleSaveTimeEntry))
	mux.HandleFunc("DELETE /api/time-entries/{id}", s.wrap(s.handleDeleteTimeEntry))

	mux.HandleFunc("GET /api/goals", s.wrap(s.handleListGoals))
	mux.HandleFunc("POST /api/goals", s.wrap(s.handleCreateGoal))
	mux.HandleFunc("PUT /api/goals/{id}", s.wrap(s.handleUpdateGoal))
	mux.HandleFunc("DELETE /api/goals/{id}", s.wrap(s.handleDeleteGoal))
	mux.HandleFunc("GET /api/goals/{id}/contributions", s.wrap(s.handleListContributions))
	mux.HandleFunc("POST /api/goals/{id}/contributions", s.wrap(s.handleAddContribution))

	mux.HandleFunc("POST /api/recurring/incomes", s.wrap(s.handleCreateRecurringIncome))
	mux.HandleFunc("DELETE /api/recurring/incomes/{id}", s.wrap(s.handleDeleteRecurringIncome))
	mux.HandleFunc("POST /api/recurring/expenses", s.wrap(s.handleCreateRecurringExpense))
	mux.HandleFunc("DELETE /api/recurring/expenses/{id}", s.wrap(s.handleDeleteRecurringExpense))

	mux.HandleFunc("GET /api/settings", s.wrap(s.handleGetSettings))
	mux.HandleFunc("PUT /api/settings", s.wrap(s.handleSaveSettings))

	return s
}

// wrap adds request logging, rate limiting on writes and security headers.
func (s *Server) wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := r.Header.Get("X-Forwarded-For")
		if clientIP == "" {
			clientIP = r.Header.Get("X-Real-IP")
		}
		if clientIP == "" {
			clientIP = r.RemoteAddr
		}

		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		slog.InfoContext(ctx, "Request started",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"client_ip", clientIP)

		if r.Method != http.MethodGet && !s.rateLimiter.allow(clientIP) {
			slog.WarnContext(ctx, "Rate limit exceeded", "client_ip", clientIP, "method", r.Method, "url", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		slog.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds())
	}
}

type requestIDKey struct{}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// Shutdown stops the rate limiter cleanup goroutine and then the HTTP
// server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}
