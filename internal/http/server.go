package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"finman/internal/log"
	"finman/internal/middleware/trace"
	"finman/internal/services"
)

// Server serves the JSON API. The ledger and goal tracker do no locking of
// their own, so every handler holds mu while it calls into them.
type Server struct {
	http.Server

	mu      sync.Mutex
	tx      *services.TransactionService
	reports *services.ReportService
	goals   *services.GoalTracker
	trace   *trace.Middleware

	shutdownOnce sync.Once
}

// NewServer configures routes, returning a ready-to-run server. Request
// logs go through logger, or are discarded when it is nil.
func NewServer(addr string, logger *log.Logger, tx *services.TransactionService, reports *services.ReportService, goals *services.GoalTracker) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:           addr,
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: 1 << 16,
		},
		tx:      tx,
		reports: reports,
		goals:   goals,
		trace:   trace.NewMiddleware(trace.ClientIP),
	}

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/transactions", s.handleTransactions)
	mux.HandleFunc("/reports/yearly", s.handleYearlyReport)
	mux.HandleFunc("/reports/monthly", s.handleMonthlyReport)
	mux.HandleFunc("/goals", s.handleGoals)

	if logger == nil {
		logger = log.Discard()
	}
	s.Handler = log.Middleware(logger)(s.trace.Middleware(mux))
	return s
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		err = s.Server.Shutdown(ctx)
	})
	return err
}

// Metrics returns the request counters of the trace middleware.
func (s *Server) Metrics() trace.Metrics {
	return s.trace.GetMetrics()
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
