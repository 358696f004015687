package service

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/spendlens/backend/internal/store"
)

// FinanceService owns the HTTP surface of the tracker: transaction CRUD,
// recurring templates, and the analytics read API layered on the aggregation
// engine.
type FinanceService struct {
	store           store.Store
	defaultCurrency string

	// now supplies the reference instant for period defaulting. Injectable so
	// tests pin the clock; production uses time.Now.
	now func() time.Time
}

// NewFinanceService creates a FinanceService backed by the given store.
func NewFinanceService(st store.Store) *FinanceService {
	defaultCurrency := os.Getenv("DEFAULT_CURRENCY")
	if defaultCurrency == "" {
		defaultCurrency = "USD"
	}
	return &FinanceService{
		store:           st,
		defaultCurrency: defaultCurrency,
		now:             time.Now,
	}
}

// Routes returns the service mux with every endpoint registered.
func (s *FinanceService) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/transactions", s.CreateTransaction)
	mux.HandleFunc("GET /v1/transactions", s.ListTransactions)
	mux.HandleFunc("GET /v1/transactions/{id}", s.GetTransaction)
	mux.HandleFunc("PUT /v1/transactions/{id}", s.UpdateTransaction)
	mux.HandleFunc("DELETE /v1/transactions/{id}", s.DeleteTransaction)

	mux.HandleFunc("POST /v1/recurring", s.CreateRecurringTemplate)
	mux.HandleFunc("GET /v1/recurring", s.ListRecurringTemplates)
	mux.HandleFunc("DELETE /v1/recurring/{id}", s.DeleteRecurringTemplate)
	mux.HandleFunc("POST /v1/recurring/process", s.ProcessRecurring)

	mux.HandleFunc("GET /v1/analytics/breakdown", s.GetCategoryBreakdown)
	mux.HandleFunc("GET /v1/analytics/flow", s.GetFlow)
	mux.HandleFunc("GET /v1/analytics/comparison", s.GetComparison)
	mux.HandleFunc("GET /v1/analytics/insights", s.GetInsights)
	mux.HandleFunc("GET /v1/analytics/heatmap", s.GetHeatmap)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return mux
}

// writeJSON serializes v as the response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// writeError maps an error onto a JSON error body with the given status.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
