package service

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/spendlens/backend/internal/auth"
	"github.com/spendlens/backend/internal/model"
)

// transactionRequest is the mutable subset of a transaction accepted from clients.
type transactionRequest struct {
	Type        model.TransactionType `json:"type"`
	Category    string                `json:"category"`
	Description string                `json:"description"`
	Amount      float64               `json:"amount"`
	Currency    string                `json:"currency"`
	Date        string                `json:"date"`
	IsRecurring bool                  `json:"isRecurring"`
	TemplateID  string                `json:"templateId"`
}

func (r *transactionRequest) validate() (time.Time, string) {
	if r.Type != model.TransactionTypeIncome && r.Type != model.TransactionTypeExpense {
		return time.Time{}, "type must be INCOME or EXPENSE"
	}
	if r.Amount < 0 {
		return time.Time{}, "amount must be non-negative"
	}
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return time.Time{}, "date must be formatted YYYY-MM-DD"
	}
	return date, ""
}

// CreateTransaction records a new transaction for the authenticated user.
func (s *FinanceService) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.RequireAuth(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	date, problem := req.validate()
	if problem != "" {
		writeError(w, http.StatusBadRequest, problem)
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}

	now := s.now()
	txn := &model.Transaction{
		ID:          uuid.New().String(),
		UserID:      claims.UID,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		AmountCents: int64(req.Amount * 100),
		Currency:    currency,
		Date:        date,
		IsRecurring: req.IsRecurring,
		TemplateID:  req.TemplateID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.CreateTransaction(r.Context(), txn); err != nil {
		log.Error().Err(err).Str("user", claims.UID).Msg("failed to create transaction")
		writeError(w, http.StatusInternalServerError, "failed to create transaction")
		return
	}

	writeJSON(w, http.StatusCreated, txn)
}

// ListTransactions lists the authenticated user's transactions, optionally
// bounded by a date range.
func (s *FinanceService) ListTransactions(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.RequireAuth(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	q := r.URL.Query()
	var startDate, endDate *time.Time
	if v := q.Get("startDate"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "startDate must be formatted YYYY-MM-DD")
			return
		}
		startDate = &t
	}
	if v := q.Get("endDate"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "endDate must be formatted YYYY-MM-DD")
			return
		}
		end := t.Add(24*time.Hour - time.Second)
		endDate = &end
	}

	pageSize := int32(100)
	if v := q.Get("pageSize"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			pageSize = int32(n)
		}
	}

	txns, nextToken, err := s.store.ListTransactions(r.Context(), claims.UID, startDate, endDate, pageSize, q.Get("pageToken"))
	if err != nil {
		log.Error().Err(err).Str("user", claims.UID).Msg("failed to list transactions")
		writeError(w, http.StatusInternalServerError, "failed to list transactions")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"transactions":  txns,
		"nextPageToken": nextToken,
	})
}

// GetTransaction fetches one transaction owned by the authenticated user.
func (s *FinanceService) GetTransaction(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.RequireAuth(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	txn, err := s.store.GetTransaction(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "transaction not found")
		return
	}
	if txn.UserID != claims.UID {
		writeError(w, http.StatusForbidden, "cannot access another user's resources")
		return
	}

	writeJSON(w, http.StatusOK, txn)
}

// UpdateTransaction replaces the mutable fields of an existing transaction.
func (s *FinanceService) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.RequireAuth(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	existing, err := s.store.GetTransaction(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "transaction not found")
		return
	}
	if existing.UserID != claims.UID {
		writeError(w, http.StatusForbidden, "cannot access another user's resources")
		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	date, problem := req.validate()
	if problem != "" {
		writeError(w, http.StatusBadRequest, problem)
		return
	}

	existing.Type = req.Type
	existing.Category = req.Category
	existing.Description = req.Description
	existing.Amount = req.Amount
	existing.AmountCents = int64(req.Amount * 100)
	if req.Currency != "" {
		existing.Currency = req.Currency
	}
	existing.Date = date
	existing.IsRecurring = req.IsRecurring
	existing.UpdatedAt = s.now()

	if err := s.store.UpdateTransaction(r.Context(), existing); err != nil {
		log.Error().Err(err).Str("user", claims.UID).Msg("failed to update transaction")
		writeError(w, http.StatusInternalServerError, "failed to update transaction")
		return
	}

	writeJSON(w, http.StatusOK, existing)
}

// DeleteTransaction removes a transaction owned by the authenticated user.
func (s *FinanceService) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.RequireAuth(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	existing, err := s.store.GetTransaction(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "transaction not found")
		return
	}
	if existing.UserID != claims.UID {
		writeError(w, http.StatusForbidden, "cannot access another user's resources")
		return
	}

	if err := s.store.DeleteTransaction(r.Context(), existing.ID); err != nil {
		log.Error().Err(err).Str("user", claims.UID).Msg("failed to delete transaction")
		writeError(w, http.StatusInternalServerError, "failed to delete transaction")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
