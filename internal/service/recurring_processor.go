package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/spendlens/backend/internal/auth"
	"github.com/spendlens/backend/internal/model"
)

// recurringTemplateRequest is the client-facing shape for creating a template.
type recurringTemplateRequest struct {
	Type        model.TransactionType    `json:"type"`
	Category    string                   `json:"category"`
	Description string                   `json:"description"`
	Amount      float64                  `json:"amount"`
	Currency    string                   `json:"currency"`
	Frequency   model.RecurringFrequency `json:"frequency"`
	StartDate   string                   `json:"startDate"`
}

func (r *recurringTemplateRequest) validate() (time.Time, string) {
	if r.Type != model.TransactionTypeIncome && r.Type != model.TransactionTypeExpense {
		return time.Time{}, "type must be INCOME or EXPENSE"
	}
	if r.Amount < 0 {
		return time.Time{}, "amount must be non-negative"
	}
	switch r.Frequency {
	case model.FrequencyWeekly, model.FrequencyMonthly, model.FrequencyQuarterly, model.FrequencyYearly:
	default:
		return time.Time{}, "frequency must be WEEKLY, MONTHLY, QUARTERLY or YEARLY"
	}
	start, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return time.Time{}, "startDate must be formatted YYYY-MM-DD"
	}
	return start, ""
}

// CreateRecurringTemplate registers a repeating bill or income for the
// authenticated user. The first occurrence is the start date itself.
func (s *FinanceService) CreateRecurringTemplate(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.RequireAuth(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req recurringTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	start, problem := req.validate()
	if problem != "" {
		writeError(w, http.StatusBadRequest, problem)
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}

	now := s.now()
	tmpl := &model.RecurringTemplate{
		ID:             uuid.New().String(),
		UserID:         claims.UID,
		Type:           req.Type,
		Category:       req.Category,
		Description:    req.Description,
		Amount:         req.Amount,
		AmountCents:    int64(req.Amount * 100),
		Currency:       currency,
		Frequency:      req.Frequency,
		StartDate:      start,
		NextOccurrence: start,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.store.CreateRecurringTemplate(r.Context(), tmpl); err != nil {
		log.Error().Err(err).Str("user", claims.UID).Msg("failed to create recurring template")
		writeError(w, http.StatusInternalServerError, "failed to create recurring template")
		return
	}

	writeJSON(w, http.StatusCreated, tmpl)
}

// ListRecurringTemplates lists the authenticated user's templates. Pass
// activeOnly=true to hide deactivated ones.
func (s *FinanceService) ListRecurringTemplates(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.RequireAuth(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	q := r.URL.Query()
	activeOnly := q.Get("activeOnly") == "true"

	tmpls, nextToken, err := s.store.ListRecurringTemplates(r.Context(), claims.UID, activeOnly, 100, q.Get("pageToken"))
	if err != nil {
		log.Error().Err(err).Str("user", claims.UID).Msg("failed to list recurring templates")
		writeError(w, http.StatusInternalServerError, "failed to list recurring templates")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"templates":     tmpls,
		"nextPageToken": nextToken,
	})
}

// DeleteRecurringTemplate deactivates a template rather than erasing it, so
// already-materialized transactions keep a valid template reference.
func (s *FinanceService) DeleteRecurringTemplate(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.RequireAuth(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	tmpl, err := s.store.GetRecurringTemplate(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "recurring template not found")
		return
	}
	if tmpl.UserID != claims.UID {
		writeError(w, http.StatusForbidden, "cannot access another user's resources")
		return
	}

	tmpl.IsActive = false
	tmpl.UpdatedAt = s.now()
	if err := s.store.UpdateRecurringTemplate(r.Context(), tmpl); err != nil {
		log.Error().Err(err).Str("user", claims.UID).Msg("failed to deactivate recurring template")
		writeError(w, http.StatusInternalServerError, "failed to deactivate recurring template")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ProcessRecurring materializes every due occurrence for the caller's active
// templates. Intended to be hit by a scheduler; idempotent for a given instant
// because each run advances NextOccurrence past it.
func (s *FinanceService) ProcessRecurring(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.RequireAuth(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	processed, skipped, errored := s.ProcessDueTemplates(r.Context(), claims.UID, s.now())

	log.Info().
		Str("user", claims.UID).
		Int("processed", processed).
		Int("skipped", skipped).
		Int("errors", errored).
		Msg("recurring processing completed")

	writeJSON(w, http.StatusOK, map[string]int{
		"processedCount": processed,
		"skippedCount":   skipped,
		"errorCount":     errored,
	})
}

// ProcessDueTemplates walks the user's active templates and creates one
// transaction per due occurrence up to now. Returns processed, skipped and
// error counts.
func (s *FinanceService) ProcessDueTemplates(ctx context.Context, userID string, now time.Time) (processed, skipped, errored int) {
	pageToken := ""
	for {
		tmpls, nextToken, err := s.store.ListRecurringTemplates(ctx, userID, true, 1000, pageToken)
		if err != nil {
			log.Error().Err(err).Str("user", userID).Msg("failed to list recurring templates")
			errored++
			return
		}

		for _, tmpl := range tmpls {
			n, err := s.processOneTemplate(ctx, tmpl, now)
			if err != nil {
				log.Error().Err(err).Str("template", tmpl.ID).Msg("failed to process recurring template")
				errored++
				continue
			}
			if n > 0 {
				processed += n
			} else {
				skipped++
			}
		}

		if nextToken == "" {
			return
		}
		pageToken = nextToken
	}
}

// processOneTemplate materializes every occurrence of tmpl that is due at now
// and advances NextOccurrence past it. Returns how many transactions were
// created.
func (s *FinanceService) processOneTemplate(ctx context.Context, tmpl *model.RecurringTemplate, now time.Time) (int, error) {
	created := 0
	next := tmpl.NextOccurrence

	// A template that fell behind (server downtime, long gaps between runs)
	// catches up by materializing each missed occurrence.
	for !next.After(now) {
		txn := &model.Transaction{
			ID:          uuid.New().String(),
			UserID:      tmpl.UserID,
			Type:        tmpl.Type,
			Category:    tmpl.Category,
			Description: tmpl.Description,
			Amount:      tmpl.Amount,
			AmountCents: tmpl.AmountCents,
			Currency:    tmpl.Currency,
			Date:        next,
			IsRecurring: true,
			TemplateID:  tmpl.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.store.CreateTransaction(ctx, txn); err != nil {
			return created, fmt.Errorf("failed to create transaction from template %s: %w", tmpl.ID, err)
		}
		created++
		next = tmpl.Frequency.NextAfter(next)
	}

	if created == 0 {
		return 0, nil
	}

	tmpl.NextOccurrence = next
	tmpl.UpdatedAt = now
	if err := s.store.UpdateRecurringTemplate(ctx, tmpl); err != nil {
		return created, fmt.Errorf("failed to advance template %s: %w", tmpl.ID, err)
	}
	return created, nil
}
