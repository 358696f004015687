package service

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/spendlens/backend/internal/analytics"
	"github.com/spendlens/backend/internal/auth"
	"github.com/spendlens/backend/internal/model"
)

// The analytics handlers share one shape: resolve the period selection, fetch
// the user's transactions for the widest range involved, sanitize once at the
// boundary, partition by currency, and run the pure engine per currency.
// Amounts are never summed across currencies.

// fetchTransactions pages through the store until the window is exhausted.
func (s *FinanceService) fetchTransactions(ctx context.Context, userID string, start, end time.Time) ([]model.Transaction, error) {
	var out []model.Transaction
	pageToken := ""
	for {
		page, next, err := s.store.ListTransactions(ctx, userID, &start, &end, 1000, pageToken)
		if err != nil {
			return nil, err
		}
		for _, t := range page {
			out = append(out, *t)
		}
		if next == "" {
			return out, nil
		}
		pageToken = next
	}
}

// resolveSelection reads the period/subPeriod query parameters. An unknown
// period falls back to MONTHLY; sub-period fallback happens inside the
// resolver itself.
func (s *FinanceService) resolveSelection(r *http.Request) model.Resolution {
	q := r.URL.Query()
	period := model.Period(strings.ToUpper(q.Get("period")))
	if !period.Valid() {
		period = model.PeriodMonthly
	}
	return analytics.ResolveRange(period, q.Get("subPeriod"), s.now())
}

// breakdownScope maps the scope query parameter onto a category filter.
func breakdownScope(scope string) analytics.Filter {
	switch scope {
	case "bills":
		return analytics.FilterBills
	case "general":
		return analytics.FilterGeneral
	default:
		return analytics.FilterAll
	}
}

// expensesOnly narrows a transaction set to expenses for breakdown charts.
func expensesOnly(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if t.Type == model.TransactionTypeExpense {
			out = append(out, t)
		}
	}
	return out
}

// CategoryBreakdownResult is the per-currency payload of the breakdown endpoint.
type CategoryBreakdownResult struct {
	Entries       []model.CategoryBreakdownEntry `json:"entries"`
	TopCategories []model.CategoryBreakdownEntry `json:"topCategories"`
}

// GetCategoryBreakdown returns per-currency expense distributions for the
// selected period. The scope parameter splits recurring bills from general
// spending.
func (s *FinanceService) GetCategoryBreakdown(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.RequireAuth(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	res := s.resolveSelection(r)
	txns, err := s.fetchTransactions(r.Context(), claims.UID, res.Current.Start, res.Current.End)
	if err != nil {
		log.Error().Err(err).Str("user", claims.UID).Msg("failed to fetch transactions")
		writeError(w, http.StatusInternalServerError, "failed to fetch transactions")
		return
	}

	filter := breakdownScope(r.URL.Query().Get("scope"))
	currencies := make(map[string]CategoryBreakdownResult)
	for _, group := range analytics.PartitionByCurrency(analytics.Sanitize(expensesOnly(txns), s.defaultCurrency)) {
		entries := analytics.Breakdown(group.Transactions, res.Current, filter)
		currencies[group.Currency] = CategoryBreakdownResult{
			Entries:       entries,
			TopCategories: analytics.TopCategories(entries, 3),
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"resolution": res,
		"currencies": currencies,
	})
}

// FlowResult is the per-currency payload of the flow endpoint.
type FlowResult struct {
	Buckets      []model.FlowBucket   `json:"buckets"`
	Savings      []model.SavingsPoint `json:"savings"`
	TotalIncome  float64              `json:"totalIncome"`
	TotalExpense float64              `json:"totalExpense"`
	Net          float64              `json:"net"`
}

// GetFlow returns the per-currency income/expense series and derived savings
// trend for the selected period.
func (s *FinanceService) GetFlow(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.RequireAuth(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	res := s.resolveSelection(r)
	txns, err := s.fetchTransactions(r.Context(), claims.UID, res.Current.Start, res.Current.End)
	if err != nil {
		log.Error().Err(err).Str("user", claims.UID).Msg("failed to fetch transactions")
		writeError(w, http.StatusInternalServerError, "failed to fetch transactions")
		return
	}

	currencies := make(map[string]FlowResult)
	for _, group := range analytics.PartitionByCurrency(analytics.Sanitize(txns, s.defaultCurrency)) {
		buckets := analytics.Flow(group.Transactions, res.Current, res.BucketUnit)

		var income, expense float64
		for _, b := range buckets {
			income += b.Income
			expense += b.Expense
		}

		currencies[group.Currency] = FlowResult{
			Buckets:      buckets,
			Savings:      analytics.SavingsSeries(buckets),
			TotalIncome:  income,
			TotalExpense: expense,
			Net:          income - expense,
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"resolution": res,
		"currencies": currencies,
	})
}

// ComparisonResult is the per-currency payload of the comparison endpoint.
// ChangePercent is the raw unclamped value; ChangeDisplay is capped for UI.
type ComparisonResult struct {
	Entries       []model.ComparisonEntry `json:"entries"`
	ChangePercent float64                 `json:"changePercent"`
	ChangeDisplay string                  `json:"changeDisplay"`
}

// GetComparison returns current-vs-previous series aligned by bucket position.
func (s *FinanceService) GetComparison(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.RequireAuth(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	metric := analytics.Metric(r.URL.Query().Get("metric"))
	switch metric {
	case analytics.MetricNet, analytics.MetricExpense, analytics.MetricIncome:
	case "":
		metric = analytics.MetricNet
	default:
		writeError(w, http.StatusBadRequest, "metric must be net, expense or income")
		return
	}

	res := s.resolveSelection(r)
	// One fetch covers both ranges; previous always precedes current.
	txns, err := s.fetchTransactions(r.Context(), claims.UID, res.Previous.Start, res.Current.End)
	if err != nil {
		log.Error().Err(err).Str("user", claims.UID).Msg("failed to fetch transactions")
		writeError(w, http.StatusInternalServerError, "failed to fetch transactions")
		return
	}

	currencies := make(map[string]ComparisonResult)
	for _, group := range analytics.PartitionByCurrency(analytics.Sanitize(txns, s.defaultCurrency)) {
		current := analytics.Flow(group.Transactions, res.Current, res.BucketUnit)
		previous := analytics.Flow(group.Transactions, res.Previous, res.BucketUnit)

		change := analytics.TotalChange(current, previous, metric)
		currencies[group.Currency] = ComparisonResult{
			Entries:       analytics.Compare(current, previous, metric),
			ChangePercent: change,
			ChangeDisplay: analytics.FormatPercentChange(change),
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"resolution": res,
		"metric":     metric,
		"currencies": currencies,
	})
}

// GetInsights returns per-currency insight statements for the selected period.
func (s *FinanceService) GetInsights(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.RequireAuth(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	kind := analytics.InsightKind(r.URL.Query().Get("kind"))
	if kind != analytics.InsightExpense {
		kind = analytics.InsightSavings
	}

	res := s.resolveSelection(r)
	txns, err := s.fetchTransactions(r.Context(), claims.UID, res.Current.Start, res.Current.End)
	if err != nil {
		log.Error().Err(err).Str("user", claims.UID).Msg("failed to fetch transactions")
		writeError(w, http.StatusInternalServerError, "failed to fetch transactions")
		return
	}

	currencies := make(map[string][]string)
	for _, group := range analytics.PartitionByCurrency(analytics.Sanitize(txns, s.defaultCurrency)) {
		buckets := analytics.Flow(group.Transactions, res.Current, res.BucketUnit)
		currencies[group.Currency] = analytics.Insights(analytics.SavingsSeries(buckets), kind)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"resolution": res,
		"kind":       kind,
		"currencies": currencies,
	})
}

// HeatmapResult is the per-currency payload of the heatmap endpoint. MaxCount
// is the intensity denominator the UI feeds into its color scale.
type HeatmapResult struct {
	Cells    []model.HeatmapCell `json:"cells"`
	MaxCount int                 `json:"maxCount"`
}

// GetHeatmap returns per-currency daily expense activity for a calendar year.
func (s *FinanceService) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.RequireAuth(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	year := s.now().Year()
	if v := r.URL.Query().Get("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "year must be a 4-digit year")
			return
		}
		year = n
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
	txns, err := s.fetchTransactions(r.Context(), claims.UID, start, end)
	if err != nil {
		log.Error().Err(err).Str("user", claims.UID).Msg("failed to fetch transactions")
		writeError(w, http.StatusInternalServerError, "failed to fetch transactions")
		return
	}

	currencies := make(map[string]HeatmapResult)
	for _, group := range analytics.PartitionByCurrency(analytics.Sanitize(txns, s.defaultCurrency)) {
		cells := analytics.Heatmap(group.Transactions, year)
		if len(cells) == 0 {
			continue
		}
		currencies[group.Currency] = HeatmapResult{
			Cells:    cells,
			MaxCount: analytics.MaxCount(cells),
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"year":       year,
		"currencies": currencies,
	})
}
