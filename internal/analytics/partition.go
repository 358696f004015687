package analytics

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/spendlens/backend/internal/model"
)

var titleCaser = cases.Title(language.English)

// Sanitize is the single normalization boundary at the engine's input edge.
// Every transaction leaving it carries a non-empty upper-case currency code
// and a tidy category label, so no aggregator re-derives fallbacks. Currency
// defaulting happens here and only here.
func Sanitize(txns []model.Transaction, defaultCurrency string) []model.Transaction {
	defaultCurrency = normalizeCurrency(defaultCurrency)
	if defaultCurrency == "" {
		defaultCurrency = "USD"
	}

	out := make([]model.Transaction, len(txns))
	for i, t := range txns {
		if code := normalizeCurrency(t.Currency); code != "" {
			t.Currency = code
		} else {
			t.Currency = defaultCurrency
		}
		t.Category = normalizeCategory(t.Category)
		out[i] = t
	}
	return out
}

// normalizeCurrency upper-cases a currency code, preferring the canonical ISO
// 4217 form when the code parses as one.
func normalizeCurrency(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	if unit, err := currency.ParseISO(code); err == nil {
		return unit.String()
	}
	return code
}

// normalizeCategory trims and title-cases a category label so "food" and
// "Food" aggregate into the same breakdown entry.
func normalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return "Uncategorized"
	}
	return titleCaser.String(strings.ToLower(category))
}

// CurrencyGroup is the per-currency slice of a partitioned transaction set.
type CurrencyGroup struct {
	Currency     string
	Transactions []model.Transaction
}

// PartitionByCurrency splits a transaction set into disjoint per-currency
// groups. Relative order is preserved inside each group and the groups are
// sorted lexicographically by code so downstream iteration is deterministic.
// Currencies are discovered from the input; there is no allow-list.
func PartitionByCurrency(txns []model.Transaction) []CurrencyGroup {
	byCode := make(map[string][]model.Transaction)
	var codes []string
	for _, t := range txns {
		if _, seen := byCode[t.Currency]; !seen {
			codes = append(codes, t.Currency)
		}
		byCode[t.Currency] = append(byCode[t.Currency], t)
	}
	sort.Strings(codes)

	groups := make([]CurrencyGroup, 0, len(codes))
	for _, code := range codes {
		groups = append(groups, CurrencyGroup{Currency: code, Transactions: byCode[code]})
	}
	return groups
}
