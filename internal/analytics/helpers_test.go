package analytics

import (
	"time"

	"github.com/spendlens/backend/internal/model"
)

// tx builds a transaction for tests with the fields the engine cares about.
func tx(typ model.TransactionType, category string, amount float64, currency string, date time.Time) model.Transaction {
	return model.Transaction{
		Type:     typ,
		Category: category,
		Amount:   amount,
		Currency: currency,
		Date:     date,
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}
