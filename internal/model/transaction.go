package model

import "time"

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Transaction is a single income or expense record. Amounts are stored both as
// a float for display math and as integer cents for exact persistence, matching
// the storage convention used throughout the backend.
type Transaction struct {
	ID          string          `json:"id" firestore:"Id"`
	UserID      string          `json:"userId" firestore:"UserId"`
	Type        TransactionType `json:"type" firestore:"Type"`
	Category    string          `json:"category" firestore:"Category"`
	Description string          `json:"description,omitempty" firestore:"Description"`
	Amount      float64         `json:"amount" firestore:"Amount"`
	AmountCents int64           `json:"amountCents" firestore:"AmountCents"`
	Currency    string          `json:"currency" firestore:"Currency"`
	Date        time.Time       `json:"date" firestore:"Date"`
	IsRecurring bool            `json:"isRecurring" firestore:"IsRecurring"`
	TemplateID  string          `json:"templateId,omitempty" firestore:"TemplateId"`
	CreatedAt   time.Time       `json:"createdAt" firestore:"CreatedAt"`
	UpdatedAt   time.Time       `json:"updatedAt" firestore:"UpdatedAt"`
}

// RecurringFrequency is how often a recurring template materializes a transaction.
type RecurringFrequency string

const (
	FrequencyWeekly    RecurringFrequency = "WEEKLY"
	FrequencyMonthly   RecurringFrequency = "MONTHLY"
	FrequencyQuarterly RecurringFrequency = "QUARTERLY"
	FrequencyYearly    RecurringFrequency = "YEARLY"
)

// NextAfter returns the occurrence that follows t for this frequency.
// Unknown frequencies jump far ahead so projection loops terminate.
func (f RecurringFrequency) NextAfter(t time.Time) time.Time {
	switch f {
	case FrequencyWeekly:
		return t.AddDate(0, 0, 7)
	case FrequencyMonthly:
		return t.AddDate(0, 1, 0)
	case FrequencyQuarterly:
		return t.AddDate(0, 3, 0)
	case FrequencyYearly:
		return t.AddDate(1, 0, 0)
	default:
		return t.AddDate(100, 0, 0)
	}
}

// RecurringTemplate describes a bill or salary that repeats on a schedule.
// The recurring processor materializes concrete transactions from it.
type RecurringTemplate struct {
	ID             string             `json:"id" firestore:"Id"`
	UserID         string             `json:"userId" firestore:"UserId"`
	Type           TransactionType    `json:"type" firestore:"Type"`
	Category       string             `json:"category" firestore:"Category"`
	Description    string             `json:"description,omitempty" firestore:"Description"`
	Amount         float64            `json:"amount" firestore:"Amount"`
	AmountCents    int64              `json:"amountCents" firestore:"AmountCents"`
	Currency       string             `json:"currency" firestore:"Currency"`
	Frequency      RecurringFrequency `json:"frequency" firestore:"Frequency"`
	StartDate      time.Time          `json:"startDate" firestore:"StartDate"`
	NextOccurrence time.Time          `json:"nextOccurrence" firestore:"NextOccurrence"`
	IsActive       bool               `json:"isActive" firestore:"IsActive"`
	CreatedAt      time.Time          `json:"createdAt" firestore:"CreatedAt"`
	UpdatedAt      time.Time          `json:"updatedAt" firestore:"UpdatedAt"`
}
