package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/backend/internal/model"
)

func newTxn(userID string, amount float64, date time.Time) *model.Transaction {
	return &model.Transaction{
		UserID:   userID,
		Type:     model.TransactionTypeExpense,
		Category: "Food",
		Amount:   amount,
		Currency: "USD",
		Date:     date,
	}
}

func TestMemoryStoreTransactionCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	txn := newTxn("user-1", 42.50, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))

	require.NoError(t, s.CreateTransaction(ctx, txn))
	require.NotEmpty(t, txn.ID, "create assigns an ID")

	got, err := s.GetTransaction(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, 42.50, got.Amount)

	got.Amount = 50
	require.NoError(t, s.UpdateTransaction(ctx, got))

	updated, err := s.GetTransaction(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, 50.0, updated.Amount)

	require.NoError(t, s.DeleteTransaction(ctx, txn.ID))
	_, err = s.GetTransaction(ctx, txn.ID)
	assert.Error(t, err)
}

func TestMemoryStoreListTransactions(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	march := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	april := time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.CreateTransaction(ctx, newTxn("user-1", 10, march)))
	require.NoError(t, s.CreateTransaction(ctx, newTxn("user-1", 20, april)))
	require.NoError(t, s.CreateTransaction(ctx, newTxn("user-2", 30, march)))

	t.Run("filters by user", func(t *testing.T) {
		txns, _, err := s.ListTransactions(ctx, "user-1", nil, nil, 100, "")
		require.NoError(t, err)
		assert.Len(t, txns, 2)
	})

	t.Run("filters by date range", func(t *testing.T) {
		start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC)

		txns, _, err := s.ListTransactions(ctx, "user-1", &start, &end, 100, "")
		require.NoError(t, err)
		require.Len(t, txns, 1)
		assert.Equal(t, 10.0, txns[0].Amount)
	})

	t.Run("paginates with a next token", func(t *testing.T) {
		txns, token, err := s.ListTransactions(ctx, "user-1", nil, nil, 1, "")
		require.NoError(t, err)
		require.Len(t, txns, 1)
		require.NotEmpty(t, token)

		rest, _, err := s.ListTransactions(ctx, "user-1", nil, nil, 1, token)
		require.NoError(t, err)
		require.Len(t, rest, 1)
		assert.NotEqual(t, txns[0].ID, rest[0].ID)
	})
}

func TestMemoryStoreRecurringTemplates(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	tmpl := &model.RecurringTemplate{
		UserID:         "user-1",
		Type:           model.TransactionTypeExpense,
		Category:       "Rent",
		Amount:         800,
		Currency:       "USD",
		Frequency:      model.FrequencyMonthly,
		NextOccurrence: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		IsActive:       true,
	}
	require.NoError(t, s.CreateRecurringTemplate(ctx, tmpl))

	inactive := &model.RecurringTemplate{UserID: "user-1", IsActive: false}
	require.NoError(t, s.CreateRecurringTemplate(ctx, inactive))

	active, _, err := s.ListRecurringTemplates(ctx, "user-1", true, 100, "")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Rent", active[0].Category)

	all, _, err := s.ListRecurringTemplates(ctx, "user-1", false, 100, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPageTokenRoundTrip(t *testing.T) {
	token := EncodePageToken("doc-123")
	require.NotEmpty(t, token)

	id, err := DecodePageToken(token)
	require.NoError(t, err)
	assert.Equal(t, "doc-123", id)

	empty, err := DecodePageToken("")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = DecodePageToken("%%%not-base64%%%")
	assert.Error(t, err)
}
