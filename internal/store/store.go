package store

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/spendlens/backend/internal/model"
)

//go:generate mockgen -source=store.go -destination=store_mock.go -package=store

// Store defines the persistence operations the service layer depends on. The
// analytics engine never talks to a Store directly; it receives transaction
// snapshots the service fetched through this interface.
type Store interface {
	// Transaction operations
	CreateTransaction(ctx context.Context, txn *model.Transaction) error
	GetTransaction(ctx context.Context, txnID string) (*model.Transaction, error)
	UpdateTransaction(ctx context.Context, txn *model.Transaction) error
	DeleteTransaction(ctx context.Context, txnID string) error
	ListTransactions(ctx context.Context, userID string, startDate, endDate *time.Time, pageSize int32, pageToken string) ([]*model.Transaction, string, error)

	// Recurring template operations
	CreateRecurringTemplate(ctx context.Context, tmpl *model.RecurringTemplate) error
	GetRecurringTemplate(ctx context.Context, tmplID string) (*model.RecurringTemplate, error)
	UpdateRecurringTemplate(ctx context.Context, tmpl *model.RecurringTemplate) error
	DeleteRecurringTemplate(ctx context.Context, tmplID string) error
	ListRecurringTemplates(ctx context.Context, userID string, activeOnly bool, pageSize int32, pageToken string) ([]*model.RecurringTemplate, string, error)
}

// EncodePageToken encodes a document ID into a page token.
func EncodePageToken(docID string) string {
	if docID == "" {
		return ""
	}
	return base64.URLEncoding.EncodeToString([]byte(docID))
}

// DecodePageToken decodes a page token back to a document ID.
func DecodePageToken(token string) (string, error) {
	if token == "" {
		return "", nil
	}
	b, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
