package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/spendlens/backend/internal/model"
)

const (
	transactionsCollection = "transactions"
	templatesCollection    = "recurringTemplates"
)

// FirestoreStore implements the Store interface using Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) Store {
	return &FirestoreStore{
		client: client,
	}
}

// applyDateAwarePagination handles pagination for queries with date range filters.
// Firestore requires OrderBy on inequality fields first, so we use OrderBy("Date") + OrderBy(__name__).
// The cursor must include both the Date value and the document ID.
func (s *FirestoreStore) applyDateAwarePagination(ctx context.Context, query firestore.Query, collection string, pageSize int32, pageToken string) (firestore.Query, error) {
	query = query.OrderBy("Date", firestore.Asc).OrderBy(firestore.DocumentID, firestore.Asc)

	if pageToken != "" {
		docID, err := DecodePageToken(pageToken)
		if err != nil {
			return query, fmt.Errorf("invalid page token: %w", err)
		}
		// Fetch the cursor document to get its Date value for composite StartAfter
		cursorDoc, err := s.client.Collection(collection).Doc(docID).Get(ctx)
		if err != nil {
			return query, fmt.Errorf("failed to fetch cursor document: %w", err)
		}
		dateVal := cursorDoc.Data()["Date"]
		query = query.StartAfter(dateVal, docID)
	}

	if pageSize <= 0 {
		pageSize = 100
	}
	query = query.Limit(int(pageSize) + 1)
	return query, nil
}

// applyCursorPagination adds OrderBy + StartAfter + Limit to a query for cursor-based pagination.
// It fetches pageSize+1 docs so the caller can detect whether a next page exists.
func (s *FirestoreStore) applyCursorPagination(query firestore.Query, pageSize int32, pageToken string) (firestore.Query, error) {
	query = query.OrderBy(firestore.DocumentID, firestore.Asc)

	if pageToken != "" {
		docID, err := DecodePageToken(pageToken)
		if err != nil {
			return query, fmt.Errorf("invalid page token: %w", err)
		}
		query = query.StartAfter(docID)
	}

	if pageSize <= 0 {
		pageSize = 100
	}
	query = query.Limit(int(pageSize) + 1) // +1 to detect next page
	return query, nil
}

// Transaction operations

func (s *FirestoreStore) CreateTransaction(ctx context.Context, txn *model.Transaction) error {
	_, err := s.client.Collection(transactionsCollection).Doc(txn.ID).Set(ctx, txn)
	return err
}

func (s *FirestoreStore) GetTransaction(ctx context.Context, txnID string) (*model.Transaction, error) {
	doc, err := s.client.Collection(transactionsCollection).Doc(txnID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("transaction not found: %w", err)
	}

	var txn model.Transaction
	if err := doc.DataTo(&txn); err != nil {
		return nil, fmt.Errorf("failed to parse transaction: %w", err)
	}
	return &txn, nil
}

func (s *FirestoreStore) UpdateTransaction(ctx context.Context, txn *model.Transaction) error {
	_, err := s.client.Collection(transactionsCollection).Doc(txn.ID).Set(ctx, txn)
	return err
}

func (s *FirestoreStore) DeleteTransaction(ctx context.Context, txnID string) error {
	_, err := s.client.Collection(transactionsCollection).Doc(txnID).Delete(ctx)
	return err
}

func (s *FirestoreStore) ListTransactions(ctx context.Context, userID string, startDate, endDate *time.Time, pageSize int32, pageToken string) ([]*model.Transaction, string, error) {
	query := s.client.Collection(transactionsCollection).Query

	// NOTE: Field names must match the firestore struct tags (PascalCase).
	if userID != "" {
		query = query.Where("UserId", "==", userID)
	}

	hasDateFilter := startDate != nil || endDate != nil
	if startDate != nil {
		query = query.Where("Date", ">=", *startDate)
	}
	if endDate != nil {
		query = query.Where("Date", "<=", *endDate)
	}

	// When date range filters are present, Firestore requires OrderBy on the
	// range field first; use date-aware pagination to avoid "cannot contain
	// more fields after the key" errors.
	var err error
	if hasDateFilter {
		query, err = s.applyDateAwarePagination(ctx, query, transactionsCollection, pageSize, pageToken)
	} else {
		query, err = s.applyCursorPagination(query, pageSize, pageToken)
	}
	if err != nil {
		return nil, "", err
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, "", fmt.Errorf("failed to list transactions: %w", err)
	}

	if pageSize <= 0 {
		pageSize = 100
	}

	var nextPageToken string
	if len(docs) > int(pageSize) {
		docs = docs[:pageSize]
		nextPageToken = EncodePageToken(docs[pageSize-1].Ref.ID)
	}

	txns := make([]*model.Transaction, 0, len(docs))
	for _, doc := range docs {
		var txn model.Transaction
		if err := doc.DataTo(&txn); err != nil {
			return nil, "", fmt.Errorf("failed to parse transaction: %w", err)
		}
		txns = append(txns, &txn)
	}
	return txns, nextPageToken, nil
}

// Recurring template operations

func (s *FirestoreStore) CreateRecurringTemplate(ctx context.Context, tmpl *model.RecurringTemplate) error {
	_, err := s.client.Collection(templatesCollection).Doc(tmpl.ID).Set(ctx, tmpl)
	return err
}

func (s *FirestoreStore) GetRecurringTemplate(ctx context.Context, tmplID string) (*model.RecurringTemplate, error) {
	doc, err := s.client.Collection(templatesCollection).Doc(tmplID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("recurring template not found: %w", err)
	}

	var tmpl model.RecurringTemplate
	if err := doc.DataTo(&tmpl); err != nil {
		return nil, fmt.Errorf("failed to parse recurring template: %w", err)
	}
	return &tmpl, nil
}

func (s *FirestoreStore) UpdateRecurringTemplate(ctx context.Context, tmpl *model.RecurringTemplate) error {
	_, err := s.client.Collection(templatesCollection).Doc(tmpl.ID).Set(ctx, tmpl)
	return err
}

func (s *FirestoreStore) DeleteRecurringTemplate(ctx context.Context, tmplID string) error {
	_, err := s.client.Collection(templatesCollection).Doc(tmplID).Delete(ctx)
	return err
}

func (s *FirestoreStore) ListRecurringTemplates(ctx context.Context, userID string, activeOnly bool, pageSize int32, pageToken string) ([]*model.RecurringTemplate, string, error) {
	query := s.client.Collection(templatesCollection).Query

	if userID != "" {
		query = query.Where("UserId", "==", userID)
	}
	if activeOnly {
		query = query.Where("IsActive", "==", true)
	}

	query, err := s.applyCursorPagination(query, pageSize, pageToken)
	if err != nil {
		return nil, "", err
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, "", fmt.Errorf("failed to list recurring templates: %w", err)
	}

	if pageSize <= 0 {
		pageSize = 100
	}

	var nextPageToken string
	if len(docs) > int(pageSize) {
		docs = docs[:pageSize]
		nextPageToken = EncodePageToken(docs[pageSize-1].Ref.ID)
	}

	tmpls := make([]*model.RecurringTemplate, 0, len(docs))
	for _, doc := range docs {
		var tmpl model.RecurringTemplate
		if err := doc.DataTo(&tmpl); err != nil {
			return nil, "", fmt.Errorf("failed to parse recurring template: %w", err)
		}
		tmpls = append(tmpls, &tmpl)
	}
	return tmpls, nextPageToken, nil
}
