package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spendlens/backend/internal/model"
)

// MemoryStore implements the Store interface with in-memory storage. It backs
// local development and tests.
type MemoryStore struct {
	mu sync.RWMutex

	transactions map[string]*model.Transaction
	templates    map[string]*model.RecurringTemplate
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		transactions: make(map[string]*model.Transaction),
		templates:    make(map[string]*model.RecurringTemplate),
	}
}

// paginateIDs applies cursor-based pagination to a slice of IDs.
// Returns the paginated IDs and the next page token (empty if no more pages).
func paginateIDs(ids []string, pageSize int32, pageToken string) ([]string, string) {
	if pageSize <= 0 {
		pageSize = 100
	}

	sort.Strings(ids)

	startIdx := 0
	if pageToken != "" {
		cursorID, err := DecodePageToken(pageToken)
		if err == nil {
			for i, id := range ids {
				if id > cursorID {
					startIdx = i
					break
				}
				if i == len(ids)-1 {
					return nil, ""
				}
			}
		}
	}

	ids = ids[startIdx:]

	var nextToken string
	if int32(len(ids)) > pageSize {
		nextToken = EncodePageToken(ids[pageSize-1])
		ids = ids[:pageSize]
	}

	return ids, nextToken
}

// Transaction operations

func (m *MemoryStore) CreateTransaction(ctx context.Context, txn *model.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}

	m.transactions[txn.ID] = txn
	return nil
}

func (m *MemoryStore) GetTransaction(ctx context.Context, txnID string) (*model.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	txn, ok := m.transactions[txnID]
	if !ok {
		return nil, fmt.Errorf("transaction not found: %s", txnID)
	}

	return txn, nil
}

func (m *MemoryStore) UpdateTransaction(ctx context.Context, txn *model.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.transactions[txn.ID]; !ok {
		return fmt.Errorf("transaction not found: %s", txn.ID)
	}

	m.transactions[txn.ID] = txn
	return nil
}

func (m *MemoryStore) DeleteTransaction(ctx context.Context, txnID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.transactions[txnID]; !ok {
		return fmt.Errorf("transaction not found: %s", txnID)
	}

	delete(m.transactions, txnID)
	return nil
}

func (m *MemoryStore) ListTransactions(ctx context.Context, userID string, startDate, endDate *time.Time, pageSize int32, pageToken string) ([]*model.Transaction, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// First pass: collect matching IDs
	var matchingIDs []string
	for id, txn := range m.transactions {
		if userID != "" && txn.UserID != userID {
			continue
		}
		if startDate != nil && txn.Date.Before(*startDate) {
			continue
		}
		if endDate != nil && txn.Date.After(*endDate) {
			continue
		}
		matchingIDs = append(matchingIDs, id)
	}

	pageIDs, nextToken := paginateIDs(matchingIDs, pageSize, pageToken)

	txns := make([]*model.Transaction, 0, len(pageIDs))
	for _, id := range pageIDs {
		txns = append(txns, m.transactions[id])
	}

	// Stable date ordering for callers that chart the raw list.
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.Before(txns[j].Date)
	})

	return txns, nextToken, nil
}

// Recurring template operations

func (m *MemoryStore) CreateRecurringTemplate(ctx context.Context, tmpl *model.RecurringTemplate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if tmpl.ID == "" {
		tmpl.ID = uuid.New().String()
	}

	m.templates[tmpl.ID] = tmpl
	return nil
}

func (m *MemoryStore) GetRecurringTemplate(ctx context.Context, tmplID string) (*model.RecurringTemplate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tmpl, ok := m.templates[tmplID]
	if !ok {
		return nil, fmt.Errorf("recurring template not found: %s", tmplID)
	}

	return tmpl, nil
}

func (m *MemoryStore) UpdateRecurringTemplate(ctx context.Context, tmpl *model.RecurringTemplate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.templates[tmpl.ID]; !ok {
		return fmt.Errorf("recurring template not found: %s", tmpl.ID)
	}

	m.templates[tmpl.ID] = tmpl
	return nil
}

func (m *MemoryStore) DeleteRecurringTemplate(ctx context.Context, tmplID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.templates[tmplID]; !ok {
		return fmt.Errorf("recurring template not found: %s", tmplID)
	}

	delete(m.templates, tmplID)
	return nil
}

func (m *MemoryStore) ListRecurringTemplates(ctx context.Context, userID string, activeOnly bool, pageSize int32, pageToken string) ([]*model.RecurringTemplate, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matchingIDs []string
	for id, tmpl := range m.templates {
		if userID != "" && tmpl.UserID != userID {
			continue
		}
		if activeOnly && !tmpl.IsActive {
			continue
		}
		matchingIDs = append(matchingIDs, id)
	}

	pageIDs, nextToken := paginateIDs(matchingIDs, pageSize, pageToken)

	tmpls := make([]*model.RecurringTemplate, 0, len(pageIDs))
	for _, id := range pageIDs {
		tmpls = append(tmpls, m.templates[id])
	}

	return tmpls, nextToken, nil
}
