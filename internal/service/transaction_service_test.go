package service

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spendlens/backend/internal/model"
	"github.com/spendlens/backend/internal/store"
)

func TestCreateTransaction(t *testing.T) {
	svc := newTestService(store.NewMemoryStore())

	t.Run("successful creation", func(t *testing.T) {
		body := `{"type":"EXPENSE","category":"Food","amount":25.50,"date":"2024-06-10"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/transactions", strings.NewReader(body))
		rec := doRequest(svc, "user-1", req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var txn model.Transaction
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &txn))
		assert.NotEmpty(t, txn.ID)
		assert.Equal(t, "user-1", txn.UserID)
		assert.Equal(t, model.TransactionTypeExpense, txn.Type)
		assert.Equal(t, 25.50, txn.Amount)
		assert.Equal(t, int64(2550), txn.AmountCents)
		assert.Equal(t, "USD", txn.Currency, "blank currency takes the service default")
	})

	t.Run("explicit currency preserved", func(t *testing.T) {
		body := `{"type":"INCOME","category":"Salary","amount":3000,"currency":"EUR","date":"2024-06-01"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/transactions", strings.NewReader(body))
		rec := doRequest(svc, "user-1", req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var txn model.Transaction
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &txn))
		assert.Equal(t, "EUR", txn.Currency)
	})

	t.Run("invalid type rejected", func(t *testing.T) {
		body := `{"type":"TRANSFER","category":"Food","amount":10,"date":"2024-06-10"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/transactions", strings.NewReader(body))
		rec := doRequest(svc, "user-1", req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		body := `{"type":"EXPENSE","category":"Food","amount":-5,"date":"2024-06-10"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/transactions", strings.NewReader(body))
		rec := doRequest(svc, "user-1", req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		body := `{"type":"EXPENSE","category":"Food","amount":5,"date":"10/06/2024"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/transactions", strings.NewReader(body))
		rec := doRequest(svc, "user-1", req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unauthenticated rejected", func(t *testing.T) {
		body := `{"type":"EXPENSE","category":"Food","amount":5,"date":"2024-06-10"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/transactions", strings.NewReader(body))
		rec := httptest.NewRecorder()
		svc.Routes().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("store failure surfaces as 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := store.NewMockStore(ctrl)
		mockStore.EXPECT().
			CreateTransaction(gomock.Any(), gomock.Any()).
			Return(errors.New("firestore unavailable"))

		failing := newTestService(mockStore)
		body := `{"type":"EXPENSE","category":"Food","amount":5,"date":"2024-06-10"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/transactions", strings.NewReader(body))
		rec := doRequest(failing, "user-1", req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func seedTransaction(t *testing.T, svc *FinanceService, userID, body string) model.Transaction {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/transactions", strings.NewReader(body))
	rec := doRequest(svc, userID, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var txn model.Transaction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &txn))
	return txn
}

func TestListTransactions(t *testing.T) {
	svc := newTestService(store.NewMemoryStore())
	seedTransaction(t, svc, "user-1", `{"type":"EXPENSE","category":"Food","amount":10,"date":"2024-06-05"}`)
	seedTransaction(t, svc, "user-1", `{"type":"EXPENSE","category":"Rent","amount":900,"date":"2024-05-01"}`)
	seedTransaction(t, svc, "user-2", `{"type":"EXPENSE","category":"Food","amount":99,"date":"2024-06-05"}`)

	listFor := func(userID, query string) []model.Transaction {
		req := httptest.NewRequest(http.MethodGet, "/v1/transactions"+query, nil)
		rec := doRequest(svc, userID, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Transactions []model.Transaction `json:"transactions"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp.Transactions
	}

	t.Run("scoped to the caller", func(t *testing.T) {
		assert.Len(t, listFor("user-1", ""), 2)
		assert.Len(t, listFor("user-2", ""), 1)
	})

	t.Run("date range filters", func(t *testing.T) {
		txns := listFor("user-1", "?startDate=2024-06-01&endDate=2024-06-30")
		require.Len(t, txns, 1)
		assert.Equal(t, "Food", txns[0].Category)
	})

	t.Run("bad date rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/transactions?startDate=June", nil)
		rec := doRequest(svc, "user-1", req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTransactionOwnership(t *testing.T) {
	svc := newTestService(store.NewMemoryStore())
	txn := seedTransaction(t, svc, "user-1", `{"type":"EXPENSE","category":"Food","amount":10,"date":"2024-06-05"}`)

	t.Run("get by owner", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/transactions/"+txn.ID, nil)
		rec := doRequest(svc, "user-1", req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("get by stranger forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/transactions/"+txn.ID, nil)
		rec := doRequest(svc, "user-2", req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("get missing is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/transactions/no-such-id", nil)
		rec := doRequest(svc, "user-1", req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("update by owner", func(t *testing.T) {
		body := `{"type":"EXPENSE","category":"Groceries","amount":12.25,"date":"2024-06-06"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/transactions/"+txn.ID, strings.NewReader(body))
		rec := doRequest(svc, "user-1", req)
		require.Equal(t, http.StatusOK, rec.Code)

		var updated model.Transaction
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, "Groceries", updated.Category)
		assert.Equal(t, int64(1225), updated.AmountCents)
	})

	t.Run("update by stranger forbidden", func(t *testing.T) {
		body := `{"type":"EXPENSE","category":"Hijack","amount":1,"date":"2024-06-06"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/transactions/"+txn.ID, strings.NewReader(body))
		rec := doRequest(svc, "user-2", req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("delete by stranger forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/v1/transactions/"+txn.ID, nil)
		rec := doRequest(svc, "user-2", req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("delete by owner", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/v1/transactions/"+txn.ID, nil)
		rec := doRequest(svc, "user-1", req)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		req = httptest.NewRequest(http.MethodGet, "/v1/transactions/"+txn.ID, nil)
		rec = doRequest(svc, "user-1", req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
