package bank_http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"dailyapps/internal/app/bank"
)

type client struct {
	t      *testing.T
	router http.Handler
}

func newClient(t *testing.T) *client {
	r := chi.NewRouter()
	RegisterRoutes(r, bank.NewBankService(0, zaptest.NewLogger(t)), zaptest.NewLogger(t))
	return &client{t: t, router: r}
}

func (c *client) do(method, path string, body any, out any) int {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, httptest.NewRequest(method, path, &buf))
	if out != nil {
		require.NoError(c.t, json.NewDecoder(rec.Body).Decode(out))
	}
	return rec.Code
}

func TestBankEndpoints(t *testing.T) {
	c := newClient(t)

	var anna, ben bank.CustomerInfo
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/bank/customers", map[string]string{"name": "Anna", "contact_info": "anna@example.com"}, &anna))
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/bank/customers", map[string]string{"name": "Ben", "contact_info": "ben@example.com"}, &ben))

	open := func(number string, owner string) int {
		return c.do(http.MethodPost, "/bank/accounts", map[string]any{"number": number, "kind": "individual", "owner_ids": []string{owner}}, nil)
	}
	require.Equal(t, http.StatusCreated, open("1111111111", anna.ID))
	require.Equal(t, http.StatusCreated, open("2222222222", ben.ID))
	assert.Equal(t, http.StatusConflict, open("1111111111", anna.ID))
	assert.Equal(t, http.StatusBadRequest, open("12", anna.ID))
	assert.Equal(t, http.StatusNotFound, open("3333333333", "ghost"))

	var acc bank.AccountInfo
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/bank/accounts/1111111111/deposit", map[string]any{"amount": "100"}, &acc))
	assert.Equal(t, "100", acc.Balance.String())

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/bank/accounts/1111111111/deposit", map[string]any{"amount": "-5"}, nil))
	assert.Equal(t, http.StatusForbidden, c.do(http.MethodPost, "/bank/accounts/1111111111/withdraw", map[string]any{"amount": "5", "actor_id": ben.ID}, nil))
	assert.Equal(t, http.StatusConflict, c.do(http.MethodPost, "/bank/accounts/1111111111/withdraw", map[string]any{"amount": "500", "actor_id": anna.ID}, nil))
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/bank/accounts/9999999999", nil, nil))

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/bank/accounts/1111111111/transfer", map[string]any{"to": "2222222222", "amount": "30", "actor_id": anna.ID}, &acc))
	assert.Equal(t, "70", acc.Balance.String())

	var txs []map[string]any
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/bank/accounts/1111111111/summary?limit=1", nil, &txs))
	require.Len(t, txs, 1)
	assert.Equal(t, "transfer", txs[0]["type"])

	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/bank/customers/"+ben.ID+"/accounts/2222222222/transactions", nil, &txs))
	assert.Len(t, txs, 1)

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodGet, "/bank/accounts/1111111111/summary?limit=x", nil, nil))
}
