package moysklad_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/moysklad-autolink/internal/clients/moysklad"
	"github.com/samandr77/moysklad-autolink/internal/entity"
	"github.com/samandr77/moysklad-autolink/pkg/config"
)

func newClient(t *testing.T, handler http.Handler) *moysklad.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return moysklad.NewClient(config.MoySklad{
		BaseURL:  server.URL,
		Login:    "admin@test",
		Password: "secret",
	})
}

func TestClient_WebhookByID_NotFound(t *testing.T) {
	t.Parallel()

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := c.WebhookByID(context.Background(), "missing")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestClient_CreateWebhook_Conflict(t *testing.T) {
	t.Parallel()

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))

	_, err := c.CreateWebhook(context.Background(), "paymentin", "CREATE", "https://example.com/hook")
	require.ErrorIs(t, err, entity.ErrAlreadyExists)
}

func TestClient_CreateWebhook_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		login, password, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "admin@test", login)
		require.Equal(t, "secret", password)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "paymentin", req["entityType"])
		require.Equal(t, "CREATE", req["action"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":         "wh-1",
			"entityType": "paymentin",
			"action":     "CREATE",
			"url":        req["url"],
			"enabled":    true,
			"accountId":  "acc-1",
			"meta":       map[string]string{"href": "https://api/entity/webhook/wh-1"},
		})
	}))

	wh, err := c.CreateWebhook(context.Background(), "paymentin", "CREATE", "https://example.com/hook")
	require.NoError(t, err)
	require.Equal(t, "wh-1", wh.ID)
	require.True(t, wh.Enabled)
	require.EqualValues(t, 2, attempts.Load())
}

func TestClient_SearchByAgentAndSum(t *testing.T) {
	t.Parallel()

	var gotFilter, gotOrder string

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/entity/customerorder", r.URL.Path)
		gotFilter = r.URL.Query().Get("filter")
		gotOrder = r.URL.Query().Get("order")

		_ = json.NewEncoder(w).Encode(map[string]any{
			"rows": []map[string]any{
				{
					"id":         "order-1",
					"accountId":  "acc-1",
					"name":       "12345",
					"moment":     "2025-08-01 10:30:00.000",
					"applicable": true,
					"sum":        1500.00,
					"payedSum":   0,
					"agent": map[string]any{
						"meta": map[string]string{"href": "https://api/entity/counterparty/agent-1"},
					},
					"meta": map[string]string{"href": "https://api/entity/customerorder/order-1"},
				},
			},
		})
	}))

	docs, err := c.SearchByAgentAndSum(
		context.Background(),
		entity.DocumentKindCustomerOrder,
		"agent-1",
		decimal.RequireFromString("1500.00"),
	)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "order-1", docs[0].ID)
	require.Equal(t, "agent-1", docs[0].AgentID)
	require.Equal(t, entity.DocumentKindCustomerOrder, docs[0].Kind)
	require.True(t, docs[0].Sum.Equal(decimal.RequireFromString("1500.00")))

	require.Contains(t, gotFilter, "sum>=1499.99")
	require.Contains(t, gotFilter, "sum<=1500.01")
	require.Contains(t, gotFilter, "counterparty/agent-1")
	require.Equal(t, "moment,desc", gotOrder)
}

func TestClient_SearchByAgent_Order(t *testing.T) {
	t.Parallel()

	var gotFilter, gotOrder, gotLimit string

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFilter = r.URL.Query().Get("filter")
		gotOrder = r.URL.Query().Get("order")
		gotLimit = r.URL.Query().Get("limit")

		_ = json.NewEncoder(w).Encode(map[string]any{"rows": []any{}})
	}))

	_, err := c.SearchByAgent(
		context.Background(),
		entity.DocumentKindInvoiceOut,
		"agent-2",
		entity.PriorityNewestFirst,
	)
	require.NoError(t, err)

	require.Contains(t, gotFilter, "payedSum<sum")
	require.Contains(t, gotFilter, "moment>=")
	require.Equal(t, "moment,desc", gotOrder)
	require.Equal(t, "10", gotLimit)
}

func TestClient_DocumentByID_NotFound(t *testing.T) {
	t.Parallel()

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/entity/demand/missing", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := c.DocumentByID(context.Background(), entity.DocumentKindDemand, "missing")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestClient_FindByNameAndAgent_NotFound(t *testing.T) {
	t.Parallel()

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"rows": []any{}})
	}))

	_, err := c.FindByNameAndAgent(context.Background(), entity.DocumentKindCustomerOrder, "12345", "agent-1")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestClient_LinkToDocument_PreservesExistingLinks(t *testing.T) {
	t.Parallel()

	payment := map[string]any{
		"id":         "pay-1",
		"accountId":  "acc-1",
		"name":       "100",
		"moment":     "2025-08-02 09:00:00",
		"applicable": true,
		"sum":        700.00,
		"agent": map[string]any{
			"meta": map[string]string{"href": "https://api/entity/counterparty/agent-1"},
		},
		"operations": []map[string]any{
			{
				"meta": map[string]string{
					"href": "https://api/entity/customerorder/order-1",
					"type": "customerorder",
				},
				"linkedSum": 400.00,
			},
		},
		"meta": map[string]string{"href": "https://api/entity/paymentin/pay-1"},
	}

	var putBody struct {
		Operations []struct {
			Meta struct {
				Href string `json:"href"`
				Type string `json:"type"`
			} `json:"meta"`
			LinkedSum decimal.Decimal `json:"linkedSum"`
		} `json:"operations"`
	}

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/entity/paymentin/pay-1", r.URL.Path)

		if r.Method == http.MethodPut {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&putBody))
		}

		_ = json.NewEncoder(w).Encode(payment)
	}))

	_, err := c.LinkToDocument(
		context.Background(),
		"pay-1",
		"https://api/entity/customerorder/order-2",
		decimal.RequireFromString("300.00"),
	)
	require.NoError(t, err)

	require.Len(t, putBody.Operations, 2)
	require.Equal(t, "https://api/entity/customerorder/order-1", putBody.Operations[0].Meta.Href)
	require.Equal(t, "https://api/entity/customerorder/order-2", putBody.Operations[1].Meta.Href)
	require.Equal(t, "customerorder", putBody.Operations[1].Meta.Type)
	require.True(t, putBody.Operations[1].LinkedSum.Equal(decimal.RequireFromString("300.00")))
}
