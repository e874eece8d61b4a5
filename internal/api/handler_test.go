package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/moysklad-autolink/internal/api"
	"github.com/samandr77/moysklad-autolink/internal/entity"
	"github.com/samandr77/moysklad-autolink/internal/mocks"
)

const jwtSecret = "test-secret"

type testServer struct {
	url     string
	service *mocks.MockService
}

func newServer(t *testing.T) testServer {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)

	handler := api.NewHandler(service)
	mw := api.NewMiddleware(jwtSecret)

	server := httptest.NewServer(api.NewRouter(handler, mw))
	t.Cleanup(server.Close)

	return testServer{
		url:     server.URL,
		service: service,
	}
}

func bearerToken(t *testing.T) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(jwtSecret))
	require.NoError(t, err)

	return token
}

func doJSON(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(method, url, bytes.NewReader(data))
	require.NoError(t, err)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func TestHandler_Toggle(t *testing.T) {
	t.Parallel()

	s := newServer(t)

	sub := entity.Subscription{ID: 1, Enabled: true}

	s.service.EXPECT().Toggle(gomock.Any(), entity.CategoryIncomingPayment, true).
		Return(entity.ToggleResult{
			Operation:    entity.OperationCreatedAndEnabled,
			Success:      true,
			Message:      "автопривязка для категории incoming_payment включена",
			Subscription: &sub,
		}, nil)

	resp := doJSON(t, http.MethodPost, s.url+"/api/auto-link/toggle", bearerToken(t), api.ToggleRequest{
		Category: entity.CategoryIncomingPayment,
		Enabled:  true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.ToggleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, entity.OperationCreatedAndEnabled, body.Operation)
	require.Equal(t, "ok", body.Status)
	require.True(t, body.Enabled)
}

func TestHandler_Toggle_WithSettingsAppliesThem(t *testing.T) {
	t.Parallel()

	s := newServer(t)

	sub := entity.Subscription{
		ID:           1,
		Enabled:      true,
		DocumentKind: entity.DocumentKindCustomerOrder,
		LinkPolicy:   entity.LinkPolicySumAndCounterparty,
		Priority:     entity.PriorityOldestFirst,
	}

	s.service.EXPECT().Toggle(gomock.Any(), entity.CategoryIncomingPayment, true).
		Return(entity.ToggleResult{
			Operation:    entity.OperationEnabled,
			Success:      true,
			Subscription: &sub,
		}, nil)

	updated := sub
	updated.LinkPolicy = entity.LinkPolicyCounterparty

	// Omitted fields keep the subscription's current values.
	s.service.EXPECT().UpdateLinkSettings(
		gomock.Any(),
		entity.CategoryIncomingPayment,
		entity.DocumentKindCustomerOrder,
		entity.LinkPolicyCounterparty,
		entity.PriorityOldestFirst,
	).Return(entity.ToggleResult{
		Operation:    entity.OperationSettingsUpdated,
		Success:      true,
		Subscription: &updated,
	}, nil)

	resp := doJSON(t, http.MethodPost, s.url+"/api/auto-link/toggle", bearerToken(t), api.ToggleRequest{
		Category: entity.CategoryIncomingPayment,
		Enabled:  true,
		Policy:   entity.LinkPolicyCounterparty,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.ToggleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, entity.OperationEnabled, body.Operation)
	require.True(t, body.Enabled)
}

func TestHandler_Toggle_SkippedReportsWarning(t *testing.T) {
	t.Parallel()

	s := newServer(t)

	s.service.EXPECT().Toggle(gomock.Any(), entity.CategoryIncomingPayment, true).
		Return(entity.ToggleResult{
			Operation: entity.OperationSkippedNoWebhookURL,
			Message:   "не задан адрес вебхука",
		}, nil)

	resp := doJSON(t, http.MethodPost, s.url+"/api/auto-link/toggle", bearerToken(t), api.ToggleRequest{
		Category: entity.CategoryIncomingPayment,
		Enabled:  true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.ToggleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "warning", body.Status)
	require.False(t, body.Enabled)
}

func TestHandler_Toggle_InvalidCategory(t *testing.T) {
	t.Parallel()

	s := newServer(t)

	s.service.EXPECT().Toggle(gomock.Any(), entity.PaymentCategory("refund"), true).
		Return(entity.ToggleResult{}, fmt.Errorf("%w: unknown payment category", entity.ErrInvalidArgument))

	resp := doJSON(t, http.MethodPost, s.url+"/api/auto-link/toggle", bearerToken(t), api.ToggleRequest{
		Category: "refund",
		Enabled:  true,
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandler_Toggle_RemoteAPIUnavailable(t *testing.T) {
	t.Parallel()

	s := newServer(t)

	s.service.EXPECT().Toggle(gomock.Any(), entity.CategoryIncomingPayment, true).
		Return(entity.ToggleResult{}, fmt.Errorf("create webhook: %w", entity.ErrRemoteAPI))

	resp := doJSON(t, http.MethodPost, s.url+"/api/auto-link/toggle", bearerToken(t), api.ToggleRequest{
		Category: entity.CategoryIncomingPayment,
		Enabled:  true,
	})
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestHandler_Toggle_WithoutToken(t *testing.T) {
	t.Parallel()

	s := newServer(t)

	resp := doJSON(t, http.MethodPost, s.url+"/api/auto-link/toggle", "", api.ToggleRequest{
		Category: entity.CategoryIncomingPayment,
		Enabled:  true,
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_Settings(t *testing.T) {
	t.Parallel()

	s := newServer(t)

	sub := entity.Subscription{ID: 1, Enabled: true}

	s.service.EXPECT().UpdateLinkSettings(
		gomock.Any(),
		entity.CategoryIncomingPayment,
		entity.DocumentKindInvoiceOut,
		entity.LinkPolicyCounterparty,
		entity.PriorityNewestFirst,
	).Return(entity.ToggleResult{
		Operation:    entity.OperationSettingsUpdated,
		Success:      true,
		Subscription: &sub,
	}, nil)

	resp := doJSON(t, http.MethodPost, s.url+"/api/auto-link/settings", bearerToken(t), api.SettingsRequest{
		Category: entity.CategoryIncomingPayment,
		Kind:     entity.DocumentKindInvoiceOut,
		Policy:   entity.LinkPolicyCounterparty,
		Priority: entity.PriorityNewestFirst,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.ToggleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, entity.OperationSettingsUpdated, body.Operation)
}

func TestHandler_Status(t *testing.T) {
	t.Parallel()

	s := newServer(t)

	s.service.EXPECT().Status(gomock.Any()).Return([]entity.CategoryStatus{
		{
			Category:     entity.CategoryIncomingPayment,
			Enabled:      true,
			DocumentKind: entity.DocumentKindCustomerOrder,
			LinkPolicy:   entity.LinkPolicySumAndCounterparty,
			Priority:     entity.PriorityOldestFirst,
		},
	}, nil)

	resp := doJSON(t, http.MethodGet, s.url+"/api/webhooks/status", bearerToken(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.StatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Categories, 1)
	require.Equal(t, entity.CategoryIncomingPayment, body.Categories[0].Category)
	require.True(t, body.Categories[0].Enabled)
}

func TestHandler_Webhook(t *testing.T) {
	t.Parallel()

	s := newServer(t)

	var got entity.WebhookDelivery

	s.service.EXPECT().ProcessDelivery(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, delivery entity.WebhookDelivery) error {
			got = delivery
			return nil
		})

	payload := map[string]any{
		"auditContext": map[string]any{
			"meta":   map[string]string{"href": "https://api/audit/1", "type": "audit"},
			"moment": "2025-08-02 09:00:00",
			"uid":    "admin@company",
		},
		"events": []map[string]any{
			{
				"meta":      map[string]string{"href": "https://api/entity/paymentin/pay-1", "type": "paymentin"},
				"action":    "CREATE",
				"accountId": "acc-1",
			},
		},
	}

	resp := doJSON(t, http.MethodPost, s.url+"/api/moysklad/webhook?requestId=req-1", "", payload)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	require.Len(t, got.Events, 1)
	require.Equal(t, "https://api/entity/paymentin/pay-1", got.Events[0].Href)
	require.Equal(t, entity.EntityTypePaymentIn, got.Events[0].EntityType)
	require.Equal(t, "CREATE", got.Events[0].Action)
	require.Equal(t, "acc-1", got.Events[0].AccountID)
	require.Equal(t, "admin@company", got.Audit.UID)
}

func TestHandler_Webhook_MissingRequestID(t *testing.T) {
	t.Parallel()

	s := newServer(t)

	// ProcessDelivery must not be called.
	resp := doJSON(t, http.MethodPost, s.url+"/api/moysklad/webhook", "", map[string]any{"events": []any{}})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_Webhook_ProcessingErrorStillAcknowledged(t *testing.T) {
	t.Parallel()

	s := newServer(t)

	s.service.EXPECT().ProcessDelivery(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("process event: %w", entity.ErrRemoteAPI))

	payload := map[string]any{
		"events": []map[string]any{
			{
				"meta":   map[string]string{"href": "https://api/entity/paymentin/pay-1", "type": "paymentin"},
				"action": "CREATE",
			},
		},
	}

	resp := doJSON(t, http.MethodPost, s.url+"/api/moysklad/webhook?requestId=req-2", "", payload)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	s := newServer(t)

	resp, err := http.Get(s.url + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}
