package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/samandr77/moysklad-autolink/internal/entity"
)

// @title MoySklad Auto-Link API
// @version 1.0
// @description Webhook subscription management and automatic linking of incoming payments to sales documents
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/api.go -package=mocks

type Service interface {
	Toggle(ctx context.Context, category entity.PaymentCategory, enable bool) (entity.ToggleResult, error)
	UpdateLinkSettings(ctx context.Context, category entity.PaymentCategory, kind entity.DocumentKind, policy entity.LinkPolicy, priority entity.DocumentPriority) (entity.ToggleResult, error)
	Status(ctx context.Context) ([]entity.CategoryStatus, error)
	ProcessDelivery(ctx context.Context, delivery entity.WebhookDelivery) error
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s: s,
	}
}

const (
	statusOK      = "ok"
	statusWarning = "warning"
)

type ToggleRequest struct {
	Category entity.PaymentCategory  `json:"category"`
	Enabled  bool                    `json:"enabled"`
	Kind     entity.DocumentKind     `json:"documentKind,omitempty"`
	Policy   entity.LinkPolicy       `json:"linkPolicy,omitempty"`
	Priority entity.DocumentPriority `json:"documentPriority,omitempty"`
}

func (r ToggleRequest) hasSettings() bool {
	return r.Kind != "" || r.Policy != "" || r.Priority != ""
}

type ToggleResponse struct {
	Category  entity.PaymentCategory `json:"category"`
	Operation entity.ToggleOperation `json:"operation"`
	Status    string                 `json:"status"`
	Message   string                 `json:"message"`
	Enabled   bool                   `json:"enabled"`
}

func toggleResponse(category entity.PaymentCategory, result entity.ToggleResult) ToggleResponse {
	resp := ToggleResponse{
		Category:  category,
		Operation: result.Operation,
		Status:    statusOK,
		Message:   result.Message,
	}

	if result.IsSkipped() {
		resp.Status = statusWarning
	}

	if result.Subscription != nil {
		resp.Enabled = result.Subscription.Enabled
	}

	return resp
}

// Toggle enables or disables payment auto-linking for a category
// @Summary Toggle auto-linking
// @Description Enables or disables the webhook subscription for a payment category
// @Tags auto-link
// @Accept json
// @Produce json
// @Param ToggleRequest body ToggleRequest true "Toggle request"
// @Success 200 {object} ToggleResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 422 {object} ErrorResponse "Unknown payment category"
// @Failure 502 {object} ErrorResponse "MoySklad API unavailable"
// @Failure 500 {object} ErrorResponse "Failed to toggle auto-linking"
// @Router /auto-link/toggle [post]
// @Security BearerAuth
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ToggleRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	result, err := h.s.Toggle(ctx, req.Category, req.Enabled)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Неизвестная категория платежей")
		case errors.Is(err, entity.ErrRemoteAPI):
			SendJSONErr(ctx, w, http.StatusBadGateway, err, "МойСклад недоступен")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не удалось переключить автопривязку")
		}

		return
	}

	// Link settings passed along with an enable are applied right after the
	// subscription exists.
	if req.Enabled && result.Success && req.hasSettings() && result.Subscription != nil {
		kind, policy, priority := result.Subscription.DocumentKind, result.Subscription.LinkPolicy, result.Subscription.Priority

		if req.Kind != "" {
			kind = req.Kind
		}

		if req.Policy != "" {
			policy = req.Policy
		}

		if req.Priority != "" {
			priority = req.Priority
		}

		settingsResult, err := h.s.UpdateLinkSettings(ctx, req.Category, kind, policy, priority)
		if err != nil {
			switch {
			case errors.Is(err, entity.ErrInvalidArgument):
				SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Неверные настройки автопривязки")
			default:
				SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не удалось обновить настройки")
			}

			return
		}

		if settingsResult.Subscription != nil {
			result.Subscription = settingsResult.Subscription
		}
	}

	SendJSON(ctx, w, http.StatusOK, toggleResponse(req.Category, result))
}

type SettingsRequest struct {
	Category entity.PaymentCategory  `json:"category"`
	Kind     entity.DocumentKind     `json:"documentKind"`
	Policy   entity.LinkPolicy       `json:"linkPolicy"`
	Priority entity.DocumentPriority `json:"documentPriority"`
}

// Settings updates how documents are matched for a category
// @Summary Update link settings
// @Description Updates document kind, link policy and ordering for a payment category
// @Tags auto-link
// @Accept json
// @Produce json
// @Param SettingsRequest body SettingsRequest true "Settings request"
// @Success 200 {object} ToggleResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 422 {object} ErrorResponse "Unknown category, document kind, policy or priority"
// @Failure 500 {object} ErrorResponse "Failed to update settings"
// @Router /auto-link/settings [post]
// @Security BearerAuth
func (h *Handler) Settings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SettingsRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	result, err := h.s.UpdateLinkSettings(ctx, req.Category, req.Kind, req.Policy, req.Priority)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Неверные настройки автопривязки")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не удалось обновить настройки")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, toggleResponse(req.Category, result))
}

type CategoryStatusResponse struct {
	Category entity.PaymentCategory  `json:"category"`
	Enabled  bool                    `json:"enabled"`
	Kind     entity.DocumentKind     `json:"documentKind"`
	Policy   entity.LinkPolicy       `json:"linkPolicy"`
	Priority entity.DocumentPriority `json:"documentPriority"`
}

type StatusResponse struct {
	Categories []CategoryStatusResponse `json:"categories"`
}

// Status reports the auto-linking state of every payment category
// @Summary Webhook subscription status
// @Description Returns the current auto-linking state per payment category
// @Tags auto-link
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 500 {object} ErrorResponse "Failed to read subscriptions"
// @Router /webhooks/status [get]
// @Security BearerAuth
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	statuses, err := h.s.Status(ctx)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Не удалось получить состояние подписок")
		return
	}

	categories := make([]CategoryStatusResponse, 0, len(statuses))
	for _, status := range statuses {
		categories = append(categories, CategoryStatusResponse{
			Category: status.Category,
			Enabled:  status.Enabled,
			Kind:     status.DocumentKind,
			Policy:   status.LinkPolicy,
			Priority: status.Priority,
		})
	}

	SendJSON(ctx, w, http.StatusOK, StatusResponse{Categories: categories})
}

const auditMomentLayout = "2006-01-02 15:04:05"

type webhookMeta struct {
	Href string `json:"href"`
	Type string `json:"type"`
}

type webhookEventRequest struct {
	Meta          webhookMeta `json:"meta"`
	Action        string      `json:"action"`
	AccountID     string      `json:"accountId"`
	UpdatedFields []string    `json:"updatedFields"`
}

type WebhookRequest struct {
	AuditContext struct {
		Meta   webhookMeta `json:"meta"`
		Moment string      `json:"moment"`
		UID    string      `json:"uid"`
	} `json:"auditContext"`
	Events []webhookEventRequest `json:"events"`
}

// Webhook receives a MoySklad event delivery
// @Summary MoySklad webhook endpoint
// @Description Receives payment events from MoySklad and links payments to documents. Always acknowledges accepted deliveries so MoySklad does not retry them.
// @Tags webhooks
// @Accept json
// @Param requestId query string true "MoySklad delivery id"
// @Param WebhookRequest body WebhookRequest true "Webhook delivery"
// @Success 204 "Delivery accepted"
// @Failure 400 {object} ErrorResponse "Missing requestId or invalid JSON"
// @Router /moysklad/webhook [post]
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requestID := r.URL.Query().Get("requestId")
	if requestID == "" {
		SendJSONErr(ctx, w, http.StatusBadRequest, errors.New("empty requestId"), "Отсутствует requestId")
		return
	}

	var req WebhookRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	slog.InfoContext(ctx, fmt.Sprintf("Получена доставка %s: %d событий", requestID, len(req.Events)))

	moment, _ := time.Parse(auditMomentLayout, req.AuditContext.Moment)

	delivery := entity.WebhookDelivery{
		Audit: entity.AuditContext{
			Href:   req.AuditContext.Meta.Href,
			Type:   req.AuditContext.Meta.Type,
			Moment: moment,
			UID:    req.AuditContext.UID,
		},
		Events: make([]entity.WebhookEvent, 0, len(req.Events)),
	}

	for _, event := range req.Events {
		delivery.Events = append(delivery.Events, entity.WebhookEvent{
			Href:          event.Meta.Href,
			EntityType:    event.Meta.Type,
			Action:        event.Action,
			AccountID:     event.AccountID,
			UpdatedFields: event.UpdatedFields,
		})
	}

	// An accepted delivery is always acknowledged, otherwise MoySklad keeps
	// retrying it and the same payment gets processed again.
	err = h.s.ProcessDelivery(ctx, delivery)
	if err != nil {
		slog.ErrorContext(ctx, fmt.Sprintf("Доставка %s обработана с ошибками: %s", requestID, err))
	}

	w.WriteHeader(http.StatusNoContent)
}

// HealthHandler - returns service health status.
// @Summary Health check
// @Description Health check
// @Tags health
// @Accept text/plain
// @Produce text/plain
// @Success 200 {string} string "Сервис работает!"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("Сервис работает!\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Сервис не работает!")
		return
	}
}
