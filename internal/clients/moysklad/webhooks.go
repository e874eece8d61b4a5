package moysklad

import (
	"context"
	"fmt"
	"net/http"

	"github.com/samandr77/moysklad-autolink/internal/entity"
)

type webhookData struct {
	ID         string `json:"id"`
	EntityType string `json:"entityType"`
	Action     string `json:"action"`
	URL        string `json:"url"`
	Enabled    bool   `json:"enabled"`
	AccountID  string `json:"accountId"`
	Meta       meta   `json:"meta"`
}

func (w webhookData) toEntity() entity.RemoteWebhook {
	return entity.RemoteWebhook{
		ID:         w.ID,
		EntityType: w.EntityType,
		Action:     w.Action,
		URL:        w.URL,
		Enabled:    w.Enabled,
		Href:       w.Meta.Href,
		AccountID:  w.AccountID,
	}
}

type webhookListResponse struct {
	Rows []webhookData `json:"rows"`
}

// Webhooks lists the remote webhook registry.
func (c *Client) Webhooks(ctx context.Context) ([]entity.RemoteWebhook, error) {
	const limit = 100

	reqURL := fmt.Sprintf("%s/entity/webhook?limit=%d", c.baseURL(), limit)

	var respData webhookListResponse

	err := c.doJSON(ctx, http.MethodGet, reqURL, nil, &respData)
	if err != nil {
		return nil, fmt.Errorf("list webhooks: %w", err)
	}

	webhooks := make([]entity.RemoteWebhook, 0, len(respData.Rows))
	for _, row := range respData.Rows {
		webhooks = append(webhooks, row.toEntity())
	}

	return webhooks, nil
}

func (c *Client) WebhookByID(ctx context.Context, id string) (entity.RemoteWebhook, error) {
	reqURL := fmt.Sprintf("%s/entity/webhook/%s", c.baseURL(), id)

	var respData webhookData

	err := c.doJSON(ctx, http.MethodGet, reqURL, nil, &respData)
	if err != nil {
		return entity.RemoteWebhook{}, fmt.Errorf("get webhook %q: %w", id, err)
	}

	return respData.toEntity(), nil
}

type createWebhookRequest struct {
	URL        string `json:"url"`
	Action     string `json:"action"`
	EntityType string `json:"entityType"`
}

// CreateWebhook registers a new webhook. A duplicate registration fails with
// entity.ErrAlreadyExists.
func (c *Client) CreateWebhook(ctx context.Context, entityType, action, url string) (entity.RemoteWebhook, error) {
	reqURL := c.baseURL() + "/entity/webhook"

	reqData := createWebhookRequest{
		URL:        url,
		Action:     action,
		EntityType: entityType,
	}

	var respData webhookData

	err := c.doJSON(ctx, http.MethodPost, reqURL, reqData, &respData)
	if err != nil {
		return entity.RemoteWebhook{}, fmt.Errorf("create webhook %s/%s: %w", entityType, action, err)
	}

	return respData.toEntity(), nil
}

type updateWebhookRequest struct {
	Enabled bool `json:"enabled"`
}

// UpdateWebhookEnabled flips the enabled flag of an existing webhook by its href.
func (c *Client) UpdateWebhookEnabled(ctx context.Context, href string, enabled bool) (entity.RemoteWebhook, error) {
	var respData webhookData

	err := c.doJSON(ctx, http.MethodPut, href, updateWebhookRequest{Enabled: enabled}, &respData)
	if err != nil {
		return entity.RemoteWebhook{}, fmt.Errorf("update webhook %q enabled to %t: %w", href, enabled, err)
	}

	return respData.toEntity(), nil
}
