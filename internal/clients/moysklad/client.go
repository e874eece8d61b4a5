package moysklad

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/samandr77/moysklad-autolink/internal/entity"
	"github.com/samandr77/moysklad-autolink/pkg/config"
	"github.com/samandr77/moysklad-autolink/pkg/transport"
)

// Client talks to the MoySklad JSON API 1.2 with basic auth. Every call is
// retried up to 3 times with exponential backoff (base 2s, cap 10s) on
// transport errors, 429 and 5xx; other 4xx are terminal.
type Client struct {
	cfg config.MoySklad
	c   *http.Client
}

func NewClient(cfg config.MoySklad) *Client {
	const timeout = 30 * time.Second

	return &Client{
		cfg: cfg,
		c: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
	}
}

func (c *Client) baseURL() string {
	return strings.TrimRight(c.cfg.BaseURL, "/")
}

const (
	maxAttempts = 3
	backoffBase = 2 * time.Second
	backoffCap  = 10 * time.Second
)

func (c *Client) doJSON(ctx context.Context, method, reqURL string, reqData, respData any) error {
	var payload []byte

	if reqData != nil {
		var err error

		payload, err = json.Marshal(reqData)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	backoff := retry.WithMaxRetries(maxAttempts-1,
		retry.WithCappedDuration(backoffCap, retry.NewExponential(backoffBase)))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		req.SetBasicAuth(c.cfg.Login, c.cfg.Password)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.c.Do(req)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("do request: %w", err))
		}

		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("read response: %w", err))
		}

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return fmt.Errorf("%w: %s %s", entity.ErrNotFound, method, reqURL)
		case resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusPreconditionFailed:
			return fmt.Errorf("%w: %s", entity.ErrAlreadyExists, raw)
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
			return retry.RetryableError(fmt.Errorf("%w: status %d: %s", entity.ErrRemoteAPI, resp.StatusCode, raw))
		case resp.StatusCode >= http.StatusBadRequest:
			return fmt.Errorf("%w: status %d: %s", entity.ErrRemoteAPI, resp.StatusCode, raw)
		}

		if respData == nil {
			return nil
		}

		err = json.Unmarshal(raw, respData)
		if err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}

		return nil
	})
}

type meta struct {
	Href      string `json:"href"`
	Type      string `json:"type,omitempty"`
	MediaType string `json:"mediaType,omitempty"`
}

type metaRef struct {
	Meta meta `json:"meta"`
}

// idFromHref extracts the trailing entity id from a MoySklad href.
func idFromHref(href string) string {
	if href == "" {
		return ""
	}

	parts := strings.Split(href, "/")

	return parts[len(parts)-1]
}

// typeFromHref extracts the entity type segment, e.g.
// .../entity/customerorder/<id> -> customerorder.
func typeFromHref(href string) string {
	parts := strings.Split(href, "/")
	if len(parts) < 2 {
		return "unknown"
	}

	return parts[len(parts)-2]
}

// momentTime parses MoySklad's "2006-01-02 15:04:05" moments, with or
// without fractional seconds.
type momentTime time.Time

func (m *momentTime) UnmarshalJSON(b []byte) error {
	var s string

	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	if s == "" {
		*m = momentTime(time.Time{})
		return nil
	}

	for _, layout := range []string{"2006-01-02 15:04:05.000", "2006-01-02 15:04:05"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			*m = momentTime(t)
			return nil
		}
	}

	return fmt.Errorf("parse moment %q", s)
}

func (m momentTime) Time() time.Time {
	return time.Time(m)
}
