package entity

import (
	"time"
)

// RemoteWebhook is a webhook record in the MoySklad registry.
type RemoteWebhook struct {
	ID         string
	EntityType string
	Action     string
	URL        string
	Enabled    bool
	Href       string
	AccountID  string
}

// WebhookDelivery is one inbound delivery from MoySklad: an audit block and
// a list of events.
type WebhookDelivery struct {
	Audit  AuditContext
	Events []WebhookEvent
}

type AuditContext struct {
	Href   string
	Type   string
	Moment time.Time
	UID    string
}

type WebhookEvent struct {
	Href          string
	EntityType    string
	Action        string
	AccountID     string
	UpdatedFields []string
}
