package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is an immutable snapshot of a MoySklad incoming payment.
// It is never mutated locally: after a link is written the payment is
// re-read from the API.
type Payment struct {
	ID             string
	AccountID      string
	Name           string
	Moment         time.Time
	Applicable     bool
	Sum            decimal.Decimal
	AgentID        string
	OrganizationID string
	PaymentPurpose string
	Operations     []LinkedOperation
	Href           string
}

// LinkedOperation is one document already linked to a payment.
type LinkedOperation struct {
	Href      string
	Type      string
	LinkedSum decimal.Decimal
}
