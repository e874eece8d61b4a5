package entity

import (
	"fmt"
	"time"
)

// WebhookAction is the only remote action the service subscribes to.
const WebhookAction = "CREATE"

type PaymentCategory string

const (
	CategoryIncomingPayment PaymentCategory = "incoming_payment"
	CategoryIncomingOrder   PaymentCategory = "incoming_order"
	CategoryOutgoingPayment PaymentCategory = "outgoing_payment"
	CategoryOutgoingOrder   PaymentCategory = "outgoing_order"
)

// PaymentCategories lists all tracked categories in reporting order.
var PaymentCategories = []PaymentCategory{
	CategoryIncomingPayment,
	CategoryIncomingOrder,
	CategoryOutgoingPayment,
	CategoryOutgoingOrder,
}

func (p PaymentCategory) String() string {
	return string(p)
}

func (p PaymentCategory) IsValid() bool {
	switch p {
	case CategoryIncomingPayment, CategoryIncomingOrder, CategoryOutgoingPayment, CategoryOutgoingOrder:
		return true
	}

	return false
}

func (p PaymentCategory) Validate() error {
	if !p.IsValid() {
		return fmt.Errorf("%w: unknown payment category %q", ErrInvalidArgument, p)
	}

	return nil
}

// EntityType returns the MoySklad entity type a category subscribes to.
func (p PaymentCategory) EntityType() string {
	switch p {
	case CategoryIncomingPayment:
		return EntityTypePaymentIn
	case CategoryIncomingOrder:
		return EntityTypeCashIn
	case CategoryOutgoingPayment:
		return EntityTypePaymentOut
	case CategoryOutgoingOrder:
		return EntityTypeCashOut
	}

	return ""
}

const (
	EntityTypePaymentIn  = "paymentin"
	EntityTypeCashIn     = "cashin"
	EntityTypePaymentOut = "paymentout"
	EntityTypeCashOut    = "cashout"
)

type LinkPolicy string

const (
	LinkPolicySumAndCounterparty LinkPolicy = "sum_and_counterparty"
	LinkPolicyCounterparty       LinkPolicy = "counterparty"
	LinkPolicyPurposeMask        LinkPolicy = "payment_purpose_mask"
)

func (l LinkPolicy) String() string {
	return string(l)
}

func (l LinkPolicy) IsValid() bool {
	switch l {
	case LinkPolicySumAndCounterparty, LinkPolicyCounterparty, LinkPolicyPurposeMask:
		return true
	}

	return false
}

func (l LinkPolicy) Validate() error {
	if !l.IsValid() {
		return fmt.Errorf("%w: unknown link policy %q", ErrInvalidArgument, l)
	}

	return nil
}

type DocumentPriority string

const (
	PriorityOldestFirst DocumentPriority = "oldest_first"
	PriorityNewestFirst DocumentPriority = "newest_first"
)

func (d DocumentPriority) String() string {
	return string(d)
}

func (d DocumentPriority) IsValid() bool {
	switch d {
	case PriorityOldestFirst, PriorityNewestFirst:
		return true
	}

	return false
}

func (d DocumentPriority) Validate() error {
	if !d.IsValid() {
		return fmt.Errorf("%w: unknown document priority %q", ErrInvalidArgument, d)
	}

	return nil
}

// Subscription is the durable local record pairing a payment category with a
// remote webhook and its link settings. Rows are never hard-deleted: disable
// sets Enabled to false. RemoteID is the unique upsert key.
type Subscription struct {
	ID           int64
	Category     PaymentCategory
	EntityType   string
	Action       string
	URL          string
	RemoteID     string
	Href         string
	AccountID    string
	Enabled      bool
	DocumentKind DocumentKind
	LinkPolicy   LinkPolicy
	Priority     DocumentPriority
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ToggleOperation string

const (
	OperationCreatedAndEnabled      ToggleOperation = "created_and_enabled"
	OperationEnabled                ToggleOperation = "enabled"
	OperationAlreadyEnabled         ToggleOperation = "already_enabled"
	OperationDisabled               ToggleOperation = "disabled"
	OperationAlreadyDisabled        ToggleOperation = "already_disabled"
	OperationNotFoundToDisable      ToggleOperation = "not_found_to_disable"
	OperationSkippedNoWebhookURL    ToggleOperation = "skipped_no_webhook_url"
	OperationSkippedNoCredentials   ToggleOperation = "skipped_no_credentials"
	OperationSettingsUpdated        ToggleOperation = "settings_updated"
	OperationSettingsNoSubscription ToggleOperation = "settings_skipped_no_subscription"
)

func (t ToggleOperation) String() string {
	return string(t)
}

// ToggleResult is what a toggle or settings call reports back to the caller.
// The caller renders it as one of three outcome classes: ok, warning
// (IsSkipped) or error (the call returned an error instead of a result).
type ToggleResult struct {
	Operation    ToggleOperation
	Success      bool
	Message      string
	Subscription *Subscription
}

func (r ToggleResult) IsSkipped() bool {
	switch r.Operation {
	case OperationSkippedNoWebhookURL, OperationSkippedNoCredentials, OperationSettingsNoSubscription:
		return true
	}

	return false
}

// CategoryStatus is the reported state of one payment category. Categories
// without a subscription row report defaults with Enabled=false.
type CategoryStatus struct {
	Category     PaymentCategory
	Enabled      bool
	DocumentKind DocumentKind
	LinkPolicy   LinkPolicy
	Priority     DocumentPriority
}
