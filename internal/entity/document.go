package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SumTolerance is the absolute tolerance used for every sum comparison:
// matching by sum, outstanding checks and near-zero remainders.
var SumTolerance = decimal.RequireFromString("0.01")

type DocumentKind string

const (
	DocumentKindCustomerOrder DocumentKind = "customerorder"
	DocumentKindInvoiceOut    DocumentKind = "invoiceout"
	DocumentKindDemand        DocumentKind = "demand"
)

func (d DocumentKind) String() string {
	return string(d)
}

func (d DocumentKind) IsValid() bool {
	switch d {
	case DocumentKindCustomerOrder, DocumentKindInvoiceOut, DocumentKindDemand:
		return true
	}

	return false
}

func (d DocumentKind) Validate() error {
	if !d.IsValid() {
		return fmt.Errorf("%w: unknown document kind %q", ErrInvalidArgument, d)
	}

	return nil
}

// Document is a sales document (customer order, invoice or shipment) that can
// be settled by one or more payments. PaidSum may exceed Sum: the remote
// system is the source of truth, overpayment is tolerated here.
type Document struct {
	Kind           DocumentKind
	ID             string
	AccountID      string
	Name           string
	Moment         time.Time
	Applicable     bool
	Sum            decimal.Decimal
	PaidSum        decimal.Decimal
	ShippedSum     decimal.Decimal
	InvoicedSum    decimal.Decimal
	AgentID        string
	OrganizationID string
	Href           string
}

// UnpaidSum returns Sum - PaidSum floored at zero.
func (d Document) UnpaidSum() decimal.Decimal {
	unpaid := d.Sum.Sub(d.PaidSum)
	if unpaid.IsNegative() {
		return decimal.Zero
	}

	return unpaid
}

func (d Document) IsFullyPaid() bool {
	return d.PaidSum.GreaterThanOrEqual(d.Sum)
}

// MatchesSum reports whether the document total equals x within tolerance.
func (d Document) MatchesSum(x, tolerance decimal.Decimal) bool {
	return d.Sum.Sub(x).Abs().LessThanOrEqual(tolerance)
}

// MatchesUnpaidSum reports whether the outstanding amount equals x within tolerance.
func (d Document) MatchesUnpaidSum(x, tolerance decimal.Decimal) bool {
	return d.UnpaidSum().Sub(x).Abs().LessThanOrEqual(tolerance)
}

// Allocation is one document's share of a payment.
type Allocation struct {
	Document Document
	Sum      decimal.Decimal
}

// MatchResult is the outcome of apportioning a payment across candidate
// documents. TotalLinked + Remaining always equals the payment sum.
type MatchResult struct {
	Allocations []Allocation
	TotalLinked decimal.Decimal
	Remaining   decimal.Decimal
}
